package method

// Method classifies a request method token. The request itself keeps the method as it
// was sent, so any token is accepted; Method is only a convenience for consumers that
// need to tell well-known methods apart.
type Method uint8

const (
	Unknown Method = iota
	GET
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH
)

func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		} else if str == "HEAD" {
			return HEAD
		}
	case 5:
		if str == "PATCH" {
			return PATCH
		} else if str == "TRACE" {
			return TRACE
		}
	case 6:
		if str == "DELETE" {
			return DELETE
		}
	case 7:
		if str == "CONNECT" {
			return CONNECT
		} else if str == "OPTIONS" {
			return OPTIONS
		}
	}

	return Unknown
}

func (m Method) String() string {
	lut := [...]string{
		GET: "GET", HEAD: "HEAD", POST: "POST", PUT: "PUT", DELETE: "DELETE",
		CONNECT: "CONNECT", OPTIONS: "OPTIONS", TRACE: "TRACE", PATCH: "PATCH",
	}
	if int(m) >= len(lut) {
		return ""
	}

	return lut[m]
}

// Safe reports whether the method is defined as read-only.
func (m Method) Safe() bool {
	switch m {
	case GET, HEAD, OPTIONS, TRACE:
		return true
	default:
		return false
	}
}
