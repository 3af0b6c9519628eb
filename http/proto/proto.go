package proto

type Proto uint8

const (
	Unknown Proto = 0
	HTTP09  Proto = 1 << (iota - 1)
	HTTP10
	HTTP11
	HTTP2
	HTTP3
)

// String returns the literal as it is written in the request line. Unknown protocol
// is represented by an empty string.
func (p Proto) String() string {
	switch p {
	case HTTP09:
		return "HTTP/0.9"
	case HTTP10:
		return "HTTP/1.0"
	case HTTP11:
		return "HTTP/1.1"
	case HTTP2:
		return "HTTP/2.0"
	case HTTP3:
		return "HTTP/3.0"
	default:
		return ""
	}
}

// Or returns the protocol itself unless it has no literal (Unknown or a combination of
// flags), in which case the fallback is returned.
func (p Proto) Or(fallback Proto) Proto {
	if len(p.String()) == 0 {
		return fallback
	}

	return p
}

const (
	protoTokenLength   = len("HTTP/x.x")
	majorVersionOffset = len("HTTP/x") - 1
	minorVersionOffset = len("HTTP/x.x") - 1
	httpScheme         = "HTTP/"
)

var majorMinorVersionLUT = [10][10]Proto{
	0: {9: HTTP09},
	1: {0: HTTP10, 1: HTTP11},
	2: {0: HTTP2},
	3: {0: HTTP3},
}

// FromString maps the version literal into the Proto. Anything that isn't exactly one
// of the known literals results in Unknown.
func FromString(raw string) Proto {
	if len(raw) != protoTokenLength || raw[:majorVersionOffset] != httpScheme ||
		raw[majorVersionOffset+1] != '.' {
		return Unknown
	}

	return Parse(raw[majorVersionOffset]-'0', raw[minorVersionOffset]-'0')
}

// Parse returns a protocol by its major and minor versions.
func Parse(major, minor uint8) Proto {
	if major > 9 || minor > 9 {
		return Unknown
	}

	return majorMinorVersionLUT[major][minor]
}
