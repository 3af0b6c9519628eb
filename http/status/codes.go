package status

type Code uint16

// Only codes a request parser may answer with are listed. Values are the ones
// registered with IANA.
const (
	BadRequest              Code = 400 // RFC 9110, 15.5.1
	RequestEntityTooLarge   Code = 413 // RFC 9110, 15.5.14
	RequestURITooLong       Code = 414 // RFC 9110, 15.5.15
	HeaderFieldsTooLarge    Code = 431 // RFC 6585, 5
	NotImplemented          Code = 501 // RFC 9110, 15.6.2
	HTTPVersionNotSupported Code = 505 // RFC 9110, 15.6.6
)

// Text returns the reason phrase of the code. Empty string is returned for unknown codes.
func Text(code Code) string {
	switch code {
	case BadRequest:
		return "Bad Request"
	case RequestEntityTooLarge:
		return "Request Entity Too Large"
	case RequestURITooLong:
		return "Request URI Too Long"
	case HeaderFieldsTooLarge:
		return "Request Header Fields Too Large"
	case NotImplemented:
		return "Not Implemented"
	case HTTPVersionNotSupported:
		return "HTTP Version Not Supported"
	default:
		return ""
	}
}
