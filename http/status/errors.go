package status

import "errors"

// HTTPError is the error kind every parsing failure is reported with. Code is what a
// server would most likely respond with, the decision however is up to the caller.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrMalformedRequestLine = NewError(BadRequest, "malformed request line")
	ErrUnreadableLine       = NewError(BadRequest, "cannot read line")
	ErrBadContentLength     = NewError(BadRequest, "bad content length")
	ErrTruncatedBody        = NewError(BadRequest, "body is shorter than declared")
	ErrInvalidBodyEncoding  = NewError(BadRequest, "body is not a valid utf-8 text")

	ErrTooLongRequestLine          = NewError(RequestURITooLong, "request line is too long")
	ErrHeaderFieldsTooLarge        = NewError(HeaderFieldsTooLarge, "too large headers section")
	ErrTooManyHeaders              = NewError(HeaderFieldsTooLarge, "too many headers")
	ErrBodyTooLarge                = NewError(RequestEntityTooLarge, "request body is too large")
	ErrUnsupportedProtocol         = NewError(HTTPVersionNotSupported, "protocol is not supported")
	ErrUnsupportedTransferEncoding = NewError(NotImplemented, "transfer encodings are not supported")
)

// CodeOf extracts the status code out of the error chain. If no HTTPError is found,
// BadRequest is returned, as any failure while reading a request is the peer's fault
// until proven otherwise.
func CodeOf(err error) Code {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return BadRequest
}
