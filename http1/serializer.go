package http1

import (
	"io"

	"github.com/indigo-web/reqwire/http"
	"github.com/indigo-web/reqwire/http/proto"
)

// Append renders the request in its wire form into dst. Headers are written in their
// storage order, each as `Key: Value\r\n`, followed by the blank line and the raw body,
// if any. No trailing terminator is added after the body. Headers are written as they
// are, so the Content-Length is never added or corrected.
func Append(dst []byte, request *http.Request) []byte {
	dst = append(dst, request.Method...)
	dst = append(dst, ' ')
	dst = append(dst, request.Target...)
	dst = append(dst, ' ')
	dst = append(dst, request.Proto.Or(proto.HTTP11).String()...)
	dst = crlf(dst)

	if request.Headers != nil {
		for _, h := range request.Headers.Expose() {
			dst = header(dst, h)
		}
	}

	dst = crlf(dst)

	return append(dst, request.Body.Bytes()...)
}

// Serialize returns the wire form of the request.
func Serialize(request *http.Request) []byte {
	return Append(make([]byte, 0, estimateSize(request)), request)
}

// WriteTo writes the wire form of the request at once.
func WriteTo(w io.Writer, request *http.Request) (int64, error) {
	n, err := w.Write(Serialize(request))
	return int64(n), err
}

func estimateSize(request *http.Request) int {
	// request line: two spaces, the protocol and both CRLFs
	size := len(request.Method) + len(request.Target) + len("  HTTP/x.x\r\n\r\n")

	if request.Headers != nil {
		for _, h := range request.Headers.Expose() {
			size += len(h.Key) + len(": \r\n") + len(h.Value)
		}
	}

	return size + request.Body.Len()
}

func crlf(b []byte) []byte {
	return append(b, '\r', '\n')
}

func header(b []byte, h http.Header) []byte {
	b = append(b, h.Key...)
	b = append(b, ':', ' ')
	b = append(b, h.Value...)

	return crlf(b)
}
