package http

import (
	"strings"

	"github.com/indigo-web/reqwire/http/proto"
	"github.com/indigo-web/reqwire/http/status"
	"github.com/indigo-web/reqwire/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Request represents a single HTTP/1.x request. It is fully populated before being handed
// out and shares no memory with whatever produced it.
type Request struct {
	// Method is the method token exactly as it was sent. It isn't validated against the
	// list of well-known methods, see the method package for that.
	Method string
	// Target is the request-target, path and query included. It is opaque and is neither
	// decoded nor validated.
	Target string
	// Proto is the protocol version of the request.
	Proto proto.Proto
	// Headers holds non-normalized header pairs in their original order, even though lookup
	// is case-insensitive. Header keys and values aren't validated.
	Headers Headers
	// Body is present if and only if the request declared its length.
	Body Body
}

// NewRequest assembles a request. Method and target are mandatory, missing any of them
// results in status.ErrMalformedRequestLine. Unknown protocol resolves to HTTP/1.1 and nil
// headers to an empty storage.
func NewRequest(method, target string, p proto.Proto, headers Headers, body Body) (*Request, error) {
	if len(method) == 0 || len(target) == 0 {
		return nil, status.ErrMalformedRequestLine
	}

	if headers == nil {
		headers = kv.New()
	}

	return &Request{
		Method:  method,
		Target:  target,
		Proto:   p.Or(proto.HTTP11),
		Headers: headers,
		Body:    body,
	}, nil
}

// Path returns the target without the query.
func (r *Request) Path() string {
	path, _, _ := strings.Cut(r.Target, "?")
	return path
}

// Query returns the raw query of the target, without the leading question mark.
func (r *Request) Query() string {
	_, query, _ := strings.Cut(r.Target, "?")
	return query
}

// Clone returns a deep copy of the request.
func (r *Request) Clone() *Request {
	return &Request{
		Method:  r.Method,
		Target:  r.Target,
		Proto:   r.Proto,
		Headers: r.Headers.Clone(),
		Body:    r.Body.clone(),
	}
}
