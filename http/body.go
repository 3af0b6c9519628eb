package http

import (
	"bytes"
	"io"

	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// Body is an optional request payload. A request has a body if and only if it declared
// its length, so a zero-length body is still present, as opposed to NoBody.
type Body struct {
	data    []byte
	present bool
}

// NoBody is the body of a request that didn't declare any length.
var NoBody = Body{}

// NewBody returns a present body. The data is not copied, so the body takes ownership
// over it.
func NewBody(data []byte) Body {
	if data == nil {
		data = []byte{}
	}

	return Body{
		data:    data,
		present: true,
	}
}

// NewBodyString returns a present body holding a copy of the string.
func NewBodyString(data string) Body {
	return NewBody([]byte(data))
}

// Present reports whether the request has a body at all.
func (b Body) Present() bool {
	return b.present
}

// Bytes returns the body. It is nil if the body isn't present.
func (b Body) Bytes() []byte {
	return b.data
}

// String returns the body as a string, sharing the memory with the body.
func (b Body) String() string {
	return uf.B2S(b.data)
}

// Len returns the length of the body. Absent body has zero length.
func (b Body) Len() int {
	return len(b.data)
}

// Reader returns a reader over the body.
func (b Body) Reader() io.Reader {
	return bytes.NewReader(b.data)
}

// JSON unmarshalls the body into the model. Absent body results in io.EOF.
func (b Body) JSON(model any) error {
	if !b.present {
		return io.EOF
	}

	return json.Unmarshal(b.data, model)
}

// Equal reports whether both bodies are either absent or present and equal.
func (b Body) Equal(other Body) bool {
	return b.present == other.present && bytes.Equal(b.data, other.data)
}

func (b Body) clone() Body {
	if !b.present {
		return NoBody
	}

	return NewBody(bytes.Clone(b.data))
}
