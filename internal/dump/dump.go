package dump

import (
	"unicode/utf8"

	"github.com/indigo-web/reqwire/http"
	json "github.com/json-iterator/go"
)

type header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type request struct {
	Method  string   `json:"method"`
	Target  string   `json:"target"`
	Proto   string   `json:"proto"`
	Headers []header `json:"headers"`
	// Body is null if absent. Bodies that aren't valid UTF-8 go to BinaryBody instead,
	// which is base64-encoded by the encoder.
	Body       *string `json:"body"`
	BinaryBody []byte  `json:"binary_body,omitempty"`
}

// JSON renders the request as a JSON object. Headers are represented as a list in
// order to keep their order.
func JSON(r *http.Request) ([]byte, error) {
	return json.Marshal(model(r))
}

// JSONIndent is like JSON, but the output is indented.
func JSONIndent(r *http.Request) ([]byte, error) {
	return json.MarshalIndent(model(r), "", "  ")
}

func model(r *http.Request) request {
	m := request{
		Method:  r.Method,
		Target:  r.Target,
		Proto:   r.Proto.String(),
		Headers: make([]header, 0, r.Headers.Len()),
	}

	for key, value := range r.Headers.Pairs() {
		m.Headers = append(m.Headers, header{Key: key, Value: value})
	}

	switch body := r.Body.Bytes(); {
	case !r.Body.Present():
	case utf8.Valid(body):
		text := string(body)
		m.Body = &text
	default:
		m.BinaryBody = body
	}

	return m
}
