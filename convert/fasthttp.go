// Package convert turns parsed requests into the request types of other HTTP stacks. It is
// the only place depending on them, so the request model stays independent.
package convert

import (
	"github.com/indigo-web/reqwire/http"
	"github.com/valyala/fasthttp"
)

// ToFastHTTP fills dst, which is reset first. Header names are kept exactly as received.
// fasthttp maintains Content-Length and Host on its own, so they are taken from the
// corresponding headers and the body.
func ToFastHTTP(request *http.Request, dst *fasthttp.Request) {
	dst.Reset()
	dst.Header.DisableNormalizing()
	dst.Header.SetMethod(request.Method)
	dst.SetRequestURI(request.Target)

	for key, value := range request.Headers.Pairs() {
		dst.Header.Set(key, value)
	}

	if request.Body.Present() {
		dst.SetBody(request.Body.Bytes())
	}
}

// AcquireFastHTTP is like ToFastHTTP, but takes the request from fasthttp's pool. It must
// be returned via fasthttp.ReleaseRequest.
func AcquireFastHTTP(request *http.Request) *fasthttp.Request {
	dst := fasthttp.AcquireRequest()
	ToFastHTTP(request, dst)

	return dst
}
