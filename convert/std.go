package convert

import (
	"io"
	nethttp "net/http"
	"strings"

	"github.com/indigo-web/reqwire/http"
	"github.com/indigo-web/reqwire/http/proto"
)

// ToStd returns the request as a server-side net/http request. Header names are
// canonicalized by net/http; repeated names can't occur, as the parser keeps the
// last value only.
func ToStd(request *http.Request) (*nethttp.Request, error) {
	var body io.Reader = nethttp.NoBody
	if request.Body.Present() {
		body = request.Body.Reader()
	}

	// CONNECT carries the authority alone, which url.Parse would take for a scheme
	target := request.Target
	authority := request.Method == nethttp.MethodConnect && !strings.HasPrefix(target, "/")
	if authority {
		target = "http://" + target
	}

	req, err := nethttp.NewRequest(request.Method, target, body)
	if err != nil {
		return nil, err
	}

	if authority {
		req.URL.Scheme = ""
	}

	req.RequestURI = request.Target
	req.Proto = request.Proto.Or(proto.HTTP11).String()
	req.ProtoMajor, req.ProtoMinor, _ = nethttp.ParseHTTPVersion(req.Proto)

	for key, value := range request.Headers.Pairs() {
		req.Header.Set(key, value)
	}

	if host := req.Header.Get("Host"); len(host) > 0 {
		req.Host = host
		req.Header.Del("Host")
	}

	req.ContentLength = int64(request.Body.Len())
	if !request.Body.Present() {
		req.ContentLength = 0
		req.Header.Del("Content-Length")
	}

	return req, nil
}
