package convert

import (
	"io"
	"testing"

	"github.com/indigo-web/reqwire/http"
	"github.com/indigo-web/reqwire/http/proto"
	"github.com/indigo-web/reqwire/kv"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func getRequest(t *testing.T) *http.Request {
	headers := kv.New().
		Set("Host", "example.com").
		Set("X-Custom-header", "value").
		Set("Content-Length", "5")

	request, err := http.NewRequest("POST", "/submit?lang=go", proto.HTTP10, headers, http.NewBodyString("Hello"))
	require.NoError(t, err)

	return request
}

func TestToFastHTTP(t *testing.T) {
	request := AcquireFastHTTP(getRequest(t))
	defer fasthttp.ReleaseRequest(request)

	require.Equal(t, "POST", string(request.Header.Method()))
	require.Equal(t, "/submit?lang=go", string(request.RequestURI()))
	require.Equal(t, "example.com", string(request.Host()))
	require.Equal(t, "value", string(request.Header.Peek("X-Custom-header")))
	require.Equal(t, "Hello", string(request.Body()))
}

func TestToFastHTTPNoBody(t *testing.T) {
	request, err := http.NewRequest("GET", "/", proto.HTTP11, nil, http.NoBody)
	require.NoError(t, err)

	dst := AcquireFastHTTP(request)
	defer fasthttp.ReleaseRequest(dst)

	require.Equal(t, "GET", string(dst.Header.Method()))
	require.Empty(t, dst.Body())
}

func TestToStd(t *testing.T) {
	request, err := ToStd(getRequest(t))
	require.NoError(t, err)

	require.Equal(t, "POST", request.Method)
	require.Equal(t, "/submit", request.URL.Path)
	require.Equal(t, "go", request.URL.Query().Get("lang"))
	require.Equal(t, "/submit?lang=go", request.RequestURI)
	require.Equal(t, "HTTP/1.0", request.Proto)
	require.Equal(t, 1, request.ProtoMajor)
	require.Equal(t, 0, request.ProtoMinor)
	require.Equal(t, "example.com", request.Host)
	require.Equal(t, "value", request.Header.Get("X-Custom-Header"))
	require.Equal(t, int64(5), request.ContentLength)

	body, err := io.ReadAll(request.Body)
	require.NoError(t, err)
	require.Equal(t, "Hello", string(body))
}

func TestToStdNoBody(t *testing.T) {
	request, err := http.NewRequest("GET", "/", proto.HTTP11, nil, http.NoBody)
	require.NoError(t, err)

	req, err := ToStd(request)
	require.NoError(t, err)
	require.Zero(t, req.ContentLength)
	require.Equal(t, "HTTP/1.1", req.Proto)
}

func TestToStdConnect(t *testing.T) {
	request, err := http.NewRequest("CONNECT", "example.com:443", proto.HTTP11, nil, http.NoBody)
	require.NoError(t, err)

	req, err := ToStd(request)
	require.NoError(t, err)
	require.Empty(t, req.URL.Scheme)
	require.Equal(t, "example.com:443", req.URL.Host)
	require.Equal(t, "example.com:443", req.Host)
	require.Equal(t, "example.com:443", req.RequestURI)

	request, err = http.NewRequest("CONNECT", "/tunnel", proto.HTTP11, kv.New().Set("Host", "proxy"), http.NoBody)
	require.NoError(t, err)

	req, err = ToStd(request)
	require.NoError(t, err)
	require.Equal(t, "/tunnel", req.URL.Path)
	require.Equal(t, "proxy", req.Host)
}
