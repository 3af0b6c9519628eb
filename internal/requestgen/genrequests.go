package requestgen

import (
	"strconv"
	"strings"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/reqwire/http"
	"github.com/indigo-web/reqwire/http/proto"
	"github.com/indigo-web/reqwire/kv"
)

// Headers generates n headers, the last one of which is always Host.
func Headers(n int) *kv.Storage {
	hdrs := kv.NewPrealloc(n)

	for i := 0; i < n-1; i++ {
		hdrs.Add("some-random-header-name-nobody-cares-about"+strconv.Itoa(i), strings.Repeat("b", 100))
	}

	return hdrs.Add("Host", "localhost")
}

// RandomHeaders generates n headers with unique random names and values. Names consist
// of alphanumeric characters only, values are additionally free of surrounding
// whitespaces, so they survive the wire round-trip unchanged.
func RandomHeaders(n int) *kv.Storage {
	hdrs := kv.NewPrealloc(n)

	for i := 0; i < n; i++ {
		value := uniuri.NewLen(4) + uniuri.NewLenChars(24, valueChars) + uniuri.NewLen(4)
		hdrs.Add(uniuri.NewLen(8)+strconv.Itoa(i), value)
	}

	return hdrs
}

var valueChars = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 -_.,;=/\"")

// RandomRequest generates a request with random target, headers and, if bodyLen isn't
// negative, a body of that length along with a matching Content-Length.
func RandomRequest(headers, bodyLen int) *http.Request {
	request := &http.Request{
		Method:  "POST",
		Target:  "/" + uniuri.New() + "?" + uniuri.NewLen(4) + "=" + uniuri.NewLen(4),
		Proto:   proto.HTTP11,
		Headers: RandomHeaders(headers),
		Body:    http.NoBody,
	}

	if bodyLen >= 0 {
		request.Headers.Add("Content-Length", strconv.Itoa(bodyLen))
		request.Body = http.NewBodyString(uniuri.NewLen(bodyLen))
	}

	return request
}

func HeadersBlock(hdrs *kv.Storage) (buff []byte) {
	for key, value := range hdrs.Pairs() {
		buff = append(buff, key+": "+value+"\r\n"...)
	}

	return buff
}

func Generate(uri string, hdrs *kv.Storage) (request []byte) {
	request = append(request, "GET /"+uri+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)

	return append(request, '\r', '\n')
}
