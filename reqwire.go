package reqwire

import (
	"io"
	"net"

	"github.com/indigo-web/reqwire/config"
	"github.com/indigo-web/reqwire/http"
	"github.com/indigo-web/reqwire/http1"
	"github.com/indigo-web/reqwire/transport"
)

// ReadRequest reads a single request out of the reader. Bytes following the request might
// be already consumed from the reader and are lost. In order to keep them, parse from a
// transport.Stream via http1.Parser directly. Nil config stands for config.Default().
func ReadRequest(r io.Reader, cfg *config.Config) (*http.Request, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	stream := transport.NewStream(r, make([]byte, cfg.NET.ReadBufferSize))

	return http1.NewParser(cfg).Parse(stream)
}

// ReadConn reads a single request out of the connection, setting cfg.NET.ReadTimeout as
// a deadline before every read. The returned client keeps whatever follows the request,
// so it may be reused for further reads. The connection is never closed. Nil config
// stands for config.Default().
func ReadConn(conn net.Conn, cfg *config.Config) (*http.Request, transport.Client, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	client := transport.NewClient(conn, cfg.NET.ReadTimeout, make([]byte, cfg.NET.ReadBufferSize))
	request, err := http1.NewParser(cfg).Parse(client)

	return request, client, err
}
