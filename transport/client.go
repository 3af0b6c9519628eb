package transport

import (
	"io"
	"net"
	"time"
)

// Stream is a source of bytes the request is read from. Read returns the next chunk of
// data; the chunk stays valid only until the next call. Bytes that were read but not
// consumed are returned back via Pushback and must be returned by the following Read
// before anything else. Read never returns data along with an error: an error met
// together with data is returned by the following Read instead.
//
// Timeouts, cancellation and backpressure are all the responsibility of the Stream
// implementation.
type Stream interface {
	Read() ([]byte, error)
	Pushback([]byte)
}

type Client interface {
	Stream
	Write([]byte) (int, error)
	Conn() net.Conn
	Remote() net.Addr
	Close() error
}

type client struct {
	conn    net.Conn
	buff    []byte
	pending []byte
	err     error
	timeout time.Duration
}

func NewClient(conn net.Conn, timeout time.Duration, buff []byte) Client {
	return &client{
		buff:    buff,
		conn:    conn,
		timeout: timeout,
	}
}

// Read reads data into the internal buffer and returns a piece of it back. Timeouts are also
// handled automatically.
func (c *client) Read() ([]byte, error) {
	if len(c.pending) > 0 {
		pending := c.pending
		c.pending = nil

		return pending, nil
	}

	if c.err != nil {
		return nil, c.err
	}

	if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return nil, err
	}

	n, err := c.conn.Read(c.buff)
	return c.buff[:n], deferError(n, err, &c.err)
}

// Pushback preserves a chunk of data from previous read for the next read.
func (c *client) Pushback(b []byte) {
	c.pending = b
}

// Conn unwraps the underlying net.Conn.
func (c *client) Conn() net.Conn {
	return c.conn
}

// Write writes data into the underlying connection.
func (c *client) Write(b []byte) (int, error) {
	return c.conn.Write(b)
}

// Remote returns the remote address of the connection.
func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

// Close closes the connection.
func (c *client) Close() error {
	return c.conn.Close()
}

type stream struct {
	r       io.Reader
	buff    []byte
	pending []byte
	err     error
}

// NewStream wraps an arbitrary reader, e.g. a file or a TLS session. The reader is never
// closed by the stream.
func NewStream(r io.Reader, buff []byte) Stream {
	return &stream{
		r:    r,
		buff: buff,
	}
}

func (s *stream) Read() ([]byte, error) {
	if len(s.pending) > 0 {
		pending := s.pending
		s.pending = nil

		return pending, nil
	}

	if s.err != nil {
		return nil, s.err
	}

	n, err := s.r.Read(s.buff)
	return s.buff[:n], deferError(n, err, &s.err)
}

func (s *stream) Pushback(b []byte) {
	s.pending = b
}

// deferError stores the error into dst if it came along with data, so the data can be
// processed first. The stored error is sticky.
func deferError(n int, err error, dst *error) error {
	if n > 0 && err != nil {
		*dst = err
		return nil
	}

	return err
}
