package dummy

import (
	"io"
	"net"
	"time"
)

var _ net.Conn = new(Conn)

// Conn is a net.Conn serving the data it was fed with and recording everything written
// into it. Deadlines are accepted and ignored.
type Conn struct {
	Data []byte
	in   []byte
	nop  bool
}

func NewConn(in []byte) *Conn {
	return &Conn{in: in}
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if len(c.in) == 0 {
		return 0, io.EOF
	}

	n = copy(b, c.in)
	c.in = c.in[n:]

	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if !c.nop {
		c.Data = append(c.Data, b...)
	}

	return len(b), nil
}

func (c *Conn) Close() error {
	return nil
}

func (c *Conn) LocalAddr() net.Addr {
	return nil
}

func (c *Conn) RemoteAddr() net.Addr {
	return nil
}

func (c *Conn) SetDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetReadDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetWriteDeadline(time.Time) error {
	return nil
}

// Nop disables recording of written data.
func (c *Conn) Nop() *Conn {
	c.nop = true
	return c
}
