package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/reqwire/transport"
)

var _ transport.Client = new(Client)

// Client returns the slices it was initialised with one by one. Once they are exhausted,
// it either starts over (if looping is enabled) or returns the terminal error, io.EOF by
// default. It also records all the written data, making it thereby a universal mock
// suitable for most of the tests.
type Client struct {
	closed  bool
	loop    bool
	pointer int
	tmp     []byte
	written []byte
	data    [][]byte
	err     error
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		data: data,
		err:  io.EOF,
	}
}

// NewSplitClient splits the data into n-sized parts, so every read returns no more than
// n bytes.
func NewSplitClient(data []byte, n int) *Client {
	var parts [][]byte

	for i := 0; i < len(data); i += n {
		parts = append(parts, data[i:min(i+n, len(data))])
	}

	return NewMockClient(parts...)
}

func (c *Client) Read() (data []byte, err error) {
	if c.closed {
		return nil, io.EOF
	}

	if len(c.tmp) > 0 {
		data, c.tmp = c.tmp, nil

		return data, nil
	}

	if c.pointer >= len(c.data) {
		if !c.loop || len(c.data) == 0 {
			return nil, c.err
		}

		c.pointer = 0
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *Client) Pushback(takeback []byte) {
	c.tmp = takeback
}

// Pending returns data preserved via Pushback, if any.
func (c *Client) Pending() []byte {
	return c.tmp
}

// Rest returns everything not consumed yet, including pushed back data.
func (c *Client) Rest() (rest []byte) {
	rest = append(rest, c.tmp...)

	for _, piece := range c.data[min(c.pointer, len(c.data)):] {
		rest = append(rest, piece...)
	}

	return rest
}

func (c *Client) Write(p []byte) (int, error) {
	c.written = append(c.written, p...)
	return len(p), nil
}

func (c *Client) Conn() net.Conn {
	return new(Conn).Nop()
}

func (*Client) Remote() net.Addr {
	return nil
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// LoopReads makes the client start over once all the data was returned.
func (c *Client) LoopReads() *Client {
	c.loop = true
	return c
}

// FailWith replaces the io.EOF returned after exhausting the data.
func (c *Client) FailWith(err error) *Client {
	c.err = err
	return c
}

// Written returns everything written into the client so far.
func (c *Client) Written() string {
	return string(c.written)
}
