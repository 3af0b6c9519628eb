package transport

import (
	"errors"
	"io"
	"net"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStream(t *testing.T) {
	t.Run("chunked reads", func(t *testing.T) {
		s := NewStream(iotest.OneByteReader(strings.NewReader("ab")), make([]byte, 16))

		data, err := s.Read()
		require.NoError(t, err)
		require.Equal(t, "a", string(data))

		data, err = s.Read()
		require.NoError(t, err)
		require.Equal(t, "b", string(data))

		_, err = s.Read()
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("data along with error", func(t *testing.T) {
		s := NewStream(iotest.DataErrReader(strings.NewReader("ab")), make([]byte, 16))

		data, err := s.Read()
		require.NoError(t, err)
		require.Equal(t, "ab", string(data))

		s.Pushback(data[1:])
		data, err = s.Read()
		require.NoError(t, err)
		require.Equal(t, "b", string(data))

		for i := 0; i < 2; i++ {
			_, err = s.Read()
			require.ErrorIs(t, err, io.EOF)
		}
	})

	t.Run("pushback", func(t *testing.T) {
		s := NewStream(strings.NewReader("Hello, world!"), make([]byte, 16))

		data, err := s.Read()
		require.NoError(t, err)
		require.Equal(t, "Hello, world!", string(data))
		s.Pushback(data[7:])

		data, err = s.Read()
		require.NoError(t, err)
		require.Equal(t, "world!", string(data))
	})
}

type dataErrConn struct {
	net.Conn
	data string
	err  error
}

func (c *dataErrConn) Read(b []byte) (int, error) {
	n := copy(b, c.data)
	c.data = c.data[n:]

	return n, c.err
}

func TestClient(t *testing.T) {
	server, peer := net.Pipe()
	defer server.Close()
	defer peer.Close()

	go func() {
		_, _ = peer.Write([]byte("Hello"))
	}()

	c := NewClient(server, time.Second, make([]byte, 16))
	data, err := c.Read()
	require.NoError(t, err)
	require.Equal(t, "Hello", string(data))

	c.Pushback(data[1:])
	data, err = c.Read()
	require.NoError(t, err)
	require.Equal(t, "ello", string(data))
	require.Equal(t, server, c.Conn())

	t.Run("read deadline", func(t *testing.T) {
		c := NewClient(server, 10*time.Millisecond, make([]byte, 16))
		_, err := c.Read()
		require.Error(t, err)

		var netErr net.Error
		require.ErrorAs(t, err, &netErr)
		require.True(t, netErr.Timeout())
	})

	t.Run("data along with error", func(t *testing.T) {
		failure := errors.New("connection reset by peer")
		c := NewClient(&dataErrConn{Conn: server, data: "Hello", err: failure}, time.Second, make([]byte, 16))

		data, err := c.Read()
		require.NoError(t, err)
		require.Equal(t, "Hello", string(data))

		_, err = c.Read()
		require.ErrorIs(t, err, failure)
	})
}
