package main

import (
	"bytes"
	"io"
	"math"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/indigo-web/reqwire/config"
	"github.com/indigo-web/reqwire/http/status"
	"github.com/stretchr/testify/require"
)

const rawRequest = "POST /submit HTTP/1.1\r\nHost: localhost\r\nContent-Length: 5\r\n\r\nHello"

func runWith(t *testing.T, opts options, stdin string) (string, error) {
	color.NoColor = true

	var stdout bytes.Buffer
	err := run(opts, strings.NewReader(stdin), &stdout, newLogger(io.Discard, true))

	return stdout.String(), err
}

func TestRun(t *testing.T) {
	t.Run("wire", func(t *testing.T) {
		out, err := runWith(t, options{format: formatWire}, rawRequest)
		require.NoError(t, err)
		require.Equal(t, rawRequest, out)
	})

	t.Run("summary", func(t *testing.T) {
		out, err := runWith(t, options{format: formatSummary}, rawRequest)
		require.NoError(t, err)
		require.Equal(t,
			"POST /submit HTTP/1.1\n  Host: localhost\n  Content-Length: 5\nbody: 5 bytes\n", out,
		)
	})

	t.Run("summary without body", func(t *testing.T) {
		out, err := runWith(t, options{format: formatSummary}, "BREW /pot FOOBAR\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, "BREW /pot HTTP/1.1\nno body\n", out)
	})

	t.Run("json", func(t *testing.T) {
		out, err := runWith(t, options{format: formatJSON}, rawRequest)
		require.NoError(t, err)
		require.JSONEq(t, `{
			"method": "POST",
			"target": "/submit",
			"proto": "HTTP/1.1",
			"headers": [{"key": "Host", "value": "localhost"}, {"key": "Content-Length", "value": "5"}],
			"body": "Hello"
		}`, out)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "request.txt")
		require.NoError(t, os.WriteFile(path, []byte(rawRequest), 0o600))

		out, err := runWith(t, options{format: formatWire, file: path}, "")
		require.NoError(t, err)
		require.Equal(t, rawRequest, out)
	})

	t.Run("strict", func(t *testing.T) {
		_, err := runWith(t, options{format: formatWire, strict: true}, "GET / FOOBAR\r\n\r\n")
		require.ErrorIs(t, err, status.ErrUnsupportedProtocol)
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"Body": {"MaxSize": 4}}`), 0o600))

		_, err := runWith(t, options{format: formatWire, configPath: path}, rawRequest)
		require.ErrorIs(t, err, status.ErrBodyTooLarge)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := runWith(t, options{format: "xml"}, rawRequest)
		require.Error(t, err)
	})

	t.Run("malformed request", func(t *testing.T) {
		_, err := runWith(t, options{format: formatWire}, "POST / HTTP/1.1\r\nContent-Length: abc\r\n\r\n")
		require.ErrorIs(t, err, status.ErrBadContentLength)
	})
}

func TestRespond(t *testing.T) {
	require.Equal(t,
		"HTTP/1.1 200 OK\r\nContent-Length: 0\r\nConnection: close\r\n\r\n",
		string(respond(nil)),
	)
	require.Equal(t,
		"HTTP/1.1 431 Request Header Fields Too Large\r\nContent-Length: 0\r\nConnection: close\r\n\r\n",
		string(respond(status.ErrTooManyHeaders)),
	)
}

func TestLoadConfig(t *testing.T) {
	t.Run("trusted input", func(t *testing.T) {
		cfg, err := loadConfig(options{})
		require.NoError(t, err)
		require.Equal(t, config.Unlimited(), cfg)
	})

	t.Run("network peer", func(t *testing.T) {
		cfg, err := loadConfig(options{listen: "127.0.0.1:0"})
		require.NoError(t, err)
		require.Equal(t, config.Default(), cfg)
	})

	t.Run("config file keeps the base", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"Proto": {"Strict": true}}`), 0o600))

		cfg, err := loadConfig(options{configPath: path})
		require.NoError(t, err)
		require.True(t, cfg.Proto.Strict)
		require.Equal(t, math.MaxInt, cfg.Body.MaxSize)

		cfg, err = loadConfig(options{configPath: path, listen: "127.0.0.1:0"})
		require.NoError(t, err)
		require.True(t, cfg.Proto.Strict)
		require.Equal(t, config.Default().Body.MaxSize, cfg.Body.MaxSize)
	})
}

// exchange sends raw to the listener and returns everything the other side responded.
func exchange(listener net.Listener, raw string) <-chan string {
	response := make(chan string, 1)

	go func() {
		defer close(response)

		conn, err := net.Dial("tcp", listener.Addr().String())
		if err != nil {
			return
		}

		defer func() {
			_ = conn.Close()
		}()

		if _, err = conn.Write([]byte(raw)); err != nil {
			return
		}

		data, _ := io.ReadAll(conn)
		response <- string(data)
	}()

	return response
}

func TestServeOne(t *testing.T) {
	serve := func(t *testing.T, raw string) (target, response string, err error) {
		listener, lerr := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, lerr)
		defer func() {
			_ = listener.Close()
		}()

		responses := exchange(listener, raw)
		cfg, err := loadConfig(options{listen: listener.Addr().String()})
		require.NoError(t, err)

		request, err := serveOne(listener, cfg, newLogger(io.Discard, true))
		if request != nil {
			target = request.Target
		}

		return target, <-responses, err
	}

	t.Run("accepted", func(t *testing.T) {
		target, response, err := serve(t, rawRequest)
		require.NoError(t, err)
		require.Equal(t, "/submit", target)
		require.Equal(t, "HTTP/1.1 200 OK\r\nContent-Length: 0\r\nConnection: close\r\n\r\n", response)
	})

	t.Run("rejected", func(t *testing.T) {
		target, response, err := serve(t, "POST / HTTP/1.1\r\nContent-Length: abc\r\n\r\n")
		require.ErrorIs(t, err, status.ErrBadContentLength)
		require.Empty(t, target)
		require.Equal(t, "HTTP/1.1 400 Bad Request\r\nContent-Length: 0\r\nConnection: close\r\n\r\n", response)
	})

	t.Run("huge declared length", func(t *testing.T) {
		_, response, err := serve(t, "POST / HTTP/1.1\r\nContent-Length: 9223372036854775807\r\n\r\n")
		require.ErrorIs(t, err, status.ErrBodyTooLarge)
		require.Equal(t, "HTTP/1.1 413 Request Entity Too Large\r\nContent-Length: 0\r\nConnection: close\r\n\r\n", response)
	})
}
