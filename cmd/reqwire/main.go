package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/indigo-web/reqwire"
	"github.com/indigo-web/reqwire/config"
	"github.com/indigo-web/reqwire/http"
	"github.com/indigo-web/reqwire/http/status"
	"github.com/rs/zerolog"
)

/*
reqwire reads exactly one raw HTTP/1.x request, either from a file, stdin or a single
accepted TCP connection, and prints it back in the chosen format. Useful for inspecting
what a client actually sends.
*/

type options struct {
	file       string
	listen     string
	format     string
	configPath string
	strict     bool
	binary     bool
	colorize   bool
	verbose    bool
}

func main() {
	var opts options

	flag.StringVar(&opts.file, "f", "", "File with raw HTTP request (default: stdin)")
	flag.StringVar(&opts.listen, "listen", "", "Accept a single connection on the address and read the request from it")
	flag.StringVar(&opts.format, "o", formatSummary, "Output format: summary, wire or json")
	flag.StringVar(&opts.configPath, "config", "", "JSON file with parser config, applied over the defaults (-listen) or over no limits (file, stdin)")
	flag.BoolVar(&opts.strict, "strict", false, "Reject unknown protocol versions")
	flag.BoolVar(&opts.binary, "binary", false, "Accept bodies that aren't valid UTF-8")
	flag.BoolVar(&opts.colorize, "c", true, "Colorize output")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose output")
	flag.Parse()

	logger := newLogger(os.Stderr, opts.verbose)
	color.NoColor = !opts.colorize

	if err := run(opts, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func run(opts options, stdin io.Reader, stdout io.Writer, logger zerolog.Logger) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	render, err := renderer(opts.format)
	if err != nil {
		return err
	}

	var request *http.Request

	switch {
	case len(opts.listen) > 0:
		request, err = fromListener(opts.listen, cfg, logger)
	case len(opts.file) > 0:
		request, err = fromFile(opts.file, cfg, logger)
	default:
		logger.Debug().Msg("reading request from stdin")
		request, err = reqwire.ReadRequest(stdin, cfg)
	}

	if err != nil {
		logger.Debug().
			Uint16("code", uint16(status.CodeOf(err))).
			Str("status", status.Text(status.CodeOf(err))).
			Msg("request rejected")

		return err
	}

	logger.Debug().
		Str("method", request.Method).
		Str("target", request.Target).
		Int("headers", request.Headers.Len()).
		Bool("body", request.Body.Present()).
		Msg("request parsed")

	return render(stdout, request)
}

// loadConfig picks the base config by the input: requests from a file or stdin are
// trusted, so no size limits apply, while a network peer is always held to the defaults.
// The config file, if any, is applied on top of that base.
func loadConfig(opts options) (cfg *config.Config, err error) {
	cfg = config.Unlimited()
	if len(opts.listen) > 0 {
		cfg = config.Default()
	}

	if len(opts.configPath) > 0 {
		if cfg, err = config.LoadOverlay(cfg, opts.configPath); err != nil {
			return nil, err
		}
	}

	cfg.Proto.Strict = cfg.Proto.Strict || opts.strict
	cfg.Body.Binary = cfg.Body.Binary || opts.binary

	return cfg, nil
}

func fromFile(path string, cfg *config.Config, logger zerolog.Logger) (*http.Request, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = file.Close()
	}()

	logger.Debug().Str("file", path).Msg("reading request from file")

	return reqwire.ReadRequest(file, cfg)
}

func fromListener(addr string, cfg *config.Config, logger zerolog.Logger) (*http.Request, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = listener.Close()
	}()

	return serveOne(listener, cfg, logger)
}

// serveOne accepts a single connection, reads the request out of it and tells the peer
// whether it succeeded.
func serveOne(listener net.Listener, cfg *config.Config, logger zerolog.Logger) (*http.Request, error) {
	logger.Info().Str("addr", listener.Addr().String()).Msg("waiting for a connection")

	conn, err := listener.Accept()
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = conn.Close()
	}()

	logger.Debug().Str("remote", conn.RemoteAddr().String()).Msg("accepted")

	request, client, err := reqwire.ReadConn(conn, cfg)
	if _, werr := client.Write(respond(err)); werr != nil {
		logger.Warn().Err(werr).Msg("cannot respond")
	}

	return request, err
}

// respond renders a minimal response, telling the peer whether the request was read.
func respond(err error) []byte {
	code, text := 200, "OK"
	if err != nil {
		code = int(status.CodeOf(err))
		text = status.Text(status.CodeOf(err))
	}

	return fmt.Appendf(nil, "HTTP/1.1 %d %s\r\nContent-Length: 0\r\nConnection: close\r\n\r\n", code, text)
}
