package http1

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/reqwire/config"
	"github.com/indigo-web/reqwire/http"
	"github.com/indigo-web/reqwire/http/proto"
	"github.com/indigo-web/reqwire/http/status"
	"github.com/indigo-web/reqwire/internal/buffer"
	"github.com/indigo-web/reqwire/internal/strutil"
	"github.com/indigo-web/reqwire/kv"
	"github.com/indigo-web/reqwire/transport"
)

// MalformedHeader is stored as both key and value of a header line lacking the colon.
// Such lines are lossy, but don't fail the request. As keys are unique, all the
// malformed lines of a request collapse into a single pair.
const MalformedHeader = "None"

const (
	contentLength    = "Content-Length"
	transferEncoding = "Transfer-Encoding"
)

// Parser reads requests out of a blocking stream. A request is processed in three stages:
// the request line, headers until the blank line and the body, which is read only if the
// length was declared. Any failure is terminal for the request: nothing but an error is
// returned, and nothing is retried.
//
// The parser may be reused sequentially, however mustn't be used concurrently. Returned
// requests share no memory with it.
type Parser struct {
	cfg  *config.Config
	line buffer.Buffer
}

func NewParser(cfg *config.Config) *Parser {
	return &Parser{
		cfg:  cfg,
		line: buffer.New(cfg.Line.Size.Default, cfg.Line.Size.Maximal),
	}
}

// Parse reads exactly one request. Bytes following it are pushed back into the stream
// untouched. The stream is only borrowed for the duration of the call.
func (p *Parser) Parse(stream transport.Stream) (*http.Request, error) {
	method, target, protocol, err := p.requestLine(stream)
	if err != nil {
		return nil, err
	}

	headers, err := p.headers(stream)
	if err != nil {
		return nil, err
	}

	body, err := p.body(stream, headers)
	if err != nil {
		return nil, err
	}

	return http.NewRequest(method, target, protocol, headers, body)
}

func (p *Parser) requestLine(stream transport.Stream) (method, target string, protocol proto.Proto, err error) {
	line, eof, err := p.readLine(stream, status.ErrTooLongRequestLine)
	switch {
	case err != nil:
		return "", "", proto.Unknown, err
	case eof && len(line) == 0:
		return "", "", proto.Unknown, fmt.Errorf("%w: %w", status.ErrUnreadableLine, io.EOF)
	}

	// the only copy of the line, so tokens don't refer to the parser's buffer
	rest := string(line)
	method, rest = strutil.CutField(rest)
	target, rest = strutil.CutField(rest)
	if len(method) == 0 || len(target) == 0 {
		return "", "", proto.Unknown, status.ErrMalformedRequestLine
	}

	version, _ := strutil.CutField(rest)
	protocol = proto.FromString(version)
	if protocol == proto.Unknown {
		if p.cfg.Proto.Strict {
			return "", "", proto.Unknown, status.ErrUnsupportedProtocol
		}

		protocol = proto.HTTP11
	}

	return method, target, protocol, nil
}

func (p *Parser) headers(stream transport.Stream) (*kv.Storage, error) {
	var (
		headers = kv.NewPrealloc(p.cfg.Headers.Number.Default)
		space   int
	)

	for n := 0; ; n++ {
		line, eof, err := p.readLine(stream, status.ErrHeaderFieldsTooLarge)
		if err != nil {
			return nil, err
		}

		if len(line) == 0 {
			// either the blank line or a closed stream. Both terminate the headers section
			break
		}

		if n >= p.cfg.Headers.Number.Maximal {
			return nil, status.ErrTooManyHeaders
		}

		if space += len(line); space > p.cfg.Headers.Space.Maximal {
			return nil, status.ErrHeaderFieldsTooLarge
		}

		headers.Set(splitHeader(string(line)))

		if eof {
			break
		}
	}

	return headers, nil
}

func splitHeader(line string) (key, value string) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return MalformedHeader, MalformedHeader
	}

	return key, strutil.StripWS(value)
}

func (p *Parser) body(stream transport.Stream, headers *kv.Storage) (http.Body, error) {
	if !p.cfg.Body.AllowTransferEncoding && headers.Has(transferEncoding) {
		return http.NoBody, status.ErrUnsupportedTransferEncoding
	}

	value, found := headers.Get(contentLength)
	if !found {
		return http.NoBody, nil
	}

	length, ok := parseContentLength(value)
	if !ok {
		return http.NoBody, status.ErrBadContentLength
	}

	if length > p.cfg.Body.MaxSize {
		return http.NoBody, status.ErrBodyTooLarge
	}

	body, err := readBody(stream, length, min(length, p.cfg.NET.ReadBufferSize))
	if err != nil {
		return http.NoBody, fmt.Errorf("%w: %w", status.ErrTruncatedBody, err)
	}

	if !p.cfg.Body.Binary && !utf8.Valid(body) {
		return http.NoBody, status.ErrInvalidBodyEncoding
	}

	return http.NewBody(body), nil
}

// readLine reads until LF, returning the line with its terminator stripped. The eof flag
// is set if the stream was closed before the terminator was met; whatever was read so far
// is returned as the line. Lines longer than the configured limit result in tooLong.
func (p *Parser) readLine(stream transport.Stream, tooLong error) (line []byte, eof bool, err error) {
	p.line.Clear()

	for {
		data, readErr := stream.Read()
		if lf := bytes.IndexByte(data, '\n'); lf != -1 {
			if !p.line.Append(data[:lf+1]) {
				return nil, false, tooLong
			}

			stream.Pushback(data[lf+1:])

			return strutil.TrimLineTerminator(p.line.Bytes()), false, nil
		}

		if !p.line.Append(data) {
			return nil, false, tooLong
		}

		switch {
		case readErr == nil:
		case errors.Is(readErr, io.EOF):
			return strutil.TrimLineTerminator(p.line.Bytes()), true, nil
		default:
			return nil, false, fmt.Errorf("%w: %w", status.ErrUnreadableLine, readErr)
		}
	}
}

// readBody reads exactly length bytes, pushing back everything beyond them. The buffer
// grows along with the received data, so the declared length alone never makes a large
// allocation. Stream closed prematurely results in io.ErrUnexpectedEOF.
func readBody(stream transport.Stream, length, prealloc int) ([]byte, error) {
	body := make([]byte, 0, prealloc)

	for len(body) < length {
		data, err := stream.Read()
		if rest := length - len(body); len(data) > rest {
			stream.Pushback(data[rest:])
			data = data[:rest]
		}

		body = append(body, data...)
		if len(body) == length {
			break
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil, io.ErrUnexpectedEOF
		default:
			return nil, err
		}
	}

	return body, nil
}

// Parse is a shorthand for parsing a single request with the default config.
func Parse(stream transport.Stream) (*http.Request, error) {
	return NewParser(config.Default()).Parse(stream)
}
