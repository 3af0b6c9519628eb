package config

import (
	"math"
	"os"
	"time"

	json "github.com/json-iterator/go"
)

type (
	LineSize struct {
		Default, Maximal int
	}

	HeadersNumber struct {
		Default, Maximal int
	}

	HeadersSpace struct {
		Maximal int
	}
)

type (
	Line struct {
		// Size of a single line, either the request line or a header line. Default is the
		// initial capacity of the buffer accumulating lines split across multiple reads,
		// Maximal is the length a line mustn't exceed (line terminator included).
		Size LineSize
	}

	Headers struct {
		// Number is responsible for the headers storage size.
		// Default value is an initial size of allocated headers storage.
		// Maximal value is maximum number of header lines allowed to be presented.
		Number HeadersNumber
		// Space limits the total amount of bytes occupied by header lines.
		Space HeadersSpace
	}

	Body struct {
		// MaxSize describes the maximal size of a body, that can be processed. Content-Length
		// exceeding it results in status.ErrBodyTooLarge before any allocation is made. In
		// order to disable the setting, use the math.MaxInt value.
		MaxSize int
		// Binary disables UTF-8 validation of the body, so arbitrary bytes are accepted.
		Binary bool `test:"nullable"`
		// AllowTransferEncoding disables rejecting requests carrying the Transfer-Encoding
		// header. Such requests are then processed as if the header wasn't there, leaving
		// the encoded body in the stream.
		AllowTransferEncoding bool `test:"nullable"`
	}

	Proto struct {
		// Strict makes unrecognized protocol versions fail with status.ErrUnsupportedProtocol
		// instead of silently resolving to HTTP/1.1.
		Strict bool `test:"nullable"`
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket
		ReadBufferSize int
		// ReadTimeout is set as a read deadline before every read from the connection. The
		// parser has no cancellation mechanism of its own, so this is the only thing that
		// prevents a slow peer from blocking it forever.
		ReadTimeout time.Duration
	}
)

// Config holds limitations and policies applied while parsing a request.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors. Partially
// filled configs can be completed via Fill.
type Config struct {
	Line    Line
	Headers Headers
	Body    Body
	Proto   Proto
	NET     NET
}

// Default returns default config. Those are initially well-balanced, however maximal defaults
// are pretty permitting.
func Default() *Config {
	return &Config{
		Line: Line{
			Size: LineSize{
				Default: 1024,
				// most web-entities limit the request line to 4-8kb. Long cookies, however,
				// may be larger than that.
				Maximal: 16 * 1024,
			},
		},
		Headers: Headers{
			Number: HeadersNumber{
				Default: 10,
				Maximal: 100,
			},
			Space: HeadersSpace{
				Maximal: 64 * 1024,
			},
		},
		Body: Body{
			MaxSize: 512 * 1024 * 1024, // 512 megabytes
		},
		NET: NET{
			ReadBufferSize: 4 * 1024,
			ReadTimeout:    90 * time.Second,
		},
	}
}

// Fill takes a partially filled config and fills zero fields with default values.
func Fill(original Config) *Config {
	d := Default()

	original.Line.Size.Default = customOrDefault(original.Line.Size.Default, d.Line.Size.Default)
	original.Line.Size.Maximal = customOrDefault(original.Line.Size.Maximal, d.Line.Size.Maximal)
	original.Headers.Number.Default = customOrDefault(
		original.Headers.Number.Default, d.Headers.Number.Default,
	)
	original.Headers.Number.Maximal = customOrDefault(
		original.Headers.Number.Maximal, d.Headers.Number.Maximal,
	)
	original.Headers.Space.Maximal = customOrDefault(
		original.Headers.Space.Maximal, d.Headers.Space.Maximal,
	)
	original.Body.MaxSize = customOrDefault(original.Body.MaxSize, d.Body.MaxSize)
	original.NET.ReadBufferSize = customOrDefault(original.NET.ReadBufferSize, d.NET.ReadBufferSize)
	original.NET.ReadTimeout = customOrDefault(original.NET.ReadTimeout, d.NET.ReadTimeout)

	return &original
}

// Unlimited returns the default config with all the size limits lifted. Must be used
// with trusted inputs only, e.g. requests dumped into files: the line buffer is then
// bounded only by the input itself.
func Unlimited() *Config {
	cfg := Default()
	cfg.Line.Size.Maximal = math.MaxInt
	cfg.Headers.Number.Maximal = math.MaxInt
	cfg.Headers.Space.Maximal = math.MaxInt
	cfg.Body.MaxSize = math.MaxInt

	return cfg
}

// FromJSON decodes the config on top of defaults, so omitted fields keep their default
// values. Durations are represented in nanoseconds.
func FromJSON(data []byte) (*Config, error) {
	return Overlay(Default(), data)
}

// Overlay is like FromJSON, but decodes on top of a copy of base. Fields set to zero are
// still filled with defaults. The base itself is left untouched.
func Overlay(base *Config, data []byte) (*Config, error) {
	cfg := *base
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return Fill(cfg), nil
}

// Load reads the file and decodes it via FromJSON.
func Load(path string) (*Config, error) {
	return LoadOverlay(Default(), path)
}

// LoadOverlay reads the file and decodes it via Overlay.
func LoadOverlay(base *Config, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Overlay(base, data)
}

func customOrDefault[T int | time.Duration](custom, defaultVal T) T {
	if custom == 0 {
		return defaultVal
	}

	return custom
}
