package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/indigo-web/reqwire/http"
	"github.com/indigo-web/reqwire/http/method"
	"github.com/indigo-web/reqwire/http1"
	"github.com/indigo-web/reqwire/internal/dump"
)

const (
	formatSummary = "summary"
	formatWire    = "wire"
	formatJSON    = "json"
)

var (
	green   = color.New(color.FgGreen)
	yellow  = color.New(color.FgYellow)
	cyan    = color.New(color.FgCyan)
	magenta = color.New(color.FgMagenta)
)

type renderFunc func(io.Writer, *http.Request) error

func renderer(format string) (renderFunc, error) {
	switch format {
	case formatSummary:
		return renderSummary, nil
	case formatWire:
		return renderWire, nil
	case formatJSON:
		return renderJSON, nil
	default:
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
}

func renderWire(w io.Writer, request *http.Request) error {
	_, err := http1.WriteTo(w, request)
	return err
}

func renderJSON(w io.Writer, request *http.Request) error {
	data, err := dump.JSONIndent(request)
	if err != nil {
		return err
	}

	_, err = w.Write(append(data, '\n'))
	return err
}

func renderSummary(w io.Writer, request *http.Request) error {
	methodColor := green
	if method.Parse(request.Method) == method.Unknown {
		methodColor = yellow
	}

	if _, err := fmt.Fprintf(w, "%s %s %s\n",
		methodColor.Sprint(request.Method), request.Target, request.Proto,
	); err != nil {
		return err
	}

	for key, value := range request.Headers.Pairs() {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", cyan.Sprint(key), value); err != nil {
			return err
		}
	}

	var err error
	if request.Body.Present() {
		_, err = fmt.Fprintf(w, "%s\n", magenta.Sprintf("body: %d bytes", request.Body.Len()))
	} else {
		_, err = fmt.Fprintf(w, "%s\n", magenta.Sprint("no body"))
	}

	return err
}
