// Package output provides a service for rendering results to the console.
package output

import (
	"io"

	"github.com/thirukguru/version-gate/model"
)

// NewService creates a new output service with the specified format. Unknown
// formats fall back to quiet.
func NewService(format string, out io.Writer) Service {
	return newService(format, out, &realRenderer{})
}

func newService(format string, out io.Writer, renderer Renderer) *service {
	f := FormatQuiet
	switch format {
	case "table":
		f = FormatTable
	case "json":
		f = FormatJSON
	}

	return &service{
		format:   f,
		out:      out,
		renderer: renderer,
	}
}

func (s *service) Format() Format {
	return s.format
}

// RenderCheck prints the run result. Quiet output prints nothing; failures
// are reported on stderr by the caller.
func (s *service) RenderCheck(input model.RenderCheckInput) error {
	switch s.format {
	case FormatJSON:
		return s.renderer.OutputCheckJSON(s.out, input)
	case FormatTable:
		s.renderer.DrawCheckTable(s.out, input)
	}
	return nil
}

// RenderHistory prints stored records. Quiet falls back to a table since a
// listing with no output is useless.
func (s *service) RenderHistory(records []model.CheckRecord) error {
	if s.format == FormatJSON {
		return s.renderer.OutputHistoryJSON(s.out, records)
	}
	s.renderer.DrawHistoryTable(s.out, records)
	return nil
}

func (s *service) StartSpinner(w io.Writer) {
	s.renderer.StartSpinner(w)
}

func (s *service) StopSpinner() {
	s.renderer.StopSpinner()
}
