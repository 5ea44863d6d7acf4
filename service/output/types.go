package output

import (
	"io"

	"github.com/thirukguru/version-gate/model"
	checktable "github.com/thirukguru/version-gate/utils/check_table"
	jsonoutput "github.com/thirukguru/version-gate/utils/json_output"
	"github.com/thirukguru/version-gate/utils/spinner"
)

// Format represents the output format type
type Format string

const (
	FormatQuiet Format = "quiet"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Renderer defines the interface for drawing results
type Renderer interface {
	DrawCheckTable(w io.Writer, input model.RenderCheckInput)
	DrawHistoryTable(w io.Writer, records []model.CheckRecord)
	OutputCheckJSON(w io.Writer, input model.RenderCheckInput) error
	OutputHistoryJSON(w io.Writer, records []model.CheckRecord) error
	StartSpinner(w io.Writer)
	StopSpinner()
}

type realRenderer struct{}

func (r *realRenderer) DrawCheckTable(w io.Writer, input model.RenderCheckInput) {
	checktable.DrawCheckTable(w, input)
}

func (r *realRenderer) DrawHistoryTable(w io.Writer, records []model.CheckRecord) {
	checktable.DrawHistoryTable(w, records)
}

func (r *realRenderer) OutputCheckJSON(w io.Writer, input model.RenderCheckInput) error {
	return jsonoutput.OutputCheckJSON(w, input)
}

func (r *realRenderer) OutputHistoryJSON(w io.Writer, records []model.CheckRecord) error {
	return jsonoutput.OutputHistoryJSON(w, records)
}

func (r *realRenderer) StartSpinner(w io.Writer) {
	spinner.StartSpinner(w)
}

func (r *realRenderer) StopSpinner() {
	spinner.StopSpinner()
}

// service is the internal implementation
type service struct {
	format   Format
	out      io.Writer
	renderer Renderer
}

// Service defines the interface for output operations
type Service interface {
	Format() Format
	RenderCheck(input model.RenderCheckInput) error
	RenderHistory(records []model.CheckRecord) error
	StartSpinner(w io.Writer)
	StopSpinner()
}
