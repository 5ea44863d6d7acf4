package spinner

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

var loader *spinner.Spinner

// StartSpinner starts the "waiting for input" spinner on w.
func StartSpinner(w io.Writer) {
	loader = spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(w))
	loader.Color("yellow") //nolint:errcheck
	loader.Suffix = " Waiting for a version line on stdin (e.g. \"SDL:3.2.8\")..."
	loader.Start()
}

// StopSpinner stops the spinner if it is running.
func StopSpinner() {
	if loader != nil {
		loader.Stop()
		loader = nil
	}
}
