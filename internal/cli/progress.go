package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/lacquerai/datagen/internal/style"
	"github.com/lacquerai/datagen/pkg/events"
)

// progressListener renders run events on a spinner.
type progressListener struct {
	spinner style.Spinner
}

func newProgressListener(w io.Writer) *progressListener {
	return &progressListener{spinner: style.NewSpinner(w)}
}

func (p *progressListener) StartListening(progressChan <-chan events.Event) {
	for e := range progressChan {
		p.handle(e)
	}
}

func (p *progressListener) StopListening() {
	p.spinner.Stop()
}

func (p *progressListener) handle(e events.Event) {
	switch e.Type {
	case events.EventGenerationStarted:
		p.spinner.SetSuffix(fmt.Sprintf(" Generating %s records", humanize.Comma(int64(e.Total))))
		p.spinner.Start()
	case events.EventGenerationProgress:
		p.spinner.SetSuffix(fmt.Sprintf(" Generating records %d/%d", e.Done, e.Total))
	case events.EventWriteStarted:
		p.spinner.SetSuffix(" Writing " + e.Path)
	case events.EventWriteCompleted:
		p.spinner.SetFinalMSG(style.SuccessString(fmt.Sprintf("Generated %d records", e.Done)) + "\n")
		p.spinner.Stop()
	case events.EventRunFailed:
		p.spinner.SetFinalMSG(style.ErrorIcon() + " " + e.Error + "\n")
		p.spinner.Stop()
	}
}
