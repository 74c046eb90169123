package cli

import (
	"bytes"
	"regexp"
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"

	"github.com/lacquerai/datagen/internal/style"
	"github.com/lacquerai/datagen/pkg/events"
)

const ansi = "[\u001B\u009B][[\\]()#;?]*(?:(?:(?:[a-zA-Z\\d]*(?:;[a-zA-Z\\d]*)*)?\u0007)|(?:(?:\\d{1,4}(?:;\\d{0,4})*)?[\\dA-PRZcf-ntqry=><~]))"

var re = regexp.MustCompile(ansi)

func feed(l events.Listener, evs ...events.Event) {
	ch := make(chan events.Event, len(evs))
	for _, e := range evs {
		e.RunID = "run"
		e.Timestamp = time.Unix(0, 0)
		ch <- e
	}
	close(ch)

	l.StartListening(ch)
	l.StopListening()
}

func newTestProgressListener(out *bytes.Buffer) *progressListener {
	return &progressListener{
		spinner: style.NewTestSpinner(nil, time.Millisecond, func(s *style.TestSpinner) {
			s.Writer = out
		}),
	}
}

func TestProgressListener_Completed(t *testing.T) {
	var out bytes.Buffer
	feed(newTestProgressListener(&out),
		events.Event{Type: events.EventGenerationStarted, Total: 4},
		events.Event{Type: events.EventGenerationProgress, Done: 2, Total: 4},
		events.Event{Type: events.EventGenerationProgress, Done: 4, Total: 4},
		events.Event{Type: events.EventGenerationCompleted, Done: 4, Total: 4},
		events.Event{Type: events.EventWriteStarted, Path: "json_init.json"},
		events.Event{Type: events.EventWriteCompleted, Path: "json_init.json", Done: 4, Total: 4, Bytes: 2048},
	)

	snaps.MatchSnapshot(t, re.ReplaceAllString(out.String(), ""))
}

func TestProgressListener_Failed(t *testing.T) {
	var out bytes.Buffer
	feed(newTestProgressListener(&out),
		events.Event{Type: events.EventGenerationStarted, Total: 4},
		events.Event{Type: events.EventGenerationProgress, Done: 2, Total: 4},
		events.Event{Type: events.EventRunFailed, Error: "generation interrupted: context canceled"},
	)

	snaps.MatchSnapshot(t, re.ReplaceAllString(out.String(), ""))
}

func TestProgressListener_StopWithoutStart(t *testing.T) {
	var out bytes.Buffer
	feed(newTestProgressListener(&out))
	assert.Empty(t, out.String())
}

func TestProgressListener_Humanizes(t *testing.T) {
	var out bytes.Buffer
	feed(newTestProgressListener(&out),
		events.Event{Type: events.EventGenerationStarted, Total: 10000},
	)

	assert.Contains(t, out.String(), "Generating 10,000 records")
}
