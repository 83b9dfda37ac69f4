package driver

import "time"

// Stage describes a phase of a scenario check.
type Stage string

const (
	// StageLoad reads and decodes the scenario file.
	StageLoad Stage = "load"
	// StageResolve replays the checks against a resolver.
	StageResolve Stage = "resolve"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the scenario is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the scenario is being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the scenario finished.
	StatusDone Status = "done"
	// StatusError indicates the scenario could not be checked.
	StatusError Status = "error"
)

// Event reports progress for one scenario file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use; CheckAll reports from several goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
