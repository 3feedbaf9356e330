package driver

import "time"

// Stage names a step of a file check.
type Stage string

const (
	StageLoad  Stage = "load"
	StageLex   Stage = "lex"
	StageTree  Stage = "tree"
	StageSpell Stage = "spell"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for a file, or for the whole run when File is empty.
type Event struct {
	File     string
	Stage    Stage
	Status   Status
	Err      error
	Elapsed  time.Duration
	Findings int // diagnostics produced by the file, set on StatusDone
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use; CheckPaths emits from several workers.
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
