package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sushi-bros/internal/core"
)

// CueSink receives sound cues. Play must not block the tick loop and
// never reports back to the game.
type CueSink interface {
	Play(c core.Cue)
}

// NopSink drops every cue.
type NopSink struct{}

// Play implements CueSink.
func (NopSink) Play(core.Cue) {}

// BellSink rings the terminal bell for the cues worth interrupting for.
type BellSink struct {
	w    io.Writer
	ring map[core.Cue]bool
}

// NewBellSink creates a bell sink writing to w (a terminal or SSH session).
func NewBellSink(w io.Writer) *BellSink {
	return &BellSink{
		w: w,
		ring: map[core.Cue]bool{
			core.CuePlayerHit:   true,
			core.CueBossWarning: true,
			core.CueBossDefeat:  true,
			core.CueVictory:     true,
		},
	}
}

// Play implements CueSink.
func (s *BellSink) Play(c core.Cue) {
	if s.w == nil || !s.ring[c] {
		return
	}
	//nolint:errcheck // Fire-and-forget
	s.w.Write([]byte{'\a'})
}

// LogSink records cues at debug level.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink that logs every cue.
func NewLogSink(logger *log.Logger) LogSink {
	return LogSink{logger: logger}
}

// Play implements CueSink.
func (s LogSink) Play(c core.Cue) {
	if s.logger != nil {
		s.logger.Debug("cue", "name", c.String())
	}
}

// MultiSink fans cues out to several sinks in order.
type MultiSink []CueSink

// Play implements CueSink.
func (m MultiSink) Play(c core.Cue) {
	for _, s := range m {
		s.Play(c)
	}
}
