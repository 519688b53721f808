package core

import (
	"fmt"

	"github.com/google/uuid"
)

// IDSource produces unique identifiers, stable for the lifetime of the widget
// instance they are assigned to. A Machine consumes one id per popover and
// derives its button and panel identifiers from it.
type IDSource interface {
	NextID() string
}

// UUIDSource issues random UUIDs. This is the right default for hosts that
// create popovers dynamically and must never collide.
type UUIDSource struct{}

func (UUIDSource) NextID() string { return uuid.NewString() }

// SeqSource issues deterministic sequential ids. Tests and demos use it so
// identifiers are predictable across runs.
type SeqSource struct {
	prefix string
	n      int
}

func NewSeqSource(prefix string) *SeqSource {
	return &SeqSource{prefix: prefix}
}

func (s *SeqSource) NextID() string {
	s.n++
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}

func buttonIDFor(id string) string { return "popover-button-" + id }
func panelIDFor(id string) string  { return "popover-panel-" + id }
