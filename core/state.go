package core

// Phase is the open/closed lifecycle of a popover.
type Phase int

const (
	Closed Phase = iota
	Open
)

func (p Phase) String() string {
	if p == Open {
		return "open"
	}
	return "closed"
}

// State is the complete observable state of one popover. It is a plain value:
// the reducer returns an identical value for transitions that change nothing,
// so callers can compare before/after to detect no-ops cheaply.
type State struct {
	Phase       Phase
	PanelLinked bool
	ButtonID    string
	PanelID     string
}

// Action is the closed set of transitions a Machine accepts. All variants are
// defined in this file; the reducer is total over them and can never fail.
type Action interface {
	isAction()
}

type toggleAction struct{}
type closeAction struct{}
type linkPanelAction struct{}
type unlinkPanelAction struct{}
type setButtonIDAction struct{ id string }
type setPanelIDAction struct{ id string }

func (toggleAction) isAction()      {}
func (closeAction) isAction()       {}
func (linkPanelAction) isAction()   {}
func (unlinkPanelAction) isAction() {}
func (setButtonIDAction) isAction() {}
func (setPanelIDAction) isAction()  {}

// Toggle flips the phase unconditionally.
var Toggle Action = toggleAction{}

// Close forces the phase to Closed; a no-op when already Closed.
var Close Action = closeAction{}

// LinkPanel marks a panel as attached; a no-op when already linked.
var LinkPanel Action = linkPanelAction{}

// UnlinkPanel marks the panel as detached; a no-op when already unlinked.
var UnlinkPanel Action = unlinkPanelAction{}

// SetButtonID overwrites the trigger identifier.
func SetButtonID(id string) Action { return setButtonIDAction{id: id} }

// SetPanelID overwrites the panel identifier.
func SetPanelID(id string) Action { return setPanelIDAction{id: id} }

// reduce is the total transition function over (State, Action). Transitions
// whose target equals the current state return the input unchanged.
func reduce(s State, a Action) State {
	switch a := a.(type) {
	case toggleAction:
		if s.Phase == Open {
			s.Phase = Closed
		} else {
			s.Phase = Open
		}
	case closeAction:
		s.Phase = Closed
	case linkPanelAction:
		s.PanelLinked = true
	case unlinkPanelAction:
		s.PanelLinked = false
	case setButtonIDAction:
		s.ButtonID = a.id
	case setPanelIDAction:
		s.PanelID = a.id
	}
	return s
}
