package core

import tea "github.com/charmbracelet/bubbletea"

// ButtonAttrs is the presentation contract for a trigger element: its stable
// id, whether the popover is expanded, and which panel it controls. Controls
// is populated only while a panel is actually linked, so the host never
// references a panel that does not exist.
type ButtonAttrs struct {
	ID       string
	Expanded bool
	Controls string
	Disabled bool
}

// Button interprets trigger input and drives the machine. It owns the
// trigger's entry in the focus scope but renders nothing; hosts read Attrs
// for presentation state.
//
// Constructing a Button without a Machine panics with *UsageError.
type Button struct {
	machine  *Machine
	keys     *KeyRegistry
	disabled bool
}

func NewButton(m *Machine, keys *KeyRegistry) *Button {
	mustMachine("Button", m)
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	b := &Button{machine: m, keys: keys}
	m.scope.Add(Node{ID: m.state.ButtonID})
	return b
}

// Attrs derives the trigger's presentation state from the current snapshot.
func (b *Button) Attrs() ButtonAttrs {
	st := b.machine.State()
	a := ButtonAttrs{
		ID:       st.ButtonID,
		Expanded: st.Phase == Open,
		Disabled: b.disabled,
	}
	if st.PanelLinked {
		a.Controls = st.PanelID
	}
	return a
}

// SetDisabled updates the disabled flag on both the controller and the
// scope's node record; Click checks both.
func (b *Button) SetDisabled(disabled bool) {
	b.disabled = disabled
	b.machine.scope.SetDisabled(b.machine.state.ButtonID, disabled)
}

// Disabled reports the controller-side disabled flag.
func (b *Button) Disabled() bool { return b.disabled }

// Focus moves focus onto the trigger.
func (b *Button) Focus() {
	b.machine.scope.Focus(b.machine.state.ButtonID)
}

// HandleKey interprets a key press targeted at the focused element. It
// returns true when the input was consumed and its default effect must be
// suppressed. Like a handler attached to the trigger element, it only acts
// while focus is within the trigger.
func (b *Button) HandleKey(msg tea.KeyMsg) bool {
	st := b.machine.State()
	if !b.machine.scope.Within(st.ButtonID) {
		return false
	}
	switch {
	case b.keys.IsAction(msg, ActionActivate, ScopeTrigger):
		if b.disabled {
			return false
		}
		b.activate()
		return true
	case b.keys.IsAction(msg, ActionDismiss, ScopeTrigger):
		if st.Phase == Open {
			b.machine.Dispatch(Close)
			return true
		}
		// Closed trigger: broadcast exclusivity for this button so sibling
		// popovers still dismiss, without changing our own state.
		if g := b.machine.group; g != nil {
			g.CloseOthers(st.ButtonID)
		}
		return false
	}
	return false
}

// Click reports a pointer press on the trigger. Secondary buttons never
// activate. Disabled is checked twice: the controller flag and the scope's
// node record, because some hosts keep reporting pointer events on a trigger
// they consider disabled.
func (b *Button) Click(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	if b.disabled {
		return false
	}
	if n, ok := b.machine.scope.Node(b.machine.state.ButtonID); ok && n.Disabled {
		return false
	}
	// Clicking focuses the trigger before toggling, as the platform would.
	b.Focus()
	b.activate()
	return true
}

// activate applies the exclusivity-then-toggle sequence: every sibling is
// fully Closed before our own Toggle, so two group members are never
// simultaneously open within one input event.
func (b *Button) activate() {
	st := b.machine.State()
	if st.Phase == Closed {
		if g := b.machine.group; g != nil {
			g.CloseOthers(st.ButtonID)
		}
	}
	b.machine.Dispatch(Toggle)
}

// Detach removes the trigger from the focus scope. Call on teardown.
func (b *Button) Detach() {
	b.machine.scope.Remove(b.machine.state.ButtonID)
}
