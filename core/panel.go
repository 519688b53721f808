package core

import tea "github.com/charmbracelet/bubbletea"

// Strategy is the render strategy for a panel while its popover is closed.
//
//   - Static: the panel is always structurally present; visibility is the
//     host's concern and phase changes have no linkage side effects.
//   - Unmount (the default): the panel exists only while open; closing
//     removes it from the structure entirely.
//   - Neither: the panel stays present but is hidden, unreachable by
//     sequential focus navigation, while closed.
type Strategy struct {
	Static  bool
	Unmount bool
}

// DefaultStrategy removes the panel from the structure while closed.
func DefaultStrategy() Strategy { return Strategy{Unmount: true} }

// PanelAttrs is the presentation contract for a panel element.
type PanelAttrs struct {
	ID     string
	Open   bool
	Hidden bool
}

// Panel manages panel presence, focus linkage, and cancel handling for one
// popover. Content nodes handed to Attach enter the focus scope right after
// the trigger whenever the panel is structurally present.
//
// Constructing a Panel without a Machine panics with *UsageError.
type Panel struct {
	machine  *Machine
	keys     *KeyRegistry
	strategy Strategy
	items    []Node
	attached bool
	mounted  bool
	unsub    func()
}

func NewPanel(m *Machine, keys *KeyRegistry, strategy Strategy) *Panel {
	mustMachine("Panel", m)
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	return &Panel{machine: m, keys: keys, strategy: strategy}
}

// Attrs derives the panel's presentation state from the current snapshot.
func (p *Panel) Attrs() PanelAttrs {
	st := p.machine.State()
	return PanelAttrs{
		ID:     st.PanelID,
		Open:   st.Phase == Open,
		Hidden: p.Hidden(),
	}
}

// Mounted reports whether the panel is structurally present right now.
func (p *Panel) Mounted() bool { return p.mounted }

// Hidden reports whether the panel is present but visually hidden, which is
// only the case for the keep-but-hide strategy while closed.
func (p *Panel) Hidden() bool {
	return p.mounted && !p.strategy.Static && !p.strategy.Unmount &&
		p.machine.State().Phase == Closed
}

// Attach hands the panel its focusable content and starts tracking phase
// transitions. The first attachment links the panel; repeated calls are
// no-ops until Detach.
func (p *Panel) Attach(items ...Node) {
	if p.attached {
		return
	}
	p.attached = true
	p.items = items
	p.unsub = p.machine.Subscribe(p.onTransition)
	if p.present() {
		p.mount()
	}
}

// Detach tears the panel down: content leaves the focus scope and the panel
// unlinks unconditionally.
func (p *Panel) Detach() {
	if !p.attached {
		return
	}
	p.attached = false
	if p.unsub != nil {
		p.unsub()
		p.unsub = nil
	}
	p.unmount()
	p.machine.Dispatch(UnlinkPanel)
}

// HandleKey interprets a key press while the panel holds focus. Cancel closes
// the popover and returns focus to the trigger; everything else is inert, as
// is any key while closed or while focus is elsewhere.
func (p *Panel) HandleKey(msg tea.KeyMsg) bool {
	st := p.machine.State()
	if st.Phase != Open {
		return false
	}
	if !p.machine.scope.Within(st.PanelID) {
		return false
	}
	if !p.keys.IsAction(msg, ActionDismiss, ScopePanel) {
		return false
	}
	p.machine.Dispatch(Close)
	p.machine.scope.Focus(st.ButtonID)
	return true
}

// present resolves the effective render strategy against the current phase.
func (p *Panel) present() bool {
	if p.strategy.Static || !p.strategy.Unmount {
		return true
	}
	return p.machine.State().Phase == Open
}

func (p *Panel) onTransition(prev, next State) {
	if prev.Phase == next.Phase || p.strategy.Static {
		return
	}
	switch next.Phase {
	case Open:
		if p.strategy.Unmount {
			p.mount()
		} else {
			p.setHidden(false)
		}
	case Closed:
		if p.strategy.Unmount {
			p.unmount()
			// Second, idempotent unlink: detach order relative to the phase
			// change is not guaranteed across re-renders.
			p.machine.Dispatch(UnlinkPanel)
		} else {
			p.setHidden(true)
		}
	}
}

// mount registers the panel content in the focus scope, right behind the
// trigger, and links the panel.
func (p *Panel) mount() {
	if p.mounted {
		return
	}
	p.mounted = true
	st := p.machine.State()
	hidden := p.Hidden()
	anchor := st.ButtonID
	for _, n := range p.items {
		n.Container = st.PanelID
		n.Hidden = hidden
		p.machine.scope.AddAfter(anchor, n)
		anchor = n.ID
	}
	p.machine.Dispatch(LinkPanel)
}

// unmount removes the panel content from the scope. A content node holding
// focus loses it here, so a removed panel never carries focus over.
func (p *Panel) unmount() {
	if !p.mounted {
		return
	}
	p.mounted = false
	for _, n := range p.items {
		p.machine.scope.Remove(n.ID)
	}
}

func (p *Panel) setHidden(hidden bool) {
	for _, n := range p.items {
		p.machine.scope.SetHidden(n.ID, hidden)
	}
}
