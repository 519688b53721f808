package core

// Machine owns the state of one trigger+panel pair. Dispatch applies the
// reducer synchronously, then runs the phase-edge side effects: the outside
// focus watcher is armed on Closed→Open and released on Open→Closed, so the
// watcher exists exactly while the popover is open, on every exit path.
type Machine struct {
	state   State
	scope   *FocusScope
	group   *Group
	unwatch func() // non-nil only while the outside-focus watcher is armed
	subs    map[int]func(prev, next State)
	nextSub int
}

// NewMachine creates a machine in the Closed phase. One id is drawn from ids
// and both element identifiers are derived from it; a nil ids falls back to
// the UUID-backed source.
func NewMachine(scope *FocusScope, ids IDSource) *Machine {
	if scope == nil {
		scope = NewFocusScope()
	}
	if ids == nil {
		ids = UUIDSource{}
	}
	m := &Machine{scope: scope, subs: make(map[int]func(State, State))}
	id := ids.NextID()
	m.state = reduce(m.state, SetButtonID(buttonIDFor(id)))
	m.state = reduce(m.state, SetPanelID(panelIDFor(id)))
	return m
}

// State returns the current state snapshot.
func (m *Machine) State() State { return m.state }

// IsOpen is the read-only {open} snapshot exposed to composed widgets.
func (m *Machine) IsOpen() bool { return m.state.Phase == Open }

// Scope returns the focus scope this machine observes.
func (m *Machine) Scope() *FocusScope { return m.scope }

// Group returns the group this machine is registered with, or nil.
func (m *Machine) Group() *Group { return m.group }

// JoinGroup registers the machine with a group, leaving any previous one.
// Membership lives strictly within the popover's lifetime: Teardown
// unregisters it.
func (m *Machine) JoinGroup(g *Group) {
	if m.group != nil {
		m.group.Unregister(m.state.ButtonID)
	}
	m.group = g
	if g != nil {
		g.Register(m.state.ButtonID, m.state.PanelID, func() { m.Dispatch(Close) })
	}
}

// Subscribe registers a transition observer called after every dispatch that
// changed the state. The release func is idempotent.
func (m *Machine) Subscribe(fn func(prev, next State)) func() {
	m.nextSub++
	key := m.nextSub
	m.subs[key] = fn
	return func() { delete(m.subs, key) }
}

// Dispatch reduces the state by one action. No-op transitions return without
// notifying anyone. On phase edges the focus watcher is armed or released
// before subscribers run, so a subscriber closing the popover again cannot
// observe a stale watcher.
func (m *Machine) Dispatch(a Action) {
	prev := m.state
	next := reduce(prev, a)
	if next == prev {
		return
	}
	m.state = next
	if prev.Phase != next.Phase {
		if next.Phase == Open {
			m.arm()
		} else {
			m.release()
		}
	}
	if m.group != nil && (prev.ButtonID != next.ButtonID || prev.PanelID != next.PanelID) {
		// Group entries key on the ids; an id change would leave the old entry
		// stale, so membership follows the rename.
		m.group.Unregister(prev.ButtonID)
		m.group.Register(next.ButtonID, next.PanelID, func() { m.Dispatch(Close) })
	}
	m.notify(prev, next)
}

// Teardown releases the watcher and leaves the group. Safe to call more than
// once and regardless of phase; the state value itself is simply discarded
// with the machine.
func (m *Machine) Teardown() {
	m.release()
	if m.group != nil {
		m.group.Unregister(m.state.ButtonID)
		m.group = nil
	}
}

func (m *Machine) arm() {
	if m.unwatch != nil {
		return
	}
	m.unwatch = m.scope.Watch(m.onFocusChange)
}

func (m *Machine) release() {
	if m.unwatch == nil {
		return
	}
	m.unwatch()
	m.unwatch = nil
}

// onFocusChange closes the popover when focus lands outside its own subtree
// and, when grouped, outside every sibling's subtree. This is the tab-out /
// click-outside dismissal.
func (m *Machine) onFocusChange(string) {
	if m.state.Phase != Open {
		return
	}
	if m.scope.Within(m.state.ButtonID) || m.scope.Within(m.state.PanelID) {
		return
	}
	if m.group != nil && m.group.FocusWithin() {
		return
	}
	m.Dispatch(Close)
}

func (m *Machine) notify(prev, next State) {
	fns := make([]func(State, State), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn(prev, next)
	}
}
