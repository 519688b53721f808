package core

// Node is a focusable element registered in a FocusScope. Container names the
// enclosing subtree (a panel id for panel content, empty for top-level
// elements); containment queries walk the container chain.
type Node struct {
	ID        string
	Container string
	Disabled  bool
	Hidden    bool
}

// FocusScope tracks an ordered set of focusable nodes and which one currently
// holds focus. It stands in for the document focus order: Next and Prev move
// sequentially the way Tab and Shift+Tab do, and watchers observe every focus
// change, which is how open popovers notice focus leaving their subtree.
type FocusScope struct {
	nodes     []Node
	focused   string
	watchers  map[int]func(focusedID string)
	nextWatch int
}

func NewFocusScope() *FocusScope {
	return &FocusScope{watchers: make(map[int]func(string))}
}

// Add registers a node at the end of the focus order. Re-adding an existing
// id updates the node in place without changing its position. The empty id is
// the scope's nothing-focused sentinel and is never registered.
func (s *FocusScope) Add(n Node) {
	if n.ID == "" {
		return
	}
	for i := range s.nodes {
		if s.nodes[i].ID == n.ID {
			s.nodes[i] = n
			return
		}
	}
	s.nodes = append(s.nodes, n)
}

// AddAfter registers a node immediately after the node with id after. Panel
// content uses this so its elements sit right behind their trigger in the
// focus order. Falls back to appending when after is unknown.
func (s *FocusScope) AddAfter(after string, n Node) {
	if n.ID == "" {
		return
	}
	for i := range s.nodes {
		if s.nodes[i].ID == n.ID {
			s.nodes[i] = n
			return
		}
	}
	for i := range s.nodes {
		if s.nodes[i].ID == after {
			s.nodes = append(s.nodes[:i+1], append([]Node{n}, s.nodes[i+1:]...)...)
			return
		}
	}
	s.nodes = append(s.nodes, n)
}

// Remove drops a node from the scope. If the node held focus, focus is
// cleared and watchers are notified, mirroring focus falling back to the
// document body when the active element is removed.
func (s *FocusScope) Remove(id string) {
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			if s.focused == id {
				s.setFocus("")
			}
			return
		}
	}
}

// Node looks up a registered node by id.
func (s *FocusScope) Node(id string) (Node, bool) {
	for _, n := range s.nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// SetHidden marks a node as present but unreachable by sequential focus
// navigation. A hidden node that held focus loses it.
func (s *FocusScope) SetHidden(id string, hidden bool) {
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			s.nodes[i].Hidden = hidden
			if hidden && s.focused == id {
				s.setFocus("")
			}
			return
		}
	}
}

// SetDisabled marks a node as non-interactive.
func (s *FocusScope) SetDisabled(id string, disabled bool) {
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			s.nodes[i].Disabled = disabled
			return
		}
	}
}

// FocusedID returns the id of the focused node, or "" when nothing in the
// scope holds focus.
func (s *FocusScope) FocusedID() string { return s.focused }

// Focus moves focus to the named node. Unknown ids are ignored; refocusing
// the already-focused node does not notify watchers.
func (s *FocusScope) Focus(id string) {
	if _, ok := s.Node(id); !ok {
		return
	}
	s.setFocus(id)
}

// Blur clears focus, as when the user clicks dead space outside every
// registered element.
func (s *FocusScope) Blur() { s.setFocus("") }

// Next moves focus to the next eligible node in order, wrapping at the end.
func (s *FocusScope) Next() { s.step(1) }

// Prev moves focus to the previous eligible node in order, wrapping at the
// start.
func (s *FocusScope) Prev() { s.step(-1) }

func (s *FocusScope) step(dir int) {
	if len(s.nodes) == 0 {
		return
	}
	start := -1
	for i, n := range s.nodes {
		if n.ID == s.focused {
			start = i
			break
		}
	}
	if start == -1 && dir < 0 {
		// No current focus: stepping backward starts from the end.
		start = 0
	}
	for off := 1; off <= len(s.nodes); off++ {
		i := (start + dir*off%len(s.nodes) + len(s.nodes)) % len(s.nodes)
		n := s.nodes[i]
		if n.Hidden || n.Disabled {
			continue
		}
		s.setFocus(n.ID)
		return
	}
}

// Within reports whether the focused element lies inside the subtree rooted
// at root, either by being root itself or by a container chain reaching it.
func (s *FocusScope) Within(root string) bool {
	if root == "" {
		return false
	}
	id := s.focused
	for hops := 0; id != "" && hops < 32; hops++ {
		if id == root {
			return true
		}
		n, ok := s.Node(id)
		if !ok {
			return false
		}
		id = n.Container
	}
	return false
}

// Watch registers a callback invoked on every focus change with the new
// focused id. The returned release func removes the watcher and is safe to
// call more than once and during notification.
func (s *FocusScope) Watch(fn func(focusedID string)) func() {
	s.nextWatch++
	key := s.nextWatch
	s.watchers[key] = fn
	return func() {
		delete(s.watchers, key)
	}
}

func (s *FocusScope) setFocus(id string) {
	if s.focused == id {
		return
	}
	s.focused = id
	// Snapshot so a watcher releasing itself (or arming another) mid-notify
	// cannot corrupt the iteration.
	fns := make([]func(string), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn(id)
	}
}

func (s *FocusScope) watcherCount() int { return len(s.watchers) }
