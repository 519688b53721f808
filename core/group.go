package core

// member is one registered popover in a Group. close is a command back into
// the owning Machine; it must tolerate being invoked after the popover has
// already closed or unregistered.
type member struct {
	buttonID string
	panelID  string
	close    func()
}

// Group coordinates sibling popovers under one focus scope: opening any
// member closes the others, and outside-focus dismissal treats the whole
// membership as a single region, so moving focus between members does not
// close the open one.
//
// A Group is created per logical widget group and discarded with it; it is
// never a process-wide singleton. All operations are safe no-ops against
// unknown or stale entries.
type Group struct {
	scope   *FocusScope
	members []member
}

func NewGroup(scope *FocusScope) *Group {
	if scope == nil {
		scope = NewFocusScope()
	}
	return &Group{scope: scope}
}

// Scope returns the focus scope shared by the group's members.
func (g *Group) Scope() *FocusScope { return g.scope }

// Register adds a popover to the membership in registration order. A
// duplicate buttonID replaces the earlier entry.
func (g *Group) Register(buttonID, panelID string, close func()) {
	for i := range g.members {
		if g.members[i].buttonID == buttonID {
			g.members[i] = member{buttonID: buttonID, panelID: panelID, close: close}
			return
		}
	}
	g.members = append(g.members, member{buttonID: buttonID, panelID: panelID, close: close})
}

// Unregister removes a popover from the membership. Unknown ids are ignored.
func (g *Group) Unregister(buttonID string) {
	for i := range g.members {
		if g.members[i].buttonID == buttonID {
			g.members = append(g.members[:i], g.members[i+1:]...)
			return
		}
	}
}

// CloseOthers closes every member except the named one. It iterates a
// snapshot of the membership: a member unregistering itself while its close
// runs cannot skip entries or corrupt the walk.
func (g *Group) CloseOthers(buttonID string) {
	snapshot := make([]member, len(g.members))
	copy(snapshot, g.members)
	for _, m := range snapshot {
		if m.buttonID == buttonID {
			continue
		}
		if m.close != nil {
			m.close()
		}
	}
}

// FocusWithin reports whether the focused element lies inside any member's
// trigger or panel subtree.
func (g *Group) FocusWithin() bool {
	for _, m := range g.members {
		if g.scope.Within(m.buttonID) || g.scope.Within(m.panelID) {
			return true
		}
	}
	return false
}

// Len returns the current membership size.
func (g *Group) Len() int { return len(g.members) }
