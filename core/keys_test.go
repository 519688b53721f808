package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"enter"}, Action: ActionActivate, Scopes: []string{ScopeTrigger}},
		{Keys: []string{"tab"}, Action: ActionFocusNext, Scopes: []string{"*"}},
		{Keys: []string{"q"}, Action: "quit"},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyEnter}, ActionActivate, ScopeTrigger) {
		t.Fatalf("expected enter to activate in trigger scope")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyEnter}, ActionActivate, ScopePanel) {
		t.Fatalf("did not expect enter to activate in panel scope")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyTab}, ActionFocusNext, ScopePanel) {
		t.Fatalf("expected tab to match wildcard scope")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", ScopeTrigger) {
		t.Fatalf("expected empty scopes to match everywhere")
	}
}

func TestSpaceKeyNormalization(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeySpace}, ActionActivate, ScopeTrigger) {
		t.Fatalf("expected space to activate")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}, ActionActivate, ScopeTrigger) {
		t.Fatalf("expected literal space rune to activate")
	}
}

func TestDefaultBindingsCoverDismissScopes(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	esc := tea.KeyMsg{Type: tea.KeyEscape}
	if !reg.IsAction(esc, ActionDismiss, ScopeTrigger) {
		t.Fatalf("expected esc to dismiss in trigger scope")
	}
	if !reg.IsAction(esc, ActionDismiss, ScopePanel) {
		t.Fatalf("expected esc to dismiss in panel scope")
	}
	if reg.IsAction(esc, ActionActivate, ScopeTrigger) {
		t.Fatalf("did not expect esc to activate")
	}
}

func TestBindingsForScope(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	got := reg.BindingsForScope(ScopePanel)
	actions := map[string]bool{}
	for _, b := range got {
		actions[b.Action] = true
	}
	if !actions[ActionDismiss] || !actions[ActionFocusNext] {
		t.Fatalf("panel scope bindings = %v, want dismiss and focus-next", actions)
	}
	if actions[ActionActivate] {
		t.Fatalf("panel scope bindings include activate")
	}
}

func TestApplyActionKeybindings(t *testing.T) {
	overlaid := ApplyActionKeybindings(DefaultKeyBindings(), map[string][]string{
		ActionDismiss: {"ctrl+g"},
	})
	reg := NewKeyRegistry(overlaid)
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlG}, ActionDismiss, ScopePanel) {
		t.Fatalf("expected rebound ctrl+g to dismiss")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyEnter}, ActionActivate, ScopeTrigger) {
		t.Fatalf("unmentioned action lost its keys")
	}

	// The overlay must not alias the source binding slices.
	orig := NewKeyRegistry(DefaultKeyBindings())
	if !orig.IsAction(tea.KeyMsg{Type: tea.KeyEscape}, ActionDismiss, ScopePanel) {
		t.Fatalf("default esc binding disturbed by overlay")
	}
}
