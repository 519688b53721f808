package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Engine actions a key can be bound to.
const (
	ActionActivate  = "activate"
	ActionDismiss   = "dismiss"
	ActionFocusNext = "focus-next"
	ActionFocusPrev = "focus-prev"
)

// Binding scopes. Trigger and panel controllers consult their own scope so
// hosts can rebind, say, dismissal inside panels independently.
const (
	ScopeTrigger = "popover:trigger"
	ScopePanel   = "popover:panel"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	// The space key stringifies as " ", which trimming would erase.
	if k == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

// DefaultKeyBindings returns the engine's stock bindings: the primary and
// secondary activation keys on triggers, cancel on triggers and panels, and
// sequential focus navigation everywhere.
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"enter", "space"}, Action: ActionActivate, Description: "toggle popover", Scopes: []string{ScopeTrigger}},
		{Keys: []string{"esc"}, Action: ActionDismiss, Description: "close popover", Scopes: []string{ScopeTrigger, ScopePanel}},
		{Keys: []string{"tab"}, Action: ActionFocusNext, Description: "next element", Scopes: []string{"*"}},
		{Keys: []string{"shift+tab"}, Action: ActionFocusPrev, Description: "previous element", Scopes: []string{"*"}},
	}
}

// ApplyActionKeybindings overlays per-action key overrides (typically from
// configuration) onto a binding set, leaving unmentioned actions untouched.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
