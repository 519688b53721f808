package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/flyout/internal/config"
)

func testConfig() config.Config {
	return config.Config{UI: config.UIConfig{Unmount: true, Mouse: true}}
}

func press(t *testing.T, m tea.Model, keys ...tea.KeyMsg) tea.Model {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

func keyPress(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func TestModelOpensAndClosesFirstMenu(t *testing.T) {
	var m tea.Model = newModel(testConfig())
	m = press(t, m, keyPress(tea.KeyEnter))

	view := m.(model).View()
	if !strings.Contains(view, "New Window") {
		t.Fatalf("open panel content missing from view:\n%s", view)
	}

	m = press(t, m, keyPress(tea.KeyEscape))
	view = m.(model).View()
	if strings.Contains(view, "New Window") {
		t.Fatalf("panel content still rendered after esc:\n%s", view)
	}
}

func TestModelTabMovesBetweenTriggers(t *testing.T) {
	var m tea.Model = newModel(testConfig())
	m = press(t, m, keyPress(tea.KeyTab))

	mm := m.(model)
	if got := mm.scope.FocusedID(); got != mm.hosts[1].machine.State().ButtonID {
		t.Fatalf("focused = %q, want second trigger", got)
	}
}

func TestModelExclusivityAcrossMenus(t *testing.T) {
	var m tea.Model = newModel(testConfig())
	m = press(t, m, keyPress(tea.KeyEnter))

	mm := m.(model)
	if !mm.hosts[0].machine.IsOpen() {
		t.Fatalf("first menu did not open")
	}

	// Tab past the open panel's items onto the second trigger, then open it.
	m = press(t, m, keyPress(tea.KeyTab), keyPress(tea.KeyTab), keyPress(tea.KeyTab), keyPress(tea.KeyEnter))
	mm = m.(model)
	if mm.hosts[0].machine.IsOpen() {
		t.Fatalf("first menu still open after opening second")
	}
	if !mm.hosts[1].machine.IsOpen() {
		t.Fatalf("second menu did not open")
	}
}

func TestModelDisabledTriggerStaysClosed(t *testing.T) {
	var m tea.Model = newModel(testConfig())
	mm := m.(model)
	admin := mm.hosts[2]
	click := tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      admin.x,
		Y:      menuRow,
	}
	m, _ = m.Update(click)
	if m.(model).hosts[2].machine.IsOpen() {
		t.Fatalf("disabled menu opened on click")
	}
}

func TestModelClickOutsideDismisses(t *testing.T) {
	var m tea.Model = newModel(testConfig())
	m = press(t, m, keyPress(tea.KeyEnter))
	if !m.(model).hosts[0].machine.IsOpen() {
		t.Fatalf("first menu did not open")
	}

	dead := tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      70,
		Y:      20,
	}
	m, _ = m.Update(dead)
	if m.(model).hosts[0].machine.IsOpen() {
		t.Fatalf("menu still open after click on dead space")
	}
}

func TestModelQuitsOnQ(t *testing.T) {
	var m tea.Model = newModel(testConfig())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}
