package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/flyout/core"
	"github.com/jask/flyout/core/widgets"
	"github.com/jask/flyout/internal/config"
)

const menuRow = 0

type panelItem struct {
	id    string
	label string
}

// popoverHost bundles one popover's machine and controllers with its demo
// presentation data: the trigger label, panel content, and the trigger's hit
// region on the menu row.
type popoverHost struct {
	label   string
	machine *core.Machine
	button  *core.Button
	panel   *core.Panel
	items   []panelItem
	x, w    int
}

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Dismiss  key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Activate, k.Dismiss, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Activate, k.Dismiss, k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle/open")),
		Dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

const outsideID = "docs-link"

type model struct {
	width  int
	height int
	scope  *core.FocusScope
	group  *core.Group
	keys   *core.KeyRegistry
	hosts  []*popoverHost
	km     keyMap
	help   help.Model
	status string
}

func newModel(cfg config.Config) model {
	scope := core.NewFocusScope()
	group := core.NewGroup(scope)
	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys))
	ids := core.NewSeqSource("demo")
	strategy := core.Strategy{Unmount: cfg.UI.Unmount}

	m := model{
		width:  100,
		height: 30,
		scope:  scope,
		group:  group,
		keys:   keys,
		km:     defaultKeyMap(),
		help:   help.New(),
		status: "Ready",
	}

	m.hosts = append(m.hosts,
		newHost("File", scope, group, keys, ids, strategy,
			panelItem{id: "file-new", label: "New Window"},
			panelItem{id: "file-open", label: "Open Recent"},
		),
		newHost("Edit", scope, group, keys, ids, strategy,
			panelItem{id: "edit-undo", label: "Undo"},
			panelItem{id: "edit-redo", label: "Redo"},
		),
	)

	admin := newHost("Admin", scope, group, keys, ids, strategy,
		panelItem{id: "admin-users", label: "Manage Users"},
	)
	admin.button.SetDisabled(true)
	m.hosts = append(m.hosts, admin)

	// An element outside every popover, so tabbing past the group has
	// somewhere external to land.
	scope.Add(core.Node{ID: outsideID})

	m.layoutHitRegions()
	if len(m.hosts) > 0 {
		m.hosts[0].button.Focus()
	}
	return m
}

func newHost(label string, scope *core.FocusScope, group *core.Group, keys *core.KeyRegistry, ids core.IDSource, strategy core.Strategy, items ...panelItem) *popoverHost {
	machine := core.NewMachine(scope, ids)
	machine.JoinGroup(group)
	h := &popoverHost{
		label:   label,
		machine: machine,
		button:  core.NewButton(machine, keys),
		panel:   core.NewPanel(machine, keys, strategy),
		items:   items,
	}
	nodes := make([]core.Node, 0, len(items))
	for _, it := range items {
		nodes = append(nodes, core.Node{ID: it.id})
	}
	h.panel.Attach(nodes...)
	return h
}

func (m *model) layoutHitRegions() {
	x := 0
	for _, h := range m.hosts {
		attrs := h.button.Attrs()
		w := widgets.Trigger{Label: h.label, Expanded: attrs.Expanded, Disabled: attrs.Disabled}.Width()
		h.x, h.w = x, w
		x += w + 1
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.km.Quit) && !m.focusInPanel() {
		return m, tea.Quit
	}
	switch {
	case m.keys.IsAction(msg, core.ActionFocusNext, "*"):
		m.scope.Next()
		return m, nil
	case m.keys.IsAction(msg, core.ActionFocusPrev, "*"):
		m.scope.Prev()
		return m, nil
	}
	for _, h := range m.hosts {
		if h.button.HandleKey(msg) || h.panel.HandleKey(msg) {
			m.layoutHitRegions()
			return m, nil
		}
	}
	// Enter on a focused panel item activates it.
	if msg.Type == tea.KeyEnter {
		focused := m.scope.FocusedID()
		for _, h := range m.hosts {
			for _, it := range h.items {
				if it.id == focused {
					m.status = fmt.Sprintf("%s: %s", h.label, it.label)
					return m, nil
				}
			}
		}
	}
	if focused := m.scope.FocusedID(); focused == outsideID && msg.Type == tea.KeyEnter {
		m.status = "Opened documentation"
	}
	return m, nil
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if msg.Y == menuRow {
		for _, h := range m.hosts {
			if msg.X >= h.x && msg.X < h.x+h.w {
				h.button.Click(msg)
				m.layoutHitRegions()
				return m, nil
			}
		}
	}
	// Dead space: focus leaves every popover, which dismisses any open one.
	if msg.Button == tea.MouseButtonLeft {
		m.scope.Blur()
	}
	return m, nil
}

func (m model) focusInPanel() bool {
	for _, h := range m.hosts {
		if m.scope.Within(h.machine.State().PanelID) {
			return true
		}
	}
	return false
}

func (m model) View() string {
	cells := make([]string, 0, len(m.hosts))
	for _, h := range m.hosts {
		attrs := h.button.Attrs()
		cells = append(cells, widgets.Trigger{
			Label:    h.label,
			Focused:  m.scope.FocusedID() == attrs.ID,
			Expanded: attrs.Expanded,
			Disabled: attrs.Disabled,
		}.Render())
	}
	menu := strings.Join(cells, " ")

	docs := "[ Docs ]"
	if m.scope.FocusedID() == outsideID {
		docs = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a6e3a1")).Render(docs)
	}

	body := []string{
		menu,
		"",
		"Status: " + m.status,
		"",
		docs,
	}
	base := strings.Join(body, "\n")

	for _, h := range m.hosts {
		if !h.machine.IsOpen() || !h.panel.Mounted() || h.panel.Hidden() {
			continue
		}
		labels := make([]string, 0, len(h.items))
		focusedIdx := -1
		for i, it := range h.items {
			labels = append(labels, it.label)
			if m.scope.FocusedID() == it.id {
				focusedIdx = i
			}
		}
		card := widgets.PanelCard{Title: h.label, Items: labels, FocusedIdx: focusedIdx}.Render()
		base = widgets.AnchorPopup(base, card, h.x, menuRow+1, m.width, m.height-2)
	}

	return base + "\n\n" + m.help.View(m.km)
}
