package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"shelf/internal/adapters/tui/styles"
	"shelf/internal/application"
	"shelf/internal/application/commands"
	"shelf/internal/ports"
)

// MappingsKeyMap defines key bindings for the mappings editor
type MappingsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Back     key.Binding
}

var MappingsKeys = MappingsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K", "shift+up"),
		key.WithHelp("K", "move up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("J", "shift+down"),
		key.WithHelp("J", "move down"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back"),
	),
}

// MappingsModel is the model for the mappings editor view
type MappingsModel struct {
	ViewState

	store    ports.SettingsStore
	mappings []application.Mapping
	cursor   int
}

// NewMappingsModel creates a new mappings editor model
func NewMappingsModel(store ports.SettingsStore) *MappingsModel {
	return &MappingsModel{store: store}
}

// Init initializes the mappings editor
func (m *MappingsModel) Init() tea.Cmd {
	return m.Reload()
}

// Reload re-reads the mappings from the settings store
func (m *MappingsModel) Reload() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.store.Load()
		if err != nil {
			return mappingsLoadedMsg{err: err}
		}
		return mappingsLoadedMsg{mappings: settings.Mappings}
	}
}

type mappingEditedMsg struct {
	message string
	err     error
}

// Update handles messages for the mappings editor
func (m *MappingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case mappingsLoadedMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.mappings = msg.mappings
		if m.cursor >= len(m.mappings) {
			m.cursor = len(m.mappings) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case mappingEditedMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.SetMessage(msg.message, false)
		return m, m.Reload()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, MappingsKeys.Back):
			return m, func() tea.Msg { return SwitchToPickerMsg{} }

		case key.Matches(msg, MappingsKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, MappingsKeys.Down):
			if m.cursor < len(m.mappings)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, MappingsKeys.Add):
			return m, func() tea.Msg { return SwitchToFormMsg{} }

		case key.Matches(msg, MappingsKeys.Edit):
			if mapping, ok := m.selected(); ok {
				return m, func() tea.Msg { return SwitchToFormMsg{Mapping: &mapping} }
			}
			return m, nil

		case key.Matches(msg, MappingsKeys.Delete):
			if mapping, ok := m.selected(); ok {
				return m, m.remove(mapping.ID)
			}
			return m, nil

		case key.Matches(msg, MappingsKeys.MoveUp):
			if mapping, ok := m.selected(); ok {
				if m.cursor > 0 {
					m.cursor--
				}
				return m, m.move(mapping.ID, commands.MoveUp)
			}
			return m, nil

		case key.Matches(msg, MappingsKeys.MoveDown):
			if mapping, ok := m.selected(); ok {
				if m.cursor < len(m.mappings)-1 {
					m.cursor++
				}
				return m, m.move(mapping.ID, commands.MoveDown)
			}
			return m, nil
		}
	}

	return m, nil
}

func (m *MappingsModel) selected() (application.Mapping, bool) {
	if m.cursor < 0 || m.cursor >= len(m.mappings) {
		return application.Mapping{}, false
	}
	return m.mappings[m.cursor], true
}

func (m *MappingsModel) remove(id string) tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewRemoveMappingCommand(m.store, id).Execute(context.Background())
		if err != nil {
			return mappingEditedMsg{err: err}
		}
		return mappingEditedMsg{message: result.Message}
	}
}

func (m *MappingsModel) move(id string, direction commands.MoveDirection) tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewMoveMappingCommand(m.store, id, direction).Execute(context.Background())
		if err != nil {
			return mappingEditedMsg{err: err}
		}
		return mappingEditedMsg{message: result.Message}
	}
}

// View renders the mappings editor
func (m *MappingsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Mappings"))
	b.WriteString("\n\n")

	if len(m.mappings) == 0 {
		b.WriteString(styles.MutedText.Render("No mappings configured. Press a to add one."))
		b.WriteString("\n")
	} else {
		for i, mapping := range m.mappings {
			b.WriteString(renderMapping(mapping, i == m.cursor))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  %s %s",
		styles.HelpKey.Render("a"),
		styles.HelpDesc.Render("add"),
		styles.HelpKey.Render("e"),
		styles.HelpDesc.Render("edit"),
		styles.HelpKey.Render("d"),
		styles.HelpDesc.Render("delete"),
		styles.HelpKey.Render("K/J"),
		styles.HelpDesc.Render("reorder"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("back"),
	))

	return styles.App.Render(b.String())
}
