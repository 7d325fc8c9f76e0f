package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shelf/internal/adapters/tui/styles"
	"shelf/internal/application"
	"shelf/internal/application/commands"
	"shelf/internal/ports"
)

// PickerKeyMap defines key bindings for the picker view
type PickerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Shelve   key.Binding
	Preview  key.Binding
	Copy     key.Binding
	Open     key.Binding
	Mappings key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var PickerKeys = PickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Shelve: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "shelve"),
	),
	Preview: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", "preview"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy path"),
	),
	Open: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "open in Obsidian"),
	),
	Mappings: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "edit mappings"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+h"),
		key.WithHelp("ctrl+h", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}

// PickerModel is the model for the mapping picker: type a file path,
// pick a mapping, shelve.
type PickerModel struct {
	ViewState

	vault   ports.VaultRepository
	store   ports.SettingsStore
	history ports.History
	opener  ports.ObsidianOpener

	fileInput textinput.Model
	mappings  []application.Mapping
	cursor    int
	lastDest  string
}

// NewPickerModel creates a new picker view model
func NewPickerModel(vault ports.VaultRepository, store ports.SettingsStore, history ports.History, opener ports.ObsidianOpener, file string) *PickerModel {
	fileInput := textinput.New()
	fileInput.Placeholder = "inbox/note.md"
	fileInput.SetValue(file)
	fileInput.Focus()

	return &PickerModel{
		vault:     vault,
		store:     store,
		history:   history,
		opener:    opener,
		fileInput: fileInput,
	}
}

// Init initializes the picker view
func (m *PickerModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.Reload())
}

// Reload re-reads the mappings from the settings store
func (m *PickerModel) Reload() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.store.Load()
		if err != nil {
			return mappingsLoadedMsg{err: err}
		}
		return mappingsLoadedMsg{mappings: settings.Mappings}
	}
}

type mappingsLoadedMsg struct {
	mappings []application.Mapping
	err      error
}

type shelveDoneMsg struct {
	message     string
	destination string
	err         error
}

// Update handles messages for the picker view
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			m.cursor = 0
		}
		return m, nil

	case shelveDoneMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
			return m, nil
		}
		m.lastDest = msg.destination
		m.SetMessage(msg.message, false)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PickerKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, PickerKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Down):
			if m.cursor < len(m.mappings)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Shelve):
			return m, m.shelve(false)

		case key.Matches(msg, PickerKeys.Preview):
			return m, m.shelve(true)

		case key.Matches(msg, PickerKeys.Copy):
			if m.lastDest != "" {
				clipboard.WriteAll(m.lastDest)
				m.SetMessage(fmt.Sprintf("Copied %s", m.lastDest), false)
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Open):
			if m.lastDest != "" && m.opener != nil {
				if err := m.opener.OpenFile(m.lastDest); err != nil {
					m.SetMessage(err.Error(), true)
				}
			}
			return m, nil

		case key.Matches(msg, PickerKeys.Mappings):
			return m, func() tea.Msg { return SwitchToMappingsMsg{} }

		case key.Matches(msg, PickerKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	// Update input
	var cmd tea.Cmd
	m.fileInput, cmd = m.fileInput.Update(msg)
	return m, cmd
}

func (m *PickerModel) shelve(preview bool) tea.Cmd {
	return func() tea.Msg {
		if m.cursor < 0 || m.cursor >= len(m.mappings) {
			return shelveDoneMsg{err: fmt.Errorf("no mapping selected")}
		}
		mapping := m.mappings[m.cursor]
		file := strings.TrimSpace(m.fileInput.Value())
		ctx := context.Background()

		if preview {
			cmd := commands.NewPreviewCommand(m.vault, m.store, file, mapping.ID)
			result, err := cmd.Execute(ctx)
			if err != nil {
				return shelveDoneMsg{err: err}
			}
			return shelveDoneMsg{message: result.Message, destination: result.Destination}
		}

		cmd := commands.NewShelveCommand(m.vault, m.store, m.history, file, mapping.ID)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return shelveDoneMsg{err: err}
		}
		return shelveDoneMsg{message: result.Message, destination: result.Destination}
	}
}

// View renders the picker view
func (m *PickerModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Shelve File"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("File:"))
	b.WriteString("\n")
	b.WriteString(styles.InputFocused.Render(m.fileInput.View()))
	b.WriteString("\n\n")

	if len(m.mappings) == 0 {
		b.WriteString(styles.MutedText.Render("No mappings configured. Press ctrl+e to add one."))
		b.WriteString("\n")
	} else {
		b.WriteString(styles.InputLabel.Render("Mappings:"))
		b.WriteString("\n")
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
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("shelve"),
		styles.HelpKey.Render("ctrl+v"),
		styles.HelpDesc.Render("preview"),
		styles.HelpKey.Render("ctrl+e"),
		styles.HelpDesc.Render("mappings"),
		styles.HelpKey.Render("ctrl+h"),
		styles.HelpDesc.Render("help"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("quit"),
	))

	return styles.App.Render(b.String())
}

// renderMapping renders one mapping line with its flag badges
func renderMapping(mapping application.Mapping, selected bool) string {
	var badges []string
	if mapping.AddPrefix {
		badges = append(badges, styles.BadgePrefix.Render("[prefix]"))
	}
	if mapping.Copy {
		badges = append(badges, styles.BadgeCopy.Render("[copy]"))
	}

	text := fmt.Sprintf("%s -> %s", mapping.Name, mapping.Target())
	if selected {
		text = styles.MappingSelected.Render(text)
	} else {
		text = styles.MappingName.Render(mapping.Name) + " -> " + styles.MappingFolder.Render(mapping.Target())
	}

	line := "  " + text
	if len(badges) > 0 {
		line += " " + strings.Join(badges, " ")
	}
	return line
}
