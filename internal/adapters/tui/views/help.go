package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"shelf/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc/q", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToPickerMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Shelf Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Folder shortcuts for your vault"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Picker"))
	b.WriteString("\n")
	b.WriteString(helpLine("↑ / ↓", "Select mapping"))
	b.WriteString(helpLine("Enter", "Shelve the file"))
	b.WriteString(helpLine("Ctrl+V", "Preview destination"))
	b.WriteString(helpLine("Ctrl+Y", "Copy last destination"))
	b.WriteString(helpLine("Ctrl+O", "Open last destination in Obsidian"))
	b.WriteString(helpLine("Ctrl+E", "Edit mappings"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Mappings"))
	b.WriteString("\n")
	b.WriteString(helpLine("a / e / d", "Add, edit, delete"))
	b.WriteString(helpLine("K / J", "Reorder"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Behavior flags"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  prefix : stamp a sortable time prefix on the filename"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  copy   : leave the original file in place"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 16)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
