package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shelf/internal/adapters/tui/styles"
	"shelf/internal/application"
	"shelf/internal/application/commands"
	"shelf/internal/ports"
)

// FormKeyMap defines key bindings for the mapping form
type FormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Next   key.Binding
	Toggle key.Binding
}

var FormKeys = FormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle flag"),
	),
}

// Form fields, in focus order
const (
	fieldName = iota
	fieldFolder
	fieldAddPrefix
	fieldCopy
	fieldCount
)

// MappingFormModel is the model for adding or editing a mapping
type MappingFormModel struct {
	ViewState

	store ports.SettingsStore

	editingID   string // empty when adding
	nameInput   textinput.Model
	folderInput textinput.Model
	addPrefix   bool
	copyFile    bool
	focused     int
}

// NewMappingFormModel creates a new mapping form model
func NewMappingFormModel(store ports.SettingsStore) *MappingFormModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "Inbox"
	nameInput.CharLimit = 60

	folderInput := textinput.New()
	folderInput.Placeholder = "inbox (empty = vault root)"
	folderInput.CharLimit = 200

	return &MappingFormModel{
		store:       store,
		nameInput:   nameInput,
		folderInput: folderInput,
	}
}

// SetMapping prepares the form for adding (nil) or editing a mapping
func (m *MappingFormModel) SetMapping(mapping *application.Mapping) {
	m.ClearMessage()
	m.focused = fieldName
	m.nameInput.Focus()
	m.folderInput.Blur()

	if mapping == nil {
		m.editingID = ""
		m.nameInput.SetValue("")
		m.folderInput.SetValue("")
		m.addPrefix = false
		m.copyFile = false
		return
	}

	m.editingID = mapping.ID
	m.nameInput.SetValue(mapping.Name)
	m.folderInput.SetValue(mapping.Folder)
	m.addPrefix = mapping.AddPrefix
	m.copyFile = mapping.Copy
}

// Init initializes the mapping form
func (m *MappingFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the mapping form
func (m *MappingFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case mappingEditedMsg:
		// Save failed; show the error and let the user fix the input.
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, FormKeys.Cancel):
			return m, func() tea.Msg { return SwitchToMappingsMsg{} }

		case key.Matches(msg, FormKeys.Next):
			m.nextField()
			return m, nil

		case key.Matches(msg, FormKeys.Toggle):
			switch m.focused {
			case fieldAddPrefix:
				m.addPrefix = !m.addPrefix
				return m, nil
			case fieldCopy:
				m.copyFile = !m.copyFile
				return m, nil
			}
			// Space falls through to the focused text input.

		case key.Matches(msg, FormKeys.Submit):
			return m, m.save()
		}
	}

	var cmd tea.Cmd
	switch m.focused {
	case fieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case fieldFolder:
		m.folderInput, cmd = m.folderInput.Update(msg)
	}
	return m, cmd
}

func (m *MappingFormModel) nextField() {
	m.focused = (m.focused + 1) % fieldCount

	m.nameInput.Blur()
	m.folderInput.Blur()
	switch m.focused {
	case fieldName:
		m.nameInput.Focus()
	case fieldFolder:
		m.folderInput.Focus()
	}
}

func (m *MappingFormModel) save() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		name := strings.TrimSpace(m.nameInput.Value())
		folder := strings.TrimSpace(m.folderInput.Value())

		if m.editingID == "" {
			result, err := commands.NewAddMappingCommand(m.store, folder, name, m.addPrefix, m.copyFile).Execute(ctx)
			if err != nil {
				return mappingEditedMsg{err: err}
			}
			return FormSavedMsg{Message: result.Message}
		}

		result, err := commands.NewUpdateMappingCommand(m.store, m.editingID, folder, name, m.addPrefix, m.copyFile).Execute(ctx)
		if err != nil {
			return mappingEditedMsg{err: err}
		}
		return FormSavedMsg{Message: result.Message}
	}
}

// View renders the mapping form
func (m *MappingFormModel) View() string {
	var b strings.Builder

	title := "Add Mapping"
	if m.editingID != "" {
		title = "Edit Mapping"
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Name:"))
	b.WriteString("\n")
	b.WriteString(m.renderInput(m.nameInput, m.focused == fieldName))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Folder:"))
	b.WriteString("\n")
	b.WriteString(m.renderInput(m.folderInput, m.focused == fieldFolder))
	b.WriteString("\n\n")

	b.WriteString(renderFlag("Add time prefix", m.addPrefix, m.focused == fieldAddPrefix))
	b.WriteString("\n")
	b.WriteString(renderFlag("Copy instead of move", m.copyFile, m.focused == fieldCopy))
	b.WriteString("\n\n")

	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("save"),
		styles.HelpKey.Render("tab"),
		styles.HelpDesc.Render("next field"),
		styles.HelpKey.Render("space"),
		styles.HelpDesc.Render("toggle flag"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("cancel"),
	))

	return styles.App.Render(b.String())
}

func (m *MappingFormModel) renderInput(input textinput.Model, focused bool) string {
	if focused {
		return styles.InputFocused.Render(input.View())
	}
	return styles.InputBlurred.Render(input.View())
}

func renderFlag(label string, value, focused bool) string {
	box := "[ ]"
	if value {
		box = "[x]"
	}
	line := fmt.Sprintf("%s %s", box, label)
	if focused {
		return styles.MappingSelected.Render(line)
	}
	return "  " + line
}
