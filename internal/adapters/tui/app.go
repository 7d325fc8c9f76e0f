package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"shelf/internal/adapters/tui/views"
	"shelf/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPicker ViewState = iota
	ViewMappings
	ViewForm
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state    ViewState
	picker   *views.PickerModel
	mappings *views.MappingsModel
	form     *views.MappingFormModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. file preselects the file input;
// history and opener may be nil.
func NewApp(vault ports.VaultRepository, store ports.SettingsStore, history ports.History, opener ports.ObsidianOpener, file string) *App {
	return &App{
		state:    ViewPicker,
		picker:   views.NewPickerModel(vault, store, history, opener, file),
		mappings: views.NewMappingsModel(store),
		form:     views.NewMappingFormModel(store),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.picker.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.picker.SetSize(msg.Width, msg.Height)
		a.mappings.SetSize(msg.Width, msg.Height)
		a.form.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToPickerMsg:
		a.state = ViewPicker
		return a, a.picker.Reload()

	case views.SwitchToMappingsMsg:
		a.state = ViewMappings
		return a, a.mappings.Reload()

	case views.SwitchToFormMsg:
		a.state = ViewForm
		a.form.SetMapping(msg.Mapping)
		return a, a.form.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.FormSavedMsg:
		a.state = ViewMappings
		a.mappings.SetMessage(msg.Message, false)
		return a, a.mappings.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewPicker:
		_, cmd = a.picker.Update(msg)
	case ViewMappings:
		_, cmd = a.mappings.Update(msg)
	case ViewForm:
		_, cmd = a.form.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewMappings:
		return a.mappings.View()
	case ViewForm:
		return a.form.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.picker.View()
	}
}
