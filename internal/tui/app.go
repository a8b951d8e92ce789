package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/quantmind-br/themebundle/internal/config"
)

type screen int

const (
	screenMenu screen = iota
	screenForm
	screenManifestWarning
	screenQuitConfirm
	screenSaved
	screenFailed
)

// Options configures the editor. SaveFunc receives the edited config when
// the user saves; Path is the file it is written to.
type Options struct {
	Config     *config.Config
	SaveFunc   func(*config.Config) error
	Accessible bool
	Path       string
}

// Model is the bubbletea model of the configuration editor. Edits are
// tracked per category against the configuration the editor started with.
type Model struct {
	opts     Options
	screen   screen
	values   *ConfigValues
	baseline *ConfigValues
	cursor   int
	summary  ManifestSummary
	err      error
	width    int
	height   int

	// open form, its category and the values it started from
	form         *huh.Form
	formCategory string
	beforeForm   ConfigValues
}

func NewModel(opts Options) Model {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	values := FromConfig(opts.Config)

	return Model{
		opts:     opts,
		values:   values,
		baseline: FromConfig(opts.Config),
		summary:  Summarize(values),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// ChangedCategories returns the IDs of categories edited since the last save
func (m Model) ChangedCategories() []string {
	var ids []string
	for _, c := range Categories {
		if m.values.Changed(c.ID, m.baseline) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// Dirty reports whether any category has unsaved edits
func (m Model) Dirty() bool {
	return len(m.ChangedCategories()) > 0
}

// saveEntry is the menu index of the save entry after the categories
func (m Model) saveEntry() int {
	return len(Categories)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}
	if m.screen == screenForm {
		return m.updateForm(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch m.screen {
	case screenMenu:
		return m.updateMenu(key)
	case screenManifestWarning:
		return m.updateManifestWarning(key)
	case screenQuitConfirm:
		return m.updateQuitConfirm(key)
	default:
		return m, tea.Quit
	}
}

func (m Model) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.saveEntry() {
			m.cursor++
		}
	case "enter":
		if m.cursor == m.saveEntry() {
			return m.requestSave()
		}
		return m.openForm(Categories[m.cursor].ID)
	case "r":
		if m.cursor < m.saveEntry() {
			m.values.Reset(Categories[m.cursor].ID, m.baseline)
			m.summary = Summarize(m.values)
		}
	case "s":
		return m.requestSave()
	case "q", "esc", "ctrl+c":
		if m.Dirty() {
			m.screen = screenQuitConfirm
			return m, nil
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) openForm(id string) (tea.Model, tea.Cmd) {
	form := GetFormForCategory(id, m.values)
	if form == nil {
		return m, nil
	}
	if m.opts.Accessible {
		form = form.WithAccessible(true).WithTheme(formTheme(true))
	}

	m.form = form
	m.formCategory = id
	m.beforeForm = *m.values
	m.screen = screenForm
	return m, form.Init()
}

// updateForm forwards msg to the open form. Esc or an aborted form rolls
// the category back to the values it had when the form opened.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		return m.closeForm(false), nil
	}

	next, cmd := m.form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		return m.closeForm(true), nil
	case huh.StateAborted:
		return m.closeForm(false), nil
	}
	return m, cmd
}

func (m Model) closeForm(keep bool) Model {
	if !keep {
		m.values.Reset(m.formCategory, &m.beforeForm)
	}
	m.form = nil
	m.formCategory = ""
	m.screen = screenMenu
	m.summary = Summarize(m.values)
	return m
}

// requestSave saves right away when the manifest loads and asks first
// when it does not
func (m Model) requestSave() (tea.Model, tea.Cmd) {
	m.summary = Summarize(m.values)
	if m.summary.Err != nil {
		m.screen = screenManifestWarning
		return m, nil
	}
	return m.save()
}

func (m Model) save() (tea.Model, tea.Cmd) {
	cfg, err := m.values.ToConfig()
	if err == nil && m.opts.SaveFunc != nil {
		err = m.opts.SaveFunc(cfg)
	}
	if err != nil {
		m.err = err
		m.screen = screenFailed
		return m, nil
	}

	saved := *m.values
	m.baseline = &saved
	m.screen = screenSaved
	return m, nil
}

func (m Model) updateManifestWarning(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "Y":
		return m.save()
	case "n", "N", "esc":
		m.screen = screenMenu
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateQuitConfirm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "Y":
		return m.requestSave()
	case "n", "N", "ctrl+c":
		return m, tea.Quit
	case "c", "C", "esc":
		m.screen = screenMenu
	}
	return m, nil
}

// Run starts the editor on the alternate screen and blocks until it exits
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
