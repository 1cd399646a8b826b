package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/core/cli"
	coreconfig "github.com/grovetools/core/config"
	"github.com/grovetools/core/tui/components/help"
	"github.com/grovetools/core/tui/keymap"
	"github.com/grovetools/core/tui/theme"
	"github.com/spf13/cobra"

	"github.com/grovetools/sitekeys/pkg/category"
	"github.com/grovetools/sitekeys/pkg/keys"
)

func newBrowseCmd() *cobra.Command {
	var files fileFlags

	cmd := cli.NewStandardCommand("browse", "Browse the effective bindings interactively")
	cmd.Long = `Open an interactive help browser of every binding in effect after startup,
grouped by category with one tab per scope. Bindings marked hide are left out.`

	files.register(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if !isTerminal(os.Stdout) {
			return fmt.Errorf("browse needs a terminal; use 'sitekeys compile' for plain output")
		}
		s, err := newSession(cmd.Context(), cli.GetLogger(cmd), files.resolve())
		if err != nil {
			return err
		}
		s.run(cmd.Context())
		return runBrowseTUI(s)
	}

	return cmd
}

// browseKeyMap defines the keybindings for the browser TUI.
type browseKeyMap struct {
	keymap.Base
	ToggleMode key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextTab, k.PrevTab, k.ToggleMode, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Search, k.NextTab, k.PrevTab, k.ToggleMode},
		{k.Help, k.Quit},
	}
}

// Sections returns grouped sections of key bindings for the full help view.
func (k browseKeyMap) Sections() []keymap.Section {
	return []keymap.Section{
		keymap.NavigationSection(k.Up, k.Down, k.PageUp, k.PageDown, k.NextTab, k.PrevTab),
		keymap.ActionsSection(k.Search, k.ToggleMode),
		k.Base.SystemSection(),
	}
}

func newBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Base: keymap.Load(&coreconfig.Config{}, "sitekeys.browse"),
		ToggleMode: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "toggle normal/visual"),
		),
	}
}

// browseSection is one category heading and its bindings.
type browseSection struct {
	Title    string
	Bindings []bindingView
}

// browseScopes returns the scopes present in views, global first.
func browseScopes(views []bindingView) []string {
	seen := make(map[string]bool)
	var scopes []string
	for _, v := range views {
		if v.Hidden || seen[v.Scope] {
			continue
		}
		seen[v.Scope] = true
		scopes = append(scopes, v.Scope)
	}
	return scopes
}

// browseSections groups the visible bindings of scope by category, in the
// category index order, with factory defaults last.
func browseSections(views []bindingView, scope, query string) []browseSection {
	query = strings.ToLower(query)
	groups := make(map[string][]bindingView)
	for _, v := range views {
		if v.Hidden || v.Scope != scope {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(v.Key), query) &&
			!strings.Contains(strings.ToLower(v.Description), query) &&
			!strings.Contains(strings.ToLower(v.Category), query) {
			continue
		}
		groups[v.Category] = append(groups[v.Category], v)
	}

	var sections []browseSection
	for _, c := range category.All() {
		if b := groups[string(c)]; len(b) > 0 {
			sections = append(sections, browseSection{Title: c.Tag(), Bindings: b})
		}
	}
	if b := groups[""]; len(b) > 0 {
		sections = append(sections, browseSection{Title: "defaults", Bindings: b})
	}
	return sections
}

// browseModel holds the state for the browser TUI.
type browseModel struct {
	keys  browseKeyMap
	views map[keys.Mode][]bindingView

	mode      keys.Mode
	scopes    []string
	activeTab int

	searchInput  textinput.Model
	searchActive bool

	vp     viewport.Model
	help   help.Model
	width  int
	height int
}

func runBrowseTUI(s *session) error {
	ti := textinput.New()
	ti.Placeholder = "Search keys, descriptions or categories..."
	ti.Prompt = " / "

	km := newBrowseKeyMap()
	helpModel := help.New(km)
	helpModel.Title = "Sitekeys Browser Help"

	m := browseModel{
		keys: km,
		views: map[keys.Mode][]bindingView{
			keys.ModeNormal: s.views(keys.ModeNormal),
			keys.ModeVisual: s.views(keys.ModeVisual),
		},
		mode:        keys.ModeNormal,
		searchInput: ti,
		vp:          viewport.New(80, 20),
		help:        helpModel,
	}
	m.scopes = browseScopes(m.views[m.mode])

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 6 // Reserve room for tabs, search, and footer
		m.help.SetSize(msg.Width, msg.Height)
		m.updateViewport()
		return m, nil

	case tea.KeyMsg:
		if m.help.ShowAll {
			if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Quit) {
				m.help.Toggle()
				return m, nil
			}
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}

		if m.searchActive {
			if key.Matches(msg, m.keys.Confirm) || key.Matches(msg, m.keys.Back) {
				m.searchActive = false
				m.searchInput.Blur()
			} else {
				m.searchInput, cmd = m.searchInput.Update(msg)
			}
			m.updateViewport()
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.Toggle()
			return m, nil

		case key.Matches(msg, m.keys.Search):
			m.searchActive = true
			m.searchInput.Focus()
			return m, textinput.Blink

		case key.Matches(msg, m.keys.ToggleMode):
			if m.mode == keys.ModeNormal {
				m.mode = keys.ModeVisual
			} else {
				m.mode = keys.ModeNormal
			}
			m.scopes = browseScopes(m.views[m.mode])
			m.activeTab = 0
			m.vp.GotoTop()
			m.updateViewport()
			return m, nil

		case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.Right):
			if len(m.scopes) > 0 {
				m.activeTab = (m.activeTab + 1) % len(m.scopes)
			}
			m.vp.GotoTop()
			m.updateViewport()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab), key.Matches(msg, m.keys.Left):
			m.activeTab--
			if m.activeTab < 0 {
				m.activeTab = len(m.scopes) - 1
			}
			if m.activeTab < 0 {
				m.activeTab = 0
			}
			m.vp.GotoTop()
			m.updateViewport()
			return m, nil
		}

		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *browseModel) updateViewport() {
	var b strings.Builder
	t := theme.DefaultTheme

	if len(m.scopes) == 0 {
		b.WriteString("\n  " + t.Muted.Render("No keybindings in this mode."))
		m.vp.SetContent(b.String())
		return
	}

	sections := browseSections(m.views[m.mode], m.scopes[m.activeTab], m.searchInput.Value())
	if len(sections) == 0 {
		b.WriteString("\n  " + t.Muted.Render("No keybindings found in this scope."))
		if m.searchInput.Value() != "" {
			b.WriteString("\n  " + t.Muted.Render("Try a different search query."))
		}
	}
	for _, sec := range sections {
		b.WriteString("\n" + t.Header.Render(fmt.Sprintf(" %s ", sec.Title)) + "\n")
		for _, v := range sec.Bindings {
			desc := v.Description
			if v.Target != "" {
				desc = strings.TrimSpace("-> " + v.Target + " " + desc)
			}
			b.WriteString(fmt.Sprintf("   %-25s  %s\n", t.Highlight.Render(v.Key), t.Muted.Render(desc)))
		}
	}

	m.vp.SetContent(b.String())
}

func (m browseModel) View() string {
	if m.help.ShowAll {
		return m.help.View()
	}

	t := theme.DefaultTheme
	var s strings.Builder

	s.WriteString("\n " + t.Header.Render(theme.IconGear+" Sitekeys Browser") + " " +
		t.Muted.Render(strings.ToUpper(modeName(m.mode))) + "\n\n")

	var tabs []string
	for i, scope := range m.scopes {
		if i == m.activeTab {
			tabs = append(tabs, t.Selected.Render(fmt.Sprintf(" %s ", scope)))
		} else {
			tabs = append(tabs, t.Muted.Render(fmt.Sprintf(" %s ", scope)))
		}
	}
	s.WriteString(" " + strings.Join(tabs, " │ ") + "\n")

	if m.searchActive || m.searchInput.Value() != "" {
		s.WriteString(m.searchInput.View() + "\n")
	} else {
		s.WriteString(t.Muted.Render(" / to search • ]/[ to switch scopes • v to toggle mode • q to quit\n"))
	}

	borderWidth := m.width
	if borderWidth <= 0 {
		borderWidth = 80
	}
	s.WriteString(t.Muted.Render(strings.Repeat("─", borderWidth)) + "\n")
	s.WriteString(m.vp.View())

	total := 0
	for _, v := range m.views[m.mode] {
		if !v.Hidden {
			total++
		}
	}
	footer := t.Muted.Render(fmt.Sprintf(" %d binding(s) in %s mode", total, modeName(m.mode)))

	marginStyle := lipgloss.NewStyle().Padding(0, 1)
	return marginStyle.Render(s.String() + "\n" + footer)
}
