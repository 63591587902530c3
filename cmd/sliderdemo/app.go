package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/slider/pkg/geometry"
	"github.com/Dicklesworthstone/slider/pkg/slider"
	"github.com/Dicklesworthstone/slider/pkg/value"
)

// Fixed layout: label column then track. The slider rects must line
// up with the rendered rows for hit testing to work.
const (
	leftMargin = 2
	labelCol   = 11
	singleRow  = 2
	rangeRow   = 4
	minTrack   = 16
	maxTrack   = 48
)

type keyMap struct {
	Tab  key.Binding
	Yank key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Yank, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Tab, k.Yank, k.Quit}}
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch slider")),
		Yank: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank value")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// themeLoadedMsg delivers a reloaded theme from the file watcher.
type themeLoadedMsg struct{ theme slider.Theme }

type appModel struct {
	single slider.Model
	ranged slider.Model
	focus  int // 0 = single, 1 = ranged
	keys   keyMap
	help   help.Model
	status string

	themeCh <-chan slider.Theme

	width  int
	height int
}

func newApp(cfg slider.Config, th slider.Theme) appModel {
	single := cfg
	single.Range = false
	ranged := cfg
	ranged.Range = true

	m := appModel{
		single: slider.New(single, slider.WithTheme(th)),
		ranged: slider.New(ranged, slider.WithTheme(th)),
		keys:   defaultKeys(),
		help:   help.New(),
	}
	m.single.SetValue(value.Scalar((cfg.Min + cfg.Max) / 2))
	m.ranged.SetValue(value.Pair(
		cfg.Min+(cfg.Max-cfg.Min)*0.2,
		cfg.Min+(cfg.Max-cfg.Min)*0.8,
	))
	return m
}

func (m appModel) Init() tea.Cmd {
	return m.waitTheme()
}

// waitTheme blocks on the reload channel in a command; each received
// theme re-arms the wait.
func (m appModel) waitTheme() tea.Cmd {
	ch := m.themeCh
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		t, ok := <-ch
		if !ok {
			return nil
		}
		return themeLoadedMsg{theme: t}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.focus = 1 - m.focus
			return m, nil
		case key.Matches(msg, m.keys.Yank):
			m.status = m.yank()
			return m, nil
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case slider.ChangedMsg:
		// Controlled pattern: the committed value comes back to the
		// owning model, which feeds it into the slider again.
		switch msg.ID {
		case m.single.ID():
			m.single.SetValue(msg.Value)
			m.status = fmt.Sprintf("volume → %g", msg.Value.Scalar())
		case m.ranged.ID():
			m.ranged.SetValue(msg.Value)
			lo, hi := msg.Value.Endpoints()
			m.status = fmt.Sprintf("filter → %g-%g", lo, hi)
		}
		return m, nil

	case themeLoadedMsg:
		m.single.SetTheme(msg.theme)
		m.ranged.SetTheme(msg.theme)
		m.status = "theme reloaded"
		return m, m.waitTheme()
	}

	// Mouse events and geometry resolutions route to both sliders;
	// each one hit-tests its own rect and ignores foreign messages.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.single, cmd = m.single.Update(msg)
	cmds = append(cmds, cmd)
	m.ranged, cmd = m.ranged.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *appModel) layout() {
	track := m.width - labelCol - 14
	if track < minTrack {
		track = minTrack
	}
	if track > maxTrack {
		track = maxTrack
	}
	m.single.SetRect(geometry.Rect{Top: singleRow, Left: labelCol, Width: track, Height: 1})
	m.ranged.SetRect(geometry.Rect{Top: rangeRow, Left: labelCol, Width: track, Height: 1})
}

func (m appModel) yank() string {
	var s string
	if m.focus == 0 {
		s = fmt.Sprintf("%g", m.single.Value().Scalar())
	} else {
		lo, hi := m.ranged.Value().Endpoints()
		s = fmt.Sprintf("%g-%g", lo, hi)
	}
	if err := clipboard.WriteAll(s); err != nil {
		return fmt.Sprintf("clipboard: %v", err)
	}
	return fmt.Sprintf("yanked %q", s)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BD93F9"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8F8F2"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
)

func (m appModel) View() string {
	row := func(focused bool, label, body string) string {
		marker := "  "
		if focused {
			marker = "▸ "
		}
		return marker + labelStyle.Render(fmt.Sprintf("%-*s", labelCol-leftMargin, label)) + body
	}

	lines := []string{
		" " + titleStyle.Render("slider demo"),
		"",
		row(m.focus == 0, "Volume", m.single.View()),
		"",
		row(m.focus == 1, "Filter", m.ranged.View()),
		"",
		" " + statusStyle.Render(m.status),
		" " + m.help.View(m.keys),
	}
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
