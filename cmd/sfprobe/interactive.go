package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/gosfml/csfml"
	"github.com/wippyai/gosfml/resource"
	"github.com/wippyai/gosfml/runtime"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// visibleRows bounds the symbol list height.
const visibleRows = 20

type symbolInfo struct {
	name      string
	library   string
	signature string
	missing   bool
}

type modelState int

const (
	stateBrowse modelState = iota
	stateProbe
)

type interactiveModel struct {
	err         error
	rt          *runtime.Runtime
	opts        options
	symbols     []symbolInfo
	filtered    []symbolInfo
	results     []probeResult
	filter      textinput.Model
	selected    int
	state       modelState
	missingOnly bool
}

func newInteractiveModel(opts options) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "filter symbols"
	ti.Prompt = "/ "
	ti.Width = 40
	ti.Focus()
	return &interactiveModel{
		opts:   opts,
		filter: ti,
		state:  stateBrowse,
	}
}

type loadedMsg struct {
	err     error
	rt      *runtime.Runtime
	symbols []symbolInfo
}

type probedMsg struct {
	results []probeResult
}

func (m *interactiveModel) Init() tea.Cmd {
	return tea.Batch(m.load, textinput.Blink)
}

func (m *interactiveModel) load() tea.Msg {
	b, err := openBackend(context.Background(), m.opts, newLogger(false))
	if err != nil {
		return loadedMsg{err: err}
	}
	rt, err := runtime.New(b)
	if err != nil {
		b.Close()
		return loadedMsg{err: err}
	}
	return loadedMsg{rt: rt, symbols: collectSymbols(rt.API())}
}

func collectSymbols(api *csfml.API) []symbolInfo {
	var out []symbolInfo
	for _, sym := range api.Symbols() {
		out = append(out, symbolInfo{
			name:      sym.Name,
			library:   sym.Library,
			signature: goSignature(sym),
			missing:   api.IsMissing(sym.Name),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func (m *interactiveModel) probe() tea.Msg {
	return probedMsg{results: probe(m.rt)}
}

func (m *interactiveModel) applyFilter() {
	q := strings.ToLower(m.filter.Value())
	m.filtered = m.filtered[:0]
	for _, s := range m.symbols {
		if m.missingOnly && !s.missing {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(s.name), q) {
			continue
		}
		m.filtered = append(m.filtered, s)
	}
	if m.selected >= len(m.filtered) {
		m.selected = max(len(m.filtered)-1, 0)
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.rt != nil {
				m.rt.Close()
			}
			return m, tea.Quit

		case "up":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down":
			if m.state == stateBrowse && m.selected < len(m.filtered)-1 {
				m.selected++
			}
			return m, nil

		case "tab":
			m.missingOnly = !m.missingOnly
			m.applyFilter()
			return m, nil

		case "ctrl+p":
			if m.rt != nil {
				return m, m.probe
			}

		case "esc":
			if m.state == stateProbe {
				m.state = stateBrowse
				m.results = nil
				return m, nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.rt = msg.rt
		m.symbols = msg.symbols
		m.applyFilter()
		return m, nil

	case probedMsg:
		m.results = msg.results
		m.state = stateProbe
		return m, nil
	}

	if m.state == stateBrowse {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress ctrl+c to quit.", m.err))
	}
	if m.rt == nil {
		return "Loading backend..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("CSFML Probe"))
	b.WriteString(" ")
	b.WriteString(m.opts.backend)
	b.WriteString(fmt.Sprintf("  live resources: %d\n\n", m.rt.Resources().Len()))

	switch m.state {
	case stateBrowse:
		b.WriteString(m.filter.View())
		if m.missingOnly {
			b.WriteString(errorStyle.Render("  [missing only]"))
		}
		b.WriteString("\n\n")

		start := max(m.selected-visibleRows+1, 0)
		end := min(start+visibleRows, len(m.filtered))
		for i := start; i < end; i++ {
			line := m.formatSymbol(m.filtered[i])
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + m.filtered[i].name))
				b.WriteString(" " + typeStyle.Render(m.filtered[i].signature))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("\n%d of %d symbols\n", len(m.filtered), len(m.symbols)))
		b.WriteString(helpStyle.Render("type to filter • ↑/↓ select • tab missing only • ctrl+p probe • ctrl+c quit"))

	case stateProbe:
		b.WriteString("Probe results:\n\n")
		for _, r := range m.results {
			if r.err != nil {
				b.WriteString(errorStyle.Render(fmt.Sprintf("  fail %-12s %v", r.name, r.err)))
			} else {
				b.WriteString(resultStyle.Render(fmt.Sprintf("  ok   %-12s %s", r.name, r.detail)))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.liveResources())
		b.WriteString(helpStyle.Render("esc back • ctrl+c quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatSymbol(s symbolInfo) string {
	name := funcStyle.Render(s.name)
	if s.missing {
		name = errorStyle.Render(s.name + " (missing)")
	}
	return name + " " + helpStyle.Render(s.library)
}

// liveResources lists resources still owned after the probe.
func (m *interactiveModel) liveResources() string {
	var b strings.Builder
	m.rt.Resources().Each(func(h resource.Handle, e resource.Entry) bool {
		b.WriteString(fmt.Sprintf("  #%d %s @%#x borrows=%d\n", h, e.Kind, e.Addr, e.Borrows))
		return true
	})
	if b.Len() == 0 {
		return resultStyle.Render("  no live resources") + "\n\n"
	}
	return "Live resources:\n" + b.String() + "\n"
}

func runInteractive(opts options) error {
	p := tea.NewProgram(newInteractiveModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
