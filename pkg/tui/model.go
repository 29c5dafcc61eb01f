// Package tui hosts the interactive page-preview browser: a read-only view
// over one working copy that repaginates live as the density or scope
// changes.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/sojourn/pkg/draft"
	"tableflip.dev/sojourn/pkg/export"
	"tableflip.dev/sojourn/pkg/paginate"
	"tableflip.dev/sojourn/pkg/scope"
)

type keyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Denser  key.Binding
	Sparser key.Binding
	Toggle  key.Binding
	Export  key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Denser, k.Sparser, k.Toggle, k.Export, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
	Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
	Denser:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more per page")),
	Sparser: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer per page")),
	Toggle:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "toggle section")),
	Export:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export pdf")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// pdfMsg is the async export result; replies carrying a stale sequence
// number are discarded rather than cancelled.
type pdfMsg struct {
	seq   uint64
	path  string
	pages int
	err   error
}

type Model struct {
	d       *draft.Draft
	tpl     scope.Template
	scope   scope.Scope
	perPage int

	pages  []paginate.Page
	cur    int
	seq    *export.Sequencer
	status string
	width  int
	help   help.Model
}

func New(d *draft.Draft, s scope.Scope, tpl scope.Template, perPage int) *Model {
	m := &Model{
		d:       d,
		tpl:     tpl,
		scope:   s,
		perPage: paginate.ClampPerPage(perPage),
		seq:     &export.Sequencer{},
		help:    help.New(),
	}
	m.repaginate()
	return m
}

// Run launches the Bubble Tea preview for an already-open working copy.
func Run(d *draft.Draft, s scope.Scope, tpl scope.Template, perPage int) error {
	p := tea.NewProgram(New(d, s, tpl, perPage), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd { return nil }

// repaginate recomputes the page set from a fresh snapshot. Cheap enough
// to run on every keypress.
func (m *Model) repaginate() {
	snapshot := m.d.Snapshot()
	m.pages = paginate.Paginate(snapshot, scope.Resolve(m.scope, snapshot), m.perPage)
	if m.cur >= len(m.pages) {
		m.cur = len(m.pages) - 1
	}
	if m.cur < 0 {
		m.cur = 0
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case pdfMsg:
		if msg.seq != m.seq.Latest() {
			// A newer request superseded this one.
			return m, nil
		}
		if msg.err != nil {
			m.status = fmt.Sprintf("export failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("wrote %s (%d pages)", msg.path, msg.pages)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Prev):
			if m.cur > 0 {
				m.cur--
			}
		case key.Matches(msg, keys.Next):
			if m.cur < len(m.pages)-1 {
				m.cur++
			}
		case key.Matches(msg, keys.Denser):
			m.perPage = paginate.ClampPerPage(m.perPage + 1)
			m.repaginate()
		case key.Matches(msg, keys.Sparser):
			m.perPage = paginate.ClampPerPage(m.perPage - 1)
			m.repaginate()
		case key.Matches(msg, keys.Toggle):
			if sec, ok := sectionForKey(msg.String()); ok {
				m.scope.Toggle(sec)
				m.repaginate()
			}
		case key.Matches(msg, keys.Export):
			m.status = "rendering pdf…"
			return m, m.exportCmd()
		}
	}
	return m, nil
}

func sectionForKey(k string) (scope.Section, bool) {
	order := scope.Order()
	switch k {
	case "1", "2", "3", "4", "5":
		return order[int(k[0]-'1')], true
	}
	return "", false
}

// exportCmd captures its own snapshot; the draft may change while the
// render is in flight.
func (m *Model) exportCmd() tea.Cmd {
	seq := m.seq.Next()
	snapshot := m.d.Snapshot()
	opts := export.Options{Scope: m.scope, Template: m.tpl, PerPage: m.perPage}
	return func() tea.Msg {
		h, err := export.PDF(snapshot, opts)
		if err != nil {
			return pdfMsg{seq: seq, err: err}
		}
		defer h.Release()
		path := "preview.pdf"
		if err := os.WriteFile(path, h.Bytes(), 0o644); err != nil {
			return pdfMsg{seq: seq, err: err}
		}
		return pdfMsg{seq: seq, path: path, pages: h.Pages()}
	}
}

var (
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	headerStyle = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func (m *Model) View() string {
	if len(m.pages) == 0 {
		return frameStyle.Render("no pages in scope") + "\n" + m.help.View(keys)
	}

	page := m.pages[m.cur]
	b := strings.Builder{}
	b.WriteString(headerStyle.Render(page.Header()))
	b.WriteString("\n\n")

	if page.Section == scope.SectionItinerary {
		for _, it := range page.Items {
			clock := it.Start.String()
			if clock == "" {
				clock = "--:--"
			}
			b.WriteString(fmt.Sprintf("%s  %s\n", faintStyle.Render(clock), it.Name))
		}
	} else {
		b.WriteString(faintStyle.Render("(section renders as a single flowing page)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render(page.Footer()))

	status := m.status
	if strings.HasPrefix(status, "export failed") {
		status = errStyle.Render(status)
	}

	return frameStyle.Render(b.String()) + "\n" +
		fmt.Sprintf("scope: %s · %d per page  %s\n", m.scope, m.perPage, status) +
		m.help.View(keys)
}
