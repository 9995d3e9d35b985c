// Package studio is the interactive terminal frontend: pick a design, tune
// its parameters against a live braille preview, and render it in place.
package studio

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/artlab/internal/catalog"
	"github.com/san-kum/artlab/internal/config"
	"github.com/san-kum/artlab/internal/design"
	"github.com/san-kum/artlab/internal/preview"
	"github.com/san-kum/artlab/internal/render"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	accent = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type state int

const (
	stateMenu state = iota
	stateParams
	stateRender
	stateDone
)

type model struct {
	state  state
	cursor int

	designs []design.Design
	cfg     *config.Config
	cat     *catalog.Catalog

	selected design.Design
	tunable  design.Tunable // nil when the selected design has no parameters
	names    []string

	paramCursor int
	editing     bool
	editBuf     string
	notice      string

	frame     int
	started   time.Time
	canceling bool
	cancel    context.CancelFunc
	result    render.Result
	recErr    error

	width  int
	height int
}

// Run opens the studio over the given output settings. A nil catalog simply
// skips render history recording.
func Run(cfg *config.Config, cat *catalog.Catalog) error {
	p := tea.NewProgram(newApp(cfg, cat), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newApp(cfg *config.Config, cat *catalog.Catalog) model {
	return model{
		state:   stateMenu,
		designs: design.NewRegistry().All(),
		cfg:     cfg,
		cat:     cat,
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return nil }

type tickMsg time.Time

type doneMsg struct {
	res    render.Result
	err    error
	recErr error
}

func tick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateRender {
			return m, nil
		}
		m.frame++
		return m, tick()
	case doneMsg:
		return m.handleDone(msg)
	}
	return m, nil
}

func (m model) handleDone(msg doneMsg) (tea.Model, tea.Cmd) {
	if m.state != stateRender {
		return m, nil
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.canceling = false

	if msg.err != nil {
		m.state = stateParams
		if errors.Is(msg.err, context.Canceled) {
			m.notice = "render canceled"
		} else {
			m.notice = msg.err.Error()
		}
		return m, nil
	}
	m.result = msg.res
	m.recErr = msg.recErr
	m.state = stateDone
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateParams:
		return m.paramsKey(msg)
	case stateRender:
		return m.renderKey(msg)
	case stateDone:
		return m.doneKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.designs)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selectDesign(m.designs[m.cursor])
		m.state = stateParams
	}
	return m, nil
}

func (m *model) selectDesign(d design.Design) {
	m.selected = d
	m.notice = ""
	if err := m.cfg.Apply(d); err != nil {
		m.notice = err.Error()
	}

	m.tunable = nil
	m.names = nil
	if tun, ok := d.(design.Tunable); ok {
		m.tunable = tun
		for name := range tun.Params() {
			m.names = append(m.names, name)
		}
		sort.Strings(m.names)
	}
	m.paramCursor = 0
	m.editing = false
	m.editBuf = ""
}

func (m model) paramsKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			m.setParam(m.names[m.paramCursor], val)
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
		m.notice = ""
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.names)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		if m.tunable == nil {
			break
		}
		m.editing = true
		m.editBuf = fmt.Sprintf("%g", m.tunable.Params()[m.names[m.paramCursor]])
	case "left", "h":
		m.adjustParam(-1)
	case "right", "l":
		m.adjustParam(+1)
	case "r":
		cmd := m.startRender()
		m.state = stateRender
		return m, tea.Batch(tea.ClearScreen, cmd, tick())
	}
	return m, nil
}

func (m *model) adjustParam(dir float64) {
	if m.tunable == nil || len(m.names) == 0 {
		return
	}
	name := m.names[m.paramCursor]
	cur := m.tunable.Params()[name]
	m.setParam(name, cur+dir*stepFor(cur))
}

func (m *model) setParam(name string, val float64) {
	m.notice = ""
	if m.tunable == nil {
		return
	}
	if err := m.tunable.SetParam(name, val); err != nil {
		m.notice = err.Error()
	}
}

// stepFor sizes the arrow-key increment to the parameter's magnitude, so
// lattice dimensions move by whole cells while alphas move by hundredths.
func stepFor(v float64) float64 {
	if math.Abs(v) >= 2 {
		return 1
	}
	return 0.01
}

func (m *model) startRender() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.canceling = false
	m.frame = 0
	m.started = time.Now()
	m.notice = ""

	d := m.selected
	cat := m.cat
	dir := m.cfg.Output.Dir
	opts := render.Options{
		Width:   m.cfg.Output.Width,
		Height:  m.cfg.Output.Height,
		DPI:     m.cfg.Output.DPI,
		Workers: m.cfg.Output.Workers,
	}
	return func() tea.Msg {
		res, err := render.Save(ctx, d, opts, dir)
		var recErr error
		if err == nil && cat != nil {
			recErr = cat.Record(ctx, res)
		}
		return doneMsg{res: res, err: err, recErr: recErr}
	}
}

func (m model) renderKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	case "q", "esc":
		// Stay on this screen until the render goroutine acknowledges the
		// cancel, so parameter edits never race a compose in flight.
		if m.cancel != nil && !m.canceling {
			m.cancel()
			m.canceling = true
		}
	}
	return m, nil
}

func (m model) doneKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		cmd := m.startRender()
		m.state = stateRender
		return m, tea.Batch(tea.ClearScreen, cmd, tick())
	case "enter", "esc", " ":
		m.state = stateMenu
		m.notice = ""
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateParams:
		return m.viewParams()
	case stateRender:
		return m.viewRender()
	case stateDone:
		return m.viewDone()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("a r t l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, d := range m.designs {
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-14s", d.Slug())) + dim.Render(d.Title()) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-14s", d.Slug())) + dimmer.Render(d.Title()) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter open   q quit") + "\n")

	return b.String()
}

func (m model) viewParams() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.selected.Slug()) + "  " + dim.Render(m.selected.Title()) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 40)) + "\n\n")

	if m.tunable == nil {
		b.WriteString(dim.Render("        (no parameters)") + "\n")
	}
	params := map[string]float64{}
	if m.tunable != nil {
		params = m.tunable.Params()
	}
	for i, name := range m.names {
		val := fmt.Sprintf("%10.3f", params[name])
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%10s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-11s", name)) + accent.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-11s", name)) + dim.Render(val) + "\n")
		}
	}

	if cols := m.width - 6; cols >= preview.MinCols {
		if text, err := preview.Text(m.selected, cols); err == nil {
			b.WriteString("\n")
			for _, line := range strings.Split(text, "\n") {
				b.WriteString("   " + line + "\n")
			}
		}
	}

	if m.notice != "" {
		b.WriteString("\n" + yellow.Render("      "+m.notice) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  r render  esc back") + "\n")

	return b.String()
}

func (m model) viewRender() string {
	var b strings.Builder

	spinner := spinnerFrames[m.frame%len(spinnerFrames)]
	status := fmt.Sprintf("rendering %s", m.selected.Slug())
	if m.canceling {
		status = "canceling"
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("   %s %s  %s\n",
		cyan.Render(spinner), white.Render(status),
		dim.Render(fmt.Sprintf("%.1fs", time.Since(m.started).Seconds()))))
	b.WriteString(dim.Render(fmt.Sprintf("   %dx%d @ %.0f dpi", m.cfg.Output.Width, m.cfg.Output.Height, m.cfg.Output.DPI)) + "\n")
	b.WriteString("\n" + dim.Render("   esc cancel") + "\n")

	return b.String()
}

func (m model) viewDone() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("   " + green.Render("● saved ") + white.Render(m.result.Path) + "\n")
	b.WriteString(dim.Render(fmt.Sprintf("   %dx%d @ %.0f dpi in %.1fs",
		m.result.Width, m.result.Height, m.result.DPI,
		float64(m.result.ElapsedMS)/1000)) + "\n")
	if m.recErr != nil {
		b.WriteString(yellow.Render("   history not recorded: "+m.recErr.Error()) + "\n")
	}
	b.WriteString("\n" + dim.Render("   r render again   enter back   q quit") + "\n")

	return b.String()
}
