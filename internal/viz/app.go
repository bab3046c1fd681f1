package viz

import (
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/san-kum/sortviz/internal/animation"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	stateMenu = iota
	stateConfig
	stateAnimate
)

const (
	fieldSize     = "size"
	fieldInterval = "interval"
)

type tickMsg struct{ gen int }

// App is the bubbletea model. The Session is shared by pointer, so value
// copies of App all see the same animation.
type App struct {
	state, cursor int
	session       *animation.Session
	fields        []string
	inputs        map[string]string
	field         int
	editing       bool
	editBuf       string
	theme         Theme
	gen, frame    int
	err           error
	message       string
	showHelp      bool
	showProfile   bool
	width, height int
	chartHeight   int
	exportDir     string
	log           zerolog.Logger
}

// NewApp builds the UI around an existing session.
func NewApp(session *animation.Session, cfg *config.Config, log zerolog.Logger) App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cursor := 0
	for i, a := range sorting.Algorithms {
		if a == session.Algorithm() {
			cursor = i
		}
	}
	return App{
		state:       stateMenu,
		cursor:      cursor,
		session:     session,
		fields:      []string{fieldSize, fieldInterval},
		inputs:      map[string]string{fieldSize: strconv.Itoa(cfg.SequenceSize()), fieldInterval: strconv.Itoa(session.IntervalMs())},
		theme:       GetTheme(cfg.Theme),
		showProfile: cfg.Chart.Profile,
		width:       cfg.Chart.Width,
		height:      cfg.Chart.Height + 12,
		chartHeight: cfg.Chart.Height,
		exportDir:   ".",
		log:         log,
	}
}

func (m App) Init() tea.Cmd { return nil }

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.session.Stop()
			return m, tea.Quit
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.chartHeight = clampInt(msg.Height-14, 4, 40)
		return m, nil
	case tickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

func (m App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateAnimate:
		return m.animateKey(msg)
	}
	return m, nil
}

func (m App) menuKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(sorting.Algorithms)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.err = m.session.SetAlgorithm(sorting.Algorithms[m.cursor])
		if m.err == nil {
			m.state, m.field = stateConfig, 0
		}
	}
	return m, nil
}

func (m App) configKey(msg tea.KeyMsg) (App, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			m.commitField(m.editBuf)
			m.editing, m.editBuf = false, ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if msg.Type == tea.KeyRunes {
				m.editBuf += string(msg.Runes)
			}
		}
		return m, nil
	}
	switch msg.String() {
	case "q", "esc":
		m.state, m.err = stateMenu, nil
	case "up", "k":
		if m.field > 0 {
			m.field--
		}
	case "down", "j":
		if m.field < len(m.fields)-1 {
			m.field++
		}
	case "enter", " ":
		m.editing, m.editBuf, m.err = true, m.inputs[m.fields[m.field]], nil
	case "left", "h":
		m.nudgeField(-1)
	case "right", "l":
		m.nudgeField(1)
	case "s":
		if err := m.session.CreateFromText(m.inputs[fieldSize]); err != nil {
			m.err = err
			return m, nil
		}
		m.state, m.err, m.message = stateAnimate, nil, ""
		return m, m.start()
	}
	return m, nil
}

// commitField stores text for the focused field. Size text is validated
// when the sequence is created; interval text is applied immediately.
func (m *App) commitField(text string) {
	name := m.fields[m.field]
	if name == fieldInterval {
		ms, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			m.err = &sorting.InputError{Text: text, Wrapped: sorting.ErrInvalidInput}
			return
		}
		if err := m.session.SetInterval(ms); err != nil {
			m.err = err
			return
		}
	}
	m.inputs[name] = strings.TrimSpace(text)
	m.err = nil
}

func (m *App) nudgeField(dir int) {
	name := m.fields[m.field]
	v, err := strconv.Atoi(m.inputs[name])
	if err != nil {
		return
	}
	switch name {
	case fieldSize:
		v = clampInt(v+dir, 1, sorting.PoolSize)
	case fieldInterval:
		v = clampInt(v+dir*intervalStep(v), animation.MinIntervalMs, animation.MaxIntervalMs)
		if m.err = m.session.SetInterval(v); m.err != nil {
			return
		}
	}
	m.inputs[name] = strconv.Itoa(v)
}

func (m App) animateKey(msg tea.KeyMsg) (App, tea.Cmd) {
	m.message = ""
	switch msg.String() {
	case "q", "esc":
		m.stop()
		m.state, m.err = stateConfig, nil
	case " ":
		if m.session.Running() {
			m.stop()
			return m, nil
		}
		return m, m.start()
	case "n":
		m.stop()
		res, err := m.session.StepOnce()
		m.err = err
		if err == nil && res == sorting.Done {
			m.message = "done"
		}
	case "+", "=":
		m.adjustInterval(-1)
	case "-", "_":
		m.adjustInterval(1)
	case "c":
		m.stop()
		m.err = m.session.CreateFromText(m.inputs[fieldSize])
	case "r":
		m.stop()
		m.session.Reset()
		m.err, m.message = nil, "reset; press c to create a new sequence"
	case "t":
		m.theme = NextTheme(m.theme)
		m.message = "theme: " + m.theme.Name
	case "p":
		m.showProfile = !m.showProfile
	case "e":
		m.exportSVG()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *App) start() tea.Cmd {
	if err := m.session.Start(); err != nil {
		m.err = err
		return nil
	}
	m.gen++
	m.err = nil
	return scheduleTick(m.gen, m.session.Interval())
}

// stop cancels the session and invalidates ticks already scheduled.
func (m *App) stop() {
	m.session.Stop()
	m.gen++
}

func (m App) handleTick(msg tickMsg) (App, tea.Cmd) {
	if msg.gen != m.gen || m.state != stateAnimate {
		return m, nil
	}
	m.frame++
	res, err := m.session.Tick()
	if err != nil {
		m.err = err
		return m, nil
	}
	if res == sorting.Done || !m.session.Running() {
		f := m.session.Frame()
		m.message = fmt.Sprintf("done in %d steps", f.Steps)
		return m, nil
	}
	return m, scheduleTick(m.gen, m.session.Interval())
}

func scheduleTick(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m *App) adjustInterval(dir int) {
	ms := m.session.IntervalMs()
	ms = clampInt(ms+dir*intervalStep(ms), animation.MinIntervalMs, animation.MaxIntervalMs)
	if err := m.session.SetInterval(ms); err != nil {
		m.err = err
		return
	}
	m.inputs[fieldInterval] = strconv.Itoa(ms)
	m.message = fmt.Sprintf("interval %dms", ms)
}

func intervalStep(ms int) int {
	switch {
	case ms > 200:
		return 50
	case ms > 20:
		return 10
	default:
		return 1
	}
}

func (m *App) exportSVG() {
	f := m.session.Frame()
	if f.Len() == 0 {
		m.err = sorting.ErrNoSequence
		return
	}
	name := fmt.Sprintf("sortviz_%s_%d.svg", m.session.Algorithm(), time.Now().Unix())
	path := filepath.Join(m.exportDir, name)
	opts := export.DefaultOptions()
	opts.Profile = m.showProfile
	if err := export.WriteSVG(path, f, m.theme.Hex, opts); err != nil {
		m.err = err
		return
	}
	m.log.Info().Str("path", path).Msg("frame exported")
	m.message = "saved " + path
}

func (m App) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateAnimate:
		return m.viewAnimate()
	}
	return ""
}

func (m App) header(title, sub string) string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	return "\n\n    " + GradientText(title, m.theme.Title, m.theme.Accent) + "\n    " + muted.Render(sub) + "\n    " + muted.Render("─────────────────────────") + "\n\n"
}

func (m App) errorLine() string {
	if m.err == nil {
		return ""
	}
	return "\n    " + lipgloss.NewStyle().Foreground(m.theme.Error).Bold(true).Render("✗ "+describeError(m.err)) + "\n"
}

func (m App) viewMenu() string {
	var b strings.Builder
	b.WriteString(m.header("SORTVIZ", "sorting algorithm animator"))
	for i, a := range sorting.Algorithms {
		desc := a.Description()
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				lipgloss.NewStyle().Foreground(m.theme.Title).Bold(true).Render("▸"),
				lipgloss.NewStyle().Foreground(m.theme.Text).Bold(true).Render(fmt.Sprintf("%-16s", a.Title())),
				lipgloss.NewStyle().Foreground(m.theme.Accent).Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n",
				lipgloss.NewStyle().Foreground(m.theme.Muted).Render(fmt.Sprintf("  %-16s", a.Title())),
				lipgloss.NewStyle().Foreground(m.theme.Muted).Faint(true).Render(desc)))
		}
	}
	b.WriteString(m.errorLine())
	b.WriteString("\n    " + KeyHints("j/k", "navigate", "enter", "select", "q", "quit") + "\n")
	return b.String()
}

func (m App) viewConfig() string {
	var b strings.Builder
	a := m.session.Algorithm()
	b.WriteString(m.header(strings.ToUpper(a.Title()), a.Description()))
	units := map[string]string{fieldSize: "values (1-99)", fieldInterval: "ms per step (1-1000)"}
	for i, name := range m.fields {
		val := fmt.Sprintf("%8s", m.inputs[name])
		if m.editing && i == m.field {
			val = fmt.Sprintf("%8s", m.editBuf+"_")
		}
		if i == m.field {
			b.WriteString(fmt.Sprintf("    %s %s %s  %s\n",
				lipgloss.NewStyle().Foreground(m.theme.Title).Bold(true).Render("▸"),
				lipgloss.NewStyle().Foreground(m.theme.Text).Bold(true).Render(fmt.Sprintf("%-10s", name)),
				lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).Render(val),
				hintStyle.Render(units[name])))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				lipgloss.NewStyle().Foreground(m.theme.Muted).Render(fmt.Sprintf("  %-10s", name)),
				lipgloss.NewStyle().Foreground(m.theme.Muted).Render(val),
				hintStyle.Render(units[name])))
		}
	}
	b.WriteString(m.errorLine())
	b.WriteString("\n    " + KeyHints("j/k", "select", "enter", "edit", "h/l", "adjust", "s", "create & start", "esc", "back") + "\n")
	return b.String()
}

func (m App) viewAnimate() string {
	st := m.session.Status()
	chartW := clampInt(m.width-8, 10, 400)

	var b strings.Builder
	b.WriteString("  " + GradientText("SORTVIZ", m.theme.Title, m.theme.Accent) + "  " +
		lipgloss.NewStyle().Foreground(m.theme.Text).Bold(true).Render(st.Selected.Title()) + "\n")

	b.WriteString(chartStyle.Render(RenderBars(st.Frame, m.theme, chartW, m.chartHeight)) + "\n")
	if m.showProfile && st.Len() > 1 {
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render(RenderProfile(st.Frame, clampInt(chartW-8, 10, 200), 4)) + "\n")
	}
	b.WriteString("  " + RenderLegend(st.Selected, m.theme) + "\n\n")
	b.WriteString("  " + m.statusLine(st) + "\n")
	if m.message != "" {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(m.theme.Accent).Render(m.message) + "\n")
	}
	b.WriteString(m.errorLine())
	if m.showHelp {
		b.WriteString("\n  " + KeyHints("space", "start/stop", "n", "step", "+/-", "speed", "c", "new", "r", "reset") +
			"\n  " + KeyHints("t", "theme", "p", "profile", "e", "export svg", "esc", "back", "ctrl+c", "quit") + "\n")
	} else {
		b.WriteString("\n  " + KeyHints("space", "start/stop", "n", "step", "?", "help") + "\n")
	}
	return b.String()
}

func (m App) statusLine(st animation.Status) string {
	var state string
	switch {
	case st.Running:
		state = StatusRunning.Render(AnimatedSpinner(m.frame) + " RUNNING")
	case st.Done:
		state = StatusDone.Render("✓ DONE")
	default:
		state = StatusStopped.Render("■ STOPPED")
	}

	total := st.Selected.TotalSteps(st.Len())
	progress := 0.0
	if st.Done {
		progress = 1
	} else if total > 0 && st.Algorithm == st.Selected {
		progress = float64(st.Steps) / float64(total)
	}

	return strings.Join([]string{
		state,
		ProgressBar(progress, 20, m.theme.Accent),
		MetricLabel.Render("step ") + MetricValue.Render(fmt.Sprintf("%d/%d", st.Steps, total)),
		MetricLabel.Render("cursor ") + MetricValue.Render(strconv.Itoa(st.Cursor)),
		MetricLabel.Render("n ") + MetricValue.Render(strconv.Itoa(st.Len())),
		MetricLabel.Render("interval ") + MetricValue.Render(fmt.Sprintf("%dms", st.IntervalMs)),
	}, "  ")
}

// describeError turns validation errors into messages for learners.
func describeError(err error) string {
	switch {
	case errors.Is(err, sorting.ErrInvalidInput):
		return "size must be a whole number"
	case errors.Is(err, sorting.ErrInvalidSize):
		return fmt.Sprintf("size must be between 1 and %d", sorting.PoolSize)
	case errors.Is(err, sorting.ErrInvalidValues):
		return fmt.Sprintf("values must be distinct and between %d and %d", sorting.MinValue, sorting.MaxValue)
	case errors.Is(err, sorting.ErrInvalidAlgorithm):
		return "unknown sorting algorithm"
	case errors.Is(err, sorting.ErrNoSequence):
		return "no sequence yet, press c to create one"
	case errors.Is(err, animation.ErrInvalidInterval):
		return fmt.Sprintf("interval must be between %d and %d ms", animation.MinIntervalMs, animation.MaxIntervalMs)
	case errors.Is(err, animation.ErrAnimating):
		return "stop the animation first"
	}
	return err.Error()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RunInteractive builds a session from cfg and runs the full-screen UI.
func RunInteractive(cfg *config.Config, log zerolog.Logger) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	session := animation.NewSession(sorting.NewStepper(rng),
		animation.WithAlgorithm(cfg.GetAlgorithm()),
		animation.WithInterval(cfg.IntervalMs),
		animation.WithLogger(log),
	)

	app := NewApp(session, cfg, log)
	if len(cfg.Values) > 0 {
		if err := session.Load(cfg.Values); err != nil {
			return err
		}
		app.state = stateAnimate
	}

	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
