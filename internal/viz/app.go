package viz

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/softviz/internal/analysis"
	"github.com/san-kum/softviz/internal/animate"
	"github.com/san-kum/softviz/internal/ingest"
	"github.com/san-kum/softviz/internal/logging"
	"github.com/san-kum/softviz/internal/transform"
)

const (
	historyCapacity = 120
	valueStep       = 0.01
	maxTableRows    = 10
)

type TickMsg time.Time

// Options tune the interactive view.
type Options struct {
	Step      float64
	FPS       int
	Autostart bool
	Width     int
	Height    int
	GIFPath   string
	Logger    *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		Step:      animate.DefaultStep,
		FPS:       60,
		Autostart: true,
		Width:     60,
		Height:    16,
		GIFPath:   "softviz.gif",
	}
}

// Model is the bubbletea program state. It owns the live vector, the engine
// configuration and the only animation controller.
type Model struct {
	values        transform.Vector
	cfg           transform.Config
	result        *transform.Result
	ctrl          *animate.Controller
	opts          Options
	log           *slog.Logger
	canvas        *Canvas
	selected      int
	frame         int
	err           error
	notice        string
	expectHistory []float64
	editing       bool
	editBuf       string
	recording     bool
	recorder      *Recorder
	showHelp      bool
}

// NewModel validates the inputs and prepares the first frame. The controller
// starts interpolating right away when opts.Autostart is set.
func NewModel(values transform.Vector, cfg transform.Config, opts Options) (Model, error) {
	if !(opts.Step > 0 && opts.Step <= 1) {
		opts.Step = animate.DefaultStep
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Width <= 0 {
		opts.Width = DefaultOptions().Width
	}
	if opts.Height <= 0 {
		opts.Height = DefaultOptions().Height
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewNop()
	}

	m := Model{
		ctrl:          &animate.Controller{},
		opts:          opts,
		log:           log,
		canvas:        NewCanvas(opts.Width, opts.Height),
		expectHistory: make([]float64, 0, historyCapacity),
		recorder:      NewRecorder(),
	}
	if err := m.apply(values, cfg); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			m.editKey(msg)
			return m, nil
		}
		return m.handleKey(msg)
	case TickMsg:
		m.advance()
		return m, m.tick()
	}
	return m, nil
}

// advance runs one animation frame.
func (m *Model) advance() {
	if m.ctrl.Running() {
		m.ctrl.Tick(m.opts.Step)
	}
	m.frame++
	m.draw()
	if m.recording {
		m.recorder.Capture(m.canvas)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.recording {
			m.stopRecording()
		}
		return m, tea.Quit
	case " ":
		if m.ctrl.Running() {
			m.ctrl.Stop()
		} else {
			m.ctrl.Start()
		}
	case "r":
		m.ctrl.Reset()
		m.draw()
	case "left", "h":
		if m.selected > 0 {
			m.selected--
		}
	case "right", "l":
		if m.selected < len(m.values)-1 {
			m.selected++
		}
	case "up", "k":
		m.adjustValue(valueStep)
	case "down", "j":
		m.adjustValue(-valueStep)
	case "+", "=":
		m.SetValues(ingest.Resize(m.values, len(m.values)+1))
	case "-", "_":
		if len(m.values) > 0 {
			m.SetValues(ingest.Resize(m.values, len(m.values)-1))
		}
	case "[":
		m.scaleTemperature(0.9)
	case "]":
		m.scaleTemperature(1.1)
	case "a":
		cfg := m.cfg
		if cfg.Algorithm == transform.Softmax {
			cfg.Algorithm = transform.Softargmax
		} else {
			cfg.Algorithm = transform.Softmax
		}
		m.SetConfig(cfg)
	case "m":
		cfg := m.cfg
		cfg.SubtractMax = !cfg.SubtractMax
		m.SetConfig(cfg)
	case "t":
		NextTheme()
	case "g":
		if m.recording {
			m.stopRecording()
		} else {
			m.recording = true
			m.recorder.Reset()
			m.notice = "recording"
		}
	case "e":
		m.editing = true
		m.editBuf = ingest.Format(m.values)
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) editKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter":
		m.editing = false
		if err := m.LoadText(m.editBuf); err == nil {
			m.notice = fmt.Sprintf("loaded %d values", len(m.values))
		}
		m.editBuf = ""
	case "esc":
		m.editing, m.editBuf = false, ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		for _, r := range msg.Runes {
			m.editBuf += string(r)
		}
	}
}

func (m *Model) adjustValue(delta float64) {
	if m.selected < 0 || m.selected >= len(m.values) {
		return
	}
	v := m.values.Clone()
	v[m.selected] = math.Round((v[m.selected]+delta)*1e6) / 1e6
	m.SetValues(v)
}

func (m *Model) scaleTemperature(factor float64) {
	cfg := m.cfg
	cfg.Temperature = roundSignificant(cfg.Temperature*factor, 6)
	m.SetConfig(cfg)
}

// roundSignificant keeps digits significant figures, so repeated scaling
// shrinks toward zero geometrically instead of snapping to it.
func roundSignificant(x float64, digits int) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	scale := math.Pow(10, float64(digits-1)-math.Floor(math.Log10(math.Abs(x))))
	return math.Round(x*scale) / scale
}

func (m *Model) stopRecording() {
	m.recording = false
	if err := m.recorder.Save(m.opts.GIFPath); err != nil {
		m.err = err
		m.log.Error("gif export failed", "path", m.opts.GIFPath, "error", err)
		return
	}
	m.notice = fmt.Sprintf("saved %d frames to %s", m.recorder.Len(), m.opts.GIFPath)
	m.log.Info("gif saved", "path", m.opts.GIFPath, "frames", m.recorder.Len())
}

// SetValues recomputes with new values. On error the previous values, result
// and chart are kept and the error is shown in the status line.
func (m *Model) SetValues(values transform.Vector) error {
	return m.apply(values, m.cfg)
}

// SetConfig recomputes with a new configuration, with the same error
// behavior as SetValues.
func (m *Model) SetConfig(cfg transform.Config) error {
	return m.apply(m.values, cfg)
}

// LoadText parses comma-separated values and applies them. Malformed input
// is rejected as a whole.
func (m *Model) LoadText(text string) error {
	values, err := ingest.Parse(text)
	if err != nil {
		m.err = err
		m.log.Warn("values rejected", "error", err)
		return err
	}
	return m.SetValues(values)
}

func (m *Model) apply(values transform.Vector, cfg transform.Config) error {
	res, err := transform.Compute(values, cfg)
	if err != nil {
		m.err = err
		m.log.Warn("recompute rejected", "algorithm", cfg.Algorithm, "temperature", cfg.Temperature, "error", err)
		return err
	}
	if err := m.ctrl.Initialize(values, res.Output); err != nil {
		m.err = err
		return err
	}

	m.values, m.cfg, m.result, m.err = values.Clone(), cfg, res, nil
	if m.selected >= len(m.values) {
		m.selected = max(len(m.values)-1, 0)
	}
	m.expectHistory = append(m.expectHistory, res.Expectation())
	if len(m.expectHistory) > historyCapacity {
		m.expectHistory = m.expectHistory[1:]
	}
	if m.opts.Autostart {
		m.ctrl.Start()
	}
	m.log.Debug("recomputed", "n", len(values), "algorithm", cfg.Algorithm, "sum", res.Sum)
	m.draw()
	return nil
}

func (m *Model) draw() {
	original, target := m.ctrl.Original(), m.ctrl.Target()
	DrawHistogram(m.canvas, m.ctrl.Current(), HistogramScale(original, target), HasNegative(original, target))
}

func (m Model) Values() transform.Vector  { return m.values.Clone() }
func (m Model) Config() transform.Config  { return m.cfg }
func (m Model) Result() *transform.Result { return m.result }
func (m Model) Current() transform.Vector { return m.ctrl.Current() }
func (m Model) Running() bool             { return m.ctrl.Running() }
func (m Model) Phase() animate.Phase      { return m.ctrl.Phase() }
func (m Model) Selected() int             { return m.selected }
func (m Model) Err() error                { return m.err }
func (m Model) Editing() bool             { return m.editing }
func (m Model) Recording() bool           { return m.recording }
func (m Model) Canvas() *Canvas           { return m.canvas }

func (m Model) transformed() bool {
	return m.ctrl.Index() > 0 || m.ctrl.Progress() > 0
}

// View renders the histogram on the left and the stats panel on the right.
func (m Model) View() string {
	title := "ORIGINAL VALUES"
	if m.transformed() {
		title = strings.ToUpper(m.cfg.Algorithm.String()) + " VALUES"
	}

	var left strings.Builder
	left.WriteString(headerStyle().Render(title) + "\n")
	left.WriteString(barStyle(m.transformed()).Render(m.canvas.String()) + "\n\n")
	left.WriteString(m.table())
	canvasView := canvasStyle.Render(left.String())

	statsView := statsStyle.Render(m.stats())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

func (m Model) table() string {
	if m.result == nil || len(m.values) == 0 {
		return tableStyle.Render("(no values)")
	}
	var b strings.Builder
	b.WriteString(tableStyle.Render(fmt.Sprintf("  %3s %9s %9s %7s %9s", "#", "value", "exp", "p", "out")) + "\n")

	start := 0
	if m.selected >= maxTableRows {
		start = m.selected - maxTableRows + 1
	}
	end := min(start+maxTableRows, len(m.values))
	for i := start; i < end; i++ {
		line := fmt.Sprintf("%3d %9.4f %9.4f %7.4f %9.4f", i, m.values[i], m.result.Exponents[i], m.result.Probabilities[i], m.result.Output[i])
		if i == m.selected {
			b.WriteString(selectedStyle().Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + valueStyle.Render(line) + "\n")
		}
	}
	if end < len(m.values) {
		b.WriteString(tableStyle.Render(fmt.Sprintf("  … %d more", len(m.values)-end)) + "\n")
	}
	return b.String()
}

func (m Model) stats() string {
	var s strings.Builder
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}

	status := strings.ToUpper(m.ctrl.Phase().String())
	if m.ctrl.Running() {
		status = AnimatedSpinner(m.frame) + " " + status
	}
	if m.recording {
		status += " ● REC"
	}
	s.WriteString(statusStyle(m.ctrl.Running()).Render(status) + "\n\n")

	row("Algorithm", m.cfg.Algorithm.String())
	if m.cfg.Algorithm == transform.Softargmax {
		row("Temperature", fmt.Sprintf("%.4g", m.cfg.Temperature))
	} else {
		row("Temperature", "n/a")
	}
	row("Subtract max", fmt.Sprintf("%t", m.cfg.SubtractMax))
	row("Column", fmt.Sprintf("%d/%d", min(m.ctrl.Index()+1, m.ctrl.Len()), m.ctrl.Len()))
	s.WriteString(labelStyle.Render("Progress") + ProgressBar(m.ctrl.Fraction(), 20) + "\n")

	if m.result != nil {
		row("Sum exp", fmt.Sprintf("%.4f", m.result.Sum))
		row("Expectation", fmt.Sprintf("%.4f", m.result.Expectation()))
		row("Entropy", fmt.Sprintf("%.4f nats", analysis.Entropy(m.result.Probabilities)))
		row("Arg max", fmt.Sprintf("%d", m.result.ArgMax()))
		s.WriteString(labelStyle.Render("Output") + SparklineChart(m.result.Output, 20) + "\n")
	}

	if len(m.expectHistory) > 1 {
		chart := asciigraph.Plot(m.expectHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Expectation per edit"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	switch {
	case m.editing:
		s.WriteString("\n" + selectedStyle().Render("values> ") + m.editBuf + "█\n")
	case m.err != nil:
		s.WriteString("\n" + errorStyle().Render(m.err.Error()) + "\n")
	case m.notice != "":
		s.WriteString("\n" + valueStyle.Render(m.notice) + "\n")
	}

	s.WriteString(helpStyle.Render(Separator(40) + "\nSP:Start/Stop R:Reset Q:Quit\n←→:Column ↑↓:Value +-:Size\n[ ]:Temp A:Algo M:SubMax E:Edit\nT:Theme G:Record ?:Help"))
	return s.String()
}

const helpOverlay = `
╔══════════════════════════════════════════╗
║            KEYBOARD SHORTCUTS            ║
╠══════════════════════════════════════════╣
║  Space    - Start/Stop the animation     ║
║  R        - Reset to the original values ║
║  Q        - Quit                         ║
║  ←/→      - Select column                ║
║  ↑/↓      - Change value by 0.01         ║
║  + / -    - Add or remove a column       ║
║  [ / ]    - Temperature x0.9 / x1.1      ║
║  A        - Toggle softmax/softargmax    ║
║  M        - Toggle max subtraction       ║
║  E        - Edit values as text          ║
║  T        - Cycle themes                 ║
║  G        - Toggle GIF recording         ║
║  ?        - Toggle this help             ║
╚══════════════════════════════════════════╝`

// Run starts the interactive program on the terminal.
func Run(values transform.Vector, cfg transform.Config, opts Options) error {
	m, err := NewModel(values, cfg, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
