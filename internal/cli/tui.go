package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	cerrors "github.com/matzehuels/composite/pkg/errors"
	"github.com/matzehuels/composite/pkg/pipeline"
	"github.com/matzehuels/composite/pkg/session"
	"github.com/matzehuels/composite/pkg/shape"
)

// Form styles
var (
	formFocusStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	formLabelStyle  = lipgloss.NewStyle().Foreground(colorGray).Width(22)
	formValueStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	formButtonStyle = lipgloss.NewStyle().Foreground(colorGray).Padding(0, 1)
	formActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Background(colorCyan).Padding(0, 1)
)

// =============================================================================
// Interactive command
// =============================================================================

// interactiveCommand creates the interactive command. The root command runs
// the same form when no subcommand is given.
func (c *CLI) interactiveCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Enter shapes in a form and compute their centroid",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.settings()
			flags.apply(cmd, &s)
			return c.runInteractive(cmd.Context(), s)
		},
	}
	flags.register(cmd)
	return cmd
}

// runInteractive runs the form in the alternate screen. Logging is silenced
// while the form is shown; the final listing and result are printed after
// it closes.
func (c *CLI) runInteractive(ctx context.Context, s renderSettings) error {
	if s.output == stdoutPath {
		return cerrors.New(cerrors.ErrCodeInvalidPath, "interactive mode cannot render to stdout")
	}

	quiet := newLogger(io.Discard, c.Logger.GetLevel())
	registerHooks(quiet)
	defer registerHooks(c.Logger)

	popts := s.options()
	popts.Logger = quiet
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	sess := session.New()
	defer sess.Close()
	c.Logger.Debug("session started", "session", sess.ShortID())

	runner := pipeline.NewRunner(sess.Cache, sess.Keyer(), quiet)
	m := newFormModel(withLogger(ctx, quiet), sess, runner, popts, s.output)

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	fm, ok := final.(formModel)
	if !ok || sess.Registry.Empty() {
		return nil
	}
	fmt.Println(shapeListing(sess.Registry.Snapshot()))
	if fm.result != "" {
		printNewline()
		printSuccess("%s", fm.result)
		for _, p := range fm.paths {
			printFile(p)
		}
	}
	return nil
}

// =============================================================================
// formModel - Interactive shape entry
// =============================================================================

type formField int

const (
	fieldRole formField = iota
	fieldKind
	fieldDim1
	fieldDim2
	fieldX
	fieldY
	fieldAdd
	fieldCompute
	fieldCount
)

// computedMsg carries the outcome of a background pipeline run.
type computedMsg struct {
	message string
	paths   []string
	err     error
}

// formModel is the bubbletea model for entering shapes and computing their
// composite centroid.
type formModel struct {
	ctx    context.Context
	sess   *session.Session
	runner *pipeline.Runner
	opts   pipeline.Options
	output string

	focus formField
	role  shape.Role
	kind  shape.Kind
	dims  [2]string
	x, y  string

	busy      bool
	status    string
	statusErr bool

	// result and paths hold the last successful computation.
	result string
	paths  []string
}

func newFormModel(ctx context.Context, sess *session.Session, runner *pipeline.Runner, opts pipeline.Options, output string) formModel {
	m := formModel{
		ctx:    ctx,
		sess:   sess,
		runner: runner,
		opts:   opts,
		output: output,
		role:   shape.Filled,
		x:      formatInput(0),
		y:      formatInput(0),
	}
	m.setKind(shape.Rectangle)
	return m
}

func (m formModel) Init() tea.Cmd {
	return nil
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case computedMsg:
		m.busy = false
		if msg.err != nil {
			m.result, m.paths = "", nil
			m.setError(msg.err)
			return m, nil
		}
		m.result, m.paths = msg.message, msg.paths
		m.status, m.statusErr = msg.message, false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.move(1)
		case "shift+tab", "up":
			m.move(-1)
		case "left":
			m.cycle(-1)
		case "right", " ":
			m.cycle(1)
		case "backspace":
			if p := m.input(); p != nil && *p != "" {
				r := []rune(*p)
				*p = string(r[:len(r)-1])
			}
		case "enter":
			return m.activate()
		default:
			if msg.Type == tea.KeyRunes {
				m.typeRunes(msg.Runes)
			}
		}
	}
	return m, nil
}

// activate runs the focused button, or moves on from any other field.
// Buttons are ignored while a compute is running.
func (m formModel) activate() (tea.Model, tea.Cmd) {
	switch m.focus {
	case fieldAdd:
		if m.busy {
			return m, nil
		}
		m.add()
		return m, nil
	case fieldCompute:
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status, m.statusErr = "Computing...", false
		return m, m.compute()
	default:
		m.move(1)
		return m, nil
	}
}

// move shifts the focus, skipping the second dimension for circles.
func (m *formModel) move(delta int) {
	for {
		m.focus = (m.focus + formField(delta) + fieldCount) % fieldCount
		if m.visible(m.focus) {
			return
		}
	}
}

func (m *formModel) visible(f formField) bool {
	return f != fieldDim2 || len(shape.DimensionNames(m.kind)) > 1
}

// cycle changes the role or kind under the focus.
func (m *formModel) cycle(delta int) {
	switch m.focus {
	case fieldRole:
		if m.role == shape.Filled {
			m.role = shape.Hole
		} else {
			m.role = shape.Filled
		}
	case fieldKind:
		n := len(shape.Kinds)
		for i, k := range shape.Kinds {
			if k == m.kind {
				m.setKind(shape.Kinds[(i+delta+n)%n])
				return
			}
		}
	}
}

// setKind switches the kind and resets the dimensions to its defaults.
func (m *formModel) setKind(k shape.Kind) {
	m.kind = k
	m.dims = [2]string{}
	for i, v := range shape.DefaultDimensions(k).Values() {
		m.dims[i] = formatInput(v)
	}
}

// input returns the text field under the focus, or nil.
func (m *formModel) input() *string {
	switch m.focus {
	case fieldDim1:
		return &m.dims[0]
	case fieldDim2:
		return &m.dims[1]
	case fieldX:
		return &m.x
	case fieldY:
		return &m.y
	default:
		return nil
	}
}

func (m *formModel) typeRunes(runes []rune) {
	p := m.input()
	if p == nil {
		return
	}
	for _, r := range runes {
		if strings.ContainsRune("0123456789.-+eE", r) {
			*p += string(r)
		}
	}
}

// add validates the form and appends the shape to the session. A rejected
// shape leaves the registry unchanged; an accepted one discards the last
// result.
func (m *formModel) add() {
	dims, centroid, err := m.values()
	if err == nil {
		_, err = m.sess.Add(m.ctx, m.role, dims, centroid)
	}
	if err != nil {
		m.setError(err)
		return
	}
	m.result, m.paths = "", nil
	m.status, m.statusErr = roleLabel(m.role)+" added!", false
}

// values parses the text fields.
func (m *formModel) values() (shape.Dimensions, orb.Point, error) {
	names := shape.DimensionNames(m.kind)
	values := make([]float64, len(names))
	for i, name := range names {
		v, err := parseInput(name, m.dims[i])
		if err != nil {
			return nil, orb.Point{}, err
		}
		values[i] = v
	}
	dims, err := shape.NewDimensions(m.kind, values...)
	if err != nil {
		return nil, orb.Point{}, err
	}

	x, err := parseInput("centroid x", m.x)
	if err != nil {
		return nil, orb.Point{}, err
	}
	y, err := parseInput("centroid y", m.y)
	if err != nil {
		return nil, orb.Point{}, err
	}
	return dims, orb.Point{x, y}, nil
}

// compute runs the pipeline on the current registry in the background and
// writes the rendered files.
func (m formModel) compute() tea.Cmd {
	ctx, reg, runner, opts, output := m.ctx, m.sess.Registry, m.runner, m.opts, m.output
	return func() tea.Msg {
		res, err := runner.Execute(ctx, reg, opts)
		if err != nil {
			return computedMsg{err: err}
		}
		paths, err := writeArtifacts(res.Artifacts, output, opts.Formats)
		if err != nil {
			return computedMsg{err: err}
		}
		return computedMsg{message: resultMessage(res.Composite), paths: paths}
	}
}

func (m *formModel) setError(err error) {
	loggerFromContext(m.ctx).Debug("form error", "err", err)
	m.status, m.statusErr = cerrors.UserMessage(err), true
}

func (m formModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Centroid Calculator"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render("session " + m.sess.ShortID()))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("tab/↑↓ move  ←/→ change  ⏎ select  esc quit"))
	b.WriteString("\n\n")

	b.WriteString(m.row(fieldRole, "Role", "‹ "+roleLabel(m.role)+" ›"))
	b.WriteString(m.row(fieldKind, "Shape Type", "‹ "+m.kind.String()+" ›"))
	for i, name := range shape.DimensionNames(m.kind) {
		b.WriteString(m.row(fieldDim1+formField(i), dimensionLabel(m.kind, i, name), m.dims[i]))
	}
	b.WriteString(m.row(fieldX, "Centroid X", m.x))
	b.WriteString(m.row(fieldY, "Centroid Y", m.y))
	b.WriteString("\n  ")
	b.WriteString(m.button(fieldAdd, "Add "+roleLabel(m.role)))
	b.WriteString(" ")
	b.WriteString(m.button(fieldCompute, "Compute"))
	b.WriteString("\n\n")

	if m.status != "" {
		if m.statusErr {
			b.WriteString(styleIconError.Render(iconError) + " " + StyleError.Render(m.status))
		} else {
			b.WriteString(styleIconSuccess.Render(iconSuccess) + " " + m.status)
		}
		b.WriteString("\n")
		if !m.statusErr && m.status == m.result {
			for _, p := range m.paths {
				b.WriteString("  " + StyleDim.Render(iconArrow+" "+p) + "\n")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(shapeListing(m.sess.Registry.Snapshot()))
	b.WriteString("\n")
	return b.String()
}

func (m formModel) row(f formField, label, value string) string {
	cursor := "  "
	style := formValueStyle
	if m.focus == f {
		cursor = formFocusStyle.Render("▸ ")
		style = formFocusStyle
		if m.input() != nil {
			value += "▏"
		}
	}
	return cursor + formLabelStyle.Render(label) + style.Render(value) + "\n"
}

func (m formModel) button(f formField, label string) string {
	if m.focus == f {
		return formActiveStyle.Render(label)
	}
	return formButtonStyle.Render("[" + label + "]")
}

// =============================================================================
// Helpers
// =============================================================================

// roleLabel names a role the way the form shows it.
func roleLabel(r shape.Role) string {
	if r == shape.Hole {
		return "Hole"
	}
	return "Shape"
}

// dimensionLabel names a form dimension field, e.g. "Length (horizontal)".
func dimensionLabel(k shape.Kind, i int, name string) string {
	label := strings.ToUpper(name[:1]) + name[1:]
	if k == shape.Circle {
		return label
	}
	if i == 0 {
		return label + " (horizontal)"
	}
	return label + " (vertical)"
}

func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// parseInput reads a numeric field. Range checks happen when the shape is
// created.
func parseInput(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, cerrors.New(cerrors.ErrCodeInvalidInput, "%s must be a number, got %q", name, s)
	}
	return v, nil
}

var _ tea.Model = formModel{}
