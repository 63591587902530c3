package slider

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Dicklesworthstone/slider/pkg/geometry"
	"github.com/Dicklesworthstone/slider/pkg/value"
)

const defaultTrackLen = 24

// labelWidth keeps the value label column stable so the layout does
// not jitter while dragging.
const labelWidth = 10

var lastID int64

func nextID() int { return int(atomic.AddInt64(&lastID, 1)) }

// ChangedMsg announces a committed value to the parent model. ID
// identifies which slider instance changed.
type ChangedMsg struct {
	ID    int
	Value value.Value
}

type gestureKind int

const (
	kindTap gestureKind = iota
	kindMove
)

// boundsMsg carries a resolved geometry lookup back into Update. gen
// ties it to the gesture that requested it so late resolutions from a
// previous gesture are discarded.
type boundsMsg struct {
	id   int
	gen  uint64
	kind gestureKind
	rect geometry.Rect
	x, y int
	err  error
}

// Option configures a Model at construction.
type Option func(*Model)

// WithTheme overrides the default theme.
func WithTheme(t Theme) Option {
	return func(m *Model) { m.theme = t }
}

// WithProvider overrides the geometry provider. Without it the
// parent-assigned rect (SetRect) is used.
func WithProvider(p geometry.Provider) Option {
	return func(m *Model) { m.geo = p }
}

// Model is the bubbletea wrapper around Controller: it hit-tests
// mouse events against the rendered thumbs, resolves geometry through
// commands, and renders the track.
type Model struct {
	ctrl  *Controller
	theme Theme
	geo   geometry.Provider
	rect  geometry.Rect
	id    int
	gen   uint64
}

// New builds a slider component from cfg.
func New(cfg Config, opts ...Option) Model {
	m := Model{
		ctrl:  NewController(cfg),
		theme: DefaultTheme(),
		id:    nextID(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if cfg.ActiveColor != "" {
		m.theme.Active = cfg.ActiveColor
		m.theme.Gradient = false
	}
	if cfg.InactiveColor != "" {
		m.theme.Inactive = cfg.InactiveColor
	}
	return m
}

// ID returns the instance identifier carried by this slider's
// messages.
func (m Model) ID() int { return m.id }

// Value returns the last committed or externally supplied value.
func (m Model) Value() value.Value { return m.ctrl.Value() }

// SetValue feeds the externally owned value back in.
func (m *Model) SetValue(v value.Value) { m.ctrl.SetValue(v) }

// SetTheme swaps the theme, e.g. on a live reload.
func (m *Model) SetTheme(t Theme) { m.theme = t }

// SetRect assigns the control's layout rect in screen cells. It is
// used for hit testing and, absent a custom provider, as the
// geometry source.
func (m *Model) SetRect(r geometry.Rect) { m.rect = r }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(tea.MouseEvent(msg))
	case boundsMsg:
		return m.handleBounds(msg)
	}
	return m, nil
}

func (m Model) handleMouse(e tea.MouseEvent) (Model, tea.Cmd) {
	if m.ctrl.Disabled() {
		return m, nil
	}
	switch {
	case e.Button == tea.MouseButtonLeft && e.Action == tea.MouseActionPress:
		if idx, ok := m.hitThumb(e.X, e.Y); ok {
			m.gen++
			m.ctrl.StartDrag(idx, e.X, e.Y)
			return m, nil
		}
		if m.rect.Contains(e.X, e.Y) {
			m.gen++
			return m, m.resolveBounds(kindTap, e.X, e.Y)
		}
	case e.Action == tea.MouseActionMotion && m.ctrl.Session().Active():
		// Consumed here so the terminal's default drag selection
		// never sees the motion.
		m.ctrl.Drag(e.X, e.Y)
		return m, m.resolveBounds(kindMove, e.X, e.Y)
	case e.Action == tea.MouseActionRelease:
		if m.ctrl.EndDrag() {
			return m, m.changed()
		}
	}
	return m, nil
}

func (m Model) handleBounds(msg boundsMsg) (Model, tea.Cmd) {
	if msg.id != m.id || msg.gen != m.gen || msg.err != nil {
		// Stale gesture or unmeasurable control: drop silently.
		return m, nil
	}
	var committed bool
	switch msg.kind {
	case kindTap:
		committed = m.ctrl.Tap(msg.rect, msg.x, msg.y)
	case kindMove:
		committed = m.ctrl.ApplyDrag(msg.rect)
	}
	if committed {
		return m, m.changed()
	}
	return m, nil
}

// resolveBounds issues the asynchronous geometry lookup for the
// current generation. The session is deliberately not captured: it
// is re-read when the result lands.
func (m Model) resolveBounds(kind gestureKind, x, y int) tea.Cmd {
	id, gen := m.id, m.gen
	p := m.provider()
	return func() tea.Msg {
		r, err := p.Bounds()
		return boundsMsg{id: id, gen: gen, kind: kind, rect: r, x: x, y: y, err: err}
	}
}

func (m Model) provider() geometry.Provider {
	if m.geo != nil {
		return m.geo
	}
	return geometry.Fixed(m.rect)
}

func (m Model) changed() tea.Cmd {
	msg := ChangedMsg{ID: m.id, Value: m.ctrl.Value()}
	return func() tea.Msg { return msg }
}

// trackLen returns the rendered track length in cells.
func (m Model) trackLen() int {
	if n := m.ctrl.cfg.Size; n > 0 {
		return n
	}
	if m.ctrl.cfg.Orientation == Vertical {
		if m.rect.Height > 0 {
			return m.rect.Height
		}
	} else if m.rect.Width > 0 {
		return m.rect.Width
	}
	return defaultTrackLen
}

func (m Model) thumbCount() int {
	if m.ctrl.cfg.Range {
		return 2
	}
	return 1
}

// thumbCell returns the track cell thumb i currently occupies.
func (m Model) thumbCell(i, n int) int {
	b := m.ctrl.Bounds()
	v := m.ctrl.DisplayValue()
	f := (v.Endpoint(i) - b.Min) / b.Scope()
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return int(math.Round(f * float64(n-1)))
}

// hitThumb finds the thumb whose rendered cell is at or next to the
// pointer. This is the index-tagged thumb contract: the press arrives
// already attributed to an endpoint.
func (m Model) hitThumb(x, y int) (int, bool) {
	if !m.rect.Contains(x, y) {
		return 0, false
	}
	var pos int
	if m.ctrl.cfg.Orientation == Vertical {
		pos = y - m.rect.Top
	} else {
		pos = x - m.rect.Left
	}
	n := m.trackLen()
	best, bestDist := -1, 2
	for i := 0; i < m.thumbCount(); i++ {
		d := pos - m.thumbCell(i, n)
		if d < 0 {
			d = -d
		}
		// Ties keep the lower index, matching the midpoint rule's
		// preference for the low endpoint.
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// View renders the track, fill, and thumbs. Pure presentation: the
// fill span comes straight from the value engine's extent and offset
// percentages.
func (m Model) View() string {
	n := m.trackLen()
	if n < 2 {
		n = 2
	}
	b := m.ctrl.Bounds()
	v := m.ctrl.DisplayValue()

	// Fill span in cells, derived from the percent math. Mid-drag
	// the endpoints may be crossed; the span renders between them
	// either way.
	span := value.ResolveOverlap(value.Quantize(v, b))
	offset := int(math.Round(span.OffsetPercent(b) / 100 * float64(n-1)))
	extent := int(math.Round(span.ExtentPercent(b) / 100 * float64(n-1)))

	thumbs := make(map[int]bool, m.thumbCount())
	for i := 0; i < m.thumbCount(); i++ {
		thumbs[m.thumbCell(i, n)] = true
	}

	disabled := m.ctrl.Disabled()
	railStyle := lipgloss.NewStyle().Foreground(m.theme.Inactive)
	thumbStyle := lipgloss.NewStyle().Foreground(m.theme.Thumb).Bold(true)
	if disabled {
		railStyle = lipgloss.NewStyle().Foreground(m.theme.Disabled).Faint(true)
		thumbStyle = railStyle
	}

	cells := make([]string, 0, n)
	for i := 0; i < n; i++ {
		switch {
		case thumbs[i]:
			cells = append(cells, thumbStyle.Render(m.theme.ThumbChar))
		case i >= offset && i < offset+extent:
			if disabled {
				cells = append(cells, railStyle.Render(m.theme.FillChar))
			} else {
				c := lipgloss.NewStyle().Foreground(m.theme.fillColor(i-offset, extent))
				cells = append(cells, c.Render(m.theme.FillChar))
			}
		default:
			cells = append(cells, railStyle.Render(m.theme.RailChar))
		}
	}

	if m.ctrl.cfg.Orientation == Vertical {
		return strings.Join(cells, "\n")
	}

	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Label)
	if disabled {
		labelStyle = labelStyle.Faint(true)
	}
	return strings.Join(cells, "") + " " + labelStyle.Render(m.label())
}

func (m Model) label() string {
	v := m.ctrl.DisplayValue()
	var s string
	if v.IsPair() {
		lo, hi := value.ResolveOverlap(v).Endpoints()
		s = fmt.Sprintf("%g-%g", lo, hi)
	} else {
		s = fmt.Sprintf("%g", v.Scalar())
	}
	return runewidth.FillRight(s, labelWidth)
}
