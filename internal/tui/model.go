package tui

import (
	"os"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"toryn/internal/bezier"
	"toryn/internal/demo"
	"toryn/internal/geom"
)

// Options configures a new Model.
type Options struct {
	Method geom.Method
	Steps  int    // samples of the interactive curve; 0 keeps the demo default
	Path   string // scene file shown at launch
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Drawing
	demos    []demo.Demo
	active   demo.Demo
	curve    *demo.Bezier
	method   geom.Method
	cache    *bezier.BinomialCache
	lastTick time.Time

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverPt    geom.Point2d

	// raster statistics table
	showStats bool
	tbl       table.Model
}

func New(opts Options) Model {
	m := Model{
		helpVisible: true,
		status:      "toryn ready",
		demos:       demo.All(),
		method:      opts.Method,
		cache:       bezier.NewBinomialCache(),
	}
	m.active = m.demos[0]
	for _, d := range m.demos {
		if b, ok := d.(*demo.Bezier); ok {
			m.curve = b
		}
	}
	if opts.Steps > 0 {
		m.curve.Steps = opts.Steps
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Scenes"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, LINESTRING, POLYGON, CIRCLE, BEZIER), one per line. Enter renders; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// stats table, rows filled per frame
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	if opts.Path != "" {
		m.loadPath(opts.Path)
	}
	return m
}

type tickMsg time.Time

// tick drives animated demos at about 30 frames per second.
func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }
