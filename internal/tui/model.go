package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"gesturepad/internal/geom"
	"gesturepad/internal/raster"
	"gesturepad/internal/store"
)

// Config carries the settings the drawing pad starts with.
type Config struct {
	// Dir is the root of the gesture library.
	Dir string
	// ExportPath is where "e" writes the preview PNG.
	ExportPath string
	// ExportScale enlarges the exported 28×28 preview.
	ExportScale int
}

// inputMode says what the textarea is currently collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputPaste
	inputName
)

type Model struct {
	width  int
	height int

	cfg Config

	showSidebar bool
	helpVisible bool

	status string

	// Gesture library
	lib        *store.Library
	l          list.Model
	items      []list.Item
	selGesture string
	drawings   []*geom.Drawing

	// Current drawing; points are in braille micro-pixels of the canvas
	drawing    *geom.Drawing
	isDrawing  bool
	preview    raster.Grid
	hasPreview bool

	// paste / name input
	mode inputMode
	ta   textarea.Model

	// drawings table
	showTable bool
	tbl       table.Model
}

func New(cfg Config) Model {
	if cfg.Dir == "" {
		cfg.Dir = "gestures"
	}
	if cfg.ExportPath == "" {
		cfg.ExportPath = "preview.png"
	}
	if cfg.ExportScale < 1 {
		cfg.ExportScale = 10
	}
	m := Model{
		cfg:         cfg,
		helpVisible: true,
		status:      "gesturepad ready: draw with the left mouse button",
		drawing:     geom.New(),
	}
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Gestures"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// drawings table setup
	m.tbl = table.New(
		table.WithColumns(drawingColumns()),
		table.WithFocused(true),
	)
	m.tbl.SetHeight(12)

	lib, err := store.Open(cfg.Dir)
	if err != nil {
		m.status = "library error: " + err.Error()
		return m
	}
	m.lib = lib
	m.refreshGestures()
	return m
}

// NewWithGesture opens the pad with a gesture already selected.
func NewWithGesture(cfg Config, name string) Model {
	m := New(cfg)
	m.selectGesture(name)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
