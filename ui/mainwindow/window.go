// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"circuit-viewer/internal/app"
	"circuit-viewer/internal/view"
	"circuit-viewer/ui/canvas"
	"circuit-viewer/ui/panels"
	"circuit-viewer/ui/prefs"
)

const (
	prefKeyLastGraph   = "lastGraph"
	prefKeyScaleFactor = "scaleFactor"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	canvas    *canvas.CircuitView
	sidePanel *panels.SidePanel
	statusBar *widget.Label

	scaleSlider *widget.Slider
	scaleLabel  *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Circuit Viewer")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	scaleFactor := mw.prefs.Float(prefKeyScaleFactor, view.DefaultScaleFactor)
	mw.canvas = canvas.NewCircuitView(scaleFactor)

	mw.sidePanel = panels.NewSidePanel(mw.state, mw.canvas)

	mw.statusBar = widget.NewLabel("Ready")

	toolbar := mw.createToolbar()

	canvasArea := container.NewBorder(
		toolbar, // top
		nil,     // bottom
		nil,     // left
		nil,     // right
		mw.canvas,
	)

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		canvasArea,
	)
	split.SetOffset(0.25)

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,                             // center
	)

	mw.SetContent(content)
}

// createToolbar creates the toolbar with view controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	zoomOutBtn := widget.NewButton("-", func() {
		mw.canvas.ZoomOut()
	})
	zoomInBtn := widget.NewButton("+", func() {
		mw.canvas.ZoomIn()
	})
	rotateBtn := widget.NewButton("Rotate 90°", func() {
		mw.canvas.RotateStep()
		mw.statusBar.SetText(fmt.Sprintf("Rotation: %d°", mw.canvas.Transform().Quadrant()))
	})
	fitBtn := widget.NewButton("Fit", func() {
		g, _ := mw.state.Graph()
		mw.canvas.SetScaleFactor(view.SuggestScaleFactor(g))
	})

	mw.scaleSlider = widget.NewSlider(view.MinScaleFactor, view.MaxScaleFactor)
	mw.scaleSlider.Step = 100
	mw.scaleSlider.Value = mw.canvas.ScaleFactor()
	mw.scaleSlider.OnChanged = func(v float64) {
		mw.canvas.SetScaleFactor(v)
	}

	mw.scaleLabel = widget.NewLabel(fmt.Sprintf("%.0f", mw.canvas.ScaleFactor()))

	return container.NewBorder(
		nil, nil,
		container.NewHBox(
			widget.NewLabel("Zoom:"),
			zoomOutBtn,
			zoomInBtn,
			rotateBtn,
			fitBtn,
			widget.NewLabel("Scale:"),
		),
		mw.scaleLabel,
		mw.scaleSlider,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	openItem := fyne.NewMenuItem("Open Circuit…", func() {
		mw.openGraphDialog()
	})

	fileMenu := fyne.NewMenu("File", openItem)
	mw.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

// setupEventHandlers wires state events and canvas callbacks.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventGraphChanged, func(interface{}) {
		g, _ := mw.state.Graph()
		mw.canvas.SetGraph(g)
		mw.statusBar.SetText(fmt.Sprintf("%d devices, %d wires", len(g.Devices), len(g.Wires)))
	})

	mw.state.On(app.EventGraphLoaded, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.prefs.SetString(prefKeyLastGraph, path)
			if err := mw.prefs.Save(); err != nil {
				log.Printf("Save preferences: %v", err)
			}
		}
	})

	// The scale factor is the one transform parameter other views observe.
	mw.canvas.OnScaleFactorChange(func(v float64) {
		mw.scaleLabel.SetText(fmt.Sprintf("%.0f", v))
		mw.scaleSlider.SetValue(v)
		mw.prefs.SetFloat(prefKeyScaleFactor, v)
		mw.state.Emit(app.EventScaleFactorChanged, v)
	})
}

// openGraphDialog shows a file-open dialog for circuit graph JSON files.
func (mw *MainWindow) openGraphDialog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		path := reader.URI().Path()
		if err := mw.state.LoadGraph(path); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	fd.Show()
}

// RestoreLastGraph reloads the most recently opened circuit, if any.
func (mw *MainWindow) RestoreLastGraph() {
	path := mw.prefs.String(prefKeyLastGraph)
	if path == "" {
		return
	}
	if err := mw.state.LoadGraph(path); err != nil {
		log.Printf("Restore last circuit %s: %v", path, err)
	}
}
