// Package panels provides UI panels for the application.
package panels

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"circuit-viewer/internal/app"
	"circuit-viewer/internal/circuit"
	"circuit-viewer/ui/canvas"
)

// SidePanel provides the main side panel with tabbed sections.
type SidePanel struct {
	state     *app.State
	canvas    *canvas.CircuitView
	container *container.AppTabs

	editorPanel *EditorPanel
	coordsPanel *CoordsPanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(state *app.State, cv *canvas.CircuitView) *SidePanel {
	sp := &SidePanel{
		state:  state,
		canvas: cv,
	}

	sp.editorPanel = NewEditorPanel(state)
	sp.coordsPanel = NewCoordsPanel(state, cv.ScaleFactor())

	sp.container = container.NewAppTabs(
		container.NewTabItem("Editor", sp.editorPanel.Container()),
		container.NewTabItem("Coordinates", sp.coordsPanel.Container()),
	)

	state.On(app.EventGraphChanged, func(interface{}) {
		sp.coordsPanel.Reload()
	})
	state.On(app.EventScaleFactorChanged, func(data interface{}) {
		if v, ok := data.(float64); ok {
			sp.coordsPanel.SetScaleFactor(v)
		}
	})

	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// EditorPanel holds the JSON editor: the external collaborator that replaces
// the circuit graph wholesale.
type EditorPanel struct {
	state     *app.State
	entry     *widget.Entry
	errLabel  *widget.Label
	container fyne.CanvasObject
}

// NewEditorPanel creates the JSON editor panel.
func NewEditorPanel(state *app.State) *EditorPanel {
	ep := &EditorPanel{
		state: state,
	}

	ep.entry = widget.NewMultiLineEntry()
	ep.entry.SetPlaceHolder(`{"devices": [], "wires": []}`)
	ep.entry.TextStyle = fyne.TextStyle{Monospace: true}

	ep.errLabel = widget.NewLabel("")
	ep.errLabel.Wrapping = fyne.TextWrapWord

	applyBtn := widget.NewButton("Apply", func() {
		if err := ep.state.SetGraphJSON([]byte(ep.entry.Text)); err != nil {
			ep.errLabel.SetText(err.Error())
			return
		}
		ep.errLabel.SetText("")
	})

	ep.container = container.NewBorder(
		nil,
		container.NewVBox(applyBtn, ep.errLabel),
		nil,
		nil,
		ep.entry,
	)
	return ep
}

// Container returns the panel container.
func (ep *EditorPanel) Container() fyne.CanvasObject {
	return ep.container
}

// CoordsPanel lists device world coordinates scaled by the current global
// scale factor, so it stays consistent with the canvas as the factor changes.
type CoordsPanel struct {
	state       *app.State
	scaleFactor float64
	devices     []*circuit.Device
	list        *widget.List
	container   fyne.CanvasObject
}

// NewCoordsPanel creates the coordinates table panel.
func NewCoordsPanel(state *app.State, scaleFactor float64) *CoordsPanel {
	cp := &CoordsPanel{
		state:       state,
		scaleFactor: scaleFactor,
	}

	cp.list = widget.NewList(
		func() int {
			return len(cp.devices)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(cp.devices) {
				return
			}
			d := cp.devices[id]
			obj.(*widget.Label).SetText(fmt.Sprintf("%s (%s)  x=%.1f  z=%.1f",
				d.ID, d.Type,
				d.Position.X*cp.scaleFactor,
				d.Position.Z*cp.scaleFactor))
		},
	)

	cp.container = cp.list
	cp.Reload()
	return cp
}

// Container returns the panel container.
func (cp *CoordsPanel) Container() fyne.CanvasObject {
	return cp.container
}

// Reload rebuilds the device rows from the current graph.
func (cp *CoordsPanel) Reload() {
	g, _ := cp.state.Graph()
	if g == nil {
		cp.devices = nil
	} else {
		cp.devices = g.Devices
	}
	cp.list.Refresh()
}

// SetScaleFactor updates the displayed scale factor and refreshes the rows.
func (cp *CoordsPanel) SetScaleFactor(v float64) {
	cp.scaleFactor = v
	cp.list.Refresh()
}
