package dispatcher

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/yaxwm/internal/geometry"
	"github.com/1broseidon/yaxwm/internal/grab"
	"github.com/1broseidon/yaxwm/internal/monitor"
	"github.com/1broseidon/yaxwm/internal/workspace"
	"github.com/1broseidon/yaxwm/internal/x11"
)

func (d *Dispatcher) handleMapRequest(e x11.MapRequest) {
	d.Log.Info("map request", "window", e.Window, "title", d.X.WindowTitle(e.Window))

	types := d.X.WindowType(e.Window)

	if err := d.X.Map(e.Window); err != nil {
		d.Log.Error("map failed", "window", e.Window, "err", err)
		return
	}

	if containsType(types, workspace.TypeDock) {
		return
	}

	if err := d.X.SetInputFocus(e.Window); err != nil {
		d.Log.Error("set input focus failed", "window", e.Window, "err", err)
	}
	d.updateBorders()

	px, py, err := d.X.QueryPointer()
	if err != nil {
		d.Log.Error("query pointer failed", "err", err)
		return
	}
	d.Monitors.Focused(uint16(px), uint16(py), func(_ int, m *monitor.Monitor) {
		wid := workspace.WindowID(e.Window)
		if _, ok := m.Workspaces.Find(wid); !ok {
			m.Workspaces.Insert(workspace.Client{ID: wid, State: workspace.ClassifyWindowType(types)})
		}
	})
	d.tileAll()
}

func (d *Dispatcher) handleUnmapNotify(e x11.UnmapNotify) {
	d.Log.Info("unmap notify", "window", e.Window)

	wid := workspace.WindowID(e.Window)
	d.Monitors.All(func(_ int, m *monitor.Monitor) {
		for i := 0; i < m.Workspaces.Len(); i++ {
			saved := m.Workspaces.Current()
			m.Workspaces.SetCurrent(i)
			if idx, ok := m.Workspaces.Find(wid); ok {
				m.Workspaces.Remove(idx)
				m.Workspaces.SetCurrent(saved)
				return
			}
			m.Workspaces.SetCurrent(saved)
		}
	})
	d.tileAll()
}

func (d *Dispatcher) handleEnterNotify(e x11.EnterNotify) {
	d.Log.Info("enter notify", "window", e.Window)

	if e.Window == d.X.Root || e.Window <= 1 {
		return
	}
	if containsType(d.X.WindowType(e.Window), workspace.TypeDock) {
		return
	}
	if err := d.X.SetInputFocus(e.Window); err != nil {
		d.Log.Error("set input focus failed", "window", e.Window, "err", err)
	}
}

func (d *Dispatcher) handleFocusIn(e x11.FocusIn) {
	d.Log.Info("focus in", "window", e.Window)

	if e.Window == d.X.Root || e.Window <= 1 {
		return
	}
	if containsType(d.X.WindowType(e.Window), workspace.TypeDock) {
		return
	}
	d.updateBorders()
}

func (d *Dispatcher) handleButtonPress(e x11.ButtonPress) {
	if d.Monitors.IsTiled(workspace.WindowID(e.Subwindow)) || !d.Config.Windows.MouseMovement {
		return
	}

	if err := d.X.Raise(e.Subwindow); err != nil {
		d.Log.Error("raise failed", "window", e.Subwindow, "err", err)
		return
	}

	geom, err := d.X.GetGeometry(e.Subwindow)
	if err != nil {
		d.Log.Error("get geometry failed", "window", e.Subwindow, "err", err)
		return
	}

	d.grab = grab.Press(
		grab.Button(e.Button),
		uint32(e.Subwindow),
		geometry.New(uint16(geom.X), uint16(geom.Y), geom.Width, geom.Height),
		int32(e.RootX), int32(e.RootY),
	)
}

func (d *Dispatcher) handleButtonRelease() {
	if !d.grab.IsPressed() {
		return
	}
	d.grab = grab.Release()
}

func (d *Dispatcher) handleMotionNotify(e x11.MotionNotify) {
	delta, ok := d.grab.Motion(int32(e.RootX), int32(e.RootY))
	if !ok {
		return
	}

	win := xproto.Window(d.grab.Target())
	if delta.Move {
		if err := d.X.Move(win, int(delta.X), int(delta.Y)); err != nil {
			d.Log.Error("move failed", "window", win, "err", err)
		}
		return
	}
	if err := d.X.Resize(win, int(delta.W), int(delta.H)); err != nil {
		d.Log.Error("resize failed", "window", win, "err", err)
	}
}

func (d *Dispatcher) handleConfigureRequest(e x11.ConfigureRequest) {
	d.Log.Info("configure request", "window", e.Window)

	if !containsType(d.X.WindowType(e.Window), workspace.TypeDock) {
		return
	}
	if err := d.X.ConfigureRaw(e.Window, e.ValueMask, e.Values); err != nil {
		d.Log.Error("configure failed", "window", e.Window, "err", err)
	}
}
