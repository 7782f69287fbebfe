// Package dispatcher interprets decoded control messages (C10) and X
// events (C11) against the engine's shared state. Both run on the
// single main-loop goroutine, so nothing here needs its own locking
// beyond the event queue's.
package dispatcher

import (
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/yaxwm/internal/config"
	"github.com/1broseidon/yaxwm/internal/geometry"
	"github.com/1broseidon/yaxwm/internal/grab"
	"github.com/1broseidon/yaxwm/internal/monitor"
	"github.com/1broseidon/yaxwm/internal/tiling"
	"github.com/1broseidon/yaxwm/internal/wire"
	"github.com/1broseidon/yaxwm/internal/workspace"
	"github.com/1broseidon/yaxwm/internal/x11"
)

// Dispatcher owns every piece of mutable engine state that lives only
// on the main goroutine.
type Dispatcher struct {
	X        *x11.Conn
	Monitors *monitor.Monitors
	Config   *config.Config
	Log      *slog.Logger

	grab        grab.State
	ShouldClose bool
}

// New constructs a Dispatcher over an already-connected X session,
// loaded monitor set, and bootstrap config.
func New(x *x11.Conn, monitors *monitor.Monitors, cfg *config.Config, log *slog.Logger) *Dispatcher {
	return &Dispatcher{X: x, Monitors: monitors, Config: cfg, Log: log}
}

// Dispatch routes one queue item to the control-message or X-event
// handler by type. Anything else (should not occur given the two
// producers) is logged and dropped.
func (d *Dispatcher) Dispatch(event any) {
	switch e := event.(type) {
	case wire.Sequence:
		d.handleControl(e)
	case x11.MapRequest:
		d.handleMapRequest(e)
	case x11.UnmapNotify:
		d.handleUnmapNotify(e)
	case x11.EnterNotify:
		d.handleEnterNotify(e)
	case x11.FocusIn:
		d.handleFocusIn(e)
	case x11.ButtonPress:
		d.handleButtonPress(e)
	case x11.ButtonRelease:
		d.handleButtonRelease()
	case x11.MotionNotify:
		d.handleMotionNotify(e)
	case x11.ConfigureRequest:
		d.handleConfigureRequest(e)
	default:
		d.Log.Error("unrecognized queue event", "type", event)
	}
}

// tileMonitor re-tiles one monitor's current workspace against its
// padded area.
func (d *Dispatcher) tileMonitor(m *monitor.Monitor) {
	area := m.Area.Pad(geometry.Padding(d.Config.Padding))
	plan := tiling.Tile(m.Workspaces, area, d.Config.Windows.Gaps)
	d.applyPlan(plan)
}

// tileAll re-tiles every monitor.
func (d *Dispatcher) tileAll() {
	d.Monitors.All(func(_ int, m *monitor.Monitor) { d.tileMonitor(m) })
}

// applyPlan issues the X calls a tiling.Plan describes. Individual
// failures (a vanished window) are logged and skipped, per the
// protocol/transport-recoverable error class: partial application is
// tolerated because re-tiling is idempotent.
func (d *Dispatcher) applyPlan(plan tiling.Plan) {
	for _, p := range plan.Placements {
		win := xproto.Window(p.ID)
		if err := d.X.MoveResize(win, int(p.Area.X), int(p.Area.Y), int(p.Area.W), int(p.Area.H)); err != nil {
			d.Log.Error("move-resize failed", "window", win, "err", err)
		}
	}
	for _, id := range plan.MapAll {
		if err := d.X.Map(xproto.Window(id)); err != nil {
			d.Log.Error("map failed", "window", id, "err", err)
		}
	}
	for _, id := range plan.Unmap {
		if err := d.X.Unmap(xproto.Window(id)); err != nil {
			d.Log.Error("unmap failed", "window", id, "err", err)
		}
	}
}

// focusedClient locates the client backing the currently X-focused
// window on the focused monitor, and applies mutate to it in place.
// A no-op if there is no focused monitor or the focused window isn't
// a known client there.
func (d *Dispatcher) focusedClient(mutate func(m *monitor.Monitor, c *workspace.Client)) {
	focus, err := xproto.GetInputFocus(d.X.XUtil.Conn()).Reply()
	if err != nil {
		d.Log.Error("get input focus failed", "err", err)
		return
	}

	px, py, err := d.X.QueryPointer()
	if err != nil {
		d.Log.Error("query pointer failed", "err", err)
		return
	}

	d.Monitors.Focused(uint16(px), uint16(py), func(_ int, m *monitor.Monitor) {
		idx, ok := m.Workspaces.Find(workspace.WindowID(focus.Focus))
		if !ok {
			return
		}
		clients := m.Workspaces.CurrentClients()
		mutate(m, &clients[idx])
	})
}

// updateBorders sets every known client's border width and normal
// colour, then paints the currently focused window (if any, and not
// Dock) with the focused colour.
func (d *Dispatcher) updateBorders() {
	borders := d.Config.Windows.Borders

	d.Monitors.All(func(_ int, m *monitor.Monitor) {
		m.Workspaces.MapClients(func(c *workspace.Client) {
			win := xproto.Window(c.ID)
			if err := d.X.SetBorderWidth(win, borders.Width); err != nil {
				d.Log.Error("set border width failed", "window", win, "err", err)
			}
			if err := d.X.SetBorderPixel(win, borders.Normal); err != nil {
				d.Log.Error("set border pixel failed", "window", win, "err", err)
			}
		})
	})

	focus, err := xproto.GetInputFocus(d.X.XUtil.Conn()).Reply()
	if err != nil {
		return
	}
	win := focus.Focus
	if win == d.X.Root || win <= 1 {
		return
	}
	if containsType(d.X.WindowType(win), workspace.TypeDock) {
		return
	}
	if err := d.X.SetBorderPixel(win, borders.Focused); err != nil {
		d.Log.Error("paint focused border failed", "window", win, "err", err)
	}
}

func containsType(types []string, want string) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}
