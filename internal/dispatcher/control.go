package dispatcher

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/yaxwm/internal/monitor"
	"github.com/1broseidon/yaxwm/internal/wire"
	"github.com/1broseidon/yaxwm/internal/workspace"
)

// handleControl interprets one decoded control message by tag. A
// "current monitor" operation that finds no monitor under the root
// pointer is a no-op, per spec.
func (d *Dispatcher) handleControl(seq wire.Sequence) {
	switch seq.Tag {
	case wire.Workspace:
		d.onWorkspace(seq.Value)
	case wire.Kill:
		d.onKill()
	case wire.Close:
		d.onClose()
	case wire.PaddingTop:
		d.Config.Padding.Top = uint16(seq.Value)
		d.tileAll()
	case wire.PaddingBottom:
		d.Config.Padding.Bottom = uint16(seq.Value)
		d.tileAll()
	case wire.PaddingLeft:
		d.Config.Padding.Left = uint16(seq.Value)
		d.tileAll()
	case wire.PaddingRight:
		d.Config.Padding.Right = uint16(seq.Value)
		d.tileAll()
	case wire.WindowGaps:
		d.Config.Windows.Gaps = uint16(seq.Value)
		d.tileAll()
	case wire.FocusedBorder:
		d.Config.Windows.Borders.Focused = seq.Value
		d.updateBorders()
	case wire.NormalBorder:
		d.Config.Windows.Borders.Normal = seq.Value
		d.updateBorders()
	case wire.BorderWidth:
		d.Config.Windows.Borders.Width = uint16(seq.Value)
		d.updateBorders()
	case wire.FocusUp:
		d.onChangeFocus(func(pos int) int { return max(pos, 1) - 1 })
	case wire.FocusDown:
		d.onChangeFocus(func(pos int) int { return pos + 1 })
	case wire.FocusMaster:
		d.onChangeFocus(func(int) int { return 0 })
	case wire.FloatToggle:
		d.onFloatToggle()
	case wire.FloatLeft:
		d.onMoveResizeFocused(func(x, y, w, h uint16) (uint16, uint16, uint16, uint16) {
			return x - min16(uint16(seq.Value), x), y, w, h
		})
	case wire.FloatRight:
		d.onMoveResizeFocused(func(x, y, w, h uint16) (uint16, uint16, uint16, uint16) {
			return x + uint16(seq.Value), y, w, h
		})
	case wire.FloatUp:
		d.onMoveResizeFocused(func(x, y, w, h uint16) (uint16, uint16, uint16, uint16) {
			return x, y - min16(uint16(seq.Value), y), w, h
		})
	case wire.FloatDown:
		d.onMoveResizeFocused(func(x, y, w, h uint16) (uint16, uint16, uint16, uint16) {
			return x, y + uint16(seq.Value), w, h
		})
	case wire.ResizeLeft:
		d.onMoveResizeFocused(func(x, y, w, h uint16) (uint16, uint16, uint16, uint16) {
			return x, y, w - min16(uint16(seq.Value), w), h
		})
	case wire.ResizeRight:
		d.onMoveResizeFocused(func(x, y, w, h uint16) (uint16, uint16, uint16, uint16) {
			return x, y, w + uint16(seq.Value), h
		})
	case wire.ResizeUp:
		d.onMoveResizeFocused(func(x, y, w, h uint16) (uint16, uint16, uint16, uint16) {
			return x, y, w, h - min16(uint16(seq.Value), h)
		})
	case wire.ResizeDown:
		d.onMoveResizeFocused(func(x, y, w, h uint16) (uint16, uint16, uint16, uint16) {
			return x, y, w, h + uint16(seq.Value)
		})
	case wire.EnableMouse:
		d.Config.Windows.MouseMovement = true
	case wire.DisableMouse:
		d.Config.Windows.MouseMovement = false
	case wire.WorkspacePerMonitor:
		d.onWorkspacePerMonitor(seq.Value)
	case wire.MonitorCirculate:
		d.onMonitorCirculate()
	case wire.Quit:
		d.ShouldClose = true
	case wire.Unknown:
		// ignored
	}
}

func (d *Dispatcher) onWorkspace(value uint32) {
	px, py, err := d.X.QueryPointer()
	if err != nil {
		d.Log.Error("query pointer failed", "err", err)
		return
	}

	target := int(max32(value, 1) - 1)
	d.Monitors.Focused(uint16(px), uint16(py), func(idx int, m *monitor.Monitor) {
		if target < m.Workspaces.Len() {
			m.Workspaces.SetCurrent(target)
		}
		desktop := uint32(idx*m.Workspaces.Len() + m.Workspaces.Current())
		if err := d.X.SetCurrentDesktop(desktop); err != nil {
			d.Log.Error("set current desktop failed", "err", err)
		}
		d.tileMonitor(m)
	})
}

func (d *Dispatcher) onKill() {
	d.focusedClient(func(_ *monitor.Monitor, c *workspace.Client) {
		if err := d.X.Kill(xproto.Window(c.ID)); err != nil {
			d.Log.Error("kill failed", "window", c.ID, "err", err)
		}
	})
}

func (d *Dispatcher) onClose() {
	d.focusedClient(func(_ *monitor.Monitor, c *workspace.Client) {
		if err := d.X.SendDeleteWindow(xproto.Window(c.ID)); err != nil {
			d.Log.Error("send delete window failed", "window", c.ID, "err", err)
		}
	})
}

func (d *Dispatcher) onChangeFocus(f func(pos int) int) {
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
		target, ok := m.Workspaces.ChangeFocus(workspace.WindowID(focus.Focus), f)
		if !ok {
			return
		}
		if err := d.X.SetInputFocus(xproto.Window(target.ID)); err != nil {
			d.Log.Error("set input focus failed", "window", target.ID, "err", err)
		}
	})
}

func (d *Dispatcher) onFloatToggle() {
	d.focusedClient(func(m *monitor.Monitor, c *workspace.Client) {
		switch c.State {
		case workspace.Float:
			m.Workspaces.SetState(c.ID, workspace.Tiled)
		case workspace.Tiled:
			m.Workspaces.SetState(c.ID, workspace.Float)
		}
	})
	d.tileAll()
}

func (d *Dispatcher) onMoveResizeFocused(transform func(x, y, w, h uint16) (uint16, uint16, uint16, uint16)) {
	d.focusedClient(func(_ *monitor.Monitor, c *workspace.Client) {
		if c.State != workspace.Float {
			return
		}
		win := xproto.Window(c.ID)
		geom, err := d.X.GetGeometry(win)
		if err != nil {
			d.Log.Error("get geometry failed", "window", c.ID, "err", err)
			return
		}
		x, y, w, h := transform(uint16(geom.X), uint16(geom.Y), geom.Width, geom.Height)
		if err := d.X.MoveResize(win, int(x), int(y), int(w), int(h)); err != nil {
			d.Log.Error("move-resize failed", "window", c.ID, "err", err)
		}
	})
}

func (d *Dispatcher) onWorkspacePerMonitor(value uint32) {
	n := d.Monitors.Len()
	d.Monitors.All(func(_ int, m *monitor.Monitor) {
		if err := m.Workspaces.Resize(int(value)); err != nil {
			d.Log.Error("workspace resize failed", "err", err)
		}
	})
	if err := d.X.SetNumberOfDesktops(value * uint32(n)); err != nil {
		d.Log.Error("set number of desktops failed", "err", err)
	}
}

func (d *Dispatcher) onMonitorCirculate() {
	focus, err := xproto.GetInputFocus(d.X.XUtil.Conn()).Reply()
	if err != nil {
		d.Log.Error("get input focus failed", "err", err)
		return
	}
	if d.Monitors.Circulate(workspace.WindowID(focus.Focus)) {
		d.tileAll()
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func max32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

func min16(a, b uint16) uint16 {
	if a < b {
		return a
	}
	return b
}
