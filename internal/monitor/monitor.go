// Package monitor models the set of physical screens: each owns its
// own geometry and workspace set. Pointer-to-monitor lookup and
// cross-monitor client migration live here rather than in the
// workspace package, since both require visibility across every
// monitor's workspace set at once.
package monitor

import (
	"github.com/1broseidon/yaxwm/internal/geometry"
	"github.com/1broseidon/yaxwm/internal/workspace"
)

// Monitor is a physical screen area with its own workspace set.
type Monitor struct {
	Area       geometry.Area
	Workspaces *workspace.WorkspaceSet
}

// Monitors is the ordered set of screens created at startup from the X
// multi-screen extension. It is static for the process lifetime;
// hot-plug is not handled.
type Monitors struct {
	list []Monitor
}

// New wraps an ordered slice of monitors, each already carrying its
// own workspace set.
func New(monitors []Monitor) *Monitors {
	return &Monitors{list: monitors}
}

// Len returns the number of monitors.
func (m *Monitors) Len() int {
	return len(m.list)
}

// At returns a pointer to the monitor at index i for direct mutation
// (tiling, resize).
func (m *Monitors) At(i int) *Monitor {
	return &m.list[i]
}

// Focused calls visit for every monitor whose area contains (px, py),
// the root window pointer position. Ordinarily there is at most one
// such monitor; if none contains the pointer, visit is never called
// and the caller (dispatcher) treats the event as a no-op.
func (m *Monitors) Focused(px, py uint16, visit func(index int, mon *Monitor)) {
	for i := range m.list {
		if m.list[i].Area.Contains(px, py) {
			visit(i, &m.list[i])
		}
	}
}

// All calls visit for every monitor in order.
func (m *Monitors) All(visit func(index int, mon *Monitor)) {
	for i := range m.list {
		visit(i, &m.list[i])
	}
}

// IsTiled reports whether wid is not known as floating on any
// workspace of any monitor. A window absent everywhere also reports
// true, matching spec: "no monitor reports is_float for any
// workspace".
func (m *Monitors) IsTiled(wid workspace.WindowID) bool {
	for i := range m.list {
		ws := m.list[i].Workspaces
		for j := 0; j < ws.Len(); j++ {
			for _, c := range ws.ClientsAt(j) {
				if c.ID == wid && c.State == workspace.Float {
					return false
				}
			}
		}
	}
	return true
}

// ExtractClient searches every workspace of every monitor for wid; on
// the first hit it removes the client from its workspace and returns
// it along with the owning monitor's index.
func (m *Monitors) ExtractClient(wid workspace.WindowID) (workspace.Client, int, bool) {
	for i := range m.list {
		ws := m.list[i].Workspaces
		for j := 0; j < ws.Len(); j++ {
			for k, c := range ws.ClientsAt(j) {
				if c.ID != wid {
					continue
				}
				saved := ws.Current()
				ws.SetCurrent(j)
				removed, ok := ws.Remove(k)
				ws.SetCurrent(saved)
				if !ok {
					return workspace.Client{}, 0, false
				}
				return removed, i, true
			}
		}
	}
	return workspace.Client{}, 0, false
}

// InsertOnCurrent adds c to monitor index's current workspace.
func (m *Monitors) InsertOnCurrent(index int, c workspace.Client) {
	m.list[index].Workspaces.Insert(c)
}

// Circulate moves the client identified by focused from its current
// monitor to monitor (idx+1) mod N, appended to that monitor's current
// workspace. It returns false if focused is not found anywhere.
func (m *Monitors) Circulate(focused workspace.WindowID) bool {
	n := len(m.list)
	if n < 2 {
		return false
	}
	c, idx, ok := m.ExtractClient(focused)
	if !ok {
		return false
	}
	target := (idx + 1) % n
	m.InsertOnCurrent(target, c)
	return true
}
