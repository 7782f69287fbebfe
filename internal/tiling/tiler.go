// Package tiling implements the recursive binary-space layout
// algorithm: for each Tiled client in insertion order, split the
// residual area and assign a slot, shrunk by the configured gap.
package tiling

import (
	"github.com/1broseidon/yaxwm/internal/geometry"
	"github.com/1broseidon/yaxwm/internal/workspace"
)

// Placement is the computed post-gap geometry for one Tiled client.
type Placement struct {
	ID   workspace.WindowID
	Area geometry.Area
}

// Plan is the result of tiling one workspace: which clients to
// position (Tiled, with geometry), which clients to map as-is (every
// client on the current workspace, regardless of state, so Dock and
// Float windows stay visible), and which clients on non-current
// workspaces must be unmapped (Tiled and Float only; Dock is left
// alone).
type Plan struct {
	Placements []Placement
	MapAll     []workspace.WindowID
	Unmap      []workspace.WindowID
}

// Tile computes a Plan for ws's current workspace within area, with
// each Tiled slot shrunk by gaps on every side. It does not perform any
// X operations itself; the caller applies the plan.
func Tile(ws *workspace.WorkspaceSet, area geometry.Area, gaps uint16) Plan {
	var plan Plan

	current := ws.CurrentClients()
	tiledCountAfter := make([]int, len(current)+1)
	for i := len(current) - 1; i >= 0; i-- {
		tiledCountAfter[i] = tiledCountAfter[i+1]
		if current[i].State == workspace.Tiled {
			tiledCountAfter[i]++
		}
	}

	remaining := area
	for i, c := range current {
		plan.MapAll = append(plan.MapAll, c.ID)

		if c.State != workspace.Tiled {
			continue
		}

		remainingTiledAfter := tiledCountAfter[i+1]

		var slot geometry.Area
		if remainingTiledAfter > 0 {
			slot = remaining.Split()
		} else {
			slot = remaining
		}

		plan.Placements = append(plan.Placements, Placement{
			ID:   c.ID,
			Area: shrink(slot, gaps),
		})
	}

	for i := 0; i < ws.Len(); i++ {
		if i == ws.Current() {
			continue
		}
		for _, c := range ws.ClientsAt(i) {
			if c.State == workspace.Tiled || c.State == workspace.Float {
				plan.Unmap = append(plan.Unmap, c.ID)
			}
		}
	}

	return plan
}

// shrink insets a slot by gaps on every side, saturating at zero.
func shrink(a geometry.Area, gaps uint16) geometry.Area {
	return geometry.Area{
		X: a.X + gaps,
		Y: a.Y + gaps,
		W: satSub(a.W, 2*gaps),
		H: satSub(a.H, 2*gaps),
	}
}

func satSub(a, b uint16) uint16 {
	if b > a {
		return 0
	}
	return a - b
}
