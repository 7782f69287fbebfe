package tiling

import (
	"testing"

	"github.com/1broseidon/yaxwm/internal/geometry"
	"github.com/1broseidon/yaxwm/internal/workspace"
)

// TestTileMasterStackScenario1 matches spec.md scenario 1: three tiled
// clients on an 800x600 area with no gaps produce a master column on
// the left half and a vertically stacked pair on the right half.
func TestTileMasterStackScenario1(t *testing.T) {
	ws := workspace.NewWorkspaceSet(1)
	ws.Insert(workspace.Client{ID: 1, State: workspace.Tiled})
	ws.Insert(workspace.Client{ID: 2, State: workspace.Tiled})
	ws.Insert(workspace.Client{ID: 3, State: workspace.Tiled})

	plan := Tile(ws, geometry.New(0, 0, 800, 600), 0)

	if len(plan.Placements) != 3 {
		t.Fatalf("got %d placements, want 3", len(plan.Placements))
	}

	want := []geometry.Area{
		geometry.New(0, 0, 400, 600),
		geometry.New(400, 0, 400, 300),
		geometry.New(400, 300, 400, 300),
	}
	for i, p := range plan.Placements {
		if p.Area != want[i] {
			t.Errorf("placement %d = %+v, want %+v", i, p.Area, want[i])
		}
		if p.ID != workspace.WindowID(i+1) {
			t.Errorf("placement %d id = %d, want %d", i, p.ID, i+1)
		}
	}
}

// TestTileSingleClientFillsArea matches spec.md scenario 2: one tiled
// client occupies the entire area with no split performed.
func TestTileSingleClientFillsArea(t *testing.T) {
	ws := workspace.NewWorkspaceSet(1)
	ws.Insert(workspace.Client{ID: 1, State: workspace.Tiled})

	plan := Tile(ws, geometry.New(0, 0, 800, 600), 0)

	if len(plan.Placements) != 1 {
		t.Fatalf("got %d placements, want 1", len(plan.Placements))
	}
	if plan.Placements[0].Area != geometry.New(0, 0, 800, 600) {
		t.Fatalf("placement = %+v, want full area", plan.Placements[0].Area)
	}
}

// TestTileAppliesGapsOnEverySide matches spec.md scenario 4: a 10px
// window gap insets every tiled slot on all four sides.
func TestTileAppliesGapsOnEverySide(t *testing.T) {
	ws := workspace.NewWorkspaceSet(1)
	ws.Insert(workspace.Client{ID: 1, State: workspace.Tiled})

	plan := Tile(ws, geometry.New(0, 0, 800, 600), 10)

	want := geometry.New(10, 10, 780, 580)
	if plan.Placements[0].Area != want {
		t.Fatalf("placement = %+v, want %+v", plan.Placements[0].Area, want)
	}
}

func TestTileSkipsFloatAndDockClients(t *testing.T) {
	ws := workspace.NewWorkspaceSet(1)
	ws.Insert(workspace.Client{ID: 1, State: workspace.Tiled})
	ws.Insert(workspace.Client{ID: 2, State: workspace.Float})
	ws.Insert(workspace.Client{ID: 3, State: workspace.Dock})

	plan := Tile(ws, geometry.New(0, 0, 800, 600), 0)

	if len(plan.Placements) != 1 || plan.Placements[0].ID != 1 {
		t.Fatalf("placements = %+v, want only client 1 tiled", plan.Placements)
	}
	if plan.Placements[0].Area != geometry.New(0, 0, 800, 600) {
		t.Fatalf("sole tiled client should fill the area, got %+v", plan.Placements[0].Area)
	}

	if len(plan.MapAll) != 3 {
		t.Fatalf("MapAll = %v, want all 3 clients mapped", plan.MapAll)
	}
}

func TestTileUnmapsTiledAndFloatOnOtherWorkspacesButNotDock(t *testing.T) {
	ws := workspace.NewWorkspaceSet(2)
	ws.SetCurrent(0)
	ws.Insert(workspace.Client{ID: 10, State: workspace.Dock})
	ws.Insert(workspace.Client{ID: 1, State: workspace.Tiled})
	ws.Insert(workspace.Client{ID: 2, State: workspace.Float})
	ws.SetCurrent(1)

	plan := Tile(ws, geometry.New(0, 0, 800, 600), 0)

	unmapped := map[workspace.WindowID]bool{}
	for _, id := range plan.Unmap {
		unmapped[id] = true
	}
	if !unmapped[1] || !unmapped[2] {
		t.Fatalf("expected tiled and float clients on workspace 0 unmapped, got %v", plan.Unmap)
	}
	if unmapped[10] {
		t.Fatal("dock client must not be unmapped")
	}
}

func TestTileEmptyWorkspaceProducesEmptyPlan(t *testing.T) {
	ws := workspace.NewWorkspaceSet(1)
	plan := Tile(ws, geometry.New(0, 0, 800, 600), 0)
	if len(plan.Placements) != 0 || len(plan.MapAll) != 0 {
		t.Fatalf("expected empty plan, got %+v", plan)
	}
}
