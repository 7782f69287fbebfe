package monitor

import (
	"testing"

	"github.com/1broseidon/yaxwm/internal/geometry"
	"github.com/1broseidon/yaxwm/internal/workspace"
)

func twoMonitors() *Monitors {
	return New([]Monitor{
		{Area: geometry.New(0, 0, 800, 600), Workspaces: workspace.NewWorkspaceSet(1)},
		{Area: geometry.New(800, 0, 800, 600), Workspaces: workspace.NewWorkspaceSet(1)},
	})
}

func TestFocusedFindsContainingMonitor(t *testing.T) {
	m := twoMonitors()

	var got = -1
	m.Focused(900, 10, func(i int, mon *Monitor) { got = i })
	if got != 1 {
		t.Fatalf("Focused(900,10) picked monitor %d, want 1", got)
	}

	got = -1
	m.Focused(5000, 5000, func(i int, mon *Monitor) { got = i })
	if got != -1 {
		t.Fatalf("Focused out of bounds should not call visit, got %d", got)
	}
}

func TestIsTiledTrueWhenAbsentOrNotFloating(t *testing.T) {
	m := twoMonitors()
	m.At(0).Workspaces.Insert(workspace.Client{ID: 1, State: workspace.Tiled})
	m.At(1).Workspaces.Insert(workspace.Client{ID: 2, State: workspace.Float})

	if !m.IsTiled(1) {
		t.Error("client 1 is tiled, IsTiled should be true")
	}
	if m.IsTiled(2) {
		t.Error("client 2 is floating, IsTiled should be false")
	}
	if !m.IsTiled(999) {
		t.Error("unknown client should report IsTiled true")
	}
}

func TestExtractClientFindsAcrossMonitors(t *testing.T) {
	m := twoMonitors()
	m.At(1).Workspaces.Insert(workspace.Client{ID: 7, State: workspace.Tiled})

	c, idx, ok := m.ExtractClient(7)
	if !ok || idx != 1 || c.ID != 7 {
		t.Fatalf("ExtractClient(7) = %+v, %d, %v; want idx 1", c, idx, ok)
	}

	if len(m.At(1).Workspaces.CurrentClients()) != 0 {
		t.Fatal("expected client removed from source monitor's workspace")
	}

	_, _, ok = m.ExtractClient(7)
	if ok {
		t.Fatal("expected second extract to fail, client already removed")
	}
}

func TestCirculateMovesToNextMonitor(t *testing.T) {
	m := twoMonitors()
	m.At(0).Workspaces.Insert(workspace.Client{ID: 1, State: workspace.Tiled})

	if !m.Circulate(1) {
		t.Fatal("expected Circulate to succeed")
	}
	if len(m.At(0).Workspaces.CurrentClients()) != 0 {
		t.Fatal("client should have left monitor 0")
	}
	if len(m.At(1).Workspaces.CurrentClients()) != 1 {
		t.Fatal("client should have arrived on monitor 1")
	}

	// Circulating the last monitor wraps back to monitor 0.
	if !m.Circulate(1) {
		t.Fatal("expected second Circulate to succeed")
	}
	if len(m.At(0).Workspaces.CurrentClients()) != 1 {
		t.Fatal("client should have wrapped back to monitor 0")
	}
}

func TestCirculateSingleMonitorIsNoOp(t *testing.T) {
	m := New([]Monitor{{Area: geometry.New(0, 0, 800, 600), Workspaces: workspace.NewWorkspaceSet(1)}})
	m.At(0).Workspaces.Insert(workspace.Client{ID: 1, State: workspace.Tiled})

	if m.Circulate(1) {
		t.Fatal("Circulate with a single monitor should report false")
	}
}

func TestCirculateUnknownClientReturnsFalse(t *testing.T) {
	m := twoMonitors()
	if m.Circulate(42) {
		t.Fatal("expected Circulate of unknown client to return false")
	}
}
