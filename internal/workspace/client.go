// Package workspace implements the per-monitor workspace model: ordered
// client lists, membership, focus shift, and workspace-count resize.
package workspace

// WindowID is an opaque X11 window identifier. The workspace package
// never dereferences it; identity is all it needs.
type WindowID uint32

// State is a client's layout classification.
type State int

const (
	Tiled State = iota
	Float
	Dock
)

func (s State) String() string {
	switch s {
	case Tiled:
		return "tiled"
	case Float:
		return "float"
	case Dock:
		return "dock"
	default:
		return "unknown"
	}
}

// EWMH window-type atom names, as returned by xgbutil/ewmh.WmWindowTypeGet.
const (
	TypeDock     = "_NET_WM_WINDOW_TYPE_DOCK"
	TypeToolbar  = "_NET_WM_WINDOW_TYPE_TOOLBAR"
	TypeMenu     = "_NET_WM_WINDOW_TYPE_MENU"
	TypeSplash   = "_NET_WM_WINDOW_TYPE_SPLASH"
	TypeUtility  = "_NET_WM_WINDOW_TYPE_UTILITY"
	TypeDialog   = "_NET_WM_WINDOW_TYPE_DIALOG"
	TypeNormal   = "_NET_WM_WINDOW_TYPE_NORMAL"
)

// ClassifyWindowType derives a client's initial State from its EWMH
// window-type set: Dock/Toolbar/Menu -> Dock; else
// Splash/Utility/Dialog -> Float; else Tiled.
func ClassifyWindowType(types []string) State {
	for _, t := range types {
		if t == TypeDock || t == TypeToolbar || t == TypeMenu {
			return Dock
		}
	}
	for _, t := range types {
		if t == TypeSplash || t == TypeUtility || t == TypeDialog {
			return Float
		}
	}
	return Tiled
}

// Client represents one managed top-level window. The workspace
// package does not own the underlying X resource; it only tracks the
// id and layout state while the window is known-live.
type Client struct {
	ID    WindowID
	State State
}
