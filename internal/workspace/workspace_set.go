package workspace

import "fmt"

// WorkspaceSet is a sequence of workspaces (each an ordered client
// list) plus a current index. Insertion order within a workspace is
// preserved and significant: it drives tiling order and focus-cycling
// order.
type WorkspaceSet struct {
	workspaces [][]Client
	current    int
}

// NewWorkspaceSet returns a WorkspaceSet with n empty workspaces and
// current = 0. n must be > 0.
func NewWorkspaceSet(n int) *WorkspaceSet {
	if n <= 0 {
		n = 1
	}
	return &WorkspaceSet{workspaces: make([][]Client, n)}
}

// Len returns the number of workspaces.
func (ws *WorkspaceSet) Len() int {
	return len(ws.workspaces)
}

// Current returns the index of the current workspace.
func (ws *WorkspaceSet) Current() int {
	return ws.current
}

// SetCurrent moves to workspace i if it is in range, returning whether
// the move happened.
func (ws *WorkspaceSet) SetCurrent(i int) bool {
	if i < 0 || i >= len(ws.workspaces) {
		return false
	}
	ws.current = i
	return true
}

// CurrentClients returns the client list of the current workspace, in
// insertion order. The returned slice is owned by the WorkspaceSet and
// must not be mutated by the caller.
func (ws *WorkspaceSet) CurrentClients() []Client {
	return ws.workspaces[ws.current]
}

// ClientsAt returns the client list of workspace i.
func (ws *WorkspaceSet) ClientsAt(i int) []Client {
	return ws.workspaces[i]
}

// Insert appends client to the current workspace. The caller is
// responsible for checking Find first if duplicate suppression is
// desired (the X-event handler does this on MapRequest); Insert itself
// does not reject duplicates.
func (ws *WorkspaceSet) Insert(c Client) {
	ws.workspaces[ws.current] = append(ws.workspaces[ws.current], c)
}

// Remove deletes the client at index from the current workspace and
// returns it.
func (ws *WorkspaceSet) Remove(index int) (Client, bool) {
	cur := ws.workspaces[ws.current]
	if index < 0 || index >= len(cur) {
		return Client{}, false
	}
	removed := cur[index]
	ws.workspaces[ws.current] = append(cur[:index], cur[index+1:]...)
	return removed, true
}

// Find returns the position of wid in the current workspace.
func (ws *WorkspaceSet) Find(wid WindowID) (int, bool) {
	for i, c := range ws.workspaces[ws.current] {
		if c.ID == wid {
			return i, true
		}
	}
	return 0, false
}

// IsFloat reports whether wid is a known client of the current
// workspace in Float state.
func (ws *WorkspaceSet) IsFloat(wid WindowID) bool {
	i, ok := ws.Find(wid)
	if !ok {
		return false
	}
	return ws.workspaces[ws.current][i].State == Float
}

// ChangeFocus locates wid in the current workspace; if found, it
// computes the new index via f(pos) and returns the client at that
// index if it's in range. Callers supply f for "up" (max(pos,1)-1),
// "down" (pos+1), "master" (always 0, via func(int) int { return 0 }).
// The second return value is false if wid isn't present or the
// computed index is out of range, in which case the caller must treat
// this as a no-op.
func (ws *WorkspaceSet) ChangeFocus(wid WindowID, f func(pos int) int) (Client, bool) {
	pos, ok := ws.Find(wid)
	if !ok {
		return Client{}, false
	}
	cur := ws.workspaces[ws.current]
	idx := f(pos)
	if idx < 0 || idx >= len(cur) {
		return Client{}, false
	}
	return cur[idx], true
}

// SetState updates the state of the client at wid in the current
// workspace, if present.
func (ws *WorkspaceSet) SetState(wid WindowID, s State) bool {
	i, ok := ws.Find(wid)
	if !ok {
		return false
	}
	ws.workspaces[ws.current][i].State = s
	return true
}

// MapClients applies visit to every client in every workspace
// (including non-current ones). Used for border repaint, which must
// touch clients the tiler currently keeps unmapped.
func (ws *WorkspaceSet) MapClients(visit func(*Client)) {
	for i := range ws.workspaces {
		for j := range ws.workspaces[i] {
			visit(&ws.workspaces[i][j])
		}
	}
}

// Resize changes the workspace count to n. n = 0 is forbidden. If
// n >= current length, empty workspaces are appended. If
// 0 < n < length, every client on workspaces at index >= n-1 is moved
// (preserving relative order, earlier-indexed workspaces first) into
// workspace n-1, then the set is truncated to length n. current is
// clamped into [0, n).
func (ws *WorkspaceSet) Resize(n int) error {
	if n == 0 {
		return fmt.Errorf("workspace: resize to 0 workspaces is forbidden")
	}

	switch {
	case n >= len(ws.workspaces):
		for len(ws.workspaces) < n {
			ws.workspaces = append(ws.workspaces, nil)
		}
	default:
		var overflow []Client
		for i := n - 1; i < len(ws.workspaces); i++ {
			overflow = append(overflow, ws.workspaces[i]...)
		}
		ws.workspaces = ws.workspaces[:n]
		ws.workspaces[n-1] = overflow
	}

	if ws.current >= len(ws.workspaces) {
		ws.current = len(ws.workspaces) - 1
	}
	if ws.current < 0 {
		ws.current = 0
	}

	return nil
}
