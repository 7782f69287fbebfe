// Package x11 owns the engine's single X connection: becoming the
// window manager, EWMH advertisement, RandR monitor discovery, and
// the blocking event pump that feeds the event queue (C8).
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// Conn wraps the xgbutil connection and the atoms the engine needs
// repeatedly.
type Conn struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
	Atoms Atoms
}

// Atoms caches the interned atoms this engine sends or reads on every
// event, rather than round-tripping InternAtom per use.
type Atoms struct {
	WMDeleteWindow xproto.Atom
	WMProtocols    xproto.Atom
}

// Connect opens the default X display and interns the atoms used by
// Close and the request dispatcher.
func Connect() (*Conn, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11: connect: %w", err)
	}

	protocols, err := xproto.InternAtom(xu.Conn(), false, uint16(len("WM_PROTOCOLS")), "WM_PROTOCOLS").Reply()
	if err != nil {
		return nil, fmt.Errorf("x11: intern WM_PROTOCOLS: %w", err)
	}
	del, err := xproto.InternAtom(xu.Conn(), false, uint16(len("WM_DELETE_WINDOW")), "WM_DELETE_WINDOW").Reply()
	if err != nil {
		return nil, fmt.Errorf("x11: intern WM_DELETE_WINDOW: %w", err)
	}

	return &Conn{
		XUtil: xu,
		Root:  xu.RootWin(),
		Atoms: Atoms{WMDeleteWindow: del.Atom, WMProtocols: protocols.Atom},
	}, nil
}

// Close disconnects from the X server. Background tasks reading the
// same connection are not joined; the process is expected to exit
// shortly after.
func (c *Conn) Close() {
	c.XUtil.Conn().Close()
}

// SelectRootInput subscribes to the substructure and focus events the
// dispatcher needs to see for every top-level window.
func (c *Conn) SelectRootInput() error {
	mask := uint32(xproto.EventMaskSubstructureNotify |
		xproto.EventMaskSubstructureRedirect |
		xproto.EventMaskEnterWindow |
		xproto.EventMaskFocusChange)

	return xproto.ChangeWindowAttributesChecked(c.XUtil.Conn(), c.Root, xproto.CwEventMask, []uint32{mask}).Check()
}

// GrabRootButtons passively grabs Mod4+Button1 and Mod4+Button3 on the
// root window, per spec: these are the only two buttons the move/resize
// FSM ever sees a press for.
func (c *Conn) GrabRootButtons() error {
	for _, button := range []byte{xproto.ButtonIndex1, xproto.ButtonIndex3} {
		mask := uint16(xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease | xproto.EventMaskButtonMotion)
		err := xproto.GrabButtonChecked(
			c.XUtil.Conn(),
			true,
			c.Root,
			mask,
			xproto.GrabModeAsync,
			xproto.GrabModeAsync,
			xproto.WindowNone,
			xproto.CursorNone,
			button,
			xproto.ModMask4,
		).Check()
		if err != nil {
			return fmt.Errorf("x11: grab button %d: %w", button, err)
		}
	}
	return nil
}

// QueryPointer returns the pointer position relative to the root
// window.
func (c *Conn) QueryPointer() (x, y int16, err error) {
	reply, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("x11: query pointer: %w", err)
	}
	return reply.RootX, reply.RootY, nil
}
