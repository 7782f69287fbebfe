package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// Map maps win and subscribes to the events the dispatcher needs from
// every top-level client.
func (c *Conn) Map(win xproto.Window) error {
	if err := xproto.ChangeWindowAttributesChecked(c.XUtil.Conn(), win, xproto.CwEventMask, []uint32{
		uint32(xproto.EventMaskSubstructureNotify | xproto.EventMaskSubstructureRedirect |
			xproto.EventMaskEnterWindow | xproto.EventMaskFocusChange),
	}).Check(); err != nil {
		return fmt.Errorf("x11: select input on %d: %w", win, err)
	}
	return xproto.MapWindowChecked(c.XUtil.Conn(), win).Check()
}

// Unmap unmaps win.
func (c *Conn) Unmap(win xproto.Window) error {
	return xproto.UnmapWindowChecked(c.XUtil.Conn(), win).Check()
}

// MoveResize repositions and resizes win in one request.
func (c *Conn) MoveResize(win xproto.Window, x, y int, w, h int) error {
	xwindow.New(c.XUtil, win).MoveResize(x, y, w, h)
	return nil
}

// Move repositions win without changing its size.
func (c *Conn) Move(win xproto.Window, x, y int) error {
	xwindow.New(c.XUtil, win).Move(x, y)
	return nil
}

// Resize changes win's size without moving it.
func (c *Conn) Resize(win xproto.Window, w, h int) error {
	xwindow.New(c.XUtil, win).Resize(w, h)
	return nil
}

// Raise stacks win above its siblings.
func (c *Conn) Raise(win xproto.Window) error {
	return xproto.ConfigureWindowChecked(c.XUtil.Conn(), win, xproto.ConfigWindowStackMode,
		[]uint32{uint32(xproto.StackModeAbove)}).Check()
}

// Kill forcibly destroys the client connection owning win.
func (c *Conn) Kill(win xproto.Window) error {
	return xproto.KillClientChecked(c.XUtil.Conn(), uint32(win)).Check()
}

// SetBorderWidth sets win's border width in pixels.
func (c *Conn) SetBorderWidth(win xproto.Window, width uint16) error {
	return xproto.ConfigureWindowChecked(c.XUtil.Conn(), win, xproto.ConfigWindowBorderWidth,
		[]uint32{uint32(width)}).Check()
}

// SetBorderPixel sets win's border colour as a raw 0xRRGGBB pixel
// value.
func (c *Conn) SetBorderPixel(win xproto.Window, pixel uint32) error {
	return xproto.ChangeWindowAttributesChecked(c.XUtil.Conn(), win, xproto.CwBorderPixel,
		[]uint32{pixel}).Check()
}

// SetInputFocus focuses win, reverting to its parent if it
// disappears.
func (c *Conn) SetInputFocus(win xproto.Window) error {
	return xproto.SetInputFocusChecked(c.XUtil.Conn(), xproto.InputFocusParent, win, xproto.TimeCurrentTime).Check()
}

// GetGeometry returns win's current geometry relative to its parent.
func (c *Conn) GetGeometry(win xproto.Window) (geom xproto.GetGeometryReply, err error) {
	reply, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return xproto.GetGeometryReply{}, fmt.Errorf("x11: get geometry of %d: %w", win, err)
	}
	return *reply, nil
}

// SendDeleteWindow asks win to close gracefully via
// WM_PROTOCOLS/WM_DELETE_WINDOW, per ICCCM.
func (c *Conn) SendDeleteWindow(win xproto.Window) error {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   c.Atoms.WMProtocols,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{uint32(c.Atoms.WMDeleteWindow), 0, 0, 0, 0}),
	}
	return xproto.SendEventChecked(c.XUtil.Conn(), false, win, 0, string(ev.Bytes())).Check()
}

// ConfigureRaw applies an X ConfigureWindow request verbatim, used
// only for Dock clients which own their own geometry.
func (c *Conn) ConfigureRaw(win xproto.Window, mask uint16, values []uint32) error {
	return xproto.ConfigureWindowChecked(c.XUtil.Conn(), win, mask, values).Check()
}
