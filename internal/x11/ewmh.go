package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// AdvertiseEWMH creates the supporting-check window EWMH requires,
// then declares which _NET_* atoms this engine honours.
func (c *Conn) AdvertiseEWMH() error {
	win, err := xproto.NewWindowId(c.XUtil.Conn())
	if err != nil {
		return fmt.Errorf("x11: allocate supporting window id: %w", err)
	}

	screen := c.XUtil.Screen()
	err = xproto.CreateWindowChecked(
		c.XUtil.Conn(),
		screen.RootDepth,
		win,
		c.Root,
		0, 0, 1, 1, 0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		0, nil,
	).Check()
	if err != nil {
		return fmt.Errorf("x11: create supporting window: %w", err)
	}

	if err := ewmh.SupportingWmCheckSet(c.XUtil, c.Root, win); err != nil {
		return fmt.Errorf("x11: set _NET_SUPPORTING_WM_CHECK on root: %w", err)
	}
	if err := ewmh.SupportingWmCheckSet(c.XUtil, win, win); err != nil {
		return fmt.Errorf("x11: set _NET_SUPPORTING_WM_CHECK on check window: %w", err)
	}
	if err := ewmh.WmNameSet(c.XUtil, win, "yaxwm"); err != nil {
		return fmt.Errorf("x11: set _NET_WM_NAME: %w", err)
	}

	supported := []string{
		"_NET_SUPPORTING_WM_CHECK",
		"_NET_WM_NAME",
		"_NET_CURRENT_DESKTOP",
		"_NET_NUMBER_OF_DESKTOPS",
		"_NET_WM_WINDOW_TYPE",
		"_NET_WM_WINDOW_TYPE_DOCK",
		"_NET_WM_WINDOW_TYPE_TOOLBAR",
		"_NET_WM_WINDOW_TYPE_MENU",
		"_NET_WM_WINDOW_TYPE_SPLASH",
		"_NET_WM_WINDOW_TYPE_UTILITY",
		"_NET_WM_WINDOW_TYPE_DIALOG",
		"_NET_WM_WINDOW_TYPE_NORMAL",
	}
	if err := ewmh.SupportedSet(c.XUtil, supported); err != nil {
		return fmt.Errorf("x11: set _NET_SUPPORTED: %w", err)
	}

	return nil
}

// SetNumberOfDesktops publishes _NET_NUMBER_OF_DESKTOPS.
func (c *Conn) SetNumberOfDesktops(n uint32) error {
	return ewmh.NumberOfDesktopsSet(c.XUtil, uint(n))
}

// SetCurrentDesktop publishes _NET_CURRENT_DESKTOP.
func (c *Conn) SetCurrentDesktop(n uint32) error {
	return ewmh.CurrentDesktopSet(c.XUtil, uint(n))
}

// WindowType returns the EWMH window-type atom names for win, or nil
// if the property is unset.
func (c *Conn) WindowType(win xproto.Window) []string {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, win)
	if err != nil {
		return nil
	}
	return types
}

// WindowTitle returns _NET_WM_NAME for win, or "" if unset. Used only
// for log context, never for WM decisions.
func (c *Conn) WindowTitle(win xproto.Window) string {
	name, err := ewmh.WmNameGet(c.XUtil, win)
	if err != nil {
		return ""
	}
	return name
}
