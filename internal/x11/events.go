package x11

import "github.com/BurntSushi/xgb/xproto"

// MapRequest mirrors xproto.MapRequestEvent: a client asked to be
// mapped.
type MapRequest struct {
	Window xproto.Window
}

// UnmapNotify mirrors xproto.UnmapNotifyEvent.
type UnmapNotify struct {
	Window xproto.Window
}

// EnterNotify mirrors xproto.EnterNotifyEvent: the pointer entered a
// window.
type EnterNotify struct {
	Window xproto.Window
}

// FocusIn mirrors xproto.FocusInEvent.
type FocusIn struct {
	Window xproto.Window
}

// ButtonPress mirrors xproto.ButtonPressEvent.
type ButtonPress struct {
	Subwindow xproto.Window
	Button    byte
	RootX     int16
	RootY     int16
}

// ButtonRelease mirrors xproto.ButtonReleaseEvent.
type ButtonRelease struct{}

// MotionNotify mirrors xproto.MotionNotifyEvent.
type MotionNotify struct {
	RootX int16
	RootY int16
}

// ConfigureRequest mirrors xproto.ConfigureRequestEvent.
type ConfigureRequest struct {
	Window    xproto.Window
	ValueMask uint16
	Values    []uint32
}

// decode converts one raw xgb event into the package's own event
// types, or nil if the event isn't one the dispatcher cares about.
func decode(ev xgbEvent) any {
	switch e := ev.(type) {
	case xproto.MapRequestEvent:
		return MapRequest{Window: e.Window}
	case xproto.UnmapNotifyEvent:
		return UnmapNotify{Window: e.Window}
	case xproto.EnterNotifyEvent:
		return EnterNotify{Window: e.Event}
	case xproto.FocusInEvent:
		return FocusIn{Window: e.Event}
	case xproto.ButtonPressEvent:
		return ButtonPress{Subwindow: e.Child, Button: byte(e.Detail), RootX: e.RootX, RootY: e.RootY}
	case xproto.ButtonReleaseEvent:
		return ButtonRelease{}
	case xproto.MotionNotifyEvent:
		return MotionNotify{RootX: e.RootX, RootY: e.RootY}
	case xproto.ConfigureRequestEvent:
		return ConfigureRequest{
			Window:    e.Window,
			ValueMask: e.ValueMask,
			Values:    configureValues(e),
		}
	default:
		return nil
	}
}

// configureValues re-derives the value list ConfigureWindow expects
// from a ConfigureRequestEvent's individually-named fields, in the
// wire order xproto.ConfigWindow* mask bits define.
func configureValues(e xproto.ConfigureRequestEvent) []uint32 {
	var values []uint32
	if e.ValueMask&xproto.ConfigWindowX != 0 {
		values = append(values, uint32(int32(e.X)))
	}
	if e.ValueMask&xproto.ConfigWindowY != 0 {
		values = append(values, uint32(int32(e.Y)))
	}
	if e.ValueMask&xproto.ConfigWindowWidth != 0 {
		values = append(values, uint32(e.Width))
	}
	if e.ValueMask&xproto.ConfigWindowHeight != 0 {
		values = append(values, uint32(e.Height))
	}
	if e.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
		values = append(values, uint32(e.BorderWidth))
	}
	if e.ValueMask&xproto.ConfigWindowSibling != 0 {
		values = append(values, uint32(e.Sibling))
	}
	if e.ValueMask&xproto.ConfigWindowStackMode != 0 {
		values = append(values, uint32(e.StackMode))
	}
	return values
}
