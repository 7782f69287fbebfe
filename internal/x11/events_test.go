package x11

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestConfigureValuesOrdersByMaskBits(t *testing.T) {
	e := xproto.ConfigureRequestEvent{
		ValueMask:   xproto.ConfigWindowWidth | xproto.ConfigWindowHeight | xproto.ConfigWindowStackMode,
		Width:       640,
		Height:      480,
		StackMode:   byte(xproto.StackModeAbove),
		X:           99, // masked off, must not appear
		BorderWidth: 2,  // masked off, must not appear
	}

	got := configureValues(e)
	want := []uint32{640, 480, uint32(xproto.StackModeAbove)}

	if len(got) != len(want) {
		t.Fatalf("configureValues() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("configureValues() = %v, want %v", got, want)
		}
	}
}

func TestConfigureValuesEmptyMaskYieldsEmptySlice(t *testing.T) {
	got := configureValues(xproto.ConfigureRequestEvent{})
	if len(got) != 0 {
		t.Fatalf("configureValues() = %v, want empty", got)
	}
}

func TestDecodeMapsKnownEventTypes(t *testing.T) {
	cases := []struct {
		name string
		in   xgbEvent
		want any
	}{
		{"map request", xproto.MapRequestEvent{Window: 7}, MapRequest{Window: 7}},
		{"unmap notify", xproto.UnmapNotifyEvent{Window: 8}, UnmapNotify{Window: 8}},
		{"enter notify", xproto.EnterNotifyEvent{Event: 9}, EnterNotify{Window: 9}},
		{"focus in", xproto.FocusInEvent{Event: 10}, FocusIn{Window: 10}},
		{"button release", xproto.ButtonReleaseEvent{}, ButtonRelease{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := decode(tc.in)
			if got != tc.want {
				t.Fatalf("decode(%#v) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDecodeButtonPressCarriesCoordinates(t *testing.T) {
	got := decode(xproto.ButtonPressEvent{Child: 42, Detail: 1, RootX: 5, RootY: 6})
	want := ButtonPress{Subwindow: 42, Button: 1, RootX: 5, RootY: 6}
	if got != want {
		t.Fatalf("decode() = %#v, want %#v", got, want)
	}
}

func TestDecodeUnrecognizedEventYieldsNil(t *testing.T) {
	if got := decode(xproto.KeyPressEvent{}); got != nil {
		t.Fatalf("decode(KeyPressEvent{}) = %#v, want nil", got)
	}
}
