package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"

	"github.com/1broseidon/yaxwm/internal/geometry"
)

// LoadMonitorAreas enumerates active CRTCs via RandR and returns one
// geometry.Area per active monitor, in CRTC order. The caller (engine
// setup) pairs each area with a fresh workspace set.
func (c *Conn) LoadMonitorAreas() ([]geometry.Area, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("x11: randr init: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("x11: get screen resources: %w", err)
	}

	var areas []geometry.Area
	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}
		areas = append(areas, geometry.New(uint16(info.X), uint16(info.Y), uint16(info.Width), uint16(info.Height)))
	}

	if len(areas) == 0 {
		return nil, fmt.Errorf("x11: no active monitors found")
	}
	return areas, nil
}
