// Package ctlargs parses the companion CLI's argument vector into
// control-protocol sequences: one flag per request, optionally
// followed by a decimal or hex value, translated one-for-one into a
// wire.Sequence ready to send.
package ctlargs

import (
	"fmt"
	"strconv"

	"github.com/1broseidon/yaxwm/internal/wire"
)

// Kind says whether a flag takes no value, a decimal value, or a
// hexadecimal value.
type Kind int

const (
	Flag Kind = iota
	Decimal
	Hex
)

// rule pairs a recognised flag with how to parse the value that
// follows it (if any) and the wire tag it produces.
type rule struct {
	kind Kind
	tag  wire.Tag
}

// table is the full set of recognised flags, grounded in the
// companion CLI's original rule table: workspace number, padding,
// gaps, border width, move/resize and workspaces-per-monitor take
// decimal values, border colours take hex, everything else is a bare
// flag.
var table = map[string]rule{
	"--kill":      {Flag, wire.Kill},
	"--close":     {Flag, wire.Close},
	"--workspace": {Decimal, wire.Workspace},

	"--padding-top":    {Decimal, wire.PaddingTop},
	"--padding-bottom": {Decimal, wire.PaddingBottom},
	"--padding-left":   {Decimal, wire.PaddingLeft},
	"--padding-right":  {Decimal, wire.PaddingRight},

	"--window-gaps": {Decimal, wire.WindowGaps},

	"--focused-border": {Hex, wire.FocusedBorder},
	"--normal-border":  {Hex, wire.NormalBorder},
	"--border-width":   {Decimal, wire.BorderWidth},

	"--focus-up":     {Flag, wire.FocusUp},
	"--focus-down":   {Flag, wire.FocusDown},
	"--focus-master": {Flag, wire.FocusMaster},

	"--float-toggle": {Flag, wire.FloatToggle},
	"--float-left":   {Decimal, wire.FloatLeft},
	"--float-right":  {Decimal, wire.FloatRight},
	"--float-up":     {Decimal, wire.FloatUp},
	"--float-down":   {Decimal, wire.FloatDown},

	"--resize-left":  {Decimal, wire.ResizeLeft},
	"--resize-right": {Decimal, wire.ResizeRight},
	"--resize-up":    {Decimal, wire.ResizeUp},
	"--resize-down":  {Decimal, wire.ResizeDown},

	"--enable-mouse":  {Flag, wire.EnableMouse},
	"--disable-mouse": {Flag, wire.DisableMouse},

	"--workspaces-per-monitor": {Decimal, wire.WorkspacePerMonitor},
	"--monitor-circulate":      {Flag, wire.MonitorCirculate},
	"--quit":                   {Flag, wire.Quit},
}

// Parser walks an argument vector (excluding argv[0]) one flag at a
// time.
type Parser struct {
	args []string
	pos  int
}

// New builds a Parser over args, which must not include the program
// name.
func New(args []string) *Parser {
	return &Parser{args: args}
}

// Done reports whether every argument has been consumed.
func (p *Parser) Done() bool {
	return p.pos >= len(p.args)
}

// Next consumes one flag (and its value, if the flag takes one) and
// returns the wire.Sequence it produces. It fails fast: an unknown
// flag or a missing/malformed value is returned as an error without
// consuming further arguments.
func (p *Parser) Next() (wire.Sequence, error) {
	if p.Done() {
		return wire.Sequence{}, fmt.Errorf("ctlargs: no more arguments")
	}
	arg := p.args[p.pos]
	p.pos++

	r, ok := table[arg]
	if !ok {
		return wire.Sequence{}, fmt.Errorf("ctlargs: unknown argument: %s", arg)
	}

	if r.kind == Flag {
		return wire.Sequence{Tag: r.tag, Value: 0}, nil
	}

	if p.Done() {
		return wire.Sequence{}, fmt.Errorf("ctlargs: %s expects a value", arg)
	}
	raw := p.args[p.pos]
	p.pos++

	var value uint64
	var err error
	if r.kind == Hex {
		value, err = strconv.ParseUint(raw, 16, 32)
	} else {
		value, err = strconv.ParseUint(raw, 10, 32)
	}
	if err != nil {
		return wire.Sequence{}, fmt.Errorf("ctlargs: %s: invalid value %q: %w", arg, raw, err)
	}

	return wire.Sequence{Tag: r.tag, Value: uint32(value)}, nil
}
