package x11

import (
	"log/slog"

	"github.com/1broseidon/yaxwm/internal/eventqueue"
)

// xgbEvent is the interface xgb.Event satisfies; declared locally so
// events.go doesn't need to import xgb directly alongside xproto.
type xgbEvent interface {
	Bytes() []byte
	String() string
}

// Pump drives a blocking read loop on the X connection and pushes
// every decoded event onto q. It runs as a dedicated background task
// (C8); its only sink is the queue. A read error ends the pump but
// never the engine — the connection is assumed to already be in a
// fatal state by the time WaitForEvent fails, so the engine's own
// next X call will surface the same failure.
func (c *Conn) Pump(q *eventqueue.Queue, log *slog.Logger) {
	for {
		ev, xerr := c.XUtil.Conn().WaitForEvent()
		if ev == nil && xerr == nil {
			log.Error("x event pump stopped", "err", "connection closed")
			return
		}
		if xerr != nil {
			log.Error("x protocol error", "err", xerr)
			continue
		}

		decoded := decode(ev)
		if decoded == nil {
			continue
		}
		q.Push(decoded)
	}
}
