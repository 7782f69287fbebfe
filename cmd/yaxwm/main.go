// Command yaxwm is the tiling window manager engine: connect to the X
// server, become the window manager, and run until asked to quit over
// the control protocol.
package main

import (
	"fmt"
	"os"

	"github.com/1broseidon/yaxwm/internal/engine"
	"github.com/1broseidon/yaxwm/internal/logging"
	"github.com/1broseidon/yaxwm/internal/runtimepath"
)

func main() {
	stderr := logging.StderrSink()

	fileSink := stderr
	if logPath, err := runtimepath.LogPath(); err == nil {
		if sink, ferr := logging.NewFileSink(logPath); ferr == nil {
			fileSink = sink
		}
	}
	logging.Init(stderr, fileSink)

	eng, err := engine.New(stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "yaxwm: %v\n", err)
		os.Exit(1)
	}
	defer eng.Close()

	if err := eng.Setup(); err != nil {
		fmt.Fprintf(os.Stderr, "yaxwm: %v\n", err)
		os.Exit(1)
	}

	logging.Info("yaxwm is running")
	eng.Run()
}
