// Command yaxctl is the one-shot companion to yaxwm: it turns its
// argument vector into control-protocol frames and sends them over
// the running engine's socket, one frame per flag.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/1broseidon/yaxwm/internal/ctlargs"
	"github.com/1broseidon/yaxwm/internal/runtimepath"
	"github.com/1broseidon/yaxwm/internal/wire"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: yaxctl <--flag [value]>...")
		os.Exit(2)
	}

	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "yaxctl: %v\n", err)
		os.Exit(1)
	}

	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "yaxctl: connect: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	p := ctlargs.New(os.Args[1:])
	for !p.Done() {
		seq, err := p.Next()
		if err != nil {
			fmt.Fprintf(os.Stderr, "yaxctl: %v\n", err)
			os.Exit(1)
		}
		if _, err := conn.Write(wire.Encode(seq)); err != nil {
			fmt.Fprintf(os.Stderr, "yaxctl: send: %v\n", err)
			os.Exit(1)
		}
	}
}
