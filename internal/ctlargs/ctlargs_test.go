package ctlargs

import (
	"testing"

	"github.com/1broseidon/yaxwm/internal/wire"
)

func TestNextParsesFlagOnly(t *testing.T) {
	p := New([]string{"--kill"})
	seq, err := p.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if seq.Tag != wire.Kill || seq.Value != 0 {
		t.Fatalf("got %+v, want Kill/0", seq)
	}
	if !p.Done() {
		t.Fatal("expected Done after consuming the only argument")
	}
}

func TestNextParsesDecimalValue(t *testing.T) {
	p := New([]string{"--workspace", "3"})
	seq, err := p.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if seq.Tag != wire.Workspace || seq.Value != 3 {
		t.Fatalf("got %+v, want Workspace/3", seq)
	}
}

func TestNextParsesHexValue(t *testing.T) {
	p := New([]string{"--focused-border", "ff00ff"})
	seq, err := p.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if seq.Tag != wire.FocusedBorder || seq.Value != 0xff00ff {
		t.Fatalf("got %+v, want FocusedBorder/0xff00ff", seq)
	}
}

func TestNextChainsMultipleFlags(t *testing.T) {
	p := New([]string{"--kill", "--workspace", "1", "--quit"})
	var got []wire.Tag
	for !p.Done() {
		seq, err := p.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		got = append(got, seq.Tag)
	}
	want := []wire.Tag{wire.Kill, wire.Workspace, wire.Quit}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestNextUnknownFlagErrors(t *testing.T) {
	p := New([]string{"--bogus"})
	if _, err := p.Next(); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestNextMissingValueErrors(t *testing.T) {
	p := New([]string{"--workspace"})
	if _, err := p.Next(); err == nil {
		t.Fatal("expected error for missing value")
	}
}

func TestNextMalformedValueErrors(t *testing.T) {
	p := New([]string{"--workspace", "abc"})
	if _, err := p.Next(); err == nil {
		t.Fatal("expected error for malformed decimal value")
	}
}

func TestNextOnEmptyErrors(t *testing.T) {
	p := New(nil)
	if !p.Done() {
		t.Fatal("expected Done on empty argument list")
	}
	if _, err := p.Next(); err == nil {
		t.Fatal("expected error calling Next with no arguments left")
	}
}
