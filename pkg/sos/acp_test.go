package sos_test

import (
	"testing"

	"github.com/parley-dev/parley/pkg/domain"
	"github.com/parley-dev/parley/pkg/dsl"
	"github.com/parley-dev/parley/pkg/sos"
)

func handshakeGamma(a, b domain.Action) (domain.Action, bool) {
	if (a == "send" && b == "recv") || (a == "recv" && b == "send") {
		return "comm", true
	}
	return "", false
}

func TestACPCommunicationMerge(t *testing.T) {
	eng, err := sos.New(sos.ACP, sos.WithCommunication(handshakeGamma))
	if err != nil {
		t.Fatal(err)
	}
	term := dsl.Parallel(dsl.Seq("send"), dsl.Seq("recv"))
	ts := eng.Transitions(term)
	if len(ts) != 3 {
		t.Fatalf("got %d transitions, want interleavings plus communication: %v", len(ts), ts)
	}
	var comm *domain.Transition
	for _, tr := range ts {
		if tr.Action == "comm" {
			comm = &tr
		}
	}
	if comm == nil {
		t.Fatal("communication merge missing")
	}
	if comm.Target.String() != "(0 | 0)" {
		t.Errorf("communication target = %s, want both operands advanced", comm.Target)
	}
}

func TestACPUndefinedGammaInterleavesOnly(t *testing.T) {
	eng, err := sos.New(sos.ACP, sos.WithCommunication(handshakeGamma))
	if err != nil {
		t.Fatal(err)
	}
	term := dsl.Parallel(dsl.Seq("send"), dsl.Seq("send"))
	ts := eng.Transitions(term)
	// send|send is not in gamma's domain, so only the left merges remain.
	if len(ts) != 2 {
		t.Errorf("got %d transitions, want 2: %v", len(ts), ts)
	}
	for _, tr := range ts {
		if tr.Action != "send" {
			t.Errorf("unexpected action %s", tr.Action)
		}
	}
}
