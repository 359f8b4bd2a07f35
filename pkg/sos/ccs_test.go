package sos_test

import (
	"testing"

	"github.com/parley-dev/parley/pkg/domain"
	"github.com/parley-dev/parley/pkg/dsl"
	"github.com/parley-dev/parley/pkg/sos"
)

func ccsEngine(t *testing.T) *sos.Engine {
	t.Helper()
	eng, err := sos.New(sos.CCS)
	if err != nil {
		t.Fatal(err)
	}
	return eng
}

func TestCCSParallelSynchronizes(t *testing.T) {
	eng := ccsEngine(t)
	term := dsl.Parallel(dsl.Seq("a"), dsl.Seq("a'"))
	ts := eng.Transitions(term)

	// Two interleavings plus the synchronization.
	if len(ts) != 3 {
		t.Fatalf("got %d transitions, want 3: %v", len(ts), ts)
	}
	byAction := map[domain.Action]domain.Transition{}
	for _, tr := range ts {
		byAction[tr.Action] = tr
	}
	sync, ok := byAction[domain.Tau]
	if !ok {
		t.Fatal("no silent synchronization transition")
	}
	if sync.Target.String() != "(0 | 0)" {
		t.Errorf("synchronization target = %s", sync.Target)
	}
	if _, ok := byAction["a"]; !ok {
		t.Error("interleaved a move missing")
	}
	if _, ok := byAction["a'"]; !ok {
		t.Error("interleaved a' move missing")
	}
}

func TestCCSParallelInterleavesWithoutComplement(t *testing.T) {
	eng := ccsEngine(t)
	term := dsl.Parallel(dsl.Seq("a"), dsl.Seq("b"))
	for _, tr := range eng.Transitions(term) {
		if tr.Action.Silent() {
			t.Errorf("unexpected synchronization: %s", tr)
		}
	}
}

func TestCCSSilentMovesNeverSynchronize(t *testing.T) {
	eng := ccsEngine(t)
	term := dsl.Parallel(dsl.Tau(dsl.Stop()), dsl.Tau(dsl.Stop()))
	ts := eng.Transitions(term)
	// Only the two interleaved silent steps; tau has no complement.
	if len(ts) != 2 {
		t.Errorf("got %d transitions, want 2: %v", len(ts), ts)
	}
}

func TestCCSNestedParallelDerivesRecursively(t *testing.T) {
	eng := ccsEngine(t)
	term := dsl.Parallel(dsl.Parallel(dsl.Seq("a"), dsl.Seq("a'")), dsl.Seq("b"))
	var silent int
	for _, tr := range eng.Transitions(term) {
		if tr.Action.Silent() {
			silent++
		}
	}
	if silent != 1 {
		t.Errorf("inner synchronization not propagated: %d silent moves", silent)
	}
}
