package equiv_test

import (
	"testing"

	"github.com/parley-dev/parley/pkg/domain"
	"github.com/parley-dev/parley/pkg/dsl"
	"github.com/parley-dev/parley/pkg/equiv"
	"github.com/parley-dev/parley/pkg/lts"
)

func build(t *testing.T, term domain.Term) *lts.LTS {
	t.Helper()
	system, err := lts.NewBuilder(ccs(t)).Build(term)
	if err != nil {
		t.Fatal(err)
	}
	return system
}

func TestStrongBisimulationIsReflexive(t *testing.T) {
	term := dsl.Prefix("coin", dsl.Choice(dsl.Seq("coffee"), dsl.Seq("tea")))
	res := equiv.CheckStrong(build(t, term), build(t, term))
	if !res.Equivalent {
		t.Errorf("a term is strongly bisimilar to itself: %s", res.Reason)
	}
}

func TestStrongDistinguishesBranchingTime(t *testing.T) {
	// Trace equivalent, but q commits to one branch on the first step.
	p := dsl.Prefix("a", dsl.Choice(dsl.Seq("b"), dsl.Seq("c")))
	q := dsl.Choice(dsl.Prefix("a", dsl.Seq("b")), dsl.Prefix("a", dsl.Seq("c")))

	res := equiv.CheckStrong(build(t, p), build(t, q))
	if res.Equivalent {
		t.Fatal("a.(b + c) and (a.b + a.c) differ on branching structure")
	}
	if res.WitnessPair == nil {
		t.Error("a bisimulation refutation should carry the distinguished pair")
	}
}

func TestWeakAbsorbsSilentPrefix(t *testing.T) {
	p := dsl.Seq("a")
	q := dsl.Tau(dsl.Seq("a"))

	if res := equiv.CheckStrong(build(t, p), build(t, q)); res.Equivalent {
		t.Fatal("tau.a.0 is not strongly bisimilar to a.0")
	}
	if res := equiv.CheckWeak(build(t, p), build(t, q)); !res.Equivalent {
		t.Errorf("tau.a.0 should be weakly bisimilar to a.0: %s", res.Reason)
	}
}

func TestWeakIgnoresSilentSelfLoop(t *testing.T) {
	// rec X.tau.X spins silently forever; the self-loop must not
	// distinguish it from the deadlocked process under weak bisimulation.
	p := dsl.Rec("X", dsl.Tau(dsl.Var("X")))
	q := dsl.Stop()

	if res := equiv.CheckStrong(build(t, p), build(t, q)); res.Equivalent {
		t.Fatal("the spinner is not strongly bisimilar to 0")
	}
	res := equiv.CheckWeak(build(t, p), build(t, q))
	if !res.Equivalent {
		t.Errorf("silent self-loops should not refute weak bisimilarity: %s", res.Reason)
	}
}

func TestWeakStillSeesCommitment(t *testing.T) {
	// After coin, q has already committed internally to one drink.
	p := dsl.Prefix("coin", dsl.Choice(dsl.Seq("coffee"), dsl.Seq("tea")))
	q := dsl.Choice(
		dsl.Prefix("coin", dsl.Tau(dsl.Seq("coffee"))),
		dsl.Prefix("coin", dsl.Tau(dsl.Seq("tea"))),
	)

	res := equiv.CheckWeak(build(t, p), build(t, q))
	if res.Equivalent {
		t.Error("internal commitment after coin should refute weak bisimilarity")
	}
}

func TestStrongAndWeakCoincideWithoutSilentSteps(t *testing.T) {
	p := dsl.Seq("a", "b")
	q := dsl.Choice(dsl.Seq("a", "b"), dsl.Seq("a", "b"))

	strong := equiv.CheckStrong(build(t, p), build(t, q))
	weak := equiv.CheckWeak(build(t, p), build(t, q))
	if strong.Equivalent != weak.Equivalent {
		t.Errorf("strong = %v, weak = %v; they must agree on tau-free terms",
			strong.Equivalent, weak.Equivalent)
	}
	if !strong.Equivalent {
		t.Errorf("identical branches should be strongly bisimilar: %s", strong.Reason)
	}
}
