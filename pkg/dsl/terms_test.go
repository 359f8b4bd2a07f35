package dsl_test

import (
	"testing"

	"github.com/parley-dev/parley/pkg/domain"
	"github.com/parley-dev/parley/pkg/dsl"
)

func TestCombinatorsBuildCanonicalForms(t *testing.T) {
	cases := []struct {
		name string
		term domain.Term
		want string
	}{
		{"stop", dsl.Stop(), "0"},
		{"prefix", dsl.Prefix("a", dsl.Stop()), "a.0"},
		{"tau", dsl.Tau(dsl.Stop()), "tau.0"},
		{"seq", dsl.Seq("a", "b", "c"), "a.b.c.0"},
		{"empty seq", dsl.Seq(), "0"},
		{"choice", dsl.Choice(dsl.Seq("a"), dsl.Seq("b")), "(a.0 + b.0)"},
		{"parallel", dsl.Parallel(dsl.Seq("a"), dsl.Seq("b")), "(a.0 | b.0)"},
		{"recursion", dsl.Rec("X", dsl.Prefix("tick", dsl.Var("X"))), "rec X.tick.X"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.term.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}
