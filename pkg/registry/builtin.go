package registry

import "github.com/parley-dev/parley/pkg/dsl"

// Builtin returns a registry preloaded with the example systems shipped with
// the module. The two vending machines are the classic pair that is
// trace-equivalent but not weakly bisimilar: one offers a real post-payment
// choice, the other commits internally before serving.
func Builtin() *Registry {
	r := New()

	r.Register(Scenario{
		Name:        "vending-choice",
		Description: "after a coin, the customer chooses coffee or tea",
		Term:        dsl.Prefix("coin", dsl.Choice(dsl.Seq("coffee"), dsl.Seq("tea"))),
	})
	r.Register(Scenario{
		Name:        "vending-commit",
		Description: "commits internally after the coin and offers only one drink",
		Term: dsl.Choice(
			dsl.Prefix("coin", dsl.Tau(dsl.Seq("coffee"))),
			dsl.Prefix("coin", dsl.Tau(dsl.Seq("tea"))),
		),
	})
	r.Register(Scenario{
		Name:        "handshake",
		Description: "sender and receiver on complementary actions; CCS synchronizes them",
		Term:        dsl.Parallel(dsl.Seq("msg"), dsl.Seq("msg'")),
	})
	r.Register(Scenario{
		Name:        "clock",
		Description: "ticks forever; the smallest guarded recursive term",
		Term:        dsl.Rec("X", dsl.Prefix("tick", dsl.Var("X"))),
	})
	r.Register(Scenario{
		Name:        "ab-choice",
		Description: "offers a or b once",
		Term:        dsl.Choice(dsl.Seq("a"), dsl.Seq("b")),
	})
	r.Register(Scenario{
		Name:        "a-only",
		Description: "performs a once and stops",
		Term:        dsl.Seq("a"),
	})

	return r
}
