/*
Package parley models concurrent processes as terms of a small process
algebra and checks whether two terms behave the same.

Terms are built from five constructs: Stop, action prefixing, choice,
parallel composition and guarded recursion. Their meaning comes from
structural operational semantics: a rule engine derives each term's one-step
transitions under one of three semantic models (CCS, CSP or ACP, which
differ in how parallel composition synchronizes). Exploring those
transitions yields a labelled transition system, and the equivalence
checkers decide trace equivalence, strong and weak bisimulation, testing
(may/must) equivalence and failures equivalence over it, reporting a
witness when the terms differ.

# Key Features

  - Immutable term model with canonical textual forms used for state
    deduplication.
  - Pluggable SOS rule sets: CCS complement synchronization, CSP
    alphabetized rendezvous, ACP communication merge via a caller-supplied
    gamma function.
  - Five equivalence checkers with witnesses, plus failures refinement.
  - Caller-visible exploration bounds: a depth bound for the trace-based
    checkers and a state ceiling for system construction. Hitting a limit is
    reported distinctly, never conflated with "not equivalent".

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/parley-dev/parley"
		"github.com/parley-dev/parley/pkg/dsl"
	)

	func main() {
		eng, err := parley.New(parley.WithModel(parley.CCS))
		if err != nil {
			log.Fatal(err)
		}

		p := dsl.Prefix("coin", dsl.Choice(dsl.Seq("coffee"), dsl.Seq("tea")))
		q := dsl.Choice(
			dsl.Prefix("coin", dsl.Tau(dsl.Seq("coffee"))),
			dsl.Prefix("coin", dsl.Tau(dsl.Seq("tea"))),
		)

		res, err := eng.Check(context.Background(), p, q, parley.WeakBisimulation)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res.Equivalent, res.Reason)
	}

Terms are constructed programmatically, through pkg/domain literals or the
pkg/dsl combinators; parsing a concrete textual syntax is out of scope.
*/
package parley
