package domain

import "testing"

func a(action string, next Term) Term {
	return Prefix{Action: Action(action), Next: next}
}

func TestCanonicalForm(t *testing.T) {
	tests := []struct {
		name string
		term Term
		want string
	}{
		{"stop", Stop{}, "0"},
		{"prefix", a("a", Stop{}), "a.0"},
		{"nested prefix", a("a", a("b", Stop{})), "a.b.0"},
		{"choice", Choice{Left: a("a", Stop{}), Right: a("b", Stop{})}, "(a.0 + b.0)"},
		{"parallel", Parallel{Left: a("a", Stop{}), Right: a("a'", Stop{})}, "(a.0 | a'.0)"},
		{"recursion", Recursion{Variable: "X", Body: a("tick", Variable{Name: "X"})}, "rec X.tick.X"},
		{"variable", Variable{Name: "X"}, "X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.term.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructuralEquality(t *testing.T) {
	p := Choice{Left: a("a", Stop{}), Right: a("b", Stop{})}
	q := Choice{Left: a("a", Stop{}), Right: a("b", Stop{})}
	if !p.Equal(q) {
		t.Error("identical structures should be equal")
	}
	if p.Equal(Choice{Left: a("b", Stop{}), Right: a("a", Stop{})}) {
		t.Error("equality is syntactic, not commutative")
	}
	if p.Equal(a("a", Stop{})) {
		t.Error("different variants are never equal")
	}
}

func TestSubstitute(t *testing.T) {
	replacement := a("a", Stop{})

	t.Run("stop is a no-op", func(t *testing.T) {
		if got := (Stop{}).Substitute("X", replacement); !got.Equal(Stop{}) {
			t.Errorf("got %s", got)
		}
	})

	t.Run("variable is replaced by name", func(t *testing.T) {
		if got := (Variable{Name: "X"}).Substitute("X", replacement); !got.Equal(replacement) {
			t.Errorf("got %s", got)
		}
		if got := (Variable{Name: "Y"}).Substitute("X", replacement); !got.Equal(Variable{Name: "Y"}) {
			t.Errorf("got %s", got)
		}
	})

	t.Run("prefix recurses into continuation", func(t *testing.T) {
		term := a("b", Variable{Name: "X"})
		want := a("b", replacement)
		if got := term.Substitute("X", replacement); !got.Equal(want) {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("substitution never mutates the receiver", func(t *testing.T) {
		term := Choice{Left: Variable{Name: "X"}, Right: Variable{Name: "X"}}
		_ = term.Substitute("X", replacement)
		if term.String() != "(X + X)" {
			t.Errorf("receiver changed: %s", term)
		}
	})

	t.Run("recursion on its bound variable replaces the whole term", func(t *testing.T) {
		rec := Recursion{Variable: "X", Body: a("tick", Variable{Name: "X"})}
		if got := rec.Substitute("X", replacement); !got.Equal(replacement) {
			t.Errorf("got %s", got)
		}
	})

	t.Run("recursion on another variable recurses into the body", func(t *testing.T) {
		rec := Recursion{Variable: "X", Body: Choice{Left: Variable{Name: "X"}, Right: Variable{Name: "Y"}}}
		got := rec.Substitute("Y", replacement)
		want := Recursion{Variable: "X", Body: Choice{Left: Variable{Name: "X"}, Right: replacement}}
		if !got.Equal(want) {
			t.Errorf("got %s, want %s", got, want)
		}
	})
}

func TestUnfold(t *testing.T) {
	rec := Recursion{Variable: "X", Body: a("tick", Variable{Name: "X"})}
	got := rec.Unfold()
	want := a("tick", rec)
	if !got.Equal(want) {
		t.Errorf("Unfold() = %s, want %s", got, want)
	}
}

func TestDefaultDerive(t *testing.T) {
	t.Run("stop has no transitions", func(t *testing.T) {
		if ts := (Stop{}).Derive(); len(ts) != 0 {
			t.Errorf("got %d transitions", len(ts))
		}
	})

	t.Run("prefix yields one transition", func(t *testing.T) {
		p := a("a", Stop{})
		ts := p.Derive()
		if len(ts) != 1 {
			t.Fatalf("got %d transitions", len(ts))
		}
		if ts[0].Action != "a" || !ts[0].Target.Equal(Stop{}) {
			t.Errorf("unexpected transition %s", ts[0])
		}
	})

	t.Run("choice unions both branches", func(t *testing.T) {
		c := Choice{Left: a("a", Stop{}), Right: a("b", Stop{})}
		ts := c.Derive()
		if len(ts) != 2 {
			t.Fatalf("got %d transitions", len(ts))
		}
		for _, tr := range ts {
			if !tr.Source.Equal(c) {
				t.Errorf("transition source is %s, want the choice", tr.Source)
			}
			if !tr.Target.Equal(Stop{}) {
				t.Errorf("visible move must discard the alternative, got target %s", tr.Target)
			}
		}
	})

	t.Run("silent choice move keeps the alternative", func(t *testing.T) {
		c := Choice{Left: a("tau", a("a", Stop{})), Right: a("b", Stop{})}
		var silent *Transition
		for _, tr := range c.Derive() {
			if tr.Action.Silent() {
				silent = &tr
				break
			}
		}
		if silent == nil {
			t.Fatal("no silent transition derived")
		}
		want := Choice{Left: a("a", Stop{}), Right: a("b", Stop{})}
		if !silent.Target.Equal(want) {
			t.Errorf("silent target = %s, want %s", silent.Target, want)
		}
	})

	t.Run("parallel is inert without an engine", func(t *testing.T) {
		p := Parallel{Left: a("a", Stop{}), Right: a("a'", Stop{})}
		if ts := p.Derive(); len(ts) != 0 {
			t.Errorf("bare parallel derived %d transitions, want none", len(ts))
		}
	})

	t.Run("recursion derives through its unfolding", func(t *testing.T) {
		rec := Recursion{Variable: "X", Body: a("tick", Variable{Name: "X"})}
		ts := rec.Derive()
		if len(ts) != 1 {
			t.Fatalf("got %d transitions", len(ts))
		}
		if !ts[0].Source.Equal(rec) || !ts[0].Target.Equal(rec) {
			t.Errorf("unexpected transition %s", ts[0])
		}
	})

	t.Run("free variable is stuck", func(t *testing.T) {
		if ts := (Variable{Name: "X"}).Derive(); len(ts) != 0 {
			t.Errorf("got %d transitions", len(ts))
		}
	})
}

func TestComplement(t *testing.T) {
	if got := Action("a").Complement(); got != "a'" {
		t.Errorf("Complement(a) = %s", got)
	}
	if got := Action("a'").Complement(); got != "a" {
		t.Errorf("Complement(a') = %s", got)
	}
	if got := Tau.Complement(); got != Tau {
		t.Errorf("Complement(tau) = %s", got)
	}
}

func TestAlphabet(t *testing.T) {
	term := Choice{
		Left:  a("a", a("tau", Stop{})),
		Right: Recursion{Variable: "X", Body: a("b", Variable{Name: "X"})},
	}
	got := Alphabet(term)
	want := []Action{"a", "b", "tau"}
	if len(got) != len(want) {
		t.Fatalf("Alphabet = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Alphabet = %v, want %v", got, want)
		}
	}
}

func TestTransitionSetDeduplicates(t *testing.T) {
	tr := Transition{Source: a("a", Stop{}), Action: "a", Target: Stop{}}
	set := NewTransitionSet(tr, tr)
	set.Add(tr)
	if set.Len() != 1 {
		t.Errorf("Len = %d, want 1", set.Len())
	}
	if !set.Contains(tr) {
		t.Error("set should contain the transition")
	}
}
