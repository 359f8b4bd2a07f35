package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/parley-dev/parley"
	"github.com/parley-dev/parley/pkg/adapters/httpapi"
	"github.com/parley-dev/parley/pkg/domain"
	"github.com/parley-dev/parley/pkg/equiv"
	"github.com/parley-dev/parley/pkg/registry"
	"github.com/parley-dev/parley/pkg/sos"
)

// CheckOutcome pairs a check entry with its verdict.
type CheckOutcome struct {
	Name   string
	Kind   equiv.Kind
	Model  sos.Model
	Left   domain.Term
	Right  domain.Term
	Result domain.Result
	Err    error
}

// RunChecks executes every entry of the file against the scenario registry.
// Individual failures do not stop the batch; they are reported per entry.
func RunChecks(ctx context.Context, file *CheckFile, scenarios *registry.Registry, logger *slog.Logger) []CheckOutcome {
	outcomes := make([]CheckOutcome, 0, len(file.Checks))
	for _, entry := range file.Checks {
		outcomes = append(outcomes, runOne(ctx, entry, scenarios, logger))
	}
	return outcomes
}

func runOne(ctx context.Context, entry CheckEntry, scenarios *registry.Registry, logger *slog.Logger) CheckOutcome {
	out := CheckOutcome{Name: entry.Name}

	model, err := sos.ParseModel(defaultString(entry.Model, string(sos.CCS)))
	if err != nil {
		out.Err = err
		return out
	}
	out.Model = model

	kind, err := equiv.ParseKind(defaultString(entry.Kind, string(equiv.Trace)))
	if err != nil {
		out.Err = err
		return out
	}
	out.Kind = kind

	out.Left, err = resolveTerm(entry.Left, entry.LeftScenario, scenarios)
	if err != nil {
		out.Err = fmt.Errorf("left term: %w", err)
		return out
	}
	out.Right, err = resolveTerm(entry.Right, entry.RightScenario, scenarios)
	if err != nil {
		out.Err = fmt.Errorf("right term: %w", err)
		return out
	}

	opts := []parley.Option{parley.WithModel(model), parley.WithLogger(logger)}
	if entry.Depth > 0 {
		opts = append(opts, parley.WithDepth(entry.Depth))
	}
	if entry.MaxStates > 0 {
		opts = append(opts, parley.WithMaxStates(entry.MaxStates))
	}
	if len(entry.Alphabet) > 0 {
		actions := make([]domain.Action, len(entry.Alphabet))
		for i, a := range entry.Alphabet {
			actions[i] = domain.Action(a)
		}
		opts = append(opts, parley.WithAlphabet(actions...))
	}

	eng, err := parley.New(opts...)
	if err != nil {
		out.Err = err
		return out
	}
	out.Result, out.Err = eng.Check(ctx, out.Left, out.Right, kind)
	return out
}

func resolveTerm(spec *httpapi.TermSpec, scenario string, scenarios *registry.Registry) (domain.Term, error) {
	if scenario != "" {
		sc, err := scenarios.Lookup(scenario)
		if err != nil {
			return nil, err
		}
		return sc.Term, nil
	}
	return spec.Term()
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
