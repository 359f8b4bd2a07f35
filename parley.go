package parley

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/parley-dev/parley/pkg/domain"
	"github.com/parley-dev/parley/pkg/equiv"
	"github.com/parley-dev/parley/pkg/lts"
	"github.com/parley-dev/parley/pkg/observability"
	"github.com/parley-dev/parley/pkg/registry"
	"github.com/parley-dev/parley/pkg/sos"
)

// Version is the library version, surfaced by the CLI.
const Version = "0.1.0"

// Re-exported names so that simple callers only import the root package.
const (
	CCS = sos.CCS
	CSP = sos.CSP
	ACP = sos.ACP

	TraceEquivalence    = equiv.Trace
	StrongBisimulation  = equiv.Strong
	WeakBisimulation    = equiv.Weak
	TestingEquivalence  = equiv.Testing
	FailuresEquivalence = equiv.Failures
)

// VerdictCache memoizes check results across verification tasks. Both
// methods must be safe for concurrent use. The cache key covers the model,
// kind, bounds, alphabet and both canonical terms; ACP communication
// functions are code and cannot be fingerprinted, so a cache must not be
// shared across engines with different gammas.
type VerdictCache interface {
	Get(ctx context.Context, key string) (domain.Result, bool, error)
	Put(ctx context.Context, key string, res domain.Result) error
}

// Engine is the high-level entry point of the library: it owns the semantic
// configuration (model, bounds, communication function) and runs equivalence
// checks with it. An Engine is immutable after New and safe for concurrent
// use; every check builds its own transition systems.
type Engine struct {
	model     sos.Model
	alphabet  []domain.Action
	gamma     sos.CommunicationFunc
	depth     int
	maxStates int
	logger    *slog.Logger
	metrics   *observability.Metrics
	cache     VerdictCache
	interner  *registry.Interner
}

// Option configures an Engine.
type Option func(*Engine)

// WithModel selects the semantic model. Default: CCS.
func WithModel(m sos.Model) Option {
	return func(e *Engine) { e.model = m }
}

// WithAlphabet fixes the CSP synchronization alphabet.
func WithAlphabet(actions ...domain.Action) Option {
	return func(e *Engine) { e.alphabet = actions }
}

// WithCommunication supplies ACP's communication function.
func WithCommunication(gamma sos.CommunicationFunc) Option {
	return func(e *Engine) { e.gamma = gamma }
}

// WithDepth bounds trace, testing and failures exploration.
// Default: equiv.DefaultDepth.
func WithDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.depth = depth
		}
	}
}

// WithMaxStates caps the states explored while building a transition system.
// Default: lts.DefaultMaxStates.
func WithMaxStates(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxStates = n
		}
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithMetrics records check outcomes on the given collectors.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithVerdictCache memoizes results in the given cache.
func WithVerdictCache(c VerdictCache) Option {
	return func(e *Engine) { e.cache = c }
}

// WithInterner shares term instances across checks through the given table.
func WithInterner(i *registry.Interner) Option {
	return func(e *Engine) { e.interner = i }
}

// New initializes an Engine. The configuration is validated eagerly: an
// unknown model or an invalid ACP communication function is rejected here,
// before any exploration begins.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		model:     sos.CCS,
		depth:     equiv.DefaultDepth,
		maxStates: lts.DefaultMaxStates,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	e.logger = e.logger.With("model", string(e.model))

	switch e.model {
	case sos.CCS, sos.CSP:
	case sos.ACP:
		if e.gamma == nil {
			return nil, fmt.Errorf("%w: ACP requires WithCommunication", domain.ErrInvalidCommunication)
		}
		if len(e.alphabet) > 0 {
			if err := sos.ValidateCommunication(e.gamma, e.alphabet); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownModel, e.model)
	}

	return e, nil
}

// Model returns the configured semantic model.
func (e *Engine) Model() sos.Model { return e.model }

// Depth returns the configured exploration depth bound.
func (e *Engine) Depth() int { return e.depth }

func (e *Engine) ruleEngine() (*sos.Engine, error) {
	return sos.New(e.model,
		sos.WithAlphabet(e.alphabet...),
		sos.WithCommunication(e.gamma),
		sos.WithLogger(e.logger),
	)
}

// validateGamma re-checks the communication function over the syntactic
// alphabet of the terms about to be explored.
func (e *Engine) validateGamma(terms ...domain.Term) error {
	if e.model != sos.ACP {
		return nil
	}
	set := make(map[domain.Action]struct{})
	for _, a := range e.alphabet {
		set[a] = struct{}{}
	}
	for _, t := range terms {
		for _, a := range domain.Alphabet(t) {
			set[a] = struct{}{}
		}
	}
	alphabet := make([]domain.Action, 0, len(set))
	for a := range set {
		alphabet = append(alphabet, a)
	}
	return sos.ValidateCommunication(e.gamma, alphabet)
}

// BuildLTS explores every configuration reachable from the term under the
// configured model. Exceeding the state ceiling returns the partial system
// together with domain.ErrExplorationLimit.
func (e *Engine) BuildLTS(term domain.Term) (*lts.LTS, error) {
	if err := e.validateGamma(term); err != nil {
		return nil, err
	}
	rules, err := e.ruleEngine()
	if err != nil {
		return nil, err
	}
	system, err := e.builder(rules).Build(term)
	if system != nil {
		e.metrics.ObserveLTS(system.Size())
	}
	return system, err
}

func (e *Engine) builder(rules *sos.Engine) *lts.Builder {
	opts := []lts.BuilderOption{
		lts.WithMaxStates(e.maxStates),
		lts.WithLogger(e.logger),
	}
	if e.interner != nil {
		opts = append(opts, lts.WithInterner(e.interner))
	}
	return lts.NewBuilder(rules, opts...)
}

// Check decides whether the two terms are equivalent under the given kind.
// The verdict distinguishes "proved different" from "gave up": hitting the
// state ceiling yields an inconclusive result, never a negative one.
func (e *Engine) Check(ctx context.Context, p, q domain.Term, kind equiv.Kind) (domain.Result, error) {
	kind, err := equiv.ParseKind(string(kind))
	if err != nil {
		return domain.Result{}, err
	}
	if err := e.validateGamma(p, q); err != nil {
		return domain.Result{}, err
	}

	key := e.cacheKey(p, q, string(kind))
	if cached, ok := e.cachedResult(ctx, key); ok {
		return cached, nil
	}

	rules, err := e.ruleEngine()
	if err != nil {
		return domain.Result{}, err
	}

	start := time.Now()
	res, err := e.run(rules, p, q, kind)
	if err != nil {
		return domain.Result{}, err
	}

	e.metrics.ObserveCheck(string(kind), string(e.model), res.Equivalent, res.Inconclusive, time.Since(start).Seconds())
	e.logger.Debug("check finished", "kind", string(kind),
		"left", p.String(), "right", q.String(),
		"equivalent", res.Equivalent, "inconclusive", res.Inconclusive)
	e.storeResult(ctx, key, res)
	return res, nil
}

func (e *Engine) run(rules *sos.Engine, p, q domain.Term, kind equiv.Kind) (domain.Result, error) {
	switch kind {
	case equiv.Trace:
		return equiv.CheckTrace(rules, p, q, e.depth), nil
	case equiv.Testing:
		return equiv.CheckTesting(rules, p, q, e.depth), nil
	case equiv.Failures:
		return equiv.CheckFailures(rules, p, q, e.depth), nil
	case equiv.Strong, equiv.Weak:
		left, err := e.builder(rules).Build(p)
		if inconclusive, res := limitHit(err, p); inconclusive {
			return res, nil
		} else if err != nil {
			return domain.Result{}, err
		}
		right, err := e.builder(rules).Build(q)
		if inconclusive, res := limitHit(err, q); inconclusive {
			return res, nil
		} else if err != nil {
			return domain.Result{}, err
		}
		e.metrics.ObserveLTS(left.Size())
		e.metrics.ObserveLTS(right.Size())
		if kind == equiv.Strong {
			return equiv.CheckStrong(left, right), nil
		}
		return equiv.CheckWeak(left, right), nil
	default:
		return domain.Result{}, fmt.Errorf("%w: %q", domain.ErrUnknownEquivalence, kind)
	}
}

// Refines decides failures refinement: impl refines spec when every
// trace/refusal pair of impl is allowed by spec.
func (e *Engine) Refines(ctx context.Context, impl, spec domain.Term) (domain.Result, error) {
	if err := e.validateGamma(impl, spec); err != nil {
		return domain.Result{}, err
	}
	rules, err := e.ruleEngine()
	if err != nil {
		return domain.Result{}, err
	}
	res := equiv.CheckRefinement(rules, impl, spec, e.depth)
	e.metrics.ObserveCheck("failures-refinement", string(e.model), res.Equivalent, res.Inconclusive, 0)
	return res, nil
}

func limitHit(err error, t domain.Term) (bool, domain.Result) {
	if err == nil || !errors.Is(err, domain.ErrExplorationLimit) {
		return false, domain.Result{}
	}
	return true, domain.InconclusiveResult(fmt.Sprintf("state ceiling reached while exploring %s", t))
}

func (e *Engine) cacheKey(p, q domain.Term, kind string) string {
	alphabet := make([]string, len(e.alphabet))
	for i, a := range e.alphabet {
		alphabet[i] = string(a)
	}
	return strings.Join([]string{
		string(e.model), kind,
		fmt.Sprintf("d%d", e.depth), fmt.Sprintf("s%d", e.maxStates),
		strings.Join(alphabet, ","),
		p.String(), q.String(),
	}, "\x1f")
}

func (e *Engine) cachedResult(ctx context.Context, key string) (domain.Result, bool) {
	if e.cache == nil {
		return domain.Result{}, false
	}
	res, ok, err := e.cache.Get(ctx, key)
	if err != nil {
		e.logger.Warn("verdict cache read failed", "error", err)
		return domain.Result{}, false
	}
	return res, ok
}

func (e *Engine) storeResult(ctx context.Context, key string, res domain.Result) {
	if e.cache == nil {
		return
	}
	if err := e.cache.Put(ctx, key, res); err != nil {
		e.logger.Warn("verdict cache write failed", "error", err)
	}
}
