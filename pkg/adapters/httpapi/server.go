// Package httpapi exposes equivalence checking over HTTP. It is a
// collaborator surface on top of the library, not part of the core: the core
// stays a programmatic API.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mitchellh/mapstructure"

	"github.com/parley-dev/parley"
	"github.com/parley-dev/parley/pkg/domain"
	"github.com/parley-dev/parley/pkg/equiv"
	"github.com/parley-dev/parley/pkg/observability"
	"github.com/parley-dev/parley/pkg/registry"
	"github.com/parley-dev/parley/pkg/sos"
)

// CheckRequest is the body of POST /v1/check. Terms are given either inline
// as TermSpec trees or by scenario name; options arrive as a loose map and
// are decoded weakly, so numbers from any JSON client fit.
type CheckRequest struct {
	Model         string         `json:"model"`
	Kind          string         `json:"kind"`
	Left          *TermSpec      `json:"left,omitempty"`
	Right         *TermSpec      `json:"right,omitempty"`
	LeftScenario  string         `json:"left_scenario,omitempty"`
	RightScenario string         `json:"right_scenario,omitempty"`
	Options       map[string]any `json:"options,omitempty"`
}

// CheckOptions are the exploration bounds a request may set.
type CheckOptions struct {
	Depth     int      `mapstructure:"depth"`
	MaxStates int      `mapstructure:"max_states"`
	Alphabet  []string `mapstructure:"alphabet"`
}

// CheckResponse wraps the verdict with the resolved configuration.
type CheckResponse struct {
	Model  string        `json:"model"`
	Kind   string        `json:"kind"`
	Result domain.Result `json:"result"`
}

type scenarioInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Term        string `json:"term"`
}

// Server serves check requests against a scenario registry.
type Server struct {
	scenarios *registry.Registry
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// ServerOption configures the server.
type ServerOption func(*Server)

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = logger }
}

// WithMetrics records served checks on the given collectors.
func WithMetrics(m *observability.Metrics) ServerOption {
	return func(s *Server) { s.metrics = m }
}

// NewHandler builds the HTTP handler.
func NewHandler(scenarios *registry.Registry, opts ...ServerOption) http.Handler {
	s := &Server{
		scenarios: scenarios,
		logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/v1/scenarios", s.handleScenarios)
	r.Post("/v1/check", s.handleCheck)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScenarios(w http.ResponseWriter, _ *http.Request) {
	var out []scenarioInfo
	for _, sc := range s.scenarios.List() {
		out = append(out, scenarioInfo{Name: sc.Name, Description: sc.Description, Term: sc.Term.String()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	var opts CheckOptions
	if err := weakDecode(req.Options, &opts); err != nil {
		writeError(w, http.StatusBadRequest, "invalid options: "+err.Error())
		return
	}

	model, err := sos.ParseModel(orDefault(req.Model, string(sos.CCS)))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if model == sos.ACP {
		// Communication functions are code, not data; ACP checks are only
		// reachable through the programmatic API.
		writeError(w, http.StatusBadRequest, "ACP checks require a communication function and are not available over HTTP")
		return
	}
	kind, err := equiv.ParseKind(orDefault(req.Kind, string(equiv.Trace)))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	left, err := s.resolveTerm(req.Left, req.LeftScenario)
	if err != nil {
		writeError(w, http.StatusBadRequest, "left: "+err.Error())
		return
	}
	right, err := s.resolveTerm(req.Right, req.RightScenario)
	if err != nil {
		writeError(w, http.StatusBadRequest, "right: "+err.Error())
		return
	}

	engineOpts := []parley.Option{parley.WithModel(model), parley.WithLogger(s.logger)}
	if s.metrics != nil {
		engineOpts = append(engineOpts, parley.WithMetrics(s.metrics))
	}
	if opts.Depth > 0 {
		engineOpts = append(engineOpts, parley.WithDepth(opts.Depth))
	}
	if opts.MaxStates > 0 {
		engineOpts = append(engineOpts, parley.WithMaxStates(opts.MaxStates))
	}
	if len(opts.Alphabet) > 0 {
		actions := make([]domain.Action, len(opts.Alphabet))
		for i, a := range opts.Alphabet {
			actions[i] = domain.Action(a)
		}
		engineOpts = append(engineOpts, parley.WithAlphabet(actions...))
	}

	eng, err := parley.New(engineOpts...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := eng.Check(r.Context(), left, right, kind)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrUnknownModel) || errors.Is(err, domain.ErrUnknownEquivalence) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}

	s.logger.Info("check served", "kind", string(kind), "model", string(model),
		"equivalent", res.Equivalent, "inconclusive", res.Inconclusive)
	writeJSON(w, http.StatusOK, CheckResponse{Model: string(model), Kind: string(kind), Result: res})
}

func (s *Server) resolveTerm(spec *TermSpec, scenario string) (domain.Term, error) {
	if scenario != "" {
		sc, err := s.scenarios.Lookup(scenario)
		if err != nil {
			return nil, err
		}
		return sc.Term, nil
	}
	return spec.Term()
}

// weakDecode maps loosely typed JSON option maps onto the typed struct.
func weakDecode(in map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
