package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-dev/parley/pkg/adapters/httpapi"
	"github.com/parley-dev/parley/pkg/registry"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(httpapi.NewHandler(registry.Builtin()))
	t.Cleanup(srv.Close)
	return srv
}

func postCheck(t *testing.T, srv *httptest.Server, req httpapi.CheckRequest) *http.Response {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+"/v1/check", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealthz(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestListScenarios(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/v1/scenarios")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var scenarios []map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&scenarios))
	require.NotEmpty(t, scenarios)

	names := make(map[string]bool)
	for _, sc := range scenarios {
		names[sc["name"]] = true
		assert.NotEmpty(t, sc["term"])
	}
	assert.True(t, names["vending-choice"])
	assert.True(t, names["vending-commit"])
}

func TestCheckScenarioPair(t *testing.T) {
	srv := newServer(t)

	resp := postCheck(t, srv, httpapi.CheckRequest{
		Kind:          "weak-bisimulation",
		LeftScenario:  "vending-choice",
		RightScenario: "vending-commit",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out httpapi.CheckResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ccs", out.Model)
	assert.Equal(t, "weak-bisimulation", out.Kind)
	assert.False(t, out.Result.Equivalent)
}

func TestCheckInlineTerms(t *testing.T) {
	srv := newServer(t)

	a := &httpapi.TermSpec{Kind: "prefix", Action: "a", Next: &httpapi.TermSpec{Kind: "stop"}}
	resp := postCheck(t, srv, httpapi.CheckRequest{
		Kind:  "trace",
		Left:  a,
		Right: &httpapi.TermSpec{Kind: "choice", Left: a, Right: a},
		Options: map[string]any{
			"depth": "5", // weakly typed on purpose
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out httpapi.CheckResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Result.Equivalent)
}

func TestCheckRejectsUnknownKind(t *testing.T) {
	srv := newServer(t)

	resp := postCheck(t, srv, httpapi.CheckRequest{
		Kind:          "observational",
		LeftScenario:  "a-only",
		RightScenario: "a-only",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckRejectsACP(t *testing.T) {
	srv := newServer(t)

	resp := postCheck(t, srv, httpapi.CheckRequest{
		Model:         "acp",
		LeftScenario:  "a-only",
		RightScenario: "a-only",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckRejectsMalformedTerm(t *testing.T) {
	srv := newServer(t)

	resp := postCheck(t, srv, httpapi.CheckRequest{
		Kind:  "trace",
		Left:  &httpapi.TermSpec{Kind: "prefix"}, // no action
		Right: &httpapi.TermSpec{Kind: "stop"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTermSpecRoundTrip(t *testing.T) {
	spec := &httpapi.TermSpec{
		Kind:     "rec",
		Variable: "X",
		Body: &httpapi.TermSpec{
			Kind:   "prefix",
			Action: "tick",
			Next:   &httpapi.TermSpec{Kind: "var", Name: "X"},
		},
	}
	term, err := spec.Term()
	require.NoError(t, err)
	assert.Equal(t, "rec X.tick.X", term.String())
}
