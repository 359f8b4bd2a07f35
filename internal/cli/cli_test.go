package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-dev/parley/internal/cli"
	"github.com/parley-dev/parley/internal/logging"
	"github.com/parley-dev/parley/pkg/registry"
)

func writeCheckFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "checks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCheckFile(t *testing.T) {
	path := writeCheckFile(t, `
checks:
  - name: vending machines by weak bisimulation
    kind: weak-bisimulation
    left_scenario: vending-choice
    right_scenario: vending-commit
  - name: inline pair
    kind: trace
    depth: 6
    left:
      kind: prefix
      action: a
      next:
        kind: stop
    right:
      kind: prefix
      action: a
      next:
        kind: stop
`)

	file, err := cli.LoadCheckFile(path)
	require.NoError(t, err)
	require.Len(t, file.Checks, 2)

	assert.Equal(t, "weak-bisimulation", file.Checks[0].Kind)
	assert.Equal(t, "vending-choice", file.Checks[0].LeftScenario)

	assert.Equal(t, 6, file.Checks[1].Depth)
	require.NotNil(t, file.Checks[1].Left)
	assert.Equal(t, "prefix", file.Checks[1].Left.Kind)
	assert.Equal(t, "a", file.Checks[1].Left.Action)
}

func TestLoadCheckFileRejectsEmptyAndNameless(t *testing.T) {
	_, err := cli.LoadCheckFile(writeCheckFile(t, "checks: []\n"))
	assert.ErrorContains(t, err, "no checks")

	_, err = cli.LoadCheckFile(writeCheckFile(t, `
checks:
  - kind: trace
    left_scenario: a-only
    right_scenario: a-only
`))
	assert.ErrorContains(t, err, "no name")

	_, err = cli.LoadCheckFile(writeCheckFile(t, `
checks:
  - name: half a check
    right_scenario: a-only
`))
	assert.ErrorContains(t, err, "no left term")
}

func TestRunChecksContinuesPastFailures(t *testing.T) {
	file := &cli.CheckFile{Checks: []cli.CheckEntry{
		{Name: "bad scenario", LeftScenario: "missing", RightScenario: "a-only"},
		{Name: "good", Kind: "trace", LeftScenario: "a-only", RightScenario: "a-only"},
	}}

	outcomes := cli.RunChecks(context.Background(), file, registry.Builtin(), logging.NewNop())
	require.Len(t, outcomes, 2)

	assert.Error(t, outcomes[0].Err)
	require.NoError(t, outcomes[1].Err)
	assert.True(t, outcomes[1].Result.Equivalent)
}

func TestRunChecksDefaultsToCCSTrace(t *testing.T) {
	file := &cli.CheckFile{Checks: []cli.CheckEntry{
		{Name: "defaults", LeftScenario: "ab-choice", RightScenario: "a-only"},
	}}

	outcomes := cli.RunChecks(context.Background(), file, registry.Builtin(), logging.NewNop())
	require.Len(t, outcomes, 1)
	require.NoError(t, outcomes[0].Err)
	assert.Equal(t, "ccs", string(outcomes[0].Model))
	assert.Equal(t, "trace", string(outcomes[0].Kind))
	assert.False(t, outcomes[0].Result.Equivalent)
}

func TestReportContents(t *testing.T) {
	file := &cli.CheckFile{Checks: []cli.CheckEntry{
		{Name: "distinct", Kind: "trace", LeftScenario: "ab-choice", RightScenario: "a-only"},
		{Name: "same", Kind: "strong", LeftScenario: "clock", RightScenario: "clock"},
		{Name: "broken", Kind: "nope", LeftScenario: "a-only", RightScenario: "a-only"},
	}}
	outcomes := cli.RunChecks(context.Background(), file, registry.Builtin(), logging.NewNop())

	report := cli.Report(outcomes)
	assert.Contains(t, report, "# Equivalence report")
	assert.Contains(t, report, "## distinct")
	assert.Contains(t, report, "**NOT EQUIVALENT**")
	assert.Contains(t, report, "Witness trace: `b`")
	assert.Contains(t, report, "## same")
	assert.Contains(t, report, "**EQUIVALENT**")
	assert.Contains(t, report, "## broken")
	assert.Contains(t, report, "**Error**")
	assert.False(t, strings.Contains(report, "%!"), "report should not contain formatting artifacts")
}
