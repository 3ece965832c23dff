package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/planner/internal/application/session/sessiontest"
)

var testNow = time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)

type cliHarness struct {
	dbPath string
	extra  []string
}

func newHarness(t *testing.T) *cliHarness {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	return &cliHarness{dbPath: filepath.Join(t.TempDir(), "planner.db")}
}

// run executes one command against the harness database and returns its output.
func (h *cliHarness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd(sessiontest.FixedClock{Time: testNow})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append(append([]string{"--db", h.dbPath, "--log-level", "error"}, h.extra...), args...))

	err := cmd.Execute()
	return out.String(), err
}

func (h *cliHarness) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := h.run(t, args...)
	require.NoError(t, err, out)
	return out
}

func TestCLI_BudgetWorkflow(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.mustRun(t, "income", "2000"), "Monthly income set to 2000.00")
	assert.Contains(t, h.mustRun(t, "budget", "set", "groceries", "--percent", "20"), "Created budget for groceries: 400.00")
	h.mustRun(t, "budget", "set", "housing", "--percent", "30")

	out := h.mustRun(t, "budget", "list")
	assert.Contains(t, out, "Budgets for 2024-05")
	assert.Contains(t, out, "400.00")
	assert.Contains(t, out, "600.00")
	assert.Contains(t, out, "1000.00")

	assert.Contains(t, h.mustRun(t, "tx", "add", "expense", "50", "groceries", "--date", "2024-05-10", "-d", "Market"),
		"Logged expense of 50.00 in groceries on 2024-05-10")

	out = h.mustRun(t, "tx", "list", "--month", "2024-05")
	assert.Contains(t, out, "Market")
	assert.Contains(t, out, "expenses 50.00")

	h.mustRun(t, "income", "1000")
	out = h.mustRun(t, "budget", "list")
	assert.Contains(t, out, "200.00")
	assert.Contains(t, out, "300.00")
	assert.Contains(t, out, "Income 1000.00")
}

func TestCLI_ExpenseWithoutBudgetFails(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "income", "2000")

	_, err := h.run(t, "tx", "add", "expense", "10", "transport")

	require.Error(t, err)
	assert.Contains(t, h.mustRun(t, "tx", "list", "--type", "expense"), "No transactions found.")
}

func TestCLI_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "bad amount", args: []string{"income", "lots"}, want: "invalid amount"},
		{name: "bad type", args: []string{"tx", "add", "transfer", "10", "groceries"}, want: "invalid transaction type"},
		{name: "bad date", args: []string{"tx", "add", "expense", "10", "groceries", "--date", "10/05/2024"}, want: "invalid date"},
		{name: "limit and percent", args: []string{"budget", "set", "groceries", "--limit", "100", "--percent", "10"}, want: "exactly one of"},
		{name: "bad log level", args: []string{"--log-level", "loud", "version"}, want: "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			_, err := h.run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCLI_GoalAllocationLimit(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "income", "2000")
	h.mustRun(t, "goal", "add", "Emergency", "5000", "--allocation", "60")

	_, err := h.run(t, "goal", "add", "Vacation", "2000", "--allocation", "50")
	require.Error(t, err)

	out := h.mustRun(t, "goal", "list")
	assert.Contains(t, out, "Emergency")
	assert.NotContains(t, out, "Vacation")
	assert.Contains(t, out, "60.0% allocated")
}

func TestCLI_Categories(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.mustRun(t, "category", "add", "Pets", "--parent", "shopping"), "Created category Pets")
	assert.Contains(t, h.mustRun(t, "category", "list"), "Pets")

	_, err := h.run(t, "category", "delete", "savings")
	assert.Error(t, err)
}

func TestCLI_ResetRequiresConfirmation(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "income", "2000")

	assert.Contains(t, h.mustRun(t, "reset"), "Reset cancelled.")
	assert.Contains(t, h.mustRun(t, "income"), "Monthly income: 2000.00")

	assert.Contains(t, h.mustRun(t, "reset", "--force"), "All data reset.")
	assert.Contains(t, h.mustRun(t, "income"), "No monthly income set.")
}

func TestCLI_OwnersAreSeparate(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "--owner", "alice", "income", "2000")

	assert.Contains(t, h.mustRun(t, "--owner", "bob", "income"), "No monthly income set.")
	assert.Contains(t, h.mustRun(t, "--owner", "alice", "income"), "2000.00")
}

func TestCLI_EnvironmentConfiguresOwner(t *testing.T) {
	h := newHarness(t)
	t.Setenv("PLANNER_OWNER", "carol")
	h.mustRun(t, "income", "1500")

	t.Setenv("PLANNER_OWNER", "dave")
	assert.Contains(t, h.mustRun(t, "income"), "No monthly income set.")
}

func TestCLI_RedisCache(t *testing.T) {
	server := miniredis.RunT(t)
	h := newHarness(t)
	h.extra = []string{"--redis-url", "redis://" + server.Addr() + "/0"}

	h.mustRun(t, "income", "2000")

	assert.True(t, server.Exists("finance_app_data:local"))
	assert.Contains(t, h.mustRun(t, "income"), "2000.00")
}

func TestCLI_Insights(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "income", "2000")
	h.mustRun(t, "budget", "set", "groceries", "--limit", "100")
	h.mustRun(t, "tx", "add", "expense", "150", "groceries", "--date", "2024-05-02")

	assert.Contains(t, h.mustRun(t, "insights", "budget-vs-actual"), "1 over budget")
	assert.Contains(t, h.mustRun(t, "insights", "breakdown", "--month", "2024-05"), "150.00")
	assert.Contains(t, h.mustRun(t, "insights", "allocation"), "Allocation for 2024-05")
	assert.Contains(t, h.mustRun(t, "insights", "comparison"), "Income")
}
