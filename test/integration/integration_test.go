//go:build integration

// Package integration runs the Gherkin features under features/ against the
// full HTTP stack backed by in-memory SQLite, miniredis and a Resend double.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/finance-tracker/planner/test/integration/steps"
)

func godogOptions(t *testing.T) *godog.Options {
	format := os.Getenv("GODOG_FORMAT")
	if format == "" {
		format = "pretty"
	}
	return &godog.Options{
		Format:   format,
		Paths:    []string{"features"},
		Output:   colors.Colored(os.Stdout),
		Tags:     os.Getenv("GODOG_TAGS"),
		Strict:   true,
		TestingT: t,
		// scenarios share one database
		Concurrency: 1,
	}
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                 "budget-planner",
		TestSuiteInitializer: steps.InitializeTestSuite,
		ScenarioInitializer:  steps.InitializeScenario,
		Options:              godogOptions(t),
	}

	if status := suite.Run(); status != 0 {
		t.Fatalf("feature run failed with status %d", status)
	}
}
