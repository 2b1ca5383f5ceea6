//go:build integration

// Package integration runs the HTTP feature scenarios against the fully wired API.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/finai/backend/test/integration/steps"
)

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// TestFeatures runs every scenario under features/.
// GODOG_TAGS narrows the run, GODOG_FORMAT switches the reporter.
func TestFeatures(t *testing.T) {
	opts := godog.Options{
		Format:      envOr("GODOG_FORMAT", "pretty"),
		Paths:       []string{"features"},
		Output:      colors.Colored(os.Stdout),
		Tags:        os.Getenv("GODOG_TAGS"),
		Concurrency: 1, // scenarios share one database, one redis and the report file
		Strict:      true,
		TestingT:    t,
	}

	suite := godog.TestSuite{
		Name:                 "finai-api",
		ScenarioInitializer:  steps.InitializeScenario,
		TestSuiteInitializer: steps.InitializeTestSuite,
		Options:              &opts,
	}

	if status := suite.Run(); status != 0 {
		t.Fatalf("feature suite failed with status %d", status)
	}
}
