package resource

import (
	"os"
	"testing"
)

const (
	// UnitTest refers to the environment variable that needs to be set
	// for unit tests to run.
	UnitTest = "FIELDSIGNALS_RESOURCE_UNIT_TEST"
	// Database refers to the environment variable that needs to be set
	// for tests to run against a real Postgres database instead of the
	// in-memory SQLite fallback.
	Database = "FIELDSIGNALS_RESOURCE_DATABASE"

	stSkipReason = "Skipping test because environment variable %s is not set."
)

// Require checks if all the given environment variables ("envVars") are
// set and if one is not set it will skip the test ("t").
func Require(t testing.TB, envVars ...string) {
	for _, envVar := range envVars {
		if _, c := os.LookupEnv(envVar); !c {
			t.Skipf(stSkipReason, envVar)
			return
		}
	}
}
