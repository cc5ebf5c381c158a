package main

import (
	"os"

	"loomc/report"
)

// corePathEnvVar is the environment variable naming the root of the
// standard-library and runtime support tree.
const corePathEnvVar = "CORE_PATH"

// initCorePath validates CORE_PATH: the variable must be set and must name
// a directory. Either failure is a fatal user-input error, since nothing
// downstream can resolve the core module's standard-library sources
// without it.
func initCorePath() (string, bool) {
	corePath, ok := os.LookupEnv(corePathEnvVar)
	if !ok {
		report.UserError("missing %s environment variable", corePathEnvVar)
		return "", false
	}

	info, err := os.Stat(corePath)
	if err != nil {
		report.UserError("error loading %s: %s", corePathEnvVar, err)
		return "", false
	}

	if !info.IsDir() {
		report.UserError("error loading %s: must point to a directory", corePathEnvVar)
		return "", false
	}

	return corePath, true
}
