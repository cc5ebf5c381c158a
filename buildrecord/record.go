// Package buildrecord implements the BuildRecordStore: it locates the
// persisted build record, computes the current run's incremental-affecting
// options hash, and decides whether a prior record may be trusted for an
// incremental build.
package buildrecord

import "time"

// JobOutcome is the recorded result of one frontend invocation from a prior
// build.
type JobOutcome struct {
	Input    string `toml:"input"`
	Succeeded bool  `toml:"succeeded"`
}

// Record is the persisted summary of a build, serialized as TOML.
type Record struct {
	ToolVersion string `toml:"tool-version"`
	ArgsHash    string `toml:"args-hash"`
	BuildStartedAt time.Time `toml:"build-started-at"`
	// InputModTimes maps an input's file reference to the modification
	// time the driver observed for it at the start of this build.
	InputModTimes map[string]time.Time `toml:"input-mod-times"`
	SkippedInputs []string             `toml:"skipped-inputs"`
	JobOutcomes   []JobOutcome         `toml:"job-outcomes"`
}

// New creates an empty record stamped with the given tool version and args
// hash, ready to accumulate job outcomes as a build proceeds.
func New(toolVersion, argsHash string, startedAt time.Time) *Record {
	return &Record{
		ToolVersion:    toolVersion,
		ArgsHash:       argsHash,
		BuildStartedAt: startedAt,
		InputModTimes:  make(map[string]time.Time),
	}
}

// RecordJob appends one job outcome, in completion order.
func (r *Record) RecordJob(input string, succeeded bool) {
	r.JobOutcomes = append(r.JobOutcomes, JobOutcome{Input: input, Succeeded: succeeded})
}
