package buildrecord

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"

	"loomc/plan"
	"loomc/report"
)

// Store locates, loads, admits, and writes the persisted build record for
// one driver run.
type Store struct {
	Path string
}

// Locate implements the location rule: the build-record path is the
// existing output of type FileSwiftDeps registered under the whole-module
// sentinel key. If the map is absent or has no such entry, incremental
// compilation is disabled and a warning is emitted.
func Locate(ofm *plan.OutputFileMap) (*Store, bool) {
	if ofm == nil {
		report.Warning("incremental compilation requires a build-record entry in the output file map")
		return nil, false
	}

	path, ok := ofm.WholeModuleOutput(plan.FileSwiftDeps)
	if !ok {
		report.Warning("incremental compilation requires a build-record entry in the output file map")
		return nil, false
	}

	return &Store{Path: path}, true
}

// AdmitResult is the outcome of checking a previously loaded record against
// the current run.
type AdmitResult struct {
	Admitted bool
	Reason   string
}

// Load reads and parses the build record at s.Path. A missing file is not
// an error — it simply means there is no prior build to compare against.
func (s *Store) Load() (*Record, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unreadable build record: %w", err)
	}

	rec := &Record{}
	if err := toml.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("malformed build record: %w", err)
	}

	return rec, nil
}

// Admit implements the admit/reject rule. A nil prior record (no prior
// build) is always admitted; the driver treats that as "nothing to
// compare," not as a rejection.
func Admit(prior *Record, toolVersion, currentArgsHash string) AdmitResult {
	if prior == nil {
		return AdmitResult{Admitted: true}
	}

	if prior.ToolVersion != toolVersion {
		return AdmitResult{Reason: "compiler version mismatch"}
	}

	if prior.ArgsHash != "" && prior.ArgsHash != currentArgsHash {
		return AdmitResult{Reason: "different arguments"}
	}

	return AdmitResult{Admitted: true}
}

// Write implements the write rule: best-effort rename of the existing
// record to "<name>~", then an atomic write of the new record. A failed
// rename is ignored; a failed write is a warning, not a build failure.
func (s *Store) Write(rec *Record) {
	_ = os.Rename(s.Path, s.Path+"~")

	data, err := toml.Marshal(rec)
	if err != nil {
		report.Warning("failed to serialize build record: %s", err)
		return
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		report.Warning("failed to write build record: %s", err)
		return
	}

	if err := os.Rename(tmp, s.Path); err != nil {
		report.Warning("failed to finalize build record: %s", err)
	}
}
