package driver

import (
	"bytes"
	"os"
	"os/exec"

	"loomc/plan"
	"loomc/report"
)

// frontendImageName is the binary the default JobExecutor execs for every
// compile job. It is a separate tool image, not a function call into this
// package, matching the real driver/frontend process boundary.
const frontendImageName = "loom-frontend"

// JobExecutor runs one frontend compile job for an input and reports its
// dependency summary and outcome. A distributed or cached job executor is
// out of scope for this core; this interface is the seam the driver calls
// through, and processJobExecutor is the default, process-based
// implementation of it.
type JobExecutor interface {
	RunJob(input plan.InputFile, cp *plan.CompilationPlan) (summary []byte, succeeded bool)
}

type processJobExecutor struct{}

func newProcessJobExecutor() JobExecutor {
	return processJobExecutor{}
}

func (processJobExecutor) RunJob(input plan.InputFile, cp *plan.CompilationPlan) ([]byte, bool) {
	cmd := exec.Command(frontendImageName, "-frontend", "-c", input.Reference)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		report.Warning("frontend job for %s failed: %s", input.Reference, err)
		return nil, false
	}

	return stdout.Bytes(), true
}
