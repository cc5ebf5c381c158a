package driver

import (
	"os"
	"os/exec"

	"loomc/plan"
	"loomc/report"
)

// imageForKind names the standalone tool image a non-batch driver kind
// delegates to: the core never implements the interactive REPL, the
// frontend, or the module-wrap tool itself.
func imageForKind(kind plan.DriverKind) string {
	switch kind {
	case plan.DriverInteractive:
		return "loom"
	case plan.DriverFrontend:
		return "loom-frontend"
	case plan.DriverModuleWrap:
		return "loom-modulewrap"
	default:
		return "loom"
	}
}

// Delegate execs the tool image for a non-compiler driver kind with the
// original argv tail, inheriting the current process's standard streams,
// and returns its exit code.
func Delegate(kind plan.DriverKind, argvTail []string) int {
	image := imageForKind(kind)

	cmd := exec.Command(image, argvTail...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode()
		}
		report.UserError("failed to launch %s: %s", image, err)
		return 1
	}

	return 0
}
