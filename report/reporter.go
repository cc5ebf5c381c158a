// Package report is the driver's diagnostic engine: it classifies and
// renders the error kinds from the error-handling design (user-input
// errors, warnings, and defects) and owns the wave-progress display used
// while an incremental build is running.
package report

import (
	"fmt"
	"os"
	"sync"

	"github.com/pterm/pterm"
)

// Enumeration of the reporter's log levels, ordered least to most verbose.
const (
	LevelSilent  = iota // Displays no output at all.
	LevelError          // Displays only errors.
	LevelWarn           // Displays errors and warnings.
	LevelVerbose        // Displays errors, warnings, and progress (default).
)

// Reporter accumulates whether any user-input error has been reported and
// serializes all console output.  A single process-wide Reporter is shared
// by every package in the driver and is installed via Init; a reporting
// function called before Init installs a default Reporter at LevelVerbose.
type Reporter struct {
	mu       sync.Mutex
	level    int
	hadError bool
}

var active *Reporter

// exit is overridden in tests so a defect report doesn't kill the test
// binary.
var exit = os.Exit

// Init installs the global reporter at the given log level.  Calling it
// more than once resets the accumulated error state, which is useful
// between independent driver runs in the same process (e.g. tests).
func Init(level int) {
	active = &Reporter{level: level}
}

func ensureActive() *Reporter {
	if active == nil {
		active = &Reporter{level: LevelVerbose}
	}
	return active
}

// -----------------------------------------------------------------------------

// UserError reports a user-input error: invalid driver name, invalid option
// value, an incompatible combination of options, and the like.  It always
// prints regardless of log level, since user errors are the reason the
// build is stopping.
func UserError(format string, args ...interface{}) {
	r := ensureActive()
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hadError = true
	printErrorMessage("error", fmt.Sprintf(format, args...))
}

// Warning reports a non-fatal condition: a missing build-record entry, an
// unwritable build record, a malformed build record.  The build continues
// with incremental compilation disabled.
func Warning(format string, args ...interface{}) {
	r := ensureActive()
	if r.level >= LevelWarn {
		r.mu.Lock()
		defer r.mu.Unlock()

		printWarningMessage("warning", fmt.Sprintf(format, args...))
	}
}

// Remark reports an informational message visible only at the verbose log
// level: e.g. which inputs were force-recompiled because their prior
// summary was malformed.
func Remark(format string, args ...interface{}) {
	r := ensureActive()
	if r.level >= LevelVerbose {
		r.mu.Lock()
		defer r.mu.Unlock()

		printInfoMessage("remark", fmt.Sprintf(format, args...))
	}
}

// Defect reports an internal-error condition: a graph-invariant violation or
// an unhandled mode option.  These must never occur in a correct build; the
// process terminates immediately and unconditionally, regardless of log
// level.
func Defect(format string, args ...interface{}) {
	r := ensureActive()
	r.mu.Lock()
	msg := fmt.Sprintf(format, args...)
	r.mu.Unlock()

	fmt.Fprintf(os.Stderr, "internal driver error: %s\n", msg)
	exit(2)
}

// AnyErrors reports whether a user-input error has been reported since the
// last Init.
func AnyErrors() bool {
	return ensureActive().hadError
}

// -----------------------------------------------------------------------------

var (
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	errorColorFG = pterm.FgRed
	warnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	warnColorFG  = pterm.FgYellow
	infoStyleBG  = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	infoColorFG  = pterm.FgLightGreen
)

func printErrorMessage(tag, msg string) {
	errorStyleBG.Print(" " + tag + " ")
	errorColorFG.Println(" " + msg)
}

func printWarningMessage(tag, msg string) {
	warnStyleBG.Print(" " + tag + " ")
	warnColorFG.Println(" " + msg)
}

func printInfoMessage(tag, msg string) {
	infoStyleBG.Print(" " + tag + " ")
	infoColorFG.Println(" " + msg)
}
