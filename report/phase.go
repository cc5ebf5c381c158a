package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// waveSpinner tracks the currently running wave's progress display.  Only
// one wave is ever in flight at a time (the core is single-threaded), so a
// single package-level spinner is sufficient.
var (
	waveSpinner    *pterm.SpinnerPrinter
	currentWave    string
	waveStartTime  time.Time
)

const maxWaveNameLen = len("second wave")

// BeginWave displays the start of an incremental-build wave (e.g. "first
// wave", "second wave").  It is a no-op below the verbose log level.
func BeginWave(name string) {
	r := ensureActive()
	if r.level < LevelVerbose {
		return
	}

	currentWave = name
	waveStartTime = time.Now()

	waveSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(infoColorFG))
	waveSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: infoStyleBG, Text: "done"},
	}
	waveSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: errorStyleBG, Text: "fail"},
	}

	waveSpinner.Start(pad(name) + "...")
}

// EndWave displays the end of the current wave and how many inputs it
// scheduled.
func EndWave(scheduled int) {
	if waveSpinner == nil {
		return
	}

	waveSpinner.Success(fmt.Sprintf("%s(%d scheduled, %.3fs)", pad(currentWave), scheduled, time.Since(waveStartTime).Seconds()))
	waveSpinner = nil
}

func pad(name string) string {
	if n := maxWaveNameLen - len(name); n > 0 {
		return name + strings.Repeat(" ", n)
	}
	return name
}
