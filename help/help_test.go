package help

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"loomc/options"
)

func TestRenderDoesNotPanicForVisibleHelp(t *testing.T) {
	table := options.New()
	assert.NotPanics(t, func() {
		Render(table, false)
	})
}

func TestRenderDoesNotPanicForHiddenHelp(t *testing.T) {
	table := options.New()
	assert.NotPanics(t, func() {
		Render(table, true)
	})
}
