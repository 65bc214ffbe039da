package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpListsFormatVariables(t *testing.T) {
	help := envHelp()

	for _, v := range []string{"{status}", "{minutes}", "{total_seconds}", "{remaining_sign}"} {
		assert.Contains(t, help, v)
	}

	assert.Contains(t, help, "JTRAVAIL_DARK_THEME")
}
