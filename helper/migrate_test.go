package helper_test

import (
	"testing"
	"tourdesk/config"
	"tourdesk/helper"

	"github.com/stretchr/testify/assert"
)

func TestActions(t *testing.T) {
	assert.Equal(t, []string{"down", "drop", "step-up", "up"}, helper.Actions())
}

func TestRunnerUnknownAction(t *testing.T) {
	err := helper.Runner(&config.Config{}, "sideways")
	assert.ErrorIs(t, err, helper.ErrUnknownAction)
}
