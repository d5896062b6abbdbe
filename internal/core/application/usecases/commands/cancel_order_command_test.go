package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordermanagement/internal/core/application/usecases/commands"
)

func TestNewCancelOrderCommand(t *testing.T) {
	cmd := commands.NewCancelOrderCommand("ORD-20240315-ABCDEF12", "Found a better price elsewhere")

	require.NoError(t, cmd.Validate())
	assert.Equal(t, "ORD-20240315-ABCDEF12", cmd.OrderNumber())
	assert.Equal(t, "Found a better price elsewhere", cmd.Reason())
}

func TestCancelOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CancelOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
}
