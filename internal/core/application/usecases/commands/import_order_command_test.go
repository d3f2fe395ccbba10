package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImportOrderCommand(t *testing.T) {
	cmd, err := commands.NewImportOrderCommand([]byte("id: 1"))

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, []byte("id: 1"), cmd.Document())
}

func TestNewImportOrderCommand_EmptyDocument(t *testing.T) {
	_, err := commands.NewImportOrderCommand(nil)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestImportOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.ImportOrderCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrImportOrderCommandIsNotConstructed)
}
