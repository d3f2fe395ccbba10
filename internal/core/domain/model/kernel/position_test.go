package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

func TestNewPosition(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z int
		wantErr bool
	}{
		{name: "origin", x: 0, y: 0, z: 0},
		{name: "inside", x: 4, y: 2, z: 1},
		{name: "negative x", x: -1, y: 0, z: 0, wantErr: true},
		{name: "negative y", x: 0, y: -1, z: 0, wantErr: true},
		{name: "negative z", x: 0, y: 0, z: -3, wantErr: true},
		{name: "all negative", x: -1, y: -1, z: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := kernel.NewPosition(tt.x, tt.y, tt.z)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrPosition)
				assert.Error(t, pos.Validate())
				return
			}

			require.NoError(t, err)
			require.NoError(t, pos.Validate())
			assert.Equal(t, tt.x, pos.X())
			assert.Equal(t, tt.y, pos.Y())
			assert.Equal(t, tt.z, pos.Z())
		})
	}
}

func TestNewPosition_ReportsEveryCoordinate(t *testing.T) {
	_, err := kernel.NewPosition(-1, 0, -2)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "x coordinate -1")
	assert.Contains(t, err.Error(), "z coordinate -2")
	assert.NotContains(t, err.Error(), "y coordinate")
}

func TestPosition_IsEqual(t *testing.T) {
	t.Run("same coordinates", func(t *testing.T) {
		equal, err := kernel.MustNewPosition(1, 2, 3).IsEqual(kernel.MustNewPosition(1, 2, 3))

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different coordinates", func(t *testing.T) {
		equal, err := kernel.MustNewPosition(1, 2, 3).IsEqual(kernel.MustNewPosition(3, 2, 1))

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("zero value", func(t *testing.T) {
		_, err := kernel.MustNewPosition(1, 2, 3).IsEqual(kernel.Position{})

		assert.ErrorIs(t, err, kernel.ErrPositionIsNotConstructed)
	})
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "Position(4,0,1)", kernel.MustNewPosition(4, 0, 1).String())
}

func TestMustNewPosition_Panics(t *testing.T) {
	assert.Panics(t, func() { kernel.MustNewPosition(-1, 0, 0) })
}
