package cli

import (
	"context"
	"testing"
	"time"

	"github.com/safedep/gauge/core/progress"
	"github.com/safedep/gauge/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriveBar(t *testing.T, current float64) (*progress.Bar, *tui.LineBuffer) {
	t.Helper()

	buf := tui.NewLineBuffer(false)
	bar, err := progress.New(10,
		progress.WithFormat("$(current)"),
		progress.WithCurrent(current),
		progress.WithOutput(buf),
	)
	require.NoError(t, err)
	return bar, buf
}

func TestDrive_Decreasing(t *testing.T) {
	bar, buf := newDriveBar(t, 3)

	err := drive(context.Background(), bar, 0, -2, time.Millisecond)
	require.NoError(t, err)

	assert.Equal(t, 0.0, bar.Current())
	assert.Equal(t, 3, buf.Count())
	assert.Equal(t, "0", buf.Last())
}

func TestDrive_AlreadyArrived(t *testing.T) {
	bar, buf := newDriveBar(t, 10)

	err := drive(context.Background(), bar, 10, 1, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 1, buf.Count())
}

func TestDrive_Cancelled(t *testing.T) {
	bar, buf := newDriveBar(t, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := drive(ctx, bar, 10, 1, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, buf.Count())
	assert.Equal(t, 0.0, bar.Current())
}

func TestArrived(t *testing.T) {
	assert.True(t, arrived(10, 10, 1))
	assert.False(t, arrived(9, 10, 1))
	assert.True(t, arrived(3, 3, -1))
	assert.False(t, arrived(4, 3, -1))
	assert.True(t, arrived(0, -5, -1))
}
