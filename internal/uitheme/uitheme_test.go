package uitheme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codr1/careerbuilder/internal/models"
	"github.com/codr1/careerbuilder/internal/snapshot"
	"github.com/codr1/careerbuilder/internal/storage"
	"github.com/codr1/careerbuilder/internal/testutil"
)

func TestParseMode(t *testing.T) {
	assert.Equal(t, Dark, ParseMode("dark"))
	assert.Equal(t, Light, ParseMode("light"))
	assert.Equal(t, System, ParseMode("system"))
	assert.Equal(t, System, ParseMode("sepia"))
	assert.Equal(t, System, ParseMode(""))
	assert.Equal(t, "cb-chrome-dark", Dark.ChromeClass())
	assert.Equal(t, "cb-chrome-system", Mode("sepia").ChromeClass())
}

func TestDarkSurvivesReload(t *testing.T) {
	ctx := context.Background()
	local := storage.NewLocalStore(testutil.NewTestDB(t))

	state := models.DefaultBuilderState()
	encoded, err := snapshot.Encode(state)
	require.NoError(t, err)
	require.NoError(t, local.Set(ctx, storage.KeyLiveState, string(encoded)))

	first := NewContext(local)
	mode, err := first.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, System, mode)
	require.NoError(t, first.Set(ctx, Dark))

	reloaded := NewContext(local)
	mode, err = reloaded.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Dark, mode)

	stored, ok, err := local.Get(ctx, storage.KeyLiveState)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, string(encoded), stored, "page snapshot is untouched")
}

func TestSetRejectsInvalidMode(t *testing.T) {
	c := NewContext(storage.NewLocalStore(testutil.NewTestDB(t)))
	err := c.Set(context.Background(), "sepia")
	assert.ErrorIs(t, err, ErrInvalidMode)
	assert.Equal(t, System, c.Mode())
}

func TestStoredGarbageFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	local := storage.NewLocalStore(testutil.NewTestDB(t))
	require.NoError(t, local.Set(ctx, storage.KeyUITheme, "neon"))

	mode, err := NewContext(local).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, System, mode)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	local := storage.NewLocalStore(testutil.NewTestDB(t))
	c := NewContext(local)
	require.NoError(t, c.Set(ctx, Light))

	require.NoError(t, c.Reset(ctx))
	assert.Equal(t, System, c.Mode())

	mode, err := NewContext(local).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, System, mode)
}
