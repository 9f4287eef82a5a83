// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/sxarconv/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{Dir: t.TempDir(), MaxResults: 20})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	records := []types.ConversionRecord{
		{InputPath: "one.zip", OutputPath: "one.sxar", Files: 2, Bytes: 100,
			Status: types.ConversionDone, Engine: types.EngineBuiltin, CreatedAt: base},
		{InputPath: "two.zip", OutputPath: "two.sxar",
			Status: types.ConversionFailed, Engine: "zip-to-sxar", CreatedAt: base.Add(time.Minute)},
		{InputPath: "three.zip", OutputPath: "three.sxar", Files: 5, Bytes: 900,
			Status: types.ConversionDone, Engine: types.EngineBuiltin, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, rec := range records {
		require.NoError(t, s.Record(ctx, rec))
	}

	got, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first.
	assert.Equal(t, "three.zip", got[0].InputPath)
	assert.Equal(t, "two.zip", got[1].InputPath)
	assert.Equal(t, types.ConversionDone, got[0].Status)
	assert.Equal(t, types.ConversionFailed, got[1].Status)
	assert.Equal(t, "zip-to-sxar", got[1].Engine)
	assert.Equal(t, 5, got[0].Files)
	assert.Equal(t, int64(900), got[0].Bytes)
	assert.True(t, got[0].CreatedAt.Equal(base.Add(2*time.Minute)))
}

func TestRecentDefaultLimit(t *testing.T) {
	s, err := NewStore(types.HistoryConfig{Dir: t.TempDir(), MaxResults: 2})
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Record(ctx, types.ConversionRecord{
			InputPath: "a.zip", Status: types.ConversionDone, Engine: types.EngineBuiltin,
		}))
	}

	got, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRecordFillsTimestamp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, types.ConversionRecord{
		InputPath: "a.zip", Status: types.ConversionDone, Engine: types.EngineBuiltin,
	}))

	got, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestStoreReopens(t *testing.T) {
	dir := t.TempDir()
	cfg := types.HistoryConfig{Dir: dir}

	s, err := NewStore(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Record(context.Background(), types.ConversionRecord{
		InputPath: "persist.zip", Status: types.ConversionDone, Engine: types.EngineBuiltin,
	}))
	require.NoError(t, s.Close())

	s2, err := NewStore(cfg)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "persist.zip", got[0].InputPath)

	_, err = os.Stat(filepath.Join(dir, "history.db"))
	assert.NoError(t, err)
}
