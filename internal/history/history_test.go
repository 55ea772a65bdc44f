package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Record("ㄓㄨㄥ", "zhong1", "dachen"))
	require.NoError(t, s.Record("ㄍㄨㄛˊ", "guo2", "dachen"))

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "ㄍㄨㄛˊ", entries[0].Reading)
	assert.Equal(t, "guo2", entries[0].Pinyin)
	assert.Equal(t, "ㄓㄨㄥ", entries[1].Reading)
	assert.False(t, entries[0].TypedAt.IsZero())
}

func TestTopCounts(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Record("ㄉㄜ˙", "de5", "dachen"))
	}
	require.NoError(t, s.Record("ㄓㄨㄥ", "zhong1", "dachen"))

	top, err := s.Top(5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "ㄉㄜ˙", top[0].Reading)
	assert.EqualValues(t, 3, top[0].Count)

	total, err := s.Total()
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
}

func TestRecentLimit(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record("ㄇㄚ", "ma1", "hsu"))
	}
	entries, err := s.Recent(2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
