package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/arcspirits/spirits-api/internal/config"
	"github.com/arcspirits/spirits-api/internal/entities/spirits"
)

const rarityYAML = `
rarities:
  - rarity: common
    copies: 8
    min_cost: 1
    max_cost: 3
`

const rarityYAMLUpdated = `
rarities:
  - rarity: common
    copies: 12
    min_cost: 1
    max_cost: 3
  - rarity: rare
    copies: 6
    min_cost: 3
    max_cost: 5
`

func TestRarityWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rarities.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rarityYAML), 0o600))

	reloads := make(chan []spirits.RarityConfig, 4)
	watcher, err := config.NewRarityWatcher(path, zaptest.NewLogger(t), func(table []spirits.RarityConfig) {
		reloads <- table
	})
	require.NoError(t, err)
	watcher.Start()
	defer watcher.Stop()

	require.NoError(t, os.WriteFile(path, []byte(rarityYAMLUpdated), 0o600))

	select {
	case table := <-reloads:
		require.Len(t, table, 2)
		require.Equal(t, 12, table[0].Copies)
	case <-time.After(5 * time.Second):
		t.Fatal("reload never fired")
	}
}

func TestRarityWatcherKeepsTableOnBadEdit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rarities.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rarityYAML), 0o600))

	reloads := make(chan []spirits.RarityConfig, 4)
	watcher, err := config.NewRarityWatcher(path, zaptest.NewLogger(t), func(table []spirits.RarityConfig) {
		reloads <- table
	})
	require.NoError(t, err)
	watcher.Start()
	defer watcher.Stop()

	require.NoError(t, os.WriteFile(path, []byte("rarities: ["), 0o600))

	select {
	case <-reloads:
		t.Fatal("bad edit should not reach onChange")
	case <-time.After(1 * time.Second):
	}
}

func TestRarityWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rarities.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rarityYAML), 0o600))

	reloads := make(chan []spirits.RarityConfig, 4)
	watcher, err := config.NewRarityWatcher(path, zaptest.NewLogger(t), func(table []spirits.RarityConfig) {
		reloads <- table
	})
	require.NoError(t, err)
	watcher.Start()
	defer watcher.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o600))

	select {
	case <-reloads:
		t.Fatal("sibling file write should not trigger a reload")
	case <-time.After(1 * time.Second):
	}
}
