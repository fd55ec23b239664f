package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcspirits/spirits-api/internal/config"
	"github.com/arcspirits/spirits-api/internal/entities/spirits"
	"github.com/arcspirits/spirits-api/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "localhost:6379", cfg.Redis.Endpoint)
	assert.Equal(t, 100_000, cfg.Simulation.MaxIterations)
	assert.Len(t, cfg.Rarities, 5)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", `
server:
  addr: ":9090"
redis:
  endpoint: "redis.internal:6379"
simulation:
  max_iterations: 5000
  result_ttl: 10m
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Endpoint)
	assert.Equal(t, 5000, cfg.Simulation.MaxIterations)
	assert.Equal(t, 10*time.Minute, cfg.Simulation.ResultTTL)
	// Untouched sections keep defaults.
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestLoadRejectsBadRarities(t *testing.T) {
	path := writeFile(t, "config.yaml", `
rarities:
  - rarity: shiny
    copies: 4
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRarityFile(t *testing.T) {
	path := writeFile(t, "rarities.yaml", `
rarities:
  - rarity: common
    copies: 10
    min_cost: 1
    max_cost: 3
  - rarity: mythic
    copies: 1
    min_cost: 9
    max_cost: 12
`)

	rarities, err := config.LoadRarityFile(path)
	require.NoError(t, err)
	require.Len(t, rarities, 2)
	assert.Equal(t, spirits.RarityCommon, rarities[0].Rarity)
	assert.Equal(t, 10, rarities[0].Copies)
}

func TestLoadRarityFileEmpty(t *testing.T) {
	path := writeFile(t, "rarities.yaml", "rarities: []\n")
	_, err := config.LoadRarityFile(path)
	assert.True(t, errors.IsInvalidArgument(err))
}
