package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Rana718/clothseed/internal/database"
	"github.com/stretchr/testify/require"
)

func TestSeedCommandSQLite(t *testing.T) {
	path := catalogFile(t)

	err := runCLI(t, "seed", "--provider", "sqlite", "-d", path, "-n", "5", "-b", "2", "--seed", "7")
	require.NoError(t, err)

	require.Equal(t, 5, tableCount(t, path, "Products"))
	images := tableCount(t, path, "Product_Images")
	require.GreaterOrEqual(t, images, 10)
	require.LessOrEqual(t, images, 20)
	variants := tableCount(t, path, "Product_Variants")
	require.GreaterOrEqual(t, variants, 5)
	require.LessOrEqual(t, variants, 15)
}

func TestSeedCommandTruncateReplacesRows(t *testing.T) {
	path := catalogFile(t)

	require.NoError(t, runCLI(t, "seed", "--provider", "sqlite", "-d", path, "-n", "4"))
	require.NoError(t, runCLI(t, "seed", "--provider", "sqlite", "-d", path, "-n", "3", "--truncate"))

	require.Equal(t, 3, tableCount(t, path, "Products"))
}

func TestSeedCommandConnectionFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "shop.sqlite")

	err := runCLI(t, "seed", "--provider", "sqlite", "-d", missing)
	require.Error(t, err)

	var connErr *database.ConnectionError
	require.True(t, errors.As(err, &connErr), "expected ConnectionError, got %v", err)
}

func TestSeedCommandMissingTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.sqlite")

	err := runCLI(t, "seed", "--provider", "sqlite", "-d", path, "-n", "2")
	require.Error(t, err)
	require.Contains(t, err.Error(), "seeding stopped")
}

func TestSeedCommandRejectsBadConfig(t *testing.T) {
	err := runCLI(t, "seed", "--provider", "oracle")
	require.ErrorContains(t, err, "unsupported database provider")
}

func TestSeedCommandExplicitConfigMissing(t *testing.T) {
	err := runCLI(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "seed")
	require.ErrorContains(t, err, "failed to read config file")
}

func TestSeedCommandDatabaseFlagBeatsDatabaseURL(t *testing.T) {
	envDB := catalogFile(t)
	flagDB := catalogFile(t)

	err := runCLIWithEnv(t, map[string]string{"DATABASE_URL": envDB},
		"seed", "--provider", "sqlite", "-d", flagDB, "-n", "3")
	require.NoError(t, err)

	require.Equal(t, 3, tableCount(t, flagDB, "Products"))
	require.Equal(t, 0, tableCount(t, envDB, "Products"))
}

func TestSeedCommandUsesDatabaseURLWithoutConnectionFlags(t *testing.T) {
	envDB := catalogFile(t)

	err := runCLIWithEnv(t, map[string]string{
		"DATABASE_URL":                envDB,
		"CLOTHSEED_SEED_RECORD_COUNT": "2",
	}, "seed", "--provider", "sqlite")
	require.NoError(t, err)

	require.Equal(t, 2, tableCount(t, envDB, "Products"))
}

func TestSeedCommandEnvTableNames(t *testing.T) {
	path := catalogFile(t)

	err := runCLIWithEnv(t, map[string]string{"CLOTHSEED_TABLES_PRODUCTS": "Missing_Products"},
		"seed", "--provider", "sqlite", "-d", path, "-n", "2")
	require.ErrorContains(t, err, "Missing_Products")

	require.Equal(t, 0, tableCount(t, path, "Products"))
}
