package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Rana718/clothseed/internal/config"
	"github.com/Rana718/clothseed/internal/database"
	"github.com/Rana718/clothseed/template"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args from an empty working
// directory, clearing state left by earlier runs.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	return runCLIWithEnv(t, nil, args...)
}

// runCLIWithEnv is runCLI with extra environment variables. DATABASE_URL is
// cleared unless env sets it.
func runCLIWithEnv(t *testing.T, env map[string]string, args ...string) error {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("DATABASE_URL", "")
	for k, v := range env {
		t.Setenv(k, v)
	}

	viper.Reset()
	configErr = nil
	cfgFile = ""
	resetFlags(rootCmd.PersistentFlags())
	resetFlags(seedCmd.Flags())
	resetFlags(initCmd.Flags())

	RegisterBaseCommands()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func catalogFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shop.sqlite")

	adapter, err := database.Open(context.Background(), "sqlite", path)
	require.NoError(t, err)
	defer adapter.Close()

	ddl := template.NewProjectTemplate(template.SQLite).GetSchema(config.Default().Tables)
	_, err = adapter.Session().ExecContext(context.Background(), ddl)
	require.NoError(t, err)
	return path
}

func tableCount(t *testing.T, path, table string) int {
	t.Helper()
	adapter, err := database.Open(context.Background(), "sqlite", path)
	require.NoError(t, err)
	defer adapter.Close()

	rows, err := adapter.Session().QueryContext(context.Background(), "SELECT COUNT(*) FROM "+adapter.QuoteIdent(table))
	require.NoError(t, err)
	defer rows.Close()

	var n int
	require.True(t, rows.Next())
	require.NoError(t, rows.Scan(&n))
	return n
}
