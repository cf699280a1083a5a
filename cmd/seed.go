package cmd

import (
	"fmt"

	"github.com/Rana718/clothseed/internal/config"
	"github.com/Rana718/clothseed/internal/database"
	"github.com/Rana718/clothseed/internal/seeder"
	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// seedFlags maps seed command flags to config keys.
var seedFlags = map[string]string{
	"provider": "database.provider",
	"host":     "database.host",
	"port":     "database.port",
	"user":     "database.user",
	"password": "database.password",
	"database": "database.name",
	"sslmode":  "database.sslmode",
	"count":    "seed.record_count",
	"batch":    "seed.batch_size",
	"seed":     "seed.rand_seed",
	"truncate": "seed.truncate",
}

// connectionFlags name the target database explicitly. When any of them is
// set, the URL in the environment is not used.
var connectionFlags = []string{"host", "port", "user", "password", "database", "sslmode"}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate and insert synthetic products, images and variants",
	Long: `Generate fake products and insert them in batches, read back their ids,
then generate and insert 2-4 images and 1-3 variants per product.

Each batch is committed on its own. On the first error the current batch is
rolled back and the run stops; batches committed before it are kept.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		for flag, key := range seedFlags {
			if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", flag, err)
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		return runSeed(cmd, cfg)
	},
}

func explicitConnection(cmd *cobra.Command) bool {
	for _, name := range connectionFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// connectionTarget picks the DSN and the label shown to the user.
func connectionTarget(cmd *cobra.Command, cfg *config.Config) (dsn, target string) {
	if !explicitConnection(cmd) {
		if dbURL, ok := cfg.EnvURL(); ok {
			return dbURL, "from $" + cfg.Database.URLEnv
		}
	}
	return cfg.DiscreteDSN(), cfg.Database.Name
}

func runSeed(cmd *cobra.Command, cfg *config.Config) error {
	ctx := cmd.Context()
	dsn, target := connectionTarget(cmd, cfg)

	log.Debug().
		Str("provider", cfg.Database.Provider).
		Str("host", cfg.Database.Host).
		Str("target", target).
		Int("record_count", cfg.Seed.RecordCount).
		Int("batch_size", cfg.Seed.BatchSize).
		Msg("connecting")

	adapter, err := database.Open(ctx, cfg.Database.Provider, dsn)
	if err != nil {
		return err
	}
	defer func() {
		if err := adapter.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close database session")
		}
	}()
	color.Cyan("🔗 Connected to %s database %s", adapter.Provider(), target)

	s := seeder.NewSeeder(adapter, seeder.SeedConfig{
		Count:    cfg.Seed.RecordCount,
		Batch:    cfg.Seed.BatchSize,
		RandSeed: cfg.Seed.RandSeed,
		Truncate: cfg.Seed.Truncate,
		Tables: seeder.TableNames{
			Products: cfg.Tables.Products,
			Images:   cfg.Tables.Images,
			Variants: cfg.Tables.Variants,
		},
	})

	summary, err := s.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seeding stopped: %w", err)
	}

	color.White("   %s: %d, %s: %d, %s: %d",
		cfg.Tables.Products, summary.Products,
		cfg.Tables.Images, summary.Images,
		cfg.Tables.Variants, summary.Variants)
	return nil
}

func init() {
	f := seedCmd.Flags()
	f.String("provider", "", "Database provider: mysql, postgresql or sqlite (default mysql)")
	f.String("host", "", "Database host (default localhost)")
	f.Int("port", 0, "Database port (default depends on provider)")
	f.StringP("user", "u", "", "Database user")
	f.StringP("password", "p", "", "Database password")
	f.StringP("database", "d", "", "Database name, or file path for sqlite")
	f.String("sslmode", "", "PostgreSQL sslmode (default disable)")
	f.IntP("count", "n", 0, "Number of products to generate (default 100)")
	f.IntP("batch", "b", 0, "Rows per insert batch (default 100)")
	f.Int64("seed", 0, "Random seed for reproducible data (default: time based)")
	f.Bool("truncate", false, "Clear the catalog tables before seeding")
}
