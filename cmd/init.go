package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Rana718/clothseed/internal/config"
	"github.com/Rana718/clothseed/template"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	sqliteFlag     bool
	postgresqlFlag bool
	mysqlFlag      bool
	initForce      bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config, .env example and catalog schema",
	Long: `Write clothseed.config.yaml, .env.example and db/schema.sql for the chosen
database. The schema file is only written, never applied: create the tables
with your usual tooling before running "clothseed seed".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbType := template.MySQL
		flagCount := 0

		if sqliteFlag {
			dbType = template.SQLite
			flagCount++
		}
		if postgresqlFlag {
			dbType = template.PostgreSQL
			flagCount++
		}
		if mysqlFlag {
			dbType = template.MySQL
			flagCount++
		}

		if flagCount > 1 {
			return fmt.Errorf("please specify only one database type (--sqlite, --postgresql, or --mysql)")
		}

		return initializeProject(dbType, initForce)
	},
}

func init() {
	initCmd.Flags().BoolVar(&sqliteFlag, "sqlite", false, "Initialize for a SQLite database")
	initCmd.Flags().BoolVar(&postgresqlFlag, "postgresql", false, "Initialize for a PostgreSQL database")
	initCmd.Flags().BoolVar(&mysqlFlag, "mysql", false, "Initialize for a MySQL database (default)")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing files")
}

func initializeProject(dbType template.DatabaseType, force bool) error {
	tmpl := template.NewProjectTemplate(dbType)

	if !force {
		if _, err := os.Stat(template.ConfigFile); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", template.ConfigFile)
		}
	}

	for _, dir := range tmpl.GetDirectoryStructure() {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	cfgYAML, err := tmpl.GetConfig()
	if err != nil {
		return err
	}

	files := map[string]string{
		template.ConfigFile: cfgYAML,
		template.EnvFile:    tmpl.GetEnvTemplate(),
		template.SchemaFile: tmpl.GetSchema(config.Default().Tables),
	}

	for _, name := range []string{template.ConfigFile, template.EnvFile, template.SchemaFile} {
		if err := os.WriteFile(filepath.Clean(name), []byte(files[name]), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		color.Green("✅ Created %s", name)
	}

	fmt.Println()
	color.Cyan("📋 Next steps:")
	fmt.Printf("   1. Apply %s to your %s database\n", template.SchemaFile, dbType)
	fmt.Printf("   2. Edit %s (or set DATABASE_URL in .env)\n", template.ConfigFile)
	fmt.Println("   3. Run: clothseed seed")
	return nil
}
