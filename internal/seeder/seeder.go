package seeder

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rana718/clothseed/internal/database"
	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
)

type Seeder struct {
	adapter    database.DatabaseAdapter
	generator  *DataGenerator
	writer     *BatchWriter
	graph      *DependencyGraph
	tables     map[string]*TableInfo
	seedConfig SeedConfig

	// ids holds the primary keys fetched per parent table during a run.
	ids map[string][]int64
}

// NewSeeder wires a connected adapter to a generator and batch writer.
// The caller owns the adapter and closes it.
func NewSeeder(adapter database.DatabaseAdapter, seedConfig SeedConfig) *Seeder {
	if seedConfig.Tables == (TableNames{}) {
		seedConfig.Tables = DefaultTableNames()
	}

	writer := NewBatchWriter(adapter, seedConfig.Batch)
	writer.OnProgress = func(table string, done, total int) {
		color.Green("  ✅ Inserted %d/%d rows into %s", done, total, table)
	}

	s := &Seeder{
		adapter:    adapter,
		generator:  NewDataGenerator(seedConfig.RandSeed),
		writer:     writer,
		graph:      NewDependencyGraph(),
		seedConfig: seedConfig,
	}
	s.tables = catalogTables(seedConfig.Tables)
	for _, name := range []string{seedConfig.Tables.Products, seedConfig.Tables.Images, seedConfig.Tables.Variants} {
		s.graph.AddTable(s.tables[name])
	}
	return s
}

func catalogTables(names TableNames) map[string]*TableInfo {
	return map[string]*TableInfo{
		names.Products: {
			Name:       names.Products,
			PrimaryKey: "product_id",
			Columns:    productColumns,
		},
		names.Images: {
			Name:         names.Images,
			PrimaryKey:   "image_id",
			Columns:      imageColumns,
			Dependencies: []string{names.Products},
		},
		names.Variants: {
			Name:         names.Variants,
			PrimaryKey:   "variant_id",
			Columns:      variantColumns,
			Dependencies: []string{names.Products},
		},
	}
}

// Generator exposes the data generator so callers can narrow its vocabularies.
func (s *Seeder) Generator() *DataGenerator {
	return s.generator
}

// Seed runs one stage per table in dependency order: products, then their
// images and variants. Each stage finishes before the next begins; the first
// error stops the run.
func (s *Seeder) Seed(ctx context.Context) (*Summary, error) {
	cfg := s.seedConfig
	if cfg.Count < 1 {
		return nil, fmt.Errorf("record count must be at least 1, got %d", cfg.Count)
	}
	if len(s.tables) != 3 {
		return nil, fmt.Errorf("table names must be distinct: %+v", cfg.Tables)
	}

	color.Cyan("🌱 Starting catalog seeding...")

	order, err := s.graph.BuildInsertionOrder()
	if err != nil {
		return nil, fmt.Errorf("failed to build insertion order: %w", err)
	}
	color.Cyan("📋 Insertion order: %s", strings.Join(order, " → "))
	fmt.Println()

	if cfg.Truncate {
		if err := s.truncateTables(ctx); err != nil {
			return nil, err
		}
	}

	summary := &Summary{}
	s.ids = make(map[string][]int64)
	stages := s.stages(summary)

	for _, tableName := range order {
		run, ok := stages[tableName]
		if !ok {
			return summary, fmt.Errorf("no seeding stage for table %s", tableName)
		}
		if err := run(ctx); err != nil {
			return summary, err
		}
	}

	color.Green("\n✅ Insertion complete.")
	return summary, nil
}

type stage func(ctx context.Context) error

func (s *Seeder) stages(summary *Summary) map[string]stage {
	names := s.seedConfig.Tables
	return map[string]stage{
		names.Products: func(ctx context.Context) (err error) {
			summary.Products, err = s.seedProducts(ctx)
			return err
		},
		names.Images: func(ctx context.Context) (err error) {
			summary.Images, err = s.seedImages(ctx)
			return err
		},
		names.Variants: func(ctx context.Context) (err error) {
			summary.Variants, err = s.seedVariants(ctx)
			return err
		},
	}
}

func (s *Seeder) seedProducts(ctx context.Context) (int, error) {
	table := s.tables[s.seedConfig.Tables.Products]
	count := s.seedConfig.Count

	color.Cyan("  📝 Inserting products (%d records)...", count)
	inserted, err := s.writer.Insert(ctx, table.Name, table.Columns, toRows(s.generator.Products(count)))
	if err != nil {
		return inserted, err
	}

	ids, err := FetchRecentIDs(ctx, s.adapter, table.Name, table.PrimaryKey, count)
	if err != nil {
		return inserted, err
	}
	log.Debug().Int("count", len(ids)).Int64("max_id", ids[0]).Msg("fetched product ids")

	s.ids[table.Name] = ids
	return inserted, nil
}

func (s *Seeder) seedImages(ctx context.Context) (int, error) {
	table := s.tables[s.seedConfig.Tables.Images]
	ids, err := s.parentIDs(table)
	if err != nil {
		return 0, err
	}

	color.Cyan("  📝 Inserting product images...")
	return s.writer.Insert(ctx, table.Name, table.Columns, toRows(s.generator.Images(ids)))
}

func (s *Seeder) seedVariants(ctx context.Context) (int, error) {
	table := s.tables[s.seedConfig.Tables.Variants]
	ids, err := s.parentIDs(table)
	if err != nil {
		return 0, err
	}

	color.Cyan("  📝 Inserting product variants...")
	variants, err := s.generator.Variants(ids)
	if err != nil {
		return 0, fmt.Errorf("failed to generate variants: %w", err)
	}
	return s.writer.Insert(ctx, table.Name, table.Columns, toRows(variants))
}

// parentIDs returns the ids fetched for the table's parent, which must have
// been seeded earlier in the run.
func (s *Seeder) parentIDs(table *TableInfo) ([]int64, error) {
	for _, dep := range table.Dependencies {
		if ids, ok := s.ids[dep]; ok {
			return ids, nil
		}
	}
	return nil, fmt.Errorf("%s: parent ids not available from %v", table.Name, table.Dependencies)
}

func (s *Seeder) truncateTables(ctx context.Context) error {
	color.Yellow("🗑️  Truncating tables...")

	for _, tableName := range s.graph.TruncationOrder() {
		if !isValidIdentifier(tableName) {
			return fmt.Errorf("invalid table name: %s", tableName)
		}
		for _, query := range s.adapter.TruncateStatements(tableName) {
			if _, err := s.adapter.Session().ExecContext(ctx, query); err != nil {
				return fmt.Errorf("failed to truncate %s: %w", tableName, err)
			}
		}
	}

	color.Green("✅ Tables truncated")
	fmt.Println()
	return nil
}
