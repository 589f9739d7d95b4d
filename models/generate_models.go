package models

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/rpupo63/portfolio-site/errs"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*
Schema tooling.

Migrate creates or updates the five portfolio tables and is run on server start
(AUTO_MIGRATE, default true) and by `portfolioctl migrate`.

GenerateModels (GENERATE_MODELS=true) additionally writes typed query helpers to
./generated with gorm.io/gen.

ColumnMismatchReport (GENERATE_COLUMN_REPORT=true) lists database columns that no
model field maps to, for example after a manual ALTER TABLE:

	=== COLUMN MISMATCH REPORT ===
	--- Table: projects ---
	Found 1 columns not accounted for in model:
	  - legacy_slug
*/

// All returns one zero value of every persisted model, in migration order.
func All() []any {
	return []any{
		&Project{},
		&Skill{},
		&Experience{},
		&Education{},
		&Contact{},
	}
}

// Migrate runs AutoMigrate for every model.
func Migrate(db *gorm.DB) error {
	migrateDB := db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	for _, model := range All() {
		if err := migrateDB.AutoMigrate(model); err != nil {
			return errs.NewMigrationError(fmt.Sprintf("%T", model), err)
		}
	}
	return nil
}

func GenerateModels(db *gorm.DB) error {
	// First, ensure the database is ready
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}

	// Set up verbose logging for migration
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             0,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)
	db = db.Session(&gorm.Session{Logger: newLogger})

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./generated",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(All()...)

	fmt.Println("Migrating models...")
	if err := Migrate(db); err != nil {
		return err
	}
	fmt.Println("Database migration completed successfully!")

	ColumnMismatchReport(db, os.Stdout)

	g.Execute()
	fmt.Println("Model generation complete!")
	return nil
}

// ColumnMismatchReport writes a report of database columns that aren't accounted for in Go models.
// It returns the total number of unmapped columns.
func ColumnMismatchReport(db *gorm.DB, w io.Writer) int {
	fmt.Fprintln(w, "=== COLUMN MISMATCH REPORT ===")

	totalMismatches := 0
	for _, model := range All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			fmt.Fprintf(w, "Error parsing model %T: %v\n", model, err)
			continue
		}
		tableName := stmt.Schema.Table
		fmt.Fprintf(w, "\n--- Table: %s ---\n", tableName)

		if !db.Migrator().HasTable(tableName) {
			fmt.Fprintln(w, "Table does not exist yet (will be created during migration)")
			continue
		}

		columnTypes, err := db.Migrator().ColumnTypes(model)
		if err != nil {
			fmt.Fprintf(w, "Error getting columns for table %s: %v\n", tableName, err)
			continue
		}
		dbColumns := make([]string, 0, len(columnTypes))
		for _, ct := range columnTypes {
			dbColumns = append(dbColumns, ct.Name())
		}

		mismatches := findColumnMismatches(dbColumns, stmt.Schema.DBNames)
		if len(mismatches) > 0 {
			fmt.Fprintf(w, "Found %d columns not accounted for in model:\n", len(mismatches))
			for _, col := range mismatches {
				fmt.Fprintf(w, "  - %s\n", col)
			}
			totalMismatches += len(mismatches)
		} else {
			fmt.Fprintln(w, "All columns are accounted for in the model.")
		}
	}

	fmt.Fprintf(w, "\n=== SUMMARY ===\n")
	fmt.Fprintf(w, "Total mismatched columns across all tables: %d\n", totalMismatches)
	return totalMismatches
}

// findColumnMismatches finds columns that exist in the database but not in the model
func findColumnMismatches(dbColumns, modelFields []string) []string {
	modelFieldSet := make(map[string]bool, len(modelFields))
	for _, field := range modelFields {
		modelFieldSet[field] = true
	}

	var mismatches []string
	for _, col := range dbColumns {
		if !modelFieldSet[col] {
			mismatches = append(mismatches, col)
		}
	}
	sort.Strings(mismatches)
	return mismatches
}
