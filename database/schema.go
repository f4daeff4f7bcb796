package database

import (
	_ "embed"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

//go:embed schema_postgres.sql
var schemaPostgres string

//go:embed schema_sqlite.sql
var schemaSQLite string

// EnsureSchema creates the four catalog tables if they do not exist.
// The DDL ships with the binary; the sqlite variant exists for the
// in-process test database.
func EnsureSchema(db *gorm.DB) error {
	ddl := schemaPostgres
	if db.Dialector.Name() == "sqlite" {
		ddl = schemaSQLite
	}

	// One Exec per statement; the postgres driver rejects
	// multi-statement strings in prepared mode.
	for _, stmt := range strings.Split(ddl, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
