package schema

import (
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
)

// InitializeSchema sets up the database schema and indexes for indentscore
func InitializeSchema(db *surrealdb.DB) error {
	schemas := []string{
		// Per-file reports; result details and lines are nested objects,
		// so the table stays schemaless with indexes on the query fields
		`DEFINE TABLE files SCHEMALESS;
		 DEFINE FIELD path ON files TYPE string;
		 DEFINE FIELD score ON files TYPE float;
		 DEFINE FIELD level ON files TYPE string;
		 DEFINE FIELD reason ON files TYPE string;
		 DEFINE FIELD created_at ON files TYPE datetime DEFAULT time::now();
		 DEFINE INDEX file_path ON files FIELDS path;
		 DEFINE INDEX file_level ON files FIELDS level;`,

		// Scan summaries
		`DEFINE TABLE scans SCHEMAFULL;
		 DEFINE FIELD file_count ON scans TYPE int;
		 DEFINE FIELD line_count ON scans TYPE int;
		 DEFINE FIELD mean_score ON scans TYPE float;
		 DEFINE FIELD max_score ON scans TYPE float;
		 DEFINE FIELD worst_file ON scans TYPE string;
		 DEFINE FIELD created_at ON scans TYPE datetime DEFAULT time::now();
		 DEFINE INDEX scan_worst_file ON scans FIELDS worst_file;`,
	}

	// Execute each schema definition
	for _, schema := range schemas {
		if _, err := surrealdb.Query[any](db, schema, map[string]interface{}{}); err != nil {
			return fmt.Errorf("schema initialization error: %w", err)
		}
	}

	return nil
}
