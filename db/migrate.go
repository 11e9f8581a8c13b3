package db

import "log"

// createTables creates the necessary tables in the database if they don't exist.
func createTables() {
	// SQL statement to create the 'decisions' table.
	createDecisionsTableSQL := `
	CREATE TABLE IF NOT EXISTS decisions (
		id TEXT PRIMARY KEY,
		post_id INTEGER NOT NULL,
		submitter_id TEXT NOT NULL,
		admin_id TEXT,
		verdict TEXT NOT NULL,
		decided_at INTEGER NOT NULL
	);`

	_, err := DB.Exec(createDecisionsTableSQL)
	if err != nil {
		log.Fatalf("Failed to create decisions table: %v", err)
	}
}
