package test_utils

import (
	"database/sql"
	"testing"
)

// InsertUser seeds a user row directly, satisfying foreign keys in repository tests.
func InsertUser(t *testing.T, db *sql.DB, uid string, username string) {
	t.Helper()

	_, err := db.Exec("INSERT INTO users (uid, username, display_name) VALUES ($1, $2, $3)", uid, username, username)
	if err != nil {
		t.Fatalf("Failed to insert test user %s: %v", uid, err)
	}
}
