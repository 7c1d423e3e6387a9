package database

import (
	"io/fs"
	"strings"
	"testing"
)

func TestMigrationFiles(t *testing.T) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		t.Fatal(err)
	}
	ups, downs := 0, 0
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		default:
			t.Errorf("unexpected file %s", e.Name())
		}
	}
	if ups == 0 || ups != downs {
		t.Errorf("%d up and %d down migrations", ups, downs)
	}
}

func TestMigrationsCreateQuizzes(t *testing.T) {
	body, err := fs.ReadFile(migrationFiles, "migrations/000001_create_quizzes.up.sql")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"CREATE TABLE IF NOT EXISTS quizzes", "content_key", "body            JSONB"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("migration missing %q", want)
		}
	}
}
