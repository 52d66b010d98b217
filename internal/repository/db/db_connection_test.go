package db

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func mustExec(t *testing.T, conn *sql.DB, query string) {
	t.Helper()
	if _, err := conn.Exec(query); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}

func TestInitDB_SchemaAndSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	// bootstrap admin exists with an empty password
	var username, password string
	err = conn.QueryRow(`SELECT username, password FROM users WHERE username = 'admin'`).
		Scan(&username, &password)
	if err != nil {
		t.Fatalf("seeded admin missing: %v", err)
	}
	if password != "" {
		t.Fatalf("admin password should be empty, got %q", password)
	}

	// applying twice for the same project hits the unique pair constraint;
	// ON CONFLICT DO NOTHING turns it into zero affected rows
	mustExec(t, conn, `INSERT INTO users (username, password, created_at, updated_at)
		VALUES ('bob', '', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`)
	mustExec(t, conn, `INSERT INTO projects (title, description, user_id, status, created_at, updated_at)
		VALUES ('Build a shed', '', 1, 'open', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`)

	insertHelp := `INSERT INTO helps (project_id, user_id, status, created_at, updated_at)
		VALUES (1, 2, 'pending', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (project_id, user_id) DO NOTHING`
	res, err := conn.Exec(insertHelp)
	if err != nil {
		t.Fatalf("first help insert: %v", err)
	}
	if n, _ := res.RowsAffected(); n != 1 {
		t.Fatalf("first insert affected %d rows, want 1", n)
	}
	res, err = conn.Exec(insertHelp)
	if err != nil {
		t.Fatalf("duplicate help insert: %v", err)
	}
	if n, _ := res.RowsAffected(); n != 0 {
		t.Fatalf("duplicate insert affected %d rows, want 0", n)
	}

	// deleting the project cascades to its helps
	mustExec(t, conn, `DELETE FROM projects WHERE id = 1`)
	var helps int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM helps`).Scan(&helps); err != nil {
		t.Fatalf("count helps: %v", err)
	}
	if helps != 0 {
		t.Fatalf("expected helps to cascade away, %d left", helps)
	}
}

func TestInitDB_Rerun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	conn.Close()

	// opening the same file again must not error or duplicate the seed
	conn, err = InitDB(path)
	if err != nil {
		t.Fatalf("InitDB rerun: %v", err)
	}
	defer conn.Close()

	var admins int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM users WHERE username = 'admin'`).Scan(&admins); err != nil {
		t.Fatalf("count admins: %v", err)
	}
	if admins != 1 {
		t.Fatalf("expected exactly one admin, got %d", admins)
	}
}
