package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"shelfshare/internal/repos"
	"shelfshare/internal/services"
)

func chatdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE LoanChat(id INTEGER PRIMARY KEY, loanId INTEGER,
	  deleteByOwner INTEGER DEFAULT 0, deleteByHolder INTEGER DEFAULT 0);
	INSERT INTO LoanChat(id,loanId,deleteByOwner,deleteByHolder) VALUES
	  (1,100,1,1),
	  (2,101,1,0),
	  (3,102,0,0);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestClean_DeletesOnlyDoubleFlaggedChats(t *testing.T) {
	db := chatdb(t)
	svc := services.NewChatService(repos.NewChatRepo(db))

	n, err := svc.Clean()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("deleted %d chats, want 1", n)
	}

	var left []int64
	if err := db.Select(&left, `SELECT id FROM LoanChat ORDER BY id`); err != nil {
		t.Fatal(err)
	}
	if len(left) != 2 || left[0] != 2 || left[1] != 3 {
		t.Fatalf("unexpected survivors: %v", left)
	}

	// Nothing left to delete on a second pass.
	n, err = svc.Clean()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("second pass deleted %d chats, want 0", n)
	}
}
