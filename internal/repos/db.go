package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Table and column names mirror the hosted store the mobile app writes to,
// so rows can be moved between the two without renaming.
func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS Book(
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  format TEXT NOT NULL,                -- comma-joined set, e.g. 'Digital,Physical'
  state TEXT NOT NULL DEFAULT 'Disponible',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS Loan(
  id INTEGER PRIMARY KEY,
  bookId INTEGER NOT NULL REFERENCES Book(id) ON DELETE CASCADE,
  ownerId TEXT NOT NULL,
  holderId TEXT NOT NULL,
  format TEXT NOT NULL,
  state TEXT NOT NULL DEFAULT 'Solicitado',
  endDate TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_loan_state       ON Loan(state);
CREATE INDEX IF NOT EXISTS idx_loan_book_format ON Loan(bookId, format);

CREATE TABLE IF NOT EXISTS Notifications(
  id TEXT PRIMARY KEY,
  userId TEXT NOT NULL,
  type TEXT NOT NULL,
  relatedId INTEGER NOT NULL,
  message TEXT NOT NULL,
  read INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_notifications_user ON Notifications(userId);

CREATE TABLE IF NOT EXISTS Reminder(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  userId TEXT NOT NULL,
  bookId INTEGER NOT NULL REFERENCES Book(id) ON DELETE CASCADE,
  format TEXT NOT NULL,
  notified INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_reminder_book_format ON Reminder(bookId, format);

CREATE TABLE IF NOT EXISTS LoanChat(
  id INTEGER PRIMARY KEY,
  loanId INTEGER REFERENCES Loan(id) ON DELETE CASCADE,
  deleteByOwner INTEGER NOT NULL DEFAULT 0,
  deleteByHolder INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
`
	_, err := db.Exec(schema)
	return err
}
