package repos

import "github.com/jmoiron/sqlx"

type ReminderRepo struct{ db *sqlx.DB }

func NewReminderRepo(db *sqlx.DB) *ReminderRepo { return &ReminderRepo{db: db} }

// PendingSubscribers lists users still waiting on this book+format
// (notified = false).
func (r *ReminderRepo) PendingSubscribers(bookID int64, format string) ([]string, error) {
	var out []string
	err := r.db.Select(&out, `
	  SELECT userId FROM Reminder
	  WHERE bookId = ? AND format = ? AND notified = 0
	`, bookID, format)
	return out, err
}

func (r *ReminderRepo) Delete(bookID int64, userID, format string) error {
	_, err := r.db.Exec(`
	  DELETE FROM Reminder WHERE bookId = ? AND userId = ? AND format = ?
	`, bookID, userID, format)
	return err
}
