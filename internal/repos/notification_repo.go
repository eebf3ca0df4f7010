package repos

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type NotificationRepo struct{ db *sqlx.DB }

func NewNotificationRepo(db *sqlx.DB) *NotificationRepo { return &NotificationRepo{db: db} }

// Create inserts one unread notification and returns its id. Rows are never
// mutated here; read/ack is handled by the client app.
func (r *NotificationRepo) Create(userID, typ string, relatedID int64, message string) (string, error) {
	id := uuid.NewString()
	_, err := r.db.Exec(`
	  INSERT INTO Notifications(id, userId, type, relatedId, message, read, created_at)
	  VALUES(?, ?, ?, ?, ?, 0, CURRENT_TIMESTAMP)
	`, id, userID, typ, relatedID, message)
	if err != nil {
		return "", err
	}
	return id, nil
}
