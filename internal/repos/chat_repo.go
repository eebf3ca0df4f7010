package repos

import "github.com/jmoiron/sqlx"

type ChatRepo struct{ db *sqlx.DB }

func NewChatRepo(db *sqlx.DB) *ChatRepo { return &ChatRepo{db: db} }

// ListDeletable returns ids of chats both sides have flagged for deletion.
func (r *ChatRepo) ListDeletable() ([]int64, error) {
	var ids []int64
	err := r.db.Select(&ids, `
	  SELECT id FROM LoanChat
	  WHERE deleteByOwner = 1 AND deleteByHolder = 1
	`)
	return ids, err
}

func (r *ChatRepo) DeleteByIDs(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	q, args, err := sqlx.In(`DELETE FROM LoanChat WHERE id IN (?)`, ids)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(r.db.Rebind(q), args...)
	return err
}
