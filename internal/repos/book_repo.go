package repos

import (
	"github.com/jmoiron/sqlx"

	"shelfshare/internal/domain"
)

type BookRepo struct{ db *sqlx.DB }

func NewBookRepo(db *sqlx.DB) *BookRepo { return &BookRepo{db: db} }

// Get returns the book row; sql.ErrNoRows if the id is unknown.
func (r *BookRepo) Get(id int64) (domain.Book, error) {
	var b domain.Book
	err := r.db.Get(&b, `SELECT id, title, state, format FROM Book WHERE id = ?`, id)
	return b, err
}

func (r *BookRepo) UpdateState(id int64, state string) error {
	_, err := r.db.Exec(`UPDATE Book SET state = ? WHERE id = ?`, state, id)
	return err
}
