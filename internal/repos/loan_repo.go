package repos

import (
	"github.com/jmoiron/sqlx"

	"shelfshare/internal/domain"
)

type LoanRepo struct{ db *sqlx.DB }

func NewLoanRepo(db *sqlx.DB) *LoanRepo { return &LoanRepo{db: db} }

// ListByState returns every loan in the given lifecycle state. Order is not
// significant; an empty result is not an error.
func (r *LoanRepo) ListByState(state string) ([]domain.Loan, error) {
	var out []domain.Loan
	err := r.db.Select(&out, `
	  SELECT id, bookId, ownerId, holderId, format, state, COALESCE(endDate,'') AS endDate
	  FROM Loan
	  WHERE state = ?
	`, state)
	return out, err
}

func (r *LoanRepo) UpdateState(id int64, state string) error {
	_, err := r.db.Exec(`UPDATE Loan SET state = ? WHERE id = ?`, state, id)
	return err
}

// ActiveExists reports whether any accepted loan is open for this book+format.
func (r *LoanRepo) ActiveExists(bookID int64, format string) (bool, error) {
	var n int
	err := r.db.Get(&n, `
	  SELECT COUNT(*) FROM Loan
	  WHERE bookId = ? AND format = ? AND state = ?
	`, bookID, format, domain.LoanAccepted)
	return n > 0, err
}
