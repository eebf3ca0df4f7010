package domain

// Lifecycle states and notification types keep the wire values the mobile
// client already stores, which are Spanish.
const (
	LoanRequested = "Solicitado"
	LoanAccepted  = "Aceptado"
	LoanReturned  = "Devuelto"

	BookAvailable = "Disponible"
	BookOnLoan    = "Prestado"

	FormatDigital = "Digital"

	NotifLoanReturned = "Préstamo Devuelto"
	NotifReminder     = "Recordatorio"
)

type Loan struct {
	ID       int64  `db:"id"`
	BookID   int64  `db:"bookId"`
	OwnerID  string `db:"ownerId"`
	HolderID string `db:"holderId"`
	Format   string `db:"format"` // immutable after creation
	State    string `db:"state"`
	EndDate  string `db:"endDate"` // timestamp-like string, see validate.EndDate
}

type Book struct {
	ID     int64  `db:"id"`
	Title  string `db:"title"`
	State  string `db:"state"`
	Format string `db:"format"` // comma-joined set, e.g. "Digital,Physical"
}

type Notification struct {
	ID        string `db:"id"`
	UserID    string `db:"userId"`
	Type      string `db:"type"`
	RelatedID int64  `db:"relatedId"`
	Message   string `db:"message"`
	Read      bool   `db:"read"`
	CreatedAt string `db:"created_at"`
}

type Reminder struct {
	ID       int64  `db:"id"`
	UserID   string `db:"userId"`
	BookID   int64  `db:"bookId"`
	Format   string `db:"format"`
	Notified bool   `db:"notified"`
}

type LoanChat struct {
	ID             int64 `db:"id"`
	LoanID         int64 `db:"loanId"`
	DeleteByOwner  bool  `db:"deleteByOwner"`
	DeleteByHolder bool  `db:"deleteByHolder"`
}
