package services

import (
	"fmt"
	"time"

	"shelfshare/internal/domain"
	applog "shelfshare/internal/log"
	"shelfshare/internal/repos"
	"shelfshare/internal/validate"
)

// Summary is the only state carried across loans in a sweep.
type Summary struct {
	Scanned  int
	Returned int
	Failed   int
}

func (s Summary) String() string {
	return fmt.Sprintf("checked %d active loans: %d returned, %d failed", s.Scanned, s.Returned, s.Failed)
}

// ReturnService closes out overdue digital loans: the loan is marked
// returned, the book made available again, the owner and any waiting
// subscribers are notified, and reminders are purged once every format of
// the book is free.
type ReturnService struct {
	Loans         *repos.LoanRepo
	Books         *repos.BookRepo
	Notifications *repos.NotificationRepo
	Reminders     *repos.ReminderRepo
}

func NewReturnService(loans *repos.LoanRepo, books *repos.BookRepo, notifs *repos.NotificationRepo, rems *repos.ReminderRepo) *ReturnService {
	return &ReturnService{Loans: loans, Books: books, Notifications: notifs, Reminders: rems}
}

// Sweep runs one reconciliation pass. Loans are processed strictly one at a
// time; a failure inside one loan's cascade is logged and counted but never
// stops the batch. Only a failure of the initial scan is returned to the
// caller. Re-running on an unchanged store is a no-op: settled loans are no
// longer in the accepted state and fall outside the scan.
func (s *ReturnService) Sweep(now time.Time) (Summary, error) {
	loans, err := s.Loans.ListByState(domain.LoanAccepted)
	if err != nil {
		return Summary{}, fmt.Errorf("list active loans: %w", err)
	}

	sum := Summary{Scanned: len(loans)}
	today := dateOnly(now)

	for _, l := range loans {
		end, ok := validate.EndDate(l.EndDate)
		if !ok {
			applog.Error(nil, "autoreturn.loan.baddate", nil, map[string]any{"loan_id": l.ID, "endDate": l.EndDate})
			sum.Failed++
			continue
		}
		// Overdue means due on or before today; the sweep runs late at
		// night, so a loan due today is already past its last day.
		if dateOnly(end).After(today) {
			continue
		}
		// Only digital loans can be closed without a physical handoff.
		if l.Format != domain.FormatDigital {
			continue
		}
		if err := s.settle(l); err != nil {
			applog.Error(nil, "autoreturn.loan.fail", err, map[string]any{"loan_id": l.ID, "book_id": l.BookID})
			sum.Failed++
			continue
		}
		sum.Returned++
	}

	applog.Info(nil, "autoreturn.sweep.done", map[string]any{
		"scanned": sum.Scanned, "returned": sum.Returned, "failed": sum.Failed,
	})
	return sum, nil
}

// settle runs one loan's cascade: close the loan, free the book, dispatch
// notifications, reconcile reminders. An error from the first three store
// writes aborts the rest of this loan's cascade; notification and reminder
// problems are best-effort and only logged.
func (s *ReturnService) settle(l domain.Loan) error {
	if err := s.Loans.UpdateState(l.ID, domain.LoanReturned); err != nil {
		return fmt.Errorf("mark loan returned: %w", err)
	}
	book, err := s.Books.Get(l.BookID)
	if err != nil {
		return fmt.Errorf("load book: %w", err)
	}
	if err := s.Books.UpdateState(l.BookID, domain.BookAvailable); err != nil {
		return fmt.Errorf("mark book available: %w", err)
	}

	s.notifyOwner(l, book)
	subscribers := s.notifySubscribers(l, book)
	s.reconcile(l.BookID, book, subscribers)
	return nil
}

func (s *ReturnService) notifyOwner(l domain.Loan, book domain.Book) {
	owner, ok := validate.UserID(l.OwnerID)
	if !ok {
		applog.Error(nil, "autoreturn.notify.owner.badrow", nil, map[string]any{"loan_id": l.ID})
		return
	}
	msg := fmt.Sprintf("Tu libro %q en formato %s ha sido devuelto automáticamente.", book.Title, l.Format)
	if _, err := s.Notifications.Create(owner, domain.NotifLoanReturned, l.ID, msg); err != nil {
		applog.Error(nil, "autoreturn.notify.owner.fail", err, map[string]any{"loan_id": l.ID})
	}
}

// notifySubscribers tells everyone waiting on this book+format that it is
// back, and returns the subscriber ids for the reconcile step.
func (s *ReturnService) notifySubscribers(l domain.Loan, book domain.Book) []string {
	subscribers, err := s.Reminders.PendingSubscribers(l.BookID, l.Format)
	if err != nil {
		applog.Error(nil, "autoreturn.reminders.list.fail", err, map[string]any{"book_id": l.BookID})
		return nil
	}
	msg := fmt.Sprintf("El libro %q en formato %s vuelve a estar disponible.", book.Title, l.Format)
	for _, sub := range subscribers {
		if _, err := s.Notifications.Create(sub, domain.NotifReminder, l.BookID, msg); err != nil {
			applog.Error(nil, "autoreturn.notify.reminder.fail", err, map[string]any{"book_id": l.BookID, "user_id": sub})
		}
	}
	return subscribers
}

// reconcile purges waiting-list entries once no format of the book has an
// active loan.
func (s *ReturnService) reconcile(bookID int64, book domain.Book, subscribers []string) {
	formats := validate.Formats(book.Format)
	for _, f := range formats {
		active, err := s.Loans.ActiveExists(bookID, f)
		if err != nil {
			applog.Error(nil, "autoreturn.reconcile.fail", err, map[string]any{"book_id": bookID, "format": f})
			return
		}
		if active {
			return
		}
	}
	s.purgeReminders(bookID, subscribers, formats)
}

// purgeReminders deletes the subscribers' reminders for every format of the
// book, including formats they never watched: once a book is entirely free,
// all outstanding "notify me" entries for it count as resolved. If that
// policy ever changes, it changes here only.
func (s *ReturnService) purgeReminders(bookID int64, subscribers, formats []string) {
	for _, f := range formats {
		for _, sub := range subscribers {
			if err := s.Reminders.Delete(bookID, sub, f); err != nil {
				applog.Error(nil, "autoreturn.reminders.purge.fail", err, map[string]any{"book_id": bookID, "user_id": sub, "format": f})
			}
		}
	}
}

// dateOnly drops time-of-day, pinning the calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
