package handlers

import (
	"github.com/jmoiron/sqlx"

	"shelfshare/internal/repos"
	"shelfshare/internal/services"
)

type Deps struct {
	Jobs *JobsHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	loanRepo := repos.NewLoanRepo(db)
	bookRepo := repos.NewBookRepo(db)
	notifRepo := repos.NewNotificationRepo(db)
	remRepo := repos.NewReminderRepo(db)
	chatRepo := repos.NewChatRepo(db)

	returnSvc := services.NewReturnService(loanRepo, bookRepo, notifRepo, remRepo)
	chatSvc := services.NewChatService(chatRepo)

	return &Deps{
		Jobs: &JobsHandler{Returns: returnSvc, Chats: chatSvc},
	}
}
