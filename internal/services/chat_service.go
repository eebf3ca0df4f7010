package services

import (
	"fmt"

	"shelfshare/internal/repos"
)

// ChatService removes loan chats once both participants have flagged them
// for deletion. Unrelated to the return sweep; it just shares the store.
type ChatService struct {
	Chats *repos.ChatRepo
}

func NewChatService(chats *repos.ChatRepo) *ChatService { return &ChatService{Chats: chats} }

func (s *ChatService) Clean() (int, error) {
	ids, err := s.Chats.ListDeletable()
	if err != nil {
		return 0, fmt.Errorf("list deletable chats: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	if err := s.Chats.DeleteByIDs(ids); err != nil {
		return 0, fmt.Errorf("delete chats: %w", err)
	}
	return len(ids), nil
}
