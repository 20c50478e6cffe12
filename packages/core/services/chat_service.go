package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/store"
)

type ChatService struct {
	store *store.Store
	clock clockwork.Clock
	log   zerolog.Logger
}

func NewChatService(st *store.Store, clock clockwork.Clock, log zerolog.Logger) *ChatService {
	return &ChatService{
		store: st,
		clock: clock,
		log:   log.With().Str("service", "chat").Logger(),
	}
}

func (s *ChatService) Threads() []models.ChatThread {
	return s.store.ChatThreads()
}

func (s *ChatService) Messages(threadID string) ([]models.ChatMessage, error) {
	return s.store.MessagesForThread(threadID)
}

// CreateThread mints the thread (and optional first message), inserts it in
// sorted position, and navigates to it unless the request opts out.
func (s *ChatService) CreateThread(req models.CreateThreadRequest) (models.ChatThread, error) {
	if req.IsGroupChat && strings.TrimSpace(req.GroupName) == "" {
		return models.ChatThread{}, fmt.Errorf("%w: group chats need a name", store.ErrValidation)
	}

	thread := models.ChatThread{
		ID:           "thread-" + uuid.NewString(),
		Participants: req.Participants,
		IsGroupChat:  req.IsGroupChat,
		GroupName:    req.GroupName,
	}

	var initial *models.ChatMessage
	if req.InitialMessage != nil {
		msg := s.newMessage(thread.ID, *req.InitialMessage)
		initial = &msg
	}

	navigate := true
	if req.Navigate != nil {
		navigate = *req.Navigate
	}

	s.store.AddChatThread(thread, initial, navigate)
	return s.store.ThreadByID(thread.ID)
}

// SendMessage appends an operator- or peer-authored message to a thread.
func (s *ChatService) SendMessage(threadID string, req models.SendMessageRequest) (models.ChatMessage, error) {
	if strings.TrimSpace(req.Text) == "" {
		return models.ChatMessage{}, fmt.Errorf("%w: message text is required", store.ErrValidation)
	}

	msg := s.newMessage(threadID, req)
	if err := s.store.SendMessage(threadID, msg); err != nil {
		return models.ChatMessage{}, err
	}
	return msg, nil
}

// ShareText posts a system-generated text (e.g. a guideline digest) into a
// thread on behalf of the operator's managed team.
func (s *ChatService) ShareText(threadID, senderID, senderName, text string) (models.ChatMessage, error) {
	return s.SendMessage(threadID, models.SendMessageRequest{
		SenderID:   senderID,
		SenderName: senderName,
		Text:       text,
	})
}

func (s *ChatService) MarkRead(threadID string) error {
	return s.store.MarkThreadRead(threadID)
}

func (s *ChatService) newMessage(threadID string, req models.SendMessageRequest) models.ChatMessage {
	return models.ChatMessage{
		ID:         "msg-" + uuid.NewString(),
		ThreadID:   threadID,
		SenderID:   req.SenderID,
		SenderName: req.SenderName,
		Text:       req.Text,
		Timestamp:  s.clock.Now(),
	}
}
