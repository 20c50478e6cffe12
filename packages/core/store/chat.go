package store

import (
	"sort"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
)

func sortThreadsByActivityDesc(ts []models.ChatThread) {
	sort.SliceStable(ts, func(i, j int) bool {
		return ts[i].LastActivity().After(ts[j].LastActivity())
	})
}

// ChatThreads returns a copy of the thread list, newest activity first.
// Threads that have never seen a message sort last.
func (s *Store) ChatThreads() []models.ChatThread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneThreads(s.chatThreads)
}

// ThreadByID looks a thread up by id.
func (s *Store) ThreadByID(id string) (models.ChatThread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.chatThreads {
		if t.ID == id {
			return cloneThread(t), nil
		}
	}
	return models.ChatThread{}, ErrThreadNotFound
}

// MessagesForThread returns the message list of a thread, oldest first. A
// thread with no messages yet yields an empty slice, not an error.
func (s *Store) MessagesForThread(threadID string) ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := false
	for _, t := range s.chatThreads {
		if t.ID == threadID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrThreadNotFound
	}
	return append([]models.ChatMessage(nil), s.chatMessages[threadID]...), nil
}

// AddChatThread inserts the thread at the head of the list and re-sorts by
// last-message timestamp. An optional initial message seeds the thread's
// message list. When navigate is true the session moves to the thread's chat
// screen.
func (s *Store) AddChatThread(thread models.ChatThread, initial *models.ChatMessage, navigate bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if initial != nil {
		msg := *initial
		msg.ThreadID = thread.ID
		thread.LastMessage = &msg
		s.chatMessages[thread.ID] = []models.ChatMessage{msg}
	}

	s.chatThreads = append([]models.ChatThread{cloneThread(thread)}, s.chatThreads...)
	sortThreadsByActivityDesc(s.chatThreads)

	if navigate {
		s.session.SelectedChatThreadID = thread.ID
		s.session.CurrentView = models.ViewChatScreen
	}
	s.log.Info().Str("thread_id", thread.ID).Bool("group", thread.IsGroupChat).Msg("chat thread added")
}

// SendMessage appends the message to the thread's list (creating the list if
// absent), updates the thread's denormalized LastMessage, bumps the unread
// count unless the operator sent it, and restores thread ordering.
func (s *Store) SendMessage(threadID string, message models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var thread *models.ChatThread
	for i := range s.chatThreads {
		if s.chatThreads[i].ID == threadID {
			thread = &s.chatThreads[i]
			break
		}
	}
	if thread == nil {
		return ErrThreadNotFound
	}

	message.ThreadID = threadID
	s.chatMessages[threadID] = append(s.chatMessages[threadID], message)

	msg := message
	thread.LastMessage = &msg
	if message.SenderID != s.operatorIDLocked() {
		thread.UnreadCount++
	}
	sortThreadsByActivityDesc(s.chatThreads)

	s.log.Debug().Str("thread_id", threadID).Str("sender", message.SenderID).Msg("message sent")
	return nil
}

// MarkThreadRead zeroes the unread counter when the operator opens a thread.
func (s *Store) MarkThreadRead(threadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.chatThreads {
		if s.chatThreads[i].ID == threadID {
			s.chatThreads[i].UnreadCount = 0
			return nil
		}
	}
	return ErrThreadNotFound
}
