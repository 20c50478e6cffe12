package models

import "time"

// ChatParticipant identifies a team or user taking part in a thread.
type ChatParticipant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}

type ChatMessage struct {
	ID         string    `json:"id"`
	ThreadID   string    `json:"thread_id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

// ChatThread carries a denormalized copy of its newest message so the thread
// list can be sorted and previewed without loading messages.
type ChatThread struct {
	ID           string            `json:"id"`
	Participants []ChatParticipant `json:"participants"`
	IsGroupChat  bool              `json:"is_group_chat"`
	GroupName    string            `json:"group_name,omitempty"`
	LastMessage  *ChatMessage      `json:"last_message,omitempty"`
	UnreadCount  int               `json:"unread_count"`
}

// LastActivity is the sort key for the thread list. Threads that have never
// seen a message sort last via the zero time.
func (t ChatThread) LastActivity() time.Time {
	if t.LastMessage == nil {
		return time.Time{}
	}
	return t.LastMessage.Timestamp
}

// DTOs

type CreateThreadRequest struct {
	Participants []ChatParticipant `json:"participants" binding:"required,min=1"`
	IsGroupChat  bool              `json:"is_group_chat"`
	GroupName    string            `json:"group_name,omitempty"`
	// Optional first message seeded into the new thread.
	InitialMessage *SendMessageRequest `json:"initial_message,omitempty"`
	// When true the session navigates to the new thread's chat screen.
	Navigate *bool `json:"navigate,omitempty"`
}

type SendMessageRequest struct {
	SenderID   string `json:"sender_id" binding:"required"`
	SenderName string `json:"sender_name" binding:"required"`
	Text       string `json:"text" binding:"required"`
}
