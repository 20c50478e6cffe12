package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/store"
)

func TestCreateThreadWithInitialMessage(t *testing.T) {
	st, clock := newTestStore(t)
	svc := NewChatService(st, clock, zerolog.Nop())

	thread, err := svc.CreateThread(models.CreateThreadRequest{
		Participants: []models.ChatParticipant{
			{ID: "team-1", Name: "FC Striker Kids"},
			{ID: "team-2", Name: "Blue Wings FC"},
		},
		InitialMessage: &models.SendMessageRequest{
			SenderID: "team-1", SenderName: "FC Striker Kids", Text: "Hello!",
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, thread.ID)
	require.NotNil(t, thread.LastMessage)
	assert.Equal(t, "Hello!", thread.LastMessage.Text)
	assert.Equal(t, clock.Now(), thread.LastMessage.Timestamp)

	msgs, err := svc.Messages(thread.ID)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)

	// Creation navigates to the chat screen by default.
	session := st.Session()
	assert.Equal(t, models.ViewChatScreen, session.CurrentView)
	assert.Equal(t, thread.ID, session.SelectedChatThreadID)
}

func TestCreateThreadNavigateOptOut(t *testing.T) {
	st, clock := newTestStore(t)
	svc := NewChatService(st, clock, zerolog.Nop())

	nav := false
	_, err := svc.CreateThread(models.CreateThreadRequest{
		Participants: []models.ChatParticipant{{ID: "team-1", Name: "FC Striker Kids"}},
		Navigate:     &nav,
	})
	require.NoError(t, err)

	assert.Empty(t, st.Session().SelectedChatThreadID)
	assert.Equal(t, models.ViewTeamManagement, st.Session().CurrentView)
}

func TestCreateGroupThreadNeedsName(t *testing.T) {
	st, clock := newTestStore(t)
	svc := NewChatService(st, clock, zerolog.Nop())

	_, err := svc.CreateThread(models.CreateThreadRequest{
		Participants: []models.ChatParticipant{{ID: "team-1"}},
		IsGroupChat:  true,
	})
	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestSendMessageValidation(t *testing.T) {
	st, clock := newTestStore(t)
	st.Seed(nil, nil, nil, nil, nil, nil, []models.ChatThread{{ID: "thread-1"}}, nil)
	svc := NewChatService(st, clock, zerolog.Nop())

	_, err := svc.SendMessage("thread-1", models.SendMessageRequest{SenderID: "t", SenderName: "T", Text: "   "})
	assert.ErrorIs(t, err, store.ErrValidation)

	_, err = svc.SendMessage("thread-9", models.SendMessageRequest{SenderID: "t", SenderName: "T", Text: "hi"})
	assert.ErrorIs(t, err, store.ErrThreadNotFound)

	msg, err := svc.SendMessage("thread-1", models.SendMessageRequest{SenderID: "t", SenderName: "T", Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "thread-1", msg.ThreadID)
	assert.Equal(t, clock.Now(), msg.Timestamp)
}
