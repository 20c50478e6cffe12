package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d-exit/team-management-app.ver4/packages/core/models"
	"github.com/d-exit/team-management-app.ver4/packages/core/services"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// GetThreads lists chat threads, newest activity first
// @Summary List chat threads
// @Tags chat
// @Produce json
// @Success 200 {array} models.ChatThread
// @Router /chat/threads [get]
func (h *ChatHandler) GetThreads(c *gin.Context) {
	c.JSON(http.StatusOK, h.chatService.Threads())
}

// CreateThread opens a new thread, optionally seeded with a first message
// @Summary Create a chat thread
// @Tags chat
// @Accept json
// @Produce json
// @Param thread body models.CreateThreadRequest true "Thread data"
// @Success 201 {object} models.ChatThread
// @Failure 400 {object} map[string]string
// @Router /chat/threads [post]
func (h *ChatHandler) CreateThread(c *gin.Context) {
	var req models.CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	thread, err := h.chatService.CreateThread(req)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, thread)
}

// GetMessages lists a thread's messages in arrival order
// @Summary List thread messages
// @Tags chat
// @Produce json
// @Param id path string true "Thread ID"
// @Success 200 {array} models.ChatMessage
// @Failure 404 {object} map[string]string
// @Router /chat/threads/{id}/messages [get]
func (h *ChatHandler) GetMessages(c *gin.Context) {
	messages, err := h.chatService.Messages(c.Param("id"))
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// SendMessage appends a message to a thread
// @Summary Send a chat message
// @Description Unread count increments unless the sender is the operator's managed team
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Thread ID"
// @Param message body models.SendMessageRequest true "Message"
// @Success 201 {object} models.ChatMessage
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /chat/threads/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.chatService.SendMessage(c.Param("id"), req)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// MarkRead zeroes a thread's unread counter
// @Summary Mark a thread read
// @Tags chat
// @Produce json
// @Param id path string true "Thread ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /chat/threads/{id}/read [patch]
func (h *ChatHandler) MarkRead(c *gin.Context) {
	if err := h.chatService.MarkRead(c.Param("id")); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "thread marked read"})
}
