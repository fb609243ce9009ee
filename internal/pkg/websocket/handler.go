package websocket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/thequad/api/internal/app/repositories"
)

// Handler upgrades authenticated requests into thread-scoped websocket
// connections.
type Handler struct {
	hub      *Hub
	chatRepo *repositories.ChatRepository
	sink     MessageSink
	logger   zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, chatRepo *repositories.ChatRepository, sink MessageSink, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:      hub,
		chatRepo: chatRepo,
		sink:     sink,
		logger:   logger,
	}
}

// HandleConnection godoc
// @Summary Open a real-time connection to a conversation
// @Description Upgrades the HTTP connection to a WebSocket scoped to one conversation thread
// @Tags chats
// @Security BearerAuth
// @Param id path int true "Thread ID"
// @Success 101 {string} string "Switching Protocols"
// @Failure 400 {object} gin.H "Invalid thread ID"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Not a participant"
// @Failure 404 {object} gin.H "Thread not found"
// @Router /chats/{id}/ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	threadID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid thread ID"})
		return
	}

	userIDValue, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}
	userID, ok := userIDValue.(int64)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user ID format"})
		return
	}

	thread, err := h.chatRepo.GetThreadByID(c.Request.Context(), threadID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}
	if !thread.HasParticipant(userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not a participant in this conversation"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Int64("threadID", threadID).Int64("userID", userID).Msg("Failed to upgrade connection")
		return
	}

	client := &Client{
		hub:      h.hub,
		conn:     conn,
		outbound: make(chan []byte, 256),
		userID:   userID,
		threadID: threadID,
		sink:     h.sink,
		logger:   h.logger,
	}
	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}
