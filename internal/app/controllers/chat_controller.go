package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thequad/api/internal/app/models/dto"
	"github.com/thequad/api/internal/app/services"
	"github.com/thequad/api/internal/middleware"
)

// ChatController handles direct message conversations
type ChatController struct {
	chatService services.ChatService
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// StartChat godoc
// @Summary Start or resume a conversation
// @Description Returns the conversation with the given user, creating it if it does not exist yet
// @Tags chats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StartChatRequest true "The other participant, plus optional originating post context"
// @Success 200 {object} dto.APIResponse{data=dto.ConversationResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid request or chatting with yourself"
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "User not found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /chats [post]
func (c *ChatController) StartChat(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.StartChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	conversation, err := c.chatService.StartChat(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(conversation))
}

// ListConversations godoc
// @Summary List conversations
// @Description The caller's conversations, most recently active first, with unread markers
// @Tags chats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ConversationResponse}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /chats [get]
func (c *ChatController) ListConversations(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	conversations, err := c.chatService.ListConversations(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(conversations))
}

// GetMessages godoc
// @Summary Get a conversation's messages
// @Description Messages oldest first. Opening the conversation marks it as read.
// @Tags chats
// @Produce json
// @Security BearerAuth
// @Param id path int true "Conversation ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ChatMessageResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Not a participant"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Conversation not found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /chats/{id}/messages [get]
func (c *ChatController) GetMessages(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	threadID, ok := parseIDParam(ctx, "id", "conversation ID")
	if !ok {
		return
	}

	messages, err := c.chatService.GetMessages(ctx, userID, threadID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(messages))
}

// SendMessage godoc
// @Summary Send a text message
// @Description Persists the message and pushes it to connected websocket clients
// @Tags chats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Conversation ID"
// @Param request body dto.SendMessageRequest true "Message body"
// @Success 201 {object} dto.APIResponse{data=dto.ChatMessageResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Not a participant"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Conversation not found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /chats/{id}/messages [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	threadID, ok := parseIDParam(ctx, "id", "conversation ID")
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorDetail(err)))
		return
	}

	message, err := c.chatService.SendText(ctx, userID, threadID, req.Body)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(message))
}

// MarkRead godoc
// @Summary Mark a conversation as read
// @Tags chats
// @Produce json
// @Security BearerAuth
// @Param id path int true "Conversation ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail} "Not a participant"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Conversation not found"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /chats/{id}/read [post]
func (c *ChatController) MarkRead(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	threadID, ok := parseIDParam(ctx, "id", "conversation ID")
	if !ok {
		return
	}

	if err := c.chatService.MarkRead(ctx, userID, threadID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "Conversation marked as read"}))
}
