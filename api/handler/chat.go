package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/bigamist7/Bigamist-TaskPal/api/transport"
	"github.com/bigamist7/Bigamist-TaskPal/domain"
	"github.com/bigamist7/Bigamist-TaskPal/pkg/httpcontext"
	"github.com/bigamist7/Bigamist-TaskPal/usecase"
	chatUC "github.com/bigamist7/Bigamist-TaskPal/usecase/chat"
	taskUC "github.com/bigamist7/Bigamist-TaskPal/usecase/task"
)

type ChatHandler struct {
	baseHandler
	chats     *chatUC.Store
	tasks     *taskUC.Store
	responder usecase.Responder
}

// NewChatHandler wires the chat flow. The adapter must carry a timeout
// large enough to cover the assistant's bounded wait.
func NewChatHandler(chats *chatUC.Store, tasks *taskUC.Store, responder usecase.Responder, adapter *httpcontext.Adapter, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		baseHandler: newBaseHandler(adapter, logger),
		chats:       chats,
		tasks:       tasks,
		responder:   responder,
	}
}

// @Summary List chat messages
// @Tags chat
// @Router /api/v1/chat/messages [get]
func (h *ChatHandler) GetMessages(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, h.chats.Messages())
}

// @Summary Send a chat message
// @Tags chat
// @Router /api/v1/chat/messages [post]
func (h *ChatHandler) SendMessage(ctx *fasthttp.RequestCtx) {
	var req transport.ChatMessageRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "message content must not be empty", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.chats.Append(stdCtx, req.Content, domain.MessageUser)

	// The responder gets a snapshot of the task state; it never fails,
	// a broken AI call comes back as a flavored apology.
	personality := h.chats.Personality()
	reply := h.responder.Respond(stdCtx, req.Content, personality, h.tasks.Tasks(), h.tasks.Stats())

	botMsg := h.chats.Append(stdCtx, reply, domain.MessageBot)
	h.respondSuccess(ctx, http.StatusOK, botMsg)
}

// @Summary Clear chat history
// @Tags chat
// @Router /api/v1/chat/messages [delete]
func (h *ChatHandler) ClearMessages(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.chats.Clear(stdCtx)
	h.responder.ClearHistory()
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Get active personality
// @Tags chat
// @Router /api/v1/chat/personality [get]
func (h *ChatHandler) GetPersonality(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, map[string]string{
		"personality": string(h.chats.Personality()),
	})
}

// @Summary Switch personality
// @Tags chat
// @Router /api/v1/chat/personality [put]
func (h *ChatHandler) SetPersonality(ctx *fasthttp.RequestCtx) {
	var req transport.PersonalityRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	personality := domain.Personality(req.Personality)
	if !personality.Valid() {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "unknown personality", nil))
		return
	}

	h.chats.SetPersonality(personality)
	h.respondSuccess(ctx, http.StatusOK, map[string]string{
		"personality": string(personality),
	})
}
