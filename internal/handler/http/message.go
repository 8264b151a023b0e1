package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/domain/message"
	"github.com/shiftwise/shiftwise-backend-go/internal/handler/http/response"
)

type MessageHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
}

type messageHandlerImpl struct {
	messageService message.MessageService
}

func NewMessageHandler(messageService message.MessageService) MessageHandler {
	return &messageHandlerImpl{messageService: messageService}
}

// Send implements MessageHandler. The sender is always the authenticated
// user; the service reads it from the request context.
func (h *messageHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	var req message.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.messageService.Send(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Message sent successfully", result)
}

// List implements MessageHandler. Lists the authenticated user's inbox and
// outbox together.
func (h *messageHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := message.MessageFilter{}
	filter.Page, filter.Limit = pageParams(r)

	if v := r.URL.Query().Get("unread"); v != "" {
		unread := v == "true" || v == "1"
		filter.Unread = &unread
	}

	results, total, err := h.messageService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, response.NewMeta(filter.Page, filter.Limit, total))
}

// MarkAsRead implements MessageHandler. Only the recipient may mark a
// message read.
func (h *messageHandlerImpl) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.messageService.MarkAsRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Message marked as read", nil)
}
