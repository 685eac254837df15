package handlers

import (
	"html/template"
	"net/http"

	"github.com/Denise-hub/DenModa-Manufacturer/internal/service"

	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog/log"
)

// MessageHandler is the admin inbox for contact-form submissions.
type MessageHandler struct {
	Templates *template.Template
	Messages  *service.MessageService
}

type messageView struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Body      string
	IsRead    bool
	Created   string
	ReplyLink string
}

// List renders the inbox, newest first, with a pre-built mailto reply link
// per message. GET /admin/messages
func (h *MessageHandler) List(e *core.RequestEvent) error {
	messages, err := h.Messages.List()
	if err != nil {
		log.Error().Err(err).Msg("message list failed")
	}

	unread := 0
	views := make([]messageView, 0, len(messages))
	for _, m := range messages {
		if !m.IsRead {
			unread++
		}
		views = append(views, messageView{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Subject:   m.Subject,
			Body:      m.Body,
			IsRead:    m.IsRead,
			Created:   m.Created,
			ReplyLink: service.ReplyLink(m),
		})
	}

	data := map[string]any{
		"Messages": views,
		"Unread":   unread,
		"IsAdmin":  true,
		"PageType": "messages",
	}
	return RenderPage(h.Templates, e, "layouts/admin.html", "admin/messages.html", data)
}

// MarkRead toggles the read flag. POST /admin/messages/{id}/read
func (h *MessageHandler) MarkRead(e *core.RequestEvent) error {
	read := e.Request.FormValue("read") != "false"
	if err := h.Messages.MarkRead(e.Request.PathValue("id"), read); err != nil {
		return e.String(500, "Failed to update message")
	}
	return e.Redirect(http.StatusSeeOther, "/admin/messages")
}

// Delete removes a message. POST /admin/messages/{id}/delete
func (h *MessageHandler) Delete(e *core.RequestEvent) error {
	if err := h.Messages.Delete(e.Request.PathValue("id")); err != nil {
		return e.String(500, "Failed to delete message")
	}
	return e.Redirect(http.StatusSeeOther, "/admin/messages")
}
