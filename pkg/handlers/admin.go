package handlers

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/Denise-hub/DenModa-Manufacturer/internal/service"
	"github.com/Denise-hub/DenModa-Manufacturer/pkg/broker"
	"github.com/Denise-hub/DenModa-Manufacturer/pkg/middleware"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog/log"
)

const sessionTTL = 7 * 24 * time.Hour

// AdminHandler serves the back-office: login, dashboard and the live
// event stream. The per-section managers live in their own files.
type AdminHandler struct {
	App        *pocketbase.PocketBase
	Templates  *template.Template
	Broker     *broker.Broker
	Content    *service.ContentService
	Analytics  *service.AnalyticsService
	AdminEmail string
}

func (h *AdminHandler) ShowLogin(e *core.RequestEvent) error {
	return RenderPage(h.Templates, e, "layouts/auth.html", "public/login.html", nil)
}

// ProcessLogin authenticates against the superusers collection and then
// enforces the single-admin allowlist: a valid superuser with the wrong
// email is rejected the same way as a bad password.
func (h *AdminHandler) ProcessLogin(e *core.RequestEvent) error {
	email := e.Request.FormValue("email")
	password := e.Request.FormValue("password")

	superuser, err := h.App.FindAuthRecordByEmail(core.CollectionNameSuperusers, email)
	if err != nil || !superuser.ValidatePassword(password) {
		return h.loginError(e, "Invalid email or password")
	}
	if h.AdminEmail != "" && !strings.EqualFold(superuser.Email(), h.AdminEmail) {
		log.Warn().Str("email", superuser.Email()).Msg("login rejected: not the allow-listed admin")
		return h.loginError(e, "This account is not authorized for the admin panel")
	}

	token, err := superuser.NewAuthToken()
	if err != nil {
		return e.String(500, "Internal error")
	}

	middleware.SetAuthCookie(e, token, int(sessionTTL.Seconds()))
	return e.Redirect(http.StatusSeeOther, "/admin")
}

func (h *AdminHandler) Logout(e *core.RequestEvent) error {
	middleware.ClearAuthCookie(e)
	return e.Redirect(http.StatusSeeOther, "/login")
}

// Dashboard renders the stats cards and recent activity.
func (h *AdminHandler) Dashboard(e *core.RequestEvent) error {
	stats := h.Analytics.DashboardStats()

	data := map[string]any{
		"Stats":    stats,
		"IsAdmin":  true,
		"PageType": "admin_dashboard",
	}

	return RenderPage(h.Templates, e, "layouts/admin.html", "admin/dashboard.html", data)
}

// Stream pushes back-office events (new orders, new messages) to the
// dashboard over SSE.
func (h *AdminHandler) Stream(e *core.RequestEvent) error {
	if e.Auth == nil {
		return e.String(401, "Unauthorized")
	}

	e.Response.Header().Set("Content-Type", "text/event-stream")
	e.Response.Header().Set("Cache-Control", "no-cache")
	e.Response.Header().Set("Connection", "keep-alive")

	eventChan := h.Broker.Subscribe()
	defer h.Broker.Unsubscribe(eventChan)

	initial := broker.Event{
		Type:      "connection.established",
		Timestamp: time.Now().Unix(),
		Data:      map[string]any{"role": "admin"},
	}
	eventJSON, _ := json.Marshal(initial)
	fmt.Fprintf(e.Response, "data: %s\n\n", eventJSON)
	e.Response.(http.Flusher).Flush()

	for {
		select {
		case event := <-eventChan:
			eventJSON, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(e.Response, "data: %s\n\n", eventJSON)
			e.Response.(http.Flusher).Flush()

		case <-e.Request.Context().Done():
			return nil
		}
	}
}

func (h *AdminHandler) loginError(e *core.RequestEvent, msg string) error {
	return RenderPage(h.Templates, e, "layouts/auth.html", "public/login.html", map[string]string{
		"Error": msg,
	})
}
