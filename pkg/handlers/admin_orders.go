package handlers

import (
	"errors"
	"html/template"
	"net/http"

	domain "github.com/Denise-hub/DenModa-Manufacturer/internal/core"
	"github.com/Denise-hub/DenModa-Manufacturer/internal/service"

	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog/log"
)

// OrderHandler is the admin order board.
type OrderHandler struct {
	Templates *template.Template
	Orders    *service.OrderService
}

// List renders the order table, newest first. GET /admin/orders
func (h *OrderHandler) List(e *core.RequestEvent) error {
	orders, err := h.Orders.List()
	if err != nil {
		log.Error().Err(err).Msg("order list failed")
		orders = nil
	}

	pending := 0
	for _, o := range orders {
		if o.Status == "pending" {
			pending++
		}
	}

	data := map[string]any{
		"Orders":   orders,
		"Pending":  pending,
		"Statuses": domain.OrderStatuses,
		"IsAdmin":  true,
		"PageType": "orders",
	}
	return RenderPage(h.Templates, e, "layouts/admin.html", "admin/orders.html", data)
}

// UpdateStatus moves an order through its lifecycle.
// POST /admin/orders/{id}/status
func (h *OrderHandler) UpdateStatus(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")
	status := e.Request.FormValue("status")

	if err := h.Orders.UpdateStatus(id, status); err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			return e.String(400, "Unknown status")
		}
		return e.String(500, "Failed to update order")
	}
	return e.Redirect(http.StatusSeeOther, "/admin/orders")
}

// Delete removes an order record. POST /admin/orders/{id}/delete
func (h *OrderHandler) Delete(e *core.RequestEvent) error {
	if err := h.Orders.Delete(e.Request.PathValue("id")); err != nil {
		return e.String(500, "Failed to delete order")
	}
	return e.Redirect(http.StatusSeeOther, "/admin/orders")
}
