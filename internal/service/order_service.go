package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Denise-hub/DenModa-Manufacturer/internal/core"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrMissingCustomerInfo rejects an order before any persistence or
// outbound-link work happens.
var ErrMissingCustomerInfo = errors.New("customer name and phone are required")

// ErrInvalidStatus rejects an unknown order status transition.
var ErrInvalidStatus = errors.New("invalid order status")

const detachTimeout = 15 * time.Second

// OrderRequest is a public order-form submission for a selected product.
type OrderRequest struct {
	Product       *core.Product
	CustomerName  string
	CustomerPhone string
	SelectedSize  string
}

// OrderService implements the WhatsApp ordering flow and the admin order
// management operations.
type OrderService struct {
	orders   core.OrderRepository
	notifier core.Notifier
	events   core.EventPublisher

	whatsAppNumber string // digits only
	siteOrigin     string
	log            zerolog.Logger

	// Detached side effects register here so shutdown and tests can flush.
	bg sync.WaitGroup
}

func NewOrderService(orders core.OrderRepository, notifier core.Notifier, events core.EventPublisher, whatsAppNumber, siteOrigin string) *OrderService {
	return &OrderService{
		orders:         orders,
		notifier:       notifier,
		events:         events,
		whatsAppNumber: digitsOnly(whatsAppNumber),
		siteOrigin:     strings.TrimSuffix(siteOrigin, "/"),
		log:            log.With().Str("component", "orders").Logger(),
	}
}

// PlaceOrder validates the request, returns the WhatsApp deep link for the
// immediate redirect, and runs order persistence plus the admin email as one
// detached task. The deep link is the primary success signal: persistence
// and notification failures never block or roll it back.
func (s *OrderService) PlaceOrder(req OrderRequest) (string, error) {
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.CustomerPhone) == "" {
		return "", ErrMissingCustomerInfo
	}
	if req.Product == nil {
		return "", errors.New("no product selected")
	}

	p := req.Product
	sizes := "Please inquire"
	if len(p.Sizes) > 0 {
		sizes = strings.Join(p.Sizes, ", ")
	}
	selectedSize := req.SelectedSize
	if selectedSize == "" {
		selectedSize = "Not specified"
	}
	category := core.CategoryLabel(p.Category)
	priceKES := FormatKES(p.Price)

	message := buildOrderMessage(p.Title, category, p.Price, priceKES, sizes, selectedSize, req.CustomerName, req.CustomerPhone)
	link := WhatsAppLink(s.whatsAppNumber, message)

	order := &core.Order{
		ProductID:       p.ID,
		ProductTitle:    p.Title,
		ProductImage:    s.absoluteImageURL(p.Image),
		ProductPrice:    p.Price,
		PriceKES:        priceKES,
		ProductCategory: category,
		AvailableSizes:  sizes,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		SelectedSize:    selectedSize,
		Status:          "pending",
		Source:          "website",
	}

	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		s.persistAndNotify(order)
	}()

	return link, nil
}

// persistAndNotify is the detached half of PlaceOrder. Failures are logged
// with the full payload so a lost order can be replayed by hand; they are
// never surfaced to the customer, who is already on WhatsApp.
func (s *OrderService) persistAndNotify(order *core.Order) {
	orderID, err := s.orders.Create(order)
	if err != nil {
		s.log.Error().Err(err).
			Str("customer", order.CustomerName).
			Str("product", order.ProductTitle).
			Msg("order persistence failed after deep-link handoff")
		return
	}

	if s.events != nil {
		s.events.Publish("order.created", map[string]any{
			"order_id": orderID,
			"customer": order.CustomerName,
			"product":  order.ProductTitle,
		})
	}

	if s.notifier != nil && s.notifier.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), detachTimeout)
		defer cancel()
		if err := s.notifier.NotifyNewOrder(ctx, order, orderID); err != nil {
			s.log.Debug().Err(err).Msg("order notification email failed")
		}
	}
}

// Flush waits for detached side effects. Used on shutdown and in tests.
func (s *OrderService) Flush() {
	s.bg.Wait()
}

func (s *OrderService) List() ([]*core.Order, error) {
	return s.orders.List()
}

// UpdateStatus moves an order through its lifecycle. Only the known
// statuses are accepted.
func (s *OrderService) UpdateStatus(id, status string) error {
	if !core.ValidOrderStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.orders.UpdateStatus(id, status)
}

func (s *OrderService) Delete(id string) error {
	return s.orders.Delete(id)
}

func (s *OrderService) absoluteImageURL(image string) string {
	if image == "" || strings.HasPrefix(image, "http") {
		return image
	}
	if !strings.HasPrefix(image, "/") {
		image = "/" + image
	}
	return s.siteOrigin + image
}

// FormatKES converts a base-currency price to the Kenyan shilling display
// string with grouped thousands, e.g. 15 -> "1,950". The rate is a fixed
// constant, not a live exchange rate.
func FormatKES(price float64) string {
	return humanize.Commaf(price * core.USDToKESRate)
}

// FormatUSD renders the base price without trailing zeros, e.g. "$15".
func FormatUSD(price float64) string {
	return "$" + strconv.FormatFloat(price, 'f', -1, 64)
}

// WhatsAppLink builds the wa.me deep link for a pre-filled message.
func WhatsAppLink(phoneNumber, message string) string {
	return "https://wa.me/" + digitsOnly(phoneNumber) + "?text=" + encodeURIComponent(message)
}

func buildOrderMessage(title, category string, price float64, priceKES, sizes, selectedSize, name, phone string) string {
	return "Hello DenModa Team!\n\n" +
		"I would like to place an order for:\n\n" +
		"*Product:* " + title + "\n" +
		"*Category:* " + category + "\n" +
		"*Price:* " + FormatUSD(price) + " (KES " + priceKES + ")\n" +
		"*Available Sizes:* " + sizes + "\n" +
		"*My Preferred Size:* " + selectedSize + "\n\n" +
		"*My Details:*\n" +
		"Name: " + name + "\n" +
		"Phone: " + phone + "\n\n" +
		"Please confirm availability and let me know how to proceed with the order.\n\n" +
		"Thank you!"
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// encodeURIComponent matches the JavaScript escaping the deep-link
// consumers expect: spaces become %20, not '+'.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
