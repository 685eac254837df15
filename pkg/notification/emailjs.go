// Package notification sends templated transactional emails through the
// EmailJS REST API.
//
// Every business send in this app is fire-and-forget: order placement and
// message submission must never wait on, or fail because of, email delivery.
// Use SendDetached for those paths; Send is the blocking primitive under it.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	domain "github.com/Denise-hub/DenModa-Manufacturer/internal/core"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultAPIURL = "https://api.emailjs.com/api/v1.0/email/send"

const sendTimeout = 15 * time.Second

// TemplateParams is the flat key-value payload of an EmailJS template.
type TemplateParams map[string]string

// Client talks to EmailJS. A client missing any credential is disabled:
// Enabled() is false and every send is silently skipped.
type Client struct {
	serviceID  string
	templateID string
	publicKey  string
	apiURL     string
	adminEmail string
	http       *http.Client
	log        zerolog.Logger
}

func NewClient(serviceID, templateID, publicKey, adminEmail string) *Client {
	return &Client{
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		apiURL:     defaultAPIURL,
		adminEmail: adminEmail,
		http:       &http.Client{Timeout: sendTimeout},
		log:        log.With().Str("component", "notification").Logger(),
	}
}

// WithAPIURL overrides the endpoint. Test hook.
func (c *Client) WithAPIURL(url string) *Client {
	c.apiURL = url
	return c
}

func (c *Client) Enabled() bool {
	return c != nil && c.serviceID != "" && c.templateID != "" && c.publicKey != ""
}

// Send posts one templated email and waits for the API response. No retries.
func (c *Client) Send(ctx context.Context, params TemplateParams) error {
	if !c.Enabled() {
		return nil
	}
	body, err := json.Marshal(map[string]any{
		"service_id":      c.serviceID,
		"template_id":     c.templateID,
		"user_id":         c.publicKey,
		"template_params": params,
	})
	if err != nil {
		return fmt.Errorf("emailjs payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs send: status %d: %s", resp.StatusCode, detail)
	}
	return nil
}

// SendDetached spawns the send in its own goroutine with its own timeout.
// Failures are logged at debug level and swallowed; the caller's flow is
// never blocked or failed by email delivery.
func (c *Client) SendDetached(params TemplateParams) {
	if !c.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		if err := c.Send(ctx, params); err != nil {
			c.log.Debug().Err(err).Msg("detached email send failed")
		}
	}()
}

// NotifyNewOrder emails the admin a summary of a freshly placed order.
func (c *Client) NotifyNewOrder(ctx context.Context, o *domain.Order, orderID string) error {
	message := fmt.Sprintf(
		"A new order has been received on your DenModa website!\n\n"+
			"Customer Name: %s\n"+
			"Phone: %s\n"+
			"Product: %s\n"+
			"Price: $%v (KES %s)\n"+
			"Size: %s\n"+
			"Category: %s\n"+
			"Status: Pending\n\n"+
			"Please check your admin panel to confirm and process this order.\n\n"+
			"Order ID: %s\n"+
			"Time: %s",
		o.CustomerName, o.CustomerPhone, o.ProductTitle, o.ProductPrice, o.PriceKES,
		o.SelectedSize, o.ProductCategory, orderID, time.Now().Format("2006-01-02 15:04:05"),
	)
	return c.Send(ctx, TemplateParams{
		"from_name": "DenModa Website",
		"to_email":  c.adminEmail,
		"to_name":   "DenModa Admin",
		"reply_to":  c.adminEmail,
		"subject":   "New Order Received - " + o.CustomerName,
		"message":   message,
		"title":     "New Order - " + o.ProductTitle,
	})
}

// SendAutoReply confirms a contact-form submission to its sender.
func (c *Client) SendAutoReply(ctx context.Context, m *domain.Message) error {
	return c.Send(ctx, TemplateParams{
		"from_name": m.Name,
		"to_email":  m.Email,
		"to_name":   m.Name,
		"reply_to":  m.Email,
		"subject":   m.Subject,
		"message":   m.Body,
		"title":     m.Subject,
	})
}

// NotifyNewVisitor emails the admin about the first page view of a session.
func (c *Client) NotifyNewVisitor(ctx context.Context, ev *domain.AnalyticsEvent) error {
	message := fmt.Sprintf(
		"A new visitor has arrived on your DenModa website!\n\n"+
			"Visitor ID: %s\nDevice: %s\nPage: %s\nReferrer: %s\nTime: %s",
		ev.VisitorID, ev.Device, ev.Page, ev.Referrer, time.Now().Format("2006-01-02 15:04:05"),
	)
	return c.Send(ctx, TemplateParams{
		"from_name": "DenModa Website",
		"to_email":  c.adminEmail,
		"to_name":   "DenModa Admin",
		"reply_to":  c.adminEmail,
		"subject":   "New Visitor on DenModa Website",
		"message":   message,
		"title":     "New Visitor Notification",
	})
}
