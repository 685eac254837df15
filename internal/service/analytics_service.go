package service

import (
	"context"
	"strings"
	"sync"

	"github.com/Denise-hub/DenModa-Manufacturer/internal/core"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// VisitorCookie is the first-party cookie carrying the anonymous visitor id.
const VisitorCookie = "dm_visitor"

const maxUserAgentLen = 200

// PageView is the raw tracking input extracted from a request.
type PageView struct {
	VisitorID    string
	NewVisitor   bool
	Page         string
	Referrer     string
	UserAgent    string
	Language     string
	ScreenWidth  int
	ScreenHeight int
}

// AnalyticsService records anonymous page views and aggregates them for the
// admin dashboard. Tracking is always detached: a slow or failing analytics
// write must never delay a page render.
type AnalyticsService struct {
	analytics core.AnalyticsRepository
	orders    core.OrderRepository
	messages  core.MessageRepository
	products  core.ProductRepository
	notifier  core.Notifier
	log       zerolog.Logger

	bg sync.WaitGroup
}

func NewAnalyticsService(analytics core.AnalyticsRepository, orders core.OrderRepository, messages core.MessageRepository, products core.ProductRepository, notifier core.Notifier) *AnalyticsService {
	return &AnalyticsService{
		analytics: analytics,
		orders:    orders,
		messages:  messages,
		products:  products,
		notifier:  notifier,
		log:       log.With().Str("component", "analytics").Logger(),
	}
}

// NewVisitorID mints the anonymous id stored in the visitor cookie.
func NewVisitorID() string {
	return uuid.NewString()
}

// ClassifyDevice buckets a user agent into mobile, tablet or desktop.
func ClassifyDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet"):
		return "tablet"
	case strings.Contains(ua, "mobi") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone"):
		return "mobile"
	default:
		return "desktop"
	}
}

// Track records a page view as a detached task. A first visit to the home
// page additionally triggers the new-visitor email, best effort.
func (s *AnalyticsService) Track(pv PageView) {
	ev := &core.AnalyticsEvent{
		VisitorID:    pv.VisitorID,
		Page:         pv.Page,
		Referrer:     pv.Referrer,
		Device:       ClassifyDevice(pv.UserAgent),
		UserAgent:    truncate(pv.UserAgent, maxUserAgentLen),
		Language:     pv.Language,
		ScreenWidth:  pv.ScreenWidth,
		ScreenHeight: pv.ScreenHeight,
	}

	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		if err := s.analytics.Track(ev); err != nil {
			s.log.Debug().Err(err).Str("page", ev.Page).Msg("page view write failed")
			return
		}
		if pv.NewVisitor && pv.Page == "/" && s.notifier != nil && s.notifier.Enabled() {
			ctx, cancel := context.WithTimeout(context.Background(), detachTimeout)
			defer cancel()
			if err := s.notifier.NotifyNewVisitor(ctx, ev); err != nil {
				s.log.Debug().Err(err).Msg("new-visitor notification failed")
			}
		}
	}()
}

// Flush waits for detached side effects. Used on shutdown and in tests.
func (s *AnalyticsService) Flush() {
	s.bg.Wait()
}

// DashboardStats assembles the admin dashboard header cards. Per-source
// failures zero that card and log, so one broken aggregation does not blank
// the whole dashboard.
func (s *AnalyticsService) DashboardStats() core.DashboardStats {
	var stats core.DashboardStats
	var err error

	if stats.VisitsToday, err = s.analytics.CountToday(); err != nil {
		s.log.Warn().Err(err).Msg("visits-today aggregation failed")
	}
	if stats.VisitsLast30d, err = s.analytics.CountSince(30); err != nil {
		s.log.Warn().Err(err).Msg("visits-30d aggregation failed")
	}
	if stats.DeviceBreakdown, err = s.analytics.DeviceBreakdown(30); err != nil {
		s.log.Warn().Err(err).Msg("device breakdown aggregation failed")
	}

	if orders, err := s.orders.List(); err != nil {
		s.log.Warn().Err(err).Msg("order stats failed")
	} else {
		stats.TotalOrders = len(orders)
		for _, o := range orders {
			if o.Status == "pending" {
				stats.PendingOrders++
			}
		}
	}

	if messages, err := s.messages.List(); err != nil {
		s.log.Warn().Err(err).Msg("message stats failed")
	} else {
		for _, m := range messages {
			if !m.IsRead {
				stats.UnreadMessages++
			}
		}
	}

	if products, err := s.products.Products(true); err != nil {
		s.log.Warn().Err(err).Msg("product stats failed")
	} else {
		stats.ActiveProducts = len(products)
	}

	return stats
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
