// Package app provides the dependency injection container for the DenModa
// storefront. All service initialization happens in one place.
package app

import (
	"fmt"
	"html/template"

	"github.com/Denise-hub/DenModa-Manufacturer/internal/adapter/repository"
	domain "github.com/Denise-hub/DenModa-Manufacturer/internal/core"
	"github.com/Denise-hub/DenModa-Manufacturer/internal/service"
	"github.com/Denise-hub/DenModa-Manufacturer/pkg/broker"
	"github.com/Denise-hub/DenModa-Manufacturer/pkg/config"
	"github.com/Denise-hub/DenModa-Manufacturer/pkg/media"
	"github.com/Denise-hub/DenModa-Manufacturer/pkg/notification"

	"github.com/pocketbase/pocketbase"
)

// Container holds all application dependencies.
type Container struct {
	PB     *pocketbase.PocketBase
	Config *config.Config

	Templates *template.Template
	Broker    *broker.Broker

	// Repositories (data access layer)
	ContentRepo   *repository.ContentRepo
	ProductRepo   domain.ProductRepository
	OrderRepo     domain.OrderRepository
	MessageRepo   domain.MessageRepository
	AnalyticsRepo domain.AnalyticsRepository

	// External clients
	Notifier *notification.Client
	Uploader *media.Uploader

	// Domain services
	Content   *service.ContentService
	Orders    *service.OrderService
	Messages  *service.MessageService
	Analytics *service.AnalyticsService
}

// NewContainer creates and wires all dependencies.
func NewContainer(pb *pocketbase.PocketBase, cfg *config.Config) (*Container, error) {
	c := &Container{
		PB:     pb,
		Config: cfg,
	}

	c.Broker = broker.New()

	templates, err := InitTemplates()
	if err != nil {
		return nil, fmt.Errorf("init templates: %w", err)
	}
	c.Templates = templates

	// Repositories
	c.ContentRepo = repository.NewContentRepo(pb)
	c.ProductRepo = repository.NewProductRepo(pb)
	c.OrderRepo = repository.NewOrderRepo(pb)
	c.MessageRepo = repository.NewMessageRepo(pb)
	c.AnalyticsRepo = repository.NewAnalyticsRepo(pb)

	// External clients. Both are optional: missing configuration disables
	// the feature instead of failing startup.
	c.Notifier = notification.NewClient(
		cfg.EmailJSServiceID,
		cfg.EmailJSTemplateID,
		cfg.EmailJSPublicKey,
		cfg.AdminEmail,
	)
	c.Uploader = media.NewUploader(cfg.CloudinaryURL, cfg.CloudinaryPreset, cfg.CloudinaryFolder)

	// Domain services
	c.Content = service.NewContentService(c.ContentRepo, c.ProductRepo)
	c.Orders = service.NewOrderService(c.OrderRepo, c.Notifier, c.Broker, cfg.WhatsAppNumber, cfg.SiteOrigin)
	c.Messages = service.NewMessageService(c.MessageRepo, c.Notifier, c.Broker)
	c.Analytics = service.NewAnalyticsService(c.AnalyticsRepo, c.OrderRepo, c.MessageRepo, c.ProductRepo, c.Notifier)

	return c, nil
}
