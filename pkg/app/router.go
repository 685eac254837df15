// Package app wires the HTTP routes onto the embedded PocketBase server.
package app

import (
	"context"
	"os"
	"time"

	internalApp "github.com/Denise-hub/DenModa-Manufacturer/internal/app"
	"github.com/Denise-hub/DenModa-Manufacturer/pkg/handlers"
	"github.com/Denise-hub/DenModa-Manufacturer/pkg/middleware"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

const contentLoadTimeout = 10 * time.Second

// RegisterRoutes configures all application routes from the container.
func RegisterRoutes(pb *pocketbase.PocketBase, c *internalApp.Container) {
	pb.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Prime the content snapshot before the first request; per-section
		// failures fall back to defaults inside the service.
		ctx, cancel := context.WithTimeout(context.Background(), contentLoadTimeout)
		c.Content.LoadAll(ctx)
		cancel()

		// Static assets
		se.Router.GET("/assets/{path...}", apis.Static(os.DirFS("./assets"), false))

		// Site settings for every layout render
		se.Router.BindFunc(middleware.InjectSiteSettings(c.Content))

		public := &handlers.PublicHandler{
			Templates: c.Templates,
			Content:   c.Content,
			Orders:    c.Orders,
			Messages:  c.Messages,
			Analytics: c.Analytics,
			Products:  c.ProductRepo,
		}
		admin := &handlers.AdminHandler{
			App:        pb,
			Templates:  c.Templates,
			Broker:     c.Broker,
			Content:    c.Content,
			Analytics:  c.Analytics,
			AdminEmail: c.Config.AdminEmail,
		}
		catalog := &handlers.CatalogHandler{
			Templates: c.Templates,
			Products:  c.ProductRepo,
			Content:   c.Content,
			Uploader:  c.Uploader,
		}
		content := &handlers.ContentHandler{
			Templates: c.Templates,
			Repo:      c.ContentRepo,
			Content:   c.Content,
			Uploader:  c.Uploader,
		}
		site := &handlers.SiteHandler{
			Templates: c.Templates,
			Repo:      c.ContentRepo,
			Content:   c.Content,
			Uploader:  c.Uploader,
		}
		orders := &handlers.OrderHandler{
			Templates: c.Templates,
			Orders:    c.Orders,
		}
		messages := &handlers.MessageHandler{
			Templates: c.Templates,
			Messages:  c.Messages,
		}

		// Public routes
		se.Router.GET("/", public.Index)
		se.Router.GET("/products/{category}", public.ProductsByCategory)
		se.Router.POST("/order", public.PlaceOrder)
		se.Router.POST("/contact", public.ContactSubmit)
		se.Router.POST("/api/track", public.TrackBeacon)

		// Auth routes
		se.Router.GET("/login", admin.ShowLogin)
		se.Router.POST("/login", admin.ProcessLogin)
		se.Router.GET("/admin/logout", admin.Logout)

		// Admin routes (protected)
		adminGroup := se.Router.Group("/admin")
		adminGroup.BindFunc(middleware.RequireAdmin(pb, c.Config.AdminEmail))

		adminGroup.GET("/", admin.Dashboard)
		adminGroup.GET("/stream", admin.Stream)

		// Product catalog
		adminGroup.GET("/products", catalog.List)
		adminGroup.POST("/products", catalog.Save)
		adminGroup.POST("/products/{id}/delete", catalog.Delete)

		// List-style content sections
		adminGroup.GET("/content/{section}", content.List)
		adminGroup.POST("/content/{section}", content.Save)
		adminGroup.POST("/content/{section}/{id}/delete", content.Delete)

		// Singleton sections
		adminGroup.GET("/about", site.ShowAbout)
		adminGroup.POST("/about", site.SaveAbout)
		adminGroup.GET("/contact", site.ShowContact)
		adminGroup.POST("/contact", site.SaveContact)
		adminGroup.GET("/settings", site.ShowSettings)
		adminGroup.POST("/settings", site.SaveSettings)

		// Orders
		adminGroup.GET("/orders", orders.List)
		adminGroup.POST("/orders/{id}/status", orders.UpdateStatus)
		adminGroup.POST("/orders/{id}/delete", orders.Delete)

		// Messages
		adminGroup.GET("/messages", messages.List)
		adminGroup.POST("/messages/{id}/read", messages.MarkRead)
		adminGroup.POST("/messages/{id}/delete", messages.Delete)

		return se.Next()
	})
}
