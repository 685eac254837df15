package core

import "context"

// ContentRepository is the read/write surface for the marketing content
// collections. Active listings exclude is_active=false records; All listings
// do not.
type ContentRepository interface {
	HeroSlides(activeOnly bool) ([]*HeroSlide, error)
	IconBoxes(activeOnly bool) ([]*IconBox, error)
	Services(activeOnly bool) ([]*Service, error)
	Pricing(activeOnly bool) ([]*PricingPlan, error)
	Team(activeOnly bool) ([]*TeamMember, error)
	FAQs(activeOnly bool) ([]*FAQ, error)

	// Singletons. A nil result without error means "not seeded yet".
	About() (*About, error)
	Contact() (*ContactInfo, error)
	SiteSettings() (*SiteSettings, error)
	SaveAbout(a *About) error
	SaveContact(c *ContactInfo) error
	SaveSiteSettings(s *SiteSettings) error
}

// ProductRepository defines data access for the product catalog.
type ProductRepository interface {
	Products(activeOnly bool) ([]*Product, error)
	ByCategory(category string) ([]*Product, error)
	GetByID(id string) (*Product, error)
	Create(p *Product) (string, error)
	Update(p *Product) error
	Delete(id string) error
}

// OrderRepository defines data access for orders.
type OrderRepository interface {
	List() ([]*Order, error) // newest first
	GetByID(id string) (*Order, error)
	Create(o *Order) (string, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
}

// MessageRepository defines data access for contact-form messages.
type MessageRepository interface {
	List() ([]*Message, error) // newest first
	Create(m *Message) (string, error)
	MarkRead(id string, read bool) error
	Delete(id string) error
}

// AnalyticsRepository is the append-only page view log plus the dashboard
// aggregations read from it.
type AnalyticsRepository interface {
	Track(ev *AnalyticsEvent) error
	CountSince(days int) (int, error)
	CountToday() (int, error)
	DeviceBreakdown(days int) (map[string]int, error)
}

// Notifier sends templated transactional emails. Detached sends must never
// surface failure to the caller; they log and swallow.
type Notifier interface {
	Enabled() bool
	NotifyNewOrder(ctx context.Context, o *Order, orderID string) error
	SendAutoReply(ctx context.Context, m *Message) error
	NotifyNewVisitor(ctx context.Context, ev *AnalyticsEvent) error
}

// MediaUploader uploads a binary to the image CDN and returns its public
// URL plus asset identifier.
type MediaUploader interface {
	Configured() bool
	Upload(ctx context.Context, file any, folder string) (*UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

// UploadResult is the CDN response for a stored asset.
type UploadResult struct {
	URL      string
	PublicID string
	Type     string
	Format   string
	Width    int
	Height   int
	Bytes    int
}

// EventPublisher pushes an event onto the admin live stream.
type EventPublisher interface {
	Publish(eventType string, data map[string]any)
}
