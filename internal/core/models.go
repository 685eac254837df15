// Package core holds the domain models and ports of the DenModa storefront.
package core

// Collection names. Every entity lives in its own PocketBase collection.
const (
	CollectionHeroSlides   = "hero_slides"
	CollectionIconBoxes    = "icon_boxes"
	CollectionAbout        = "about"
	CollectionServices     = "services"
	CollectionProducts     = "products"
	CollectionPricing      = "pricing"
	CollectionTeam         = "team"
	CollectionContact      = "contact"
	CollectionFAQs         = "faqs"
	CollectionSiteSettings = "site_settings"
	CollectionMessages     = "messages"
	CollectionOrders       = "orders"
	CollectionAnalytics    = "analytics"
)

// SingletonID is the fixed record id of the singleton collections
// (about, contact, site_settings). Those records are only ever upserted.
const SingletonID = "main"

// Product categories.
const (
	CategoryMan   = "man"
	CategoryWoman = "woman"
	CategoryNew   = "new"
)

// CategoryLabel maps a product category value to its display label.
func CategoryLabel(category string) string {
	switch category {
	case CategoryMan:
		return "Men"
	case CategoryWoman:
		return "Women"
	case CategoryNew:
		return "New Arrival"
	default:
		return category
	}
}

// Order statuses, in lifecycle order.
var OrderStatuses = []string{"pending", "confirmed", "processing", "shipped", "delivered", "cancelled"}

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// USDToKESRate is the fixed display conversion rate. Not a live rate.
const USDToKESRate = 130

// HeroSlide is one slide of the homepage carousel.
type HeroSlide struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	HighlightText string `json:"highlight_text"`
	Description   string `json:"description"`
	Order         int    `json:"order"`
	IsActive      bool   `json:"is_active"`
	Created       string `json:"created"`
	Updated       string `json:"updated"`
}

// IconBox is a small feature callout below the hero.
type IconBox struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"` // symbolic icon name, e.g. "bi-bag-dash"
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"is_active"`
	Created     string `json:"created"`
	Updated     string `json:"updated"`
}

// About is the singleton company-information section.
type About struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	ImagePublicID string   `json:"image_public_id"`
	Features      []string `json:"features"`
	Created       string   `json:"created"`
	Updated       string   `json:"updated"`
}

// Service is one entry of the services section.
type Service struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"is_active"`
	Created     string `json:"created"`
	Updated     string `json:"updated"`
}

// Product is the core catalog entity.
type Product struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Category      string   `json:"category"` // man, woman, new
	Image         string   `json:"image"`
	ImagePublicID string   `json:"image_public_id"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"` // base currency (USD), non-negative
	Sizes         []string `json:"sizes"`
	OrderLink     string   `json:"order_link"`
	IsNew         bool     `json:"is_new"`
	IsFeatured    bool     `json:"is_featured"`
	Order         int      `json:"order"`
	IsActive      bool     `json:"is_active"`
	Created       string   `json:"created"`
	Updated       string   `json:"updated"`
}

// PricingPlan is one pricing card.
type PricingPlan struct {
	ID         string   `json:"id"`
	Category   string   `json:"category"`
	Price      float64  `json:"price"`
	Currency   string   `json:"currency"`
	Unit       string   `json:"unit"`
	Features   []string `json:"features"`
	IsFeatured bool     `json:"is_featured"`
	Badge      string   `json:"badge"`
	Order      int      `json:"order"`
	IsActive   bool     `json:"is_active"`
	Created    string   `json:"created"`
	Updated    string   `json:"updated"`
}

// TeamMember is one member of the team section.
type TeamMember struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Role          string            `json:"role"`
	Description   string            `json:"description"`
	Image         string            `json:"image"`
	ImagePublicID string            `json:"image_public_id"`
	SocialLinks   map[string]string `json:"social_links"` // whatsapp, facebook, linkedin, instagram
	Order         int               `json:"order"`
	IsActive      bool              `json:"is_active"`
	Created       string            `json:"created"`
	Updated       string            `json:"updated"`
}

// ContactInfo is the singleton contact section content.
type ContactInfo struct {
	ID        string `json:"id"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	WhatsApp  string `json:"whatsapp"`
	Facebook  string `json:"facebook"`
	YouTube   string `json:"youtube"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
	Created   string `json:"created"`
	Updated   string `json:"updated"`
}

// FAQ is one question/answer pair of the FAQ accordion.
type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Order    int    `json:"order"`
	IsActive bool   `json:"is_active"`
	Created  string `json:"created"`
	Updated  string `json:"updated"`
}

// SiteSettings is the singleton global site configuration.
type SiteSettings struct {
	ID                     string `json:"id"`
	SiteName               string `json:"site_name"`
	Tagline                string `json:"tagline"`
	Logo                   string `json:"logo"`
	LogoPublicID           string `json:"logo_public_id"`
	FooterLogo             string `json:"footer_logo"`
	FooterLogoPublicID     string `json:"footer_logo_public_id"`
	HeroBackground         string `json:"hero_background"`
	HeroBackgroundPublicID string `json:"hero_background_public_id"`
	FooterAbout            string `json:"footer_about"`
	SeoTitle               string `json:"seo_title"`
	SeoDescription         string `json:"seo_description"`
	SeoKeywords            string `json:"seo_keywords"`
	Created                string `json:"created"`
	Updated                string `json:"updated"`
}

// Message is a contact-form submission. Created by the public form only;
// mutated (is_read) and deleted only by admin.
type Message struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"message"`
	IsRead  bool   `json:"is_read"`
	Created string `json:"created"`
	Updated string `json:"updated"`
}

// Order is a WhatsApp order record. Created by the public ordering flow;
// status mutated and record deleted only by admin.
type Order struct {
	ID              string  `json:"id"`
	ProductID       string  `json:"product_id"`
	ProductTitle    string  `json:"product_title"`
	ProductImage    string  `json:"product_image"` // absolute URL
	ProductPrice    float64 `json:"product_price"`
	PriceKES        string  `json:"price_kes"` // grouped-thousands display string
	ProductCategory string  `json:"product_category"`
	AvailableSizes  string  `json:"available_sizes"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	SelectedSize    string  `json:"selected_size"`
	Status          string  `json:"status"`
	Source          string  `json:"source"`
	Created         string  `json:"created"`
	Updated         string  `json:"updated"`
}

// AnalyticsEvent is one append-only page view record.
type AnalyticsEvent struct {
	ID           string `json:"id"`
	VisitorID    string `json:"visitor_id"`
	Page         string `json:"page"`
	Referrer     string `json:"referrer"`
	Device       string `json:"device"` // mobile, tablet, desktop
	UserAgent    string `json:"user_agent"`
	Language     string `json:"language"`
	ScreenWidth  int    `json:"screen_width"`
	ScreenHeight int    `json:"screen_height"`
	Created      string `json:"created"`
}

// DashboardStats backs the admin dashboard header cards.
type DashboardStats struct {
	VisitsToday     int
	VisitsLast30d   int
	PendingOrders   int
	TotalOrders     int
	UnreadMessages  int
	ActiveProducts  int
	DeviceBreakdown map[string]int
}
