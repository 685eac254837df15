package core

// ResolveContent returns fetched when it is non-empty, otherwise defaults.
// The public site never renders an empty section: collections that have not
// been seeded yet fall back to the baked-in dataset below.
func ResolveContent[T any](fetched, defaults []T) []T {
	if len(fetched) > 0 {
		return fetched
	}
	return defaults
}

// Baked-in content used as fallback when a collection is empty and as the
// payload of the idempotent seed command. Ids are fixed so seeding twice
// leaves a single record per entry.

func DefaultHeroSlides() []*HeroSlide {
	return []*HeroSlide{
		{
			ID:            "slide1",
			Title:         "Welcome at",
			HighlightText: "DenModa",
			Description:   "Feel free to contact us and leave an order. We're here to meet your needs",
			Order:         1,
			IsActive:      true,
		},
		{
			ID:            "slide2",
			Title:         "Handmade with",
			HighlightText: "Passion",
			Description:   "Every sandal is crafted by hand, one stitch at a time",
			Order:         2,
			IsActive:      true,
		},
	}
}

func DefaultIconBoxes() []*IconBox {
	return []*IconBox{
		{ID: "box1", Icon: "bi-bag-dash", Title: "Order Online", Description: "Browse the catalog and order straight from WhatsApp", Link: "#products", Order: 1, IsActive: true},
		{ID: "box2", Icon: "bi-truck", Title: "Fast Delivery", Description: "We ship across the region within days", Link: "#contact", Order: 2, IsActive: true},
		{ID: "box3", Icon: "bi-hand-thumbs-up", Title: "Quality Craft", Description: "Durable leather and tire outsoles, built to last", Link: "#about", Order: 3, IsActive: true},
	}
}

func DefaultServices() []*Service {
	return []*Service{
		{ID: "svc1", Icon: "bi-scissors", Title: "Custom Orders", Description: "Made-to-measure sandals in your size and style", Order: 1, IsActive: true},
		{ID: "svc2", Icon: "bi-box-seam", Title: "Wholesale", Description: "Bulk production for resellers and shops", Order: 2, IsActive: true},
		{ID: "svc3", Icon: "bi-tools", Title: "Repairs", Description: "We restore worn soles and stitching", Order: 3, IsActive: true},
	}
}

func DefaultPricing() []*PricingPlan {
	return []*PricingPlan{
		{ID: "price1", Category: "Men", Price: 15, Currency: "$", Unit: "Shoe", Features: []string{"Leather upper", "Tire outsole", "All sizes 40-45"}, Order: 1, IsActive: true},
		{ID: "price2", Category: "Women", Price: 10, Currency: "$", Unit: "Shoe", Features: []string{"Hand-sewn thread work", "Sizes 36-40"}, IsFeatured: true, Order: 2, IsActive: true},
		{ID: "price3", Category: "New Arrivals", Price: 18, Currency: "$", Unit: "Shoe", Features: []string{"Latest designs", "Premium materials"}, Badge: "Others", Order: 3, IsActive: true},
	}
}

func DefaultFAQs() []*FAQ {
	return []*FAQ{
		{ID: "faq1", Question: "How do I place an order?", Answer: "Pick a product, fill in your name and phone and we continue on WhatsApp.", Order: 1, IsActive: true},
		{ID: "faq2", Question: "Do you deliver?", Answer: "Yes, we deliver across the region. Delivery time depends on your location.", Order: 2, IsActive: true},
		{ID: "faq3", Question: "Can I order a custom size?", Answer: "Absolutely. Mention your size in the order message and we make it to measure.", Order: 3, IsActive: true},
	}
}

func DefaultProducts() []*Product {
	return []*Product{
		{
			ID: "p1", Title: "Classic Leather Sandal", Category: CategoryMan,
			Image:       "/assets/img/products/product-29.JPG",
			Description: "Handcrafted men's leather sandal with durable tire outsole. Perfect for everyday wear.",
			Sizes:       []string{"40", "41", "42", "43", "44", "45"},
			Price:       15, Order: 1, IsActive: true,
		},
		{
			ID: "p2", Title: "New Arrival - Premium", Category: CategoryNew,
			Image:       "/assets/img/products/product-25.JPG",
			Description: "Our latest design featuring premium materials and modern styling.",
			Sizes:       []string{"38", "39", "40", "41", "42", "43", "44"},
			Price:       18, IsNew: true, Order: 2, IsActive: true,
		},
		{
			ID: "p3", Title: "Elegant Thread Sandal", Category: CategoryWoman,
			Image:       "/assets/img/products/product-10.jpg",
			Description: "Hand-sewn women's sandal with intricate thread work. Elegant and comfortable.",
			Sizes:       []string{"36", "37", "38", "39", "40"},
			Price:       10, Order: 3, IsActive: true,
		},
		{
			ID: "p4", Title: "Bohemian Style", Category: CategoryWoman,
			Image:       "/assets/img/products/product-31.jpg",
			Description: "Beautiful bohemian-inspired design. Handwoven with care and attention to detail.",
			Sizes:       []string{"36", "37", "38", "39", "40", "41"},
			Price:       12, Order: 4, IsActive: true,
		},
	}
}

func DefaultAbout() *About {
	return &About{
		ID:          SingletonID,
		Title:       "About DenModa",
		Subtitle:    "Handmade sandals from Goma",
		Description: "DenModa is a small workshop crafting leather sandals by hand. Every pair is cut, sewn and finished by our team.",
		Features:    []string{"Genuine leather", "Hand stitching", "Tire outsoles", "Custom sizes"},
	}
}

func DefaultContact() *ContactInfo {
	return &ContactInfo{
		ID:        SingletonID,
		Address:   "N28 Kyeshero Q, Goma, RDC",
		Email:     "denmaombi@gmail.com",
		Phone:     "+254 798 257 117",
		WhatsApp:  "254798257117",
		Facebook:  "https://web.facebook.com/profile.php?id=100078174605745",
		YouTube:   "https://www.youtube.com/channel/UCAfg9CgYWE5dCaay8GcGtsA/",
		LinkedIn:  "https://www.linkedin.com/company/denmoda/",
		Instagram: "https://www.instagram.com/den_denmoda",
	}
}

func DefaultSiteSettings() *SiteSettings {
	return &SiteSettings{
		ID:          SingletonID,
		SiteName:    "DenModa",
		Tagline:     "Manufacturer",
		FooterAbout: "Handmade leather sandals, crafted in Goma.",
		SeoTitle:    "DenModa - Handmade Leather Sandals",
	}
}
