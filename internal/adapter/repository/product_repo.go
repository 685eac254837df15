package repository

import (
	domain "github.com/Denise-hub/DenModa-Manufacturer/internal/core"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
)

// ProductRepo is the catalog data access layer.
type ProductRepo struct {
	app   core.App
	store *Store
}

func NewProductRepo(app core.App) domain.ProductRepository {
	return &ProductRepo{app: app, store: NewStore(app)}
}

func (r *ProductRepo) toDomain(rec *core.Record) *domain.Product {
	return &domain.Product{
		ID:            rec.Id,
		Title:         rec.GetString("title"),
		Category:      rec.GetString("category"),
		Image:         rec.GetString("image"),
		ImagePublicID: rec.GetString("image_public_id"),
		Description:   rec.GetString("description"),
		Price:         rec.GetFloat("price"),
		Sizes:         rec.GetStringSlice("sizes"),
		OrderLink:     rec.GetString("order_link"),
		IsNew:         rec.GetBool("is_new"),
		IsFeatured:    rec.GetBool("is_featured"),
		Order:         rec.GetInt("order"),
		IsActive:      rec.GetBool("is_active"),
		Created:       rec.GetString("created"),
		Updated:       rec.GetString("updated"),
	}
}

func (r *ProductRepo) fields(p *domain.Product) map[string]any {
	return map[string]any{
		"title":           p.Title,
		"category":        p.Category,
		"image":           p.Image,
		"image_public_id": p.ImagePublicID,
		"description":     p.Description,
		"price":           p.Price,
		"sizes":           p.Sizes,
		"order_link":      p.OrderLink,
		"is_new":          p.IsNew,
		"is_featured":     p.IsFeatured,
		"order":           p.Order,
		"is_active":       p.IsActive,
	}
}

// Products lists the catalog. The public site passes activeOnly=true; the
// admin manager lists everything so drafts stay editable.
func (r *ProductRepo) Products(activeOnly bool) ([]*domain.Product, error) {
	var records []*core.Record
	var err error
	if activeOnly {
		records, err = r.store.ListActive(domain.CollectionProducts)
	} else {
		records, err = r.store.ListAll(domain.CollectionProducts, "order")
	}
	if err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, r.toDomain(rec))
	}
	return products, nil
}

func (r *ProductRepo) ByCategory(category string) ([]*domain.Product, error) {
	records, err := r.app.FindRecordsByFilter(
		domain.CollectionProducts,
		"category = {:category} && is_active = true",
		"order,id",
		0, 0,
		dbx.Params{"category": category},
	)
	if err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, r.toDomain(rec))
	}
	return products, nil
}

func (r *ProductRepo) GetByID(id string) (*domain.Product, error) {
	rec, err := r.store.GetByID(domain.CollectionProducts, id)
	if err != nil || rec == nil {
		return nil, err
	}
	return r.toDomain(rec), nil
}

func (r *ProductRepo) Create(p *domain.Product) (string, error) {
	return r.store.Create(domain.CollectionProducts, r.fields(p))
}

func (r *ProductRepo) Update(p *domain.Product) error {
	return r.store.Update(domain.CollectionProducts, p.ID, r.fields(p))
}

func (r *ProductRepo) Delete(id string) error {
	return r.store.Delete(domain.CollectionProducts, id)
}
