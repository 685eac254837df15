package repository

import (
	domain "github.com/Denise-hub/DenModa-Manufacturer/internal/core"

	"github.com/pocketbase/pocketbase/core"
)

// OrderRepo persists WhatsApp order records.
type OrderRepo struct {
	store *Store
}

func NewOrderRepo(app core.App) domain.OrderRepository {
	return &OrderRepo{store: NewStore(app)}
}

func (r *OrderRepo) toDomain(rec *core.Record) *domain.Order {
	return &domain.Order{
		ID:              rec.Id,
		ProductID:       rec.GetString("product_id"),
		ProductTitle:    rec.GetString("product_title"),
		ProductImage:    rec.GetString("product_image"),
		ProductPrice:    rec.GetFloat("product_price"),
		PriceKES:        rec.GetString("price_kes"),
		ProductCategory: rec.GetString("product_category"),
		AvailableSizes:  rec.GetString("available_sizes"),
		CustomerName:    rec.GetString("customer_name"),
		CustomerPhone:   rec.GetString("customer_phone"),
		SelectedSize:    rec.GetString("selected_size"),
		Status:          rec.GetString("status"),
		Source:          rec.GetString("source"),
		Created:         rec.GetString("created"),
		Updated:         rec.GetString("updated"),
	}
}

// List returns all orders, newest first.
func (r *OrderRepo) List() ([]*domain.Order, error) {
	records, err := r.store.ListAll(domain.CollectionOrders, "-created")
	if err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for _, rec := range records {
		orders = append(orders, r.toDomain(rec))
	}
	return orders, nil
}

func (r *OrderRepo) GetByID(id string) (*domain.Order, error) {
	rec, err := r.store.GetByID(domain.CollectionOrders, id)
	if err != nil || rec == nil {
		return nil, err
	}
	return r.toDomain(rec), nil
}

func (r *OrderRepo) Create(o *domain.Order) (string, error) {
	return r.store.Create(domain.CollectionOrders, map[string]any{
		"product_id":       o.ProductID,
		"product_title":    o.ProductTitle,
		"product_image":    o.ProductImage,
		"product_price":    o.ProductPrice,
		"price_kes":        o.PriceKES,
		"product_category": o.ProductCategory,
		"available_sizes":  o.AvailableSizes,
		"customer_name":    o.CustomerName,
		"customer_phone":   o.CustomerPhone,
		"selected_size":    o.SelectedSize,
		"status":           o.Status,
		"source":           o.Source,
	})
}

func (r *OrderRepo) UpdateStatus(id, status string) error {
	return r.store.Update(domain.CollectionOrders, id, map[string]any{"status": status})
}

func (r *OrderRepo) Delete(id string) error {
	return r.store.Delete(domain.CollectionOrders, id)
}
