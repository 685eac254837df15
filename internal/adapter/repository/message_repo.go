package repository

import (
	domain "github.com/Denise-hub/DenModa-Manufacturer/internal/core"

	"github.com/pocketbase/pocketbase/core"
)

// MessageRepo persists contact-form submissions.
type MessageRepo struct {
	store *Store
}

func NewMessageRepo(app core.App) domain.MessageRepository {
	return &MessageRepo{store: NewStore(app)}
}

func (r *MessageRepo) toDomain(rec *core.Record) *domain.Message {
	return &domain.Message{
		ID:      rec.Id,
		Name:    rec.GetString("name"),
		Email:   rec.GetString("email"),
		Subject: rec.GetString("subject"),
		Body:    rec.GetString("message"),
		IsRead:  rec.GetBool("is_read"),
		Created: rec.GetString("created"),
		Updated: rec.GetString("updated"),
	}
}

// List returns all messages, newest first.
func (r *MessageRepo) List() ([]*domain.Message, error) {
	records, err := r.store.ListAll(domain.CollectionMessages, "-created")
	if err != nil {
		return nil, err
	}
	messages := make([]*domain.Message, 0, len(records))
	for _, rec := range records {
		messages = append(messages, r.toDomain(rec))
	}
	return messages, nil
}

func (r *MessageRepo) Create(m *domain.Message) (string, error) {
	return r.store.Create(domain.CollectionMessages, map[string]any{
		"name":    m.Name,
		"email":   m.Email,
		"subject": m.Subject,
		"message": m.Body,
		"is_read": m.IsRead,
	})
}

func (r *MessageRepo) MarkRead(id string, read bool) error {
	return r.store.Update(domain.CollectionMessages, id, map[string]any{"is_read": read})
}

func (r *MessageRepo) Delete(id string) error {
	return r.store.Delete(domain.CollectionMessages, id)
}
