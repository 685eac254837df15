package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Denise-hub/DenModa-Manufacturer/internal/core"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrMissingContactFields rejects a contact submission with a blank name,
// email or message body.
var ErrMissingContactFields = errors.New("name, email and message are required")

// MessageService handles public contact submissions and the admin inbox.
type MessageService struct {
	messages core.MessageRepository
	notifier core.Notifier
	events   core.EventPublisher
	log      zerolog.Logger

	bg sync.WaitGroup
}

func NewMessageService(messages core.MessageRepository, notifier core.Notifier, events core.EventPublisher) *MessageService {
	return &MessageService{
		messages: messages,
		notifier: notifier,
		events:   events,
		log:      log.With().Str("component", "messages").Logger(),
	}
}

// Submit persists a contact-form message and sends the auto-reply as a
// detached task. The submission succeeds as soon as the message is stored;
// the auto-reply is best effort.
func (s *MessageService) Submit(name, email, subject, body string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	body = strings.TrimSpace(body)
	if name == "" || email == "" || body == "" {
		return ErrMissingContactFields
	}

	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = "General Inquiry"
	}

	msg := &core.Message{
		Name:    name,
		Email:   email,
		Subject: subject,
		Body:    body,
		IsRead:  false,
	}
	msgID, err := s.messages.Create(msg)
	if err != nil {
		return err
	}

	if s.events != nil {
		s.events.Publish("message.created", map[string]any{
			"message_id": msgID,
			"name":       name,
			"subject":    subject,
		})
	}

	if s.notifier != nil && s.notifier.Enabled() {
		s.bg.Add(1)
		go func() {
			defer s.bg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), detachTimeout)
			defer cancel()
			if err := s.notifier.SendAutoReply(ctx, msg); err != nil {
				s.log.Debug().Err(err).Str("email", email).Msg("contact auto-reply failed")
			}
		}()
	}
	return nil
}

// Flush waits for detached side effects. Used on shutdown and in tests.
func (s *MessageService) Flush() {
	s.bg.Wait()
}

func (s *MessageService) List() ([]*core.Message, error) {
	return s.messages.List()
}

func (s *MessageService) MarkRead(id string, read bool) error {
	return s.messages.MarkRead(id, read)
}

func (s *MessageService) Delete(id string) error {
	return s.messages.Delete(id)
}

// ReplyLink builds the mailto: link the admin inbox uses to answer a
// message in the admin's own mail client.
func ReplyLink(m *core.Message) string {
	return "mailto:" + m.Email +
		"?subject=" + encodeURIComponent("Re: "+m.Subject) +
		"&body=" + encodeURIComponent("Hello "+m.Name+",\n\n")
}
