package service

import (
	"sync"
	"testing"

	"github.com/Denise-hub/DenModa-Manufacturer/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []*core.Message
	reads    map[string]bool
	deleted  []string
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{reads: map[string]bool{}}
}

func (f *fakeMessageRepo) List() ([]*core.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*core.Message(nil), f.messages...), nil
}

func (f *fakeMessageRepo) Create(m *core.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m.ID = "msg1"
	f.messages = append(f.messages, m)
	return m.ID, nil
}

func (f *fakeMessageRepo) MarkRead(id string, read bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads[id] = read
	return nil
}

func (f *fakeMessageRepo) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func TestSubmit_PersistsAndQueuesAutoReply(t *testing.T) {
	repo := newFakeMessageRepo()
	notifier := &fakeNotifier{enabled: true}
	svc := NewMessageService(repo, notifier, nil)

	err := svc.Submit("Jane", "jane@example.com", "Sizing question", "Do you ship to Nairobi?")
	require.NoError(t, err)
	svc.Flush()

	require.Len(t, repo.messages, 1)
	msg := repo.messages[0]
	assert.False(t, msg.IsRead)
	assert.Equal(t, "Sizing question", msg.Subject)
	assert.Equal(t, []string{"jane@example.com"}, notifier.replies)
}

func TestSubmit_DefaultSubject(t *testing.T) {
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo, nil, nil)

	require.NoError(t, svc.Submit("Jane", "jane@example.com", "   ", "Hello"))
	require.Len(t, repo.messages, 1)
	assert.Equal(t, "General Inquiry", repo.messages[0].Subject)
}

func TestSubmit_RejectsBlankFields(t *testing.T) {
	repo := newFakeMessageRepo()
	svc := NewMessageService(repo, &fakeNotifier{enabled: true}, nil)

	for _, tc := range []struct{ name, email, body string }{
		{"", "jane@example.com", "hi"},
		{"Jane", "", "hi"},
		{"Jane", "jane@example.com", "   "},
	} {
		err := svc.Submit(tc.name, tc.email, "", tc.body)
		assert.ErrorIs(t, err, ErrMissingContactFields)
	}
	svc.Flush()
	assert.Empty(t, repo.messages)
}

func TestSubmit_AutoReplyFailureDoesNotFailSubmit(t *testing.T) {
	repo := newFakeMessageRepo()
	notifier := &fakeNotifier{enabled: true, fail: true}
	svc := NewMessageService(repo, notifier, nil)

	require.NoError(t, svc.Submit("Jane", "jane@example.com", "Q", "Hello"))
	svc.Flush()
	assert.Len(t, repo.messages, 1, "message stored despite email failure")
}

func TestReplyLink(t *testing.T) {
	link := ReplyLink(&core.Message{Name: "Jane Doe", Email: "jane@example.com", Subject: "Sizing"})
	assert.Contains(t, link, "mailto:jane@example.com")
	assert.Contains(t, link, "subject=Re%3A%20Sizing")
	assert.Contains(t, link, "Hello%20Jane%20Doe")
}
