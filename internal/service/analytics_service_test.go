package service

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/Denise-hub/DenModa-Manufacturer/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyticsRepo struct {
	mu      sync.Mutex
	events  []*core.AnalyticsEvent
	failAll bool

	today   int
	last30  int
	devices map[string]int
	aggErr  error
}

func (f *fakeAnalyticsRepo) Track(ev *core.AnalyticsEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errors.New("store down")
	}
	f.events = append(f.events, ev)
	return nil
}

func (f *fakeAnalyticsRepo) CountToday() (int, error)    { return f.today, f.aggErr }
func (f *fakeAnalyticsRepo) CountSince(int) (int, error) { return f.last30, f.aggErr }
func (f *fakeAnalyticsRepo) DeviceBreakdown(int) (map[string]int, error) {
	return f.devices, f.aggErr
}

type fakeProductRepo struct {
	products []*core.Product
	err      error
}

func (f *fakeProductRepo) Products(activeOnly bool) ([]*core.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !activeOnly {
		return f.products, nil
	}
	var active []*core.Product
	for _, p := range f.products {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}

func (f *fakeProductRepo) ByCategory(category string) ([]*core.Product, error) {
	var out []*core.Product
	for _, p := range f.products {
		if p.IsActive && p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetByID(id string) (*core.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Create(p *core.Product) (string, error) {
	p.ID = "p_new"
	f.products = append(f.products, p)
	return p.ID, nil
}

func (f *fakeProductRepo) Update(p *core.Product) error {
	for i, existing := range f.products {
		if existing.ID == p.ID {
			f.products[i] = p
		}
	}
	return nil
}

func (f *fakeProductRepo) Delete(id string) error {
	out := f.products[:0]
	for _, p := range f.products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	f.products = out
	return nil
}

func TestClassifyDevice(t *testing.T) {
	tests := []struct {
		ua   string
		want string
	}{
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)", "mobile"},
		{"Mozilla/5.0 (Linux; Android 14; Pixel 8)", "mobile"},
		{"Mozilla/5.0 (iPad; CPU OS 17_0)", "tablet"},
		{"Mozilla/5.0 (Linux; Android 14; SM-X910) Tablet", "tablet"},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64)", "desktop"},
		{"", "desktop"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ClassifyDevice(tc.ua), "ua %q", tc.ua)
	}
}

func TestTrack_TruncatesUserAgent(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo, newFakeOrderRepo(), newFakeMessageRepo(), &fakeProductRepo{}, nil)

	svc.Track(PageView{VisitorID: "v1", Page: "/", UserAgent: strings.Repeat("x", 500)})
	svc.Flush()

	require.Len(t, repo.events, 1)
	assert.Len(t, repo.events[0].UserAgent, maxUserAgentLen)
}

func TestTrack_NewVisitorOnHomeTriggersNotification(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	notifier := &fakeNotifier{enabled: true}
	svc := NewAnalyticsService(repo, newFakeOrderRepo(), newFakeMessageRepo(), &fakeProductRepo{}, notifier)

	svc.Track(PageView{VisitorID: "v1", NewVisitor: true, Page: "/"})
	svc.Track(PageView{VisitorID: "v1", NewVisitor: false, Page: "/"})
	svc.Track(PageView{VisitorID: "v2", NewVisitor: true, Page: "/products/man"})
	svc.Flush()

	assert.Equal(t, 1, notifier.visitors, "only a first visit to the home page notifies")
	assert.Len(t, repo.events, 3, "every view is still recorded")
}

func TestTrack_WriteFailureSkipsNotification(t *testing.T) {
	repo := &fakeAnalyticsRepo{failAll: true}
	notifier := &fakeNotifier{enabled: true}
	svc := NewAnalyticsService(repo, newFakeOrderRepo(), newFakeMessageRepo(), &fakeProductRepo{}, notifier)

	svc.Track(PageView{VisitorID: "v1", NewVisitor: true, Page: "/"})
	svc.Flush()

	assert.Zero(t, notifier.visitors)
}

func TestDashboardStats_Aggregates(t *testing.T) {
	orders := newFakeOrderRepo()
	orders.orders = []*core.Order{
		{ID: "o1", Status: "pending"},
		{ID: "o2", Status: "delivered"},
		{ID: "o3", Status: "pending"},
	}
	messages := newFakeMessageRepo()
	messages.messages = []*core.Message{
		{ID: "m1", IsRead: false},
		{ID: "m2", IsRead: true},
	}
	products := &fakeProductRepo{products: []*core.Product{
		{ID: "p1", IsActive: true},
		{ID: "p2", IsActive: false},
	}}
	analytics := &fakeAnalyticsRepo{today: 4, last30: 120, devices: map[string]int{"mobile": 80, "desktop": 40}}

	svc := NewAnalyticsService(analytics, orders, messages, products, nil)
	stats := svc.DashboardStats()

	assert.Equal(t, 4, stats.VisitsToday)
	assert.Equal(t, 120, stats.VisitsLast30d)
	assert.Equal(t, 80, stats.DeviceBreakdown["mobile"])
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 2, stats.PendingOrders)
	assert.Equal(t, 1, stats.UnreadMessages)
	assert.Equal(t, 1, stats.ActiveProducts)
}

func TestDashboardStats_SourceFailureZeroesCard(t *testing.T) {
	analytics := &fakeAnalyticsRepo{aggErr: errors.New("store down")}
	orders := newFakeOrderRepo()
	orders.orders = []*core.Order{{ID: "o1", Status: "pending"}}

	svc := NewAnalyticsService(analytics, orders, newFakeMessageRepo(), &fakeProductRepo{}, nil)
	stats := svc.DashboardStats()

	assert.Zero(t, stats.VisitsToday)
	assert.Equal(t, 1, stats.TotalOrders, "healthy sources still populate")
}

func TestNewVisitorID_Unique(t *testing.T) {
	assert.NotEqual(t, NewVisitorID(), NewVisitorID())
	assert.NotEmpty(t, NewVisitorID())
}
