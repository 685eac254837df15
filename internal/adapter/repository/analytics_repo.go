package repository

import (
	"time"

	domain "github.com/Denise-hub/DenModa-Manufacturer/internal/core"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
)

// AnalyticsRepo is the append-only page view log. Events are written once
// per navigation and never mutated or deleted.
type AnalyticsRepo struct {
	app   core.App
	store *Store
}

func NewAnalyticsRepo(app core.App) domain.AnalyticsRepository {
	return &AnalyticsRepo{app: app, store: NewStore(app)}
}

func (r *AnalyticsRepo) Track(ev *domain.AnalyticsEvent) error {
	_, err := r.store.Create(domain.CollectionAnalytics, map[string]any{
		"visitor_id":    ev.VisitorID,
		"page":          ev.Page,
		"referrer":      ev.Referrer,
		"device":        ev.Device,
		"user_agent":    ev.UserAgent,
		"language":      ev.Language,
		"screen_width":  ev.ScreenWidth,
		"screen_height": ev.ScreenHeight,
	})
	return err
}

func (r *AnalyticsRepo) CountSince(days int) (int, error) {
	since := time.Now().AddDate(0, 0, -days).UTC().Format("2006-01-02 15:04:05")
	n, err := r.app.CountRecords(domain.CollectionAnalytics,
		dbx.NewExp("created >= {:since}", dbx.Params{"since": since}))
	return int(n), err
}

func (r *AnalyticsRepo) CountToday() (int, error) {
	midnight := time.Now().UTC().Format("2006-01-02") + " 00:00:00"
	n, err := r.app.CountRecords(domain.CollectionAnalytics,
		dbx.NewExp("created >= {:since}", dbx.Params{"since": midnight}))
	return int(n), err
}

func (r *AnalyticsRepo) DeviceBreakdown(days int) (map[string]int, error) {
	type row struct {
		Device string `db:"device"`
		Total  int    `db:"total"`
	}
	since := time.Now().AddDate(0, 0, -days).UTC().Format("2006-01-02 15:04:05")

	var rows []row
	err := r.app.DB().Select("device", "COUNT(id) as total").
		From(domain.CollectionAnalytics).
		Where(dbx.NewExp("created >= {:since}", dbx.Params{"since": since})).
		GroupBy("device").
		All(&rows)
	if err != nil {
		return nil, err
	}

	breakdown := make(map[string]int, len(rows))
	for _, r := range rows {
		breakdown[r.Device] = r.Total
	}
	return breakdown, nil
}
