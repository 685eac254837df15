package repository

import (
	"testing"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tests"
)

// newStoreApp spins up a throwaway app with one content-shaped collection
// (short ids allowed, order/is_active/title fields, autodate stamps).
func newStoreApp(t *testing.T) (*tests.TestApp, *Store) {
	t.Helper()

	app, err := tests.NewTestApp()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(app.Cleanup)

	col := core.NewBaseCollection("crafts")
	if f, ok := col.Fields.GetByName("id").(*core.TextField); ok {
		f.Min = 2
	}
	col.Fields.Add(
		&core.TextField{Name: "title"},
		&core.NumberField{Name: "order"},
		&core.BoolField{Name: "is_active"},
		&core.AutodateField{Name: "created", OnCreate: true},
		&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true},
	)
	if err := app.Save(col); err != nil {
		t.Fatal(err)
	}

	return app, NewStore(app)
}

func TestStore_CreateReadRoundTrip(t *testing.T) {
	_, store := newStoreApp(t)

	id, err := store.Create("crafts", map[string]any{
		"title":     "Leather belt",
		"order":     1,
		"is_active": true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("expected a generated id")
	}

	record, err := store.GetByID("crafts", id)
	if err != nil {
		t.Fatal(err)
	}
	if record == nil {
		t.Fatal("created record not found")
	}
	if got := record.GetString("title"); got != "Leather belt" {
		t.Errorf("title = %q", got)
	}
	if record.GetString("created") == "" || record.GetString("updated") == "" {
		t.Error("autodate fields not stamped")
	}
}

func TestStore_GetByIDMissingIsNotAnError(t *testing.T) {
	_, store := newStoreApp(t)

	record, err := store.GetByID("crafts", "nope1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if record != nil {
		t.Fatal("expected nil record")
	}
}

func TestStore_UpsertIsIdempotent(t *testing.T) {
	_, store := newStoreApp(t)

	fields := map[string]any{"title": "Sandal care", "order": 1, "is_active": true}
	if err := store.Upsert("crafts", "faq1", fields); err != nil {
		t.Fatal(err)
	}
	first, err := store.GetByID("crafts", "faq1")
	if err != nil || first == nil {
		t.Fatalf("record after first upsert: %v", err)
	}
	created := first.GetString("created")

	time.Sleep(10 * time.Millisecond)
	fields["title"] = "Sandal care v2"
	if err := store.Upsert("crafts", "faq1", fields); err != nil {
		t.Fatal(err)
	}

	records, err := store.ListAll("crafts", "order")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record after reseeding, got %d", len(records))
	}
	second := records[0]
	if got := second.GetString("title"); got != "Sandal care v2" {
		t.Errorf("title = %q", got)
	}
	if got := second.GetString("created"); got != created {
		t.Errorf("created changed on upsert: %q -> %q", created, got)
	}
	if got := second.GetString("updated"); got == first.GetString("updated") {
		t.Error("updated not refreshed on upsert")
	}
}

func TestStore_UpdateRefreshesUpdatedOnly(t *testing.T) {
	_, store := newStoreApp(t)

	id, err := store.Create("crafts", map[string]any{"title": "Draft", "is_active": false})
	if err != nil {
		t.Fatal(err)
	}
	before, _ := store.GetByID("crafts", id)

	time.Sleep(10 * time.Millisecond)
	if err := store.Update("crafts", id, map[string]any{"is_active": true}); err != nil {
		t.Fatal(err)
	}

	after, err := store.GetByID("crafts", id)
	if err != nil {
		t.Fatal(err)
	}
	if !after.GetBool("is_active") {
		t.Error("field not updated")
	}
	if got := after.GetString("title"); got != "Draft" {
		t.Errorf("untouched field changed: %q", got)
	}
	if after.GetString("created") != before.GetString("created") {
		t.Error("created changed on update")
	}
	if after.GetString("updated") == before.GetString("updated") {
		t.Error("updated not refreshed")
	}
}

func TestStore_ListActiveFiltersInactive(t *testing.T) {
	_, store := newStoreApp(t)

	mustUpsert := func(id string, order int, active bool) {
		t.Helper()
		if err := store.Upsert("crafts", id, map[string]any{
			"title": id, "order": order, "is_active": active,
		}); err != nil {
			t.Fatal(err)
		}
	}
	mustUpsert("live1", 2, true)
	mustUpsert("hidden1", 1, false)
	mustUpsert("live2", 1, true)

	records, err := store.ListActive("crafts")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 active records, got %d", len(records))
	}
	for _, r := range records {
		if !r.GetBool("is_active") {
			t.Errorf("inactive record %s listed", r.Id)
		}
	}
	if records[0].Id != "live2" || records[1].Id != "live1" {
		t.Errorf("unexpected order: %s, %s", records[0].Id, records[1].Id)
	}
}

func TestStore_ListAllOrdersWithIdTieBreak(t *testing.T) {
	_, store := newStoreApp(t)

	for _, rec := range []struct {
		id    string
		order int
	}{
		{"zz11", 1},
		{"aa11", 2},
		{"bb11", 1},
	} {
		if err := store.Upsert("crafts", rec.id, map[string]any{
			"title": rec.id, "order": rec.order, "is_active": true,
		}); err != nil {
			t.Fatal(err)
		}
	}

	records, err := store.ListAll("crafts", "order")
	if err != nil {
		t.Fatal(err)
	}
	got := make([]string, 0, len(records))
	for _, r := range records {
		got = append(got, r.Id)
	}
	want := []string{"bb11", "zz11", "aa11"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestStore_ListAllFallsBackUnsortedOnBadSortField(t *testing.T) {
	_, store := newStoreApp(t)

	for _, id := range []string{"aa11", "bb11"} {
		if err := store.Upsert("crafts", id, map[string]any{"title": id, "is_active": true}); err != nil {
			t.Fatal(err)
		}
	}

	records, err := store.ListAll("crafts", "no_such_field")
	if err != nil {
		t.Fatalf("fallback should swallow the sort failure, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records from the fallback, got %d", len(records))
	}
}
