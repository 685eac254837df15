package migrations

import (
	"os"

	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		totalAdmins, err := app.CountRecords(core.CollectionNameSuperusers)
		if err != nil {
			return err
		}
		if totalAdmins > 0 {
			return nil
		}

		email := os.Getenv("INITIAL_ADMIN_EMAIL")
		pass := os.Getenv("INITIAL_ADMIN_PASSWORD")
		if email == "" || pass == "" {
			return nil // no env vars set, let the operator create one via UI
		}

		collection, err := app.FindCollectionByNameOrId(core.CollectionNameSuperusers)
		if err != nil {
			return err
		}

		record := core.NewRecord(collection)
		record.Set("email", email)
		record.Set("password", pass)

		return app.Save(record)
	}, nil)
}
