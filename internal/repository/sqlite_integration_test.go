package repository

import (
	"context"
	"path/filepath"
	"testing"

	"logixy_crm/internal/models"
	"logixy_crm/internal/repository/db"
)

func TestRepository_SQLiteRoundTrip(t *testing.T) {
	conn, err := db.InitDB(filepath.Join(t.TempDir(), "crm.db"))
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()
	repos := NewRepository(conn)

	c := sampleClient()
	if err := repos.Clients.Save(ctx, c); err != nil {
		t.Fatalf("save client: %v", err)
	}
	c.Status = models.StatusLost
	if err := repos.Clients.Save(ctx, c); err != nil {
		t.Fatalf("update client: %v", err)
	}
	if n, err := repos.Clients.Count(ctx); err != nil || n != 1 {
		t.Fatalf("want 1 client after upsert, got %d (%v)", n, err)
	}
	got, err := repos.Clients.Get(ctx, c.ID)
	if err != nil || got == nil {
		t.Fatalf("get client: %+v, %v", got, err)
	}
	if got.Status != models.StatusLost || len(got.Contacts) != 1 {
		t.Fatalf("unexpected client after round trip: %+v", got)
	}

	for _, q := range []models.Quotation{
		{ID: "q-1", Code: "QT000001", Date: "2025-02-01", From: "Shanghai", To: "Odesa", ContainerKind: models.Container20, Freight: 1700, ClientID: c.ID},
		{ID: "q-2", Code: "QT000002", Date: "2025-03-01", From: "shanghai", To: "ODESA", ContainerKind: models.Container20, Freight: 1800},
		{ID: "q-3", Code: "QT000003", Date: "2025-03-02", From: "Shanghai", To: "Odesa", ContainerKind: models.Container40, Freight: 2800},
	} {
		if err := repos.Quotations.Save(ctx, q); err != nil {
			t.Fatalf("save quotation %s: %v", q.ID, err)
		}
	}

	onRoute, err := repos.Quotations.ListByRoute(ctx, "SHANGHAI", "odesa", models.Container20, "2025-01-01")
	if err != nil {
		t.Fatalf("list by route: %v", err)
	}
	if len(onRoute) != 2 || onRoute[0].ID != "q-1" || onRoute[1].ID != "q-2" {
		t.Fatalf("unexpected route rows: %+v", onRoute)
	}

	recent, err := repos.Quotations.ListByRoute(ctx, "Shanghai", "Odesa", models.Container20, "2025-02-15")
	if err != nil {
		t.Fatalf("list by route: %v", err)
	}
	if len(recent) != 1 || recent[0].ID != "q-2" {
		t.Fatalf("since filter not applied: %+v", recent)
	}

	if _, err := repos.Auth.Create(ctx, "dispatcher", "hash"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := repos.Auth.Create(ctx, "dispatcher", "hash"); err == nil {
		t.Fatalf("expected unique constraint error for duplicate username")
	}
}
