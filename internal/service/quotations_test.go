package service

import (
	"context"
	"errors"
	"testing"

	"logixy_crm/internal/models"
	"logixy_crm/internal/table"
)

func quotationFixture() *memQuotations {
	return &memQuotations{rows: []models.Quotation{
		{ID: "q1", Code: "QT000001", Date: "2025-01-20", From: "Shanghai", To: "Odesa", ContainerKind: models.Container40, Total: 3000},
		{ID: "q2", Code: "QT000002", Date: "2025-02-03", From: "Ningbo", To: "Gdansk", ContainerKind: models.Container20, Total: 1900, ClientName: "Agro"},
		{ID: "q3", Code: "QT000003", Date: "2025-02-17", From: "Shanghai", To: "Odesa", ContainerKind: models.Container40HC, Total: 3100},
		{ID: "q4", Code: "QT000004", Date: "2025-03-01", From: "Istanbul", To: "Kyiv", ContainerKind: models.ContainerTent, Total: 1400},
	}}
}

func TestQuotationService_ListMonthFilter(t *testing.T) {
	svc := NewQuotationService(quotationFixture(), &memClients{}, fixedNow)

	tests := []struct {
		month string
		want  []string
	}{
		{"", []string{"q4", "q3", "q2", "q1"}},
		{"all", []string{"q4", "q3", "q2", "q1"}},
		{"2025-02", []string{"q3", "q2"}},
		{"2024-12", []string{}},
	}
	for _, tt := range tests {
		t.Run("month="+tt.month, func(t *testing.T) {
			res, err := svc.ListQuotations(context.Background(), tt.month, table.Query{})
			if err != nil {
				t.Fatalf("ListQuotations: %v", err)
			}
			if len(res.Rows) != len(tt.want) {
				t.Fatalf("want %v, got %+v", tt.want, res.Rows)
			}
			for i, id := range tt.want {
				if res.Rows[i].ID != id {
					t.Fatalf("row %d: want %s, got %s", i, id, res.Rows[i].ID)
				}
			}
		})
	}

	for _, bad := range []string{"2025-13", "Feb 2025", "2025-2"} {
		if _, err := svc.ListQuotations(context.Background(), bad, table.Query{}); !errors.Is(err, ErrInvalidMonth) {
			t.Fatalf("month %q: expected ErrInvalidMonth, got %v", bad, err)
		}
	}
}

func TestQuotationService_ListSearchDefaultKeys(t *testing.T) {
	svc := NewQuotationService(quotationFixture(), &memClients{}, fixedNow)

	res, err := svc.ListQuotations(context.Background(), "", table.Query{Search: "agro"})
	if err != nil {
		t.Fatalf("ListQuotations: %v", err)
	}
	if res.Total != 1 || res.Rows[0].ID != "q2" {
		t.Fatalf("expected client name match, got %+v", res.Rows)
	}

	res, err = svc.ListQuotations(context.Background(), "", table.Query{
		Search: "shanghai",
		Sort:   table.SortState{Column: "total", Direction: table.Ascending},
	})
	if err != nil {
		t.Fatalf("ListQuotations: %v", err)
	}
	if res.Total != 2 || res.Rows[0].ID != "q1" || res.Rows[1].ID != "q3" {
		t.Fatalf("unexpected route search: %+v", res.Rows)
	}
}

func TestQuotationService_Months(t *testing.T) {
	repo := quotationFixture()
	repo.rows = append(repo.rows, models.Quotation{ID: "bad", Date: "n/a"})
	svc := NewQuotationService(repo, &memClients{}, fixedNow)

	got, err := svc.Months(context.Background())
	if err != nil {
		t.Fatalf("Months: %v", err)
	}
	want := []string{"2025-03", "2025-02", "2025-01"}
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}
}

func TestQuotationService_SaveNew(t *testing.T) {
	repo := quotationFixture()
	clients := &memClients{rows: []models.Client{{ID: "c-1", Name: "Agro Trade"}}}
	svc := NewQuotationService(repo, clients, fixedNow)

	got, err := svc.SaveQuotation(context.Background(), models.Quotation{
		From: " Shanghai ", To: "Odesa", ContainerKind: "40HC",
		Freight: 2500.10, DPP: 120.20, Forwarding: 80, T1: 35, Auto: 400, Rail: 0.05,
		Total:    1, // ignored
		ClientID: "c-1",
	})
	if err != nil {
		t.Fatalf("SaveQuotation: %v", err)
	}
	if got.Code != "QT000005" || got.ID == "" {
		t.Fatalf("unexpected identity: %+v", got)
	}
	if got.Date != "2025-03-15" {
		t.Fatalf("expected today's date, got %q", got.Date)
	}
	if got.Total != 3135.35 {
		t.Fatalf("expected total 3135.35, got %v", got.Total)
	}
	if got.ClientName != "Agro Trade" || got.From != "Shanghai" {
		t.Fatalf("unexpected quotation: %+v", got)
	}
}

func TestQuotationService_SaveErrors(t *testing.T) {
	svc := NewQuotationService(quotationFixture(), &memClients{}, fixedNow)
	base := models.Quotation{From: "A", To: "B", ContainerKind: models.Container20}

	tests := []struct {
		name   string
		mutate func(*models.Quotation)
		want   error
	}{
		{"negative freight", func(q *models.Quotation) { q.Freight = -1 }, ErrNegativeAmount},
		{"negative rail", func(q *models.Quotation) { q.Rail = -0.01 }, ErrNegativeAmount},
		{"missing route", func(q *models.Quotation) { q.To = " " }, ErrInvalidQuotation},
		{"bad kind", func(q *models.Quotation) { q.ContainerKind = "45'" }, models.ErrInvalidContainerKind},
		{"bad date", func(q *models.Quotation) { q.Date = "15.03.2025" }, ErrInvalidDate},
		{"unknown client", func(q *models.Quotation) { q.ClientID = "ghost" }, ErrClientNotFound},
		{"unknown id", func(q *models.Quotation) { q.ID = "ghost" }, ErrQuotationNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := base
			tt.mutate(&q)
			if _, err := svc.SaveQuotation(context.Background(), q); !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
		})
	}
}

func TestQuotationService_SaveUpdate(t *testing.T) {
	repo := quotationFixture()
	svc := NewQuotationService(repo, &memClients{}, fixedNow)

	got, err := svc.SaveQuotation(context.Background(), models.Quotation{
		ID: "q2", Date: "2025-02-03", From: "Ningbo", To: "Gdansk", ContainerKind: models.Container20, Freight: 2000,
	})
	if err != nil {
		t.Fatalf("SaveQuotation: %v", err)
	}
	if got.Code != "QT000002" || got.Total != 2000 {
		t.Fatalf("unexpected update: %+v", got)
	}
	stored, _ := repo.Get(context.Background(), "q2")
	if stored.Total != 2000 {
		t.Fatalf("expected stored total 2000, got %v", stored.Total)
	}
}

func TestQuotationService_GetMissing(t *testing.T) {
	svc := NewQuotationService(quotationFixture(), &memClients{}, fixedNow)
	if _, err := svc.GetQuotation(context.Background(), "nope"); !errors.Is(err, ErrQuotationNotFound) {
		t.Fatalf("expected ErrQuotationNotFound, got %v", err)
	}
}
