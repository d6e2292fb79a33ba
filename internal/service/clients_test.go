package service

import (
	"context"
	"errors"
	"testing"

	"logixy_crm/internal/models"
	"logixy_crm/internal/table"
)

func TestClientService_SaveNewAssignsDefaults(t *testing.T) {
	repo := &memClients{rows: []models.Client{{ID: "c-1", Code: "SM000001", Name: "Existing"}}}
	svc := NewClientService(repo, fixedNow, nil)

	got, err := svc.SaveClient(context.Background(), models.Client{
		Name:     "  Black Sea Grain  ",
		Contacts: []models.Contact{{FullName: "Ivan Petrenko"}, {ID: "keep", FullName: "Maria"}},
	})
	if err != nil {
		t.Fatalf("SaveClient: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated id")
	}
	if got.Code != "SM000002" {
		t.Fatalf("expected code SM000002, got %q", got.Code)
	}
	if got.Name != "Black Sea Grain" {
		t.Fatalf("expected trimmed name, got %q", got.Name)
	}
	if got.Status != models.StatusNew {
		t.Fatalf("expected status New, got %q", got.Status)
	}
	if got.LastContact != "2025-03-15" {
		t.Fatalf("expected last contact today, got %q", got.LastContact)
	}
	if got.Directions == nil || got.Services == nil {
		t.Fatalf("expected empty slices, got %#v %#v", got.Directions, got.Services)
	}
	if got.Contacts[0].ID == "" || got.Contacts[1].ID != "keep" {
		t.Fatalf("unexpected contact ids: %+v", got.Contacts)
	}
	if len(repo.rows) != 2 {
		t.Fatalf("expected client stored, have %d rows", len(repo.rows))
	}
}

func TestClientService_SaveUpdateKeepsCode(t *testing.T) {
	repo := &memClients{rows: []models.Client{{ID: "c-1", Code: "SM000001", Name: "Old", Status: models.StatusActive}}}
	svc := NewClientService(repo, fixedNow, nil)

	got, err := svc.SaveClient(context.Background(), models.Client{ID: "c-1", Name: "Renamed", Status: models.StatusLost})
	if err != nil {
		t.Fatalf("SaveClient: %v", err)
	}
	if got.Code != "SM000001" || got.Status != models.StatusLost || got.Name != "Renamed" {
		t.Fatalf("unexpected update result: %+v", got)
	}
}

func TestClientService_SaveErrors(t *testing.T) {
	svc := NewClientService(&memClients{}, fixedNow, nil)

	if _, err := svc.SaveClient(context.Background(), models.Client{Name: "   "}); !errors.Is(err, ErrInvalidClient) {
		t.Fatalf("expected ErrInvalidClient, got %v", err)
	}
	if _, err := svc.SaveClient(context.Background(), models.Client{ID: "missing", Name: "X"}); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientService_ListDefaultOrderByHolding(t *testing.T) {
	repo := &memClients{rows: []models.Client{
		{ID: "1", Code: "SM000001", Name: "Solo One"},
		{ID: "2", Code: "SM000002", Name: "Metinvest Trade", Holding: "Metinvest"},
		{ID: "3", Code: "SM000003", Name: "Agro North", Holding: "Agro Group"},
		{ID: "4", Code: "SM000004", Name: "Solo Two"},
		{ID: "5", Code: "SM000005", Name: "Agro South", Holding: "Agro Group"},
	}}
	svc := NewClientService(repo, fixedNow, nil)

	res, err := svc.ListClients(context.Background(), table.Query{})
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}
	want := []string{"3", "5", "2", "1", "4"}
	for i, c := range res.Rows {
		if c.ID != want[i] {
			t.Fatalf("row %d: want %s, got %s (%+v)", i, want[i], c.ID, res.Rows)
		}
	}

	res, err = svc.ListClients(context.Background(), table.Query{
		Sort: table.SortState{Column: "name", Direction: table.Descending},
	})
	if err != nil {
		t.Fatalf("ListClients sorted: %v", err)
	}
	if res.Rows[0].Name != "Solo Two" || res.Rows[4].Name != "Agro North" {
		t.Fatalf("unexpected explicit sort: %+v", res.Rows)
	}
}

func TestClientService_ListSearchesNameByDefault(t *testing.T) {
	repo := &memClients{rows: []models.Client{
		{ID: "1", Name: "Odesa Port Services", City: "Kyiv"},
		{ID: "2", Name: "Lviv Foods", City: "Odesa"},
	}}
	svc := NewClientService(repo, fixedNow, nil)

	res, err := svc.ListClients(context.Background(), table.Query{Search: "odesa"})
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}
	if res.Total != 1 || res.Rows[0].ID != "1" {
		t.Fatalf("expected only the name match, got %+v", res.Rows)
	}

	res, err = svc.ListClients(context.Background(), table.Query{Search: "odesa", SearchField: "city"})
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}
	if res.Total != 1 || res.Rows[0].ID != "2" {
		t.Fatalf("expected only the city match, got %+v", res.Rows)
	}

	if _, err := svc.ListClients(context.Background(), table.Query{Sort: table.SortState{Column: "nope"}}); !errors.Is(err, table.ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}
}

func TestClientService_GetActivates(t *testing.T) {
	repo := &memClients{rows: []models.Client{{ID: "c-1", Name: "Agro"}}}
	var opened []string
	svc := NewClientService(repo, fixedNow, func(c models.Client) { opened = append(opened, c.ID) })

	if _, err := svc.GetClient(context.Background(), "c-1"); err != nil {
		t.Fatalf("GetClient: %v", err)
	}
	if _, err := svc.GetClient(context.Background(), "missing"); !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
	if len(opened) != 1 || opened[0] != "c-1" {
		t.Fatalf("expected one activation for c-1, got %v", opened)
	}
}
