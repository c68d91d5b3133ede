package storage

import (
	"context"
	"errors"
	"testing"

	"bilancio/internal/core"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	txs := []core.Transaction{
		{Date: core.NewDate(2026, 1, 15), Description: "Grocery", Category: "Groceries", Value: core.Money{Cents: -12050}},
		{Date: core.NewDate(2026, 1, 30), Description: "Salary", Category: "Salary", Value: core.Money{Cents: 300000}},
	}

	id, err := store.CreateDataset(ctx, "jan.csv", "$", txs)
	if err != nil {
		t.Fatalf("create dataset: %v", err)
	}

	d, err := store.GetDataset(ctx, id)
	if err != nil {
		t.Fatalf("get dataset: %v", err)
	}
	if d.Name != "jan.csv" || d.Currency != "$" || d.RowCount != 2 {
		t.Fatalf("unexpected dataset %+v", d)
	}
	if d.ReportStatus != StatusPending {
		t.Fatalf("expected pending status, got %s", d.ReportStatus)
	}

	got, err := store.ListTransactions(ctx, id)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(got) != 2 || got[0].Description != "Grocery" {
		t.Fatalf("unexpected transactions %+v", got)
	}

	// Mutating the returned slice must not affect the store.
	got[0].Description = "changed"
	again, _ := store.ListTransactions(ctx, id)
	if again[0].Description != "Grocery" {
		t.Fatalf("store leaked internal slice")
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.GetDataset(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.ListTransactions(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
