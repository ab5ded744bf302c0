package mysql

import (
	"context"
	"testing"

	domain "solarshare-backend/internal/domain/energy"
	"solarshare-backend/pkg/id"

	"github.com/shopspring/decimal"
)

func makeLog(propertyID, vendorID, month string, units int64) *domain.Log {
	return &domain.Log{
		LogID:         id.NewID32(),
		PropertyID:    propertyID,
		VendorID:      vendorID,
		Month:         month,
		UnitsProduced: decimal.NewFromInt(units),
	}
}

func TestEnergyLogCreateAndList(t *testing.T) {
	repo := NewEnergyLogRepository(openTestDB(t))
	ctx := context.Background()

	propID := id.NewID32()
	vendor := id.NewID32()
	if err := repo.Create(ctx, makeLog(propID, vendor, "2026-06", 480)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, makeLog(propID, vendor, "2026-07", 510)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, makeLog(id.NewID32(), vendor, "2026-07", 300)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	logs, err := repo.ListByProperty(ctx, propID)
	if err != nil {
		t.Fatalf("ListByProperty: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("logs = %d, want 2", len(logs))
	}
	// newest month first
	if logs[0].Month != "2026-07" || logs[1].Month != "2026-06" {
		t.Errorf("unexpected order: %+v", logs)
	}
	if !logs[0].UnitsProduced.Equal(decimal.NewFromInt(510)) {
		t.Errorf("units = %s, want 510", logs[0].UnitsProduced)
	}
}

func TestEnergyLogList_RepeatMonthKeepsBothRows(t *testing.T) {
	repo := NewEnergyLogRepository(openTestDB(t))
	ctx := context.Background()

	propID := id.NewID32()
	vendor := id.NewID32()
	if err := repo.Create(ctx, makeLog(propID, vendor, "2026-07", 480)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// correction for the same month is a second immutable row
	if err := repo.Create(ctx, makeLog(propID, vendor, "2026-07", 505)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	logs, err := repo.ListByProperty(ctx, propID)
	if err != nil {
		t.Fatalf("ListByProperty: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("logs = %d, want both readings kept", len(logs))
	}
	// same month: the later row comes first
	if !logs[0].UnitsProduced.Equal(decimal.NewFromInt(505)) {
		t.Errorf("latest reading = %s, want 505", logs[0].UnitsProduced)
	}
}
