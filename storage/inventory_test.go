package storage

import "testing"

func TestAdjustInventoryCreatesRowLazily(t *testing.T) {
	db := setupTestDB(t)
	farm := createTestFarm(t, db, "Morvaridi", true)

	inv, err := AdjustInventory(db, farm.ID, 250)
	if err != nil {
		t.Fatalf("AdjustInventory failed: %v", err)
	}
	if inv.CurrentEggStock != 250 {
		t.Errorf("expected stock 250, got %d", inv.CurrentEggStock)
	}
	if inv.FarmID != farm.ID {
		t.Errorf("inventory row bound to wrong farm")
	}
}

func TestAdjustInventoryFirstEventNegativeClampsToZero(t *testing.T) {
	db := setupTestDB(t)
	farm := createTestFarm(t, db, "Morvaridi", true)

	inv, err := AdjustInventory(db, farm.ID, -40)
	if err != nil {
		t.Fatalf("AdjustInventory failed: %v", err)
	}
	if inv.CurrentEggStock != 0 {
		t.Errorf("expected clamped stock 0, got %d", inv.CurrentEggStock)
	}
}

func TestAdjustInventoryAccumulates(t *testing.T) {
	db := setupTestDB(t)
	farm := createTestFarm(t, db, "Morvaridi", true)

	steps := []struct {
		delta int
		want  int
	}{
		{100, 100},
		{45, 145},
		{-60, 85},
		{60, 145},
		{-45, 100},
	}
	for _, step := range steps {
		inv, err := AdjustInventory(db, farm.ID, step.delta)
		if err != nil {
			t.Fatalf("AdjustInventory(%d) failed: %v", step.delta, err)
		}
		if inv.CurrentEggStock != step.want {
			t.Errorf("after delta %d: expected stock %d, got %d", step.delta, step.want, inv.CurrentEggStock)
		}
	}
}

func TestAdjustInventoryClampIsLossy(t *testing.T) {
	db := setupTestDB(t)
	farm := createTestFarm(t, db, "Morvaridi", true)

	if _, err := AdjustInventory(db, farm.ID, 10); err != nil {
		t.Fatalf("AdjustInventory failed: %v", err)
	}
	inv, err := AdjustInventory(db, farm.ID, -50)
	if err != nil {
		t.Fatalf("AdjustInventory failed: %v", err)
	}
	if inv.CurrentEggStock != 0 {
		t.Fatalf("expected clamp to 0, got %d", inv.CurrentEggStock)
	}

	// Reversing the overdraw does not restore the original 10
	inv, err = AdjustInventory(db, farm.ID, 50)
	if err != nil {
		t.Fatalf("AdjustInventory failed: %v", err)
	}
	if inv.CurrentEggStock != 50 {
		t.Errorf("expected stock 50 after reversal at the floor, got %d", inv.CurrentEggStock)
	}
}

func TestGetInventoryMissingRow(t *testing.T) {
	db := setupTestDB(t)
	farm := createTestFarm(t, db, "Morvaridi", true)

	inv, err := GetInventory(db, farm.ID)
	if err != nil {
		t.Fatalf("GetInventory failed: %v", err)
	}
	if inv != nil {
		t.Errorf("expected nil inventory for untouched farm, got %+v", inv)
	}
}
