package storage

import (
	"testing"

	"github.com/google/uuid"

	"morvarid-backend/models"
)

func TestComputeDashboardStats(t *testing.T) {
	farmA := uuid.New()
	farmB := uuid.New()
	farmInactive := uuid.New()

	today := "1404/06/08"
	weekAgo := "1404/06/01"
	monthAgo := "1404/05/08"

	records := []models.ProductionRecord{
		{FarmID: farmA, Date: today, EggCount: 100, Mortality: 2},
		{FarmID: farmB, Date: today, EggCount: 80, Mortality: 1},
		{FarmID: farmA, Date: "1404/06/03", EggCount: 50, Mortality: 4},  // in week
		{FarmID: farmA, Date: "1404/05/20", EggCount: 70, Mortality: 9},  // in month only
		{FarmID: farmB, Date: "1404/04/01", EggCount: 500, Mortality: 3}, // too old
	}
	invoices := []models.SalesInvoice{
		{FarmID: farmA, Date: today, TotalPrice: 300},
		{FarmID: farmB, Date: "1404/05/25", TotalPrice: 120}, // in month only
		{FarmID: farmB, Date: "1404/03/01", TotalPrice: 999}, // too old
	}
	farms := []models.Farm{
		{ID: farmA, Name: "Morvaridi", IsActive: true},
		{ID: farmB, Name: "Motafarreqe", IsActive: true},
		{ID: farmInactive, Name: "Closed", IsActive: false},
	}
	users := []models.User{{}, {}, {}}
	stock := map[uuid.UUID]int{farmA: 400, farmB: 150}

	stats := ComputeDashboardStats(records, invoices, farms, users, stock, today, weekAgo, monthAgo)

	if stats.TotalEggsToday != 180 {
		t.Errorf("TotalEggsToday = %d, expected 180", stats.TotalEggsToday)
	}
	if stats.TotalEggsThisWeek != 230 {
		t.Errorf("TotalEggsThisWeek = %d, expected 230", stats.TotalEggsThisWeek)
	}
	if stats.TotalEggsThisMonth != 300 {
		t.Errorf("TotalEggsThisMonth = %d, expected 300", stats.TotalEggsThisMonth)
	}
	if stats.MortalityThisWeek != 7 {
		t.Errorf("MortalityThisWeek = %d, expected 7", stats.MortalityThisWeek)
	}
	if stats.TotalSalesToday != 300 {
		t.Errorf("TotalSalesToday = %v, expected 300", stats.TotalSalesToday)
	}
	if stats.TotalSalesThisMonth != 420 {
		t.Errorf("TotalSalesThisMonth = %v, expected 420", stats.TotalSalesThisMonth)
	}
	if stats.ActiveFarmsCount != 2 {
		t.Errorf("ActiveFarmsCount = %d, expected 2", stats.ActiveFarmsCount)
	}
	if stats.TotalUsersCount != 3 {
		t.Errorf("TotalUsersCount = %d, expected 3", stats.TotalUsersCount)
	}
	if stats.TotalInvoicesCount != 3 {
		t.Errorf("TotalInvoicesCount = %d, expected 3", stats.TotalInvoicesCount)
	}

	if len(stats.FarmStats) != 2 {
		t.Fatalf("expected 2 farm stats (active farms only), got %d", len(stats.FarmStats))
	}
	byName := map[string]FarmStat{}
	for _, fs := range stats.FarmStats {
		byName[fs.FarmName] = fs
	}
	if fs := byName["Morvaridi"]; fs.EggsToday != 100 || fs.CurrentStock != 400 {
		t.Errorf("Morvaridi stats = %+v, expected eggsToday=100 stock=400", fs)
	}
	if fs := byName["Motafarreqe"]; fs.EggsToday != 80 || fs.CurrentStock != 150 {
		t.Errorf("Motafarreqe stats = %+v, expected eggsToday=80 stock=150", fs)
	}
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	stats := ComputeDashboardStats(nil, nil, nil, nil, nil, "1404/06/08", "1404/06/01", "1404/05/08")

	if stats.TotalEggsToday != 0 || stats.TotalSalesThisMonth != 0 || stats.ActiveFarmsCount != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
	if stats.FarmStats == nil {
		t.Error("FarmStats must serialize as an empty array, not null")
	}
}

func TestGetDashboardStatsLoadsFromDatabase(t *testing.T) {
	db := setupTestDB(t)
	farm := createTestFarm(t, db, "Morvaridi", true)
	if _, err := AdjustInventory(db, farm.ID, 500); err != nil {
		t.Fatalf("seeding inventory failed: %v", err)
	}

	stats, err := GetDashboardStats(db)
	if err != nil {
		t.Fatalf("GetDashboardStats failed: %v", err)
	}
	if stats.ActiveFarmsCount != 1 {
		t.Errorf("ActiveFarmsCount = %d, expected 1", stats.ActiveFarmsCount)
	}
	if len(stats.FarmStats) != 1 || stats.FarmStats[0].CurrentStock != 500 {
		t.Errorf("unexpected farm stats %+v", stats.FarmStats)
	}
}
