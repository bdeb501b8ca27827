package storage

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"morvarid-backend/models"
	"morvarid-backend/utils"
)

type FarmStat struct {
	FarmID       uuid.UUID `json:"farmId"`
	FarmName     string    `json:"farmName"`
	EggsToday    int       `json:"eggsToday"`
	CurrentStock int       `json:"currentStock"`
}

type DashboardStats struct {
	TotalEggsToday      int        `json:"totalEggsToday"`
	TotalEggsThisWeek   int        `json:"totalEggsThisWeek"`
	TotalEggsThisMonth  int        `json:"totalEggsThisMonth"`
	TotalSalesToday     float64    `json:"totalSalesToday"`
	TotalSalesThisMonth float64    `json:"totalSalesThisMonth"`
	MortalityThisWeek   int        `json:"mortalityThisWeek"`
	ActiveFarmsCount    int        `json:"activeFarmsCount"`
	TotalUsersCount     int        `json:"totalUsersCount"`
	TotalInvoicesCount  int        `json:"totalInvoicesCount"`
	FarmStats           []FarmStat `json:"farmStats"`
}

// ComputeDashboardStats folds every record and invoice into the dashboard
// summary. Week and month are fixed 7 and 30 day windows on the Jalali
// calendar, compared as zero-padded date strings.
func ComputeDashboardStats(
	records []models.ProductionRecord,
	invoices []models.SalesInvoice,
	farms []models.Farm,
	users []models.User,
	stockByFarm map[uuid.UUID]int,
	today, weekAgo, monthAgo string,
) *DashboardStats {
	stats := &DashboardStats{
		TotalUsersCount:    len(users),
		TotalInvoicesCount: len(invoices),
		FarmStats:          []FarmStat{},
	}

	eggsTodayByFarm := make(map[uuid.UUID]int)
	for _, r := range records {
		if r.Date == today {
			stats.TotalEggsToday += r.EggCount
			eggsTodayByFarm[r.FarmID] += r.EggCount
		}
		if r.Date >= weekAgo {
			stats.TotalEggsThisWeek += r.EggCount
			stats.MortalityThisWeek += r.Mortality
		}
		if r.Date >= monthAgo {
			stats.TotalEggsThisMonth += r.EggCount
		}
	}

	for _, i := range invoices {
		if i.Date == today {
			stats.TotalSalesToday += i.TotalPrice
		}
		if i.Date >= monthAgo {
			stats.TotalSalesThisMonth += i.TotalPrice
		}
	}

	for _, farm := range farms {
		if !farm.IsActive {
			continue
		}
		stats.ActiveFarmsCount++
		stats.FarmStats = append(stats.FarmStats, FarmStat{
			FarmID:       farm.ID,
			FarmName:     farm.Name,
			EggsToday:    eggsTodayByFarm[farm.ID],
			CurrentStock: stockByFarm[farm.ID],
		})
	}

	return stats
}

// GetDashboardStats loads all records, invoices, farms, users and inventory
// rows and folds them in memory. Pure read, no SQL-side aggregation;
// acceptable at this system's data volumes.
func GetDashboardStats(db *gorm.DB) (*DashboardStats, error) {
	var records []models.ProductionRecord
	if err := db.Find(&records).Error; err != nil {
		return nil, err
	}
	var invoices []models.SalesInvoice
	if err := db.Find(&invoices).Error; err != nil {
		return nil, err
	}
	var farms []models.Farm
	if err := db.Find(&farms).Error; err != nil {
		return nil, err
	}
	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return nil, err
	}
	var inventories []models.Inventory
	if err := db.Find(&inventories).Error; err != nil {
		return nil, err
	}

	stockByFarm := make(map[uuid.UUID]int, len(inventories))
	for _, inv := range inventories {
		stockByFarm[inv.FarmID] = inv.CurrentEggStock
	}

	return ComputeDashboardStats(
		records, invoices, farms, users, stockByFarm,
		utils.TodayJalali(), utils.JalaliDaysAgo(7), utils.JalaliDaysAgo(30),
	), nil
}
