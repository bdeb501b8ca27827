// services/alert_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"morvarid-backend/models"
)

const defaultLowStockThreshold = 1000

// AlertService runs the daily low-stock sweep: farms whose egg stock has
// fallen below the threshold produce a notification for every sales officer
// and, when Twilio is configured, an SMS.
type AlertService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewAlertService(db *gorm.DB) *AlertService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &AlertService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *AlertService) StartScheduler() {
	c := cron.New()

	// Run every day at 7 AM
	c.AddFunc("0 7 * * *", s.CheckLowStock)

	c.Start()
	log.Println("Low-stock alert scheduler started")
}

func (s *AlertService) Threshold() int {
	if env := os.Getenv("LOW_STOCK_THRESHOLD"); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n >= 0 {
			return n
		}
	}
	return defaultLowStockThreshold
}

func (s *AlertService) CheckLowStock() {
	log.Println("Starting low-stock sweep...")
	threshold := s.Threshold()

	var farms []models.Farm
	if err := s.db.Find(&farms, "is_active = ?", true).Error; err != nil {
		log.Printf("Failed to fetch farms: %v", err)
		return
	}

	for _, farm := range farms {
		var inv models.Inventory
		if err := s.db.Where("farm_id = ?", farm.ID).First(&inv).Error; err != nil {
			continue // no stock row yet, nothing to alert on
		}
		if inv.CurrentEggStock >= threshold {
			continue
		}
		s.alertFarm(farm, inv.CurrentEggStock)
	}

	log.Println("Low-stock sweep completed")
}

func (s *AlertService) alertFarm(farm models.Farm, stock int) {
	message := fmt.Sprintf("Farm %s egg stock is low: %d remaining", farm.Name, stock)

	var officers []models.User
	if err := s.db.Where("role = ? AND is_active = ?", models.RoleSalesOfficer, true).
		Find(&officers).Error; err != nil {
		log.Printf("Failed to fetch sales officers: %v", err)
		return
	}

	for _, officer := range officers {
		fid := farm.ID
		notification := models.Notification{
			UserID:  officer.ID,
			Title:   "Low egg stock",
			Message: message,
			Type:    models.NotificationLowStock,
			FarmID:  &fid,
		}
		if err := s.db.Create(&notification).Error; err != nil {
			log.Printf("Failed to create low-stock notification for %s: %v", officer.ID, err)
		}
	}

	s.sendSMS(message)
}

func (s *AlertService) sendSMS(message string) {
	to := os.Getenv("ALERT_PHONE_NUMBER")
	from := os.Getenv("TWILIO_PHONE_NUMBER")
	if to == "" || from == "" {
		return // SMS channel not configured
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send low-stock SMS: %v", err)
	} else if resp.Sid != nil {
		log.Printf("Low-stock SMS sent, SID: %s", *resp.Sid)
	}
}
