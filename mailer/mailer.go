package mailer

import (
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"travel-agency-server/config"
	"travel-agency-server/logger"
	"travel-agency-server/models"
)

// Enabled reports whether SMTP delivery is configured
func Enabled() bool {
	cfg := config.AppConfig.SMTP
	return cfg.Host != "" && cfg.NotifyTo != ""
}

// NotifyEnquiry sends a best-effort notification mail to the agency inbox
// when a new enquiry arrives. Failures are logged, never surfaced to the
// enquiring visitor.
func NotifyEnquiry(enquiry *models.Enquiry) {
	if !Enabled() {
		return
	}
	cfg := config.AppConfig.SMTP

	body := fmt.Sprintf(
		"New enquiry #%d\n\nName: %s\nEmail: %s\nPhone: %s\nDestinations: %s\nTravel date: %s\nTravelers: %d\nBudget: %s\n\n%s\n",
		enquiry.ID,
		enquiry.Name,
		enquiry.Email,
		enquiry.Phone,
		strings.Join(enquiry.Destinations, ", "),
		enquiry.TravelDate.Format("2006-01-02"),
		enquiry.Travelers,
		enquiry.Budget,
		enquiry.Message,
	)

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", cfg.NotifyTo)
	m.SetHeader("Subject", fmt.Sprintf("New travel enquiry from %s", enquiry.Name))
	m.SetBody("text/plain", body)

	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if err := dialer.DialAndSend(m); err != nil {
		logger.ErrorLogger.Errorf("Failed to send enquiry notification for enquiry %d: %v", enquiry.ID, err)
		return
	}
	logger.InfoLogger.Infof("Enquiry notification sent for enquiry %d", enquiry.ID)
}
