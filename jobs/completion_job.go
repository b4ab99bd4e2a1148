package jobs

import (
	"time"

	"travel-agency-server/database"
	"travel-agency-server/logger"
	"travel-agency-server/models"
)

// CompletionJob marks confirmed bookings whose travel date has passed as
// completed, so the dashboard and owner views reflect finished trips without
// an admin touching every record.
type CompletionJob struct {
	interval time.Duration
	stopChan chan bool
}

// NewCompletionJob creates a new completion job
func NewCompletionJob() *CompletionJob {
	return &CompletionJob{
		interval: time.Hour,
		stopChan: make(chan bool),
	}
}

// Start begins the completion job
func (j *CompletionJob) Start() {
	go j.run()
	logger.InfoLogger.Info("🚀 Booking completion job started")
}

// Stop stops the completion job
func (j *CompletionJob) Stop() {
	j.stopChan <- true
	logger.InfoLogger.Info("🛑 Booking completion job stopped")
}

func (j *CompletionJob) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.CompletePastBookings(time.Now())
		case <-j.stopChan:
			return
		}
	}
}

// CompletePastBookings flips confirmed bookings with a past travel date to
// completed and returns how many rows changed.
func (j *CompletionJob) CompletePastBookings(now time.Time) int64 {
	result := database.DB.Model(&models.Booking{}).
		Where("booking_status = ? AND travel_date < ?", models.BookingStatusConfirmed, now).
		Update("booking_status", models.BookingStatusCompleted)

	if result.Error != nil {
		logger.ErrorLogger.Errorf("Failed to complete past bookings: %v", result.Error)
		return 0
	}
	if result.RowsAffected > 0 {
		logger.InfoLogger.Infof("⏰ Marked %d past bookings as completed", result.RowsAffected)
	}
	return result.RowsAffected
}
