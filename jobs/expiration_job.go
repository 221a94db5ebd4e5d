package jobs

import (
	"log"
	"time"

	"decoriva-server/services"
)

// ExpirationJob sweeps stale checkout sessions. A session left open past
// its deadline is flipped to expired so verification can no longer
// settle against it.
type ExpirationJob struct {
	payments *services.PaymentService
	stopChan chan bool
}

// NewExpirationJob creates a new expiration job
func NewExpirationJob() *ExpirationJob {
	return &ExpirationJob{
		payments: services.NewPaymentService(),
		stopChan: make(chan bool),
	}
}

// Start begins the expiration job
func (j *ExpirationJob) Start() {
	go j.run()
	log.Println("🚀 Session expiration job started")
}

// Stop stops the expiration job
func (j *ExpirationJob) Stop() {
	j.stopChan <- true
	log.Println("🛑 Session expiration job stopped")
}

// run executes the expiration job
func (j *ExpirationJob) run() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.sweep()
		case <-j.stopChan:
			return
		}
	}
}

// sweep expires lapsed sessions
func (j *ExpirationJob) sweep() {
	expired, err := j.payments.ExpireStaleSessions()
	if err != nil {
		log.Printf("❌ Error expiring checkout sessions: %v", err)
		return
	}

	if expired > 0 {
		log.Printf("⏰ Expired %d stale checkout sessions", expired)
	}
}
