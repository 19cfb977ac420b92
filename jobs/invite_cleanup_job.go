package jobs

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"campusdrop-api/repositories"
)

// StaleInviteAge is how long a pending friend invite may sit unanswered
// before the cleanup job removes it.
const StaleInviteAge = 90 * 24 * time.Hour

// InviteCleanupJob periodically purges pending friend invites that were never
// acted on.
type InviteCleanupJob struct {
	friends *repositories.FriendRepository
	ticker  *time.Ticker
	done    chan bool
}

// NewInviteCleanupJob creates a new invite cleanup job
func NewInviteCleanupJob(db *gorm.DB, interval time.Duration) *InviteCleanupJob {
	return &InviteCleanupJob{
		friends: repositories.NewFriendRepository(db),
		ticker:  time.NewTicker(interval),
		done:    make(chan bool),
	}
}

// Start begins the cleanup job
func (j *InviteCleanupJob) Start() {
	fmt.Println("Invite cleanup job started")

	go func() {
		// Run immediately on start
		j.cleanup()

		// Then run on schedule
		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				fmt.Println("Invite cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job
func (j *InviteCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *InviteCleanupJob) cleanup() {
	removed, err := j.friends.DeleteStaleInvites(time.Now().Add(-StaleInviteAge))
	if err != nil {
		fmt.Printf("Error during invite cleanup: %v\n", err)
		return
	}

	if removed > 0 {
		fmt.Printf("Invite cleanup removed %d stale invites\n", removed)
	}
}
