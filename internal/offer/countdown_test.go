package offer

import (
	"testing"
	"time"

	"storefront-service/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestRemaining(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// 1 day, 1 hour, 1 minute, 1 second
	end := now.Add(90061000 * time.Millisecond)
	cd := Remaining(end, now)
	assert.Equal(t, Countdown{Days: 1, Hours: 1, Minutes: 1, Seconds: 1}, cd)

	cd = Remaining(now.Add(59*time.Second), now)
	assert.Equal(t, Countdown{Seconds: 59}, cd)

	cd = Remaining(now.Add(48*time.Hour), now)
	assert.Equal(t, Countdown{Days: 2}, cd)
}

func TestRemainingEnded(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, end := range []time.Time{now, now.Add(-time.Second), now.Add(-72 * time.Hour)} {
		cd := Remaining(end, now)
		assert.True(t, cd.Ended)
		// Never negative units
		assert.Zero(t, cd.Days)
		assert.Zero(t, cd.Hours)
		assert.Zero(t, cd.Minutes)
		assert.Zero(t, cd.Seconds)
	}
}

func TestExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, Expired(model.SpecialOffer{EndTime: now.Add(time.Minute)}, now))
	// Expiry is inclusive: current time equal to endTime counts as expired
	assert.True(t, Expired(model.SpecialOffer{EndTime: now}, now))
	assert.True(t, Expired(model.SpecialOffer{EndTime: now.Add(-time.Minute)}, now))
}
