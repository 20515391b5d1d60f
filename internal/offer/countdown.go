package offer

import (
	"time"

	"storefront-service/internal/model"
)

// Countdown is the decomposed time remaining until an offer ends. When Ended
// is true all units are zero; the display contract is "offer ended", never
// negative numbers.
type Countdown struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Ended   bool `json:"ended"`
}

// Remaining decomposes endTime minus now into integer days, hours, minutes
// and seconds. This feeds the once-a-second display refresh; the
// authoritative expiry check is Expired, which compares against endTime
// directly.
func Remaining(endTime, now time.Time) Countdown {
	ms := endTime.Sub(now).Milliseconds()
	if ms <= 0 {
		return Countdown{Ended: true}
	}
	return Countdown{
		Days:    int(ms / 86400000),
		Hours:   int(ms/3600000) % 24,
		Minutes: int(ms/60000) % 60,
		Seconds: int(ms/1000) % 60,
	}
}

// Expired reports whether the offer's end time has passed. Expired offers are
// not removed from the document, and the flash-sale listing deliberately does
// not filter them out; they keep rendering with an ended countdown until an
// admin deletes them.
func Expired(o model.SpecialOffer, now time.Time) bool {
	return !now.Before(o.EndTime)
}
