package services

import (
	"backend/entity"
)

// RatingSummary is the derived rating for one design or one customer.
// Average 0 with Count 0 means "no data", not "lowest rating".
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// AggregateRatings computes the review count and the mean rating rounded
// half-up to 1 decimal place. Hidden reviews are included; only the public
// list view filters them out.
func AggregateRatings(reviews []entity.Review) RatingSummary {
	if len(reviews) == 0 {
		return RatingSummary{}
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return RatingSummary{
		Average: roundTo(avg, 1),
		Count:   len(reviews),
	}
}
