package services

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
)

func TestAggregateRatingsEmpty(t *testing.T) {
	got := AggregateRatings(nil)
	assert.Equal(t, RatingSummary{Average: 0, Count: 0}, got)

	got = AggregateRatings([]entity.Review{})
	assert.Equal(t, RatingSummary{Average: 0, Count: 0}, got)
}

func TestAggregateRatingsRoundsToOneDecimal(t *testing.T) {
	reviews := []entity.Review{
		{Rating: 5}, {Rating: 5}, {Rating: 4},
	}
	got := AggregateRatings(reviews)
	// 14/3 = 4.666... -> 4.7
	assert.Equal(t, RatingSummary{Average: 4.7, Count: 3}, got)
}

func TestAggregateRatingsSingle(t *testing.T) {
	got := AggregateRatings([]entity.Review{{Rating: 3}})
	assert.Equal(t, RatingSummary{Average: 3, Count: 1}, got)
}

func TestAggregateRatingsIncludesHidden(t *testing.T) {
	reviews := []entity.Review{
		{Rating: 5, IsHidden: true},
		{Rating: 1},
	}
	got := AggregateRatings(reviews)
	assert.Equal(t, RatingSummary{Average: 3, Count: 2}, got)
}
