package services

import (
	"sort"

	"backend/entity"
)

// DesignView is a design enriched with its derived price and rating, the
// row shape handed to the presentation layer.
type DesignView struct {
	DesignID        uint                   `json:"design_id"`
	CakeID          uint                   `json:"cake_id"`
	CakeName        string                 `json:"cake_name"`
	Theme           string                 `json:"theme"`
	ColorPalette    string                 `json:"color_palette"`
	TopperType      *string                `json:"topper_type,omitempty"`
	ComplexityLevel entity.ComplexityLevel `json:"complexity_level"`
	ImageURL        string                 `json:"image_url"`
	Featured        bool                   `json:"featured"`
	CalculatedPrice float64                `json:"calculated_price"`
	AverageRating   float64                `json:"average_rating"`
	ReviewCount     int                    `json:"review_count"`
}

// BuildDesignView enriches one design. The cake may be nil (price 0) and
// the review slice may be empty (rating 0/0).
func BuildDesignView(design *entity.Design, cake *entity.Cake, reviews []entity.Review) DesignView {
	summary := AggregateRatings(reviews)
	view := DesignView{
		DesignID:        design.ID,
		CakeID:          design.CakeID,
		Theme:           design.Theme,
		ColorPalette:    design.ColorPalette,
		TopperType:      design.TopperType,
		ComplexityLevel: design.ComplexityLevel,
		ImageURL:        design.ImageURL,
		Featured:        design.Featured,
		CalculatedPrice: CalculatePrice(design, cake),
		AverageRating:   summary.Average,
		ReviewCount:     summary.Count,
	}
	if cake != nil {
		view.CakeName = cake.CakeName
	}
	return view
}

// RankDesigns orders enriched views by featured flag, then average rating,
// then review count, all descending, and truncates to topN. Ties after all
// three keys break by ascending design id so repeated runs always produce
// the same order. topN <= 0 means no truncation.
func RankDesigns(views []DesignView, topN int) []DesignView {
	ranked := make([]DesignView, len(views))
	copy(ranked, views)

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Featured != b.Featured {
			return a.Featured
		}
		if a.AverageRating != b.AverageRating {
			return a.AverageRating > b.AverageRating
		}
		if a.ReviewCount != b.ReviewCount {
			return a.ReviewCount > b.ReviewCount
		}
		return a.DesignID < b.DesignID
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
