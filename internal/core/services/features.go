package services

import (
	"math"

	"bank-marketing-service/internal/core/domain"
)

// EngineerFeatures derives the classifier's helper columns from a raw
// request. It is a pure function and must produce exactly what the
// training pipeline produced: log1p on duration and campaign, balance and
// previous flags. The pdays sentinel (-1 or 999) passes through untouched
// and never feeds has_previous_contact.
func EngineerFeatures(req domain.RawRequest) domain.EngineeredFeatures {
	return domain.EngineeredFeatures{
		RawRequest:         req,
		LogDuration:        math.Log1p(float64(req.Duration)),
		LogCampaign:        math.Log1p(float64(req.Campaign)),
		IsBalancePositive:  req.Balance > 0,
		HasPreviousContact: req.Previous > 0,
	}
}
