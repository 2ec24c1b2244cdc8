package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"bank-marketing-service/internal/core/domain"
)

func sampleRequest() domain.RawRequest {
	return domain.RawRequest{
		Age: 42, Job: "blue-collar", Marital: "married", Education: "secondary",
		Default: "no", Balance: 1500, Housing: "yes", Loan: "no",
		Contact: "cellular", Day: 15, Month: "may",
		Duration: 180, Campaign: 2, Pdays: 999, Previous: 0, Poutcome: "unknown",
	}
}

func TestEngineerFeatures_GoldenVector(t *testing.T) {
	f := EngineerFeatures(sampleRequest())

	assert.InDelta(t, math.Log(181), f.LogDuration, 1e-12)
	assert.InDelta(t, math.Log(3), f.LogCampaign, 1e-12)
	assert.True(t, f.IsBalancePositive)
	assert.False(t, f.HasPreviousContact)

	// Sentinel pdays passes through untouched.
	assert.Equal(t, 999, f.Pdays)
}

func TestEngineerFeatures_Pure(t *testing.T) {
	req := sampleRequest()

	first := EngineerFeatures(req)
	second := EngineerFeatures(req)

	assert.Equal(t, first, second)
}

func TestEngineerFeatures_ZeroBoundaries(t *testing.T) {
	req := sampleRequest()
	req.Duration = 0
	req.Campaign = 0
	req.Previous = 0
	req.Balance = 0

	f := EngineerFeatures(req)

	// ln(1+0) == 0, no domain error at zero.
	assert.Zero(t, f.LogDuration)
	assert.Zero(t, f.LogCampaign)
	assert.False(t, f.IsBalancePositive)
	assert.False(t, f.HasPreviousContact)
}

func TestEngineerFeatures_NegativeBalance(t *testing.T) {
	req := sampleRequest()
	req.Balance = -300

	f := EngineerFeatures(req)

	assert.False(t, f.IsBalancePositive)
	assert.Equal(t, -300, f.Balance)
}

func TestEngineerFeatures_PreviousContact(t *testing.T) {
	req := sampleRequest()
	req.Previous = 3
	req.Pdays = -1

	f := EngineerFeatures(req)

	// has_previous_contact derives from previous only, never pdays.
	assert.True(t, f.HasPreviousContact)
	assert.Equal(t, -1, f.Pdays)
}
