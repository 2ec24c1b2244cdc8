package model

import (
	"fmt"
	"math"

	"bank-marketing-service/internal/core/domain"
)

// pipelinePayload mirrors model.json: the Go-native export of the fitted
// sklearn pipeline (standard-scaled numerics, one-hot categoricals with
// unknowns ignored, logistic regression on top). Feature blocks appear in
// training column order: numerics first, then one category block per
// categorical column.
type pipelinePayload struct {
	NumericFeatures     []numericFeature     `json:"numeric_features"`
	CategoricalFeatures []categoricalFeature `json:"categorical_features"`
	Coefficients        []float64            `json:"coefficients"`
	Intercept           float64              `json:"intercept"`
}

type numericFeature struct {
	Name  string  `json:"name"`
	Mean  float64 `json:"mean"`
	Scale float64 `json:"scale"`
}

type categoricalFeature struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

// LogregHandle is a loaded pipeline. It is read-only after construction
// and shared by all concurrent predictions in the process.
type LogregHandle struct {
	numeric     []numericFeature
	categorical []categoricalFeature
	coef        []float64
	intercept   float64
}

var knownNumeric = map[string]bool{
	"age": true, "balance": true, "day": true, "duration": true,
	"campaign": true, "pdays": true, "previous": true,
	"log_campaign": true, "log_duration": true,
	"is_balance_positive": true, "has_previous_contact": true,
}

var knownCategorical = map[string]bool{
	"job": true, "marital": true, "education": true, "default": true,
	"housing": true, "loan": true, "contact": true, "month": true,
	"poutcome": true,
}

func newLogregHandle(payload pipelinePayload) (*LogregHandle, error) {
	width := len(payload.NumericFeatures)
	for _, nf := range payload.NumericFeatures {
		if !knownNumeric[nf.Name] {
			return nil, fmt.Errorf("%w: unknown numeric column %q", domain.ErrModelCorrupt, nf.Name)
		}
	}
	for _, cf := range payload.CategoricalFeatures {
		if !knownCategorical[cf.Name] {
			return nil, fmt.Errorf("%w: unknown categorical column %q", domain.ErrModelCorrupt, cf.Name)
		}
		if len(cf.Categories) == 0 {
			return nil, fmt.Errorf("%w: categorical column %q has no categories", domain.ErrModelCorrupt, cf.Name)
		}
		width += len(cf.Categories)
	}
	if width == 0 || len(payload.Coefficients) != width {
		return nil, fmt.Errorf("%w: coefficient count %d does not match feature width %d",
			domain.ErrModelCorrupt, len(payload.Coefficients), width)
	}
	for _, nf := range payload.NumericFeatures {
		if nf.Scale == 0 {
			return nil, fmt.Errorf("%w: numeric column %q has zero scale", domain.ErrModelCorrupt, nf.Name)
		}
	}
	return &LogregHandle{
		numeric:     payload.NumericFeatures,
		categorical: payload.CategoricalFeatures,
		coef:        payload.Coefficients,
		intercept:   payload.Intercept,
	}, nil
}

// Score returns the probability of the positive class (term deposit
// subscription) for one engineered feature set.
func (h *LogregHandle) Score(f domain.EngineeredFeatures) float64 {
	z := h.intercept
	i := 0

	for _, nf := range h.numeric {
		z += h.coef[i] * (numericValue(f, nf.Name) - nf.Mean) / nf.Scale
		i++
	}

	for _, cf := range h.categorical {
		value := categoricalValue(f, cf.Name)
		for _, category := range cf.Categories {
			// Unknown categories contribute nothing, matching the
			// encoder's handle_unknown=ignore behavior at fit time.
			if value == category {
				z += h.coef[i]
			}
			i++
		}
	}

	return 1 / (1 + math.Exp(-z))
}

func numericValue(f domain.EngineeredFeatures, name string) float64 {
	switch name {
	case "age":
		return float64(f.Age)
	case "balance":
		return float64(f.Balance)
	case "day":
		return float64(f.Day)
	case "duration":
		return float64(f.Duration)
	case "campaign":
		return float64(f.Campaign)
	case "pdays":
		return float64(f.Pdays)
	case "previous":
		return float64(f.Previous)
	case "log_campaign":
		return f.LogCampaign
	case "log_duration":
		return f.LogDuration
	case "is_balance_positive":
		return boolToFloat(f.IsBalancePositive)
	case "has_previous_contact":
		return boolToFloat(f.HasPreviousContact)
	}
	return 0
}

func categoricalValue(f domain.EngineeredFeatures, name string) string {
	switch name {
	case "job":
		return f.Job
	case "marital":
		return f.Marital
	case "education":
		return f.Education
	case "default":
		return f.Default
	case "housing":
		return f.Housing
	case "loan":
		return f.Loan
	case "contact":
		return f.Contact
	case "month":
		return f.Month
	case "poutcome":
		return f.Poutcome
	}
	return ""
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
