package dto

import "bank-marketing-service/internal/core/domain"

// PredictRequest is the schema-validated boundary for the 16 customer
// fields. Enum domains follow the bank-marketing dataset; the core trusts
// this layer and does not re-check membership. Numeric fields that
// legitimately hold zero (or negative balance) bind through pointers so
// presence is still enforced.
type PredictRequest struct {
	Age       int    `json:"age" binding:"required,gte=1,lte=120"`
	Job       string `json:"job" binding:"required,oneof=admin. blue-collar entrepreneur housemaid management retired self-employed services student technician unemployed unknown"`
	Marital   string `json:"marital" binding:"required,oneof=divorced married single"`
	Education string `json:"education" binding:"required,oneof=primary secondary tertiary unknown"`
	Default   string `json:"default" binding:"required,oneof=yes no"`
	Balance   *int   `json:"balance" binding:"required"`
	Housing   string `json:"housing" binding:"required,oneof=yes no"`
	Loan      string `json:"loan" binding:"required,oneof=yes no"`
	Contact   string `json:"contact" binding:"required,oneof=cellular telephone unknown"`
	Day       int    `json:"day" binding:"required,gte=1,lte=31"`
	Month     string `json:"month" binding:"required,oneof=jan feb mar apr may jun jul aug sep oct nov dec"`
	Duration  *int   `json:"duration" binding:"required,gte=0"`
	Campaign  *int   `json:"campaign" binding:"required,gte=0"`
	Pdays     *int   `json:"pdays" binding:"required,gte=-1"`
	Previous  *int   `json:"previous" binding:"required,gte=0"`
	Poutcome  string `json:"poutcome" binding:"required,oneof=failure other success unknown"`
}

// ToRawRequest maps the validated payload onto the core's value object.
func (r PredictRequest) ToRawRequest() domain.RawRequest {
	return domain.RawRequest{
		Age:       r.Age,
		Job:       r.Job,
		Marital:   r.Marital,
		Education: r.Education,
		Default:   r.Default,
		Balance:   *r.Balance,
		Housing:   r.Housing,
		Loan:      r.Loan,
		Contact:   r.Contact,
		Day:       r.Day,
		Month:     r.Month,
		Duration:  *r.Duration,
		Campaign:  *r.Campaign,
		Pdays:     *r.Pdays,
		Previous:  *r.Previous,
		Poutcome:  r.Poutcome,
	}
}

type PredictionResponse struct {
	Probability float64 `json:"probability"`
	Prediction  int     `json:"prediction"`
}

func ToPredictionResponse(result domain.PredictionResult) PredictionResponse {
	return PredictionResponse{
		Probability: result.Probability,
		Prediction:  result.Label,
	}
}

type HealthResponse struct {
	Status string `json:"status"`
}
