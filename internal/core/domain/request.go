package domain

// RawRequest carries the 16 customer fields as validated by the HTTP
// schema layer. Enum membership is the caller's responsibility; the core
// does not re-validate it.
type RawRequest struct {
	Age       int    `json:"age"`
	Job       string `json:"job"`
	Marital   string `json:"marital"`
	Education string `json:"education"`
	Default   string `json:"default"`
	Balance   int    `json:"balance"`
	Housing   string `json:"housing"`
	Loan      string `json:"loan"`
	Contact   string `json:"contact"`
	Day       int    `json:"day"`
	Month     string `json:"month"`
	Duration  int    `json:"duration"`
	Campaign  int    `json:"campaign"`
	Pdays     int    `json:"pdays"`
	Previous  int    `json:"previous"`
	Poutcome  string `json:"poutcome"`
}

// EngineeredFeatures is the raw request plus the derived columns the
// classifier was fitted on. It must stay bit-identical to the offline
// feature engineering step.
type EngineeredFeatures struct {
	RawRequest

	LogDuration        float64 `json:"log_duration"`
	LogCampaign        float64 `json:"log_campaign"`
	IsBalancePositive  bool    `json:"is_balance_positive"`
	HasPreviousContact bool    `json:"has_previous_contact"`
}

// PredictionResult is the calibrated decision for one request.
type PredictionResult struct {
	Probability float64 `json:"probability"`
	Label       int     `json:"prediction"`
}

// ReadinessState tracks whether the process can serve predictions.
type ReadinessState string

const (
	StateUninitialized ReadinessState = "UNINITIALIZED"
	StateLoading       ReadinessState = "LOADING"
	StateReady         ReadinessState = "READY"
	StateFailed        ReadinessState = "FAILED"
)

// IsValid checks if the state is valid
func (s ReadinessState) IsValid() bool {
	switch s {
	case StateUninitialized, StateLoading, StateReady, StateFailed:
		return true
	}
	return false
}
