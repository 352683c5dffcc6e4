package dto

type CreateKPIRequest struct {
	Name            string  `json:"name" validate:"required,max=255"`
	Category        string  `json:"category" validate:"max=100"`
	Phase           int     `json:"phase" validate:"required,min=1,max=4"`
	TargetValue     float64 `json:"target_value"`
	CurrentValue    float64 `json:"current_value"`
	MeasurementDate string  `json:"measurement_date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateKPIRequest is a partial update; is_achieved is always recomputed.
type UpdateKPIRequest struct {
	Name            *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Category        *string  `json:"category" validate:"omitempty,max=100"`
	Phase           *int     `json:"phase" validate:"omitempty,min=1,max=4"`
	TargetValue     *float64 `json:"target_value"`
	CurrentValue    *float64 `json:"current_value"`
	MeasurementDate *string  `json:"measurement_date" validate:"omitempty,datetime=2006-01-02"`
}

// KPIResponse omits id for the canonical defaults served when nothing is stored.
type KPIResponse struct {
	ID              uint    `json:"id,omitempty"`
	Phase           int     `json:"phase"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Target          float64 `json:"target"`
	Current         float64 `json:"current"`
	Achieved        bool    `json:"achieved"`
	MeasurementDate string  `json:"measurement_date,omitempty"`
}
