package mapper

import (
	"time"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/entity"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/model"
)

// KPIFromCreate builds a KPI; measurementDate may be nil.
func KPIFromCreate(req *dto.CreateKPIRequest, measurementDate *time.Time) *model.KPI {
	kpi := &model.KPI{
		Name:            req.Name,
		Category:        req.Category,
		Phase:           req.Phase,
		TargetValue:     req.TargetValue,
		CurrentValue:    req.CurrentValue,
		MeasurementDate: measurementDate,
	}
	RefreshAchieved(kpi)
	return kpi
}

// ApplyKPIUpdate copies the set fields of req onto kpi and re-evaluates it.
func ApplyKPIUpdate(kpi *model.KPI, req *dto.UpdateKPIRequest, measurementDate *time.Time) {
	if req.Name != nil {
		kpi.Name = *req.Name
	}
	if req.Category != nil {
		kpi.Category = *req.Category
	}
	if req.Phase != nil {
		kpi.Phase = *req.Phase
	}
	if req.TargetValue != nil {
		kpi.TargetValue = *req.TargetValue
	}
	if req.CurrentValue != nil {
		kpi.CurrentValue = *req.CurrentValue
	}
	if measurementDate != nil {
		kpi.MeasurementDate = measurementDate
	}
	RefreshAchieved(kpi)
}

// RefreshAchieved sets is_achieved from the current and target values.
func RefreshAchieved(kpi *model.KPI) {
	kpi.IsAchieved = entity.EvaluateKPI(kpi.TargetValue, kpi.CurrentValue).Achieved
}

// KPIToResponse evaluates kpi on read so a stale stored flag is never served.
func KPIToResponse(kpi *model.KPI) *dto.KPIResponse {
	eval := entity.EvaluateKPI(kpi.TargetValue, kpi.CurrentValue)
	resp := &dto.KPIResponse{
		ID:       kpi.ID,
		Phase:    kpi.Phase,
		Name:     kpi.Name,
		Category: kpi.Category,
		Target:   eval.Target,
		Current:  eval.Current,
		Achieved: eval.Achieved,
	}
	if kpi.MeasurementDate != nil {
		resp.MeasurementDate = kpi.MeasurementDate.Format(dto.DateLayout)
	}
	return resp
}

func KPIsToResponses(kpis []*model.KPI) []*dto.KPIResponse {
	out := make([]*dto.KPIResponse, len(kpis))
	for i, kpi := range kpis {
		out[i] = KPIToResponse(kpi)
	}
	return out
}

// KPIFromDefinition builds an unmeasured KPI row for a canonical definition.
func KPIFromDefinition(def entity.KPIDefinition) *model.KPI {
	return &model.KPI{
		Name:        def.Name,
		Category:    def.Category,
		Phase:       def.Phase,
		TargetValue: def.Target,
	}
}

// DefaultKPIResponses renders the canonical KPIs with a current value of 0.
func DefaultKPIResponses() []*dto.KPIResponse {
	defs := entity.CanonicalKPIs()
	out := make([]*dto.KPIResponse, len(defs))
	for i, def := range defs {
		out[i] = KPIToResponse(KPIFromDefinition(def))
	}
	return out
}
