package model

import "time"

// KPI is a named target/current pair grouped by phase.
type KPI struct {
	ID              uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string     `gorm:"uniqueIndex;not null;size:255" json:"name"`
	Category        string     `gorm:"size:100" json:"category"`
	Phase           int        `gorm:"not null;default:1;check:chk_kpis_phase,phase >= 1 AND phase <= 4" json:"phase"`
	TargetValue     float64    `gorm:"not null;default:0" json:"target_value"`
	CurrentValue    float64    `gorm:"not null;default:0" json:"current_value"`
	IsAchieved      bool       `gorm:"not null;default:false" json:"is_achieved"`
	MeasurementDate *time.Time `gorm:"type:date" json:"measurement_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (KPI) TableName() string {
	return "kpis"
}
