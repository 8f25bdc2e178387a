package chillerlog

import (
	"time"

	"go-logbook/internal/ledger"
	"go-logbook/internal/workflow"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const SourceTable = "chiller_logs"

// Readings are nullable so one struct serves create, full update and patch.
type Readings struct {
	ChillerSupplyTemp             *float64 `gorm:"column:chiller_supply_temp" json:"chiller_supply_temp" binding:"omitempty,min=0"`
	ChillerReturnTemp             *float64 `gorm:"column:chiller_return_temp" json:"chiller_return_temp" binding:"omitempty,min=0"`
	CoolingTowerSupplyTemp        *float64 `gorm:"column:cooling_tower_supply_temp" json:"cooling_tower_supply_temp" binding:"omitempty,min=0"`
	CoolingTowerReturnTemp        *float64 `gorm:"column:cooling_tower_return_temp" json:"cooling_tower_return_temp" binding:"omitempty,min=0"`
	CTDifferentialTemp            *float64 `gorm:"column:ct_differential_temp" json:"ct_differential_temp" binding:"omitempty,min=0"`
	ChillerWaterInletPressure     *float64 `gorm:"column:chiller_water_inlet_pressure" json:"chiller_water_inlet_pressure" binding:"omitempty,min=0"`
	ChillerMakeupWaterFlow        *float64 `gorm:"column:chiller_makeup_water_flow" json:"chiller_makeup_water_flow" binding:"omitempty,min=0"`
	EvapWaterInletPressure        *float64 `gorm:"column:evap_water_inlet_pressure" json:"evap_water_inlet_pressure"`
	EvapWaterOutletPressure       *float64 `gorm:"column:evap_water_outlet_pressure" json:"evap_water_outlet_pressure"`
	EvapEnteringWaterTemp         *float64 `gorm:"column:evap_entering_water_temp" json:"evap_entering_water_temp"`
	EvapLeavingWaterTemp          *float64 `gorm:"column:evap_leaving_water_temp" json:"evap_leaving_water_temp"`
	EvapApproachTemp              *float64 `gorm:"column:evap_approach_temp" json:"evap_approach_temp"`
	CondWaterInletPressure        *float64 `gorm:"column:cond_water_inlet_pressure" json:"cond_water_inlet_pressure"`
	CondWaterOutletPressure       *float64 `gorm:"column:cond_water_outlet_pressure" json:"cond_water_outlet_pressure"`
	CondEnteringWaterTemp         *float64 `gorm:"column:cond_entering_water_temp" json:"cond_entering_water_temp"`
	CondLeavingWaterTemp          *float64 `gorm:"column:cond_leaving_water_temp" json:"cond_leaving_water_temp"`
	CondApproachTemp              *float64 `gorm:"column:cond_approach_temp" json:"cond_approach_temp"`
	ChillerControlSignal          *float64 `gorm:"column:chiller_control_signal" json:"chiller_control_signal"`
	AvgMotorCurrent               *float64 `gorm:"column:avg_motor_current" json:"avg_motor_current"`
	CompressorRunningTimeMin      *float64 `gorm:"column:compressor_running_time_min" json:"compressor_running_time_min"`
	StarterEnergyKWh              *float64 `gorm:"column:starter_energy_kwh" json:"starter_energy_kwh"`
	CoolingTowerBlowdownTimeMin   *float64 `gorm:"column:cooling_tower_blowdown_time_min" json:"cooling_tower_blowdown_time_min"`
	CoolingTowerChemicalQtyPerDay *float64 `gorm:"column:cooling_tower_chemical_qty_per_day" json:"cooling_tower_chemical_qty_per_day"`
	ChilledWaterPumpChemicalQtyKg *float64 `gorm:"column:chilled_water_pump_chemical_qty_kg" json:"chilled_water_pump_chemical_qty_kg"`
	CoolingTowerFanChemicalQtyKg  *float64 `gorm:"column:cooling_tower_fan_chemical_qty_kg" json:"cooling_tower_fan_chemical_qty_kg"`
}

func (r *Readings) fields() []**float64 {
	return []**float64{
		&r.ChillerSupplyTemp, &r.ChillerReturnTemp, &r.CoolingTowerSupplyTemp, &r.CoolingTowerReturnTemp,
		&r.CTDifferentialTemp, &r.ChillerWaterInletPressure, &r.ChillerMakeupWaterFlow,
		&r.EvapWaterInletPressure, &r.EvapWaterOutletPressure, &r.EvapEnteringWaterTemp,
		&r.EvapLeavingWaterTemp, &r.EvapApproachTemp,
		&r.CondWaterInletPressure, &r.CondWaterOutletPressure, &r.CondEnteringWaterTemp,
		&r.CondLeavingWaterTemp, &r.CondApproachTemp,
		&r.ChillerControlSignal, &r.AvgMotorCurrent, &r.CompressorRunningTimeMin, &r.StarterEnergyKWh,
		&r.CoolingTowerBlowdownTimeMin, &r.CoolingTowerChemicalQtyPerDay,
		&r.ChilledWaterPumpChemicalQtyKg, &r.CoolingTowerFanChemicalQtyKg,
	}
}

// merge copies every reading set in src.
func (r *Readings) merge(src Readings) {
	dst, from := r.fields(), src.fields()
	for i := range dst {
		if *from[i] != nil {
			*dst[i] = *from[i]
		}
	}
}

// missingRequired lists the readings a new log must carry.
func (r *Readings) missingRequired() map[string]string {
	required := []struct {
		name  string
		value *float64
	}{
		{"chiller_supply_temp", r.ChillerSupplyTemp},
		{"chiller_return_temp", r.ChillerReturnTemp},
		{"cooling_tower_supply_temp", r.CoolingTowerSupplyTemp},
		{"cooling_tower_return_temp", r.CoolingTowerReturnTemp},
		{"ct_differential_temp", r.CTDifferentialTemp},
		{"chiller_water_inlet_pressure", r.ChillerWaterInletPressure},
	}
	missing := map[string]string{}
	for _, f := range required {
		if f.value == nil {
			missing[f.name] = "This field is required."
		}
	}
	return missing
}

type Annotations struct {
	CoolingTowerChemicalName     *string `gorm:"column:cooling_tower_chemical_name;type:varchar(255)" json:"cooling_tower_chemical_name" binding:"omitempty,max=255"`
	ChilledWaterPumpChemicalName *string `gorm:"column:chilled_water_pump_chemical_name;type:varchar(255)" json:"chilled_water_pump_chemical_name" binding:"omitempty,max=255"`
	CoolingTowerFanChemicalName  *string `gorm:"column:cooling_tower_fan_chemical_name;type:varchar(255)" json:"cooling_tower_fan_chemical_name" binding:"omitempty,max=255"`
	RecordingFrequency           *string `gorm:"column:recording_frequency;type:varchar(50)" json:"recording_frequency" binding:"omitempty,max=50"`
	OperatorSign                 *string `gorm:"column:operator_sign;type:varchar(255)" json:"operator_sign" binding:"omitempty,max=255"`
	VerifiedBy                   *string `gorm:"column:verified_by;type:varchar(255)" json:"verified_by" binding:"omitempty,max=255"`
}

func (a *Annotations) merge(src Annotations) {
	dst := []**string{&a.CoolingTowerChemicalName, &a.ChilledWaterPumpChemicalName, &a.CoolingTowerFanChemicalName,
		&a.RecordingFrequency, &a.OperatorSign, &a.VerifiedBy}
	from := []*string{src.CoolingTowerChemicalName, src.ChilledWaterPumpChemicalName, src.CoolingTowerFanChemicalName,
		src.RecordingFrequency, src.OperatorSign, src.VerifiedBy}
	for i := range dst {
		if from[i] != nil {
			*dst[i] = from[i]
		}
	}
}

// EquipmentStatus holds the on/off flags compared against the day's baseline.
type EquipmentStatus struct {
	CoolingTowerPump         string `gorm:"column:cooling_tower_pump_status;type:varchar(3)" json:"cooling_tower_pump_status"`
	ChilledWaterPump         string `gorm:"column:chilled_water_pump_status;type:varchar(3)" json:"chilled_water_pump_status"`
	CoolingTowerFan          string `gorm:"column:cooling_tower_fan_status;type:varchar(3)" json:"cooling_tower_fan_status"`
	CoolingTowerBlowoffValve string `gorm:"column:cooling_tower_blowoff_valve_status;type:varchar(3)" json:"cooling_tower_blowoff_valve_status"`
}

type ChillerLog struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EquipmentID string    `gorm:"column:equipment_id;type:varchar(100);not null;index:idx_chiller_logs_equipment_ts"`
	SiteID      string    `gorm:"column:site_id;type:varchar(100)"`

	Readings
	Annotations
	EquipmentStatus
	workflow.Approval

	OperatorID   *uuid.UUID `gorm:"column:operator_id;type:uuid"`
	OperatorName string     `gorm:"column:operator_name;type:varchar(255)"`
	Timestamp    time.Time  `gorm:"column:timestamp;not null;index:idx_chiller_logs_equipment_ts"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (ChillerLog) TableName() string {
	return SourceTable
}

func (l ChillerLog) EntryID() uuid.UUID {
	return l.ID
}

func (l ChillerLog) ReportSeed() ledger.Seed {
	site := l.EquipmentID
	if site == "" {
		site = "N/A"
	}
	return ledger.Seed{
		ReportType:   ledger.ReportTypeUtility,
		SourceID:     l.ID,
		SourceTable:  SourceTable,
		Title:        "Chiller Monitoring - " + site,
		Site:         site,
		CreatedBy:    l.OperatorName,
		CreatedAt:    l.CreatedAt,
		ApprovedByID: l.ApprovedByID,
		ApprovedAt:   l.ApprovedAt,
		Remarks:      l.Remarks,
	}
}

// ChillerStatusChange is written once per deviating field and never updated.
type ChillerStatusChange struct {
	ID            uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	ChillerLogID  uuid.UUID         `gorm:"column:chiller_log_id;type:uuid;not null;index"`
	BaselineLogID uuid.UUID         `gorm:"column:baseline_log_id;type:uuid;not null"`
	EquipmentID   string            `gorm:"column:equipment_id;type:varchar(100);not null;index"`
	Field         string            `gorm:"column:field;type:varchar(64);not null"`
	FieldLabel    string            `gorm:"column:field_label;type:varchar(100);not null"`
	OldValue      string            `gorm:"column:old_value;type:varchar(3)"`
	NewValue      string            `gorm:"column:new_value;type:varchar(3)"`
	ChangedByID   *uuid.UUID        `gorm:"column:changed_by_id;type:uuid"`
	ChangedAt     time.Time         `gorm:"column:changed_at;not null"`
	Context       datatypes.JSONMap `gorm:"column:context;type:jsonb"`
}

func (ChillerStatusChange) TableName() string {
	return "chiller_status_changes"
}
