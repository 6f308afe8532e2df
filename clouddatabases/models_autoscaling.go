package clouddatabases

import (
	"github.com/iancoleman/orderedmap"
)

type AutoscalingGroup struct {
	Autoscaling *AutoscalingGroupAutoscaling `json:"autoscaling,omitempty"`
}

type AutoscalingGroupAutoscaling struct {
	Disk   *AutoscalingDiskGroupDisk     `json:"disk,omitempty"`
	Memory *AutoscalingMemoryGroupMemory `json:"memory,omitempty"`
	CPU    *AutoscalingCPUGroupCPU       `json:"cpu,omitempty"`
}

type AutoscalingDiskGroupDisk struct {
	Scalers *AutoscalingDiskGroupDiskScalers `json:"scalers,omitempty"`
	Rate    *AutoscalingDiskGroupDiskRate    `json:"rate,omitempty"`
}

type AutoscalingDiskGroupDiskScalers struct {
	Capacity      *AutoscalingDiskGroupDiskScalersCapacity      `json:"capacity,omitempty"`
	IoUtilization *AutoscalingDiskGroupDiskScalersIoUtilization `json:"io_utilization,omitempty"`
}

type AutoscalingDiskGroupDiskScalersCapacity struct {
	Enabled                  *bool  `json:"enabled,omitempty"`
	FreeSpaceLessThanPercent *int64 `json:"free_space_less_than_percent,omitempty"`
}

type AutoscalingDiskGroupDiskScalersIoUtilization struct {
	Enabled      *bool   `json:"enabled,omitempty"`
	OverPeriod   *string `json:"over_period,omitempty"`
	AbovePercent *int64  `json:"above_percent,omitempty"`
}

type AutoscalingDiskGroupDiskRate struct {
	IncreasePercent  *float64 `json:"increase_percent,omitempty"`
	PeriodSeconds    *int64   `json:"period_seconds,omitempty"`
	LimitMbPerMember *float64 `json:"limit_mb_per_member,omitempty"`
	Units            *string  `json:"units,omitempty"`
}

type AutoscalingMemoryGroupMemory struct {
	Scalers *AutoscalingMemoryGroupMemoryScalers `json:"scalers,omitempty"`
	Rate    *AutoscalingMemoryGroupMemoryRate    `json:"rate,omitempty"`
}

type AutoscalingMemoryGroupMemoryScalers struct {
	IoUtilization *AutoscalingMemoryGroupMemoryScalersIoUtilization `json:"io_utilization,omitempty"`
}

type AutoscalingMemoryGroupMemoryScalersIoUtilization struct {
	Enabled      *bool   `json:"enabled,omitempty"`
	OverPeriod   *string `json:"over_period,omitempty"`
	AbovePercent *int64  `json:"above_percent,omitempty"`
}

type AutoscalingMemoryGroupMemoryRate struct {
	IncreasePercent  *float64 `json:"increase_percent,omitempty"`
	PeriodSeconds    *int64   `json:"period_seconds,omitempty"`
	LimitMbPerMember *float64 `json:"limit_mb_per_member,omitempty"`
	Units            *string  `json:"units,omitempty"`
}

// AutoscalingCPUGroupCPU has no fixed scaler set; scalers are passed through
// as an open mapping.
type AutoscalingCPUGroupCPU struct {
	Scalers *orderedmap.OrderedMap      `json:"scalers,omitempty"`
	Rate    *AutoscalingCPUGroupCPURate `json:"rate,omitempty"`
}

type AutoscalingCPUGroupCPURate struct {
	IncreasePercent     *float64 `json:"increase_percent,omitempty"`
	PeriodSeconds       *int64   `json:"period_seconds,omitempty"`
	LimitCountPerMember *int64   `json:"limit_count_per_member,omitempty"`
	Units               *string  `json:"units,omitempty"`
}

// AutoscalingSetGroupAutoscaling is the body of SetAutoscalingConditions.
// Exactly one resource is set per request, so it is one of
// AutoscalingDiskGroup, AutoscalingMemoryGroup or AutoscalingCPUGroup.
type AutoscalingSetGroupAutoscaling interface {
	isaAutoscalingSetGroupAutoscaling() bool
}

type AutoscalingDiskGroup struct {
	Disk *AutoscalingDiskGroupDisk `json:"disk,omitempty" validate:"required"`
}

func (*AutoscalingDiskGroup) isaAutoscalingSetGroupAutoscaling() bool { return true }

func (g *AutoscalingDiskGroup) UnmarshalJSON(data []byte) error {
	type plain AutoscalingDiskGroup
	return unmarshalModel(data, "AutoscalingDiskGroup", (*plain)(g))
}

type AutoscalingMemoryGroup struct {
	Memory *AutoscalingMemoryGroupMemory `json:"memory,omitempty" validate:"required"`
}

func (*AutoscalingMemoryGroup) isaAutoscalingSetGroupAutoscaling() bool { return true }

func (g *AutoscalingMemoryGroup) UnmarshalJSON(data []byte) error {
	type plain AutoscalingMemoryGroup
	return unmarshalModel(data, "AutoscalingMemoryGroup", (*plain)(g))
}

type AutoscalingCPUGroup struct {
	CPU *AutoscalingCPUGroupCPU `json:"cpu,omitempty" validate:"required"`
}

func (*AutoscalingCPUGroup) isaAutoscalingSetGroupAutoscaling() bool { return true }

func (g *AutoscalingCPUGroup) UnmarshalJSON(data []byte) error {
	type plain AutoscalingCPUGroup
	return unmarshalModel(data, "AutoscalingCPUGroup", (*plain)(g))
}

type setAutoscalingConditionsBody struct {
	Autoscaling AutoscalingSetGroupAutoscaling `json:"autoscaling"`
}
