package clouddatabases

// Group is a scaling group of a deployment: the resources its members are
// allocated and the bounds they may be scaled within.
type Group struct {
	ID         *string          `json:"id,omitempty"`
	Count      *int64           `json:"count,omitempty"`
	Members    *GroupMembers    `json:"members,omitempty"`
	Memory     *GroupMemory     `json:"memory,omitempty"`
	CPU        *GroupCPU        `json:"cpu,omitempty"`
	Disk       *GroupDisk       `json:"disk,omitempty"`
	HostFlavor *GroupHostFlavor `json:"host_flavor,omitempty"`
}

type GroupMembers struct {
	Units           *string `json:"units,omitempty"`
	AllocationCount *int64  `json:"allocation_count,omitempty"`
	MinimumCount    *int64  `json:"minimum_count,omitempty"`
	MaximumCount    *int64  `json:"maximum_count,omitempty"`
	StepSizeCount   *int64  `json:"step_size_count,omitempty"`
	IsAdjustable    *bool   `json:"is_adjustable,omitempty"`
	IsOptional      *bool   `json:"is_optional,omitempty"`
	CanScaleDown    *bool   `json:"can_scale_down,omitempty"`
}

type GroupMemory struct {
	Units                        *string `json:"units,omitempty"`
	AllocationMb                 *int64  `json:"allocation_mb,omitempty"`
	MinimumMb                    *int64  `json:"minimum_mb,omitempty"`
	MaximumMb                    *int64  `json:"maximum_mb,omitempty"`
	StepSizeMb                   *int64  `json:"step_size_mb,omitempty"`
	IsAdjustable                 *bool   `json:"is_adjustable,omitempty"`
	IsOptional                   *bool   `json:"is_optional,omitempty"`
	CanScaleDown                 *bool   `json:"can_scale_down,omitempty"`
	CPUEnforcementRatioCeilingMb *int64  `json:"cpu_enforcement_ratio_ceiling_mb,omitempty"`
	CPUEnforcementRatioMb        *int64  `json:"cpu_enforcement_ratio_mb,omitempty"`
}

type GroupCPU struct {
	Units           *string `json:"units,omitempty"`
	AllocationCount *int64  `json:"allocation_count,omitempty"`
	MinimumCount    *int64  `json:"minimum_count,omitempty"`
	MaximumCount    *int64  `json:"maximum_count,omitempty"`
	StepSizeCount   *int64  `json:"step_size_count,omitempty"`
	IsAdjustable    *bool   `json:"is_adjustable,omitempty"`
	IsOptional      *bool   `json:"is_optional,omitempty"`
	CanScaleDown    *bool   `json:"can_scale_down,omitempty"`
}

type GroupDisk struct {
	Units        *string `json:"units,omitempty"`
	AllocationMb *int64  `json:"allocation_mb,omitempty"`
	MinimumMb    *int64  `json:"minimum_mb,omitempty"`
	MaximumMb    *int64  `json:"maximum_mb,omitempty"`
	StepSizeMb   *int64  `json:"step_size_mb,omitempty"`
	IsAdjustable *bool   `json:"is_adjustable,omitempty"`
	IsOptional   *bool   `json:"is_optional,omitempty"`
	CanScaleDown *bool   `json:"can_scale_down,omitempty"`
}

type GroupHostFlavor struct {
	ID          *string `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	HostingSize *string `json:"hosting_size,omitempty"`
}

type ListDeploymentScalingGroupsResponse struct {
	Groups []Group `json:"groups,omitempty"`
}

// Find returns the group with the given ID, if present.
func (r *ListDeploymentScalingGroupsResponse) Find(groupID string) *Group {
	if r == nil {
		return nil
	}
	for i := range r.Groups {
		if r.Groups[i].ID != nil && *r.Groups[i].ID == groupID {
			return &r.Groups[i]
		}
	}
	return nil
}

type GetDefaultScalingGroupsResponse struct {
	Groups []Group `json:"groups,omitempty"`
}

// GroupScaling is the request body for SetDeploymentScalingGroup. Only the
// resources that are set are changed.
type GroupScaling struct {
	Members    *GroupScalingMembers    `json:"members,omitempty"`
	Memory     *GroupScalingMemory     `json:"memory,omitempty"`
	CPU        *GroupScalingCPU        `json:"cpu,omitempty"`
	Disk       *GroupScalingDisk       `json:"disk,omitempty"`
	HostFlavor *GroupScalingHostFlavor `json:"host_flavor,omitempty"`
}

type GroupScalingMembers struct {
	AllocationCount *int64 `json:"allocation_count,omitempty"`
}

type GroupScalingMemory struct {
	AllocationMb *int64 `json:"allocation_mb,omitempty"`
}

type GroupScalingCPU struct {
	AllocationCount *int64 `json:"allocation_count,omitempty"`
}

type GroupScalingDisk struct {
	AllocationMb *int64 `json:"allocation_mb,omitempty"`
}

type GroupScalingHostFlavor struct {
	ID *string `json:"id,omitempty" validate:"required"`
}

func (f *GroupScalingHostFlavor) UnmarshalJSON(data []byte) error {
	type plain GroupScalingHostFlavor
	return unmarshalModel(data, "GroupScalingHostFlavor", (*plain)(f))
}

type setDeploymentScalingGroupBody struct {
	Group *GroupScaling `json:"group"`
}
