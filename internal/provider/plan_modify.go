package provider

import (
	"context"

	"github.com/hashicorp/terraform-plugin-framework/attr"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

var (
	memoryLimits = []string{"memory_minimum_mb", "memory_maximum_mb", "memory_step_size_mb"}
	diskLimits   = []string{"disk_minimum_mb", "disk_maximum_mb", "disk_step_size_mb"}
	cpuLimits    = []string{"cpu_minimum_count", "cpu_maximum_count"}
)

// scalingLimitDependents lists the limits the service recomputes when an
// allocation changes. Group totals follow the member count. Disk can not
// shrink below its allocation.
var scalingLimitDependents = map[string][]string{
	"members":     concatLimits(memoryLimits, diskLimits, cpuLimits),
	"disk_mb":     {"disk_minimum_mb"},
	"host_flavor": concatLimits([]string{"members_minimum_count", "members_maximum_count"}, memoryLimits, diskLimits, cpuLimits),
}

func concatLimits(groups ...[]string) []string {
	var all []string
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

// scalingLimitsModifier keeps the limits from state, except those that depend
// on an allocation changed by the configuration.
type scalingLimitsModifier struct{}

func (m scalingLimitsModifier) Description(_ context.Context) string {
	return "Keeps the scaling limits from state unless a members, disk_mb or host_flavor change makes the service recompute them."
}

func (m scalingLimitsModifier) MarkdownDescription(ctx context.Context) string {
	return m.Description(ctx)
}

func (m scalingLimitsModifier) PlanModifyObject(ctx context.Context, req planmodifier.ObjectRequest, resp *planmodifier.ObjectResponse) {
	if req.StateValue.IsNull() || !req.PlanValue.IsUnknown() || req.ConfigValue.IsUnknown() {
		return
	}

	var changed []string
	for name := range scalingLimitDependents {
		var isChanged bool
		var diags diag.Diagnostics
		if name == "host_flavor" {
			isChanged, diags = allocationChanged[types.String](ctx, req, name)
		} else {
			isChanged, diags = allocationChanged[types.Int64](ctx, req, name)
		}
		resp.Diagnostics.Append(diags...)
		if isChanged {
			changed = append(changed, name)
		}
	}
	if resp.Diagnostics.HasError() {
		return
	}

	planned, diags := types.ObjectValue(req.StateValue.AttributeTypes(ctx), plannedScalingLimits(req.StateValue.Attributes(), changed))
	resp.Diagnostics.Append(diags...)
	resp.PlanValue = planned
}

// allocationChanged reports whether the configuration sets name to something
// other than its state. An unset attribute keeps its state value.
func allocationChanged[T attr.Value](ctx context.Context, req planmodifier.ObjectRequest, name string) (bool, diag.Diagnostics) {
	var config, state T
	diags := req.Config.GetAttribute(ctx, path.Root(name), &config)
	diags.Append(req.State.GetAttribute(ctx, path.Root(name), &state)...)
	if diags.HasError() || config.IsNull() {
		return false, diags
	}
	return config.IsUnknown() || !config.Equal(state), diags
}

// plannedScalingLimits copies the limits in state and marks the dependents of
// the changed allocations unknown.
func plannedScalingLimits(state map[string]attr.Value, changed []string) map[string]attr.Value {
	planned := make(map[string]attr.Value, len(state))
	for k, v := range state {
		planned[k] = v
	}
	for _, name := range changed {
		for _, limit := range scalingLimitDependents[name] {
			planned[limit] = types.Int64Unknown()
		}
	}
	return planned
}

func scalingLimits() planmodifier.Object {
	return scalingLimitsModifier{}
}
