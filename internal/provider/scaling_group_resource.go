package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/clouddatabases/terraform-provider-clouddatabases/clouddatabases"
	"github.com/hashicorp/terraform-plugin-framework/attr"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/int64planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringdefault"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/juju/errors"
)

const defaultScalingGroupID = "member"

var (
	_ resource.Resource                = &scalingGroupResource{}
	_ resource.ResourceWithImportState = &scalingGroupResource{}
)

var scalingLimitsAttrTypes = map[string]attr.Type{
	"members_minimum_count": types.Int64Type,
	"members_maximum_count": types.Int64Type,
	"memory_minimum_mb":     types.Int64Type,
	"memory_maximum_mb":     types.Int64Type,
	"memory_step_size_mb":   types.Int64Type,
	"disk_minimum_mb":       types.Int64Type,
	"disk_maximum_mb":       types.Int64Type,
	"disk_step_size_mb":     types.Int64Type,
	"cpu_minimum_count":     types.Int64Type,
	"cpu_maximum_count":     types.Int64Type,
}

type scalingGroupResourceData struct {
	DeploymentId types.String `tfsdk:"deployment_id"`
	GroupId      types.String `tfsdk:"group_id"`
	Members      types.Int64  `tfsdk:"members"`
	MemoryMb     types.Int64  `tfsdk:"memory_mb"`
	DiskMb       types.Int64  `tfsdk:"disk_mb"`
	CpuCount     types.Int64  `tfsdk:"cpu_count"`
	HostFlavor   types.String `tfsdk:"host_flavor"`
	Limits       types.Object `tfsdk:"limits"`
}

type scalingGroupResource struct {
	provider *clouddatabasesProvider
}

func NewScalingGroupResource() resource.Resource {
	return &scalingGroupResource{}
}

func (r *scalingGroupResource) Metadata(_ context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_scaling_group"
}

func (r *scalingGroupResource) Configure(_ context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	r.provider = configureResource(req, resp)
}

func (r *scalingGroupResource) Schema(_ context.Context, _ resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "The resource allocation of one scaling group of a deployment. Deleting the resource leaves the allocation unchanged.",
		Attributes: map[string]schema.Attribute{
			"deployment_id": schema.StringAttribute{
				MarkdownDescription: "The ID (CRN) of the deployment.",
				Required:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"group_id": schema.StringAttribute{
				MarkdownDescription: "The ID of the scaling group, `member` by default.",
				Optional:            true,
				Computed:            true,
				Default:             stringdefault.StaticString(defaultScalingGroupID),
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"members": schema.Int64Attribute{
				MarkdownDescription: "The number of members in the group.",
				Optional:            true,
				Computed:            true,
				PlanModifiers: []planmodifier.Int64{
					int64planmodifier.UseStateForUnknown(),
				},
			},
			"memory_mb": schema.Int64Attribute{
				MarkdownDescription: "The total memory of the group in megabytes.",
				Optional:            true,
				Computed:            true,
				PlanModifiers: []planmodifier.Int64{
					int64planmodifier.UseStateForUnknown(),
				},
			},
			"disk_mb": schema.Int64Attribute{
				MarkdownDescription: "The total disk of the group in megabytes.",
				Optional:            true,
				Computed:            true,
				PlanModifiers: []planmodifier.Int64{
					int64planmodifier.UseStateForUnknown(),
				},
			},
			"cpu_count": schema.Int64Attribute{
				MarkdownDescription: "The number of dedicated CPUs of the group.",
				Optional:            true,
				Computed:            true,
				PlanModifiers: []planmodifier.Int64{
					int64planmodifier.UseStateForUnknown(),
				},
			},
			"host_flavor": schema.StringAttribute{
				MarkdownDescription: "The host flavor ID, such as `multitenant` or `b3c.4x16.encrypted`.",
				Optional:            true,
				Computed:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.UseStateForUnknown(),
				},
			},
			"limits": schema.SingleNestedAttribute{
				MarkdownDescription: "The scaling limits of the group.",
				Computed:            true,
				PlanModifiers: []planmodifier.Object{
					scalingLimits(),
				},
				Attributes: map[string]schema.Attribute{
					"members_minimum_count": schema.Int64Attribute{Computed: true},
					"members_maximum_count": schema.Int64Attribute{Computed: true},
					"memory_minimum_mb":     schema.Int64Attribute{Computed: true},
					"memory_maximum_mb":     schema.Int64Attribute{Computed: true},
					"memory_step_size_mb":   schema.Int64Attribute{Computed: true},
					"disk_minimum_mb":       schema.Int64Attribute{Computed: true},
					"disk_maximum_mb":       schema.Int64Attribute{Computed: true},
					"disk_step_size_mb":     schema.Int64Attribute{Computed: true},
					"cpu_minimum_count":     schema.Int64Attribute{Computed: true},
					"cpu_maximum_count":     schema.Int64Attribute{Computed: true},
				},
			},
		},
	}
}

func (r *scalingGroupResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	if !checkConfigured(r.provider, &resp.Diagnostics) {
		return
	}

	var data scalingGroupResourceData
	diags := req.Plan.Get(ctx, &data)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Trace(ctx, "create scaling_group_resource")
	if err := r.scale(ctx, data.DeploymentId.ValueString(), data.GroupId.ValueString(), buildGroupScaling(data, nil)); err != nil {
		resp.Diagnostics.AddError("Create Error", err.Error())
		return
	}

	resp.Diagnostics.Append(r.refresh(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}
	diags = resp.State.Set(ctx, &data)
	resp.Diagnostics.Append(diags...)
}

func (r *scalingGroupResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var data scalingGroupResourceData
	diags := req.State.Get(ctx, &data)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Trace(ctx, "read scaling_group_resource")
	groups, _, err := r.provider.client.ListDeploymentScalingGroups(ctx,
		clouddatabases.NewListDeploymentScalingGroupsOptions(data.DeploymentId.ValueString()))
	if err != nil {
		if isNotFound(err) {
			resp.State.RemoveResource(ctx)
			return
		}
		resp.Diagnostics.AddError("Read Error", fmt.Sprintf("Unable to call ListDeploymentScalingGroups, got error: %s", err))
		return
	}
	group := groups.Find(data.GroupId.ValueString())
	if group == nil {
		tflog.Warn(ctx, "scaling group not found, removing from state", map[string]interface{}{"group_id": data.GroupId.ValueString()})
		resp.State.RemoveResource(ctx)
		return
	}
	resp.Diagnostics.Append(refreshScalingGroupData(group, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	diags = resp.State.Set(ctx, &data)
	resp.Diagnostics.Append(diags...)
}

func (r *scalingGroupResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	// get plan
	var plan scalingGroupResourceData
	diags := req.Plan.Get(ctx, &plan)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	// get state
	var state scalingGroupResourceData
	diags = req.State.Get(ctx, &state)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Trace(ctx, "update scaling_group_resource")
	if err := r.scale(ctx, state.DeploymentId.ValueString(), state.GroupId.ValueString(), buildGroupScaling(plan, &state)); err != nil {
		resp.Diagnostics.AddError("Update Error", err.Error())
		return
	}

	resp.Diagnostics.Append(r.refresh(ctx, &plan)...)
	if resp.Diagnostics.HasError() {
		return
	}
	// save into the Terraform state.
	diags = resp.State.Set(ctx, &plan)
	resp.Diagnostics.Append(diags...)
}

// Delete drops the group from state. Scaling groups live as long as their
// deployment.
func (r *scalingGroupResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var groupId string
	resp.Diagnostics.Append(req.State.GetAttribute(ctx, path.Root("group_id"), &groupId)...)
	if resp.Diagnostics.HasError() {
		return
	}
	tflog.Warn(ctx, "scaling group removed from state, the deployment keeps its current allocation", map[string]interface{}{"group_id": groupId})
}

func (r *scalingGroupResource) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	idParts := strings.Split(req.ID, ",")

	if len(idParts) != 2 || idParts[0] == "" || idParts[1] == "" {
		resp.Diagnostics.AddError(
			"Unexpected Import Identifier",
			fmt.Sprintf("Expected import identifier with format: deployment_id,group_id. Got: %q", req.ID),
		)
		return
	}

	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("deployment_id"), idParts[0])...)
	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("group_id"), idParts[1])...)
}

func (r *scalingGroupResource) scale(ctx context.Context, deploymentId, groupId string, scaling *clouddatabases.GroupScaling) error {
	if scaling == nil {
		return nil
	}
	result, _, err := r.provider.client.SetDeploymentScalingGroup(ctx,
		clouddatabases.NewSetDeploymentScalingGroupOptions(deploymentId, groupId, scaling))
	if err != nil {
		return errors.Annotate(err, "unable to call SetDeploymentScalingGroup")
	}
	if err := waitForTask(ctx, r.provider.client, result.Task); err != nil {
		return errors.Annotate(err, "scaling task did not complete")
	}
	return nil
}

func (r *scalingGroupResource) refresh(ctx context.Context, data *scalingGroupResourceData) diag.Diagnostics {
	var diags diag.Diagnostics
	groups, _, err := r.provider.client.ListDeploymentScalingGroups(ctx,
		clouddatabases.NewListDeploymentScalingGroupsOptions(data.DeploymentId.ValueString()))
	if err != nil {
		diags.AddError("Read Error", fmt.Sprintf("Unable to call ListDeploymentScalingGroups, got error: %s", err))
		return diags
	}
	group := groups.Find(data.GroupId.ValueString())
	if group == nil {
		diags.AddError("Read Error", fmt.Sprintf("Scaling group %s not found in deployment %s", data.GroupId.ValueString(), data.DeploymentId.ValueString()))
		return diags
	}
	return refreshScalingGroupData(group, data)
}

// buildGroupScaling collects the known planned allocations. With a previous
// state only the changed ones are sent. It returns nil when nothing changes.
func buildGroupScaling(plan scalingGroupResourceData, state *scalingGroupResourceData) *clouddatabases.GroupScaling {
	changed := func(p, s types.Int64) bool {
		return IsKnown(p) && (state == nil || !p.Equal(s))
	}
	var prev scalingGroupResourceData
	if state != nil {
		prev = *state
	}

	scaling := &clouddatabases.GroupScaling{}
	empty := true
	if changed(plan.Members, prev.Members) {
		scaling.Members = &clouddatabases.GroupScalingMembers{AllocationCount: clouddatabases.Int64Ptr(plan.Members.ValueInt64())}
		empty = false
	}
	if changed(plan.MemoryMb, prev.MemoryMb) {
		scaling.Memory = &clouddatabases.GroupScalingMemory{AllocationMb: clouddatabases.Int64Ptr(plan.MemoryMb.ValueInt64())}
		empty = false
	}
	if changed(plan.DiskMb, prev.DiskMb) {
		scaling.Disk = &clouddatabases.GroupScalingDisk{AllocationMb: clouddatabases.Int64Ptr(plan.DiskMb.ValueInt64())}
		empty = false
	}
	if changed(plan.CpuCount, prev.CpuCount) {
		scaling.CPU = &clouddatabases.GroupScalingCPU{AllocationCount: clouddatabases.Int64Ptr(plan.CpuCount.ValueInt64())}
		empty = false
	}
	if IsKnown(plan.HostFlavor) && (state == nil || !plan.HostFlavor.Equal(prev.HostFlavor)) {
		scaling.HostFlavor = &clouddatabases.GroupScalingHostFlavor{ID: clouddatabases.StringPtr(plan.HostFlavor.ValueString())}
		empty = false
	}
	if empty {
		return nil
	}
	return scaling
}

func refreshScalingGroupData(group *clouddatabases.Group, data *scalingGroupResourceData) diag.Diagnostics {
	limits := map[string]attr.Value{
		"members_minimum_count": types.Int64Null(),
		"members_maximum_count": types.Int64Null(),
		"memory_minimum_mb":     types.Int64Null(),
		"memory_maximum_mb":     types.Int64Null(),
		"memory_step_size_mb":   types.Int64Null(),
		"disk_minimum_mb":       types.Int64Null(),
		"disk_maximum_mb":       types.Int64Null(),
		"disk_step_size_mb":     types.Int64Null(),
		"cpu_minimum_count":     types.Int64Null(),
		"cpu_maximum_count":     types.Int64Null(),
	}
	data.Members = types.Int64Null()
	data.MemoryMb = types.Int64Null()
	data.DiskMb = types.Int64Null()
	data.CpuCount = types.Int64Null()
	data.HostFlavor = types.StringNull()

	if m := group.Members; m != nil {
		data.Members = types.Int64PointerValue(m.AllocationCount)
		limits["members_minimum_count"] = types.Int64PointerValue(m.MinimumCount)
		limits["members_maximum_count"] = types.Int64PointerValue(m.MaximumCount)
	}
	if m := group.Memory; m != nil {
		data.MemoryMb = types.Int64PointerValue(m.AllocationMb)
		limits["memory_minimum_mb"] = types.Int64PointerValue(m.MinimumMb)
		limits["memory_maximum_mb"] = types.Int64PointerValue(m.MaximumMb)
		limits["memory_step_size_mb"] = types.Int64PointerValue(m.StepSizeMb)
	}
	if d := group.Disk; d != nil {
		data.DiskMb = types.Int64PointerValue(d.AllocationMb)
		limits["disk_minimum_mb"] = types.Int64PointerValue(d.MinimumMb)
		limits["disk_maximum_mb"] = types.Int64PointerValue(d.MaximumMb)
		limits["disk_step_size_mb"] = types.Int64PointerValue(d.StepSizeMb)
	}
	if c := group.CPU; c != nil {
		data.CpuCount = types.Int64PointerValue(c.AllocationCount)
		limits["cpu_minimum_count"] = types.Int64PointerValue(c.MinimumCount)
		limits["cpu_maximum_count"] = types.Int64PointerValue(c.MaximumCount)
	}
	if h := group.HostFlavor; h != nil {
		data.HostFlavor = types.StringPointerValue(h.ID)
	}

	var diags diag.Diagnostics
	data.Limits, diags = types.ObjectValue(scalingLimitsAttrTypes, limits)
	return diags
}
