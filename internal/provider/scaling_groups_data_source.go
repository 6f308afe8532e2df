package provider

import (
	"context"
	"fmt"

	"github.com/clouddatabases/terraform-provider-clouddatabases/clouddatabases"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

type scalingGroupsDataSourceData struct {
	DeploymentId   types.String       `tfsdk:"deployment_id"`
	DeploymentType types.String       `tfsdk:"deployment_type"`
	HostFlavor     types.String       `tfsdk:"host_flavor"`
	Groups         []scalingGroupItem `tfsdk:"groups"`
}

type scalingGroupItem struct {
	Id              types.String `tfsdk:"id"`
	Count           types.Int64  `tfsdk:"count"`
	Members         types.Int64  `tfsdk:"members"`
	MemoryMb        types.Int64  `tfsdk:"memory_mb"`
	MemoryMinimumMb types.Int64  `tfsdk:"memory_minimum_mb"`
	MemoryMaximumMb types.Int64  `tfsdk:"memory_maximum_mb"`
	DiskMb          types.Int64  `tfsdk:"disk_mb"`
	CpuCount        types.Int64  `tfsdk:"cpu_count"`
	HostFlavor      types.String `tfsdk:"host_flavor"`
}

var _ datasource.DataSource = &scalingGroupsDataSource{}

type scalingGroupsDataSource struct {
	provider *clouddatabasesProvider
}

func NewScalingGroupsDataSource() datasource.DataSource {
	return &scalingGroupsDataSource{}
}

func (d *scalingGroupsDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_scaling_groups"
}

func (d *scalingGroupsDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.provider = configureDataSource(req, resp)
}

func (d *scalingGroupsDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Scaling groups data source. Set `deployment_id` for the groups of a deployment, or `deployment_type` for the defaults of new deployments.",
		Attributes: map[string]schema.Attribute{
			"deployment_id": schema.StringAttribute{
				MarkdownDescription: "The ID (CRN) of the deployment.",
				Optional:            true,
			},
			"deployment_type": schema.StringAttribute{
				MarkdownDescription: "The database type to read the default groups of.",
				Optional:            true,
			},
			"host_flavor": schema.StringAttribute{
				MarkdownDescription: "The host flavor the default groups are computed for.",
				Optional:            true,
			},
			"groups": schema.ListNestedAttribute{
				MarkdownDescription: "The scaling groups.",
				Computed:            true,
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"id": schema.StringAttribute{
							MarkdownDescription: "The ID of the group.",
							Computed:            true,
						},
						"count": schema.Int64Attribute{
							MarkdownDescription: "The number of nodes in the group.",
							Computed:            true,
						},
						"members": schema.Int64Attribute{
							MarkdownDescription: "The allocated members.",
							Computed:            true,
						},
						"memory_mb": schema.Int64Attribute{
							MarkdownDescription: "The allocated memory in megabytes.",
							Computed:            true,
						},
						"memory_minimum_mb": schema.Int64Attribute{
							MarkdownDescription: "The smallest memory allocation.",
							Computed:            true,
						},
						"memory_maximum_mb": schema.Int64Attribute{
							MarkdownDescription: "The largest memory allocation.",
							Computed:            true,
						},
						"disk_mb": schema.Int64Attribute{
							MarkdownDescription: "The allocated disk in megabytes.",
							Computed:            true,
						},
						"cpu_count": schema.Int64Attribute{
							MarkdownDescription: "The allocated dedicated CPUs.",
							Computed:            true,
						},
						"host_flavor": schema.StringAttribute{
							MarkdownDescription: "The host flavor ID.",
							Computed:            true,
						},
					},
				},
			},
		},
	}
}

func (d *scalingGroupsDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	if !checkConfigured(d.provider, &resp.Diagnostics) {
		return
	}
	var data scalingGroupsDataSourceData
	diags := req.Config.Get(ctx, &data)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	if IsKnown(data.DeploymentId) == IsKnown(data.DeploymentType) {
		resp.Diagnostics.AddError("Invalid Attribute Combination", "Exactly one of deployment_id and deployment_type must be set")
		return
	}

	tflog.Trace(ctx, "read scaling groups data source")
	var groups []clouddatabases.Group
	if IsKnown(data.DeploymentId) {
		result, _, err := d.provider.client.ListDeploymentScalingGroups(ctx,
			clouddatabases.NewListDeploymentScalingGroupsOptions(data.DeploymentId.ValueString()))
		if err != nil {
			resp.Diagnostics.AddError("Read Error", fmt.Sprintf("Unable to call ListDeploymentScalingGroups, got error: %s", err))
			return
		}
		groups = result.Groups
	} else {
		options := clouddatabases.NewGetDefaultScalingGroupsOptions(data.DeploymentType.ValueString())
		if IsKnown(data.HostFlavor) {
			options.SetHostFlavor(data.HostFlavor.ValueString())
		}
		result, _, err := d.provider.client.GetDefaultScalingGroups(ctx, options)
		if err != nil {
			resp.Diagnostics.AddError("Read Error", fmt.Sprintf("Unable to call GetDefaultScalingGroups, got error: %s", err))
			return
		}
		groups = result.Groups
	}

	items := []scalingGroupItem{}
	for i := range groups {
		items = append(items, flattenScalingGroup(&groups[i]))
	}
	data.Groups = items

	diags = resp.State.Set(ctx, &data)
	resp.Diagnostics.Append(diags...)
}

func flattenScalingGroup(g *clouddatabases.Group) scalingGroupItem {
	item := scalingGroupItem{
		Id:              types.StringPointerValue(g.ID),
		Count:           types.Int64PointerValue(g.Count),
		Members:         types.Int64Null(),
		MemoryMb:        types.Int64Null(),
		MemoryMinimumMb: types.Int64Null(),
		MemoryMaximumMb: types.Int64Null(),
		DiskMb:          types.Int64Null(),
		CpuCount:        types.Int64Null(),
		HostFlavor:      types.StringNull(),
	}
	if g.Members != nil {
		item.Members = types.Int64PointerValue(g.Members.AllocationCount)
	}
	if g.Memory != nil {
		item.MemoryMb = types.Int64PointerValue(g.Memory.AllocationMb)
		item.MemoryMinimumMb = types.Int64PointerValue(g.Memory.MinimumMb)
		item.MemoryMaximumMb = types.Int64PointerValue(g.Memory.MaximumMb)
	}
	if g.Disk != nil {
		item.DiskMb = types.Int64PointerValue(g.Disk.AllocationMb)
	}
	if g.CPU != nil {
		item.CpuCount = types.Int64PointerValue(g.CPU.AllocationCount)
	}
	if g.HostFlavor != nil {
		item.HostFlavor = types.StringPointerValue(g.HostFlavor.ID)
	}
	return item
}
