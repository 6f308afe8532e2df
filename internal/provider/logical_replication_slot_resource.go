package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/clouddatabases/terraform-provider-clouddatabases/clouddatabases"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringdefault"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

var (
	_ resource.Resource                = &logicalReplicationSlotResource{}
	_ resource.ResourceWithImportState = &logicalReplicationSlotResource{}
)

type logicalReplicationSlotResourceData struct {
	DeploymentId types.String `tfsdk:"deployment_id"`
	Name         types.String `tfsdk:"name"`
	DatabaseName types.String `tfsdk:"database_name"`
	PluginType   types.String `tfsdk:"plugin_type"`
}

type logicalReplicationSlotResource struct {
	provider *clouddatabasesProvider
}

func NewLogicalReplicationSlotResource() resource.Resource {
	return &logicalReplicationSlotResource{}
}

func (r *logicalReplicationSlotResource) Metadata(_ context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_logical_replication_slot"
}

func (r *logicalReplicationSlotResource) Configure(_ context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	r.provider = configureResource(req, resp)
}

func (r *logicalReplicationSlotResource) Schema(_ context.Context, _ resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "A logical replication slot of a PostgreSQL deployment.",
		Attributes: map[string]schema.Attribute{
			"deployment_id": schema.StringAttribute{
				MarkdownDescription: "The ID (CRN) of the PostgreSQL deployment.",
				Required:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"name": schema.StringAttribute{
				MarkdownDescription: "The name of the slot.",
				Required:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"database_name": schema.StringAttribute{
				MarkdownDescription: "The database the slot replicates.",
				Required:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"plugin_type": schema.StringAttribute{
				MarkdownDescription: "The output plugin of the slot.",
				Optional:            true,
				Computed:            true,
				Default:             stringdefault.StaticString(clouddatabases.LogicalReplicationPluginWal2JSON),
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
		},
	}
}

func (r *logicalReplicationSlotResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	if !checkConfigured(r.provider, &resp.Diagnostics) {
		return
	}

	var data logicalReplicationSlotResourceData
	diags := req.Plan.Get(ctx, &data)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	slot, err := clouddatabases.NewLogicalReplicationSlot(data.Name.ValueString(), data.DatabaseName.ValueString(), data.PluginType.ValueString())
	if err != nil {
		resp.Diagnostics.AddError("Create Error", fmt.Sprintf("Unable to build logical replication slot, got error: %s", err))
		return
	}

	tflog.Trace(ctx, "create logical_replication_slot_resource")
	result, _, err := r.provider.client.CreateLogicalReplicationSlot(ctx,
		clouddatabases.NewCreateLogicalReplicationSlotOptions(data.DeploymentId.ValueString(), slot))
	if err != nil {
		resp.Diagnostics.AddError("Create Error", fmt.Sprintf("Unable to call CreateLogicalReplicationSlot, got error: %s", err))
		return
	}
	if err := waitForTask(ctx, r.provider.client, result.Task); err != nil {
		resp.Diagnostics.AddError("Create Error", fmt.Sprintf("Logical replication slot task did not complete: %s", err))
		return
	}

	diags = resp.State.Set(ctx, &data)
	resp.Diagnostics.Append(diags...)
}

// Read only checks the deployment still exists; the API does not list slots.
func (r *logicalReplicationSlotResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var data logicalReplicationSlotResourceData
	diags := req.State.Get(ctx, &data)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Trace(ctx, "read logical_replication_slot_resource")
	_, _, err := r.provider.client.GetDeploymentInfo(ctx, clouddatabases.NewGetDeploymentInfoOptions(data.DeploymentId.ValueString()))
	if err != nil {
		if isNotFound(err) {
			resp.State.RemoveResource(ctx)
			return
		}
		resp.Diagnostics.AddError("Read Error", fmt.Sprintf("Unable to call GetDeploymentInfo, got error: %s", err))
		return
	}

	diags = resp.State.Set(ctx, &data)
	resp.Diagnostics.Append(diags...)
}

func (r *logicalReplicationSlotResource) Update(_ context.Context, _ resource.UpdateRequest, resp *resource.UpdateResponse) {
	resp.Diagnostics.AddError("Update Error", "Logical replication slots can not be updated in place")
}

func (r *logicalReplicationSlotResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var deploymentId, name string
	resp.Diagnostics.Append(req.State.GetAttribute(ctx, path.Root("deployment_id"), &deploymentId)...)
	resp.Diagnostics.Append(req.State.GetAttribute(ctx, path.Root("name"), &name)...)
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Trace(ctx, "delete logical_replication_slot_resource")
	result, _, err := r.provider.client.DeleteLogicalReplicationSlot(ctx, clouddatabases.NewDeleteLogicalReplicationSlotOptions(deploymentId, name))
	if err != nil {
		if isNotFound(err) {
			return
		}
		resp.Diagnostics.AddError("Delete Error", fmt.Sprintf("Unable to call DeleteLogicalReplicationSlot, got error: %s", err))
		return
	}
	if err := waitForTask(ctx, r.provider.client, result.Task); err != nil {
		resp.Diagnostics.AddError("Delete Error", fmt.Sprintf("Logical replication slot task did not complete: %s", err))
	}
}

func (r *logicalReplicationSlotResource) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	idParts := strings.Split(req.ID, ",")

	if len(idParts) != 3 || idParts[0] == "" || idParts[1] == "" || idParts[2] == "" {
		resp.Diagnostics.AddError(
			"Unexpected Import Identifier",
			fmt.Sprintf("Expected import identifier with format: deployment_id,name,database_name. Got: %q", req.ID),
		)
		return
	}

	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("deployment_id"), idParts[0])...)
	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("name"), idParts[1])...)
	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("database_name"), idParts[2])...)
	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("plugin_type"), clouddatabases.LogicalReplicationPluginWal2JSON)...)
}
