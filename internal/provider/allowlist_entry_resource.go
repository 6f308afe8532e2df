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
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

var (
	_ resource.Resource                = &allowlistEntryResource{}
	_ resource.ResourceWithImportState = &allowlistEntryResource{}
)

type allowlistEntryResourceData struct {
	DeploymentId types.String `tfsdk:"deployment_id"`
	Address      types.String `tfsdk:"address"`
	Description  types.String `tfsdk:"description"`
}

type allowlistEntryResource struct {
	provider *clouddatabasesProvider
}

func NewAllowlistEntryResource() resource.Resource {
	return &allowlistEntryResource{}
}

func (r *allowlistEntryResource) Metadata(_ context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_allowlist_entry"
}

func (r *allowlistEntryResource) Configure(_ context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	r.provider = configureResource(req, resp)
}

func (r *allowlistEntryResource) Schema(_ context.Context, _ resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "One IP address or CIDR range allowed to connect to a deployment.",
		Attributes: map[string]schema.Attribute{
			"deployment_id": schema.StringAttribute{
				MarkdownDescription: "The ID (CRN) of the deployment.",
				Required:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"address": schema.StringAttribute{
				MarkdownDescription: "The IP address or CIDR range.",
				Required:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"description": schema.StringAttribute{
				MarkdownDescription: "A description of the entry.",
				Optional:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
		},
	}
}

func (r *allowlistEntryResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	if !checkConfigured(r.provider, &resp.Diagnostics) {
		return
	}

	var data allowlistEntryResourceData
	diags := req.Plan.Get(ctx, &data)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	entry, err := clouddatabases.NewAllowlistEntry(data.Address.ValueString())
	if err != nil {
		resp.Diagnostics.AddError("Create Error", fmt.Sprintf("Unable to build allowlist entry, got error: %s", err))
		return
	}
	if IsKnown(data.Description) {
		entry.SetDescription(data.Description.ValueString())
	}

	tflog.Trace(ctx, "create allowlist_entry_resource")
	result, _, err := r.provider.client.AddAllowlistEntry(ctx, clouddatabases.NewAddAllowlistEntryOptions(data.DeploymentId.ValueString(), entry))
	if err != nil {
		resp.Diagnostics.AddError("Create Error", fmt.Sprintf("Unable to call AddAllowlistEntry, got error: %s", err))
		return
	}
	if err := waitForTask(ctx, r.provider.client, result.Task); err != nil {
		resp.Diagnostics.AddError("Create Error", fmt.Sprintf("Allowlist entry task did not complete: %s", err))
		return
	}

	diags = resp.State.Set(ctx, &data)
	resp.Diagnostics.Append(diags...)
}

func (r *allowlistEntryResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var data allowlistEntryResourceData
	diags := req.State.Get(ctx, &data)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Trace(ctx, "read allowlist_entry_resource")
	allowlist, _, err := r.provider.client.GetAllowlist(ctx, clouddatabases.NewGetAllowlistOptions(data.DeploymentId.ValueString()))
	if err != nil {
		if isNotFound(err) {
			resp.State.RemoveResource(ctx)
			return
		}
		resp.Diagnostics.AddError("Read Error", fmt.Sprintf("Unable to call GetAllowlist, got error: %s", err))
		return
	}
	entry := allowlist.Find(data.Address.ValueString())
	if entry == nil {
		tflog.Warn(ctx, "allowlist entry not found, removing from state", map[string]interface{}{"address": data.Address.ValueString()})
		resp.State.RemoveResource(ctx)
		return
	}
	if entry.Description != nil && *entry.Description != "" {
		data.Description = types.StringValue(*entry.Description)
	}

	diags = resp.State.Set(ctx, &data)
	resp.Diagnostics.Append(diags...)
}

func (r *allowlistEntryResource) Update(_ context.Context, _ resource.UpdateRequest, resp *resource.UpdateResponse) {
	resp.Diagnostics.AddError("Update Error", "Allowlist entries can not be updated in place")
}

func (r *allowlistEntryResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var deploymentId, address string
	resp.Diagnostics.Append(req.State.GetAttribute(ctx, path.Root("deployment_id"), &deploymentId)...)
	resp.Diagnostics.Append(req.State.GetAttribute(ctx, path.Root("address"), &address)...)
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Trace(ctx, "delete allowlist_entry_resource")
	result, _, err := r.provider.client.DeleteAllowlistEntry(ctx, clouddatabases.NewDeleteAllowlistEntryOptions(deploymentId, address))
	if err != nil {
		if isNotFound(err) {
			return
		}
		resp.Diagnostics.AddError("Delete Error", fmt.Sprintf("Unable to call DeleteAllowlistEntry, got error: %s", err))
		return
	}
	if err := waitForTask(ctx, r.provider.client, result.Task); err != nil {
		resp.Diagnostics.AddError("Delete Error", fmt.Sprintf("Allowlist entry task did not complete: %s", err))
	}
}

func (r *allowlistEntryResource) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	idParts := strings.Split(req.ID, ",")

	if len(idParts) != 2 || idParts[0] == "" || idParts[1] == "" {
		resp.Diagnostics.AddError(
			"Unexpected Import Identifier",
			fmt.Sprintf("Expected import identifier with format: deployment_id,address. Got: %q", req.ID),
		)
		return
	}

	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("deployment_id"), idParts[0])...)
	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("address"), idParts[1])...)
}
