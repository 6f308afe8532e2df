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

type deploymentDataSourceData struct {
	Id                     types.String            `tfsdk:"id"`
	Name                   types.String            `tfsdk:"name"`
	Type                   types.String            `tfsdk:"type"`
	Version                types.String            `tfsdk:"version"`
	PlatformOptions        map[string]types.String `tfsdk:"platform_options"`
	AdminUsernames         map[string]types.String `tfsdk:"admin_usernames"`
	EnablePublicEndpoints  types.Bool              `tfsdk:"enable_public_endpoints"`
	EnablePrivateEndpoints types.Bool              `tfsdk:"enable_private_endpoints"`
	Leader                 types.String            `tfsdk:"leader"`
	Replicas               []types.String          `tfsdk:"replicas"`
}

var _ datasource.DataSource = &deploymentDataSource{}

type deploymentDataSource struct {
	provider *clouddatabasesProvider
}

func NewDeploymentDataSource() datasource.DataSource {
	return &deploymentDataSource{}
}

func (d *deploymentDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_deployment"
}

func (d *deploymentDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.provider = configureDataSource(req, resp)
}

func (d *deploymentDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Deployment data source",
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				MarkdownDescription: "The ID (CRN) of the deployment.",
				Required:            true,
			},
			"name": schema.StringAttribute{
				MarkdownDescription: "The name of the deployment.",
				Computed:            true,
			},
			"type": schema.StringAttribute{
				MarkdownDescription: "The database type of the deployment.",
				Computed:            true,
			},
			"version": schema.StringAttribute{
				MarkdownDescription: "The database version.",
				Computed:            true,
			},
			"platform_options": schema.MapAttribute{
				MarkdownDescription: "Platform specific options, rendered as strings.",
				Computed:            true,
				ElementType:         types.StringType,
			},
			"admin_usernames": schema.MapAttribute{
				MarkdownDescription: "The admin user name per user type.",
				Computed:            true,
				ElementType:         types.StringType,
			},
			"enable_public_endpoints": schema.BoolAttribute{
				MarkdownDescription: "Whether public endpoints are enabled.",
				Computed:            true,
			},
			"enable_private_endpoints": schema.BoolAttribute{
				MarkdownDescription: "Whether private endpoints are enabled.",
				Computed:            true,
			},
			"leader": schema.StringAttribute{
				MarkdownDescription: "The leader of a read-only replica, empty for a leader.",
				Computed:            true,
			},
			"replicas": schema.ListAttribute{
				MarkdownDescription: "The read-only replicas of the deployment.",
				Computed:            true,
				ElementType:         types.StringType,
			},
		},
	}
}

func (d *deploymentDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	if !checkConfigured(d.provider, &resp.Diagnostics) {
		return
	}
	var data deploymentDataSourceData
	diags := req.Config.Get(ctx, &data)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Trace(ctx, "read deployment data source")
	info, _, err := d.provider.client.GetDeploymentInfo(ctx, clouddatabases.NewGetDeploymentInfoOptions(data.Id.ValueString()))
	if err != nil {
		resp.Diagnostics.AddError("Read Error", fmt.Sprintf("Unable to call GetDeploymentInfo, got error: %s", err))
		return
	}
	deployment := info.Deployment
	if deployment == nil {
		resp.Diagnostics.AddError("Read Error", fmt.Sprintf("Deployment %s not found", data.Id.ValueString()))
		return
	}
	data.Name = types.StringPointerValue(deployment.Name)
	data.Type = types.StringPointerValue(deployment.Type)
	data.Version = types.StringPointerValue(deployment.Version)
	data.EnablePublicEndpoints = types.BoolPointerValue(deployment.EnablePublicEndpoints)
	data.EnablePrivateEndpoints = types.BoolPointerValue(deployment.EnablePrivateEndpoints)
	data.AdminUsernames = map[string]types.String{}
	for k, v := range deployment.AdminUsernames {
		data.AdminUsernames[k] = types.StringValue(v)
	}
	data.PlatformOptions = map[string]types.String{}
	if opts := deployment.PlatformOptions; opts != nil {
		for _, k := range opts.Keys() {
			v, _ := opts.Get(k)
			data.PlatformOptions[k] = types.StringValue(fmt.Sprint(v))
		}
	}

	remotes, _, err := d.provider.client.ListRemotes(ctx, clouddatabases.NewListRemotesOptions(data.Id.ValueString()))
	if err != nil {
		resp.Diagnostics.AddError("Read Error", fmt.Sprintf("Unable to call ListRemotes, got error: %s", err))
		return
	}
	data.Leader = types.StringValue("")
	data.Replicas = []types.String{}
	if r := remotes.Remotes; r != nil {
		data.Leader = types.StringValue(deref(r.Leader))
		for _, replica := range r.Replicas {
			data.Replicas = append(data.Replicas, types.StringValue(replica))
		}
	}

	diags = resp.State.Set(ctx, &data)
	resp.Diagnostics.Append(diags...)
}
