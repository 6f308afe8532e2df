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

type backupsDataSourceData struct {
	DeploymentId types.String `tfsdk:"deployment_id"`
	Backups      []backupItem `tfsdk:"backups"`
}

type backupItem struct {
	Id             types.String `tfsdk:"id"`
	Type           types.String `tfsdk:"type"`
	Status         types.String `tfsdk:"status"`
	IsDownloadable types.Bool   `tfsdk:"is_downloadable"`
	IsRestorable   types.Bool   `tfsdk:"is_restorable"`
	CreatedAt      types.String `tfsdk:"created_at"`
}

var _ datasource.DataSource = &backupsDataSource{}

type backupsDataSource struct {
	provider *clouddatabasesProvider
}

func NewBackupsDataSource() datasource.DataSource {
	return &backupsDataSource{}
}

func (d *backupsDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_backups"
}

func (d *backupsDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.provider = configureDataSource(req, resp)
}

func (d *backupsDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Backups data source",
		Attributes: map[string]schema.Attribute{
			"deployment_id": schema.StringAttribute{
				MarkdownDescription: "The ID (CRN) of the deployment.",
				Required:            true,
			},
			"backups": schema.ListNestedAttribute{
				MarkdownDescription: "The backups of the deployment.",
				Computed:            true,
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"id": schema.StringAttribute{
							MarkdownDescription: "The ID (CRN) of the backup.",
							Computed:            true,
						},
						"type": schema.StringAttribute{
							MarkdownDescription: "The type of the backup, `scheduled` or `on_demand`.",
							Computed:            true,
						},
						"status": schema.StringAttribute{
							MarkdownDescription: "The status of the backup.",
							Computed:            true,
						},
						"is_downloadable": schema.BoolAttribute{
							MarkdownDescription: "Whether the backup can be downloaded.",
							Computed:            true,
						},
						"is_restorable": schema.BoolAttribute{
							MarkdownDescription: "Whether a deployment can be restored from the backup.",
							Computed:            true,
						},
						"created_at": schema.StringAttribute{
							MarkdownDescription: "The time the backup was taken, RFC 3339.",
							Computed:            true,
						},
					},
				},
			},
		},
	}
}

func (d *backupsDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	if !checkConfigured(d.provider, &resp.Diagnostics) {
		return
	}
	var data backupsDataSourceData
	diags := req.Config.Get(ctx, &data)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Trace(ctx, "read backups data source")
	result, _, err := d.provider.client.ListDeploymentBackups(ctx, clouddatabases.NewListDeploymentBackupsOptions(data.DeploymentId.ValueString()))
	if err != nil {
		resp.Diagnostics.AddError("Read Error", fmt.Sprintf("Unable to call ListDeploymentBackups, got error: %s", err))
		return
	}
	items := []backupItem{}
	for _, b := range result.Backups {
		createdAt := types.StringNull()
		if b.CreatedAt != nil {
			createdAt = types.StringValue(b.CreatedAt.String())
		}
		items = append(items, backupItem{
			Id:             types.StringPointerValue(b.ID),
			Type:           types.StringPointerValue(b.Type),
			Status:         types.StringPointerValue(b.Status),
			IsDownloadable: types.BoolValue(deref(b.IsDownloadable)),
			IsRestorable:   types.BoolValue(deref(b.IsRestorable)),
			CreatedAt:      createdAt,
		})
	}
	data.Backups = items

	diags = resp.State.Set(ctx, &data)
	resp.Diagnostics.Append(diags...)
}
