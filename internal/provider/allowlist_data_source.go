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

type allowlistDataSourceData struct {
	DeploymentId types.String         `tfsdk:"deployment_id"`
	IPAddresses  []allowlistEntryItem `tfsdk:"ip_addresses"`
}

type allowlistEntryItem struct {
	Address     types.String `tfsdk:"address"`
	Description types.String `tfsdk:"description"`
}

var _ datasource.DataSource = &allowlistDataSource{}

type allowlistDataSource struct {
	provider *clouddatabasesProvider
}

func NewAllowlistDataSource() datasource.DataSource {
	return &allowlistDataSource{}
}

func (d *allowlistDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_allowlist"
}

func (d *allowlistDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.provider = configureDataSource(req, resp)
}

func (d *allowlistDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Allowlist data source",
		Attributes: map[string]schema.Attribute{
			"deployment_id": schema.StringAttribute{
				MarkdownDescription: "The ID (CRN) of the deployment.",
				Required:            true,
			},
			"ip_addresses": schema.ListNestedAttribute{
				MarkdownDescription: "The allowed IP addresses and CIDR ranges.",
				Computed:            true,
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"address": schema.StringAttribute{
							MarkdownDescription: "The IP address or CIDR range.",
							Computed:            true,
						},
						"description": schema.StringAttribute{
							MarkdownDescription: "The description of the entry.",
							Computed:            true,
						},
					},
				},
			},
		},
	}
}

func (d *allowlistDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	if !checkConfigured(d.provider, &resp.Diagnostics) {
		return
	}
	var data allowlistDataSourceData
	diags := req.Config.Get(ctx, &data)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Trace(ctx, "read allowlist data source")
	result, _, err := d.provider.client.GetAllowlist(ctx, clouddatabases.NewGetAllowlistOptions(data.DeploymentId.ValueString()))
	if err != nil {
		resp.Diagnostics.AddError("Read Error", fmt.Sprintf("Unable to call GetAllowlist, got error: %s", err))
		return
	}
	items := []allowlistEntryItem{}
	for _, e := range result.IPAddresses {
		items = append(items, allowlistEntryItem{
			Address:     types.StringPointerValue(e.Address),
			Description: types.StringValue(deref(e.Description)),
		})
	}
	data.IPAddresses = items

	diags = resp.State.Set(ctx, &data)
	resp.Diagnostics.Append(diags...)
}
