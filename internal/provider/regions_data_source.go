package provider

import (
	"context"
	"fmt"
	"sort"

	"github.com/clouddatabases/terraform-provider-clouddatabases/clouddatabases"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

type regionsDataSourceData struct {
	Regions []types.String `tfsdk:"regions"`
}

var _ datasource.DataSource = &regionsDataSource{}

type regionsDataSource struct {
	provider *clouddatabasesProvider
}

func NewRegionsDataSource() datasource.DataSource {
	return &regionsDataSource{}
}

func (d *regionsDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_regions"
}

func (d *regionsDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.provider = configureDataSource(req, resp)
}

func (d *regionsDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Regions data source",
		Attributes: map[string]schema.Attribute{
			"regions": schema.ListAttribute{
				MarkdownDescription: "The regions deployments can be created in.",
				Computed:            true,
				ElementType:         types.StringType,
			},
		},
	}
}

func (d *regionsDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	if !checkConfigured(d.provider, &resp.Diagnostics) {
		return
	}
	var data regionsDataSourceData
	diags := req.Config.Get(ctx, &data)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Trace(ctx, "read regions data source")
	result, _, err := d.provider.client.ListRegions(ctx, clouddatabases.NewListRegionsOptions())
	if err != nil {
		resp.Diagnostics.AddError("Read Error", fmt.Sprintf("Unable to call ListRegions, got error: %s", err))
		return
	}
	regions := append([]string(nil), result.Regions...)
	sort.Strings(regions)
	items := make([]types.String, 0, len(regions))
	for _, r := range regions {
		items = append(items, types.StringValue(r))
	}
	data.Regions = items

	diags = resp.State.Set(ctx, &data)
	resp.Diagnostics.Append(diags...)
}
