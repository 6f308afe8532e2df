package provider

import (
	"context"
	"fmt"
	"sort"

	"github.com/clouddatabases/terraform-provider-clouddatabases/clouddatabases"
	"github.com/hashicorp/go-version"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

type deployablesDataSourceData struct {
	Type        types.String `tfsdk:"type"`
	Deployables []deployable `tfsdk:"deployables"`
}

type deployable struct {
	Type     types.String        `tfsdk:"type"`
	Versions []deployableVersion `tfsdk:"versions"`
}

type deployableVersion struct {
	Version     types.String   `tfsdk:"version"`
	Status      types.String   `tfsdk:"status"`
	IsPreferred types.Bool     `tfsdk:"is_preferred"`
	UpgradesTo  []types.String `tfsdk:"upgrades_to"`
}

var _ datasource.DataSource = &deployablesDataSource{}

type deployablesDataSource struct {
	provider *clouddatabasesProvider
}

func NewDeployablesDataSource() datasource.DataSource {
	return &deployablesDataSource{}
}

func (d *deployablesDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_deployables"
}

func (d *deployablesDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.provider = configureDataSource(req, resp)
}

func (d *deployablesDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Deployables data source",
		Attributes: map[string]schema.Attribute{
			"type": schema.StringAttribute{
				MarkdownDescription: "Only return the deployable of this database type, such as `postgresql`.",
				Optional:            true,
			},
			"deployables": schema.ListNestedAttribute{
				MarkdownDescription: "The deployable database types and their versions, newest version first.",
				Computed:            true,
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"type": schema.StringAttribute{
							MarkdownDescription: "The database type.",
							Computed:            true,
						},
						"versions": schema.ListNestedAttribute{
							MarkdownDescription: "The versions that can be deployed.",
							Computed:            true,
							NestedObject: schema.NestedAttributeObject{
								Attributes: map[string]schema.Attribute{
									"version": schema.StringAttribute{
										MarkdownDescription: "The version number.",
										Computed:            true,
									},
									"status": schema.StringAttribute{
										MarkdownDescription: "The status of the version, such as `stable` or `deprecated`.",
										Computed:            true,
									},
									"is_preferred": schema.BoolAttribute{
										MarkdownDescription: "Whether the version is the default for new deployments.",
										Computed:            true,
									},
									"upgrades_to": schema.ListAttribute{
										MarkdownDescription: "The versions this version can be upgraded to.",
										Computed:            true,
										ElementType:         types.StringType,
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

func (d *deployablesDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	if !checkConfigured(d.provider, &resp.Diagnostics) {
		return
	}
	var data deployablesDataSourceData
	diags := req.Config.Get(ctx, &data)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Trace(ctx, "read deployables data source")
	result, _, err := d.provider.client.ListDeployables(ctx, clouddatabases.NewListDeployablesOptions())
	if err != nil {
		resp.Diagnostics.AddError("Read Error", fmt.Sprintf("Unable to call ListDeployables, got error: %s", err))
		return
	}

	items := []deployable{}
	for _, dep := range result.Deployables {
		if IsKnown(data.Type) && deref(dep.Type) != data.Type.ValueString() {
			continue
		}
		versions := make([]deployableVersion, 0, len(dep.Versions))
		for _, v := range sortedVersions(dep.Versions) {
			upgrades := []types.String{}
			for _, t := range v.Transitions {
				if t.ToVersion != nil {
					upgrades = append(upgrades, types.StringValue(*t.ToVersion))
				}
			}
			versions = append(versions, deployableVersion{
				Version:     types.StringPointerValue(v.Version),
				Status:      types.StringPointerValue(v.Status),
				IsPreferred: types.BoolValue(deref(v.IsPreferred)),
				UpgradesTo:  upgrades,
			})
		}
		items = append(items, deployable{
			Type:     types.StringPointerValue(dep.Type),
			Versions: versions,
		})
	}
	data.Deployables = items

	diags = resp.State.Set(ctx, &data)
	resp.Diagnostics.Append(diags...)
}

// sortedVersions orders versions newest first. Versions that do not parse
// sort after the ones that do, in reverse string order.
func sortedVersions(in []clouddatabases.DeployablesVersionsItem) []clouddatabases.DeployablesVersionsItem {
	out := append([]clouddatabases.DeployablesVersionsItem(nil), in...)
	parsed := make(map[string]*version.Version, len(out))
	for _, v := range out {
		if pv, err := version.NewVersion(deref(v.Version)); err == nil {
			parsed[deref(v.Version)] = pv
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := deref(out[i].Version), deref(out[j].Version)
		va, vb := parsed[a], parsed[b]
		switch {
		case va != nil && vb != nil:
			return va.GreaterThan(vb)
		case va != nil:
			return true
		case vb != nil:
			return false
		}
		return a > b
	})
	return out
}
