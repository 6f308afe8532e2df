package provider

import (
	"context"
	"fmt"
	"os"

	"github.com/clouddatabases/terraform-provider-clouddatabases/clouddatabases"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Ensure provider defined types fully satisfy framework interfaces
var _ provider.Provider = &clouddatabasesProvider{}

// NewClient builds the API client. Unit tests replace it with a mock.
var NewClient = func(cfg *clouddatabases.Config) (clouddatabases.CloudDatabasesClient, error) {
	return clouddatabases.NewCloudDatabasesV5(cfg)
}

// clouddatabasesProvider is handed to every resource and data source as
// provider data.
type clouddatabasesProvider struct {
	client clouddatabases.CloudDatabasesClient

	// configured is set to true at the end of the Configure method.
	// This can be used in Resource and DataSource implementations to verify
	// that the provider was previously configured.
	configured bool

	// version is set to the provider version on release, "dev" when the
	// provider is built and ran locally, and "test" when running acceptance
	// testing.
	version string
}

// providerData can be used to store data from the Terraform configuration.
type providerData struct {
	ApiKey      types.String `tfsdk:"api_key"`
	BearerToken types.String `tfsdk:"bearer_token"`
	ServiceURL  types.String `tfsdk:"service_url"`
	Region      types.String `tfsdk:"region"`
	IamURL      types.String `tfsdk:"iam_url"`
}

func (p *clouddatabasesProvider) Metadata(_ context.Context, _ provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = "clouddatabases"
	resp.Version = p.version
}

func (p *clouddatabasesProvider) Schema(_ context.Context, _ provider.SchemaRequest, resp *provider.SchemaResponse) {
	resp.Schema = schema.Schema{
		Attributes: map[string]schema.Attribute{
			"api_key": schema.StringAttribute{
				MarkdownDescription: "IBM Cloud API key, exchanged for an IAM token. Falls back to `CLOUD_DATABASES_APIKEY`.",
				Optional:            true,
				Sensitive:           true,
			},
			"bearer_token": schema.StringAttribute{
				MarkdownDescription: "Bearer token used as is when no API key is given. Falls back to `CLOUD_DATABASES_BEARER_TOKEN`.",
				Optional:            true,
				Sensitive:           true,
			},
			"service_url": schema.StringAttribute{
				MarkdownDescription: "Base URL of the Cloud Databases v5 API. Falls back to `CLOUD_DATABASES_URL`, then to the URL of `region`.",
				Optional:            true,
			},
			"region": schema.StringAttribute{
				MarkdownDescription: "Region whose API endpoint is used when `service_url` is not set. Defaults to `us-south`.",
				Optional:            true,
			},
			"iam_url": schema.StringAttribute{
				MarkdownDescription: "IAM endpoint for token requests. Falls back to `CLOUD_DATABASES_AUTH_URL`.",
				Optional:            true,
			},
		},
	}
}

func (p *clouddatabasesProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	// get providerData
	var data providerData
	diags := req.Config.Get(ctx, &data)
	resp.Diagnostics.Append(diags...)

	if resp.Diagnostics.HasError() {
		return
	}

	if data.ApiKey.IsUnknown() || data.BearerToken.IsUnknown() || data.ServiceURL.IsUnknown() {
		// Cannot connect to client with an unknown value
		resp.Diagnostics.AddWarning(
			"Unable to create client",
			"Cannot use unknown value as api_key, bearer_token or service_url",
		)
		return
	}

	apiKey := stringOrEnv(data.ApiKey, CloudDatabasesAPIKey)
	bearerToken := stringOrEnv(data.BearerToken, CloudDatabasesBearerToken)

	var auth clouddatabases.Authenticator
	var err error
	switch {
	case apiKey != "":
		auth, err = clouddatabases.NewIamAuthenticator(apiKey, stringOrEnv(data.IamURL, CloudDatabasesIamURL))
	case bearerToken != "":
		auth, err = clouddatabases.NewBearerTokenAuthenticator(bearerToken)
	default:
		// Error vs warning - empty value must stop execution
		resp.Diagnostics.AddError(
			"Unable to find credentials",
			"api_key or bearer_token must be set",
		)
		return
	}
	if err != nil {
		resp.Diagnostics.AddError("Unable to create client", err.Error())
		return
	}

	serviceURL := stringOrEnv(data.ServiceURL, CloudDatabasesURL)
	if serviceURL == "" {
		serviceURL, err = clouddatabases.ConstructServiceURL(stringOrEnv(data.Region, CloudDatabasesRegion), "")
		if err != nil {
			resp.Diagnostics.AddError("Unable to create client", err.Error())
			return
		}
	}
	tflog.Debug(ctx, "configuring clouddatabases client", map[string]interface{}{"service_url": serviceURL})

	c, err := NewClient(&clouddatabases.Config{
		ServiceURL:    serviceURL,
		Authenticator: auth,
		UserAgent:     fmt.Sprintf("%s/%s", UserAgent, p.version),
		Logger:        newTflogLogger(ctx),
		Debug:         os.Getenv("TF_LOG") != "",
	})
	if err != nil {
		resp.Diagnostics.AddError(
			"Unable to create client",
			"Unable to create clouddatabases client:\n\n"+err.Error(),
		)
		return
	}

	p.client = c
	p.configured = true
	resp.ResourceData = p
	resp.DataSourceData = p
}

func (p *clouddatabasesProvider) Resources(_ context.Context) []func() resource.Resource {
	return []func() resource.Resource{
		NewAllowlistEntryResource,
		NewDatabaseUserResource,
		NewLogicalReplicationSlotResource,
		NewScalingGroupResource,
	}
}

func (p *clouddatabasesProvider) DataSources(_ context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		NewRegionsDataSource,
		NewDeployablesDataSource,
		NewDeploymentDataSource,
		NewBackupsDataSource,
		NewScalingGroupsDataSource,
		NewAllowlistDataSource,
		NewConnectionDataSource,
	}
}

func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &clouddatabasesProvider{
			version: version,
		}
	}
}

func stringOrEnv(v types.String, env string) string {
	if IsKnown(v) {
		return v.ValueString()
	}
	return os.Getenv(env)
}
