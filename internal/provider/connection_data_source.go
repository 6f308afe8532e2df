package provider

import (
	"context"
	"fmt"
	"strconv"

	"github.com/clouddatabases/terraform-provider-clouddatabases/clouddatabases"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/juju/errors"
)

type connectionDataSourceData struct {
	DeploymentId      types.String   `tfsdk:"deployment_id"`
	UserType          types.String   `tfsdk:"user_type"`
	UserId            types.String   `tfsdk:"user_id"`
	EndpointType      types.String   `tfsdk:"endpoint_type"`
	CertificateRoot   types.String   `tfsdk:"certificate_root"`
	Scheme            types.String   `tfsdk:"scheme"`
	Composed          types.String   `tfsdk:"composed"`
	Hosts             []endpointHost `tfsdk:"hosts"`
	Database          types.String   `tfsdk:"database"`
	CertificateName   types.String   `tfsdk:"certificate_name"`
	CertificateBase64 types.String   `tfsdk:"certificate_base64"`
	CliComposed       types.String   `tfsdk:"cli_composed"`
}

type endpointHost struct {
	Hostname types.String `tfsdk:"hostname"`
	Port     types.Int64  `tfsdk:"port"`
}

// connectionEndpoint is the primary endpoint of a connection, whatever the
// database type.
type connectionEndpoint struct {
	scheme      string
	composed    []string
	hosts       []clouddatabases.ConnectionHost
	database    string
	certificate *clouddatabases.ConnectionCertificate
	cli         *clouddatabases.ConnectionCLI
}

var _ datasource.DataSource = &connectionDataSource{}

type connectionDataSource struct {
	provider *clouddatabasesProvider
}

func NewConnectionDataSource() datasource.DataSource {
	return &connectionDataSource{}
}

func (d *connectionDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_connection"
}

func (d *connectionDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.provider = configureDataSource(req, resp)
}

func (d *connectionDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Connection data source. Returns the primary endpoint of a deployment for one user.",
		Attributes: map[string]schema.Attribute{
			"deployment_id": schema.StringAttribute{
				MarkdownDescription: "The ID (CRN) of the deployment.",
				Required:            true,
			},
			"user_type": schema.StringAttribute{
				MarkdownDescription: "The type of the user, `database` by default.",
				Optional:            true,
				Computed:            true,
			},
			"user_id": schema.StringAttribute{
				MarkdownDescription: "The name of the user.",
				Required:            true,
			},
			"endpoint_type": schema.StringAttribute{
				MarkdownDescription: "The endpoint type, `public` by default.",
				Optional:            true,
				Computed:            true,
			},
			"certificate_root": schema.StringAttribute{
				MarkdownDescription: "Where the CA certificate will be stored on the client.",
				Optional:            true,
			},
			"scheme": schema.StringAttribute{
				MarkdownDescription: "The URI scheme of the endpoint.",
				Computed:            true,
			},
			"composed": schema.StringAttribute{
				MarkdownDescription: "The composed connection string, with a placeholder for the password.",
				Computed:            true,
			},
			"hosts": schema.ListNestedAttribute{
				MarkdownDescription: "The hosts of the endpoint.",
				Computed:            true,
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"hostname": schema.StringAttribute{
							MarkdownDescription: "The host name.",
							Computed:            true,
						},
						"port": schema.Int64Attribute{
							MarkdownDescription: "The port.",
							Computed:            true,
						},
					},
				},
			},
			"database": schema.StringAttribute{
				MarkdownDescription: "The default database, when the engine has one.",
				Computed:            true,
			},
			"certificate_name": schema.StringAttribute{
				MarkdownDescription: "The name of the CA certificate.",
				Computed:            true,
			},
			"certificate_base64": schema.StringAttribute{
				MarkdownDescription: "The base64 encoded CA certificate.",
				Computed:            true,
			},
			"cli_composed": schema.StringAttribute{
				MarkdownDescription: "The command line to connect with the engine's client.",
				Computed:            true,
			},
		},
	}
}

func (d *connectionDataSource) Read(ctx context.Context, req datasource.ReadRequest, resp *datasource.ReadResponse) {
	if !checkConfigured(d.provider, &resp.Diagnostics) {
		return
	}
	var data connectionDataSourceData
	diags := req.Config.Get(ctx, &data)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	if !IsKnown(data.UserType) {
		data.UserType = types.StringValue(clouddatabases.UserTypeDatabase)
	}
	if !IsKnown(data.EndpointType) {
		data.EndpointType = types.StringValue(clouddatabases.EndpointTypePublic)
	}

	tflog.Trace(ctx, "read connection data source")
	info, _, err := d.provider.client.GetDeploymentInfo(ctx, clouddatabases.NewGetDeploymentInfoOptions(data.DeploymentId.ValueString()))
	if err != nil {
		resp.Diagnostics.AddError("Read Error", fmt.Sprintf("Unable to call GetDeploymentInfo, got error: %s", err))
		return
	}
	var deploymentType string
	if info.Deployment != nil {
		deploymentType = deref(info.Deployment.Type)
	}

	options := clouddatabases.NewGetConnectionOptions(data.DeploymentId.ValueString(), data.UserType.ValueString(),
		data.UserId.ValueString(), data.EndpointType.ValueString())
	if IsKnown(data.CertificateRoot) {
		options.SetCertificateRoot(data.CertificateRoot.ValueString())
	}
	result, _, err := d.provider.client.GetConnection(ctx, options)
	if err != nil {
		resp.Diagnostics.AddError("Read Error", fmt.Sprintf("Unable to call GetConnection, got error: %s", err))
		return
	}
	conn, err := result.ConnectionFor(deploymentType)
	if err != nil {
		resp.Diagnostics.AddError("Read Error", fmt.Sprintf("Unable to decode %s connection, got error: %s", deploymentType, err))
		return
	}
	endpoint, err := primaryEndpoint(conn)
	if err != nil {
		resp.Diagnostics.AddError("Read Error", err.Error())
		return
	}

	data.Scheme = types.StringValue(endpoint.scheme)
	data.Composed = types.StringValue(firstOrEmpty(endpoint.composed))
	data.Database = types.StringValue(endpoint.database)
	data.Hosts = []endpointHost{}
	for _, h := range endpoint.hosts {
		data.Hosts = append(data.Hosts, endpointHost{
			Hostname: types.StringPointerValue(h.Hostname),
			Port:     types.Int64PointerValue(h.Port),
		})
	}
	data.CertificateName = types.StringValue("")
	data.CertificateBase64 = types.StringValue("")
	if c := endpoint.certificate; c != nil {
		data.CertificateName = types.StringValue(deref(c.Name))
		data.CertificateBase64 = types.StringValue(deref(c.CertificateBase64))
	}
	data.CliComposed = types.StringValue("")
	if endpoint.cli != nil {
		data.CliComposed = types.StringValue(firstOrEmpty(endpoint.cli.Composed))
	}

	diags = resp.State.Set(ctx, &data)
	resp.Diagnostics.Append(diags...)
}

func primaryEndpoint(conn clouddatabases.Connection) (*connectionEndpoint, error) {
	fromURI := func(uri *clouddatabases.ConnectionURI, database string, cli *clouddatabases.ConnectionCLI) *connectionEndpoint {
		return &connectionEndpoint{
			scheme:      deref(uri.Scheme),
			composed:    uri.Composed,
			hosts:       uri.Hosts,
			database:    database,
			certificate: uri.Certificate,
			cli:         cli,
		}
	}
	fromGRPC := func(uri *clouddatabases.GRPCConnectionURI, cli *clouddatabases.ConnectionCLI) *connectionEndpoint {
		return &connectionEndpoint{
			scheme:      deref(uri.Scheme),
			composed:    uri.Composed,
			hosts:       uri.Hosts,
			certificate: uri.Certificate,
			cli:         cli,
		}
	}

	switch c := conn.(type) {
	case *clouddatabases.PostgreSQLConnection:
		return fromURI(&c.Postgres.ConnectionURI, deref(c.Postgres.Database), c.CLI), nil
	case *clouddatabases.MySQLConnection:
		return fromURI(&c.MySQL.ConnectionURI, deref(c.MySQL.Database), c.CLI), nil
	case *clouddatabases.RedisConnection:
		var database string
		if c.Rediss.Database != nil {
			database = strconv.FormatInt(*c.Rediss.Database, 10)
		}
		return fromURI(&c.Rediss.ConnectionURI, database, c.CLI), nil
	case *clouddatabases.RabbitMQConnection:
		return fromURI(c.Amqps, "", c.CLI), nil
	case *clouddatabases.ElasticsearchConnection:
		return fromURI(c.HTTPS, "", c.CLI), nil
	case *clouddatabases.EtcdConnection:
		return fromGRPC(c.GRPC, c.CLI), nil
	case *clouddatabases.MongoDBConnection:
		return fromURI(&c.MongoDB.ConnectionURI, deref(c.MongoDB.Database), c.CLI), nil
	case *clouddatabases.MongoDBEEConnection:
		return fromURI(&c.MongoDB.ConnectionURI, deref(c.MongoDB.Database), c.CLI), nil
	case *clouddatabases.DataStaxConnection:
		if c.GRPC == nil {
			return &connectionEndpoint{cli: c.CLI}, nil
		}
		return fromGRPC(c.GRPC, c.CLI), nil
	}
	return nil, errors.NotSupportedf("connection %T", conn)
}

func firstOrEmpty(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}
