package clouddatabases

import (
	"encoding/json"

	"github.com/iancoleman/orderedmap"
)

type ConnectionHost struct {
	Hostname *string `json:"hostname,omitempty"`
	Port     *int64  `json:"port,omitempty"`
}

type ConnectionAuthentication struct {
	Method   *string `json:"method,omitempty"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

type ConnectionCertificate struct {
	Name              *string `json:"name,omitempty"`
	CertificateBase64 *string `json:"certificate_base64,omitempty"`
}

// ConnectionURI is the common shape of a URI-style connection endpoint.
type ConnectionURI struct {
	Type              *string                   `json:"type,omitempty"`
	Composed          []string                  `json:"composed,omitempty"`
	Scheme            *string                   `json:"scheme,omitempty"`
	Hosts             []ConnectionHost          `json:"hosts,omitempty"`
	Path              *string                   `json:"path,omitempty"`
	QueryOptions      *orderedmap.OrderedMap    `json:"query_options,omitempty"`
	Authentication    *ConnectionAuthentication `json:"authentication,omitempty"`
	Certificate       *ConnectionCertificate    `json:"certificate,omitempty"`
	SSL               *bool                     `json:"ssl,omitempty"`
	BrowserAccessible *bool                     `json:"browser_accessible,omitempty"`
}

type PostgreSQLConnectionURI struct {
	ConnectionURI
	Database *string `json:"database,omitempty"`
}

type MySQLConnectionURI struct {
	ConnectionURI
	Database *string `json:"database,omitempty"`
}

type RedisConnectionURI struct {
	ConnectionURI
	Database *int64 `json:"database,omitempty"`
}

type MongoDBConnectionURI struct {
	ConnectionURI
	Database   *string `json:"database,omitempty"`
	ReplicaSet *string `json:"replica_set,omitempty"`
}

type GRPCConnectionURI struct {
	Type           *string                   `json:"type,omitempty"`
	Composed       []string                  `json:"composed,omitempty"`
	Scheme         *string                   `json:"scheme,omitempty"`
	Hosts          []ConnectionHost          `json:"hosts,omitempty"`
	Path           *string                   `json:"path,omitempty"`
	Authentication *ConnectionAuthentication `json:"authentication,omitempty"`
	Certificate    *ConnectionCertificate    `json:"certificate,omitempty"`
}

// ConnectionCLI describes how to connect with the engine's command line
// client. Environment holds the variables to export before running Bin.
type ConnectionCLI struct {
	Type        *string                `json:"type,omitempty"`
	Composed    []string               `json:"composed,omitempty"`
	Environment *orderedmap.OrderedMap `json:"environment,omitempty"`
	Bin         *string                `json:"bin,omitempty"`
	Arguments   [][]string             `json:"arguments,omitempty"`
	Certificate *ConnectionCertificate `json:"certificate,omitempty"`
}

type DataStaxConnectionSecureConnectBundle struct {
	BundleBase64 *string `json:"bundle_base64,omitempty"`
}

// Connection is the connection information of a deployment. The payload
// carries no type tag; the shape follows the deployment's database type. See
// UnmarshalConnection.
type Connection interface {
	isaConnection() bool
}

type PostgreSQLConnection struct {
	Postgres *PostgreSQLConnectionURI `json:"postgres,omitempty" validate:"required"`
	CLI      *ConnectionCLI           `json:"cli,omitempty"`
}

func (*PostgreSQLConnection) isaConnection() bool { return true }

func (c *PostgreSQLConnection) UnmarshalJSON(data []byte) error {
	type plain PostgreSQLConnection
	return unmarshalModel(data, "PostgreSQLConnection", (*plain)(c))
}

type MySQLConnection struct {
	MySQL *MySQLConnectionURI `json:"mysql,omitempty" validate:"required"`
	CLI   *ConnectionCLI      `json:"cli,omitempty"`
}

func (*MySQLConnection) isaConnection() bool { return true }

func (c *MySQLConnection) UnmarshalJSON(data []byte) error {
	type plain MySQLConnection
	return unmarshalModel(data, "MySQLConnection", (*plain)(c))
}

type RedisConnection struct {
	Rediss *RedisConnectionURI `json:"rediss,omitempty" validate:"required"`
	CLI    *ConnectionCLI      `json:"cli,omitempty"`
}

func (*RedisConnection) isaConnection() bool { return true }

func (c *RedisConnection) UnmarshalJSON(data []byte) error {
	type plain RedisConnection
	return unmarshalModel(data, "RedisConnection", (*plain)(c))
}

type RabbitMQConnection struct {
	Amqps    *ConnectionURI `json:"amqps,omitempty" validate:"required"`
	Mqtts    *ConnectionURI `json:"mqtts,omitempty"`
	StompSSL *ConnectionURI `json:"stomp_ssl,omitempty"`
	HTTPS    *ConnectionURI `json:"https,omitempty"`
	CLI      *ConnectionCLI `json:"cli,omitempty"`
}

func (*RabbitMQConnection) isaConnection() bool { return true }

func (c *RabbitMQConnection) UnmarshalJSON(data []byte) error {
	type plain RabbitMQConnection
	return unmarshalModel(data, "RabbitMQConnection", (*plain)(c))
}

type ElasticsearchConnection struct {
	HTTPS *ConnectionURI `json:"https,omitempty" validate:"required"`
	CLI   *ConnectionCLI `json:"cli,omitempty"`
}

func (*ElasticsearchConnection) isaConnection() bool { return true }

func (c *ElasticsearchConnection) UnmarshalJSON(data []byte) error {
	type plain ElasticsearchConnection
	return unmarshalModel(data, "ElasticsearchConnection", (*plain)(c))
}

type EtcdConnection struct {
	GRPC *GRPCConnectionURI `json:"grpc,omitempty" validate:"required"`
	CLI  *ConnectionCLI     `json:"cli,omitempty"`
}

func (*EtcdConnection) isaConnection() bool { return true }

func (c *EtcdConnection) UnmarshalJSON(data []byte) error {
	type plain EtcdConnection
	return unmarshalModel(data, "EtcdConnection", (*plain)(c))
}

type MongoDBConnection struct {
	MongoDB *MongoDBConnectionURI `json:"mongodb,omitempty" validate:"required"`
	CLI     *ConnectionCLI        `json:"cli,omitempty"`
}

func (*MongoDBConnection) isaConnection() bool { return true }

func (c *MongoDBConnection) UnmarshalJSON(data []byte) error {
	type plain MongoDBConnection
	return unmarshalModel(data, "MongoDBConnection", (*plain)(c))
}

// MongoDBEEConnection adds the enterprise endpoints to MongoDBConnection.
type MongoDBEEConnection struct {
	MongoDB     *MongoDBConnectionURI `json:"mongodb,omitempty" validate:"required"`
	BiConnector *ConnectionURI        `json:"bi_connector,omitempty"`
	Analytics   *ConnectionURI        `json:"analytics,omitempty"`
	OpsManager  *ConnectionURI        `json:"ops_manager,omitempty"`
	CLI         *ConnectionCLI        `json:"cli,omitempty"`
}

func (*MongoDBEEConnection) isaConnection() bool { return true }

func (c *MongoDBEEConnection) UnmarshalJSON(data []byte) error {
	type plain MongoDBEEConnection
	return unmarshalModel(data, "MongoDBEEConnection", (*plain)(c))
}

type DataStaxConnection struct {
	SecureConnectBundle *DataStaxConnectionSecureConnectBundle `json:"secure_connect_bundle,omitempty" validate:"required"`
	GRPC                *GRPCConnectionURI                     `json:"grpc,omitempty"`
	CLI                 *ConnectionCLI                         `json:"cli,omitempty"`
}

func (*DataStaxConnection) isaConnection() bool { return true }

func (c *DataStaxConnection) UnmarshalJSON(data []byte) error {
	type plain DataStaxConnection
	return unmarshalModel(data, "DataStaxConnection", (*plain)(c))
}

// UnmarshalConnection decodes data into the connection shape of
// deploymentType.
func UnmarshalConnection(deploymentType string, data []byte) (Connection, error) {
	var conn Connection
	switch deploymentType {
	case "":
		return nil, &VariantError{Family: "Connection"}
	case DeploymentTypePostgreSQL, DeploymentTypeEnterpriseDB:
		conn = &PostgreSQLConnection{}
	case DeploymentTypeMySQL:
		conn = &MySQLConnection{}
	case DeploymentTypeRedis:
		conn = &RedisConnection{}
	case DeploymentTypeRabbitMQ:
		conn = &RabbitMQConnection{}
	case DeploymentTypeElasticsearch:
		conn = &ElasticsearchConnection{}
	case DeploymentTypeEtcd:
		conn = &EtcdConnection{}
	case DeploymentTypeMongoDB:
		conn = &MongoDBConnection{}
	case DeploymentTypeMongoDBEE:
		conn = &MongoDBEEConnection{}
	case DeploymentTypeDataStax:
		conn = &DataStaxConnection{}
	default:
		return nil, &VariantError{Family: "Connection", Discriminant: deploymentType}
	}
	if err := jsonUnmarshal(data, conn); err != nil {
		return nil, err
	}
	return conn, nil
}

// GetConnectionResponse keeps the connection undecoded until the caller
// names the deployment type.
type GetConnectionResponse struct {
	Connection json.RawMessage `json:"connection,omitempty" validate:"required"`
}

func (r *GetConnectionResponse) UnmarshalJSON(data []byte) error {
	type plain GetConnectionResponse
	return unmarshalModel(data, "GetConnectionResponse", (*plain)(r))
}

func (r *GetConnectionResponse) ConnectionFor(deploymentType string) (Connection, error) {
	return UnmarshalConnection(deploymentType, r.Connection)
}

type CompleteConnectionResponse struct {
	Connection json.RawMessage `json:"connection,omitempty" validate:"required"`
}

func (r *CompleteConnectionResponse) UnmarshalJSON(data []byte) error {
	type plain CompleteConnectionResponse
	return unmarshalModel(data, "CompleteConnectionResponse", (*plain)(r))
}

func (r *CompleteConnectionResponse) ConnectionFor(deploymentType string) (Connection, error) {
	return UnmarshalConnection(deploymentType, r.Connection)
}

type completeConnectionBody struct {
	Password        *string `json:"password,omitempty"`
	CertificateRoot *string `json:"certificate_root,omitempty"`
}
