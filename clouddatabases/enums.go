package clouddatabases

// Deployment types, as reported by Deployment.Type and used in paths such as
// /deployables/{type}/groups.
const (
	DeploymentTypePostgreSQL    = "postgresql"
	DeploymentTypeEnterpriseDB  = "enterprisedb"
	DeploymentTypeMySQL         = "mysql"
	DeploymentTypeRedis         = "redis"
	DeploymentTypeRabbitMQ      = "rabbitmq"
	DeploymentTypeElasticsearch = "elasticsearch"
	DeploymentTypeEtcd          = "etcd"
	DeploymentTypeMongoDB       = "mongodb"
	DeploymentTypeMongoDBEE     = "mongodbee"
	DeploymentTypeDataStax      = "datastax_enterprise_full"
)

// User types.
const (
	UserTypeDatabase        = "database"
	UserTypeOpsManager      = "ops_manager"
	UserTypeReadOnlyReplica = "read_only_replica"
)

// Endpoint types for connection lookups.
const (
	EndpointTypePublic  = "public"
	EndpointTypePrivate = "private"
)

// Task.Status values.
const (
	TaskStatusRunning   = "running"
	TaskStatusCompleted = "completed"
	TaskStatusFailed    = "failed"
	TaskStatusQueued    = "queued"
)

// Backup.Type values.
const (
	BackupTypeScheduled = "scheduled"
	BackupTypeOnDemand  = "on_demand"
)

// Backup.Status values.
const (
	BackupStatusRunning   = "running"
	BackupStatusCompleted = "completed"
	BackupStatusFailed    = "failed"
)

// DeployablesVersionsItem.Status values.
const (
	DeployableVersionStatusStable     = "stable"
	DeployableVersionStatusPreview    = "preview"
	DeployableVersionStatusDeprecated = "deprecated"
)

// UserOpsManagerUser.Role values.
const (
	OpsManagerRoleGroupReadOnly        = "group_read_only"
	OpsManagerRoleGroupDataAccessAdmin = "group_data_access_admin"
)

// ConfigurationPgConfiguration.SynchronousCommit values.
const (
	PgSynchronousCommitLocal = "local"
	PgSynchronousCommitOff   = "off"
)

// ConfigurationPgConfiguration.WalLevel values.
const (
	PgWalLevelHotStandby = "hot_standby"
	PgWalLevelLogical    = "logical"
)

// ConfigurationMySQLConfiguration.DefaultAuthenticationPlugin values.
const (
	MySQLAuthPluginSha256Password      = "sha256_password"
	MySQLAuthPluginNativePassword      = "mysql_native_password"
	MySQLAuthPluginCachingSha2Password = "caching_sha2_password"
)

// ConfigurationRedisConfiguration.MaxmemoryPolicy values.
const (
	RedisMaxmemoryPolicyVolatileLru    = "volatile-lru"
	RedisMaxmemoryPolicyAllkeysLru     = "allkeys-lru"
	RedisMaxmemoryPolicyVolatileLfu    = "volatile-lfu"
	RedisMaxmemoryPolicyAllkeysLfu     = "allkeys-lfu"
	RedisMaxmemoryPolicyVolatileRandom = "volatile-random"
	RedisMaxmemoryPolicyAllkeysRandom  = "allkeys-random"
	RedisMaxmemoryPolicyVolatileTTL    = "volatile-ttl"
	RedisMaxmemoryPolicyNoeviction     = "noeviction"
)

// ConfigurationRedisConfiguration yes/no switches.
const (
	RedisSwitchYes = "yes"
	RedisSwitchNo  = "no"
)

// LogicalReplicationSlot.PluginType values.
const (
	LogicalReplicationPluginWal2JSON = "wal2json"
)

// Autoscaling rate units.
const (
	AutoscalingUnitsMB    = "mb"
	AutoscalingUnitsCount = "count"
)

// Connection authentication methods.
const (
	ConnectionAuthMethodDirect = "direct"
)
