package clouddatabases

// Configuration is a change to a deployment's engine configuration. Each
// database engine has its own shape: ConfigurationPgConfiguration,
// ConfigurationMySQLConfiguration, ConfigurationRabbitMqConfiguration or
// ConfigurationRedisConfiguration.
type Configuration interface {
	isaConfiguration() bool
}

// ConfigurationPgConfiguration applies to PostgreSQL and EnterpriseDB.
type ConfigurationPgConfiguration struct {
	ArchiveTimeout               *int64  `json:"archive_timeout,omitempty"`
	DeadlockTimeout              *int64  `json:"deadlock_timeout,omitempty"`
	EffectiveIoConcurrency       *int64  `json:"effective_io_concurrency,omitempty"`
	LogConnections               *string `json:"log_connections,omitempty"`
	LogDisconnections            *string `json:"log_disconnections,omitempty"`
	LogMinDurationStatement      *int64  `json:"log_min_duration_statement,omitempty"`
	MaxConnections               *int64  `json:"max_connections,omitempty"`
	MaxPreparedTransactions      *int64  `json:"max_prepared_transactions,omitempty"`
	MaxReplicationSlots          *int64  `json:"max_replication_slots,omitempty"`
	MaxWalSenders                *int64  `json:"max_wal_senders,omitempty"`
	SharedBuffers                *int64  `json:"shared_buffers,omitempty"`
	SynchronousCommit            *string `json:"synchronous_commit,omitempty" validate:"omitempty,oneof=local off"`
	TCPKeepalivesCount           *int64  `json:"tcp_keepalives_count,omitempty"`
	TCPKeepalivesIdle            *int64  `json:"tcp_keepalives_idle,omitempty"`
	TCPKeepalivesInterval        *int64  `json:"tcp_keepalives_interval,omitempty"`
	WalLevel                     *string `json:"wal_level,omitempty" validate:"omitempty,oneof=hot_standby logical"`
	MaxLogicalReplicationWorkers *int64  `json:"max_logical_replication_workers,omitempty"`
}

func (*ConfigurationPgConfiguration) isaConfiguration() bool { return true }

type ConfigurationMySQLConfiguration struct {
	DefaultAuthenticationPlugin    *string `json:"default_authentication_plugin,omitempty" validate:"omitempty,oneof=sha256_password mysql_native_password caching_sha2_password"`
	InnodbBufferPoolSizePercentage *int64  `json:"innodb_buffer_pool_size_percentage,omitempty"`
	InnodbFlushLogAtTrxCommit      *int64  `json:"innodb_flush_log_at_trx_commit,omitempty"`
	InnodbLogBufferSize            *int64  `json:"innodb_log_buffer_size,omitempty"`
	InnodbLogFileSize              *int64  `json:"innodb_log_file_size,omitempty"`
	InnodbLruScanDepth             *int64  `json:"innodb_lru_scan_depth,omitempty"`
	InnodbReadIoThreads            *int64  `json:"innodb_read_io_threads,omitempty"`
	InnodbWriteIoThreads           *int64  `json:"innodb_write_io_threads,omitempty"`
	MaxAllowedPacket               *int64  `json:"max_allowed_packet,omitempty"`
	MaxConnections                 *int64  `json:"max_connections,omitempty"`
	MysqlMaxBinlogAgeSec           *int64  `json:"mysql_max_binlog_age_sec,omitempty"`
	NetReadTimeout                 *int64  `json:"net_read_timeout,omitempty"`
	NetWriteTimeout                *int64  `json:"net_write_timeout,omitempty"`
	SQLMode                        *string `json:"sql_mode,omitempty"`
	WaitTimeout                    *int64  `json:"wait_timeout,omitempty"`
}

func (*ConfigurationMySQLConfiguration) isaConfiguration() bool { return true }

type ConfigurationRabbitMqConfiguration struct {
	DeleteUndefinedQueues *bool `json:"delete_undefined_queues,omitempty"`
}

func (*ConfigurationRabbitMqConfiguration) isaConfiguration() bool { return true }

// ConfigurationRedisConfiguration uses the Redis configuration names, which
// contain dashes.
type ConfigurationRedisConfiguration struct {
	Maxmemory               *int64  `json:"maxmemory,omitempty"`
	MaxmemoryPolicy         *string `json:"maxmemory-policy,omitempty" validate:"omitempty,oneof=volatile-lru allkeys-lru volatile-lfu allkeys-lfu volatile-random allkeys-random volatile-ttl noeviction"`
	Appendonly              *string `json:"appendonly,omitempty" validate:"omitempty,oneof=yes no"`
	MaxmemorySamples        *int64  `json:"maxmemory-samples,omitempty"`
	StopWritesOnBgsaveError *string `json:"stop-writes-on-bgsave-error,omitempty" validate:"omitempty,oneof=yes no"`
}

func (*ConfigurationRedisConfiguration) isaConfiguration() bool { return true }

// UnmarshalConfiguration decodes data into the configuration shape of
// deploymentType.
func UnmarshalConfiguration(deploymentType string, data []byte) (Configuration, error) {
	var config Configuration
	switch deploymentType {
	case "":
		return nil, &VariantError{Family: "Configuration"}
	case DeploymentTypePostgreSQL, DeploymentTypeEnterpriseDB:
		config = &ConfigurationPgConfiguration{}
	case DeploymentTypeMySQL:
		config = &ConfigurationMySQLConfiguration{}
	case DeploymentTypeRabbitMQ:
		config = &ConfigurationRabbitMqConfiguration{}
	case DeploymentTypeRedis:
		config = &ConfigurationRedisConfiguration{}
	default:
		return nil, &VariantError{Family: "Configuration", Discriminant: deploymentType}
	}
	if err := jsonUnmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

type updateDatabaseConfigurationBody struct {
	Configuration Configuration `json:"configuration"`
}
