package clouddatabases

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/iancoleman/orderedmap"
	assert "github.com/stretchr/testify/require"
)

const (
	testConnectionCLI = `"cli": {
		"type": "cli",
		"composed": ["PGPASSWORD=$PASSWORD psql 'host=h1 port=31000'"],
		"environment": {"PGSSLROOTCERT": "ca.crt", "PGPASSWORD": "$PASSWORD"},
		"bin": "psql",
		"arguments": [["host=h1", "port=31000"]],
		"certificate": {"name": "ca", "certificate_base64": "Y2E="}
	}`
	testConnectionURI = `{
		"type": "uri",
		"composed": ["scheme://admin:$PASSWORD@h1:31000/db?sslmode=verify-full"],
		"scheme": "scheme",
		"hosts": [{"hostname": "h1", "port": 31000}],
		"path": "/db",
		"query_options": {"sslmode": "verify-full", "authSource": "admin", "connect_timeout": 10},
		"authentication": {"method": "direct", "username": "admin", "password": "$PASSWORD"},
		"certificate": {"name": "ca", "certificate_base64": "Y2E="},
		"ssl": true,
		"browser_accessible": false
	}`
	testGRPCURI = `{
		"type": "uri",
		"composed": ["https://root:$PASSWORD@h1:30000"],
		"scheme": "https",
		"hosts": [{"hostname": "h1", "port": 30000}],
		"path": "",
		"authentication": {"method": "direct", "username": "root", "password": "$PASSWORD"},
		"certificate": {"name": "ca", "certificate_base64": "Y2E="}
	}`
	testGroup = `{
		"id": "member",
		"count": 3,
		"members": {"units": "count", "allocation_count": 3, "minimum_count": 3, "maximum_count": 20, "step_size_count": 1, "is_adjustable": true, "is_optional": false, "can_scale_down": false},
		"memory": {"units": "mb", "allocation_mb": 12288, "minimum_mb": 3072, "maximum_mb": 344064, "step_size_mb": 384, "is_adjustable": true, "is_optional": false, "can_scale_down": true, "cpu_enforcement_ratio_ceiling_mb": 16384, "cpu_enforcement_ratio_mb": 8192},
		"cpu": {"units": "count", "allocation_count": 6, "minimum_count": 6, "maximum_count": 96, "step_size_count": 2, "is_adjustable": true, "is_optional": true, "can_scale_down": true},
		"disk": {"units": "mb", "allocation_mb": 30720, "minimum_mb": 30720, "maximum_mb": 12582912, "step_size_mb": 3072, "is_adjustable": true, "is_optional": false, "can_scale_down": false},
		"host_flavor": {"id": "b3c.4x16.encrypted", "name": "4x16", "hosting_size": "s"}
	}`
	testTask   = `{"id": "t1", "description": "Scaling.", "status": "running", "deployment_id": "d1", "progress_percent": 5, "created_at": "2024-05-01T12:00:00.123456+02:00"}`
	testBackup = `{"id": "b1", "deployment_id": "d1", "type": "scheduled", "status": "completed", "is_downloadable": true, "is_restorable": true, "created_at": "2024-05-01T12:00:00.987654321Z", "download_link": "https://example.com/b1"}`
)

func withURI(key string) string {
	return `{"` + key + `": ` + testConnectionURI + `, ` + testConnectionCLI + `}`
}

func TestModelsRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		model interface{}
		data  string
	}{
		{"AllowlistEntry", &AllowlistEntry{}, `{"address": "10.0.0.0/8", "description": "office", "ttl": 300}`},
		{"GetAllowlistResponse", &GetAllowlistResponse{}, `{"ip_addresses": [{"address": "1.1.1.1"}, {"address": "10.0.0.0/8", "description": "office"}]}`},
		{"AutoscalingGroup", &AutoscalingGroup{}, `{"autoscaling": {
			"disk": {"scalers": {"capacity": {"enabled": true, "free_space_less_than_percent": 10}, "io_utilization": {"enabled": true, "over_period": "30m", "above_percent": 45}}, "rate": {"increase_percent": 20, "period_seconds": 900, "limit_mb_per_member": 3670016, "units": "mb"}},
			"memory": {"scalers": {"io_utilization": {"enabled": false, "over_period": "5m", "above_percent": 90}}, "rate": {"increase_percent": 10.5, "period_seconds": 900, "limit_mb_per_member": 3670016, "units": "mb"}},
			"cpu": {"scalers": {"zeta": {"enabled": true}, "alpha": [1, 2.5, {"y": "b", "x": "a"}]}, "rate": {"increase_percent": 10, "period_seconds": 900, "limit_count_per_member": 10, "units": "count"}}
		}}`},
		{"AutoscalingDiskGroup", &AutoscalingDiskGroup{}, `{"disk": {"scalers": {"capacity": {"enabled": true}}}}`},
		{"AutoscalingMemoryGroup", &AutoscalingMemoryGroup{}, `{"memory": {"rate": {"increase_percent": 10, "units": "mb"}}}`},
		{"AutoscalingCPUGroup", &AutoscalingCPUGroup{}, `{"cpu": {"scalers": {"b": 1, "a": 2}}}`},
		{"Backup", &Backup{}, testBackup},
		{"Backups", &Backups{}, `{"backups": [` + testBackup + `]}`},
		{"GetBackupInfoResponse", &GetBackupInfoResponse{}, `{"backup": ` + testBackup + `}`},
		{"ListDeployablesResponse", &ListDeployablesResponse{}, `{"deployables": [{"type": "postgresql", "versions": [{"version": "16", "status": "stable", "is_preferred": true, "transitions": [{"application": "postgresql", "method": "restore", "from_version": "15", "to_version": "16"}]}]}]}`},
		{"ListRegionsResponse", &ListRegionsResponse{}, `{"regions": ["us-south", "eu-de"]}`},
		{"GetDeploymentInfoResponse", &GetDeploymentInfoResponse{}, `{"deployment": {
			"id": "crn:v1:d1", "name": "example", "type": "postgresql",
			"platform_options": {"zeta": "z", "alpha": 1, "nested": {"b": true, "a": null}, "list": [{"d": 1, "c": 2}]},
			"version": "16", "admin_usernames": {"database": "admin", "ops_manager": "om_admin"},
			"enable_public_endpoints": true, "enable_private_endpoints": false
		}}`},
		{"ListRemotesResponse", &ListRemotesResponse{}, `{"remotes": {"leader": "crn:v1:leader", "replicas": ["crn:v1:r1", "crn:v1:r2"]}}`},
		{"GetPitrDataResponse", &GetPitrDataResponse{}, `{"point_in_time_recovery_data": {"earliest_point_in_time_recovery_time": "2024-05-01T12:00:00Z"}}`},
		{"LogicalReplicationSlot", &LogicalReplicationSlot{}, `{"name": "slot1", "database_name": "ibmclouddb", "plugin_type": "wal2json"}`},
		{"Group", &Group{}, testGroup},
		{"ListDeploymentScalingGroupsResponse", &ListDeploymentScalingGroupsResponse{}, `{"groups": [` + testGroup + `]}`},
		{"GetDefaultScalingGroupsResponse", &GetDefaultScalingGroupsResponse{}, `{"groups": [` + testGroup + `]}`},
		{"GroupScaling", &GroupScaling{}, `{"members": {"allocation_count": 3}, "memory": {"allocation_mb": 4096}, "cpu": {"allocation_count": 6}, "disk": {"allocation_mb": 20480}, "host_flavor": {"id": "multitenant"}}`},
		{"Task", &Task{}, testTask},
		{"Tasks", &Tasks{}, `{"tasks": [` + testTask + `]}`},
		{"GetTaskResponse", &GetTaskResponse{}, `{"task": ` + testTask + `}`},
		{"SetDeploymentScalingGroupResponse", &SetDeploymentScalingGroupResponse{}, `{"task": ` + testTask + `}`},
		{"ConfigurationPgConfiguration", &ConfigurationPgConfiguration{}, `{"max_connections": 200, "wal_level": "logical", "synchronous_commit": "local", "log_connections": "on", "max_logical_replication_workers": 4}`},
		{"ConfigurationMySQLConfiguration", &ConfigurationMySQLConfiguration{}, `{"default_authentication_plugin": "caching_sha2_password", "max_connections": 300, "sql_mode": "STRICT_ALL_TABLES"}`},
		{"ConfigurationRabbitMqConfiguration", &ConfigurationRabbitMqConfiguration{}, `{"delete_undefined_queues": true}`},
		{"ConfigurationRedisConfiguration", &ConfigurationRedisConfiguration{}, `{"maxmemory": 1024, "maxmemory-policy": "allkeys-lru", "appendonly": "yes", "stop-writes-on-bgsave-error": "no"}`},
		{"PostgreSQLConnection", &PostgreSQLConnection{}, withURI("postgres")},
		{"MySQLConnection", &MySQLConnection{}, withURI("mysql")},
		{"RedisConnection", &RedisConnection{}, withURI("rediss")},
		{"RabbitMQConnection", &RabbitMQConnection{}, `{"amqps": ` + testConnectionURI + `, "mqtts": ` + testConnectionURI + `, "stomp_ssl": ` + testConnectionURI + `, "https": ` + testConnectionURI + `, ` + testConnectionCLI + `}`},
		{"ElasticsearchConnection", &ElasticsearchConnection{}, withURI("https")},
		{"EtcdConnection", &EtcdConnection{}, `{"grpc": ` + testGRPCURI + `, ` + testConnectionCLI + `}`},
		{"MongoDBConnection", &MongoDBConnection{}, withURI("mongodb")},
		{"MongoDBEEConnection", &MongoDBEEConnection{}, `{"mongodb": ` + testConnectionURI + `, "bi_connector": ` + testConnectionURI + `, "analytics": ` + testConnectionURI + `, "ops_manager": ` + testConnectionURI + `, ` + testConnectionCLI + `}`},
		{"DataStaxConnection", &DataStaxConnection{}, `{"secure_connect_bundle": {"bundle_base64": "YnVuZGxl"}, "grpc": ` + testGRPCURI + `, ` + testConnectionCLI + `}`},
		{"GetConnectionResponse", &GetConnectionResponse{}, `{"connection": ` + withURI("postgres") + `}`},
		{"CompleteConnectionResponse", &CompleteConnectionResponse{}, `{"connection": ` + withURI("mysql") + `}`},
		{"UserDatabaseUser", &UserDatabaseUser{}, `{"username": "admin", "password": "secret"}`},
		{"UserRedisDatabaseUser", &UserRedisDatabaseUser{}, `{"username": "reader", "password": "secret", "role": "-@all +@read"}`},
		{"UserOpsManagerUser", &UserOpsManagerUser{}, `{"username": "om", "password": "secret", "role": "group_read_only"}`},
		{"UserUpdatePasswordSetting", &UserUpdatePasswordSetting{}, `{"password": "newsecret"}`},
		{"UserUpdateRedisRoleSetting", &UserUpdateRedisRoleSetting{}, `{"role": "+@all"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, json.Unmarshal([]byte(tt.data), tt.model))

			m, err := AsMap(tt.model)
			assert.NoError(t, err)
			assert.NotContains(t, m, "ttl")

			again := reflect.New(reflect.TypeOf(tt.model).Elem()).Interface()
			assert.NoError(t, Unmarshal(m, again))
			assert.True(t, Equal(tt.model, again), "%s changed after a round trip", tt.name)

			empty, err := AsMap(reflect.New(reflect.TypeOf(tt.model).Elem()).Interface())
			assert.NoError(t, err)
			assert.Empty(t, empty)
		})
	}
}

func TestRoundTripKeepsOpenMappingOrder(t *testing.T) {
	var deployment Deployment
	assert.NoError(t, json.Unmarshal([]byte(`{"platform_options": {"zeta": "z", "alpha": 1, "mid": {"y": 2, "x": 1}}}`), &deployment))

	m, err := AsMap(&deployment)
	assert.NoError(t, err)
	options, ok := m["platform_options"].(*orderedmap.OrderedMap)
	assert.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, options.Keys())
	alpha, _ := options.Get("alpha")
	assert.Equal(t, json.Number("1"), alpha)

	var again Deployment
	assert.NoError(t, Unmarshal(m, &again))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, again.PlatformOptions.Keys())
	mid, _ := again.PlatformOptions.Get("mid")
	assert.Equal(t, []string{"y", "x"}, func() []string { om := mid.(orderedmap.OrderedMap); return om.Keys() }())
	assert.True(t, Equal(&deployment, &again))

	conn, err := UnmarshalConnection(DeploymentTypePostgreSQL, []byte(withURI("postgres")))
	assert.NoError(t, err)
	pg := conn.(*PostgreSQLConnection)
	assert.Equal(t, []string{"sslmode", "authSource", "connect_timeout"}, pg.Postgres.QueryOptions.Keys())
	assert.Equal(t, []string{"PGSSLROOTCERT", "PGPASSWORD"}, pg.CLI.Environment.Keys())
}

func TestEqualOpenMappingOrder(t *testing.T) {
	a := orderedmap.New()
	a.Set("zeta", "z")
	a.Set("alpha", 1.0)
	b := orderedmap.New()
	b.Set("alpha", 1.0)
	b.Set("zeta", "z")
	c := orderedmap.New()
	c.Set("zeta", "z")
	c.Set("alpha", 1.0)

	assert.False(t, Equal(&Deployment{PlatformOptions: a}, &Deployment{PlatformOptions: b}))
	assert.True(t, Equal(&Deployment{PlatformOptions: a}, &Deployment{PlatformOptions: c}))
}

func TestEqualTimestamps(t *testing.T) {
	t0 := strfmt.DateTime(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	t1 := strfmt.DateTime(time.Time(t0).Add(200 * time.Microsecond))
	sameInstant := strfmt.DateTime(time.Time(t0).In(time.FixedZone("CEST", 2*60*60)))

	assert.False(t, Equal(&Task{CreatedAt: &t0}, &Task{CreatedAt: &t1}))
	assert.True(t, Equal(&Task{CreatedAt: &t0}, &Task{CreatedAt: &sameInstant}))
	assert.False(t, Equal(&Task{CreatedAt: &t0}, &Task{}))
}

func TestParsedTimestampsAreCanonical(t *testing.T) {
	var task Task
	assert.NoError(t, json.Unmarshal([]byte(testTask), &task))
	want := time.Date(2024, 5, 1, 10, 0, 0, 123000000, time.UTC)
	assert.True(t, want.Equal(time.Time(*task.CreatedAt)))

	var backup Backup
	assert.NoError(t, json.Unmarshal([]byte(testBackup), &backup))
	want = time.Date(2024, 5, 1, 12, 0, 0, 987000000, time.UTC)
	assert.True(t, want.Equal(time.Time(*backup.CreatedAt)))
}

func TestInvalidPropertyValue(t *testing.T) {
	err := validateModel(&ConfigurationPgConfiguration{WalLevel: StringPtr("bogus")})
	assert.Equal(t, &ModelError{Entity: "ConfigurationPgConfiguration", Field: "wal_level", Reason: "must be one of hot_standby, logical"}, err)
	assert.Equal(t, "invalid value for 'wal_level' in ConfigurationPgConfiguration (must be one of hot_standby, logical)", err.Error())

	err = validateModel(&UserDatabaseUser{Username: StringPtr("admin")})
	assert.Equal(t, "required property 'password' not found for UserDatabaseUser", err.Error())

	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	})
	_, _, err = service.UpdateDatabaseConfiguration(context.Background(),
		NewUpdateDatabaseConfigurationOptions("d1", &ConfigurationPgConfiguration{WalLevel: StringPtr("bogus")}))
	assert.True(t, IsModelError(err))
	assert.Contains(t, err.Error(), "invalid value for 'wal_level'")
	assert.NotContains(t, err.Error(), "not found")
}
