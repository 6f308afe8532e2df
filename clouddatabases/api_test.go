package clouddatabases

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	assert "github.com/stretchr/testify/require"
)

const taskBody = `{"task": {"id": "t1", "description": "working", "status": "running", "deployment_id": "d1", "progress_percent": 10, "created_at": "2024-05-01T12:00:00Z"}}`

func newTestService(t *testing.T, handler http.HandlerFunc) *CloudDatabasesV5 {
	return newTestServiceWithConfig(t, handler, &Config{})
}

func newTestServiceWithConfig(t *testing.T, handler http.HandlerFunc, cfg *Config) *CloudDatabasesV5 {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg.ServiceURL = server.URL
	if cfg.Authenticator == nil {
		cfg.Authenticator = NewNoAuthAuthenticator()
	}
	service, err := NewCloudDatabasesV5(cfg)
	assert.NoError(t, err)
	return service
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestGetConnectionPath(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/deployments/d1/users/database/u1/connections/public", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Empty(t, r.Header.Get("Content-Type"))
		writeJSON(w, http.StatusOK, `{"connection": `+postgresConnection+`}`)
	})

	result, response, err := service.GetConnection(context.Background(),
		NewGetConnectionOptions("d1", UserTypeDatabase, "u1", EndpointTypePublic))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, result, response.Result)

	conn, err := result.ConnectionFor(DeploymentTypePostgreSQL)
	assert.NoError(t, err)
	assert.Equal(t, "ibmclouddb", *conn.(*PostgreSQLConnection).Postgres.Database)
}

func TestGetConnectionCertificateRootQuery(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/etc/ssl/ca.pem", r.URL.Query().Get("certificate_root"))
		writeJSON(w, http.StatusOK, `{"connection": {}}`)
	})

	options := NewGetConnectionOptions("d1", UserTypeDatabase, "u1", EndpointTypePrivate).
		SetCertificateRoot("/etc/ssl/ca.pem")
	_, _, err := service.GetConnection(context.Background(), options)
	assert.NoError(t, err)
}

func TestEmptyPathParameterSendsNothing(t *testing.T) {
	var calls int32
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusOK, `{}`)
	})

	_, response, err := service.GetConnection(context.Background(),
		NewGetConnectionOptions("", UserTypeDatabase, "u1", EndpointTypePublic))
	assert.Nil(t, response)
	assert.Equal(t, &ArgumentError{Name: "id"}, err)

	_, _, err = service.DeleteAllowlistEntry(context.Background(), &DeleteAllowlistEntryOptions{ID: StringPtr("d1")})
	assert.Equal(t, &ArgumentError{Name: "ipaddress"}, err)

	_, _, err = service.GetTask(context.Background(), nil)
	assert.True(t, IsArgumentError(err))

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestPathParametersEscaped(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/deployments/crn:v1:a%2Fb%20c/allowlists/ip_addresses/10.0.0.0%2F8", r.URL.EscapedPath())
		writeJSON(w, http.StatusAccepted, taskBody)
	})

	result, response, err := service.DeleteAllowlistEntry(context.Background(),
		NewDeleteAllowlistEntryOptions("crn:v1:a/b c", "10.0.0.0/8"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, response.StatusCode)
	assert.Equal(t, "t1", *result.Task.ID)
}

func TestCreateDatabaseUserRequest(t *testing.T) {
	service := newTestServiceWithConfig(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/deployments/d1/users/database", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Contains(t, r.Header.Get("X-IBMCloud-SDK-Analytics"), "operation_id=create_database_user")
		assert.True(t, strings.HasPrefix(r.Header.Get("User-Agent"), "clouddatabases-go-sdk-"))
		assert.Equal(t, "caller", r.Header.Get("X-Default"))
		assert.Equal(t, "yes", r.Header.Get("X-Custom"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"user": {"username": "app", "password": "s3cret-passw0rd"}}`, string(body))
		writeJSON(w, http.StatusAccepted, taskBody)
	}, &Config{DefaultHeaders: http.Header{"X-Default": []string{"default"}}})

	user, err := NewUserDatabaseUser("app", "s3cret-passw0rd")
	assert.NoError(t, err)
	options := NewCreateDatabaseUserOptions("d1", UserTypeDatabase, user).
		SetHeaders(map[string]string{"X-Custom": "yes", "X-Default": "caller"})

	result, _, err := service.CreateDatabaseUser(context.Background(), options)
	assert.NoError(t, err)
	assert.Equal(t, TaskStatusRunning, *result.Task.Status)
}

func TestCreateDatabaseUserMissingPassword(t *testing.T) {
	var calls int32
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	options := NewCreateDatabaseUserOptions("d1", UserTypeDatabase, &UserDatabaseUser{Username: StringPtr("app")})
	_, _, err := service.CreateDatabaseUser(context.Background(), options)
	assert.Equal(t, &ModelError{Entity: "UserDatabaseUser", Field: "password"}, err)

	_, _, err = service.CreateDatabaseUser(context.Background(), NewCreateDatabaseUserOptions("d1", UserTypeDatabase, nil))
	assert.Equal(t, &ArgumentError{Name: "user"}, err)

	entries := []AllowlistEntry{{Address: StringPtr("1.2.3.4")}, {Description: StringPtr("missing")}}
	_, _, err = service.SetAllowlist(context.Background(), NewSetAllowlistOptions("d1").SetIPAddresses(entries))
	assert.Equal(t, &ModelError{Entity: "AllowlistEntry", Field: "address"}, err)

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestSetAllowlistRequest(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, `"etag-1"`, r.Header.Get("If-Match"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"ip_addresses": []}`, string(body))
		writeJSON(w, http.StatusAccepted, taskBody)
	})

	_, _, err := service.SetAllowlist(context.Background(), NewSetAllowlistOptions("d1").SetIfMatch(`"etag-1"`))
	assert.NoError(t, err)
}

func TestAddAllowlistEntryRequest(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"ip_address": {"address": "172.16.0.0/16", "description": "Dev IP space 3"}}`, string(body))
		writeJSON(w, http.StatusAccepted, taskBody)
	})

	entry, err := NewAllowlistEntry("172.16.0.0/16")
	assert.NoError(t, err)
	_, _, err = service.AddAllowlistEntry(context.Background(),
		NewAddAllowlistEntryOptions("d1", entry.SetDescription("Dev IP space 3")))
	assert.NoError(t, err)
}

func TestPromoteReadOnlyReplicaBody(t *testing.T) {
	var bodies []string
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodies = append(bodies, r.Header.Get("Content-Type")+"|"+string(body))
		writeJSON(w, http.StatusAccepted, taskBody)
	})

	_, _, err := service.PromoteReadOnlyReplica(context.Background(), NewPromoteReadOnlyReplicaOptions("r1"))
	assert.NoError(t, err)
	_, _, err = service.PromoteReadOnlyReplica(context.Background(),
		NewPromoteReadOnlyReplicaOptions("r1").SetSkipInitialBackup(true))
	assert.NoError(t, err)

	assert.Equal(t, []string{
		"|",
		`application/json|{"promotion":{"skip_initial_backup":true}}`,
	}, bodies)
}

func TestGetDefaultScalingGroupsQuery(t *testing.T) {
	var queries []string
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/deployables/postgresql/groups", r.URL.Path)
		queries = append(queries, r.URL.RawQuery)
		writeJSON(w, http.StatusOK, `{"groups": [{"id": "member", "count": 2, "memory": {"units": "mb", "allocation_mb": 8192}}]}`)
	})

	result, _, err := service.GetDefaultScalingGroups(context.Background(), NewGetDefaultScalingGroupsOptions(DeploymentTypePostgreSQL))
	assert.NoError(t, err)
	assert.Equal(t, int64(8192), *result.Groups[0].Memory.AllocationMb)

	_, _, err = service.GetDefaultScalingGroups(context.Background(),
		NewGetDefaultScalingGroupsOptions(DeploymentTypePostgreSQL).SetHostFlavor("multitenant"))
	assert.NoError(t, err)

	assert.Equal(t, []string{"", "host_flavor=multitenant"}, queries)
}

func TestSetDeploymentScalingGroupRequest(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/deployments/d1/groups/member", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"group": {"memory": {"allocation_mb": 12288}, "host_flavor": {"id": "b3c.4x16.encrypted"}}}`, string(body))
		writeJSON(w, http.StatusAccepted, taskBody)
	})

	group := &GroupScaling{
		Memory:     &GroupScalingMemory{AllocationMb: Int64Ptr(12288)},
		HostFlavor: &GroupScalingHostFlavor{ID: StringPtr("b3c.4x16.encrypted")},
	}
	_, _, err := service.SetDeploymentScalingGroup(context.Background(), NewSetDeploymentScalingGroupOptions("d1", "member", group))
	assert.NoError(t, err)

	_, _, err = service.SetDeploymentScalingGroup(context.Background(),
		NewSetDeploymentScalingGroupOptions("d1", "member", &GroupScaling{HostFlavor: &GroupScalingHostFlavor{}}))
	assert.Equal(t, &ModelError{Entity: "GroupScalingHostFlavor", Field: "id"}, err)
}

func TestReadOperations(t *testing.T) {
	routes := map[string]string{
		"/deployables":                                    `{"deployables": [{"type": "postgresql", "versions": [{"version": "16", "status": "stable", "is_preferred": true}]}]}`,
		"/regions":                                        `{"regions": ["us-south", "eu-de"]}`,
		"/deployments/d1":                                 `{"deployment": {"id": "d1", "type": "postgresql", "version": "16"}}`,
		"/deployments/d1/remotes":                         `{"remotes": {"leader": "", "replicas": ["r1"]}}`,
		"/deployments/d1/tasks":                           `{"tasks": [{"id": "t1", "status": "completed"}]}`,
		"/tasks/t1":                                       taskBody,
		"/backups/b1":                                     `{"backup": {"id": "b1", "type": "scheduled", "status": "completed", "created_at": "2024-05-01T00:00:00Z"}}`,
		"/deployments/d1/backups":                         `{"backups": [{"id": "b1"}, {"id": "b2"}]}`,
		"/deployments/d1/point_in_time_recovery_data":     `{"point_in_time_recovery_data": {"earliest_point_in_time_recovery_time": "2024-04-01T00:00:00Z"}}`,
		"/deployments/d1/groups":                          `{"groups": [{"id": "member", "count": 3}]}`,
		"/deployments/d1/groups/member/autoscaling":       `{"autoscaling": {"cpu": {"scalers": {}, "rate": {"units": "count"}}}}`,
		"/deployments/d1/allowlists/ip_addresses":         `{"ip_addresses": [{"address": "1.2.3.4", "description": "office"}]}`,
		"/deployments/d1/users/database/u1/connections/x": `{"connection": {}}`,
	}
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			writeJSON(w, http.StatusNotFound, `{"errors": "not found"}`)
			return
		}
		writeJSON(w, http.StatusOK, body)
	})
	ctx := context.Background()

	deployables, _, err := service.ListDeployables(ctx, NewListDeployablesOptions())
	assert.NoError(t, err)
	assert.Equal(t, "16", *deployables.Deployables[0].Versions[0].Version)

	regions, _, err := service.ListRegions(ctx, NewListRegionsOptions())
	assert.NoError(t, err)
	assert.Equal(t, []string{"us-south", "eu-de"}, regions.Regions)

	info, _, err := service.GetDeploymentInfo(ctx, NewGetDeploymentInfoOptions("d1"))
	assert.NoError(t, err)
	assert.Equal(t, DeploymentTypePostgreSQL, *info.Deployment.Type)

	remotes, _, err := service.ListRemotes(ctx, NewListRemotesOptions("d1"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"r1"}, remotes.Remotes.Replicas)

	tasks, _, err := service.ListDeploymentTasks(ctx, NewListDeploymentTasksOptions("d1"))
	assert.NoError(t, err)
	assert.True(t, tasks.Tasks[0].Done())

	task, _, err := service.GetTask(ctx, NewGetTaskOptions("t1"))
	assert.NoError(t, err)
	assert.Equal(t, int64(10), *task.Task.ProgressPercent)

	backup, _, err := service.GetBackupInfo(ctx, NewGetBackupInfoOptions("b1"))
	assert.NoError(t, err)
	assert.Equal(t, BackupTypeScheduled, *backup.Backup.Type)

	backups, _, err := service.ListDeploymentBackups(ctx, NewListDeploymentBackupsOptions("d1"))
	assert.NoError(t, err)
	assert.Len(t, backups.Backups, 2)

	pitr, _, err := service.GetPitrData(ctx, NewGetPitrDataOptions("d1"))
	assert.NoError(t, err)
	assert.Equal(t, "2024-04-01T00:00:00Z", *pitr.PointInTimeRecoveryData.EarliestPointInTimeRecoveryTime)

	groups, _, err := service.ListDeploymentScalingGroups(ctx, NewListDeploymentScalingGroupsOptions("d1"))
	assert.NoError(t, err)
	assert.Equal(t, int64(3), *groups.Find("member").Count)
	assert.Nil(t, groups.Find("analytics"))

	autoscaling, _, err := service.GetAutoscalingConditions(ctx, NewGetAutoscalingConditionsOptions("d1", "member"))
	assert.NoError(t, err)
	assert.Equal(t, AutoscalingUnitsCount, *autoscaling.Autoscaling.CPU.Rate.Units)

	allowlist, _, err := service.GetAllowlist(ctx, NewGetAllowlistOptions("d1"))
	assert.NoError(t, err)
	assert.Equal(t, "office", *allowlist.Find("1.2.3.4").Description)

	_, _, err = service.GetConnection(ctx, NewGetConnectionOptions("d1", "database", "u1", "x"))
	assert.NoError(t, err)
}

func TestWriteOperations(t *testing.T) {
	type call struct {
		method string
		path   string
		body   string
	}
	var calls []call
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, call{r.Method, r.URL.Path, string(body)})
		if strings.HasSuffix(r.URL.Path, "/connections/public") {
			writeJSON(w, http.StatusOK, `{"connection": {}}`)
			return
		}
		writeJSON(w, http.StatusAccepted, taskBody)
	})
	ctx := context.Background()

	update, err := NewUserUpdateRedisRoleSetting("-@all +@read")
	assert.NoError(t, err)
	_, _, err = service.UpdateUser(ctx, NewUpdateUserOptions("d1", UserTypeDatabase, "reader", update))
	assert.NoError(t, err)

	_, _, err = service.DeleteDatabaseUser(ctx, NewDeleteDatabaseUserOptions("d1", UserTypeDatabase, "reader"))
	assert.NoError(t, err)

	_, _, err = service.UpdateDatabaseConfiguration(ctx, NewUpdateDatabaseConfigurationOptions("d1",
		&ConfigurationRedisConfiguration{MaxmemoryPolicy: StringPtr(RedisMaxmemoryPolicyNoeviction)}))
	assert.NoError(t, err)

	_, _, err = service.ResyncReplica(ctx, NewResyncReplicaOptions("r1"))
	assert.NoError(t, err)

	_, _, err = service.StartOndemandBackup(ctx, NewStartOndemandBackupOptions("d1"))
	assert.NoError(t, err)

	_, _, err = service.CompleteConnection(ctx, NewCompleteConnectionOptions("d1", UserTypeDatabase, "admin", EndpointTypePublic).
		SetPassword("pw"))
	assert.NoError(t, err)

	_, _, err = service.SetAutoscalingConditions(ctx, NewSetAutoscalingConditionsOptions("d1", "member",
		&AutoscalingMemoryGroup{Memory: &AutoscalingMemoryGroupMemory{
			Rate: &AutoscalingMemoryGroupMemoryRate{IncreasePercent: Float64Ptr(10)},
		}}))
	assert.NoError(t, err)

	_, _, err = service.KillConnections(ctx, NewKillConnectionsOptions("d1"))
	assert.NoError(t, err)

	slot, err := NewLogicalReplicationSlot("slot1", "ibmclouddb", LogicalReplicationPluginWal2JSON)
	assert.NoError(t, err)
	_, _, err = service.CreateLogicalReplicationSlot(ctx, NewCreateLogicalReplicationSlotOptions("d1", slot))
	assert.NoError(t, err)

	_, _, err = service.DeleteLogicalReplicationSlot(ctx, NewDeleteLogicalReplicationSlotOptions("d1", "slot1"))
	assert.NoError(t, err)

	assert.Equal(t, []call{
		{http.MethodPatch, "/deployments/d1/users/database/reader", `{"user":{"role":"-@all +@read"}}`},
		{http.MethodDelete, "/deployments/d1/users/database/reader", ""},
		{http.MethodPatch, "/deployments/d1/configuration", `{"configuration":{"maxmemory-policy":"noeviction"}}`},
		{http.MethodPost, "/deployments/r1/remotes/resync", ""},
		{http.MethodPost, "/deployments/d1/backups", ""},
		{http.MethodPost, "/deployments/d1/users/database/admin/connections/public", `{"password":"pw"}`},
		{http.MethodPatch, "/deployments/d1/groups/member/autoscaling", `{"autoscaling":{"memory":{"rate":{"increase_percent":10}}}}`},
		{http.MethodDelete, "/deployments/d1/management/database_connections", ""},
		{http.MethodPost, "/deployments/d1/postgresql/logical_replication_slots", `{"logical_replication_slot":{"name":"slot1","database_name":"ibmclouddb","plugin_type":"wal2json"}}`},
		{http.MethodDelete, "/deployments/d1/postgresql/logical_replication_slots/slot1", ""},
	}, calls)
}

func TestServiceError(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", "trace-1")
		writeJSON(w, http.StatusNotFound, `{"errors": "Deployment not found"}`)
	})

	result, response, err := service.GetDeploymentInfo(context.Background(), NewGetDeploymentInfoOptions("d1"))
	assert.Nil(t, result)
	assert.Equal(t, http.StatusNotFound, response.StatusCode)

	serviceErr, ok := IsServiceError(err)
	assert.True(t, ok)
	assert.Equal(t, "trace-1", serviceErr.TraceID)
	assert.Equal(t, "/deployments/d1", serviceErr.Path)
	assert.Equal(t, `[GET /deployments/d1][failed with status 404][trace-1] {"errors": "Deployment not found"}`, err.Error())

	m, ok := response.GetResultAsMap()
	assert.True(t, ok)
	assert.Equal(t, "Deployment not found", m["errors"])
}

func TestResponseMissingRequiredField(t *testing.T) {
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})

	_, response, err := service.GetConnection(context.Background(),
		NewGetConnectionOptions("d1", UserTypeDatabase, "u1", EndpointTypePublic))
	assert.Equal(t, &ModelError{Entity: "GetConnectionResponse", Field: "connection"}, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
}

func TestNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	service, err := NewCloudDatabasesV5(&Config{ServiceURL: server.URL, Authenticator: NewNoAuthAuthenticator()})
	assert.NoError(t, err)

	_, response, err := service.ListRegions(context.Background(), NewListRegionsOptions())
	assert.Error(t, err)
	assert.Nil(t, response)
	_, ok := IsServiceError(err)
	assert.False(t, ok)
	assert.False(t, IsArgumentError(err))
}

func TestCanceledContext(t *testing.T) {
	var calls int32
	service := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := service.ListRegions(ctx, NewListRegionsOptions())
	assert.Error(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Errorf(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warnf(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Debugf(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func TestDebugLogging(t *testing.T) {
	logger := &recordingLogger{}
	service := newTestServiceWithConfig(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"regions": ["us-south"]}`)
	}, &Config{Logger: logger, Debug: true})

	_, _, err := service.ListRegions(context.Background(), NewListRegionsOptions())
	assert.NoError(t, err)
	assert.NotEmpty(t, logger.lines)

	var found bool
	for _, line := range logger.lines {
		if strings.Contains(line, "method GET") && strings.Contains(line, "/regions") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestUserAgentOverride(t *testing.T) {
	service := newTestServiceWithConfig(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "terraform-provider-clouddatabases/dev", r.Header.Get("User-Agent"))
		writeJSON(w, http.StatusOK, `{}`)
	}, &Config{UserAgent: "terraform-provider-clouddatabases/dev"})

	_, _, err := service.ListRegions(context.Background(), NewListRegionsOptions())
	assert.NoError(t, err)
}

func TestResolvePath(t *testing.T) {
	path, err := resolvePath("/deployments/{id}/groups/{group_id}", map[string]string{"id": "d 1", "group_id": "member"})
	assert.NoError(t, err)
	assert.Equal(t, "/deployments/d%201/groups/member", path)

	_, err = resolvePath("/deployments/{id}/groups/{group_id}", map[string]string{"id": "d1"})
	assert.Equal(t, &ArgumentError{Name: "group_id"}, err)

	_, err = resolvePath("/deployments/{id", map[string]string{"id": "d1"})
	assert.Error(t, err)
}

func TestDetailedResponseGenericResult(t *testing.T) {
	r := &DetailedResponse{RawResult: []byte(`not json`)}
	_, ok := r.GetResultAsMap()
	assert.False(t, ok)

	b, err := json.Marshal(map[string]int{"a": 1})
	assert.NoError(t, err)
	r.RawResult = b
	m, ok := r.GetResultAsMap()
	assert.True(t, ok)
	assert.Equal(t, float64(1), m["a"])
}
