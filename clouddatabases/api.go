package clouddatabases

import (
	"context"

	"github.com/go-resty/resty/v2"
)

// CloudDatabasesClient is the set of operations of the Cloud Databases v5 API.
type CloudDatabasesClient interface {
	ListDeployables(ctx context.Context, options *ListDeployablesOptions) (*ListDeployablesResponse, *DetailedResponse, error)
	ListRegions(ctx context.Context, options *ListRegionsOptions) (*ListRegionsResponse, *DetailedResponse, error)
	GetDeploymentInfo(ctx context.Context, options *GetDeploymentInfoOptions) (*GetDeploymentInfoResponse, *DetailedResponse, error)
	CreateDatabaseUser(ctx context.Context, options *CreateDatabaseUserOptions) (*CreateDatabaseUserResponse, *DetailedResponse, error)
	UpdateUser(ctx context.Context, options *UpdateUserOptions) (*UpdateUserResponse, *DetailedResponse, error)
	DeleteDatabaseUser(ctx context.Context, options *DeleteDatabaseUserOptions) (*DeleteDatabaseUserResponse, *DetailedResponse, error)
	UpdateDatabaseConfiguration(ctx context.Context, options *UpdateDatabaseConfigurationOptions) (*UpdateDatabaseConfigurationResponse, *DetailedResponse, error)
	ListRemotes(ctx context.Context, options *ListRemotesOptions) (*ListRemotesResponse, *DetailedResponse, error)
	ResyncReplica(ctx context.Context, options *ResyncReplicaOptions) (*ResyncReplicaResponse, *DetailedResponse, error)
	PromoteReadOnlyReplica(ctx context.Context, options *PromoteReadOnlyReplicaOptions) (*PromoteReadOnlyReplicaResponse, *DetailedResponse, error)
	ListDeploymentTasks(ctx context.Context, options *ListDeploymentTasksOptions) (*Tasks, *DetailedResponse, error)
	GetTask(ctx context.Context, options *GetTaskOptions) (*GetTaskResponse, *DetailedResponse, error)
	GetBackupInfo(ctx context.Context, options *GetBackupInfoOptions) (*GetBackupInfoResponse, *DetailedResponse, error)
	ListDeploymentBackups(ctx context.Context, options *ListDeploymentBackupsOptions) (*Backups, *DetailedResponse, error)
	StartOndemandBackup(ctx context.Context, options *StartOndemandBackupOptions) (*StartOndemandBackupResponse, *DetailedResponse, error)
	GetPitrData(ctx context.Context, options *GetPitrDataOptions) (*GetPitrDataResponse, *DetailedResponse, error)
	GetConnection(ctx context.Context, options *GetConnectionOptions) (*GetConnectionResponse, *DetailedResponse, error)
	CompleteConnection(ctx context.Context, options *CompleteConnectionOptions) (*CompleteConnectionResponse, *DetailedResponse, error)
	ListDeploymentScalingGroups(ctx context.Context, options *ListDeploymentScalingGroupsOptions) (*ListDeploymentScalingGroupsResponse, *DetailedResponse, error)
	GetDefaultScalingGroups(ctx context.Context, options *GetDefaultScalingGroupsOptions) (*GetDefaultScalingGroupsResponse, *DetailedResponse, error)
	SetDeploymentScalingGroup(ctx context.Context, options *SetDeploymentScalingGroupOptions) (*SetDeploymentScalingGroupResponse, *DetailedResponse, error)
	GetAutoscalingConditions(ctx context.Context, options *GetAutoscalingConditionsOptions) (*AutoscalingGroup, *DetailedResponse, error)
	SetAutoscalingConditions(ctx context.Context, options *SetAutoscalingConditionsOptions) (*SetAutoscalingConditionsResponse, *DetailedResponse, error)
	KillConnections(ctx context.Context, options *KillConnectionsOptions) (*KillConnectionsResponse, *DetailedResponse, error)
	CreateLogicalReplicationSlot(ctx context.Context, options *CreateLogicalReplicationSlotOptions) (*CreateLogicalReplicationSlotResponse, *DetailedResponse, error)
	DeleteLogicalReplicationSlot(ctx context.Context, options *DeleteLogicalReplicationSlotOptions) (*DeleteLogicalReplicationSlotResponse, *DetailedResponse, error)
	GetAllowlist(ctx context.Context, options *GetAllowlistOptions) (*GetAllowlistResponse, *DetailedResponse, error)
	SetAllowlist(ctx context.Context, options *SetAllowlistOptions) (*SetAllowlistResponse, *DetailedResponse, error)
	AddAllowlistEntry(ctx context.Context, options *AddAllowlistEntryOptions) (*AddAllowlistEntryResponse, *DetailedResponse, error)
	DeleteAllowlistEntry(ctx context.Context, options *DeleteAllowlistEntryOptions) (*DeleteAllowlistEntryResponse, *DetailedResponse, error)
}

var _ CloudDatabasesClient = (*CloudDatabasesV5)(nil)

type getConnectionQuery struct {
	CertificateRoot string `schema:"certificate_root,omitempty"`
}

type getDefaultScalingGroupsQuery struct {
	HostFlavor string `schema:"host_flavor,omitempty"`
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ListDeployables lists the database types that can be provisioned, with
// their versions.
func (c *CloudDatabasesV5) ListDeployables(ctx context.Context, options *ListDeployablesOptions) (*ListDeployablesResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("list_deployables", resty.MethodGet, "/deployables", nil)
	req.withHeaders(options.Headers)

	var result ListDeployablesResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

// ListRegions lists the regions deployments can be created in.
func (c *CloudDatabasesV5) ListRegions(ctx context.Context, options *ListRegionsOptions) (*ListRegionsResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("list_regions", resty.MethodGet, "/regions", nil)
	req.withHeaders(options.Headers)

	var result ListRegionsResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

// GetDeploymentInfo returns the metadata of a deployment.
func (c *CloudDatabasesV5) GetDeploymentInfo(ctx context.Context, options *GetDeploymentInfoOptions) (*GetDeploymentInfoResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("get_deployment_info", resty.MethodGet, "/deployments/{id}", map[string]string{
		"id": *options.ID,
	})
	req.withHeaders(options.Headers)

	var result GetDeploymentInfoResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

// CreateDatabaseUser creates a user on a deployment. The returned task tracks
// its progress.
func (c *CloudDatabasesV5) CreateDatabaseUser(ctx context.Context, options *CreateDatabaseUserOptions) (*CreateDatabaseUserResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("create_database_user", resty.MethodPost, "/deployments/{id}/users/{user_type}", map[string]string{
		"id":        *options.ID,
		"user_type": *options.UserType,
	})
	req.withBody(&createDatabaseUserBody{User: options.User})
	req.withHeaders(options.Headers)

	var result CreateDatabaseUserResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) UpdateUser(ctx context.Context, options *UpdateUserOptions) (*UpdateUserResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("update_user", resty.MethodPatch, "/deployments/{id}/users/{user_type}/{username}", map[string]string{
		"id":        *options.ID,
		"user_type": *options.UserType,
		"username":  *options.Username,
	})
	req.withBody(&updateUserBody{User: options.User})
	req.withHeaders(options.Headers)

	var result UpdateUserResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) DeleteDatabaseUser(ctx context.Context, options *DeleteDatabaseUserOptions) (*DeleteDatabaseUserResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("delete_database_user", resty.MethodDelete, "/deployments/{id}/users/{user_type}/{username}", map[string]string{
		"id":        *options.ID,
		"user_type": *options.UserType,
		"username":  *options.Username,
	})
	req.withHeaders(options.Headers)

	var result DeleteDatabaseUserResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

// UpdateDatabaseConfiguration changes the engine configuration of a
// deployment. Some settings restart the database.
func (c *CloudDatabasesV5) UpdateDatabaseConfiguration(ctx context.Context, options *UpdateDatabaseConfigurationOptions) (*UpdateDatabaseConfigurationResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("update_database_configuration", resty.MethodPatch, "/deployments/{id}/configuration", map[string]string{
		"id": *options.ID,
	})
	req.withBody(&updateDatabaseConfigurationBody{Configuration: options.Configuration})
	req.withHeaders(options.Headers)

	var result UpdateDatabaseConfigurationResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) ListRemotes(ctx context.Context, options *ListRemotesOptions) (*ListRemotesResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("list_remotes", resty.MethodGet, "/deployments/{id}/remotes", map[string]string{
		"id": *options.ID,
	})
	req.withHeaders(options.Headers)

	var result ListRemotesResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

// ResyncReplica re-syncs a read-only replica with its leader.
func (c *CloudDatabasesV5) ResyncReplica(ctx context.Context, options *ResyncReplicaOptions) (*ResyncReplicaResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("resync_replica", resty.MethodPost, "/deployments/{id}/remotes/resync", map[string]string{
		"id": *options.ID,
	})
	req.withHeaders(options.Headers)

	var result ResyncReplicaResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) PromoteReadOnlyReplica(ctx context.Context, options *PromoteReadOnlyReplicaOptions) (*PromoteReadOnlyReplicaResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("promote_read_only_replica", resty.MethodPost, "/deployments/{id}/remotes/promotion", map[string]string{
		"id": *options.ID,
	})
	if options.SkipInitialBackup != nil {
		req.withBody(&promoteReadOnlyReplicaBody{
			Promotion: &replicaPromotion{SkipInitialBackup: options.SkipInitialBackup},
		})
	}
	req.withHeaders(options.Headers)

	var result PromoteReadOnlyReplicaResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) ListDeploymentTasks(ctx context.Context, options *ListDeploymentTasksOptions) (*Tasks, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("list_deployment_tasks", resty.MethodGet, "/deployments/{id}/tasks", map[string]string{
		"id": *options.ID,
	})
	req.withHeaders(options.Headers)

	var result Tasks
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) GetTask(ctx context.Context, options *GetTaskOptions) (*GetTaskResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("get_task", resty.MethodGet, "/tasks/{id}", map[string]string{
		"id": *options.ID,
	})
	req.withHeaders(options.Headers)

	var result GetTaskResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) GetBackupInfo(ctx context.Context, options *GetBackupInfoOptions) (*GetBackupInfoResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("get_backup_info", resty.MethodGet, "/backups/{backup_id}", map[string]string{
		"backup_id": *options.BackupID,
	})
	req.withHeaders(options.Headers)

	var result GetBackupInfoResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) ListDeploymentBackups(ctx context.Context, options *ListDeploymentBackupsOptions) (*Backups, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("list_deployment_backups", resty.MethodGet, "/deployments/{id}/backups", map[string]string{
		"id": *options.ID,
	})
	req.withHeaders(options.Headers)

	var result Backups
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) StartOndemandBackup(ctx context.Context, options *StartOndemandBackupOptions) (*StartOndemandBackupResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("start_ondemand_backup", resty.MethodPost, "/deployments/{id}/backups", map[string]string{
		"id": *options.ID,
	})
	req.withHeaders(options.Headers)

	var result StartOndemandBackupResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

// GetPitrData returns the earliest time a deployment can be restored to.
func (c *CloudDatabasesV5) GetPitrData(ctx context.Context, options *GetPitrDataOptions) (*GetPitrDataResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("get_pitr_data", resty.MethodGet, "/deployments/{id}/point_in_time_recovery_data", map[string]string{
		"id": *options.ID,
	})
	req.withHeaders(options.Headers)

	var result GetPitrDataResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

// GetConnection returns the connection strings of a user. Decode them with
// GetConnectionResponse.ConnectionFor.
func (c *CloudDatabasesV5) GetConnection(ctx context.Context, options *GetConnectionOptions) (*GetConnectionResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("get_connection", resty.MethodGet, "/deployments/{id}/users/{user_type}/{user_id}/connections/{endpoint_type}", map[string]string{
		"id":            *options.ID,
		"user_type":     *options.UserType,
		"user_id":       *options.UserID,
		"endpoint_type": *options.EndpointType,
	})
	req, err := req.withQuery(&getConnectionQuery{CertificateRoot: stringValue(options.CertificateRoot)})
	if err != nil {
		return nil, nil, err
	}
	req.withHeaders(options.Headers)

	var result GetConnectionResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) CompleteConnection(ctx context.Context, options *CompleteConnectionOptions) (*CompleteConnectionResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("complete_connection", resty.MethodPost, "/deployments/{id}/users/{user_type}/{user_id}/connections/{endpoint_type}", map[string]string{
		"id":            *options.ID,
		"user_type":     *options.UserType,
		"user_id":       *options.UserID,
		"endpoint_type": *options.EndpointType,
	})
	req.withBody(&completeConnectionBody{Password: options.Password, CertificateRoot: options.CertificateRoot})
	req.withHeaders(options.Headers)

	var result CompleteConnectionResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) ListDeploymentScalingGroups(ctx context.Context, options *ListDeploymentScalingGroupsOptions) (*ListDeploymentScalingGroupsResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("list_deployment_scaling_groups", resty.MethodGet, "/deployments/{id}/groups", map[string]string{
		"id": *options.ID,
	})
	req.withHeaders(options.Headers)

	var result ListDeploymentScalingGroupsResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) GetDefaultScalingGroups(ctx context.Context, options *GetDefaultScalingGroupsOptions) (*GetDefaultScalingGroupsResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("get_default_scaling_groups", resty.MethodGet, "/deployables/{type}/groups", map[string]string{
		"type": *options.Type,
	})
	req, err := req.withQuery(&getDefaultScalingGroupsQuery{HostFlavor: stringValue(options.HostFlavor)})
	if err != nil {
		return nil, nil, err
	}
	req.withHeaders(options.Headers)

	var result GetDefaultScalingGroupsResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

// SetDeploymentScalingGroup scales the members, memory, CPU or disk of a
// group.
func (c *CloudDatabasesV5) SetDeploymentScalingGroup(ctx context.Context, options *SetDeploymentScalingGroupOptions) (*SetDeploymentScalingGroupResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("set_deployment_scaling_group", resty.MethodPatch, "/deployments/{id}/groups/{group_id}", map[string]string{
		"id":       *options.ID,
		"group_id": *options.GroupID,
	})
	req.withBody(&setDeploymentScalingGroupBody{Group: options.Group})
	req.withHeaders(options.Headers)

	var result SetDeploymentScalingGroupResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) GetAutoscalingConditions(ctx context.Context, options *GetAutoscalingConditionsOptions) (*AutoscalingGroup, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("get_autoscaling_conditions", resty.MethodGet, "/deployments/{id}/groups/{group_id}/autoscaling", map[string]string{
		"id":       *options.ID,
		"group_id": *options.GroupID,
	})
	req.withHeaders(options.Headers)

	var result AutoscalingGroup
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) SetAutoscalingConditions(ctx context.Context, options *SetAutoscalingConditionsOptions) (*SetAutoscalingConditionsResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("set_autoscaling_conditions", resty.MethodPatch, "/deployments/{id}/groups/{group_id}/autoscaling", map[string]string{
		"id":       *options.ID,
		"group_id": *options.GroupID,
	})
	req.withBody(&setAutoscalingConditionsBody{Autoscaling: options.Autoscaling})
	req.withHeaders(options.Headers)

	var result SetAutoscalingConditionsResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

// KillConnections closes every client connection to the deployment.
func (c *CloudDatabasesV5) KillConnections(ctx context.Context, options *KillConnectionsOptions) (*KillConnectionsResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("kill_connections", resty.MethodDelete, "/deployments/{id}/management/database_connections", map[string]string{
		"id": *options.ID,
	})
	req.withHeaders(options.Headers)

	var result KillConnectionsResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) CreateLogicalReplicationSlot(ctx context.Context, options *CreateLogicalReplicationSlotOptions) (*CreateLogicalReplicationSlotResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("create_logical_replication_slot", resty.MethodPost, "/deployments/{id}/postgresql/logical_replication_slots", map[string]string{
		"id": *options.ID,
	})
	req.withBody(&createLogicalReplicationSlotBody{LogicalReplicationSlot: options.LogicalReplicationSlot})
	req.withHeaders(options.Headers)

	var result CreateLogicalReplicationSlotResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) DeleteLogicalReplicationSlot(ctx context.Context, options *DeleteLogicalReplicationSlotOptions) (*DeleteLogicalReplicationSlotResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("delete_logical_replication_slot", resty.MethodDelete, "/deployments/{id}/postgresql/logical_replication_slots/{name}", map[string]string{
		"id":   *options.ID,
		"name": *options.Name,
	})
	req.withHeaders(options.Headers)

	var result DeleteLogicalReplicationSlotResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) GetAllowlist(ctx context.Context, options *GetAllowlistOptions) (*GetAllowlistResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("get_allowlist", resty.MethodGet, "/deployments/{id}/allowlists/ip_addresses", map[string]string{
		"id": *options.ID,
	})
	req.withHeaders(options.Headers)

	var result GetAllowlistResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

// SetAllowlist replaces the allowlist. An empty list removes every entry.
func (c *CloudDatabasesV5) SetAllowlist(ctx context.Context, options *SetAllowlistOptions) (*SetAllowlistResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("set_allowlist", resty.MethodPut, "/deployments/{id}/allowlists/ip_addresses", map[string]string{
		"id": *options.ID,
	})
	req.withBody(setAllowlistBody{IPAddresses: options.IPAddresses})
	if options.IfMatch != nil {
		req.withHeaders(map[string]string{"If-Match": *options.IfMatch})
	}
	req.withHeaders(options.Headers)

	var result SetAllowlistResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) AddAllowlistEntry(ctx context.Context, options *AddAllowlistEntryOptions) (*AddAllowlistEntryResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("add_allowlist_entry", resty.MethodPost, "/deployments/{id}/allowlists/ip_addresses", map[string]string{
		"id": *options.ID,
	})
	req.withBody(&addAllowlistEntryBody{IPAddress: options.IPAddress})
	req.withHeaders(options.Headers)

	var result AddAllowlistEntryResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}

func (c *CloudDatabasesV5) DeleteAllowlistEntry(ctx context.Context, options *DeleteAllowlistEntryOptions) (*DeleteAllowlistEntryResponse, *DetailedResponse, error) {
	if err := validateOptions(options, "options"); err != nil {
		return nil, nil, err
	}
	req := newAPIRequest("delete_allowlist_entry", resty.MethodDelete, "/deployments/{id}/allowlists/ip_addresses/{ipaddress}", map[string]string{
		"id":        *options.ID,
		"ipaddress": *options.Ipaddress,
	})
	req.withHeaders(options.Headers)

	var result DeleteAllowlistEntryResponse
	response, err := c.doRequest(ctx, req, &result)
	if err != nil {
		return nil, response, err
	}
	return &result, response, nil
}
