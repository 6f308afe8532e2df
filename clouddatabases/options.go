package clouddatabases

// ListDeployablesOptions lists the database types that can be provisioned.
type ListDeployablesOptions struct {
	Headers map[string]string
}

func NewListDeployablesOptions() *ListDeployablesOptions {
	return &ListDeployablesOptions{}
}

func (o *ListDeployablesOptions) SetHeaders(headers map[string]string) *ListDeployablesOptions {
	o.Headers = headers
	return o
}

type ListRegionsOptions struct {
	Headers map[string]string
}

func NewListRegionsOptions() *ListRegionsOptions {
	return &ListRegionsOptions{}
}

func (o *ListRegionsOptions) SetHeaders(headers map[string]string) *ListRegionsOptions {
	o.Headers = headers
	return o
}

// GetDeploymentInfoOptions selects the deployment to describe.
type GetDeploymentInfoOptions struct {
	ID      *string `json:"id" validate:"required,ne="`
	Headers map[string]string
}

func NewGetDeploymentInfoOptions(id string) *GetDeploymentInfoOptions {
	return &GetDeploymentInfoOptions{
		ID: &id,
	}
}

func (o *GetDeploymentInfoOptions) SetID(id string) *GetDeploymentInfoOptions {
	o.ID = &id
	return o
}

func (o *GetDeploymentInfoOptions) SetHeaders(headers map[string]string) *GetDeploymentInfoOptions {
	o.Headers = headers
	return o
}

// CreateDatabaseUserOptions creates User on a deployment. UserType is usually
// "database".
type CreateDatabaseUserOptions struct {
	ID       *string `json:"id" validate:"required,ne="`
	UserType *string `json:"user_type" validate:"required,ne="`
	User     User    `json:"user" validate:"required"`
	Headers  map[string]string
}

func NewCreateDatabaseUserOptions(id, userType string, user User) *CreateDatabaseUserOptions {
	return &CreateDatabaseUserOptions{
		ID:       &id,
		UserType: &userType,
		User:     user,
	}
}

func (o *CreateDatabaseUserOptions) SetID(id string) *CreateDatabaseUserOptions {
	o.ID = &id
	return o
}

func (o *CreateDatabaseUserOptions) SetUserType(userType string) *CreateDatabaseUserOptions {
	o.UserType = &userType
	return o
}

func (o *CreateDatabaseUserOptions) SetUser(user User) *CreateDatabaseUserOptions {
	o.User = user
	return o
}

func (o *CreateDatabaseUserOptions) SetHeaders(headers map[string]string) *CreateDatabaseUserOptions {
	o.Headers = headers
	return o
}

// UpdateUserOptions changes the password or the Redis role of a user.
type UpdateUserOptions struct {
	ID       *string    `json:"id" validate:"required,ne="`
	UserType *string    `json:"user_type" validate:"required,ne="`
	Username *string    `json:"username" validate:"required,ne="`
	User     UserUpdate `json:"user" validate:"required"`
	Headers  map[string]string
}

func NewUpdateUserOptions(id, userType, username string, user UserUpdate) *UpdateUserOptions {
	return &UpdateUserOptions{
		ID:       &id,
		UserType: &userType,
		Username: &username,
		User:     user,
	}
}

func (o *UpdateUserOptions) SetID(id string) *UpdateUserOptions {
	o.ID = &id
	return o
}

func (o *UpdateUserOptions) SetUserType(userType string) *UpdateUserOptions {
	o.UserType = &userType
	return o
}

func (o *UpdateUserOptions) SetUsername(username string) *UpdateUserOptions {
	o.Username = &username
	return o
}

func (o *UpdateUserOptions) SetUser(user UserUpdate) *UpdateUserOptions {
	o.User = user
	return o
}

func (o *UpdateUserOptions) SetHeaders(headers map[string]string) *UpdateUserOptions {
	o.Headers = headers
	return o
}

type DeleteDatabaseUserOptions struct {
	ID       *string `json:"id" validate:"required,ne="`
	UserType *string `json:"user_type" validate:"required,ne="`
	Username *string `json:"username" validate:"required,ne="`
	Headers  map[string]string
}

func NewDeleteDatabaseUserOptions(id, userType, username string) *DeleteDatabaseUserOptions {
	return &DeleteDatabaseUserOptions{
		ID:       &id,
		UserType: &userType,
		Username: &username,
	}
}

func (o *DeleteDatabaseUserOptions) SetID(id string) *DeleteDatabaseUserOptions {
	o.ID = &id
	return o
}

func (o *DeleteDatabaseUserOptions) SetUserType(userType string) *DeleteDatabaseUserOptions {
	o.UserType = &userType
	return o
}

func (o *DeleteDatabaseUserOptions) SetUsername(username string) *DeleteDatabaseUserOptions {
	o.Username = &username
	return o
}

func (o *DeleteDatabaseUserOptions) SetHeaders(headers map[string]string) *DeleteDatabaseUserOptions {
	o.Headers = headers
	return o
}

type UpdateDatabaseConfigurationOptions struct {
	ID            *string       `json:"id" validate:"required,ne="`
	Configuration Configuration `json:"configuration" validate:"required"`
	Headers       map[string]string
}

func NewUpdateDatabaseConfigurationOptions(id string, configuration Configuration) *UpdateDatabaseConfigurationOptions {
	return &UpdateDatabaseConfigurationOptions{
		ID:            &id,
		Configuration: configuration,
	}
}

func (o *UpdateDatabaseConfigurationOptions) SetID(id string) *UpdateDatabaseConfigurationOptions {
	o.ID = &id
	return o
}

func (o *UpdateDatabaseConfigurationOptions) SetConfiguration(configuration Configuration) *UpdateDatabaseConfigurationOptions {
	o.Configuration = configuration
	return o
}

func (o *UpdateDatabaseConfigurationOptions) SetHeaders(headers map[string]string) *UpdateDatabaseConfigurationOptions {
	o.Headers = headers
	return o
}

type ListRemotesOptions struct {
	ID      *string `json:"id" validate:"required,ne="`
	Headers map[string]string
}

func NewListRemotesOptions(id string) *ListRemotesOptions {
	return &ListRemotesOptions{
		ID: &id,
	}
}

func (o *ListRemotesOptions) SetID(id string) *ListRemotesOptions {
	o.ID = &id
	return o
}

func (o *ListRemotesOptions) SetHeaders(headers map[string]string) *ListRemotesOptions {
	o.Headers = headers
	return o
}

type ResyncReplicaOptions struct {
	ID      *string `json:"id" validate:"required,ne="`
	Headers map[string]string
}

func NewResyncReplicaOptions(id string) *ResyncReplicaOptions {
	return &ResyncReplicaOptions{
		ID: &id,
	}
}

func (o *ResyncReplicaOptions) SetID(id string) *ResyncReplicaOptions {
	o.ID = &id
	return o
}

func (o *ResyncReplicaOptions) SetHeaders(headers map[string]string) *ResyncReplicaOptions {
	o.Headers = headers
	return o
}

// PromoteReadOnlyReplicaOptions turns a read-only replica into a standalone
// deployment.
type PromoteReadOnlyReplicaOptions struct {
	ID                *string `json:"id" validate:"required,ne="`
	SkipInitialBackup *bool   `json:"skip_initial_backup,omitempty"`
	Headers           map[string]string
}

func NewPromoteReadOnlyReplicaOptions(id string) *PromoteReadOnlyReplicaOptions {
	return &PromoteReadOnlyReplicaOptions{
		ID: &id,
	}
}

func (o *PromoteReadOnlyReplicaOptions) SetID(id string) *PromoteReadOnlyReplicaOptions {
	o.ID = &id
	return o
}

func (o *PromoteReadOnlyReplicaOptions) SetSkipInitialBackup(skipInitialBackup bool) *PromoteReadOnlyReplicaOptions {
	o.SkipInitialBackup = &skipInitialBackup
	return o
}

func (o *PromoteReadOnlyReplicaOptions) SetHeaders(headers map[string]string) *PromoteReadOnlyReplicaOptions {
	o.Headers = headers
	return o
}

type ListDeploymentTasksOptions struct {
	ID      *string `json:"id" validate:"required,ne="`
	Headers map[string]string
}

func NewListDeploymentTasksOptions(id string) *ListDeploymentTasksOptions {
	return &ListDeploymentTasksOptions{
		ID: &id,
	}
}

func (o *ListDeploymentTasksOptions) SetID(id string) *ListDeploymentTasksOptions {
	o.ID = &id
	return o
}

func (o *ListDeploymentTasksOptions) SetHeaders(headers map[string]string) *ListDeploymentTasksOptions {
	o.Headers = headers
	return o
}

type GetTaskOptions struct {
	ID      *string `json:"id" validate:"required,ne="`
	Headers map[string]string
}

func NewGetTaskOptions(id string) *GetTaskOptions {
	return &GetTaskOptions{
		ID: &id,
	}
}

func (o *GetTaskOptions) SetID(id string) *GetTaskOptions {
	o.ID = &id
	return o
}

func (o *GetTaskOptions) SetHeaders(headers map[string]string) *GetTaskOptions {
	o.Headers = headers
	return o
}

type GetBackupInfoOptions struct {
	BackupID *string `json:"backup_id" validate:"required,ne="`
	Headers  map[string]string
}

func NewGetBackupInfoOptions(backupID string) *GetBackupInfoOptions {
	return &GetBackupInfoOptions{
		BackupID: &backupID,
	}
}

func (o *GetBackupInfoOptions) SetBackupID(backupID string) *GetBackupInfoOptions {
	o.BackupID = &backupID
	return o
}

func (o *GetBackupInfoOptions) SetHeaders(headers map[string]string) *GetBackupInfoOptions {
	o.Headers = headers
	return o
}

type ListDeploymentBackupsOptions struct {
	ID      *string `json:"id" validate:"required,ne="`
	Headers map[string]string
}

func NewListDeploymentBackupsOptions(id string) *ListDeploymentBackupsOptions {
	return &ListDeploymentBackupsOptions{
		ID: &id,
	}
}

func (o *ListDeploymentBackupsOptions) SetID(id string) *ListDeploymentBackupsOptions {
	o.ID = &id
	return o
}

func (o *ListDeploymentBackupsOptions) SetHeaders(headers map[string]string) *ListDeploymentBackupsOptions {
	o.Headers = headers
	return o
}

type StartOndemandBackupOptions struct {
	ID      *string `json:"id" validate:"required,ne="`
	Headers map[string]string
}

func NewStartOndemandBackupOptions(id string) *StartOndemandBackupOptions {
	return &StartOndemandBackupOptions{
		ID: &id,
	}
}

func (o *StartOndemandBackupOptions) SetID(id string) *StartOndemandBackupOptions {
	o.ID = &id
	return o
}

func (o *StartOndemandBackupOptions) SetHeaders(headers map[string]string) *StartOndemandBackupOptions {
	o.Headers = headers
	return o
}

type GetPitrDataOptions struct {
	ID      *string `json:"id" validate:"required,ne="`
	Headers map[string]string
}

func NewGetPitrDataOptions(id string) *GetPitrDataOptions {
	return &GetPitrDataOptions{
		ID: &id,
	}
}

func (o *GetPitrDataOptions) SetID(id string) *GetPitrDataOptions {
	o.ID = &id
	return o
}

func (o *GetPitrDataOptions) SetHeaders(headers map[string]string) *GetPitrDataOptions {
	o.Headers = headers
	return o
}

// GetConnectionOptions selects the connection strings of a user.
// CertificateRoot, when set, is the path where the CA certificate is expected
// on the client.
type GetConnectionOptions struct {
	ID              *string `json:"id" validate:"required,ne="`
	UserType        *string `json:"user_type" validate:"required,ne="`
	UserID          *string `json:"user_id" validate:"required,ne="`
	EndpointType    *string `json:"endpoint_type" validate:"required,ne="`
	CertificateRoot *string `json:"certificate_root,omitempty"`
	Headers         map[string]string
}

func NewGetConnectionOptions(id, userType, userID, endpointType string) *GetConnectionOptions {
	return &GetConnectionOptions{
		ID:           &id,
		UserType:     &userType,
		UserID:       &userID,
		EndpointType: &endpointType,
	}
}

func (o *GetConnectionOptions) SetID(id string) *GetConnectionOptions {
	o.ID = &id
	return o
}

func (o *GetConnectionOptions) SetUserType(userType string) *GetConnectionOptions {
	o.UserType = &userType
	return o
}

func (o *GetConnectionOptions) SetUserID(userID string) *GetConnectionOptions {
	o.UserID = &userID
	return o
}

func (o *GetConnectionOptions) SetEndpointType(endpointType string) *GetConnectionOptions {
	o.EndpointType = &endpointType
	return o
}

func (o *GetConnectionOptions) SetCertificateRoot(certificateRoot string) *GetConnectionOptions {
	o.CertificateRoot = &certificateRoot
	return o
}

func (o *GetConnectionOptions) SetHeaders(headers map[string]string) *GetConnectionOptions {
	o.Headers = headers
	return o
}

// CompleteConnectionOptions is GetConnection with the user's password filled
// in.
type CompleteConnectionOptions struct {
	ID              *string `json:"id" validate:"required,ne="`
	UserType        *string `json:"user_type" validate:"required,ne="`
	UserID          *string `json:"user_id" validate:"required,ne="`
	EndpointType    *string `json:"endpoint_type" validate:"required,ne="`
	Password        *string `json:"password,omitempty"`
	CertificateRoot *string `json:"certificate_root,omitempty"`
	Headers         map[string]string
}

func NewCompleteConnectionOptions(id, userType, userID, endpointType string) *CompleteConnectionOptions {
	return &CompleteConnectionOptions{
		ID:           &id,
		UserType:     &userType,
		UserID:       &userID,
		EndpointType: &endpointType,
	}
}

func (o *CompleteConnectionOptions) SetID(id string) *CompleteConnectionOptions {
	o.ID = &id
	return o
}

func (o *CompleteConnectionOptions) SetUserType(userType string) *CompleteConnectionOptions {
	o.UserType = &userType
	return o
}

func (o *CompleteConnectionOptions) SetUserID(userID string) *CompleteConnectionOptions {
	o.UserID = &userID
	return o
}

func (o *CompleteConnectionOptions) SetEndpointType(endpointType string) *CompleteConnectionOptions {
	o.EndpointType = &endpointType
	return o
}

func (o *CompleteConnectionOptions) SetPassword(password string) *CompleteConnectionOptions {
	o.Password = &password
	return o
}

func (o *CompleteConnectionOptions) SetCertificateRoot(certificateRoot string) *CompleteConnectionOptions {
	o.CertificateRoot = &certificateRoot
	return o
}

func (o *CompleteConnectionOptions) SetHeaders(headers map[string]string) *CompleteConnectionOptions {
	o.Headers = headers
	return o
}

type ListDeploymentScalingGroupsOptions struct {
	ID      *string `json:"id" validate:"required,ne="`
	Headers map[string]string
}

func NewListDeploymentScalingGroupsOptions(id string) *ListDeploymentScalingGroupsOptions {
	return &ListDeploymentScalingGroupsOptions{
		ID: &id,
	}
}

func (o *ListDeploymentScalingGroupsOptions) SetID(id string) *ListDeploymentScalingGroupsOptions {
	o.ID = &id
	return o
}

func (o *ListDeploymentScalingGroupsOptions) SetHeaders(headers map[string]string) *ListDeploymentScalingGroupsOptions {
	o.Headers = headers
	return o
}

// GetDefaultScalingGroupsOptions selects the default scaling groups of a
// database type.
type GetDefaultScalingGroupsOptions struct {
	Type       *string `json:"type" validate:"required,ne="`
	HostFlavor *string `json:"host_flavor,omitempty"`
	Headers    map[string]string
}

func NewGetDefaultScalingGroupsOptions(typ string) *GetDefaultScalingGroupsOptions {
	return &GetDefaultScalingGroupsOptions{
		Type: &typ,
	}
}

func (o *GetDefaultScalingGroupsOptions) SetType(typ string) *GetDefaultScalingGroupsOptions {
	o.Type = &typ
	return o
}

func (o *GetDefaultScalingGroupsOptions) SetHostFlavor(hostFlavor string) *GetDefaultScalingGroupsOptions {
	o.HostFlavor = &hostFlavor
	return o
}

func (o *GetDefaultScalingGroupsOptions) SetHeaders(headers map[string]string) *GetDefaultScalingGroupsOptions {
	o.Headers = headers
	return o
}

type SetDeploymentScalingGroupOptions struct {
	ID      *string       `json:"id" validate:"required,ne="`
	GroupID *string       `json:"group_id" validate:"required,ne="`
	Group   *GroupScaling `json:"group" validate:"required"`
	Headers map[string]string
}

func NewSetDeploymentScalingGroupOptions(id, groupID string, group *GroupScaling) *SetDeploymentScalingGroupOptions {
	return &SetDeploymentScalingGroupOptions{
		ID:      &id,
		GroupID: &groupID,
		Group:   group,
	}
}

func (o *SetDeploymentScalingGroupOptions) SetID(id string) *SetDeploymentScalingGroupOptions {
	o.ID = &id
	return o
}

func (o *SetDeploymentScalingGroupOptions) SetGroupID(groupID string) *SetDeploymentScalingGroupOptions {
	o.GroupID = &groupID
	return o
}

func (o *SetDeploymentScalingGroupOptions) SetGroup(group *GroupScaling) *SetDeploymentScalingGroupOptions {
	o.Group = group
	return o
}

func (o *SetDeploymentScalingGroupOptions) SetHeaders(headers map[string]string) *SetDeploymentScalingGroupOptions {
	o.Headers = headers
	return o
}

type GetAutoscalingConditionsOptions struct {
	ID      *string `json:"id" validate:"required,ne="`
	GroupID *string `json:"group_id" validate:"required,ne="`
	Headers map[string]string
}

func NewGetAutoscalingConditionsOptions(id, groupID string) *GetAutoscalingConditionsOptions {
	return &GetAutoscalingConditionsOptions{
		ID:      &id,
		GroupID: &groupID,
	}
}

func (o *GetAutoscalingConditionsOptions) SetID(id string) *GetAutoscalingConditionsOptions {
	o.ID = &id
	return o
}

func (o *GetAutoscalingConditionsOptions) SetGroupID(groupID string) *GetAutoscalingConditionsOptions {
	o.GroupID = &groupID
	return o
}

func (o *GetAutoscalingConditionsOptions) SetHeaders(headers map[string]string) *GetAutoscalingConditionsOptions {
	o.Headers = headers
	return o
}

// SetAutoscalingConditionsOptions sets the autoscaling of one resource of a
// group.
type SetAutoscalingConditionsOptions struct {
	ID          *string                        `json:"id" validate:"required,ne="`
	GroupID     *string                        `json:"group_id" validate:"required,ne="`
	Autoscaling AutoscalingSetGroupAutoscaling `json:"autoscaling" validate:"required"`
	Headers     map[string]string
}

func NewSetAutoscalingConditionsOptions(id, groupID string, autoscaling AutoscalingSetGroupAutoscaling) *SetAutoscalingConditionsOptions {
	return &SetAutoscalingConditionsOptions{
		ID:          &id,
		GroupID:     &groupID,
		Autoscaling: autoscaling,
	}
}

func (o *SetAutoscalingConditionsOptions) SetID(id string) *SetAutoscalingConditionsOptions {
	o.ID = &id
	return o
}

func (o *SetAutoscalingConditionsOptions) SetGroupID(groupID string) *SetAutoscalingConditionsOptions {
	o.GroupID = &groupID
	return o
}

func (o *SetAutoscalingConditionsOptions) SetAutoscaling(autoscaling AutoscalingSetGroupAutoscaling) *SetAutoscalingConditionsOptions {
	o.Autoscaling = autoscaling
	return o
}

func (o *SetAutoscalingConditionsOptions) SetHeaders(headers map[string]string) *SetAutoscalingConditionsOptions {
	o.Headers = headers
	return o
}

type KillConnectionsOptions struct {
	ID      *string `json:"id" validate:"required,ne="`
	Headers map[string]string
}

func NewKillConnectionsOptions(id string) *KillConnectionsOptions {
	return &KillConnectionsOptions{
		ID: &id,
	}
}

func (o *KillConnectionsOptions) SetID(id string) *KillConnectionsOptions {
	o.ID = &id
	return o
}

func (o *KillConnectionsOptions) SetHeaders(headers map[string]string) *KillConnectionsOptions {
	o.Headers = headers
	return o
}

type CreateLogicalReplicationSlotOptions struct {
	ID                     *string                 `json:"id" validate:"required,ne="`
	LogicalReplicationSlot *LogicalReplicationSlot `json:"logical_replication_slot" validate:"required"`
	Headers                map[string]string
}

func NewCreateLogicalReplicationSlotOptions(id string, logicalReplicationSlot *LogicalReplicationSlot) *CreateLogicalReplicationSlotOptions {
	return &CreateLogicalReplicationSlotOptions{
		ID:                     &id,
		LogicalReplicationSlot: logicalReplicationSlot,
	}
}

func (o *CreateLogicalReplicationSlotOptions) SetID(id string) *CreateLogicalReplicationSlotOptions {
	o.ID = &id
	return o
}

func (o *CreateLogicalReplicationSlotOptions) SetLogicalReplicationSlot(logicalReplicationSlot *LogicalReplicationSlot) *CreateLogicalReplicationSlotOptions {
	o.LogicalReplicationSlot = logicalReplicationSlot
	return o
}

func (o *CreateLogicalReplicationSlotOptions) SetHeaders(headers map[string]string) *CreateLogicalReplicationSlotOptions {
	o.Headers = headers
	return o
}

type DeleteLogicalReplicationSlotOptions struct {
	ID      *string `json:"id" validate:"required,ne="`
	Name    *string `json:"name" validate:"required,ne="`
	Headers map[string]string
}

func NewDeleteLogicalReplicationSlotOptions(id, name string) *DeleteLogicalReplicationSlotOptions {
	return &DeleteLogicalReplicationSlotOptions{
		ID:   &id,
		Name: &name,
	}
}

func (o *DeleteLogicalReplicationSlotOptions) SetID(id string) *DeleteLogicalReplicationSlotOptions {
	o.ID = &id
	return o
}

func (o *DeleteLogicalReplicationSlotOptions) SetName(name string) *DeleteLogicalReplicationSlotOptions {
	o.Name = &name
	return o
}

func (o *DeleteLogicalReplicationSlotOptions) SetHeaders(headers map[string]string) *DeleteLogicalReplicationSlotOptions {
	o.Headers = headers
	return o
}

type GetAllowlistOptions struct {
	ID      *string `json:"id" validate:"required,ne="`
	Headers map[string]string
}

func NewGetAllowlistOptions(id string) *GetAllowlistOptions {
	return &GetAllowlistOptions{
		ID: &id,
	}
}

func (o *GetAllowlistOptions) SetID(id string) *GetAllowlistOptions {
	o.ID = &id
	return o
}

func (o *GetAllowlistOptions) SetHeaders(headers map[string]string) *GetAllowlistOptions {
	o.Headers = headers
	return o
}

// SetAllowlistOptions replaces the whole allowlist. IfMatch carries the ETag
// of the allowlist the change is based on.
type SetAllowlistOptions struct {
	ID          *string          `json:"id" validate:"required,ne="`
	IPAddresses []AllowlistEntry `json:"ip_addresses,omitempty" validate:"dive"`
	IfMatch     *string          `json:"If-Match,omitempty"`
	Headers     map[string]string
}

func NewSetAllowlistOptions(id string) *SetAllowlistOptions {
	return &SetAllowlistOptions{
		ID: &id,
	}
}

func (o *SetAllowlistOptions) SetID(id string) *SetAllowlistOptions {
	o.ID = &id
	return o
}

func (o *SetAllowlistOptions) SetIPAddresses(ipAddresses []AllowlistEntry) *SetAllowlistOptions {
	o.IPAddresses = ipAddresses
	return o
}

func (o *SetAllowlistOptions) SetIfMatch(ifMatch string) *SetAllowlistOptions {
	o.IfMatch = &ifMatch
	return o
}

func (o *SetAllowlistOptions) SetHeaders(headers map[string]string) *SetAllowlistOptions {
	o.Headers = headers
	return o
}

type AddAllowlistEntryOptions struct {
	ID        *string         `json:"id" validate:"required,ne="`
	IPAddress *AllowlistEntry `json:"ip_address" validate:"required"`
	Headers   map[string]string
}

func NewAddAllowlistEntryOptions(id string, ipAddress *AllowlistEntry) *AddAllowlistEntryOptions {
	return &AddAllowlistEntryOptions{
		ID:        &id,
		IPAddress: ipAddress,
	}
}

func (o *AddAllowlistEntryOptions) SetID(id string) *AddAllowlistEntryOptions {
	o.ID = &id
	return o
}

func (o *AddAllowlistEntryOptions) SetIPAddress(ipAddress *AllowlistEntry) *AddAllowlistEntryOptions {
	o.IPAddress = ipAddress
	return o
}

func (o *AddAllowlistEntryOptions) SetHeaders(headers map[string]string) *AddAllowlistEntryOptions {
	o.Headers = headers
	return o
}

type DeleteAllowlistEntryOptions struct {
	ID        *string `json:"id" validate:"required,ne="`
	Ipaddress *string `json:"ipaddress" validate:"required,ne="`
	Headers   map[string]string
}

func NewDeleteAllowlistEntryOptions(id, ipaddress string) *DeleteAllowlistEntryOptions {
	return &DeleteAllowlistEntryOptions{
		ID:        &id,
		Ipaddress: &ipaddress,
	}
}

func (o *DeleteAllowlistEntryOptions) SetID(id string) *DeleteAllowlistEntryOptions {
	o.ID = &id
	return o
}

func (o *DeleteAllowlistEntryOptions) SetIpaddress(ipaddress string) *DeleteAllowlistEntryOptions {
	o.Ipaddress = &ipaddress
	return o
}

func (o *DeleteAllowlistEntryOptions) SetHeaders(headers map[string]string) *DeleteAllowlistEntryOptions {
	o.Headers = headers
	return o
}
