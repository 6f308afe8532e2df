package clouddatabases

import (
	"github.com/iancoleman/orderedmap"
)

// Deployables describes a database type that can be provisioned and its
// versions.
type Deployables struct {
	Type     *string                   `json:"type,omitempty"`
	Versions []DeployablesVersionsItem `json:"versions,omitempty"`
}

type DeployablesVersionsItem struct {
	Version     *string                                  `json:"version,omitempty"`
	Status      *string                                  `json:"status,omitempty"`
	IsPreferred *bool                                    `json:"is_preferred,omitempty"`
	Transitions []DeployablesVersionsItemTransitionsItem `json:"transitions,omitempty"`
}

// DeployablesVersionsItemTransitionsItem is one allowed version upgrade path.
type DeployablesVersionsItemTransitionsItem struct {
	Application *string `json:"application,omitempty"`
	Method      *string `json:"method,omitempty"`
	FromVersion *string `json:"from_version,omitempty"`
	ToVersion   *string `json:"to_version,omitempty"`
}

type ListDeployablesResponse struct {
	Deployables []Deployables `json:"deployables,omitempty"`
}

type ListRegionsResponse struct {
	Regions []string `json:"regions,omitempty"`
}

// Deployment is the metadata of a provisioned database.
type Deployment struct {
	ID                     *string                `json:"id,omitempty"`
	Name                   *string                `json:"name,omitempty"`
	Type                   *string                `json:"type,omitempty"`
	PlatformOptions        *orderedmap.OrderedMap `json:"platform_options,omitempty"`
	Version                *string                `json:"version,omitempty"`
	AdminUsernames         map[string]string      `json:"admin_usernames,omitempty"`
	EnablePublicEndpoints  *bool                  `json:"enable_public_endpoints,omitempty"`
	EnablePrivateEndpoints *bool                  `json:"enable_private_endpoints,omitempty"`
}

type GetDeploymentInfoResponse struct {
	Deployment *Deployment `json:"deployment,omitempty"`
}

// Remotes lists the leader and read-only replicas of a deployment.
type Remotes struct {
	Leader   *string  `json:"leader,omitempty"`
	Replicas []string `json:"replicas,omitempty"`
}

type ListRemotesResponse struct {
	Remotes *Remotes `json:"remotes,omitempty"`
}

type PointInTimeRecoveryData struct {
	EarliestPointInTimeRecoveryTime *string `json:"earliest_point_in_time_recovery_time,omitempty"`
}

type GetPitrDataResponse struct {
	PointInTimeRecoveryData *PointInTimeRecoveryData `json:"point_in_time_recovery_data,omitempty"`
}

type replicaPromotion struct {
	SkipInitialBackup *bool `json:"skip_initial_backup,omitempty"`
}

type promoteReadOnlyReplicaBody struct {
	Promotion *replicaPromotion `json:"promotion"`
}
