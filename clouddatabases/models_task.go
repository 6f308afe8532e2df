package clouddatabases

import (
	"encoding/json"

	"github.com/go-openapi/strfmt"
)

// Task is a unit of work tracked by the service. Operations that change a
// deployment return one; poll it with GetTask.
type Task struct {
	ID              *string          `json:"id,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Status          *string          `json:"status,omitempty"`
	DeploymentID    *string          `json:"deployment_id,omitempty"`
	ProgressPercent *int64           `json:"progress_percent,omitempty"`
	CreatedAt       *strfmt.DateTime `json:"created_at,omitempty"`
}

func (t *Task) UnmarshalJSON(data []byte) error {
	type plain Task
	if err := json.Unmarshal(data, (*plain)(t)); err != nil {
		return err
	}
	t.CreatedAt = canonicalDateTime(t.CreatedAt)
	return nil
}

// Done reports whether the task reached a final status.
func (t *Task) Done() bool {
	if t == nil || t.Status == nil {
		return false
	}
	return *t.Status == TaskStatusCompleted || *t.Status == TaskStatusFailed
}

type Tasks struct {
	Tasks []Task `json:"tasks,omitempty"`
}

type GetTaskResponse struct {
	Task *Task `json:"task,omitempty"`
}

type CreateDatabaseUserResponse struct {
	Task *Task `json:"task,omitempty"`
}

type UpdateUserResponse struct {
	Task *Task `json:"task,omitempty"`
}

type DeleteDatabaseUserResponse struct {
	Task *Task `json:"task,omitempty"`
}

type UpdateDatabaseConfigurationResponse struct {
	Task *Task `json:"task,omitempty"`
}

type ResyncReplicaResponse struct {
	Task *Task `json:"task,omitempty"`
}

type PromoteReadOnlyReplicaResponse struct {
	Task *Task `json:"task,omitempty"`
}

type StartOndemandBackupResponse struct {
	Task *Task `json:"task,omitempty"`
}

type SetDeploymentScalingGroupResponse struct {
	Task *Task `json:"task,omitempty"`
}

type SetAutoscalingConditionsResponse struct {
	Task *Task `json:"task,omitempty"`
}

type KillConnectionsResponse struct {
	Task *Task `json:"task,omitempty"`
}

type CreateLogicalReplicationSlotResponse struct {
	Task *Task `json:"task,omitempty"`
}

type DeleteLogicalReplicationSlotResponse struct {
	Task *Task `json:"task,omitempty"`
}

type SetAllowlistResponse struct {
	Task *Task `json:"task,omitempty"`
}

type AddAllowlistEntryResponse struct {
	Task *Task `json:"task,omitempty"`
}

type DeleteAllowlistEntryResponse struct {
	Task *Task `json:"task,omitempty"`
}
