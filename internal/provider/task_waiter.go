package provider

import (
	"context"
	"time"

	"github.com/clouddatabases/terraform-provider-clouddatabases/clouddatabases"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/hashicorp/terraform-plugin-sdk/v2/helper/retry"
	"github.com/juju/errors"
)

const taskTimeout = 60 * time.Minute

var taskPollInterval = 10 * time.Second

// WaitTaskDone polls a task until it completes. A failed task is an error.
func WaitTaskDone(ctx context.Context, timeout time.Duration, interval time.Duration, taskID string,
	client clouddatabases.CloudDatabasesClient) (*clouddatabases.Task, error) {
	stateConf := &retry.StateChangeConf{
		Pending: []string{
			clouddatabases.TaskStatusQueued,
			clouddatabases.TaskStatusRunning,
		},
		Target: []string{
			clouddatabases.TaskStatusCompleted,
		},
		Timeout:      timeout,
		MinTimeout:   500 * time.Millisecond,
		PollInterval: interval,
		Refresh:      taskStateRefreshFunc(ctx, taskID, client),
	}

	outputRaw, err := stateConf.WaitForStateContext(ctx)

	if output, ok := outputRaw.(*clouddatabases.Task); ok {
		return output, err
	}
	return nil, err
}

func taskStateRefreshFunc(ctx context.Context, taskID string,
	client clouddatabases.CloudDatabasesClient) retry.StateRefreshFunc {
	return func() (interface{}, string, error) {
		tflog.Trace(ctx, "Waiting for task done", map[string]interface{}{"task_id": taskID})
		resp, _, err := client.GetTask(ctx, clouddatabases.NewGetTaskOptions(taskID))
		if err != nil {
			// finished tasks are dropped by the service after a while
			if isNotFound(err) {
				return &clouddatabases.Task{
					ID:     &taskID,
					Status: clouddatabases.StringPtr(clouddatabases.TaskStatusCompleted),
				}, clouddatabases.TaskStatusCompleted, nil
			}
			return nil, "", err
		}
		task := resp.Task
		if task == nil || task.Status == nil {
			return nil, "", errors.NotFoundf("status of task %s", taskID)
		}
		if *task.Status == clouddatabases.TaskStatusFailed {
			return task, *task.Status, errors.Errorf("task %s failed: %s", taskID, deref(task.Description))
		}
		return task, *task.Status, nil
	}
}

// waitForTask waits for the task returned by a mutating call, if any.
func waitForTask(ctx context.Context, client clouddatabases.CloudDatabasesClient, task *clouddatabases.Task) error {
	if task == nil || task.ID == nil {
		return nil
	}
	_, err := WaitTaskDone(ctx, taskTimeout, taskPollInterval, *task.ID, client)
	return err
}
