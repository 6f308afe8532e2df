package provider

import (
	"os"
	"testing"
	"time"

	"github.com/clouddatabases/terraform-provider-clouddatabases/clouddatabases"
	"github.com/hashicorp/terraform-plugin-framework/providerserver"
	"github.com/hashicorp/terraform-plugin-go/tfprotov6"
)

// testAccProtoV6ProviderFactories are used to instantiate a provider during
// acceptance testing. The factory function will be invoked for every Terraform
// CLI command executed to create a provider server to which the CLI can
// reattach.
var testAccProtoV6ProviderFactories = map[string]func() (tfprotov6.ProviderServer, error){
	"clouddatabases": providerserver.NewProtocol6WithError(New("test")()),
}

func testAccPreCheck(t *testing.T) {
	if os.Getenv(CloudDatabasesAPIKey) == "" && os.Getenv(CloudDatabasesBearerToken) == "" {
		t.Fatalf("%s or %s must be set for acceptance tests", CloudDatabasesAPIKey, CloudDatabasesBearerToken)
	}
	if os.Getenv(CloudDatabasesDeploymentID) == "" {
		t.Fatalf("%s must be set for acceptance tests", CloudDatabasesDeploymentID)
	}
}

// setupTestEnv fakes the credentials for unit tests, where NewClient is
// hooked to return a mock.
func setupTestEnv() {
	os.Setenv(CloudDatabasesAPIKey, "fake")
	os.Setenv(CloudDatabasesURL, "https://api.example.com/v5/ibm")
	os.Setenv(CloudDatabasesDeploymentID, "crn:v1:bluemix:public:databases-for-postgresql:us-south:a/1:d1::")
	taskPollInterval = 10 * time.Millisecond
}

func testUTTask(id string) *clouddatabases.Task {
	return &clouddatabases.Task{
		ID:     clouddatabases.StringPtr(id),
		Status: clouddatabases.StringPtr(clouddatabases.TaskStatusRunning),
	}
}

func testUTCompletedTask(id string) *clouddatabases.GetTaskResponse {
	return &clouddatabases.GetTaskResponse{Task: &clouddatabases.Task{
		ID:     clouddatabases.StringPtr(id),
		Status: clouddatabases.StringPtr(clouddatabases.TaskStatusCompleted),
	}}
}

func testUTDeployment(id, deploymentType string) *clouddatabases.GetDeploymentInfoResponse {
	return &clouddatabases.GetDeploymentInfoResponse{Deployment: &clouddatabases.Deployment{
		ID:      clouddatabases.StringPtr(id),
		Name:    clouddatabases.StringPtr("example"),
		Type:    clouddatabases.StringPtr(deploymentType),
		Version: clouddatabases.StringPtr("16"),
	}}
}
