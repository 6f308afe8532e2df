package provider

import (
	"fmt"
	"testing"
	"time"

	"github.com/clouddatabases/terraform-provider-clouddatabases/clouddatabases"
	mockClient "github.com/clouddatabases/terraform-provider-clouddatabases/mock"
	"github.com/go-openapi/strfmt"
	"github.com/golang/mock/gomock"
	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
)

func TestUTBackupsDataSource(t *testing.T) {
	setupTestEnv()

	ctrl := gomock.NewController(t)
	s := mockClient.NewMockCloudDatabasesClient(ctrl)
	defer HookGlobal(&NewClient, func(cfg *clouddatabases.Config) (clouddatabases.CloudDatabasesClient, error) {
		return s, nil
	})()

	deploymentId := "crn:v1:d1"
	createdAt := strfmt.DateTime(time.Date(2024, 5, 1, 3, 4, 5, 0, time.UTC))
	s.EXPECT().ListDeploymentBackups(gomock.Any(), gomock.Any()).Return(&clouddatabases.Backups{
		Backups: []clouddatabases.Backup{
			{
				ID:             clouddatabases.StringPtr("crn:v1:backup:b1"),
				DeploymentID:   clouddatabases.StringPtr(deploymentId),
				Type:           clouddatabases.StringPtr("scheduled"),
				Status:         clouddatabases.StringPtr("completed"),
				IsDownloadable: clouddatabases.BoolPtr(false),
				IsRestorable:   clouddatabases.BoolPtr(true),
				CreatedAt:      &createdAt,
			},
		},
	}, nil, nil).AnyTimes()

	dataSourceName := "data.clouddatabases_backups.test"
	resource.Test(t, resource.TestCase{
		IsUnitTest:               true,
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: fmt.Sprintf(`
data "clouddatabases_backups" "test" {
  deployment_id = "%s"
}
`, deploymentId),
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttr(dataSourceName, "backups.#", "1"),
					resource.TestCheckResourceAttr(dataSourceName, "backups.0.id", "crn:v1:backup:b1"),
					resource.TestCheckResourceAttr(dataSourceName, "backups.0.is_restorable", "true"),
					resource.TestCheckResourceAttr(dataSourceName, "backups.0.created_at", "2024-05-01T03:04:05.000Z"),
				),
			},
		},
	})
}
