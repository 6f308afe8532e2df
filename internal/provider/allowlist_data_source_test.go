package provider

import (
	"fmt"
	"testing"

	"github.com/clouddatabases/terraform-provider-clouddatabases/clouddatabases"
	mockClient "github.com/clouddatabases/terraform-provider-clouddatabases/mock"
	"github.com/golang/mock/gomock"
	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
)

func TestUTAllowlistDataSource(t *testing.T) {
	setupTestEnv()

	ctrl := gomock.NewController(t)
	s := mockClient.NewMockCloudDatabasesClient(ctrl)
	defer HookGlobal(&NewClient, func(cfg *clouddatabases.Config) (clouddatabases.CloudDatabasesClient, error) {
		return s, nil
	})()

	deploymentId := "crn:v1:d1"
	s.EXPECT().GetAllowlist(gomock.Any(), gomock.Any()).Return(&clouddatabases.GetAllowlistResponse{
		IPAddresses: []clouddatabases.AllowlistEntry{
			{Address: clouddatabases.StringPtr("10.0.0.0/8"), Description: clouddatabases.StringPtr("private")},
			{Address: clouddatabases.StringPtr("198.51.100.7")},
		},
	}, nil, nil).AnyTimes()

	dataSourceName := "data.clouddatabases_allowlist.test"
	resource.Test(t, resource.TestCase{
		IsUnitTest:               true,
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: fmt.Sprintf(`
data "clouddatabases_allowlist" "test" {
  deployment_id = "%s"
}
`, deploymentId),
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttr(dataSourceName, "ip_addresses.#", "2"),
					resource.TestCheckResourceAttr(dataSourceName, "ip_addresses.0.description", "private"),
					resource.TestCheckResourceAttr(dataSourceName, "ip_addresses.1.address", "198.51.100.7"),
					resource.TestCheckResourceAttr(dataSourceName, "ip_addresses.1.description", ""),
				),
			},
		},
	})
}
