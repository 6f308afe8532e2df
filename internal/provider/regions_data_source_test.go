package provider

import (
	"testing"

	"github.com/clouddatabases/terraform-provider-clouddatabases/clouddatabases"
	mockClient "github.com/clouddatabases/terraform-provider-clouddatabases/mock"
	"github.com/golang/mock/gomock"
	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
)

func TestAccRegionsDataSource(t *testing.T) {
	resource.Test(t, resource.TestCase{
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: testRegionsConfig,
				Check: resource.ComposeTestCheckFunc(
					resource.TestCheckResourceAttrSet("data.clouddatabases_regions.test", "regions.#"),
				),
			},
		},
	})
}

func TestUTRegionsDataSource(t *testing.T) {
	setupTestEnv()

	ctrl := gomock.NewController(t)
	s := mockClient.NewMockCloudDatabasesClient(ctrl)
	defer HookGlobal(&NewClient, func(cfg *clouddatabases.Config) (clouddatabases.CloudDatabasesClient, error) {
		return s, nil
	})()

	s.EXPECT().ListRegions(gomock.Any(), gomock.Any()).
		Return(&clouddatabases.ListRegionsResponse{Regions: []string{"us-south", "eu-de", "au-syd"}}, nil, nil).AnyTimes()

	resource.Test(t, resource.TestCase{
		IsUnitTest:               true,
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			{
				Config: testRegionsConfig,
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttr("data.clouddatabases_regions.test", "regions.#", "3"),
					resource.TestCheckResourceAttr("data.clouddatabases_regions.test", "regions.0", "au-syd"),
					resource.TestCheckResourceAttr("data.clouddatabases_regions.test", "regions.2", "us-south"),
				),
			},
		},
	})
}

const testRegionsConfig = `
data "clouddatabases_regions" "test" {}
`
