package provider

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/clouddatabases/terraform-provider-clouddatabases/clouddatabases"
	mockClient "github.com/clouddatabases/terraform-provider-clouddatabases/mock"
	"github.com/golang/mock/gomock"
	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
)

func TestAccAllowlistEntryResource(t *testing.T) {
	testAllowlistEntryResource(t, os.Getenv(CloudDatabasesDeploymentID), "198.51.100.7/32", "terraform acceptance")
}

func TestUTAllowlistEntryResource(t *testing.T) {
	setupTestEnv()

	ctrl := gomock.NewController(t)
	s := mockClient.NewMockCloudDatabasesClient(ctrl)
	defer HookGlobal(&NewClient, func(cfg *clouddatabases.Config) (clouddatabases.CloudDatabasesClient, error) {
		return s, nil
	})()

	deploymentId := "crn:v1:d1"
	address := "10.0.0.1/32"
	description := "office"

	var entries []clouddatabases.AllowlistEntry
	s.EXPECT().AddAllowlistEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, options *clouddatabases.AddAllowlistEntryOptions) (*clouddatabases.AddAllowlistEntryResponse, *clouddatabases.DetailedResponse, error) {
			if *options.ID != deploymentId {
				t.Errorf("unexpected deployment %s", *options.ID)
			}
			entries = append(entries, *options.IPAddress)
			return &clouddatabases.AddAllowlistEntryResponse{Task: testUTTask("t1")}, nil, nil
		})
	s.EXPECT().GetTask(gomock.Any(), gomock.Any()).Return(testUTCompletedTask("t1"), nil, nil).AnyTimes()
	s.EXPECT().GetAllowlist(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *clouddatabases.GetAllowlistOptions) (*clouddatabases.GetAllowlistResponse, *clouddatabases.DetailedResponse, error) {
			return &clouddatabases.GetAllowlistResponse{IPAddresses: entries}, nil, nil
		}).AnyTimes()
	s.EXPECT().DeleteAllowlistEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, options *clouddatabases.DeleteAllowlistEntryOptions) (*clouddatabases.DeleteAllowlistEntryResponse, *clouddatabases.DetailedResponse, error) {
			if *options.Ipaddress != address {
				t.Errorf("unexpected address %s", *options.Ipaddress)
			}
			entries = nil
			return &clouddatabases.DeleteAllowlistEntryResponse{Task: testUTTask("t1")}, nil, nil
		})

	testAllowlistEntryResource(t, deploymentId, address, description)
}

func testAllowlistEntryResource(t *testing.T, deploymentId, address, description string) {
	allowlistEntryResourceName := "clouddatabases_allowlist_entry.test"
	resource.Test(t, resource.TestCase{
		IsUnitTest:               true,
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			// Create and Read allowlist entry resource
			{
				Config: testUTAllowlistEntryResourceConfig(deploymentId, address, description),
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttr(allowlistEntryResourceName, "deployment_id", deploymentId),
					resource.TestCheckResourceAttr(allowlistEntryResourceName, "address", address),
					resource.TestCheckResourceAttr(allowlistEntryResourceName, "description", description),
				),
			},
			// Import
			{
				ResourceName:                         allowlistEntryResourceName,
				ImportState:                          true,
				ImportStateId:                        fmt.Sprintf("%s,%s", deploymentId, address),
				ImportStateVerify:                    true,
				ImportStateVerifyIdentifierAttribute: "address",
			},
			// Delete testing automatically occurs in TestCase
		},
	})
}

func testUTAllowlistEntryResourceConfig(deploymentId, address, description string) string {
	return fmt.Sprintf(`
resource "clouddatabases_allowlist_entry" "test" {
  deployment_id = "%s"
  address       = "%s"
  description   = "%s"
}
`, deploymentId, address, description)
}
