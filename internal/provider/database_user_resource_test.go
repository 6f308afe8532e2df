package provider

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/clouddatabases/terraform-provider-clouddatabases/clouddatabases"
	mockClient "github.com/clouddatabases/terraform-provider-clouddatabases/mock"
	"github.com/golang/mock/gomock"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-testing/helper/resource"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestAccDatabaseUserResource(t *testing.T) {
	userName := fmt.Sprintf("tf%s", GenerateRandomString(6))
	testDatabaseUserResource(t, os.Getenv(CloudDatabasesDeploymentID), userName,
		"Passw0rd-"+GenerateRandomString(10), "Passw0rd-"+GenerateRandomString(10))
}

func TestUTDatabaseUserResource(t *testing.T) {
	setupTestEnv()

	ctrl := gomock.NewController(t)
	s := mockClient.NewMockCloudDatabasesClient(ctrl)
	defer HookGlobal(&NewClient, func(cfg *clouddatabases.Config) (clouddatabases.CloudDatabasesClient, error) {
		return s, nil
	})()

	deploymentId := "crn:v1:d1"
	userName := "app"
	password := "first-password-1"
	newPassword := "second-password-2"

	s.EXPECT().GetDeploymentInfo(gomock.Any(), gomock.Any()).
		Return(testUTDeployment(deploymentId, clouddatabases.DeploymentTypePostgreSQL), nil, nil).AnyTimes()
	s.EXPECT().GetTask(gomock.Any(), gomock.Any()).Return(testUTCompletedTask("t1"), nil, nil).AnyTimes()
	s.EXPECT().CreateDatabaseUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, options *clouddatabases.CreateDatabaseUserOptions) (*clouddatabases.CreateDatabaseUserResponse, *clouddatabases.DetailedResponse, error) {
			user, ok := options.User.(*clouddatabases.UserDatabaseUser)
			if !ok {
				t.Errorf("unexpected user %T", options.User)
			} else if *user.Username != userName || *user.Password != password {
				t.Errorf("unexpected user %s", *user.Username)
			}
			return &clouddatabases.CreateDatabaseUserResponse{Task: testUTTask("t1")}, nil, nil
		})
	s.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, options *clouddatabases.UpdateUserOptions) (*clouddatabases.UpdateUserResponse, *clouddatabases.DetailedResponse, error) {
			update, ok := options.User.(*clouddatabases.UserUpdatePasswordSetting)
			if !ok || *update.Password != newPassword {
				t.Errorf("unexpected update %T", options.User)
			}
			return &clouddatabases.UpdateUserResponse{Task: testUTTask("t1")}, nil, nil
		}).Times(1)
	s.EXPECT().DeleteDatabaseUser(gomock.Any(), gomock.Any()).
		Return(&clouddatabases.DeleteDatabaseUserResponse{Task: testUTTask("t1")}, nil, nil)

	testDatabaseUserResource(t, deploymentId, userName, password, newPassword)
}

func testDatabaseUserResource(t *testing.T, deploymentId, userName, password, newPassword string) {
	databaseUserResourceName := "clouddatabases_database_user.test"
	resource.Test(t, resource.TestCase{
		IsUnitTest:               true,
		PreCheck:                 func() { testAccPreCheck(t) },
		ProtoV6ProviderFactories: testAccProtoV6ProviderFactories,
		Steps: []resource.TestStep{
			// Create and Read database user resource
			{
				Config: testUTDatabaseUserResourceConfig(deploymentId, userName, password),
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttr(databaseUserResourceName, "username", userName),
					resource.TestCheckResourceAttr(databaseUserResourceName, "user_type", "database"),
					resource.TestCheckResourceAttr(databaseUserResourceName, "password", password),
				),
			},
			// Update password
			{
				Config: testUTDatabaseUserResourceConfig(deploymentId, userName, newPassword),
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttr(databaseUserResourceName, "password", newPassword),
				),
			},
			// Import, then apply the same configuration without another password change
			{
				ResourceName:       databaseUserResourceName,
				ImportState:        true,
				ImportStateId:      fmt.Sprintf("%s,%s,%s", deploymentId, clouddatabases.UserTypeDatabase, userName),
				ImportStatePersist: true,
			},
			{
				Config: testUTDatabaseUserResourceConfig(deploymentId, userName, newPassword),
				Check: resource.ComposeAggregateTestCheckFunc(
					resource.TestCheckResourceAttr(databaseUserResourceName, "username", userName),
					resource.TestCheckResourceAttr(databaseUserResourceName, "password", newPassword),
				),
			},
			// Delete testing automatically occurs in TestCase
		},
	})
}

func testUTDatabaseUserResourceConfig(deploymentId, userName, password string) string {
	return fmt.Sprintf(`
resource "clouddatabases_database_user" "test" {
  deployment_id = "%s"
  username      = "%s"
  password      = "%s"
}
`, deploymentId, userName, password)
}

func TestBuildDatabaseUser(t *testing.T) {
	data := func(userType, role string) databaseUserResourceData {
		d := databaseUserResourceData{
			DeploymentId: types.StringValue("d1"),
			UserType:     types.StringValue(userType),
			Username:     types.StringValue("app"),
			Password:     types.StringValue("secret-password"),
			Role:         types.StringNull(),
		}
		if role != "" {
			d.Role = types.StringValue(role)
		}
		return d
	}

	user, err := buildDatabaseUser(clouddatabases.DeploymentTypePostgreSQL, data(clouddatabases.UserTypeDatabase, ""))
	assert.NoError(t, err)
	assert.IsType(t, &clouddatabases.UserDatabaseUser{}, user)

	user, err = buildDatabaseUser(clouddatabases.DeploymentTypeRedis, data(clouddatabases.UserTypeDatabase, "-@all +@read"))
	assert.NoError(t, err)
	redisUser, ok := user.(*clouddatabases.UserRedisDatabaseUser)
	assert.True(t, ok)
	assert.Equal(t, "-@all +@read", *redisUser.Role)

	user, err = buildDatabaseUser(clouddatabases.DeploymentTypeMongoDBEE, data(clouddatabases.UserTypeOpsManager, "group_read_only"))
	assert.NoError(t, err)
	opsUser, ok := user.(*clouddatabases.UserOpsManagerUser)
	assert.True(t, ok)
	assert.Equal(t, "group_read_only", *opsUser.Role)

	_, err = buildDatabaseUser(clouddatabases.DeploymentTypePostgreSQL, data(clouddatabases.UserTypeDatabase, "admin"))
	assert.True(t, errors.Is(err, errors.NotSupported))
}

func TestPasswordUpdate(t *testing.T) {
	state := databaseUserResourceData{Password: types.StringValue("old-password-1")}
	plan := databaseUserResourceData{Password: types.StringValue("new-password-2")}

	update, err := passwordUpdate(plan, state)
	assert.NoError(t, err)
	setting, ok := update.(*clouddatabases.UserUpdatePasswordSetting)
	assert.True(t, ok)
	assert.Equal(t, "new-password-2", *setting.Password)

	update, err = passwordUpdate(state, state)
	assert.NoError(t, err)
	assert.Nil(t, update)

	imported := databaseUserResourceData{Password: types.StringNull()}
	update, err = passwordUpdate(plan, imported)
	assert.NoError(t, err)
	assert.Nil(t, update)
}
