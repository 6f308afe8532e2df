package clouddatabases

// User is a user to create on a deployment. It is one of UserDatabaseUser,
// UserRedisDatabaseUser or UserOpsManagerUser; which one the service expects
// depends on the user type and the deployment's database type.
type User interface {
	isaUser() bool
}

type UserDatabaseUser struct {
	Username *string `json:"username,omitempty" validate:"required"`
	Password *string `json:"password,omitempty" validate:"required"`
}

func NewUserDatabaseUser(username, password string) (*UserDatabaseUser, error) {
	model := &UserDatabaseUser{Username: &username, Password: &password}
	if err := validateModel(model); err != nil {
		return nil, err
	}
	return model, nil
}

func (*UserDatabaseUser) isaUser() bool { return true }

func (u *UserDatabaseUser) UnmarshalJSON(data []byte) error {
	type plain UserDatabaseUser
	return unmarshalModel(data, "UserDatabaseUser", (*plain)(u))
}

// UserRedisDatabaseUser is a Redis ACL user. Role is a Redis ACL rule string
// such as "-@all +@read".
type UserRedisDatabaseUser struct {
	Username *string `json:"username,omitempty" validate:"required"`
	Password *string `json:"password,omitempty" validate:"required"`
	Role     *string `json:"role,omitempty"`
}

func NewUserRedisDatabaseUser(username, password string) (*UserRedisDatabaseUser, error) {
	model := &UserRedisDatabaseUser{Username: &username, Password: &password}
	if err := validateModel(model); err != nil {
		return nil, err
	}
	return model, nil
}

func (u *UserRedisDatabaseUser) SetRole(role string) *UserRedisDatabaseUser {
	u.Role = &role
	return u
}

func (*UserRedisDatabaseUser) isaUser() bool { return true }

func (u *UserRedisDatabaseUser) UnmarshalJSON(data []byte) error {
	type plain UserRedisDatabaseUser
	return unmarshalModel(data, "UserRedisDatabaseUser", (*plain)(u))
}

type UserOpsManagerUser struct {
	Username *string `json:"username,omitempty" validate:"required"`
	Password *string `json:"password,omitempty" validate:"required"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=group_read_only group_data_access_admin"`
}

func NewUserOpsManagerUser(username, password string) (*UserOpsManagerUser, error) {
	model := &UserOpsManagerUser{Username: &username, Password: &password}
	if err := validateModel(model); err != nil {
		return nil, err
	}
	return model, nil
}

func (u *UserOpsManagerUser) SetRole(role string) *UserOpsManagerUser {
	u.Role = &role
	return u
}

func (*UserOpsManagerUser) isaUser() bool { return true }

func (u *UserOpsManagerUser) UnmarshalJSON(data []byte) error {
	type plain UserOpsManagerUser
	return unmarshalModel(data, "UserOpsManagerUser", (*plain)(u))
}

// UnmarshalUser decodes data into the User shape used for userType on a
// deployment of deploymentType.
func UnmarshalUser(userType, deploymentType string, data []byte) (User, error) {
	var user User
	switch userType {
	case "":
		return nil, &VariantError{Family: "User"}
	case UserTypeOpsManager:
		user = &UserOpsManagerUser{}
	case UserTypeDatabase, UserTypeReadOnlyReplica:
		if deploymentType == DeploymentTypeRedis {
			user = &UserRedisDatabaseUser{}
		} else {
			user = &UserDatabaseUser{}
		}
	default:
		return nil, &VariantError{Family: "User", Discriminant: userType}
	}
	if err := jsonUnmarshal(data, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UserUpdate is a change to an existing user: UserUpdatePasswordSetting or
// UserUpdateRedisRoleSetting.
type UserUpdate interface {
	isaUserUpdate() bool
}

type UserUpdatePasswordSetting struct {
	Password *string `json:"password,omitempty" validate:"required"`
}

func NewUserUpdatePasswordSetting(password string) (*UserUpdatePasswordSetting, error) {
	model := &UserUpdatePasswordSetting{Password: &password}
	if err := validateModel(model); err != nil {
		return nil, err
	}
	return model, nil
}

func (*UserUpdatePasswordSetting) isaUserUpdate() bool { return true }

func (u *UserUpdatePasswordSetting) UnmarshalJSON(data []byte) error {
	type plain UserUpdatePasswordSetting
	return unmarshalModel(data, "UserUpdatePasswordSetting", (*plain)(u))
}

type UserUpdateRedisRoleSetting struct {
	Role *string `json:"role,omitempty" validate:"required"`
}

func NewUserUpdateRedisRoleSetting(role string) (*UserUpdateRedisRoleSetting, error) {
	model := &UserUpdateRedisRoleSetting{Role: &role}
	if err := validateModel(model); err != nil {
		return nil, err
	}
	return model, nil
}

func (*UserUpdateRedisRoleSetting) isaUserUpdate() bool { return true }

func (u *UserUpdateRedisRoleSetting) UnmarshalJSON(data []byte) error {
	type plain UserUpdateRedisRoleSetting
	return unmarshalModel(data, "UserUpdateRedisRoleSetting", (*plain)(u))
}

type createDatabaseUserBody struct {
	User User `json:"user"`
}

type updateUserBody struct {
	User UserUpdate `json:"user"`
}
