package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/clouddatabases/terraform-provider-clouddatabases/clouddatabases"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/planmodifier"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringdefault"
	"github.com/hashicorp/terraform-plugin-framework/resource/schema/stringplanmodifier"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/juju/errors"
)

var (
	_ resource.Resource                = &databaseUserResource{}
	_ resource.ResourceWithImportState = &databaseUserResource{}
)

type databaseUserResourceData struct {
	DeploymentId types.String `tfsdk:"deployment_id"`
	UserType     types.String `tfsdk:"user_type"`
	Username     types.String `tfsdk:"username"`
	Password     types.String `tfsdk:"password"`
	Role         types.String `tfsdk:"role"`
}

type databaseUserResource struct {
	provider *clouddatabasesProvider
}

func NewDatabaseUserResource() resource.Resource {
	return &databaseUserResource{}
}

func (r *databaseUserResource) Metadata(_ context.Context, req resource.MetadataRequest, resp *resource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_database_user"
}

func (r *databaseUserResource) Configure(_ context.Context, req resource.ConfigureRequest, resp *resource.ConfigureResponse) {
	r.provider = configureResource(req, resp)
}

func (r *databaseUserResource) Schema(_ context.Context, _ resource.SchemaRequest, resp *resource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "A database or Ops Manager user of a deployment.",
		Attributes: map[string]schema.Attribute{
			"deployment_id": schema.StringAttribute{
				MarkdownDescription: "The ID (CRN) of the deployment.",
				Required:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"user_type": schema.StringAttribute{
				MarkdownDescription: "The type of the user, `database` or `ops_manager`.",
				Optional:            true,
				Computed:            true,
				Default:             stringdefault.StaticString(clouddatabases.UserTypeDatabase),
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"username": schema.StringAttribute{
				MarkdownDescription: "The name of the user.",
				Required:            true,
				PlanModifiers: []planmodifier.String{
					stringplanmodifier.RequiresReplace(),
				},
			},
			"password": schema.StringAttribute{
				MarkdownDescription: "The password of the user. An imported user has no password in state; the first apply after import records the configured password without changing it on the deployment.",
				Required:            true,
				Sensitive:           true,
			},
			"role": schema.StringAttribute{
				MarkdownDescription: "The role of the user. Redis users take an ACL string such as `-@all +@read`; Ops Manager users take `group_read_only` or `group_data_access_admin`.",
				Optional:            true,
			},
		},
	}
}

func (r *databaseUserResource) Create(ctx context.Context, req resource.CreateRequest, resp *resource.CreateResponse) {
	if !checkConfigured(r.provider, &resp.Diagnostics) {
		return
	}

	var data databaseUserResourceData
	diags := req.Plan.Get(ctx, &data)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	deploymentType, err := r.deploymentType(ctx, data.DeploymentId.ValueString())
	if err != nil {
		resp.Diagnostics.AddError("Create Error", fmt.Sprintf("Unable to call GetDeploymentInfo, got error: %s", err))
		return
	}
	user, err := buildDatabaseUser(deploymentType, data)
	if err != nil {
		resp.Diagnostics.AddError("Create Error", fmt.Sprintf("Unable to build database user, got error: %s", err))
		return
	}

	tflog.Trace(ctx, "create database_user_resource")
	options := clouddatabases.NewCreateDatabaseUserOptions(data.DeploymentId.ValueString(), data.UserType.ValueString(), user)
	result, _, err := r.provider.client.CreateDatabaseUser(ctx, options)
	if err != nil {
		resp.Diagnostics.AddError("Create Error", fmt.Sprintf("Unable to call CreateDatabaseUser, got error: %s", err))
		return
	}
	if err := waitForTask(ctx, r.provider.client, result.Task); err != nil {
		resp.Diagnostics.AddError("Create Error", fmt.Sprintf("Database user task did not complete: %s", err))
		return
	}

	diags = resp.State.Set(ctx, &data)
	resp.Diagnostics.Append(diags...)
}

// Read only checks the deployment still exists; the API does not expose
// users.
func (r *databaseUserResource) Read(ctx context.Context, req resource.ReadRequest, resp *resource.ReadResponse) {
	var data databaseUserResourceData
	diags := req.State.Get(ctx, &data)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Trace(ctx, "read database_user_resource")
	_, err := r.deploymentType(ctx, data.DeploymentId.ValueString())
	if err != nil {
		if isNotFound(err) {
			resp.State.RemoveResource(ctx)
			return
		}
		resp.Diagnostics.AddError("Read Error", fmt.Sprintf("Unable to call GetDeploymentInfo, got error: %s", err))
		return
	}

	diags = resp.State.Set(ctx, &data)
	resp.Diagnostics.Append(diags...)
}

func (r *databaseUserResource) Update(ctx context.Context, req resource.UpdateRequest, resp *resource.UpdateResponse) {
	// get plan
	var plan databaseUserResourceData
	diags := req.Plan.Get(ctx, &plan)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}
	// get state
	var state databaseUserResourceData
	diags = req.State.Get(ctx, &state)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	var updates []clouddatabases.UserUpdate
	update, err := passwordUpdate(plan, state)
	if err != nil {
		resp.Diagnostics.AddError("Update Error", fmt.Sprintf("Unable to build password update, got error: %s", err))
		return
	}
	if update != nil {
		updates = append(updates, update)
	}
	if !plan.Role.Equal(state.Role) {
		deploymentType, err := r.deploymentType(ctx, state.DeploymentId.ValueString())
		if err != nil {
			resp.Diagnostics.AddError("Update Error", fmt.Sprintf("Unable to call GetDeploymentInfo, got error: %s", err))
			return
		}
		if deploymentType != clouddatabases.DeploymentTypeRedis || !IsKnown(plan.Role) {
			resp.Diagnostics.AddError("Update Error", "Only the role of a Redis user can be changed in place")
			return
		}
		update, err := clouddatabases.NewUserUpdateRedisRoleSetting(plan.Role.ValueString())
		if err != nil {
			resp.Diagnostics.AddError("Update Error", fmt.Sprintf("Unable to build role update, got error: %s", err))
			return
		}
		updates = append(updates, update)
	}

	tflog.Trace(ctx, "update database_user_resource")
	for _, update := range updates {
		options := clouddatabases.NewUpdateUserOptions(state.DeploymentId.ValueString(), state.UserType.ValueString(),
			state.Username.ValueString(), update)
		result, _, err := r.provider.client.UpdateUser(ctx, options)
		if err != nil {
			resp.Diagnostics.AddError("Update Error", fmt.Sprintf("Unable to call UpdateUser, got error: %s", err))
			return
		}
		if err := waitForTask(ctx, r.provider.client, result.Task); err != nil {
			resp.Diagnostics.AddError("Update Error", fmt.Sprintf("Database user task did not complete: %s", err))
			return
		}
	}

	state.Password = plan.Password
	state.Role = plan.Role

	// save into the Terraform state.
	diags = resp.State.Set(ctx, &state)
	resp.Diagnostics.Append(diags...)
}

func (r *databaseUserResource) Delete(ctx context.Context, req resource.DeleteRequest, resp *resource.DeleteResponse) {
	var data databaseUserResourceData
	resp.Diagnostics.Append(req.State.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	tflog.Trace(ctx, "delete database_user_resource")
	options := clouddatabases.NewDeleteDatabaseUserOptions(data.DeploymentId.ValueString(), data.UserType.ValueString(), data.Username.ValueString())
	result, _, err := r.provider.client.DeleteDatabaseUser(ctx, options)
	if err != nil {
		if isNotFound(err) {
			return
		}
		resp.Diagnostics.AddError("Delete Error", fmt.Sprintf("Unable to call DeleteDatabaseUser, got error: %s", err))
		return
	}
	if err := waitForTask(ctx, r.provider.client, result.Task); err != nil {
		resp.Diagnostics.AddError("Delete Error", fmt.Sprintf("Database user task did not complete: %s", err))
	}
}

func (r *databaseUserResource) ImportState(ctx context.Context, req resource.ImportStateRequest, resp *resource.ImportStateResponse) {
	idParts := strings.Split(req.ID, ",")

	if len(idParts) != 3 || idParts[0] == "" || idParts[1] == "" || idParts[2] == "" {
		resp.Diagnostics.AddError(
			"Unexpected Import Identifier",
			fmt.Sprintf("Expected import identifier with format: deployment_id,user_type,username. Got: %q", req.ID),
		)
		return
	}

	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("deployment_id"), idParts[0])...)
	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("user_type"), idParts[1])...)
	resp.Diagnostics.Append(resp.State.SetAttribute(ctx, path.Root("username"), idParts[2])...)
}

func (r *databaseUserResource) deploymentType(ctx context.Context, deploymentId string) (string, error) {
	info, _, err := r.provider.client.GetDeploymentInfo(ctx, clouddatabases.NewGetDeploymentInfoOptions(deploymentId))
	if err != nil {
		return "", err
	}
	if info.Deployment == nil || info.Deployment.Type == nil {
		return "", errors.NotFoundf("type of deployment %s", deploymentId)
	}
	return *info.Deployment.Type, nil
}

// passwordUpdate returns the update for a changed password, or nil. State
// holds no password after an import, so the configured one is adopted.
func passwordUpdate(plan, state databaseUserResourceData) (clouddatabases.UserUpdate, error) {
	if state.Password.IsNull() || plan.Password.Equal(state.Password) {
		return nil, nil
	}
	update, err := clouddatabases.NewUserUpdatePasswordSetting(plan.Password.ValueString())
	if err != nil {
		return nil, err
	}
	return update, nil
}

// buildDatabaseUser picks the user shape the deployment type expects.
func buildDatabaseUser(deploymentType string, data databaseUserResourceData) (clouddatabases.User, error) {
	username := data.Username.ValueString()
	password := data.Password.ValueString()

	switch {
	case data.UserType.ValueString() == clouddatabases.UserTypeOpsManager:
		user, err := clouddatabases.NewUserOpsManagerUser(username, password)
		if err != nil {
			return nil, err
		}
		if IsKnown(data.Role) {
			user.SetRole(data.Role.ValueString())
		}
		return user, nil
	case deploymentType == clouddatabases.DeploymentTypeRedis:
		user, err := clouddatabases.NewUserRedisDatabaseUser(username, password)
		if err != nil {
			return nil, err
		}
		if IsKnown(data.Role) {
			user.SetRole(data.Role.ValueString())
		}
		return user, nil
	}

	if IsKnown(data.Role) {
		return nil, errors.NotSupportedf("role for %s users", deploymentType)
	}
	user, err := clouddatabases.NewUserDatabaseUser(username, password)
	if err != nil {
		return nil, err
	}
	return user, nil
}
