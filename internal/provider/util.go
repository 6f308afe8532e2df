package provider

import (
	"context"
	cryptorand "crypto/rand"
	"fmt"
	"math/big"
	"net/http"

	"github.com/clouddatabases/terraform-provider-clouddatabases/clouddatabases"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

const (
	CloudDatabasesAPIKey       string = "CLOUD_DATABASES_APIKEY"
	CloudDatabasesBearerToken  string = "CLOUD_DATABASES_BEARER_TOKEN"
	CloudDatabasesURL          string = "CLOUD_DATABASES_URL"
	CloudDatabasesRegion       string = "CLOUD_DATABASES_REGION"
	CloudDatabasesIamURL       string = "CLOUD_DATABASES_AUTH_URL"
	CloudDatabasesDeploymentID string = "CLOUD_DATABASES_DEPLOYMENT_ID"
	UserAgent                  string = "terraform-provider-clouddatabases"
)

const logSubsystem = "clouddatabases"

// HookGlobal sets `*ptr = val` and returns a closure for restoring `*ptr` to
// its original value. A runtime panic will occur if `val` is not assignable to
// `*ptr`.
func HookGlobal[T any](ptr *T, val T) func() {
	orig := *ptr
	*ptr = val
	return func() { *ptr = orig }
}

func GenerateRandomString(n int) string {
	letters := "abcdefghijklmnopqrstuvwxyz"
	letterRunes := []rune(letters)
	b := make([]rune, n)
	for i := range b {
		randNum, _ := cryptorand.Int(cryptorand.Reader, big.NewInt(int64(len(letterRunes))))
		b[i] = letterRunes[randNum.Int64()]
	}
	return string(b)
}

type Knowable interface {
	IsUnknown() bool
	IsNull() bool
}

// IsKnown is a shortcut that checks in a value is neither null nor unknown.
func IsKnown(t Knowable) bool {
	return !t.IsUnknown() && !t.IsNull()
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

func isNotFound(err error) bool {
	serviceErr, ok := clouddatabases.IsServiceError(err)
	return ok && serviceErr.StatusCode == http.StatusNotFound
}

// tflogLogger sends the client's log lines to the provider log.
type tflogLogger struct {
	ctx context.Context
}

func newTflogLogger(ctx context.Context) *tflogLogger {
	return &tflogLogger{ctx: tflog.NewSubsystem(ctx, logSubsystem)}
}

func (l *tflogLogger) Errorf(format string, v ...interface{}) {
	tflog.SubsystemError(l.ctx, logSubsystem, fmt.Sprintf(format, v...))
}

func (l *tflogLogger) Warnf(format string, v ...interface{}) {
	tflog.SubsystemWarn(l.ctx, logSubsystem, fmt.Sprintf(format, v...))
}

func (l *tflogLogger) Debugf(format string, v ...interface{}) {
	tflog.SubsystemDebug(l.ctx, logSubsystem, fmt.Sprintf(format, v...))
}

// providerFromData is shared by the Configure methods of resources and data
// sources.
func providerFromData(providerData any, diags *diag.Diagnostics) *clouddatabasesProvider {
	p, ok := providerData.(*clouddatabasesProvider)
	if !ok {
		diags.AddError("Internal provider error",
			fmt.Sprintf("Error in Configure: expected %T but got %T", &clouddatabasesProvider{}, providerData))
		return nil
	}
	return p
}

func configureDataSource(req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) *clouddatabasesProvider {
	// Prevent panic if the provider has not been configured.
	if req.ProviderData == nil {
		return nil
	}
	return providerFromData(req.ProviderData, &resp.Diagnostics)
}

func configureResource(req resource.ConfigureRequest, resp *resource.ConfigureResponse) *clouddatabasesProvider {
	// Prevent panic if the provider has not been configured.
	if req.ProviderData == nil {
		return nil
	}
	return providerFromData(req.ProviderData, &resp.Diagnostics)
}

func checkConfigured(p *clouddatabasesProvider, diags *diag.Diagnostics) bool {
	if p == nil || !p.configured {
		diags.AddError(
			"Provider not configured",
			"The provider hasn't been configured before apply, likely because it depends on an unknown value from another resource.",
		)
		return false
	}
	return true
}
