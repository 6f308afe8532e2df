package clouddatabases

import (
	"fmt"
	"runtime"
)

const (
	ServiceName    = "cloud_databases"
	ServiceVersion = "V5"
	Version        = "0.3.0"

	sdkName = "clouddatabases-go-sdk"
)

// GetSdkHeaders returns the headers that identify this client and the
// operation being called.
func GetSdkHeaders(serviceName, serviceVersion, operationID string) map[string]string {
	return map[string]string{
		"User-Agent": fmt.Sprintf("%s-%s %s", sdkName, Version, systemInfo()),
		"X-IBMCloud-SDK-Analytics": fmt.Sprintf("service_name=%s;service_version=%s;operation_id=%s",
			serviceName, serviceVersion, operationID),
	}
}

func systemInfo() string {
	return fmt.Sprintf("(lang=go; arch=%s; os=%s; go.version=%s)", runtime.GOARCH, runtime.GOOS, runtime.Version())
}
