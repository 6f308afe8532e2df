package clouddatabases

import (
	"encoding/json"

	"github.com/go-openapi/strfmt"
)

type Backup struct {
	ID             *string          `json:"id,omitempty"`
	DeploymentID   *string          `json:"deployment_id,omitempty"`
	Type           *string          `json:"type,omitempty"`
	Status         *string          `json:"status,omitempty"`
	IsDownloadable *bool            `json:"is_downloadable,omitempty"`
	IsRestorable   *bool            `json:"is_restorable,omitempty"`
	CreatedAt      *strfmt.DateTime `json:"created_at,omitempty"`
	DownloadLink   *string          `json:"download_link,omitempty"`
}

func (b *Backup) UnmarshalJSON(data []byte) error {
	type plain Backup
	if err := json.Unmarshal(data, (*plain)(b)); err != nil {
		return err
	}
	b.CreatedAt = canonicalDateTime(b.CreatedAt)
	return nil
}

type Backups struct {
	Backups []Backup `json:"backups,omitempty"`
}

type GetBackupInfoResponse struct {
	Backup *Backup `json:"backup,omitempty"`
}
