package clouddatabases

import (
	"encoding/json"
)

// AllowlistEntry is an IP address or CIDR range allowed to connect to a
// deployment.
type AllowlistEntry struct {
	Address     *string `json:"address,omitempty" validate:"required"`
	Description *string `json:"description,omitempty"`
}

func NewAllowlistEntry(address string) (*AllowlistEntry, error) {
	model := &AllowlistEntry{Address: &address}
	if err := validateModel(model); err != nil {
		return nil, err
	}
	return model, nil
}

func (e *AllowlistEntry) SetDescription(description string) *AllowlistEntry {
	e.Description = &description
	return e
}

func (e *AllowlistEntry) UnmarshalJSON(data []byte) error {
	type plain AllowlistEntry
	return unmarshalModel(data, "AllowlistEntry", (*plain)(e))
}

type GetAllowlistResponse struct {
	IPAddresses []AllowlistEntry `json:"ip_addresses,omitempty"`
}

// Find returns the entry for address, if present.
func (r *GetAllowlistResponse) Find(address string) *AllowlistEntry {
	if r == nil {
		return nil
	}
	for i := range r.IPAddresses {
		if r.IPAddresses[i].Address != nil && *r.IPAddresses[i].Address == address {
			return &r.IPAddresses[i]
		}
	}
	return nil
}

type setAllowlistBody struct {
	IPAddresses []AllowlistEntry
}

// MarshalJSON keeps an empty list on the wire: SetAllowlist with no entries
// clears the allowlist.
func (b setAllowlistBody) MarshalJSON() ([]byte, error) {
	entries := b.IPAddresses
	if entries == nil {
		entries = []AllowlistEntry{}
	}
	return json.Marshal(struct {
		IPAddresses []AllowlistEntry `json:"ip_addresses"`
	}{entries})
}

type addAllowlistEntryBody struct {
	IPAddress *AllowlistEntry `json:"ip_address"`
}
