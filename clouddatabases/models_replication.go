package clouddatabases

// LogicalReplicationSlot is a PostgreSQL logical replication slot.
type LogicalReplicationSlot struct {
	Name         *string `json:"name,omitempty" validate:"required"`
	DatabaseName *string `json:"database_name,omitempty" validate:"required"`
	PluginType   *string `json:"plugin_type,omitempty" validate:"required"`
}

func NewLogicalReplicationSlot(name, databaseName, pluginType string) (*LogicalReplicationSlot, error) {
	model := &LogicalReplicationSlot{
		Name:         &name,
		DatabaseName: &databaseName,
		PluginType:   &pluginType,
	}
	if err := validateModel(model); err != nil {
		return nil, err
	}
	return model, nil
}

func (s *LogicalReplicationSlot) UnmarshalJSON(data []byte) error {
	type plain LogicalReplicationSlot
	return unmarshalModel(data, "LogicalReplicationSlot", (*plain)(s))
}

type createLogicalReplicationSlotBody struct {
	LogicalReplicationSlot *LogicalReplicationSlot `json:"logical_replication_slot"`
}
