package models

// Operation tags the kind of mirror change reported to info sinks.
type Operation string

const (
	OperationRead   Operation = "read"
	OperationAdd    Operation = "add"
	OperationEdit   Operation = "edit"
	OperationDelete Operation = "delete"
)

// String implements fmt.Stringer.
func (o Operation) String() string {
	return string(o)
}

// Geo is a longitude/latitude pair used by location-scoped collections.
type Geo struct {
	Longitude float64
	Latitude  float64
}
