package export

// Schema version advertised by the version query, independent of any
// weather data.
//
// SchemaMajor increments when an exported field is renamed, retyped, or
// removed. SchemaMinor increments on additive, backward-compatible changes.
const (
	SchemaMajor = 0
	SchemaMinor = 1
)
