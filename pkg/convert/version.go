package convert

// Version information for the convert module.
const (
	// Version is the current version of the convert module.
	Version = "1.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "1.0.0"
)
