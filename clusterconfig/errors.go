package clusterconfig

import "fmt"

type MissingConfigurationError struct {
	Property string
}

func (e MissingConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", e.Property)
}

type InvalidAddressError struct {
	Address string
}

func (e InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid cluster member address %q: must be an IPv4 address", e.Address)
}

// InvalidPropertyError is returned for values that cannot be placed inside the
// single quoted SERVER_START_ARGS of setup.sh.
type InvalidPropertyError struct {
	Property string
	Value    string
}

func (e InvalidPropertyError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: must not contain a single quote", e.Value, e.Property)
}
