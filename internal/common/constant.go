package common

const (
	// AuthorizationHeader carries the bearer credential on API requests.
	AuthorizationHeader = "Authorization"

	// BearerPrefix precedes the opaque token in AuthorizationHeader.
	BearerPrefix = "Bearer "
)

// HealthServiceName is the service name the API server reports on its gRPC
// health endpoint and the client probes for.
const HealthServiceName = "showcase.api"
