package ptero

import (
	"context"
	"net/http"
	"time"
)

// ServersClient manages servers.
type ServersClient interface {
	List(ctx context.Context) ([]Server, error)
	Get(ctx context.Context, id int) (*Server, error)
	Create(ctx context.Context, request *CreateServerRequest) (*Server, error)
	Delete(ctx context.Context, id int) error
	// ForceDelete removes the server even if it still has backups or other
	// attached resources.
	ForceDelete(ctx context.Context, id int) error
}

// NodesClient manages nodes.
type NodesClient interface {
	List(ctx context.Context) ([]Node, error)
	Get(ctx context.Context, id int) (*Node, error)
	Create(ctx context.Context, request *CreateNodeRequest) (*Node, error)
	Update(ctx context.Context, id int, request *UpdateNodeRequest) (*Node, error)
	Delete(ctx context.Context, id int) error
}

// AllocationsClient manages node allocations.
type AllocationsClient interface {
	List(ctx context.Context, nodeID int) ([]Allocation, error)
	Create(ctx context.Context, nodeID int, request *CreateAllocationRequest) error
	Delete(ctx context.Context, allocationID int) error
}

// NestsClient reads nests and their eggs. The include parameters on egg
// reads request related resources (e.g. "variables", "config") in the
// response.
type NestsClient interface {
	List(ctx context.Context) ([]Nest, error)
	Get(ctx context.Context, id int) (*Nest, error)
	ListEggs(ctx context.Context, nestID int, include ...string) ([]Egg, error)
	GetEgg(ctx context.Context, nestID, eggID int, include ...string) (*Egg, error)
}

// Client is a Pterodactyl application API client. One Client is safe for
// concurrent use from any number of goroutines.
type Client interface {
	Servers() ServersClient
	Nodes() NodesClient
	Allocations() AllocationsClient
	Nests() NestsClient

	// RateLimits returns the quota snapshot from the most recently completed
	// successful response carrying both rate-limit headers, or nil if none
	// has been observed yet.
	RateLimits() *RateLimits
}

// Logger is the structured logger consumed by the HTTP layer's debug mode.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config configures a Client built by pteroclient.New.
//
// PanelURL and APIKey are required. PanelURL is normalized once at
// construction: a scheme is added if missing and the application API path
// segment is appended exactly once. The resulting client is immutable.
//
// Retries are disabled unless RetryMax is set; when enabled they apply
// below the request pipeline at the transport layer. Per-request deadlines
// belong to the caller's context.
type Config struct {
	// PanelURL is the base URL of the panel (e.g. "https://panel.example.com").
	PanelURL string
	// APIKey is the application API key sent as a Bearer credential.
	APIKey string

	// HTTPClient overrides the default shared transport.
	HTTPClient *http.Client
	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// RetryMax enables transport-level retries for transient failures when
	// greater than zero.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is the optional structured logger used by the HTTP layer.
	Logger Logger
}
