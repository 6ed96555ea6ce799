package ptero

import (
	"encoding/json"
	"fmt"
)

// Server represents a server managed by the application API.
type Server struct {
	ID            int                 `json:"id"                    yaml:"id"`
	ExternalID    *string             `json:"external_id,omitempty" yaml:"external_id,omitempty"`
	UUID          string              `json:"uuid"                  yaml:"uuid"`
	Identifier    string              `json:"identifier"            yaml:"identifier"`
	Name          string              `json:"name"                  yaml:"name"`
	Description   string              `json:"description"           yaml:"description"`
	Status        *string             `json:"status,omitempty"      yaml:"status,omitempty"`
	Suspended     bool                `json:"suspended"             yaml:"suspended"`
	Limits        ServerLimits        `json:"limits"                yaml:"limits"`
	FeatureLimits ServerFeatureLimits `json:"feature_limits"        yaml:"feature_limits"`
	User          int                 `json:"user"                  yaml:"user"`
	Node          int                 `json:"node"                  yaml:"node"`
	Allocation    int                 `json:"allocation"            yaml:"allocation"`
	Nest          int                 `json:"nest"                  yaml:"nest"`
	Egg           int                 `json:"egg"                   yaml:"egg"`
	Container     ServerContainer     `json:"container"             yaml:"container"`
}

// ServerLimits holds a server's resource limits.
type ServerLimits struct {
	Memory      int   `json:"memory"                 yaml:"memory"`
	Swap        int   `json:"swap"                   yaml:"swap"`
	Disk        int   `json:"disk"                   yaml:"disk"`
	IO          int   `json:"io"                     yaml:"io"`
	CPU         int   `json:"cpu"                    yaml:"cpu"`
	Threads     *int  `json:"threads,omitempty"      yaml:"threads,omitempty"`
	OOMDisabled *bool `json:"oom_disabled,omitempty" yaml:"oom_disabled,omitempty"`
}

// ServerFeatureLimits holds a server's feature limits.
type ServerFeatureLimits struct {
	Databases   int `json:"databases"   yaml:"databases"`
	Allocations int `json:"allocations" yaml:"allocations"`
	Backups     int `json:"backups"     yaml:"backups"`
}

// ServerContainer holds a server's container settings.
type ServerContainer struct {
	StartupCommand string         `json:"startup_command" yaml:"startup_command"`
	Image          string         `json:"image"           yaml:"image"`
	Installed      InstalledState `json:"installed"       yaml:"installed"`
	Environment    map[string]any `json:"environment"     yaml:"environment"`
}

// InstalledState is a bool that also accepts the panel's legacy 0/1 numeric
// encoding.
type InstalledState bool

// UnmarshalJSON accepts true/false as well as 0/1.
func (s *InstalledState) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch v := value.(type) {
	case bool:
		*s = InstalledState(v)
	case float64:
		*s = v != 0
	default:
		return fmt.Errorf("installed: expected boolean or number, got %T", value)
	}

	return nil
}

// Bool returns the state as a plain bool.
func (s InstalledState) Bool() bool { return bool(s) }

// CreateServerRequest is the body for creating a server.
type CreateServerRequest struct {
	Name          string              `json:"name"           yaml:"name"`
	User          int                 `json:"user"           yaml:"user"`
	Egg           int                 `json:"egg"            yaml:"egg"`
	DockerImage   string              `json:"docker_image"   yaml:"docker_image"`
	Startup       string              `json:"startup"        yaml:"startup"`
	Environment   map[string]string   `json:"environment"    yaml:"environment"`
	Limits        ServerLimits        `json:"limits"         yaml:"limits"`
	FeatureLimits ServerFeatureLimits `json:"feature_limits" yaml:"feature_limits"`
	Allocation    AllocationSettings  `json:"allocation"     yaml:"allocation"`
}

// AllocationSettings selects the default allocation for a new server.
type AllocationSettings struct {
	Default int `json:"default" yaml:"default"`
}

// Node represents a node managed by the application API.
type Node struct {
	ID                 int     `json:"id"                    yaml:"id"`
	Public             bool    `json:"public"                yaml:"public"`
	Name               string  `json:"name"                  yaml:"name"`
	Description        *string `json:"description,omitempty" yaml:"description,omitempty"`
	LocationID         int     `json:"location_id"           yaml:"location_id"`
	FQDN               string  `json:"fqdn"                  yaml:"fqdn"`
	Scheme             string  `json:"scheme"                yaml:"scheme"`
	BehindProxy        bool    `json:"behind_proxy"          yaml:"behind_proxy"`
	MaintenanceMode    bool    `json:"maintenance_mode"      yaml:"maintenance_mode"`
	Memory             int     `json:"memory"                yaml:"memory"`
	MemoryOverallocate int     `json:"memory_overallocate"   yaml:"memory_overallocate"`
	Disk               int     `json:"disk"                  yaml:"disk"`
	DiskOverallocate   int     `json:"disk_overallocate"     yaml:"disk_overallocate"`
	UploadSize         int     `json:"upload_size"           yaml:"upload_size"`
	DaemonListen       int     `json:"daemon_listen"         yaml:"daemon_listen"`
	DaemonSFTP         int     `json:"daemon_sftp"           yaml:"daemon_sftp"`
	DaemonBase         string  `json:"daemon_base"           yaml:"daemon_base"`
	CreatedAt          string  `json:"created_at"            yaml:"created_at"`
	UpdatedAt          string  `json:"updated_at"            yaml:"updated_at"`
}

// CreateNodeRequest is the body for creating a node.
type CreateNodeRequest struct {
	Name               string  `json:"name"                       yaml:"name"`
	Description        *string `json:"description,omitempty"      yaml:"description,omitempty"`
	LocationID         int     `json:"location_id"                yaml:"location_id"`
	Public             *bool   `json:"public,omitempty"           yaml:"public,omitempty"`
	FQDN               string  `json:"fqdn"                       yaml:"fqdn"`
	Scheme             string  `json:"scheme"                     yaml:"scheme"`
	BehindProxy        *bool   `json:"behind_proxy,omitempty"     yaml:"behind_proxy,omitempty"`
	Memory             int     `json:"memory"                     yaml:"memory"`
	MemoryOverallocate int     `json:"memory_overallocate"        yaml:"memory_overallocate"`
	Disk               int     `json:"disk"                       yaml:"disk"`
	DiskOverallocate   int     `json:"disk_overallocate"          yaml:"disk_overallocate"`
	DaemonBase         *string `json:"daemon_base,omitempty"      yaml:"daemon_base,omitempty"`
	DaemonSFTP         int     `json:"daemon_sftp"                yaml:"daemon_sftp"`
	DaemonListen       int     `json:"daemon_listen"              yaml:"daemon_listen"`
	MaintenanceMode    *bool   `json:"maintenance_mode,omitempty" yaml:"maintenance_mode,omitempty"`
	UploadSize         *int    `json:"upload_size,omitempty"      yaml:"upload_size,omitempty"`
}

// UpdateNodeRequest is the body for updating a node. Nil fields are left
// unchanged by the panel.
type UpdateNodeRequest struct {
	Name               *string `json:"name,omitempty"                yaml:"name,omitempty"`
	Description        *string `json:"description,omitempty"         yaml:"description,omitempty"`
	LocationID         *int    `json:"location_id,omitempty"         yaml:"location_id,omitempty"`
	Public             *bool   `json:"public,omitempty"              yaml:"public,omitempty"`
	FQDN               *string `json:"fqdn,omitempty"                yaml:"fqdn,omitempty"`
	Scheme             *string `json:"scheme,omitempty"              yaml:"scheme,omitempty"`
	BehindProxy        *bool   `json:"behind_proxy,omitempty"        yaml:"behind_proxy,omitempty"`
	Memory             *int    `json:"memory,omitempty"              yaml:"memory,omitempty"`
	MemoryOverallocate *int    `json:"memory_overallocate,omitempty" yaml:"memory_overallocate,omitempty"`
	Disk               *int    `json:"disk,omitempty"                yaml:"disk,omitempty"`
	DiskOverallocate   *int    `json:"disk_overallocate,omitempty"   yaml:"disk_overallocate,omitempty"`
	DaemonBase         *string `json:"daemon_base,omitempty"         yaml:"daemon_base,omitempty"`
	DaemonSFTP         *int    `json:"daemon_sftp,omitempty"         yaml:"daemon_sftp,omitempty"`
	DaemonListen       *int    `json:"daemon_listen,omitempty"       yaml:"daemon_listen,omitempty"`
	MaintenanceMode    *bool   `json:"maintenance_mode,omitempty"    yaml:"maintenance_mode,omitempty"`
	UploadSize         *int    `json:"upload_size,omitempty"         yaml:"upload_size,omitempty"`
}

// Allocation represents an IP/port allocation on a node.
type Allocation struct {
	ID       int     `json:"id"              yaml:"id"`
	Node     *int    `json:"node,omitempty"  yaml:"node,omitempty"`
	IP       string  `json:"ip"              yaml:"ip"`
	Alias    *string `json:"alias,omitempty" yaml:"alias,omitempty"`
	Port     int     `json:"port"            yaml:"port"`
	Assigned bool    `json:"assigned"        yaml:"assigned"`
	Notes    *string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// CreateAllocationRequest is the body for creating allocations on a node.
// Ports accepts single ports ("25565") and ranges ("25566-25570").
type CreateAllocationRequest struct {
	IP    string   `json:"ip"              yaml:"ip"`
	Ports []string `json:"ports"           yaml:"ports"`
	Alias *string  `json:"alias,omitempty" yaml:"alias,omitempty"`
}

// Nest represents a nest (a grouping of eggs).
type Nest struct {
	ID          int    `json:"id"          yaml:"id"`
	UUID        string `json:"uuid"        yaml:"uuid"`
	Author      string `json:"author"      yaml:"author"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
	CreatedAt   string `json:"created_at"  yaml:"created_at"`
	UpdatedAt   string `json:"updated_at"  yaml:"updated_at"`
}

// Egg represents a server template within a nest.
type Egg struct {
	ID            int               `json:"id"                      yaml:"id"`
	UUID          string            `json:"uuid"                    yaml:"uuid"`
	Name          string            `json:"name"                    yaml:"name"`
	Nest          int               `json:"nest"                    yaml:"nest"`
	Author        string            `json:"author"                  yaml:"author"`
	Description   string            `json:"description"             yaml:"description"`
	DockerImage   string            `json:"docker_image"            yaml:"docker_image"`
	DockerImages  map[string]string `json:"docker_images,omitempty" yaml:"docker_images,omitempty"`
	Config        EggConfig         `json:"config"                  yaml:"config"`
	Startup       string            `json:"startup"                 yaml:"startup"`
	Script        EggScript         `json:"script"                  yaml:"script"`
	CreatedAt     string            `json:"created_at"              yaml:"created_at"`
	UpdatedAt     string            `json:"updated_at"              yaml:"updated_at"`
	Relationships *EggRelationships `json:"relationships,omitempty" yaml:"relationships,omitempty"`
}

// EggConfig holds an egg's file, startup, and log configuration. The
// nested documents are panel-defined and left opaque.
type EggConfig struct {
	Files        json.RawMessage `json:"files"             yaml:"files"`
	Startup      json.RawMessage `json:"startup"           yaml:"startup"`
	Stop         string          `json:"stop"              yaml:"stop"`
	Logs         json.RawMessage `json:"logs"              yaml:"logs"`
	FileDenylist []string        `json:"file_denylist"     yaml:"file_denylist"`
	Extends      json.RawMessage `json:"extends,omitempty" yaml:"extends,omitempty"`
}

// EggScript holds an egg's install script information.
type EggScript struct {
	Privileged bool            `json:"privileged"        yaml:"privileged"`
	Install    string          `json:"install"           yaml:"install"`
	Entry      string          `json:"entry"             yaml:"entry"`
	Container  string          `json:"container"         yaml:"container"`
	Extends    json.RawMessage `json:"extends,omitempty" yaml:"extends,omitempty"`
}

// EggRelationships is populated only when the egg was fetched with include
// parameters.
type EggRelationships struct {
	Config    *Object[json.RawMessage] `json:"config,omitempty"    yaml:"config,omitempty"`
	Variables *List[EggVariable]       `json:"variables,omitempty" yaml:"variables,omitempty"`
}

// EggVariable is a startup variable attached to an egg.
type EggVariable struct {
	ID           int    `json:"id"            yaml:"id"`
	EggID        int    `json:"egg_id"        yaml:"egg_id"`
	Name         string `json:"name"          yaml:"name"`
	Description  string `json:"description"   yaml:"description"`
	EnvVariable  string `json:"env_variable"  yaml:"env_variable"`
	DefaultValue string `json:"default_value" yaml:"default_value"`
	UserViewable bool   `json:"user_viewable" yaml:"user_viewable"`
	UserEditable bool   `json:"user_editable" yaml:"user_editable"`
	Rules        string `json:"rules"         yaml:"rules"`
	CreatedAt    string `json:"created_at"    yaml:"created_at"`
	UpdatedAt    string `json:"updated_at"    yaml:"updated_at"`
}
