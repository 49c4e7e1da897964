// Package project contains the project-configuration domain model.
// This is part of the Functional Core - all functions are pure with no I/O.
//
// An Options value is a validated, immutable snapshot of everything the
// generators need: global settings (base port, project name, paths) plus
// a tagged set of optional per-service configs. A nil feature pointer means
// the feature is disabled; a non-nil pointer carries its settings. This
// replaces capability-query flags with data the type system can check.
package project

import (
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// Defaults
// =============================================================================

const (
	// DefaultBasePort is the host port the webserver binds when none is given.
	DefaultBasePort = 8080

	// DefaultAppPath is the host path mounted into every application container.
	DefaultAppPath = "."

	// DefaultWorkingDir is the in-container working directory.
	DefaultWorkingDir = "/application"

	// DefaultPHPVersion is the PHP series used when none is given.
	DefaultPHPVersion = "8.3.x"
)

// Host port offsets relative to the base port. The webserver itself binds
// the base port; every other exposed service derives its host port from a
// fixed per-service offset so a single base-port choice can never collide
// with itself.
const (
	databasePortOffset = 1
	mailhogPortOffset  = 2
)

// =============================================================================
// Options
// =============================================================================

// Options is the validated project-configuration snapshot driving generation.
//
// Feature fields are pointers: nil means the service is not part of the
// project. The zero value is not usable directly; build one with NewOptions
// and fill in the features, or decode one from configuration and Validate it.
type Options struct {
	// BasePort is the host port for the webserver. Derived service ports
	// (database, mailhog) are computed from it.
	BasePort int

	// Name is the project name as entered. Service names use the lowercased
	// form verbatim; see ServicePrefix.
	Name string

	// AppPath is the host path to the application code, mounted into the
	// webserver, php-fpm and database containers.
	AppPath string

	// WorkingDir is the absolute in-container working directory.
	WorkingDir string

	// PHP is always present; every project has a PHP runtime.
	PHP PHPOptions

	// Optional services. nil = disabled.
	Mailhog       *MailhogOptions
	Database      *DatabaseOptions
	Elasticsearch *ElasticsearchOptions
	Redis         *RedisOptions
	Memcached     *MemcachedOptions
}

// NewOptions creates an Options with defaults filled in. An empty name is
// replaced with a generated one so service names always have a prefix.
func NewOptions(name string) *Options {
	if name == "" {
		name = "project-" + uuid.New().String()[:8]
	}
	return &Options{
		BasePort:   DefaultBasePort,
		Name:       name,
		AppPath:    DefaultAppPath,
		WorkingDir: DefaultWorkingDir,
		PHP:        PHPOptions{Version: DefaultPHPVersion},
	}
}

// ServicePrefix returns the lowercased project name used as the prefix of
// every compose service name.
//
// Note: only case is normalized. Spaces and other characters pass through
// unchanged, so a name like "One Ring" yields "one ring-webserver". Callers
// that need a filesystem- or DNS-safe identifier should use Slug instead.
func (o *Options) ServicePrefix() string {
	return strings.ToLower(o.Name)
}

// Slug returns the URL- and filename-safe form of the project name.
// Used for archive names, never for service names.
func (o *Options) Slug() string {
	return Slugify(o.Name)
}

// DefaultVolume returns the bind-mount string shared by the webserver,
// php-fpm and database services: "{AppPath}:{WorkingDir}".
func (o *Options) DefaultVolume() string {
	return o.AppPath + ":" + o.WorkingDir
}

// WebserverPort returns the host port the webserver binds.
func (o *Options) WebserverPort() int {
	return o.BasePort
}

// =============================================================================
// PHP
// =============================================================================

// PHPOptions holds the PHP runtime settings. Unlike the feature configs it
// is always present.
type PHPOptions struct {
	// Version is the PHP series, e.g. "8.3.x". The trailing ".x" marks a
	// series rather than a point release.
	Version string

	// Extensions lists extra PHP extension packages to install into the
	// FPM image, by short name (e.g. "pgsql", "gd").
	Extensions []string
}

// MajorMinor returns the version with any trailing ".x" series suffix
// stripped: "8.3.x" becomes "8.3". Paths inside the FPM container embed
// this form.
func (p PHPOptions) MajorMinor() string {
	return strings.TrimSuffix(p.Version, ".x")
}

// =============================================================================
// Optional Features
// =============================================================================

// MailhogOptions enables the MailHog mail catcher. It carries no settings of
// its own; the image tag is pinned by the assembler.
type MailhogOptions struct{}

// ExternalPort returns the host port for the MailHog web interface.
func (MailhogOptions) ExternalPort(basePort int) int {
	return basePort + mailhogPortOffset
}

// DatabaseEngine selects which database image the project uses.
type DatabaseEngine string

const (
	EngineMySQL    DatabaseEngine = "mysql"
	EngineMariaDB  DatabaseEngine = "mariadb"
	EnginePostgres DatabaseEngine = "postgres"
)

// IsValid checks if the engine is one of the supported values.
func (e DatabaseEngine) IsValid() bool {
	switch e {
	case EngineMySQL, EngineMariaDB, EnginePostgres:
		return true
	default:
		return false
	}
}

// DatabaseOptions enables a database service.
type DatabaseOptions struct {
	Engine       DatabaseEngine
	Version      string
	RootPassword string
	Name         string
	Username     string
	Password     string
}

// ExternalPort returns the host port the database is published on.
func (DatabaseOptions) ExternalPort(basePort int) int {
	return basePort + databasePortOffset
}

// ContainerPort returns the port the database listens on inside its
// container: 5432 for postgres, 3306 otherwise.
func (d DatabaseOptions) ContainerPort() int {
	if d.Engine == EnginePostgres {
		return 5432
	}
	return 3306
}

// ElasticsearchOptions enables an Elasticsearch service. The service is
// reachable from the other containers only; no host port is published.
type ElasticsearchOptions struct {
	Version string
}

// RedisOptions enables a Redis service. Not published on the host.
type RedisOptions struct {
	Version string
}

// MemcachedOptions enables a Memcached service. Not published on the host.
type MemcachedOptions struct {
	Version string
}
