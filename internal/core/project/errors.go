package project

import "errors"

// =============================================================================
// Error Types
// =============================================================================

var (
	// Name validation errors
	ErrNameRequired = errors.New("project name is required")
	ErrNameTooLong  = errors.New("project name must be at most 100 characters")

	// Port validation errors
	ErrBasePortTooLow  = errors.New("base port must be at least 1025")
	ErrBasePortTooHigh = errors.New("base port must leave room for derived service ports below 65536")

	// Path validation errors
	ErrAppPathRequired    = errors.New("application path is required")
	ErrWorkingDirRequired = errors.New("working directory is required")
	ErrWorkingDirRelative = errors.New("working directory must be an absolute path")

	// PHP validation errors
	ErrPHPVersionRequired = errors.New("php version is required")

	// Database validation errors
	ErrDatabaseEngineUnknown    = errors.New("unknown database engine")
	ErrDatabaseVersionRequired  = errors.New("database version is required")
	ErrDatabaseNameRequired     = errors.New("database name is required")
	ErrDatabaseUserRequired     = errors.New("database username is required")
	ErrDatabasePasswordRequired = errors.New("database password is required")
	ErrRootPasswordRequired     = errors.New("database root password is required")

	// Search/cache validation errors
	ErrElasticsearchVersionRequired = errors.New("elasticsearch version is required")
	ErrRedisVersionRequired         = errors.New("redis version is required")
	ErrMemcachedVersionRequired     = errors.New("memcached version is required")
)
