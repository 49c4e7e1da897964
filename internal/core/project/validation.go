package project

import "strings"

// =============================================================================
// Validation Functions (Pure)
// =============================================================================

// The generators perform no validation of their own; they assume a valid
// Options. Callers that accept user input (the CLI config layer) run
// Validate before generating.

// maxDerivedPortOffset is the largest per-service port offset in use.
// BasePort + maxDerivedPortOffset must still be a valid port.
const maxDerivedPortOffset = mailhogPortOffset

// ValidateName validates the project name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if len(name) > 100 {
		return ErrNameTooLong
	}
	return nil
}

// ValidateBasePort validates the webserver base port. The lower bound keeps
// projects out of the privileged range; the upper bound leaves room for the
// derived database and mailhog ports.
func ValidateBasePort(port int) error {
	if port < 1025 {
		return ErrBasePortTooLow
	}
	if port > 65535-maxDerivedPortOffset {
		return ErrBasePortTooHigh
	}
	return nil
}

// ValidatePaths validates the app path and working directory.
func ValidatePaths(appPath, workingDir string) []error {
	var errs []error
	if strings.TrimSpace(appPath) == "" {
		errs = append(errs, ErrAppPathRequired)
	}
	switch {
	case strings.TrimSpace(workingDir) == "":
		errs = append(errs, ErrWorkingDirRequired)
	case !strings.HasPrefix(workingDir, "/"):
		errs = append(errs, ErrWorkingDirRelative)
	}
	return errs
}

// ValidatePHP validates the PHP runtime settings.
func ValidatePHP(php PHPOptions) error {
	if strings.TrimSpace(php.Version) == "" {
		return ErrPHPVersionRequired
	}
	return nil
}

// ValidateDatabase validates an enabled database config. Postgres has no
// separate root account, so the root password is only required for the
// MySQL-family engines.
func ValidateDatabase(db DatabaseOptions) []error {
	var errs []error
	if !db.Engine.IsValid() {
		errs = append(errs, ErrDatabaseEngineUnknown)
	}
	if strings.TrimSpace(db.Version) == "" {
		errs = append(errs, ErrDatabaseVersionRequired)
	}
	if strings.TrimSpace(db.Name) == "" {
		errs = append(errs, ErrDatabaseNameRequired)
	}
	if strings.TrimSpace(db.Username) == "" {
		errs = append(errs, ErrDatabaseUserRequired)
	}
	if db.Password == "" {
		errs = append(errs, ErrDatabasePasswordRequired)
	}
	if db.Engine != EnginePostgres && db.RootPassword == "" {
		errs = append(errs, ErrRootPasswordRequired)
	}
	return errs
}

// Validate validates the whole options snapshot and returns all errors found.
func (o *Options) Validate() []error {
	var errs []error

	if err := ValidateName(o.Name); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateBasePort(o.BasePort); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, ValidatePaths(o.AppPath, o.WorkingDir)...)
	if err := ValidatePHP(o.PHP); err != nil {
		errs = append(errs, err)
	}

	if o.Database != nil {
		errs = append(errs, ValidateDatabase(*o.Database)...)
	}
	if o.Elasticsearch != nil && strings.TrimSpace(o.Elasticsearch.Version) == "" {
		errs = append(errs, ErrElasticsearchVersionRequired)
	}
	if o.Redis != nil && strings.TrimSpace(o.Redis.Version) == "" {
		errs = append(errs, ErrRedisVersionRequired)
	}
	if o.Memcached != nil && strings.TrimSpace(o.Memcached.Version) == "" {
		errs = append(errs, ErrMemcachedVersionRequired)
	}

	return errs
}
