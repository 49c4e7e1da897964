package compose

import (
	"bytes"
	"fmt"

	"github.com/phpdocker-io/generator/internal/core/project"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// MailhogImage is the pinned MailHog image. MailHog has no meaningful
	// version selection so the tag is always latest.
	MailhogImage = "mailhog/mailhog:latest"

	// WebserverImage is the pinned nginx image.
	WebserverImage = "nginx:alpine"

	// PHPFPMBuildContext is the build-context path of the php-fpm service,
	// relative to the directory holding the compose file. php-fpm is the
	// only service built from a Dockerfile rather than pulled.
	PHPFPMBuildContext = ".docker/php-fpm"

	// NginxConfMount binds the generated nginx vhost into the webserver.
	NginxConfMount = "./.docker/nginx/nginx.conf:/etc/nginx/conf.d/default.conf"

	// mailhogUIPort is the in-container port of the MailHog web interface.
	mailhogUIPort = 8025

	// indentWidth is the YAML indentation step of the rendered document.
	indentWidth = 4
)

// =============================================================================
// Public API
// =============================================================================

// Generate assembles the compose document for opts, serializes it and
// applies the cosmetic post-processing. It returns the fixed relative
// filename and the final text, ready to write to disk verbatim.
//
// Generate is deterministic: identical options produce byte-identical text.
//
// Example:
//
//	name, text, err := compose.Generate(opts)
//	// name == "docker-compose.yml"
func Generate(opts project.Options) (filename string, contents string, err error) {
	contents, err = Assemble(opts).Render()
	if err != nil {
		return "", "", err
	}
	return Filename, contents, nil
}

// Assemble maps the options snapshot to an ordered compose document. Every
// optional service appears if and only if its options are present; the
// webserver and php-fpm services are always last, in that order.
func Assemble(opts project.Options) Document {
	var (
		prefix        = opts.ServicePrefix()
		defaultVolume = opts.DefaultVolume()
	)

	doc := Document{Version: FormatVersion}

	if opts.Mailhog != nil {
		doc.Services.Add(prefix+"-mailhog", Service{
			Image: MailhogImage,
			Ports: []string{portMapping(opts.Mailhog.ExternalPort(opts.BasePort), mailhogUIPort)},
		})
	}

	if opts.Database != nil {
		doc.Services.Add(prefix+"-"+string(opts.Database.Engine),
			databaseService(opts, *opts.Database, defaultVolume))
	}

	if opts.Elasticsearch != nil {
		doc.Services.Add(prefix+"-elasticsearch", Service{
			Image: "elasticsearch:" + opts.Elasticsearch.Version,
		})
	}

	if opts.Redis != nil {
		doc.Services.Add(prefix+"-redis", Service{
			Image: "redis:" + opts.Redis.Version,
		})
	}

	if opts.Memcached != nil {
		doc.Services.Add(prefix+"-memcached", Service{
			Image: "memcached:" + opts.Memcached.Version,
		})
	}

	doc.Services.Add(prefix+"-webserver", Service{
		Image:      WebserverImage,
		WorkingDir: opts.WorkingDir,
		Volumes:    []string{defaultVolume, NginxConfMount},
		Ports:      []string{portMapping(opts.WebserverPort(), 80)},
	})

	doc.Services.Add(prefix+"-php-fpm", Service{
		Build:      PHPFPMBuildContext,
		WorkingDir: opts.WorkingDir,
		Volumes:    []string{defaultVolume, phpIniMount(opts.PHP)},
	})

	return doc
}

// Render serializes the document with 4-space indentation and applies the
// banner header and service-block spacing.
func (d Document) Render() (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indentWidth)
	if err := enc.Encode(d); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	return Header + spaceServiceBlocks(buf.String()), nil
}

// =============================================================================
// Service Builders
// =============================================================================

// databaseService builds the database definition. The engine doubles as the
// service-name suffix and the image repository, so a mysql project gets a
// "{prefix}-mysql" service running "mysql:{version}".
func databaseService(opts project.Options, db project.DatabaseOptions, defaultVolume string) Service {
	return Service{
		Image:       string(db.Engine) + ":" + db.Version,
		WorkingDir:  opts.WorkingDir,
		Volumes:     []string{defaultVolume},
		Environment: databaseEnvironment(db),
		Ports:       []string{portMapping(db.ExternalPort(opts.BasePort), db.ContainerPort())},
	}
}

// databaseEnvironment returns the literal KEY=value strings seeding the
// database container, in the order the images document them.
func databaseEnvironment(db project.DatabaseOptions) []string {
	if db.Engine == project.EnginePostgres {
		return []string{
			"POSTGRES_PASSWORD=" + db.Password,
			"POSTGRES_DB=" + db.Name,
			"POSTGRES_USER=" + db.Username,
		}
	}
	return []string{
		"MYSQL_ROOT_PASSWORD=" + db.RootPassword,
		"MYSQL_DATABASE=" + db.Name,
		"MYSQL_USER=" + db.Username,
		"MYSQL_PASSWORD=" + db.Password,
	}
}

// phpIniMount binds the generated PHP override file into the FPM container.
// The in-container path embeds the major.minor version, so "8.3.x" mounts
// under /etc/php/8.3/.
func phpIniMount(php project.PHPOptions) string {
	return fmt.Sprintf("./.docker/php-fpm/php-ini-overrides.ini:/etc/php/%s/fpm/conf.d/99-overrides.ini",
		php.MajorMinor())
}

// portMapping formats a "{host}:{container}" publish entry.
func portMapping(host, container int) string {
	return fmt.Sprintf("%d:%d", host, container)
}
