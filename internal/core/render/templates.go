package render

import "text/template"

// =============================================================================
// Template Sources
// =============================================================================

// nginxConfTemplate is the vhost served by the webserver container. The FPM
// upstream is addressed by compose service name, so the generated config only
// works inside the project network.
const nginxConfTemplate = `server {
    listen 80 default;

    client_max_body_size {{.MaxBodySize}};

    access_log /var/log/nginx/application.access.log;

    root {{.WebRoot}};
    index {{.FrontController}};

    if (!-e $request_filename) {
        rewrite ^.*$ /{{.FrontController}} last;
    }

    location ~ \.php$ {
        fastcgi_pass {{.FPMHost}};
        fastcgi_index {{.FrontController}};
        fastcgi_param SCRIPT_FILENAME $document_root$fastcgi_script_name;
        fastcgi_param PHP_VALUE "error_log=/var/log/nginx/application_php_errors.log";
        fastcgi_buffers 16 16k;
        fastcgi_buffer_size 32k;
        include fastcgi_params;
    }
}
`

// dockerfileTemplate builds the php-fpm image. Extension packages follow the
// distro naming scheme php{major.minor}-{name}.
const dockerfileTemplate = `FROM {{.BaseImage}}
WORKDIR "{{.WorkingDir}}"

# Fix debconf warnings upon build
ARG DEBIAN_FRONTEND=noninteractive
{{- if .Packages}}

# Install selected extensions
RUN apt-get update \
    && apt-get -y --no-install-recommends install {{.PackageList}} \
    && apt-get clean; rm -rf /var/lib/apt/lists/* /tmp/* /var/tmp/* /usr/share/doc/*
{{- end}}
`

// phpIniTemplate holds the override settings mounted into the FPM container.
const phpIniTemplate = `; Generated on phpdocker.io
memory_limit = {{.MemoryLimit}}
upload_max_filesize = {{.UploadLimit}}
post_max_size = {{.PostLimit}}
`

// readmeTemplate is the project README in GitHub-flavored markdown.
const readmeTemplate = `# {{.Name}}

A Docker environment for PHP {{.PHPVersion}}, generated on phpdocker.io.

## Getting started

From this directory:

` + "```" + `bash
docker compose up -d
` + "```" + `

Your application code lives in ` + "`{{.AppPath}}`" + ` on the host and is mounted
into the containers at ` + "`{{.WorkingDir}}`" + `.

## Services

| Service | Address |
|---------|---------|
{{- range .Services}}
| {{.Name}} | {{.Address}} |
{{- end}}

Services without an address are reachable from the other containers only,
by service name.

## Customising

- PHP settings: edit ` + "`.docker/php-fpm/php-ini-overrides.ini`" + ` and run
  ` + "`docker compose restart {{.Prefix}}-php-fpm`" + `.
- Nginx vhost: edit ` + "`.docker/nginx/nginx.conf`" + ` and run
  ` + "`docker compose restart {{.Prefix}}-webserver`" + `.
- PHP extensions: edit ` + "`.docker/php-fpm/Dockerfile`" + ` and run
  ` + "`docker compose build {{.Prefix}}-php-fpm`" + `.
`

// =============================================================================
// Parsed Templates
// =============================================================================

var (
	nginxTmpl      = template.Must(template.New("nginx").Parse(nginxConfTemplate))
	dockerfileTmpl = template.Must(template.New("dockerfile").Parse(dockerfileTemplate))
	phpIniTmpl     = template.Must(template.New("php-ini").Parse(phpIniTemplate))
	readmeTmpl     = template.Must(template.New("readme").Parse(readmeTemplate))
)
