package render

import (
	"testing"

	"github.com/phpdocker-io/generator/internal/core/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Fixtures
// =============================================================================

func testOptions() project.Options {
	return project.Options{
		BasePort:   8080,
		Name:       "mysite",
		AppPath:    ".",
		WorkingDir: "/application",
		PHP:        project.PHPOptions{Version: "8.3.x"},
	}
}

// =============================================================================
// NginxConf Tests
// =============================================================================

func TestNginxConf_Path(t *testing.T) {
	path, _, err := NginxConf(testOptions())

	require.NoError(t, err)
	assert.Equal(t, ".docker/nginx/nginx.conf", path)
}

func TestNginxConf_Golden(t *testing.T) {
	_, contents, err := NginxConf(testOptions())
	require.NoError(t, err)

	want := `server {
    listen 80 default;

    client_max_body_size 108M;

    access_log /var/log/nginx/application.access.log;

    root /application/public;
    index index.php;

    if (!-e $request_filename) {
        rewrite ^.*$ /index.php last;
    }

    location ~ \.php$ {
        fastcgi_pass mysite-php-fpm:9000;
        fastcgi_index index.php;
        fastcgi_param SCRIPT_FILENAME $document_root$fastcgi_script_name;
        fastcgi_param PHP_VALUE "error_log=/var/log/nginx/application_php_errors.log";
        fastcgi_buffers 16 16k;
        fastcgi_buffer_size 32k;
        include fastcgi_params;
    }
}
`
	assert.Equal(t, want, string(contents))
}

func TestNginxConf_FPMHostUsesServicePrefix(t *testing.T) {
	opts := testOptions()
	opts.Name = "SSmysite"

	_, contents, err := NginxConf(opts)

	require.NoError(t, err)
	assert.Contains(t, string(contents), "fastcgi_pass ssmysite-php-fpm:9000;")
}

func TestNginxConf_WebRootFollowsWorkingDir(t *testing.T) {
	opts := testOptions()
	opts.WorkingDir = "/srv/app"

	_, contents, err := NginxConf(opts)

	require.NoError(t, err)
	assert.Contains(t, string(contents), "root /srv/app/public;")
}

func TestNginxConf_Deterministic(t *testing.T) {
	opts := testOptions()

	_, first, err := NginxConf(opts)
	require.NoError(t, err)
	_, second, err := NginxConf(opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
