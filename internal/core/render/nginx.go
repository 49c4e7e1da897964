package render

import (
	"bytes"
	"fmt"

	"github.com/phpdocker-io/generator/internal/core/project"
)

// NginxConfPath is the relative output path of the vhost config.
const NginxConfPath = ".docker/nginx/nginx.conf"

// Vhost settings that are fixed assets of the generated environment rather
// than user choices.
const (
	frontController = "index.php"
	webRootDir      = "public"
	maxBodySize     = "108M"
	fpmPort         = 9000
)

// NginxConf renders the vhost served by the webserver container. The web
// root is the public/ directory under the container working dir, and PHP
// requests are proxied to the php-fpm service by its compose name.
//
// Example:
//
//	path, contents, err := render.NginxConf(opts)
//	// path == ".docker/nginx/nginx.conf"
func NginxConf(opts project.Options) (string, []byte, error) {
	data := struct {
		MaxBodySize     string
		WebRoot         string
		FrontController string
		FPMHost         string
	}{
		MaxBodySize:     maxBodySize,
		WebRoot:         opts.WorkingDir + "/" + webRootDir,
		FrontController: frontController,
		FPMHost:         fmt.Sprintf("%s-php-fpm:%d", opts.ServicePrefix(), fpmPort),
	}

	var buf bytes.Buffer
	if err := nginxTmpl.Execute(&buf, data); err != nil {
		return "", nil, NewRenderError(NginxConfPath, err.Error(), ErrTemplateFailed)
	}
	return NginxConfPath, buf.Bytes(), nil
}
