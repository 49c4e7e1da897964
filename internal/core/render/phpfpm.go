package render

import (
	"bytes"
	"strings"

	"github.com/phpdocker-io/generator/internal/core/project"
)

// Relative output paths of the php-fpm build context.
const (
	DockerfilePath = ".docker/php-fpm/Dockerfile"
	PHPIniPath     = ".docker/php-fpm/php-ini-overrides.ini"
)

// Override ini settings. Post size leaves headroom above the upload limit.
const (
	memoryLimit = "256M"
	uploadLimit = "100M"
	postLimit   = "108M"
)

// PHPFPMDockerfile renders the Dockerfile building the FPM image. Selected
// extensions are installed as distro packages named php{major.minor}-{ext}.
func PHPFPMDockerfile(opts project.Options) (string, []byte, error) {
	packages := extensionPackages(opts.PHP)

	data := struct {
		BaseImage   string
		WorkingDir  string
		Packages    []string
		PackageList string
	}{
		BaseImage:   "phpdockerio/php:" + opts.PHP.MajorMinor() + "-fpm",
		WorkingDir:  opts.WorkingDir,
		Packages:    packages,
		PackageList: strings.Join(packages, " "),
	}

	var buf bytes.Buffer
	if err := dockerfileTmpl.Execute(&buf, data); err != nil {
		return "", nil, NewRenderError(DockerfilePath, err.Error(), ErrTemplateFailed)
	}
	return DockerfilePath, buf.Bytes(), nil
}

// PHPIniOverrides renders the ini file mounted into the FPM container.
// Settings are fixed; users edit the generated file afterwards.
func PHPIniOverrides(opts project.Options) (string, []byte, error) {
	data := struct {
		MemoryLimit string
		UploadLimit string
		PostLimit   string
	}{
		MemoryLimit: memoryLimit,
		UploadLimit: uploadLimit,
		PostLimit:   postLimit,
	}

	var buf bytes.Buffer
	if err := phpIniTmpl.Execute(&buf, data); err != nil {
		return "", nil, NewRenderError(PHPIniPath, err.Error(), ErrTemplateFailed)
	}
	return PHPIniPath, buf.Bytes(), nil
}

// extensionPackages maps short extension names to distro package names:
// "mysql" under PHP 8.3 becomes "php8.3-mysql".
func extensionPackages(php project.PHPOptions) []string {
	if len(php.Extensions) == 0 {
		return nil
	}
	out := make([]string, len(php.Extensions))
	for i, ext := range php.Extensions {
		out[i] = "php" + php.MajorMinor() + "-" + ext
	}
	return out
}
