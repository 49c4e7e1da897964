package render

import (
	"bytes"
	"fmt"

	"github.com/phpdocker-io/generator/internal/core/project"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Relative output paths of the README pair.
const (
	ReadmePath     = "README.md"
	ReadmeHTMLPath = "README.html"
)

// markdown converts the README to HTML. GFM is needed for the service table.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// serviceRow is one line of the README service table.
type serviceRow struct {
	Name    string
	Address string
}

// ReadmeMarkdown renders the project README: how to run, the service/port
// table and customisation pointers.
func ReadmeMarkdown(opts project.Options) (string, []byte, error) {
	data := struct {
		Name       string
		PHPVersion string
		AppPath    string
		WorkingDir string
		Prefix     string
		Services   []serviceRow
	}{
		Name:       opts.Name,
		PHPVersion: opts.PHP.MajorMinor(),
		AppPath:    opts.AppPath,
		WorkingDir: opts.WorkingDir,
		Prefix:     opts.ServicePrefix(),
		Services:   serviceRows(opts),
	}

	var buf bytes.Buffer
	if err := readmeTmpl.Execute(&buf, data); err != nil {
		return "", nil, NewRenderError(ReadmePath, err.Error(), ErrTemplateFailed)
	}
	return ReadmePath, buf.Bytes(), nil
}

// ReadmeHTML renders the README and converts it to standalone HTML.
func ReadmeHTML(opts project.Options) (string, []byte, error) {
	_, md, err := ReadmeMarkdown(opts)
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	if err := markdown.Convert(md, &buf); err != nil {
		return "", nil, NewRenderError(ReadmeHTMLPath, err.Error(), ErrMarkdownFailed)
	}
	return ReadmeHTMLPath, buf.Bytes(), nil
}

// serviceRows lists the services in compose-document order. Host-reachable
// services get their localhost address; internal-only ones get a dash.
func serviceRows(opts project.Options) []serviceRow {
	prefix := opts.ServicePrefix()
	var rows []serviceRow

	if opts.Mailhog != nil {
		rows = append(rows, serviceRow{
			Name:    prefix + "-mailhog",
			Address: fmt.Sprintf("http://localhost:%d", opts.Mailhog.ExternalPort(opts.BasePort)),
		})
	}
	if opts.Database != nil {
		rows = append(rows, serviceRow{
			Name:    prefix + "-" + string(opts.Database.Engine),
			Address: fmt.Sprintf("localhost:%d", opts.Database.ExternalPort(opts.BasePort)),
		})
	}
	if opts.Elasticsearch != nil {
		rows = append(rows, serviceRow{Name: prefix + "-elasticsearch", Address: "-"})
	}
	if opts.Redis != nil {
		rows = append(rows, serviceRow{Name: prefix + "-redis", Address: "-"})
	}
	if opts.Memcached != nil {
		rows = append(rows, serviceRow{Name: prefix + "-memcached", Address: "-"})
	}

	rows = append(rows, serviceRow{
		Name:    prefix + "-webserver",
		Address: fmt.Sprintf("http://localhost:%d", opts.WebserverPort()),
	})
	rows = append(rows, serviceRow{Name: prefix + "-php-fpm", Address: "-"})

	return rows
}
