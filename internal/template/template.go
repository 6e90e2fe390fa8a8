package template

import (
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ksyq12/gvm-config/internal/config"
	apperrors "github.com/ksyq12/gvm-config/internal/errors"
	"github.com/ksyq12/gvm-config/internal/logger"
	"github.com/nikolalohinski/gonja/v2"
	gonjaconfig "github.com/nikolalohinski/gonja/v2/config"
	"github.com/nikolalohinski/gonja/v2/exec"
	"github.com/nikolalohinski/gonja/v2/loaders"
	"go.uber.org/multierr"
)

// Suffix marks template files under the source directory.
const Suffix = ".template"

// Context holds the values templates are rendered against.
type Context map[string]interface{}

// NewContext builds the render context for cfg.
func NewContext(cfg config.Config) Context {
	return Context{
		"enable_feed_key_service":                  cfg.EnableFeedKeyService,
		"nginx_host":                               cfg.NginxHost,
		"nginx_http_port":                          int(cfg.NginxHTTPPort),
		"nginx_https_port":                         int(cfg.NginxHTTPSPort),
		"nginx_server_certificate":                 cfg.NginxServerCertificate,
		"nginx_server_key":                         cfg.NginxServerKey,
		"nginx_access_control_allow_origin_header": cfg.AccessControlAllowOrigin(),
		"nginx_content_security_policy_header":     cfg.NginxContentSecurityPolicyHeader,
		"nginx_strict_transport_security_header":   cfg.NginxStrictTransportSecurityHeader,
		"nginx_x_frame_options_header":             cfg.NginxXFrameOptionsHeader,
	}
}

// Template is one parsed template file.
type Template struct {
	Name string // slash-separated path relative to the source directory
	Path string // file path on disk

	tpl *exec.Template
}

// Set is every template found under a source directory, ordered by name.
type Set struct {
	Source    string
	templates []*Template
}

// Len returns the number of templates in the set.
func (s *Set) Len() int {
	return len(s.templates)
}

// Names returns the template names in render order.
func (s *Set) Names() []string {
	names := make([]string, len(s.templates))
	for i, t := range s.templates {
		names[i] = t.Name
	}
	return names
}

// ValidateSource checks that path exists and is a directory.
func ValidateSource(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil || os.IsNotExist(err):
		return apperrors.Source(path, errors.New("does not exist or is not a directory"))
	default:
		return apperrors.Source(path, err)
	}
}

// engineConfig is the gonja configuration shared by every template in a set.
// Names missing from the context fail the render instead of printing nothing.
func engineConfig() *gonjaconfig.Config {
	cfg := gonjaconfig.New()
	cfg.StrictUndefined = true
	return cfg
}

// Discover parses every *.template file below source. It fails on the
// first template that does not parse.
//
// Templates are loaded by their path relative to source, so
// {% extends %}, {% include %} and {% import %} refer to other files of
// the set by that same relative name.
func Discover(source string) (*Set, error) {
	set := &Set{Source: source}

	loader, err := loaders.NewFileSystemLoader(source)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeSource, "failed to read templates", err)
	}
	cfg := engineConfig()

	err = filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), Suffix) {
			return nil
		}

		rel, err := filepath.Rel(source, path)
		if err != nil {
			return err
		}

		tpl, err := exec.NewTemplate(rel, cfg, loader, gonja.DefaultEnvironment)
		if err != nil {
			return apperrors.Parse(path, err)
		}

		name := filepath.ToSlash(rel)
		set.templates = append(set.templates, &Template{Name: name, Path: path, tpl: tpl})
		return nil
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrTemplateParse) {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeSource, "failed to read templates", err)
	}

	sort.Slice(set.templates, func(i, j int) bool {
		return set.templates[i].Name < set.templates[j].Name
	})

	return set, nil
}

// PrepareDestination creates path and its parents when missing.
func PrepareDestination(path string) error {
	info, err := os.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		return apperrors.Destination(path, "destination", errors.New("is not a directory"))
	case err == nil:
		return nil
	case !os.IsNotExist(err):
		return apperrors.Destination(path, "failed to inspect destination", err)
	}

	logger.Debug("Creating destination directory %s", path)
	if err := os.MkdirAll(path, 0755); err != nil {
		return apperrors.Destination(path, "failed to create destination", err)
	}
	return nil
}

// OutputPath returns where the template called name is written.
func OutputPath(destination, name string) string {
	return filepath.Join(destination, filepath.FromSlash(strings.TrimSuffix(name, Suffix)))
}

// Outcome records the result of rendering one template.
type Outcome struct {
	Name string
	Path string
	Err  error
}

// OK reports whether the template was rendered.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Report lists the outcome of every template in render order.
type Report struct {
	Destination string
	Outcomes    []Outcome
}

// Rendered returns the successful outcomes.
func (r *Report) Rendered() []Outcome {
	return r.filter(true)
}

// Failed returns the failed outcomes.
func (r *Report) Failed() []Outcome {
	return r.filter(false)
}

func (r *Report) filter(ok bool) []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.OK() == ok {
			out = append(out, o)
		}
	}
	return out
}

// Err combines every failure, or returns nil when all templates rendered.
func (r *Report) Err() error {
	var err error
	for _, o := range r.Failed() {
		err = multierr.Append(err, o.Err)
	}
	return err
}

// Render writes every template in the set below destination. A failing
// template is recorded and the remaining ones are still attempted.
func (s *Set) Render(ctx Context, destination string) *Report {
	report := &Report{Destination: destination}
	for _, t := range s.templates {
		report.Outcomes = append(report.Outcomes, t.render(ctx, destination))
	}
	return report
}

func (t *Template) render(ctx Context, destination string) Outcome {
	out := OutputPath(destination, t.Name)
	o := Outcome{Name: t.Name, Path: out, Err: t.write(ctx, destination, out)}

	fields := map[string]interface{}{
		"template": t.Name,
		"output":   out,
	}
	if o.Err != nil {
		fields["error"] = o.Err.Error()
		logger.ErrorFields("render failed", fields)
		return o
	}
	logger.DebugFields("render finished", fields)
	return o
}

func (t *Template) write(ctx Context, destination, out string) error {
	if dir := filepath.Dir(out); dir != filepath.Clean(destination) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.Render(dir, "failed to create directory", err)
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return apperrors.Render(out, "failed to create file", err)
	}

	// gonja contexts are mutable; hand each template a copy
	renderErr := t.tpl.Execute(f, exec.NewContext(maps.Clone(ctx)))
	closeErr := f.Close()

	switch {
	case renderErr != nil:
		return apperrors.Render(t.Name, "failed to render template", renderErr)
	case closeErr != nil:
		return apperrors.Render(out, "failed to write file", closeErr)
	}
	return nil
}

// Run executes the whole pipeline for cfg. Source, parse and destination
// problems are returned as errors; per-template failures are in the report.
func Run(cfg config.Config) (*Report, error) {
	if err := ValidateSource(cfg.Source); err != nil {
		return nil, err
	}

	set, err := Discover(cfg.Source)
	if err != nil {
		return nil, err
	}
	logger.Info("Discovered %d templates in %s: %s", set.Len(), cfg.Source, strings.Join(set.Names(), ", "))

	ctx := NewContext(cfg)

	if err := PrepareDestination(cfg.Destination); err != nil {
		return nil, err
	}

	return set.Render(ctx, cfg.Destination), nil
}
