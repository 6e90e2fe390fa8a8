package config

import (
	"fmt"
	"os"

	apperrors "github.com/ksyq12/gvm-config/internal/errors"
	"github.com/ksyq12/gvm-config/internal/logger"
	"github.com/spf13/pflag"
)

// Built-in defaults used when neither the command line, the environment nor
// a settings file supplies a value.
const (
	DefaultDestination                        = "out"
	DefaultSource                             = "templates"
	DefaultNginxHost                          = "localhost"
	DefaultNginxHTTPPort               uint16 = 9392
	DefaultNginxHTTPSPort              uint16 = 443
	DefaultNginxServerCertificate             = "/etc/nginx/certs/server.cert.pem"
	DefaultNginxServerKey                     = "/etc/nginx/certs/server.key"
	DefaultNginxContentSecurityPolicy         = "default-src 'none'; object-src 'none'; base-uri 'none'; connect-src 'self'; script-src 'self'; script-src-elem 'self' 'unsafe-inline';frame-ancestors 'none'; form-action 'self'; style-src-elem 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; font-src 'self';img-src 'self' blob: data:;"
	DefaultNginxStrictTransportSecurity       = "max-age=31536000; includeSubDomains;"
	DefaultNginxXFrameOptions                 = "SAMEORIGIN"
)

// Config is the resolved configuration for one invocation.
type Config struct {
	Destination            string
	Source                 string
	EnableFeedKeyService   bool
	NginxHost              string
	NginxHTTPPort          uint16
	NginxHTTPSPort         uint16
	NginxServerCertificate string
	NginxServerKey         string

	// NginxAccessControlAllowOriginHeader is nil unless supplied explicitly.
	NginxAccessControlAllowOriginHeader *string

	NginxContentSecurityPolicyHeader   string
	NginxStrictTransportSecurityHeader string
	NginxXFrameOptionsHeader           string
}

// Default returns a Config holding every built-in default.
func Default() Config {
	return Config{
		Destination:                        DefaultDestination,
		Source:                             DefaultSource,
		NginxHost:                          DefaultNginxHost,
		NginxHTTPPort:                      DefaultNginxHTTPPort,
		NginxHTTPSPort:                     DefaultNginxHTTPSPort,
		NginxServerCertificate:             DefaultNginxServerCertificate,
		NginxServerKey:                     DefaultNginxServerKey,
		NginxContentSecurityPolicyHeader:   DefaultNginxContentSecurityPolicy,
		NginxStrictTransportSecurityHeader: DefaultNginxStrictTransportSecurity,
		NginxXFrameOptionsHeader:           DefaultNginxXFrameOptions,
	}
}

// AccessControlAllowOrigin returns the explicit header value, or
// https://{host}:{https port} when none was supplied.
func (c Config) AccessControlAllowOrigin() string {
	if c.NginxAccessControlAllowOriginHeader != nil {
		return *c.NginxAccessControlAllowOriginHeader
	}
	return fmt.Sprintf("https://%s:%d", c.NginxHost, c.NginxHTTPSPort)
}

// Origins of a resolved value.
const (
	OriginDefault  = "default"
	OriginFlag     = "flag"
	OriginEnv      = "env"
	OriginSettings = "settings"
)

// Resolver binds the options to a flag set and resolves them against the
// environment and an optional settings file.
type Resolver struct {
	flags *pflag.FlagSet
	cfg   Config

	allowOrigin  string
	settingsPath string
	envFiles     []string

	origins map[string]string
}

// NewResolver registers every option on fs.
func NewResolver(fs *pflag.FlagSet) *Resolver {
	r := &Resolver{
		flags:   fs,
		cfg:     Default(),
		origins: make(map[string]string),
	}
	d := Default()

	fs.StringVar(&r.cfg.Destination, FlagDestination, d.Destination, "Destination directory for the rendered templates")
	fs.StringVar(&r.cfg.Source, FlagSource, d.Source, "Source directory for the templates")
	fs.BoolVar(&r.cfg.EnableFeedKeyService, FlagEnableFeedKeyService, d.EnableFeedKeyService, "Enable the feed key service")
	fs.StringVar(&r.cfg.NginxHost, FlagNginxHost, d.NginxHost, "Nginx server host name")
	fs.Uint16Var(&r.cfg.NginxHTTPPort, FlagNginxHTTPPort, d.NginxHTTPPort, "Nginx HTTP port")
	fs.Uint16Var(&r.cfg.NginxHTTPSPort, FlagNginxHTTPSPort, d.NginxHTTPSPort, "Nginx HTTPS port")
	fs.StringVar(&r.cfg.NginxServerCertificate, FlagNginxServerCertificate, d.NginxServerCertificate, "Path to the server certificate")
	fs.StringVar(&r.cfg.NginxServerKey, FlagNginxServerKey, d.NginxServerKey, "Path to the server key")
	fs.StringVar(&r.allowOrigin, FlagNginxAccessControlAllowOrigin, "", "Access-Control-Allow-Origin header (default https://<host>:<https port>)")
	fs.StringVar(&r.cfg.NginxContentSecurityPolicyHeader, FlagNginxContentSecurityPolicy, d.NginxContentSecurityPolicyHeader, "Content-Security-Policy header")
	fs.StringVar(&r.cfg.NginxStrictTransportSecurityHeader, FlagNginxStrictTransportSecurity, d.NginxStrictTransportSecurityHeader, "Strict-Transport-Security header")
	fs.StringVar(&r.cfg.NginxXFrameOptionsHeader, FlagNginxXFrameOptions, d.NginxXFrameOptionsHeader, "X-Frame-Options header")

	fs.StringVar(&r.settingsPath, FlagSettings, "", "YAML settings file (env "+EnvSettings+")")
	fs.StringArrayVar(&r.envFiles, FlagEnvFile, nil, "dotenv file read before resolving (repeatable)")

	return r
}

// Resolve applies the environment and the settings file to every option not
// given on the command line and returns the resulting Config. A nil
// lookupEnv uses os.LookupEnv.
func (r *Resolver) Resolve(lookupEnv func(string) (string, bool)) (Config, error) {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	lookup := lookupEnv
	if len(r.envFiles) > 0 {
		dotenv, err := ReadEnvFiles(r.envFiles...)
		if err != nil {
			return Config{}, err
		}
		lookup = chainLookup(lookupEnv, mapLookup(dotenv))
	}

	settingsPath := r.settingsPath
	if settingsPath == "" {
		if v, ok := lookup(EnvSettings); ok && v != "" {
			settingsPath = v
		}
	}

	var settings map[string]string
	if settingsPath != "" {
		var err error
		settings, err = LoadFile(settingsPath)
		if err != nil {
			return Config{}, err
		}
		logger.Debug("Loaded %d settings from %s", len(settings), settingsPath)
	}

	allowOriginSet := false
	for _, opt := range Options() {
		f := r.flags.Lookup(opt.Flag)
		if f == nil {
			return Config{}, fmt.Errorf("option %s is not registered", opt.Flag)
		}

		origin := OriginDefault
		switch {
		case f.Changed:
			origin = OriginFlag
		default:
			if v, ok := lookup(opt.Env); ok && v != "" {
				if err := f.Value.Set(v); err != nil {
					return Config{}, apperrors.InvalidValue("--"+opt.Flag, opt.Env, v, err)
				}
				origin = OriginEnv
			} else if v, ok := settings[opt.Key]; ok {
				if err := f.Value.Set(v); err != nil {
					return Config{}, apperrors.InvalidValue("--"+opt.Flag, settingsPath, v, err)
				}
				origin = OriginSettings
			}
		}

		r.origins[opt.Flag] = origin
		if opt.Flag == FlagNginxAccessControlAllowOrigin && origin != OriginDefault {
			allowOriginSet = true
		}

		logger.DebugFields("option resolved", map[string]interface{}{
			"option": opt.Flag,
			"origin": origin,
		})
	}

	cfg := r.cfg
	if allowOriginSet {
		v := r.allowOrigin
		cfg.NginxAccessControlAllowOriginHeader = &v
	}
	return cfg, nil
}

// Origin reports where the named option's value came from after Resolve.
func (r *Resolver) Origin(flag string) string {
	if o, ok := r.origins[flag]; ok {
		return o
	}
	return OriginDefault
}

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// chainLookup returns the first non-empty value found.
func chainLookup(lookups ...func(string) (string, bool)) func(string) (string, bool) {
	return func(key string) (string, bool) {
		for _, l := range lookups {
			if v, ok := l(key); ok && v != "" {
				return v, true
			}
		}
		return "", false
	}
}
