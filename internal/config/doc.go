// Package config resolves the gvm-config options into a single immutable
// Config value.
//
// Every option is a typed pflag flag. Values that were not given on the
// command line are looked up, in order, in:
//
//  1. the process environment
//  2. dotenv files passed with --env-file (never overriding 1)
//  3. the YAML settings file named by --config or TEMPLATE_CONFIG
//  4. the built-in default
//
// Environment variables holding an empty string count as unset.
//
// # Settings File
//
// Keys are the option names with underscores:
//
//	nginx_host: proxy.example.com
//	nginx_https_port: 8443
//	enable_feed_key_service: true
//
// Unknown keys and non-scalar values are rejected.
//
// # Validation
//
// Only value syntax is checked: ports must fit in a uint16 and the feed key
// service flag must be a strconv.ParseBool literal. Paths are not checked.
//
// # Usage
//
//	r := config.NewResolver(cmd.Flags())
//	// ... cobra parses the command line ...
//	cfg, err := r.Resolve(os.LookupEnv)
//	origin := cfg.AccessControlAllowOrigin() // https://localhost:443 by default
package config
