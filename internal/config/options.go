package config

// Flag names.
const (
	FlagDestination                   = "destination"
	FlagSource                        = "source"
	FlagEnableFeedKeyService          = "enable-feed-key-service"
	FlagNginxHost                     = "nginx-host"
	FlagNginxHTTPPort                 = "nginx-http-port"
	FlagNginxHTTPSPort                = "nginx-https-port"
	FlagNginxServerCertificate        = "nginx-server-certificate"
	FlagNginxServerKey                = "nginx-server-key"
	FlagNginxAccessControlAllowOrigin = "nginx-access-control-allow-origin-header"
	FlagNginxContentSecurityPolicy    = "nginx-content-security-policy-header"
	FlagNginxStrictTransportSecurity  = "nginx-strict-transport-security-header"
	FlagNginxXFrameOptions            = "nginx-x-frame-options-header"

	FlagSettings = "config"
	FlagEnvFile  = "env-file"
)

// EnvSettings names the settings file when --config is not given.
const EnvSettings = "TEMPLATE_CONFIG"

// Option ties a flag to its environment variable and settings file key.
type Option struct {
	Flag string
	Env  string
	Key  string
}

var options = []Option{
	{FlagDestination, "TEMPLATE_DESTINATION", "destination"},
	{FlagSource, "TEMPLATE_SOURCE", "source"},
	{FlagEnableFeedKeyService, "ENABLE_FEED_KEY_SERVICE", "enable_feed_key_service"},
	{FlagNginxHost, "NGINX_HOST", "nginx_host"},
	{FlagNginxHTTPPort, "NGINX_HTTP_PORT", "nginx_http_port"},
	{FlagNginxHTTPSPort, "NGINX_HTTPS_PORT", "nginx_https_port"},
	{FlagNginxServerCertificate, "NGINX_SERVER_CERTIFICATE", "nginx_server_certificate"},
	{FlagNginxServerKey, "NGINX_SERVER_KEY", "nginx_server_key"},
	{FlagNginxAccessControlAllowOrigin, "NGINX_ACCESS_CONTROL_ALLOW_ORIGIN_HEADER", "nginx_access_control_allow_origin_header"},
	{FlagNginxContentSecurityPolicy, "NGINX_CONTENT_SECURITY_POLICY_HEADER", "nginx_content_security_policy_header"},
	{FlagNginxStrictTransportSecurity, "NGINX_STRICT_TRANSPORT_SECURITY_HEADER", "nginx_strict_transport_security_header"},
	{FlagNginxXFrameOptions, "NGINX_X_FRAME_OPTIONS_HEADER", "nginx_x_frame_options_header"},
}

// Options returns every resolvable option in declaration order.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// LookupKey returns the option stored under the settings file key.
func LookupKey(key string) (Option, bool) {
	for _, opt := range options {
		if opt.Key == key {
			return opt, true
		}
	}
	return Option{}, false
}

// IsValidKey checks if key is a known settings file key.
func IsValidKey(key string) bool {
	_, ok := LookupKey(key)
	return ok
}
