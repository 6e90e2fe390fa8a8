// Package template renders a directory of nginx configuration templates.
//
// Templates use Jinja syntax (rendered by gonja) and are discovered
// recursively under a source directory by their .template suffix:
//
//	templates/
//	  nginx.conf.template
//	  conf.d/default.conf.template
//
// Rendering into out/ produces:
//
//	out/
//	  nginx.conf
//	  conf.d/default.conf
//
// # Pipeline
//
// Run performs, in order:
//  1. ValidateSource: the source must be an existing directory
//  2. Discover: every template is parsed; one parse error aborts the run
//  3. NewContext: the render context is built once from the config
//  4. PrepareDestination: the destination is created if missing
//  5. Set.Render: each template is written; failures are recorded per
//     template and do not stop the others
//
// Steps 1, 2 and 4 return an error. Step 5 returns a Report whose Failed
// outcomes decide the exit status.
//
// # Template Data
//
// Templates receive these variables:
//   - enable_feed_key_service: bool
//   - nginx_host: server name
//   - nginx_http_port, nginx_https_port: integers
//   - nginx_server_certificate, nginx_server_key: file paths
//   - nginx_access_control_allow_origin_header: explicit value or
//     https://{nginx_host}:{nginx_https_port}
//   - nginx_content_security_policy_header
//   - nginx_strict_transport_security_header
//   - nginx_x_frame_options_header
//
// A name that is not in this list fails the template that uses it.
//
// Templates may extend or include each other by their path relative to the
// source directory, for example {% include "partials/headers.inc.template" %}.
// Included files are templates of the set too and are rendered as well.
//
// Example template:
//
//	server {
//	    listen {{ nginx_https_port }} ssl;
//	    server_name {{ nginx_host }};
//	    ssl_certificate {{ nginx_server_certificate }};
//	    {% if enable_feed_key_service %}
//	    include conf.d/feed-key.conf;
//	    {% endif %}
//	}
package template
