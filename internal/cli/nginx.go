package cli

import (
	"github.com/ksyq12/gvm-config/internal/config"
	"github.com/ksyq12/gvm-config/internal/output"
	"github.com/ksyq12/gvm-config/internal/template"
	"github.com/spf13/cobra"
)

func newNginxConfigCmd(opts *rootOptions) *cobra.Command {
	var resolver *config.Resolver

	cmd := &cobra.Command{
		Use:   "nginx-config",
		Short: "Render nginx templates to a destination directory",
		Long: `Render every *.template file found under the source directory into the
destination directory, keeping the directory layout and stripping the
.template suffix.

All templates are parsed before anything is written. A template that fails
to render does not stop the others, but the command exits with status 1.

Examples:
  gvm-config nginx-config
  gvm-config nginx-config --source ./templates --destination /etc/nginx
  NGINX_HOST=example.com gvm-config nginx-config --nginx-https-port 8443
  gvm-config nginx-config --config settings.yaml --env-file .env`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNginxConfig(opts, resolver)
		},
	}

	resolver = bindResolver(cmd)
	return cmd
}

func runNginxConfig(opts *rootOptions, resolver *config.Resolver) error {
	cfg, err := resolver.Resolve(lookupEnv)
	if err != nil {
		return err
	}

	report, err := template.Run(cfg)
	if err != nil {
		return err
	}

	if len(report.Outcomes) == 0 && !opts.jsonOutput {
		output.Warn("No templates found in '%s'", cfg.Source)
	}

	if err := outputReport(report, opts.jsonOutput); err != nil {
		return err
	}

	return reportError(report, opts.jsonOutput)
}
