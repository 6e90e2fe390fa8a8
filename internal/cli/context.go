package cli

import (
	"sort"

	"github.com/ksyq12/gvm-config/internal/config"
	"github.com/ksyq12/gvm-config/internal/output"
	"github.com/ksyq12/gvm-config/internal/template"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newNginxContextCmd(opts *rootOptions) *cobra.Command {
	var resolver *config.Resolver

	cmd := &cobra.Command{
		Use:   "nginx-context",
		Short: "Print the values templates are rendered with",
		Long: `Resolve the options exactly like nginx-config and print the resulting
template variables as YAML (or JSON with --json). Nothing is read from the
source directory and nothing is written.

With --verbose every YAML entry is annotated with where its value came from
(flag, env, settings or default).

Examples:
  gvm-config nginx-context
  gvm-config nginx-context --verbose --config settings.yaml
  NGINX_HOST=example.com gvm-config nginx-context --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolver.Resolve(lookupEnv)
			if err != nil {
				return err
			}

			ctx := template.NewContext(cfg)
			switch {
			case opts.jsonOutput:
				return output.JSON(ctx)
			case opts.verbose:
				node, err := annotatedContext(ctx, resolver)
				if err != nil {
					return err
				}
				return output.YAML(node)
			default:
				return output.YAML(ctx)
			}
		},
	}

	resolver = bindResolver(cmd)
	return cmd
}

// annotatedContext renders ctx as a YAML mapping whose values carry the
// origin of the option they were resolved from as a line comment.
func annotatedContext(ctx template.Context, resolver *config.Resolver) (*yaml.Node, error) {
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		value := &yaml.Node{}
		if err := value.Encode(ctx[k]); err != nil {
			return nil, err
		}
		if opt, ok := config.LookupKey(k); ok {
			value.LineComment = "# " + resolver.Origin(opt.Flag)
		}
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			value,
		)
	}
	return mapping, nil
}
