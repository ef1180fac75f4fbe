package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fractionbom/pkg/bom"
	"fractionbom/pkg/errors"
	"fractionbom/pkg/fraction"
)

// bomOpts holds the command-line flags for the bom command.
type bomOpts struct {
	template        string // template file path (falls back to config)
	output          string // output file path (stdout if empty)
	includeInternal bool   // include internal fractions in the BOM
	noCache         bool   // bypass the parsed-project cache
}

// newBOMCmd creates the bom command.
func newBOMCmd() *cobra.Command {
	var opts bomOpts

	cmd := &cobra.Command{
		Use:   "bom [dir]",
		Short: "Generate a BOM document from a template and the scanned modules",
		Long: `Bom scans the project tree rooted at dir (default ".") and substitutes the
resolved fraction coordinates into the placeholder tokens of the template:
#{dependencies}, #{bom-artifactId}, #{bom-name} and #{bom-description}.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runBOM(cmd.Context(), dir, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "BOM template file (overrides fractionbom.toml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty, overrides fractionbom.toml)")
	cmd.Flags().BoolVar(&opts.includeInternal, "include-internal", false, "include internal fractions")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the parsed-project cache")

	return cmd
}

func runBOM(ctx context.Context, dir string, opts bomOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(dir)
	if err != nil {
		return err
	}
	if opts.template == "" {
		opts.template = cfg.Template
	}
	if opts.output == "" {
		opts.output = cfg.Output
	}
	if opts.template == "" {
		return errors.New(errors.ErrCodeInvalidTemplate, "no template given: use --template or set template in %s", configFile)
	}

	template, err := os.ReadFile(opts.template)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot read template %s", opts.template)
	}

	projects, reg, err := resolveTree(ctx, dir, cfg, opts.noCache, logger)
	if err != nil {
		return err
	}

	var items []*fraction.DependencyMetadata
	for _, p := range projects {
		meta := reg.Resolve(p)
		if meta == nil {
			continue
		}
		if meta.Internal() && !opts.includeInternal {
			logger.Debug("skipping internal fraction", "artifact", meta.ArtifactID())
			continue
		}
		items = append(items, fraction.NewDependency(
			meta.GroupID(), meta.ArtifactID(), meta.Version(), fraction.Classifier{}, meta.Packaging(), meta.Scope().String()))
	}
	items = append(items, reg.BOMInclusions()...)

	root := projects[0]
	doc := bom.Generate(bom.RootInfo{
		ArtifactID:  root.ArtifactID,
		Name:        root.Name,
		Description: root.Description,
	}, string(template), items)

	if opts.output == "" {
		fmt.Print(doc)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}
	logger.Infof("Wrote BOM with %d dependencies to %s", len(items), opts.output)
	return nil
}
