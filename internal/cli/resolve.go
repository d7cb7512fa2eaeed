package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"qmk-keymap/internal/app"
	"qmk-keymap/internal/types"
)

type resolveOptions struct {
	Keymap string
	Output string
	Format string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve every keycode of a keymap to its display label",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Keymap, "keymap", "", "Keymap JSON path")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Output file (stdout when empty or -)")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.OutputFormatText), "Output format: text, yaml or json")
	_ = viper.BindPFlag("keymap", cmd.Flags().Lookup("keymap"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	keycodes := resolveKeycodeOptions(cmd)
	service := newAppService(keycodes)
	_, err := service.Resolve(ctx, app.ResolveRequest{
		KeymapPath:    resolveString(cmd, opts.Keymap, "keymap", "keymap"),
		KeycodesDir:   keycodes.Dir,
		DuplicateMode: keycodes.DuplicateMode,
		OutputPath:    resolveString(cmd, opts.Output, "output", "output"),
		Format:        types.OutputFormat(resolveString(cmd, opts.Format, "format", "format")),
	})
	return err
}
