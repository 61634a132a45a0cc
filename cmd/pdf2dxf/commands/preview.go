package commands

import (
	"github.com/spf13/cobra"

	"github.com/tsawler/pdf2dxf/cmd/pdf2dxf/ui"
	"github.com/tsawler/pdf2dxf/preview"
)

func previewCmd(a *app) *cobra.Command {
	var (
		output   string
		pageSpec string
		size     int
	)

	cmd := &cobra.Command{
		Use:   "preview <bundle>",
		Short: "Render the reconstructed geometry to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.converter(args[0], pageSpec)
			if err != nil {
				return err
			}
			if output == "" {
				output = outputPath(args[0], ".png")
			}

			spin := ui.NewSpinner(cmd.ErrOrStderr(), "reconstructing "+args[0])
			spin.Start()
			geom, _, warnings, err := conv.Geometry(cmd.Context())
			spin.Stop()

			out := cmd.OutOrStdout()
			for _, w := range warnings {
				ui.Warning(out, "%s", w)
			}
			if err != nil {
				return err
			}

			opts := preview.DefaultOptions()
			if size > 0 {
				opts.MaxSize = size
			}
			if err := preview.WriteFile(output, geom, opts); err != nil {
				return err
			}
			ui.Success(out, "wrote %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path (default: bundle name with .png)")
	cmd.Flags().StringVarP(&pageSpec, "pages", "p", "", "pages to render, e.g. 1,3-5")
	cmd.Flags().IntVar(&size, "size", 0, "longest image side in pixels (default 2048)")
	return cmd
}
