package commands

import (
	"github.com/spf13/cobra"

	"github.com/tsawler/pdf2dxf/cmd/pdf2dxf/ui"
	"github.com/tsawler/pdf2dxf/graphicsstate"
)

func convertCmd(a *app) *cobra.Command {
	var (
		output      string
		pageSpec    string
		layerPolicy string
		mtext       bool
		keepRaw     bool
		workers     int
		progress    bool
	)

	cmd := &cobra.Command{
		Use:   "convert <bundle>",
		Short: "Convert a page bundle to DXF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.converter(args[0], pageSpec)
			if err != nil {
				return err
			}

			if layerPolicy != "" {
				policy, err := graphicsstate.ParseLayerPolicy(layerPolicy)
				if err != nil {
					return err
				}
				conv = conv.LayerPolicy(policy)
			}
			if mtext {
				conv = conv.TextAsMText()
			}
			if keepRaw {
				conv = conv.KeepRawPaths()
			}
			if workers > 0 {
				conv = conv.Workers(workers)
			}

			if progress {
				update, finish := ui.Tracker(cmd.ErrOrStderr(), "converting")
				conv = conv.OnProgress(update)
				defer finish()
			}

			if output == "" {
				output = outputPath(args[0], ".dxf")
			}

			res, warnings, err := conv.WriteFile(cmd.Context(), output)
			out := cmd.OutOrStdout()
			for _, w := range warnings {
				ui.Warning(out, "%s", w)
			}
			if err != nil {
				return err
			}

			c := res.Meta.Counts
			ui.Success(out, "wrote %s: %d polylines, %d lines, %d circles, %d arcs, %d texts",
				output, c.Polylines, c.Lines, c.Circles, c.Arcs, c.Texts)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output DXF path (default: bundle name with .dxf)")
	cmd.Flags().StringVarP(&pageSpec, "pages", "p", "", "pages to convert, e.g. 1,3-5")
	cmd.Flags().StringVar(&layerPolicy, "layer-policy", "", "layer policy (single, width, color or both)")
	cmd.Flags().BoolVar(&mtext, "mtext", false, "write all text as MTEXT")
	cmd.Flags().BoolVar(&keepRaw, "keep-raw", false, "also write unmerged subpath polylines")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "pages converted concurrently (default from config)")
	cmd.Flags().BoolVar(&progress, "progress", false, "show a progress bar")
	return cmd
}
