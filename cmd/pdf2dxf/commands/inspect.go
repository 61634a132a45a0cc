package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tsawler/pdf2dxf/cmd/pdf2dxf/ui"
)

func inspectCmd(a *app) *cobra.Command {
	var pageSpec string

	cmd := &cobra.Command{
		Use:   "inspect <bundle>",
		Short: "Classify the pages of a bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := a.converter(args[0], pageSpec)
			if err != nil {
				return err
			}
			metas, err := conv.Inspect()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(metas))
			for _, m := range metas {
				action := "convert"
				if m.Skipped {
					action = "skip"
				}
				rows = append(rows, []string{
					strconv.Itoa(m.Index),
					ui.Kind(string(m.Kind)),
					strconv.Itoa(m.VectorScore),
					strconv.FormatBool(m.HasImages),
					action,
				})
			}
			return ui.Table(cmd.OutOrStdout(), []string{"PAGE", "KIND", "VECTOR OPS", "IMAGES", "ACTION"}, rows)
		},
	}

	cmd.Flags().StringVarP(&pageSpec, "pages", "p", "", "pages to inspect, e.g. 1,3-5")
	return cmd
}
