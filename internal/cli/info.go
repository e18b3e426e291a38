package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/uvmap"
	"github.com/gogpu/uvmap/filter"
)

func newInfoCmd(sf *settingsFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Describe the map the current settings produce",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := sf.resolve(cmd)
			if err != nil {
				return err
			}
			gr, err := uvmap.NewGrid(s.Geometry())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTitle(w, "Settings")
			printField(w, "seed token", fmt.Sprintf("%q", s.SeedToken))
			printField(w, "seed", s.Seed())
			printField(w, "frame", fmt.Sprintf("%dx%d", s.Width, s.Height))
			printField(w, "cell", fmt.Sprintf("%dx%d", s.CellSizeX, s.CellSizeY))

			printTitle(w, "Grid")
			printField(w, "cells", fmt.Sprintf("%d (%dx%d)", gr.Len(), gr.CountX, gr.CountY))
			printField(w, "last column", fmt.Sprintf("x=%d width=%d", gr.LastX, gr.LastWidth))
			printField(w, "last row", fmt.Sprintf("y=%d height=%d", gr.LastY, gr.LastHeight))

			printTitle(w, "Texture")
			printField(w, "format", uvmap.TextureFormat)
			printField(w, "size", fmt.Sprintf("%d bytes", s.Geometry().Pixels()*uvmap.BytesPerTexel))
			printField(w, "filters", strings.Join(filter.List(), ", "))
			return nil
		},
	}
}
