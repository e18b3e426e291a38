package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/gogpu/uvmap"
)

// cellRecord is one row of the permutation table.
type cellRecord struct {
	Index   int `csv:"index"`
	X       int `csv:"x"`
	Y       int `csv:"y"`
	SourceX int `csv:"source_x"`
	SourceY int `csv:"source_y"`
}

func cellRecords(gr *uvmap.Grid) []cellRecord {
	records := make([]cellRecord, len(gr.Cells))
	for i, c := range gr.Cells {
		records[i] = cellRecord{
			Index:   i,
			X:       i % gr.CountX,
			Y:       i / gr.CountX,
			SourceX: c.X,
			SourceY: c.Y,
		}
	}
	return records
}

func newGridCmd(sf *settingsFlags) *cobra.Command {
	var (
		asCSV  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the cell permutation",
		Long: `Print which source cell every grid position takes its pixels from.

The table lists one grid row per line. With --csv every cell is written
as a record: index, x, y, source_x, source_y.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := sf.resolve(cmd)
			if err != nil {
				return err
			}
			gr, err := uvmap.ShuffledGrid(s.Seed(), s.Geometry())
			if err != nil {
				return err
			}

			if output == "" {
				err = writeGrid(cmd.OutOrStdout(), gr, asCSV)
			} else {
				err = writeGridFile(output, gr, asCSV)
			}
			if err != nil {
				return err
			}

			loggerFromContext(cmd.Context()).Debug("Printed grid", "columns", gr.CountX, "rows", gr.CountY)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "write CSV records")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

func writeGridFile(path string, gr *uvmap.Grid, asCSV bool) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := writeGrid(f, gr, asCSV); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func writeGrid(w io.Writer, gr *uvmap.Grid, asCSV bool) error {
	if asCSV {
		if err := gocsv.Marshal(cellRecords(gr), w); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
		return nil
	}
	return writeGridTable(w, gr)
}

// writeGridTable prints each grid row as its source cells, e.g.
// "(1,0) (0,1)".
func writeGridTable(w io.Writer, gr *uvmap.Grid) error {
	var b strings.Builder
	for y := range gr.CountY {
		b.Reset()
		for x := range gr.CountX {
			if x > 0 {
				b.WriteByte(' ')
			}
			c := gr.At(x, y)
			fmt.Fprintf(&b, "(%d,%d)", c.X, c.Y)
		}
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
