package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/uvmap"
	intImage "github.com/gogpu/uvmap/internal/image"
	"github.com/gogpu/uvmap/settings"
)

var errCropWithoutReverse = errors.New("--crop requires --reverse")

func newGenerateCmd(sf *settingsFlags) *cobra.Command {
	var (
		output  string
		reverse bool
		crop    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a UV map",
		Long: `Write the UV map for the current settings.

A .png output is a 16-bit preview with U in red and V in green. Any other
extension receives the raw RG32Float texels: two little-endian float32
values per pixel, row by row.`,
		Example: `  uvmap generate --seed 42 -o map.rg32
  uvmap generate --config preset.yaml --reverse -o unshuffle.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			s, err := sf.resolve(cmd)
			if err != nil {
				return err
			}
			region, err := parseRegion(crop)
			if err != nil {
				return err
			}
			field, err := buildField(s, reverse, region)
			if err != nil {
				return err
			}
			logger.Debug("Generated map", "settings", s.String(), "reverse", reverse)

			if err := writeField(output, field); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Wrote %s", output))
			printSuccess(cmd.OutOrStdout(), "%s %s", iconArrow, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.png preview or raw RG32Float)")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "write the unshuffle map")
	cmd.Flags().StringVar(&crop, "crop", "", "crop region x,y,w,h applied to the unshuffle map")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// buildField generates the forward map, or the reverse map restricted to
// crop when reverse is set.
func buildField(s settings.Settings, reverse bool, crop uvmap.Region) (*uvmap.Field, error) {
	if reverse {
		return uvmap.GenerateReverse(s.Seed(), s.Geometry(), crop)
	}
	if !crop.IsZero() {
		return nil, errCropWithoutReverse
	}
	return uvmap.Generate(s.Seed(), s.Geometry())
}

func writeField(path string, field *uvmap.Field) error {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return intImage.SavePNG(path, field.Image())
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := field.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// parseRegion parses "x,y,w,h". The empty string is the zero Region.
func parseRegion(s string) (uvmap.Region, error) {
	if s == "" {
		return uvmap.Region{}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return uvmap.Region{}, fmt.Errorf("invalid crop %q: want x,y,w,h", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return uvmap.Region{}, fmt.Errorf("invalid crop %q: %w", s, err)
		}
		v[i] = n
	}
	return uvmap.Region{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}
