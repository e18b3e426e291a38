package cli

import (
	"fmt"
	"image"

	"github.com/spf13/cobra"

	"github.com/gogpu/uvmap"
	"github.com/gogpu/uvmap/filter"
	intImage "github.com/gogpu/uvmap/internal/image"
	"github.com/gogpu/uvmap/settings"
)

// remapOptions are the flags shared by apply and unshuffle.
type remapOptions struct {
	output string
	interp string
	crop   string
}

func (o *remapOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output PNG file")
	cmd.Flags().StringVar(&o.interp, "interp", "nearest", "source sampling: nearest or bilinear")
	_ = cmd.MarkFlagRequired("output")
}

func newApplyCmd(sf *settingsFlags) *cobra.Command {
	var opts remapOptions
	cmd := &cobra.Command{
		Use:   "apply INPUT",
		Short: "Shuffle the cells of an image",
		Long: `Shuffle the cells of an image and write the result as PNG.

The frame size defaults to the size of the input image; --width, --height
or a preset override it and the input is scaled to fit.`,
		Example: `  uvmap apply --seed secret frame.png -o shuffled.png`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemap(cmd, sf, filter.ShuffleID, args[0], &opts)
		},
	}
	opts.register(cmd)
	return cmd
}

func newUnshuffleCmd(sf *settingsFlags) *cobra.Command {
	var opts remapOptions
	cmd := &cobra.Command{
		Use:   "unshuffle INPUT",
		Short: "Restore an image shuffled with the same settings",
		Example: `  uvmap unshuffle --seed secret shuffled.png -o restored.png
  uvmap unshuffle --seed secret --crop 0,0,960,540 shuffled.png -o corner.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemap(cmd, sf, filter.UnshuffleID, args[0], &opts)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVar(&opts.crop, "crop", "", "restore only the region x,y,w,h of the original frame")
	return cmd
}

// runRemap renders input through a filter of the given kind on the CPU.
func runRemap(cmd *cobra.Command, sf *settingsFlags, kindID, input string, opts *remapOptions) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	buf, err := intImage.LoadImage(input)
	if err != nil {
		return err
	}
	s, err := sf.resolve(cmd)
	if err != nil {
		return err
	}
	if !sf.sizeFromFlags(cmd) {
		s.Width, s.Height = buf.Width(), buf.Height()
		s = s.Clamp()
	}
	mode, err := uvmap.ParseInterpolation(opts.interp)
	if err != nil {
		return err
	}
	region, err := parseRegion(opts.crop)
	if err != nil {
		return err
	}
	logger.Debug("Remapping", "input", input, "kind", kindID, "settings", s.String(), "interp", mode)

	var out *image.NRGBA
	if region.IsZero() {
		out, err = renderFilter(kindID, s, mode, buf.Image())
	} else {
		var field *uvmap.Field
		if field, err = uvmap.GenerateReverse(s.Seed(), s.Geometry(), region); err == nil {
			out = uvmap.Remap(field, buf.Image(), mode)
		}
	}
	if err != nil {
		return err
	}

	if err := intImage.SavePNG(opts.output, out); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %s", opts.output))
	printSuccess(cmd.OutOrStdout(), "%s %s %s", input, iconArrow, opts.output)
	return nil
}

func renderFilter(kindID string, s settings.Settings, mode uvmap.Interpolation, img image.Image) (*image.NRGBA, error) {
	f, err := filter.New(kindID, &filter.CPU{Mode: mode}, s)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	src := filter.NewImageSource(img)
	if err := f.Render(src); err != nil {
		return nil, err
	}
	if src.Output == nil {
		return nil, fmt.Errorf("%s: frame was not processed", kindID)
	}
	return src.Output, nil
}
