// Package cli implements the uvmap command-line interface.
//
// The commands generate cell-shuffle maps, apply them to images on the CPU
// and inspect the cell permutation a seed produces. Every command accepts
// the filter settings as flags; --config loads them from a YAML or TOML
// preset first, and explicitly set flags override the preset.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is passed through context.Context and also receives the library logs.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/uvmap"
	"github.com/gogpu/uvmap/settings"
)

// settingsFlags are the filter settings shared by every command.
type settingsFlags struct {
	config    string
	seed      string
	width     int
	height    int
	cellSizeX int
	cellSizeY int
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	d := settings.Defaults()
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "load settings from a YAML or TOML preset")
	pf.StringVarP(&f.seed, "seed", "s", d.SeedToken, "seed token (number or text)")
	pf.IntVar(&f.width, "width", d.Width, "frame width in pixels")
	pf.IntVar(&f.height, "height", d.Height, "frame height in pixels")
	pf.IntVar(&f.cellSizeX, "cell-width", d.CellSizeX, "cell width in pixels")
	pf.IntVar(&f.cellSizeY, "cell-height", d.CellSizeY, "cell height in pixels")
}

// resolve loads the preset and applies the flags the user set.
func (f *settingsFlags) resolve(cmd *cobra.Command) (settings.Settings, error) {
	s, err := settings.Load(f.config)
	if err != nil {
		return s, err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		s.SeedToken = f.seed
	}
	if flags.Changed("width") {
		s.Width = f.width
	}
	if flags.Changed("height") {
		s.Height = f.height
	}
	if flags.Changed("cell-width") {
		s.CellSizeX = f.cellSizeX
	}
	if flags.Changed("cell-height") {
		s.CellSizeY = f.cellSizeY
	}
	return s.Clamp(), nil
}

// sizeFromFlags reports whether the frame size came from a preset or a
// flag rather than the built-in defaults.
func (f *settingsFlags) sizeFromFlags(cmd *cobra.Command) bool {
	flags := cmd.Flags()
	return f.config != "" || flags.Changed("width") || flags.Changed("height")
}

// NewRootCommand creates the uvmap command tree. Output goes to out and
// logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	var (
		verbose bool
		sf      settingsFlags
	)

	root := &cobra.Command{
		Use:          "uvmap",
		Short:        "uvmap generates deterministic cell-shuffle UV maps",
		Long:         `uvmap divides a frame into cells, shuffles them with a seeded generator and writes the resulting UV map, or applies it to images.`,
		Version:      uvmap.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(errOut, level)
			installLogger(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(fmt.Sprintf("uvmap %s\n", uvmap.Version))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	sf.register(root)

	root.AddCommand(newSeedCmd())
	root.AddCommand(newGenerateCmd(&sf))
	root.AddCommand(newApplyCmd(&sf))
	root.AddCommand(newUnshuffleCmd(&sf))
	root.AddCommand(newGridCmd(&sf))
	root.AddCommand(newInfoCmd(&sf))

	return root
}

// Execute runs the uvmap CLI with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}
