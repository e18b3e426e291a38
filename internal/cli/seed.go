package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/uvmap"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed TOKEN...",
		Short: "Print the shuffle seed derived from each token",
		Long: `Print the shuffle seed derived from each token.

Tokens of at most 10 digits that fit in 32 bits are used as is. Any other
token is hashed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, token := range args {
				seed := uvmap.DeriveSeedString(token)
				fmt.Fprintf(out, "%s %s %s\n",
					styleValue.Render(strconv.Quote(token)), iconArrow,
					styleNumber.Render(strconv.FormatUint(uint64(seed), 10)))
			}
			return nil
		},
	}
}
