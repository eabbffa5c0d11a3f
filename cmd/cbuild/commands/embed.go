package commands

import (
	"github.com/spf13/cobra"
	embedgen "go.trai.ch/cbuild/internal/engine/embed"
)

func (c *CLI) newEmbedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "embed <file> <output>",
		Short: "Generate a C array carrying a file's content",
		Long: "Generate a C source file carrying the content of <file> as a static\n" +
			"array. Include it with EMBED_NAME defined to the desired variable name.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			asBytes, _ := cmd.Flags().GetBool("bytes")

			kind := embedgen.KindString
			if asBytes {
				kind = embedgen.KindBytes
			}

			return c.app.Embed(cmd.Context(), args[0], args[1], kind)
		},
	}

	cmd.Flags().Bool("bytes", false, "Emit an unsigned char array instead of a string array")

	return cmd
}
