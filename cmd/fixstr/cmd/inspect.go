package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/msto63/fixstr/core/log"
	"github.com/msto63/fixstr/utils/fixstr"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <text>",
	Short: "Show length, capacity and char boundaries of a text",
	Long: `Builds a string from <text> with the configured capacity and mode and
prints its byte length, remaining capacity, display width and one row per
rune with its byte offset and encoded size.

In strict mode a text that does not fit is an error; in truncate mode the
text is cut at the last char boundary that fits.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := build(args[0])
	if err != nil {
		return err
	}
	logger.Debug("inspect", log.Fields{"input_len": len(args[0]), "len": s.Len()})

	fmt.Fprint(cmd.OutOrStdout(), renderInspect(s, len(args[0])))
	return nil
}

func renderInspect(s *fixstr.String, inputLen int) string {
	content := s.String()

	var b strings.Builder
	b.WriteString(contentStyle.Render(content) + "\n")
	b.WriteString(field("length", s.Len()) + "\n")
	b.WriteString(field("capacity", s.Capacity()) + "\n")
	b.WriteString(field("remaining", s.Remaining()) + "\n")
	b.WriteString(field("runes", utf8.RuneCountInString(content)) + "\n")
	b.WriteString(field("width", runewidth.StringWidth(content)) + "\n")
	if dropped := inputLen - s.Len(); dropped > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("truncated: %d bytes dropped", dropped)) + "\n")
	}

	if s.IsEmpty() {
		return b.String()
	}

	b.WriteString("\n" + titleStyle.Render(fmt.Sprintf("%-8s%-6s%-7s%-8s%s", "offset", "rune", "bytes", "width", "code point")) + "\n")
	for offset, r := range s.All() {
		fmt.Fprintf(&b, "%-8d%s%-7d%-8d%U\n",
			offset, pad(printable(r), 6), utf8.RuneLen(r), runewidth.RuneWidth(r), r)
	}
	return b.String()
}

// printable returns r, or a placeholder for control characters and spaces
func printable(r rune) string {
	switch {
	case r == ' ':
		return "␠"
	case r < 0x20 || r == 0x7F:
		return "·"
	default:
		return string(r)
	}
}
