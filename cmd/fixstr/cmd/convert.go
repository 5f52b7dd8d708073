package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	fxerrors "github.com/msto63/fixstr/core/errors"
	"github.com/msto63/fixstr/utils/fixstr"
)

var (
	convertFrom  string
	convertLossy bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <hex>",
	Short: "Decode UTF-8 or UTF-16 input given as hex",
	Long: `Decodes hex input into a string with the configured capacity.

--from utf8 takes bytes ("e282ac" or "e2 82 ac"). --from utf16 takes 16-bit
code units ("d834 dd1e 006d" or "d834dd1e006d").

Strict mode fails on invalid input or overflow. Truncate mode cuts the
input to the capacity; for utf8 it keeps the valid prefix, for utf16 it
still fails on an unpaired surrogate. --lossy (utf16 only) replaces
unpaired surrogates with U+FFFD.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "utf8", "input encoding: utf8 or utf16")
	convertCmd.Flags().BoolVar(&convertLossy, "lossy", false, "replace invalid UTF-16 units with U+FFFD")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	s, err := convert(convertFrom, args[0], settings.Mode == "truncate", convertLossy)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderInspect(s, s.Len()))
	return nil
}

func convert(from, input string, truncate, lossy bool) (*fixstr.String, error) {
	switch strings.ToLower(from) {
	case "utf8", "utf-8":
		if lossy {
			return nil, fxerrors.InvalidInput(fxerrors.ModuleCLI, "convert", "lossy", "--lossy with --from utf16")
		}
		b, err := decodeHexBytes(input)
		if err != nil {
			return nil, err
		}
		if truncate {
			return fixstr.FromUTF8(settings.Capacity, b), nil
		}
		s, err := fixstr.TryFromUTF8(settings.Capacity, b)
		return s, structured(err)

	case "utf16", "utf-16":
		units, err := decodeHexUnits(input)
		if err != nil {
			return nil, err
		}
		var s *fixstr.String
		switch {
		case lossy:
			return fixstr.FromUTF16Lossy(settings.Capacity, units), nil
		case truncate:
			s, err = fixstr.FromUTF16(settings.Capacity, units)
		default:
			s, err = fixstr.TryFromUTF16(settings.Capacity, units)
		}
		return s, structured(err)

	default:
		return nil, fxerrors.InvalidInput(fxerrors.ModuleCLI, "convert", from, "utf8 or utf16")
	}
}

func structured(err error) error {
	if err == nil {
		return nil
	}
	return fixstr.AsStructured(err)
}

func decodeHexBytes(input string) ([]byte, error) {
	clean := strings.Join(strings.Fields(input), "")
	b, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fxerrors.InvalidInput(fxerrors.ModuleCLI, "convert", input, "hex bytes")
	}
	return b, nil
}

func decodeHexUnits(input string) ([]uint16, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) == 1 && len(fields[0]) > 4 {
		joined := fields[0]
		if len(joined)%4 != 0 {
			return nil, fxerrors.InvalidInput(fxerrors.ModuleCLI, "convert", input, "groups of four hex digits")
		}
		fields = fields[:0]
		for i := 0; i < len(joined); i += 4 {
			fields = append(fields, joined[i:i+4])
		}
	}

	units := make([]uint16, 0, len(fields))
	for _, f := range fields {
		u, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(f), "0x"), 16, 16)
		if err != nil {
			return nil, fxerrors.InvalidInput(fxerrors.ModuleCLI, "convert", f, "16-bit hex code unit")
		}
		units = append(units, uint16(u))
	}
	return units, nil
}
