// File: script.go
// Title: Operation Scripts
// Description: Script and Op types, YAML/TOML parsing and validation of
//              operation scripts that drive a fixstr.String.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package script

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/fixstr/core/config"
	fxerror "github.com/msto63/fixstr/core/error"
	fxerrors "github.com/msto63/fixstr/core/errors"
	"github.com/msto63/fixstr/core/validation"
)

// Mode selects strict or truncating appends
type Mode string

const (
	// ModeStrict uses the Try variants; overflow fails the step
	ModeStrict Mode = "strict"
	// ModeTruncate uses the truncating variants where they exist
	ModeTruncate Mode = "truncate"
)

// Op is one step of a script
type Op struct {
	Op    string `yaml:"op" toml:"op" json:"op"`
	Index int    `yaml:"index,omitempty" toml:"index,omitempty" json:"index,omitempty"`
	End   int    `yaml:"end,omitempty" toml:"end,omitempty" json:"end,omitempty"`
	Arg   string `yaml:"arg,omitempty" toml:"arg,omitempty" json:"arg,omitempty"`
}

// String renders the op the way the CLI prints it
func (o Op) String() string {
	switch o.Op {
	case OpPush, OpPushStr, OpRetain:
		return fmt.Sprintf("%s(%q)", o.Op, o.Arg)
	case OpInsert, OpInsertStr:
		return fmt.Sprintf("%s(%d, %q)", o.Op, o.Index, o.Arg)
	case OpTruncate, OpRemove, OpSplitOff:
		return fmt.Sprintf("%s(%d)", o.Op, o.Index)
	case OpReplaceRange:
		return fmt.Sprintf("%s(%d..%d, %q)", o.Op, o.Index, o.End, o.Arg)
	default:
		return o.Op + "()"
	}
}

// Script describes a String to build and the operations to run on it
type Script struct {
	Capacity int    `yaml:"capacity" toml:"capacity" json:"capacity"`
	Mode     Mode   `yaml:"mode" toml:"mode" json:"mode"`
	Init     string `yaml:"init" toml:"init" json:"init"`
	Ops      []Op   `yaml:"ops" toml:"ops" json:"ops"`
}

// Parse decodes a script. FormatAuto is treated as YAML.
func Parse(data []byte, format config.Format) (*Script, error) {
	var sc Script
	var err error

	switch format {
	case config.FormatTOML:
		err = toml.Unmarshal(data, &sc)
	default:
		err = yaml.Unmarshal(data, &sc)
	}
	if err != nil {
		return nil, fxerrors.NewErrorBuilder(fxerrors.ModuleScript).
			Operation("parse").
			Message("failed to parse script").
			Cause(err).
			Code(fxerror.CodeScriptSyntax).
			Detail("format", format.String()).
			Build()
	}

	if sc.Mode == "" {
		sc.Mode = ModeStrict
	}
	return &sc, nil
}

// ParseFile reads and parses a script file, choosing the format by extension
func ParseFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fxerrors.NotFound(fxerrors.ModuleScript, "parse_file", path)
		}
		return nil, fxerrors.OperationFailed(fxerrors.ModuleScript, "parse_file", err)
	}

	sc, err := Parse(data, config.DetectFormat(path))
	if err != nil {
		return nil, fxerror.Wrap(err, "invalid script file").WithDetail("file_path", path)
	}
	return sc, nil
}

var scriptChain = validation.NewValidatorChain[*Script]("script").
	AddFunc(func(sc *Script) validation.ValidationResult {
		return validation.NonNegative("capacity", sc.Capacity)
	}).
	AddFunc(func(sc *Script) validation.ValidationResult {
		return validation.OneOf("mode", string(sc.Mode), string(ModeStrict), string(ModeTruncate))
	}).
	AddFunc(func(sc *Script) validation.ValidationResult {
		results := make([]validation.ValidationResult, 0, len(sc.Ops))
		for i, op := range sc.Ops {
			results = append(results, ValidateOp(i, op))
		}
		return validation.Combine(results...)
	})

// Validate checks the script header and every op. All problems are
// collected; the first one defines the returned error.
func (sc *Script) Validate() error {
	return scriptChain.Validate(sc).ToError()
}

// ValidateOp checks a single op: the name must be registered, indices must
// be non-negative, and rune arguments must hold exactly one rune.
func ValidateOp(i int, op Op) validation.ValidationResult {
	field := fmt.Sprintf("ops[%d]", i)

	h, ok := handlers[op.Op]
	if !ok {
		return validation.Invalid(fxerror.CodeScriptSyntax, field+".op", "unknown operation", op.Op)
	}

	result := validation.Combine(
		validation.NonNegative(field+".index", op.Index),
		validation.NonNegative(field+".end", op.End),
	)
	if h.runeArg && utf8.RuneCountInString(op.Arg) != 1 {
		result.AddFieldError(fxerror.CodeInvalidInput, field+".arg", "must be a single character", op.Arg)
	}
	return result
}
