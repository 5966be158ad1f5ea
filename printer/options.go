// Package printer walks the lossless tree produced by package parser and
// converts each construct into a layout document (package internal/doc),
// per spec.md §4.5/§4.6.
package printer

import "github.com/go-playground/validator/v10"

// Quotes selects the quote-rewriting policy applied to quoted scalars
// (spec.md §4.6).
type Quotes string

const (
	PreferDouble Quotes = "preferDouble"
	PreferSingle Quotes = "preferSingle"
	ForceDouble  Quotes = "forceDouble"
	ForceSingle  Quotes = "forceSingle"
)

// LineBreak selects the line separator written to output.
type LineBreak string

const (
	LF   LineBreak = "lf"
	CRLF LineBreak = "crlf"
)

// DashSpacing selects the width between a block sequence's "-" and its item.
type DashSpacing string

const (
	OneSpace DashSpacing = "oneSpace"
	Indent   DashSpacing = "indent"
)

// Options is the complete recognised configuration set from spec.md §6.2.
// It is passed by reference through the printer rather than read from
// ambient/global state, and validated with struct tags the way the rest of
// the corpus validates configuration structs.
type Options struct {
	PrintWidth                    int         `validate:"min=1"`
	IndentWidth                   int         `validate:"min=1"`
	LineBreak                     LineBreak   `validate:"oneof=lf crlf"`
	Quotes                        Quotes      `validate:"oneof=preferDouble preferSingle forceDouble forceSingle"`
	TrailingComma                 bool
	FormatComments                bool
	IndentBlockSequenceInMap      bool
	BraceSpacing                  bool
	BracketSpacing                bool
	DashSpacing                   DashSpacing `validate:"oneof=oneSpace indent"`
	PreferSingleLine              bool
	FlowSequencePreferSingleLine  *bool
	FlowMapPreferSingleLine       *bool
	TrimTrailingWhitespaces       bool
	TrimTrailingZero              bool
	IgnoreCommentDirective        string `validate:"min=1"`
}

// DefaultOptions returns the option defaults listed in spec.md §6.2.
func DefaultOptions() Options {
	return Options{
		PrintWidth:               80,
		IndentWidth:              2,
		LineBreak:                LF,
		Quotes:                   PreferDouble,
		TrailingComma:            true,
		FormatComments:           false,
		IndentBlockSequenceInMap: true,
		BraceSpacing:             true,
		BracketSpacing:           false,
		DashSpacing:              OneSpace,
		PreferSingleLine:         false,
		TrimTrailingWhitespaces:  true,
		TrimTrailingZero:         false,
		IgnoreCommentDirective:   "pretty-yaml-ignore",
	}
}

var validate = validator.New()

// Validate reports the first struct-tag violation found in o, if any.
func (o Options) Validate() error {
	return validate.Struct(o)
}

// LineBreakString resolves the LineBreak option to its literal separator.
func (o Options) LineBreakString() string {
	if o.LineBreak == CRLF {
		return "\r\n"
	}
	return "\n"
}

// flowSeqPreferSingleLine resolves the per-collection override, inheriting
// PreferSingleLine when unset.
func (o Options) flowSeqPreferSingleLine() bool {
	if o.FlowSequencePreferSingleLine != nil {
		return *o.FlowSequencePreferSingleLine
	}
	return o.PreferSingleLine
}

func (o Options) flowMapPreferSingleLine() bool {
	if o.FlowMapPreferSingleLine != nil {
		return *o.FlowMapPreferSingleLine
	}
	return o.PreferSingleLine
}
