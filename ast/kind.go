// Package ast defines the lossless concrete syntax tree produced by the
// parser: a closed set of token and node kinds, and a rose tree where every
// byte of the original input is attached to some leaf token.
package ast

// Kind identifies every token and node shape the grammar produces. It is a
// single dense enumeration shared between leaves (tokens, carrying their
// exact source text) and interior nodes (carrying children), mirroring the
// green-tree design described in the parser's design notes.
type Kind uint8

// Token kinds: leaves that carry exact source text.
const (
	LBrace Kind = iota + 1
	RBrace
	LBracket
	RBracket
	Ampersand
	Asterisk
	Colon
	Comma
	Bang
	Plus
	Minus
	Question
	Bar
	GreaterThan
	Percent

	IndentIndicator

	DoubleQuotedScalar
	SingleQuotedScalar
	PlainScalar
	BlockScalarText

	VerbatimTag
	ShorthandTagHandle
	TagChar
	NamedTagHandle
	SecondaryTagHandle
	PrimaryTagHandle
	TagPrefix

	AnchorName
	DirectivesEnd
	DocumentEnd
	DirectiveName
	YAMLVersion
	DirectiveParam

	Whitespace
	Comment

	// Node kinds: interior, carrying an ordered list of children.
	Properties
	TagProperty
	TagHandle
	NonSpecificTag
	AnchorProperty
	Alias

	FlowSeq
	FlowSeqEntries
	FlowSeqEntry
	FlowMap
	FlowMapEntries
	FlowMapEntry
	FlowMapKey
	FlowMapValue
	FlowPair
	Flow

	ChompingIndicator
	BlockScalar

	BlockSeq
	BlockSeqEntry
	BlockMap
	BlockMapEntry
	BlockMapKey
	BlockMapValue
	Block

	YAMLDirective
	TagDirective
	ReservedDirective
	Directive

	Document
	Root
)

var kindNames = map[Kind]string{
	LBrace: "LBrace", RBrace: "RBrace", LBracket: "LBracket", RBracket: "RBracket",
	Ampersand: "Ampersand", Asterisk: "Asterisk", Colon: "Colon", Comma: "Comma",
	Bang: "Bang", Plus: "Plus", Minus: "Minus", Question: "Question",
	Bar: "Bar", GreaterThan: "GreaterThan", Percent: "Percent",
	IndentIndicator:    "IndentIndicator",
	DoubleQuotedScalar: "DoubleQuotedScalar", SingleQuotedScalar: "SingleQuotedScalar",
	PlainScalar: "PlainScalar", BlockScalarText: "BlockScalarText",
	VerbatimTag: "VerbatimTag", ShorthandTagHandle: "ShorthandTagHandle", TagChar: "TagChar",
	NamedTagHandle: "NamedTagHandle", SecondaryTagHandle: "SecondaryTagHandle", PrimaryTagHandle: "PrimaryTagHandle",
	TagPrefix:    "TagPrefix",
	AnchorName:   "AnchorName",
	DirectivesEnd: "DirectivesEnd", DocumentEnd: "DocumentEnd",
	DirectiveName: "DirectiveName", YAMLVersion: "YAMLVersion", DirectiveParam: "DirectiveParam",
	Whitespace: "Whitespace", Comment: "Comment",

	Properties: "Properties", TagProperty: "TagProperty", TagHandle: "TagHandle",
	NonSpecificTag: "NonSpecificTag", AnchorProperty: "AnchorProperty", Alias: "Alias",

	FlowSeq: "FlowSeq", FlowSeqEntries: "FlowSeqEntries", FlowSeqEntry: "FlowSeqEntry",
	FlowMap: "FlowMap", FlowMapEntries: "FlowMapEntries", FlowMapEntry: "FlowMapEntry",
	FlowMapKey: "FlowMapKey", FlowMapValue: "FlowMapValue", FlowPair: "FlowPair", Flow: "Flow",

	ChompingIndicator: "ChompingIndicator", BlockScalar: "BlockScalar",

	BlockSeq: "BlockSeq", BlockSeqEntry: "BlockSeqEntry",
	BlockMap: "BlockMap", BlockMapEntry: "BlockMapEntry",
	BlockMapKey: "BlockMapKey", BlockMapValue: "BlockMapValue", Block: "Block",

	YAMLDirective: "YAMLDirective", TagDirective: "TagDirective", ReservedDirective: "ReservedDirective",
	Directive: "Directive",

	Document: "Document", Root: "Root",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsTrivia reports whether k is whitespace or a comment: tokens that the
// grammar attaches as siblings of structural nodes rather than consuming as
// part of them.
func (k Kind) IsTrivia() bool { return k == Whitespace || k == Comment }
