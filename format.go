// Package yamlfmt formats YAML documents: parse the source into a lossless
// concrete syntax tree (package ast, built by package parser), lay it out as
// a print document (package internal/doc) via package printer, and render
// that document to text. Format is idempotent by construction: formatting an
// already-formatted document reproduces it unchanged, since the printer
// derives layout purely from the tree's structure and the given Options, not
// from incidental whitespace left over from a previous pass.
package yamlfmt

import (
	"bytes"
	"unicode/utf8"

	"github.com/prettyyaml/yamlfmt/ast"
	yamlerrors "github.com/prettyyaml/yamlfmt/errors"
	"github.com/prettyyaml/yamlfmt/internal/doc"
	"github.com/prettyyaml/yamlfmt/parser"
	"github.com/prettyyaml/yamlfmt/printer"
)

const bom = "﻿"

// Format reads a YAML document from src and returns its formatted form per
// opts (spec.md §6.1 `format`). It returns a *errors.SyntaxError when src
// does not parse and opts.Validate()'s error when opts is invalid.
func Format(src []byte, opts printer.Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	text, err := normalizeSource(src)
	if err != nil {
		return nil, err
	}
	root, err := parser.Parse(text)
	if err != nil {
		return nil, toSyntaxError(text, err)
	}
	d := printer.Print(root, opts)
	out := doc.Render(d, doc.Options{
		PrintWidth:  opts.PrintWidth,
		IndentWidth: opts.IndentWidth,
		LineBreak:   opts.LineBreakString(),
	})
	return []byte(out), nil
}

// Parse reads src and returns its lossless concrete syntax tree (spec.md
// §6.1 `parse`), without any printing pass.
func Parse(src []byte) (ast.Node, error) {
	text, err := normalizeSource(src)
	if err != nil {
		return nil, err
	}
	root, err := parser.Parse(text)
	if err != nil {
		return nil, toSyntaxError(text, err)
	}
	return root, nil
}

// normalizeSource strips a leading UTF-8 BOM and validates the remainder is
// well-formed UTF-8, per spec.md §6.1's encoding handling.
func normalizeSource(src []byte) (string, error) {
	src = bytes.TrimPrefix(src, []byte(bom))
	if !utf8.Valid(src) {
		return "", yamlerrors.NewSyntaxError(string(src), "input is not valid UTF-8", 0)
	}
	return string(src), nil
}

func toSyntaxError(text string, err error) error {
	pe, ok := err.(*parser.ParseError)
	if !ok {
		return err
	}
	return yamlerrors.NewSyntaxError(text, pe.Message, pe.Offset)
}
