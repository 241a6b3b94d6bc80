// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tplcache

import (
	"regexp"
	"strings"
)

// slimRegex matches a newline and the whitespace run that follows it. The
// class is the ECMAScript \s set rather than the narrower RE2 one, so that
// non-breaking and other Unicode spaces used for indentation are collapsed
// too.
var slimRegex = regexp.MustCompile(`\n[\s\v\p{Zs}\x{2028}\x{2029}\x{feff}]*`)

// NormalizeLineEndings replaces every CRLF pair with a single LF.
func NormalizeLineEndings(content string) string {
	return strings.ReplaceAll(content, "\r\n", "\n")
}

// Slim joins content into a single line by removing each newline along with
// the indentation after it. Afterwards the two character escape `\n` is turned
// into a real newline, which is how slimmed templates keep intended breaks.
//
// Slim expects LF line endings; run NormalizeLineEndings first.
func Slim(content string) string {
	content = slimRegex.ReplaceAllLiteralString(content, "")
	return strings.ReplaceAll(content, `\n`, "\n")
}

// transform applies the text passes selected by opts, in their fixed order.
func transform(content string, opts Options) string {
	if opts.AutoCRLF {
		content = NormalizeLineEndings(content)
	}
	if opts.Slim {
		content = Slim(content)
	}
	return content
}
