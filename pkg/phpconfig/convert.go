// Package phpconfig converts PHP config files consisting of a single
// `return [...]` array literal into structured values by rewriting the
// source into JSON.
//
// The rewrite is best-effort and format-fragile by design. It assumes a
// single top-level array literal with no nested PHP expressions inside
// values, and value text containing an unescaped comma followed by a
// key-like pattern will mis-split. Escaped single quotes inside values
// survive the final quote swap as escaped double quotes.
package phpconfig

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	json5 "github.com/yosuke-furukawa/json5/encoding/json5"
)

var (
	blockCommentRegex  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRegex   = regexp.MustCompile(`//[^\n]*`)
	useDeclRegex       = regexp.MustCompile(`use [^;]*;`)
	bareValueRegex     = regexp.MustCompile(`=>\s*([^\s'"0-9][^,\n]*?)\s*,`)
	trailingCommaRegex = regexp.MustCompile(`,(\s*)\}`)
)

// Converter parses PHP array-literal config files. The zero value is
// usable; Log defaults to a disabled logger and ReadFile to
// os.ReadFile.
type Converter struct {
	Log zerolog.Logger
	// ReadFile overrides filesystem access.
	ReadFile func(path string) ([]byte, error)
}

// NewConverter creates a converter that reads from the real filesystem.
func NewConverter(log zerolog.Logger) *Converter {
	return &Converter{Log: log, ReadFile: os.ReadFile}
}

// Parse loads the PHP config at path and returns its structured value.
// All failures (missing file, malformed source) are logged and reported
// as ok == false; nothing panics or propagates.
func (c *Converter) Parse(path string) (value any, ok bool) {
	value, err := c.parse(path)
	if err != nil {
		c.Log.Error().Err(err).Str("path", path).Msg("Failed to parse PHP config")
		return nil, false
	}
	return value, true
}

func (c *Converter) parse(path string) (any, error) {
	readFile := c.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	src, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var value any
	if err := json5.Unmarshal(Convert(src), &value); err != nil {
		return nil, fmt.Errorf("decode converted config: %w", err)
	}
	return value, nil
}

// Convert rewrites PHP array-literal source into JSON text. The steps
// run in order over the whole document; reordering them breaks the
// quoting pass.
func Convert(src []byte) []byte {
	text := string(src)

	text = blockCommentRegex.ReplaceAllString(text, "")
	text = lineCommentRegex.ReplaceAllString(text, "")
	text = useDeclRegex.ReplaceAllString(text, "")

	// Open tag, return keyword, and the array's terminating semicolon:
	// first occurrence only, the rest of the document is data.
	text = strings.Replace(text, "<?php", "", 1)
	text = strings.Replace(text, "return ", "", 1)
	text = strings.Replace(text, ";", "", 1)

	text = quoteBareValues(text)

	text = strings.ReplaceAll(text, "[", "{")
	text = strings.ReplaceAll(text, "]", "}")
	text = strings.ReplaceAll(text, "=>", ":")

	text = trailingCommaRegex.ReplaceAllString(text, "$1}")
	text = strings.ReplaceAll(text, "'", `"`)

	return []byte(text)
}

// quoteBareValues single-quotes `=> value,` occurrences whose value is
// not already a number or quoted string, leaving the bare literals
// true, false and null alone.
func quoteBareValues(text string) string {
	return bareValueRegex.ReplaceAllStringFunc(text, func(match string) string {
		groups := bareValueRegex.FindStringSubmatch(match)
		value := strings.TrimSpace(groups[1])
		switch value {
		case "true", "false", "null":
			return match
		}
		escaped := strings.ReplaceAll(value, "'", `\'`)
		return "=> '" + escaped + "',"
	})
}
