// Copyright 2024 The original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package inspect renders structured values as bounded, human-readable text
for inclusion in a single log line.

Output is deterministic regardless of map iteration order; mapping entries
are sorted by their rendered text before joining.
*/
package inspect

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FilePath marks a parameter value as a reference to a file on disk.  It is
// rendered as a marker tag containing the path and the file's current size,
// not the file's contents.
type FilePath string

// Summarize renders an arbitrary value as bounded, readable text.  Strings
// longer than max are truncated with a marker noting the original length.
// Mappings are wrapped in braces, sequences in brackets.  File references
// are rendered as a marker tag with the file's size, obtained from a live
// stat call.  Anything else falls back to the generic Go-syntax
// representation.
func Summarize(v any, max int) (string, error) {
	switch val := v.(type) {
	case string:
		return summarizeString(val, max), nil
	case map[string]any:
		entries, err := Hash(val, max)
		if err != nil {
			return "", err
		}
		return "{" + entries + "}", nil
	case []any:
		return summarizeSlice(val, max)
	case *os.File:
		return summarizeFile(val.Name())
	case FilePath:
		return summarizeFile(string(val))
	case nil:
		return "nil", nil
	default:
		return fmt.Sprintf("%#v", v), nil
	}
}

// Hash renders a mapping as `"key"=>value` entries, sorted lexicographically
// by their rendered text and joined with commas.  Unlike Summarize, the
// result carries no surrounding braces; the top-level request parameter
// mapping is rendered bare.
func Hash(m map[string]any, max int) (string, error) {
	entries := make([]string, 0, len(m))
	for k, v := range m {
		s, err := Summarize(v, max)
		if err != nil {
			return "", err
		}
		entries = append(entries, strconv.Quote(k)+"=>"+s)
	}
	sort.Strings(entries)

	return strings.Join(entries, ","), nil
}

func summarizeSlice(s []any, max int) (string, error) {
	parts := make([]string, 0, len(s))
	for _, v := range s {
		p, err := Summarize(v, max)
		if err != nil {
			return "", err
		}
		parts = append(parts, p)
	}

	return "[" + strings.Join(parts, ",") + "]", nil
}

func summarizeString(s string, max int) string {
	if len(s) <= max {
		return strconv.Quote(s)
	}

	return fmt.Sprintf("#<String %s ... (%d bytes)>", strconv.Quote(s[:max]), len(s))
}

// summarizeFile stats the file at format time; the reported size is live,
// not cached.
func summarizeFile(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrap(err, "unable to stat file parameter")
	}

	return fmt.Sprintf("#<File:%s (%d bytes)>", path, fi.Size()), nil
}
