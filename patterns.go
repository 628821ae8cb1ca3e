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

package awslog

import (
	"log/slog"

	"github.com/magiconair/properties"
	"github.com/pkg/errors"

	"m4o.io/awslog/internal/options"
)

// LoadPatterns reads named patterns from a Java-properties file and returns
// a Formatter for each.  Keys are pattern names; values are pattern strings
// with the usual properties escapes, so "\n" in the file becomes a newline
// in the pattern.  Entries with empty values are skipped with a warning.
func LoadPatterns(path string, opts ...options.OptionProcessor) (map[string]*Formatter, error) {
	props, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load pattern file %s", path)
	}

	patterns := make(map[string]*Formatter, props.Len())
	for name, pattern := range props.Map() {
		if pattern == "" {
			slog.Warn("Skipping empty pattern", "name", name, "path", path)

			continue
		}

		patterns[name] = New(pattern, opts...)
	}

	return patterns, nil
}
