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
	"m4o.io/awslog/internal/options"
)

// WithMaxParamLength returns an option that bounds the rendered form of
// string parameter values.  Strings longer than the bound are truncated
// with a marker noting the original length.  The default bound is 1000.
func WithMaxParamLength(max int) options.OptionProcessor {
	if max <= 0 {
		panic("max param length must be positive")
	}

	return func(o *options.Options) {
		o.MaxParamLength = max
	}
}

// WithParamFilter returns an option that redacts sensitive request
// parameters before they are summarized into the log line.
func WithParamFilter(filter *ParamFilter) options.OptionProcessor {
	return func(o *options.Options) {
		o.Filter = filter
	}
}
