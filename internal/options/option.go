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
Package options holds the options handling code.

The Options struct is held in this internal package to button down access.
*/
package options

const (
	// DefaultMaxParamLength is the summarization bound applied when no
	// explicit bound is configured.
	DefaultMaxParamLength = 1000
)

// ParamFilter redacts sensitive entries from a parameter mapping, returning
// a filtered copy.  The input mapping is never modified.
type ParamFilter interface {
	Filter(params map[string]any) map[string]any
}

// Options holds information needed to construct an instance of Formatter.
type Options struct {
	// MaxParamLength bounds the rendered form of string parameter values.
	// Strings longer than this are truncated with a marker noting the
	// original length.
	MaxParamLength int

	// Filter, when non-nil, is applied to the request parameter mapping
	// before it is summarized.
	Filter ParamFilter
}

type OptionProcessor func(o *Options)

func ApplyOptions(opts ...OptionProcessor) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.MaxParamLength <= 0 {
		o.MaxParamLength = DefaultMaxParamLength
	}

	return o
}
