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
	"strings"

	"m4o.io/awslog/internal/options"
)

// Canned pattern strings.  These are byte-compatible with the patterns the
// AWS SDKs ship and must not be reflowed.
const (
	// DefaultPattern produces a single summary line per exchange.
	DefaultPattern = "[AWS :service :http_response_status :duration " +
		":retry_count retries] :operation(:options) :error_class " +
		":error_message\n"

	// ShortPattern is DefaultPattern without retries, parameters and the
	// error message.
	ShortPattern = "[AWS :service :http_response_status :duration] " +
		":operation :error_class\n"

	// ColoredPattern is DefaultPattern with the bracketed segment and the
	// operation segment wrapped in ANSI bold/blue escapes.
	ColoredPattern = "\x1b[1m\x1b[34m[AWS :service :http_response_status " +
		":duration :retry_count retries]\x1b[0m\x1b[1m " +
		":operation(:options)\x1b[0m :error_class :error_message\n"
)

// frameRule separates the sections of the debug dump.
var frameRule = "+" + strings.Repeat("-", 79)

// DebugPattern is a multi-line boxed dump of the request and response.
var DebugPattern = frameRule + "\n" +
	"METHOD: :http_request_method\n" +
	"URL: :http_request_scheme://:http_request_host::http_request_port:http_request_path\n" +
	"HEADERS: :http_request_headers\n" +
	"BODY: :http_request_body\n" +
	frameRule + "\n" +
	"STATUS: :http_response_status_code\n" +
	"HEADERS: :http_response_headers\n" +
	"BODY: :http_response_body\n" +
	frameRule + "\n"

// Default returns a Formatter over DefaultPattern.
func Default(opts ...options.OptionProcessor) *Formatter {
	return New(DefaultPattern, opts...)
}

// Short returns a Formatter over ShortPattern.
func Short(opts ...options.OptionProcessor) *Formatter {
	return New(ShortPattern, opts...)
}

// Debug returns a Formatter over DebugPattern.
func Debug(opts ...options.OptionProcessor) *Formatter {
	return New(DebugPattern, opts...)
}

// Colored returns a Formatter over ColoredPattern.
func Colored(opts ...options.OptionProcessor) *Formatter {
	return New(ColoredPattern, opts...)
}
