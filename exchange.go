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
	"io"
	"strconv"
	"strings"
	"time"

	"m4o.io/awslog/internal/inspect"
)

// FilePath marks a parameter value as a reference to a file on disk.  The
// summarizer renders it as a marker tag with the file's size rather than
// reading its contents into the log line.
type FilePath = inspect.FilePath

// Headers is a case-preserving mapping of header names to values.
type Headers map[string]string

// Request describes the HTTP request half of an Exchange.  The endpoint
// sub-fields are kept separate so URI placeholders can be composed from
// them individually.
type Request struct {
	Method string
	Scheme string
	Host   string
	Port   int

	// Path holds the request path including any querystring, e.g.
	// "/bucket/key?versions".
	Path string

	Headers Headers

	// Body must be rewindable.  Body placeholders seek to the start and
	// read to the end, so a body shared between two concurrent Format
	// calls is unsafe.
	Body io.ReadSeeker
}

// Endpoint composes the scheme, host and port into an endpoint string.  The
// port is omitted when unset.
func (r *Request) Endpoint() string {
	endpoint := r.Scheme + "://" + r.Host
	if r.Port > 0 {
		endpoint += ":" + strconv.Itoa(r.Port)
	}

	return endpoint
}

// Pathname returns the portion of Path before any "?".
func (r *Request) Pathname() string {
	pathname, _, _ := strings.Cut(r.Path, "?")
	return pathname
}

// Querystring returns the portion of Path after the first "?", or the empty
// string when there is none.
func (r *Request) Querystring() string {
	_, query, _ := strings.Cut(r.Path, "?")
	return query
}

// Response describes the HTTP response half of an Exchange.
type Response struct {
	StatusCode int
	Headers    Headers

	// Body must be rewindable, as with Request.Body.
	Body io.ReadSeeker
}

// Exchange is the read-only record of one request/response transaction
// consumed by Formatter.Format.  The formatter never mutates an Exchange,
// with the sole exception of the body streams, whose positions move when a
// body placeholder rewinds and reads them.
type Exchange struct {
	// Operation is the name of the API operation performed, e.g.
	// "get_object".
	Operation string

	// Params holds the user-supplied request parameters.  Values may be
	// strings, numbers, nested map[string]any mappings, []any sequences,
	// *os.File handles or FilePath references.
	Params map[string]any

	Request  *Request
	Response *Response

	// Error is the error the operation produced, if any.
	Error error

	StartedAt   time.Time
	CompletedAt time.Time

	// Retries is the number of times the request was retried before the
	// response was obtained.
	Retries int

	// Config holds arbitrary named configuration values, e.g. "region" or
	// "service", addressable from patterns via the :config:NAME form.
	Config map[string]string
}

// ConfigValue looks up a named configuration value.
func (ex *Exchange) ConfigValue(name string) (string, bool) {
	v, ok := ex.Config[name]
	return v, ok
}

// elapsed returns the seconds between the start and completion markers.
func (ex *Exchange) elapsed() (float64, bool) {
	if ex.StartedAt.IsZero() || ex.CompletedAt.IsZero() {
		return 0, false
	}

	return ex.CompletedAt.Sub(ex.StartedAt).Seconds(), true
}
