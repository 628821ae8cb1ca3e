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
Package otel derives exchange configuration values from OpenTelemetry
context, so patterns can reference tracing information through the
:config:NAME placeholder form, e.g. :config:trace_id.
*/
package otel

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Configuration value names populated by TraceConfigValues.
const (
	TraceIDKey      = "trace_id"
	SpanIDKey       = "span_id"
	TraceSampledKey = "trace_sampled"
)

// TraceConfigValues maps the trace.SpanContext stored in ctx, if any, to
// exchange configuration values.  Absent tracing information yields an
// empty map.
func TraceConfigValues(ctx context.Context) map[string]string {
	values := make(map[string]string)

	sc := trace.SpanContextFromContext(ctx)

	if sc.HasTraceID() {
		values[TraceIDKey] = sc.TraceID().String()
	}
	if sc.HasSpanID() {
		values[SpanIDKey] = sc.SpanID().String()
	}
	if sc.IsSampled() {
		values[TraceSampledKey] = "true"
	}

	return values
}
