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

package otel

import (
	"context"

	"go.opentelemetry.io/otel/baggage"
)

// BaggageConfigValues maps the members of the baggage.Baggage stored in
// ctx, if any, to exchange configuration values keyed by member name.
func BaggageConfigValues(ctx context.Context) map[string]string {
	values := make(map[string]string)

	for _, member := range baggage.FromContext(ctx).Members() {
		values[member.Key()] = member.Value()
	}

	return values
}

// ConfigValues merges the trace and baggage configuration values derived
// from ctx.  Baggage members never shadow tracing values.
func ConfigValues(ctx context.Context) map[string]string {
	values := BaggageConfigValues(ctx)
	for k, v := range TraceConfigValues(ctx) {
		values[k] = v
	}

	return values
}
