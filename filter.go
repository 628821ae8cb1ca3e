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

// Filtered is the literal that replaces the value of a sensitive request
// parameter in formatted output.
const Filtered = "[FILTERED]"

// sensitiveParams are the parameter names redacted by default.  The same
// names are matched at every nesting depth of the parameter mapping.
var sensitiveParams = []string{
	"access_key_id",
	"auth_code",
	"authorization",
	"credentials",
	"encryption_key",
	"key_id",
	"kms_key_id",
	"password",
	"plaintext",
	"private_key",
	"private_key_plaintext",
	"secret_access_key",
	"secret_hash",
	"security_token",
	"session_token",
	"token",
	"upload_credentials",
}

// ParamFilter redacts the values of sensitive request parameters so they
// never reach a log line.  Filtering produces a copy; the exchange's own
// parameter mapping is never modified.
type ParamFilter struct {
	sensitive map[string]struct{}
}

// NewParamFilter creates a ParamFilter covering the default sensitive
// parameter names plus any extra names supplied.
func NewParamFilter(extra ...string) *ParamFilter {
	sensitive := make(map[string]struct{}, len(sensitiveParams)+len(extra))
	for _, name := range sensitiveParams {
		sensitive[name] = struct{}{}
	}
	for _, name := range extra {
		sensitive[name] = struct{}{}
	}

	return &ParamFilter{sensitive: sensitive}
}

// Filter returns a copy of params with every sensitive value, at any
// depth, replaced by the Filtered literal.
func (pf *ParamFilter) Filter(params map[string]any) map[string]any {
	filtered := make(map[string]any, len(params))
	for k, v := range params {
		if _, ok := pf.sensitive[k]; ok {
			filtered[k] = Filtered
			continue
		}
		filtered[k] = pf.filterValue(v)
	}

	return filtered
}

func (pf *ParamFilter) filterValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return pf.Filter(val)
	case []any:
		filtered := make([]any, len(val))
		for i, e := range val {
			filtered[i] = pf.filterValue(e)
		}
		return filtered
	default:
		return v
	}
}
