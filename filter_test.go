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

package awslog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/awslog"
)

func TestParamFilterRedactsDefaults(t *testing.T) {
	pf := awslog.NewParamFilter()

	filtered := pf.Filter(map[string]any{
		"bucket":            "logs",
		"secret_access_key": "hunter2",
	})

	assert.Equal(t, "logs", filtered["bucket"])
	assert.Equal(t, awslog.Filtered, filtered["secret_access_key"])
}

func TestParamFilterRedactsAtAnyDepth(t *testing.T) {
	pf := awslog.NewParamFilter()

	filtered := pf.Filter(map[string]any{
		"credentials_list": []any{
			map[string]any{"password": "hunter2", "user": "jo"},
		},
		"nested": map[string]any{"session_token": "tok"},
	})

	list := filtered["credentials_list"].([]any)
	assert.Equal(t, awslog.Filtered, list[0].(map[string]any)["password"])
	assert.Equal(t, "jo", list[0].(map[string]any)["user"])
	assert.Equal(t, awslog.Filtered, filtered["nested"].(map[string]any)["session_token"])
}

func TestParamFilterExtraNames(t *testing.T) {
	pf := awslog.NewParamFilter("pin")

	filtered := pf.Filter(map[string]any{"pin": "1234"})
	assert.Equal(t, awslog.Filtered, filtered["pin"])
}

func TestParamFilterLeavesOriginalUntouched(t *testing.T) {
	params := map[string]any{"password": "hunter2"}

	awslog.NewParamFilter().Filter(params)
	assert.Equal(t, "hunter2", params["password"])
}

func TestFormatWithParamFilter(t *testing.T) {
	ex := s3Exchange()
	ex.Params = map[string]any{"bucket": "logs", "password": "hunter2"}

	f := awslog.New(":request_params", awslog.WithParamFilter(awslog.NewParamFilter()))

	line, err := f.Format(ex)
	assert.NoError(t, err)
	assert.Equal(t, `"bucket"=>"logs","password"=>"[FILTERED]"`, line)
	assert.Equal(t, "hunter2", ex.Params["password"])
}
