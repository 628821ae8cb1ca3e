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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/awslog"
)

func TestLoadPatterns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.properties")
	content := "summary = [AWS :service] :operation\\n\n" +
		"trace = :operation trace=:config:trace_id\n" +
		"empty =\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	patterns, err := awslog.LoadPatterns(path)
	require.NoError(t, err)

	assert.Len(t, patterns, 2)
	assert.NotContains(t, patterns, "empty")

	line, err := patterns["summary"].Format(s3Exchange())
	assert.NoError(t, err)
	assert.Equal(t, "[AWS S3] get_object\n", line)

	line, err = patterns["trace"].Format(s3Exchange())
	assert.NoError(t, err)
	assert.Equal(t, "get_object trace=:config:trace_id", line)
}

func TestLoadPatternsMissingFile(t *testing.T) {
	_, err := awslog.LoadPatterns(filepath.Join(t.TempDir(), "nope.properties"))
	assert.ErrorContains(t, err, "unable to load pattern file")
}

func TestLoadPatternsForwardsOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.properties")
	require.NoError(t, os.WriteFile(path, []byte("params = :request_params\n"), 0o600))

	patterns, err := awslog.LoadPatterns(path, awslog.WithParamFilter(awslog.NewParamFilter()))
	require.NoError(t, err)

	ex := s3Exchange()
	ex.Params = map[string]any{"token": "tok"}

	line, err := patterns["params"].Format(ex)
	assert.NoError(t, err)
	assert.Equal(t, `"token"=>"[FILTERED]"`, line)
}
