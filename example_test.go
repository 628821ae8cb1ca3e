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
	"fmt"
	"time"

	"m4o.io/awslog"
)

// The default preset renders one summary line per exchange.  The formatter
// is immutable and may be shared; each Format call supplies its own
// exchange.
func Example() {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	ex := &awslog.Exchange{
		Operation:   "get_object",
		Params:      map[string]any{"bucket": "logs"},
		Response:    &awslog.Response{StatusCode: 200},
		StartedAt:   start,
		CompletedAt: start.Add(500 * time.Millisecond),
		Config:      map[string]string{"service": "S3"},
	}

	line, err := awslog.Default().Format(ex)
	if err != nil {
		panic(err)
	}
	fmt.Print(line)
	// Output: [AWS S3 200 0.5 0 retries] get_object("bucket"=>"logs")
}

// Custom patterns mix literal text with placeholders; tokens that name no
// extractor pass through unchanged.
func ExampleNew() {
	ex := &awslog.Exchange{
		Operation: "list_buckets",
		Config:    map[string]string{"region": "us-east-1"},
	}

	f := awslog.New(":operation in :config:region (:unknown)")

	line, err := f.Format(ex)
	if err != nil {
		panic(err)
	}
	fmt.Println(line)
	// Output: list_buckets in us-east-1 (:unknown)
}

// A ParamFilter keeps sensitive parameter values out of log lines.
func ExampleWithParamFilter() {
	ex := &awslog.Exchange{
		Operation: "assume_role",
		Params: map[string]any{
			"role":          "auditor",
			"session_token": "secret",
		},
	}

	f := awslog.New(":operation(:request_params)",
		awslog.WithParamFilter(awslog.NewParamFilter()))

	line, err := f.Format(ex)
	if err != nil {
		panic(err)
	}
	fmt.Println(line)
	// Output: assume_role("role"=>"auditor","session_token"=>"[FILTERED]")
}
