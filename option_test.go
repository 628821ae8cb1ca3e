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
	"m4o.io/awslog/internal/options"
)

func TestDefaultOptions(t *testing.T) {
	o := options.ApplyOptions()
	assert.Equal(t, options.DefaultMaxParamLength, o.MaxParamLength)
	assert.Nil(t, o.Filter)
}

func TestWithMaxParamLength(t *testing.T) {
	o := options.ApplyOptions(awslog.WithMaxParamLength(64))
	assert.Equal(t, 64, o.MaxParamLength)
}

func TestWithMaxParamLengthRejectsNonPositive(t *testing.T) {
	defer func() {
		if x := recover(); x == nil {
			t.Error("expected panic")
		}
	}()
	awslog.WithMaxParamLength(0)
}

func TestWithParamFilter(t *testing.T) {
	pf := awslog.NewParamFilter()

	o := options.ApplyOptions(awslog.WithParamFilter(pf))
	assert.Same(t, pf, o.Filter)
}
