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
Package gcp forwards formatted exchanges to Google Cloud Logging.

The formatted line travels as the "message" field of a structured payload so
it can be filtered alongside the operation name, service and response
status in the Cloud Logging console.
*/
package gcp

import (
	"context"

	"cloud.google.com/go/logging"
	"github.com/pkg/errors"
	spb "google.golang.org/protobuf/types/known/structpb"

	"m4o.io/awslog"
)

// Emitter formats exchanges and forwards them to a Google Cloud
// logging.Logger.  Entries at Error severity and above are written
// synchronously.
type Emitter struct {
	log       Logger
	formatter *awslog.Formatter
}

// NewEmitter creates an Emitter over the given logger and formatter.
func NewEmitter(log Logger, formatter *awslog.Formatter) *Emitter {
	if log == nil {
		panic("logger is nil")
	}
	if formatter == nil {
		panic("formatter is nil")
	}

	return &Emitter{log: log, formatter: formatter}
}

// Emit formats the exchange and passes the resulting entry to the
// configured logger.  Formatting failures are returned, never swallowed; a
// failed format emits nothing.
func (em *Emitter) Emit(ctx context.Context, ex *awslog.Exchange) error {
	line, err := em.formatter.Format(ex)
	if err != nil {
		return errors.Wrap(err, "unable to format exchange")
	}

	var e logging.Entry

	e.Payload = payload(line, ex)
	e.Severity = severityFor(ex)
	if !ex.CompletedAt.IsZero() {
		e.Timestamp = ex.CompletedAt.UTC()
	}

	if e.Severity >= logging.Error {
		return em.log.LogSync(ctx, e)
	}
	em.log.Log(e)

	return nil
}

func payload(line string, ex *awslog.Exchange) *spb.Struct {
	fields := map[string]*spb.Value{
		"message":   spb.NewStringValue(line),
		"operation": spb.NewStringValue(ex.Operation),
	}

	if ex.Response != nil {
		fields["status"] = spb.NewNumberValue(float64(ex.Response.StatusCode))
	}
	if service, ok := ex.ConfigValue("service"); ok {
		fields["service"] = spb.NewStringValue(service)
	}

	return &spb.Struct{Fields: fields}
}

func severityFor(ex *awslog.Exchange) logging.Severity {
	switch {
	case ex.Error != nil:
		return logging.Error
	case ex.Response != nil && ex.Response.StatusCode >= 500:
		return logging.Error
	case ex.Response != nil && ex.Response.StatusCode >= 400:
		return logging.Warning
	default:
		return logging.Info
	}
}
