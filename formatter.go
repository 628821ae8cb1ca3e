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
Package awslog formats AWS-style request/response exchanges into single log
lines by substituting colon-prefixed placeholder tokens in a pattern string,
e.g.

	f := awslog.New("[AWS :service :http_response_status] :operation\n")
	line, err := f.Format(ex)

Placeholders name extractors that read fields off the Exchange; tokens that
name no extractor pass through as literal text.
*/
package awslog

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"m4o.io/awslog/internal/inspect"
	"m4o.io/awslog/internal/options"
)

// tokenPattern matches one placeholder token.  The compound :config:NAME
// form is matched as a single unit; otherwise a colon followed by word
// characters.  Matching is non-overlapping, left to right.
var tokenPattern = regexp.MustCompile(`:config:\w+|:\w+`)

// Formatter substitutes placeholder tokens in an immutable pattern string
// with values extracted from an Exchange.  A Formatter holds no mutable
// state; a single instance may be shared by concurrent Format calls as long
// as each call supplies its own Exchange.
type Formatter struct {
	pattern        string
	maxParamLength int
	filter         options.ParamFilter
}

// New creates a Formatter for the given pattern.
func New(pattern string, opts ...options.OptionProcessor) *Formatter {
	o := options.ApplyOptions(opts...)

	return &Formatter{
		pattern:        pattern,
		maxParamLength: o.MaxParamLength,
		filter:         o.Filter,
	}
}

// Pattern returns the pattern the Formatter was constructed with.
func (f *Formatter) Pattern() string {
	return f.pattern
}

// Equal reports whether two Formatters share the same pattern.  The
// summarization bound takes no part in equality.
func (f *Formatter) Equal(other *Formatter) bool {
	return other != nil && f.pattern == other.pattern
}

// Format renders the exchange through the pattern in a single left-to-right
// pass.  Substituted text is inserted verbatim and never re-scanned for
// further placeholders.  Tokens naming no extractor, and :config: tokens
// naming no configuration value, are left unchanged.  A failing extractor
// fails the whole call; the returned error names the placeholder.
func (f *Formatter) Format(ex *Exchange) (string, error) {
	var b strings.Builder
	last := 0

	for _, loc := range tokenPattern.FindAllStringIndex(f.pattern, -1) {
		b.WriteString(f.pattern[last:loc[0]])

		token := f.pattern[loc[0]:loc[1]]
		replacement, ok, err := f.replace(token, ex)
		if err != nil {
			return "", errors.Wrapf(err, "placeholder %s", token)
		}
		if !ok {
			replacement = token
		}
		b.WriteString(replacement)

		last = loc[1]
	}
	b.WriteString(f.pattern[last:])

	return b.String(), nil
}

// replace resolves one token.  The second return is false when the token is
// unrecognized and should pass through as literal text.
func (f *Formatter) replace(token string, ex *Exchange) (string, bool, error) {
	if name, isConfig := strings.CutPrefix(token, ":config:"); isConfig {
		v, ok := ex.ConfigValue(name)
		return v, ok, nil
	}

	extract, ok := extractors[token[1:]]
	if !ok {
		return "", false, nil
	}

	s, err := extract(f, ex)

	return s, true, err
}

// extractFunc reads one semantic field off an Exchange and renders it as a
// string.
type extractFunc func(f *Formatter, ex *Exchange) (string, error)

// extractors is the placeholder vocabulary.  A name missing from this table
// is not an error; the engine passes the token through unchanged.
var extractors = map[string]extractFunc{
	"client_class":   notImplemented,
	"http_time":      notImplemented,
	"client_time":    notImplemented,
	"operation_name": operationName,
	"operation":      operationName,
	"request_params": requestParams,
	"options":        requestParams,
	"total_time":     totalTime,
	"duration":       totalTime,

	"retry_count": func(_ *Formatter, ex *Exchange) (string, error) {
		return strconv.Itoa(ex.Retries), nil
	},
	"service": func(_ *Formatter, ex *Exchange) (string, error) {
		v, ok := ex.ConfigValue("service")
		if !ok {
			return "", errors.New("no service configuration value on exchange")
		}
		return v, nil
	},
	"error_class": func(_ *Formatter, ex *Exchange) (string, error) {
		if ex.Error == nil {
			return "", nil
		}
		return fmt.Sprintf("%T", ex.Error), nil
	},
	"error_message": func(_ *Formatter, ex *Exchange) (string, error) {
		if ex.Error == nil {
			return "", nil
		}
		return ex.Error.Error(), nil
	},

	"http_request_uri": func(f *Formatter, ex *Exchange) (string, error) {
		r, err := request(ex)
		if err != nil {
			return "", err
		}
		return r.Endpoint() + r.Path, nil
	},
	"http_request_endpoint": requestField(func(r *Request) string { return r.Endpoint() }),
	"http_request_scheme":   requestField(func(r *Request) string { return r.Scheme }),
	"http_request_host":     requestField(func(r *Request) string { return r.Host }),
	"http_request_port":     requestField(func(r *Request) string { return strconv.Itoa(r.Port) }),
	"http_request_method":   requestField(func(r *Request) string { return r.Method }),
	"http_request_path":     requestField(func(r *Request) string { return r.Path }),
	"http_request_pathname": requestField(func(r *Request) string { return r.Pathname() }),
	"http_request_querystring": requestField(func(r *Request) string {
		return r.Querystring()
	}),
	"http_request_headers": func(f *Formatter, ex *Exchange) (string, error) {
		r, err := request(ex)
		if err != nil {
			return "", err
		}
		return f.inspectHeaders(r.Headers)
	},
	"http_request_body": func(_ *Formatter, ex *Exchange) (string, error) {
		r, err := request(ex)
		if err != nil {
			return "", err
		}
		return readBody(r.Body)
	},

	"http_response_status_code": responseStatus,
	"http_response_status":      responseStatus,
	"http_response_headers": func(f *Formatter, ex *Exchange) (string, error) {
		r, err := response(ex)
		if err != nil {
			return "", err
		}
		return f.inspectHeaders(r.Headers)
	},
	"http_response_body": func(_ *Formatter, ex *Exchange) (string, error) {
		r, err := response(ex)
		if err != nil {
			return "", err
		}
		return readBody(r.Body)
	},
}

func notImplemented(_ *Formatter, _ *Exchange) (string, error) {
	return "", errors.New("not implemented")
}

func operationName(_ *Formatter, ex *Exchange) (string, error) {
	return ex.Operation, nil
}

func requestParams(f *Formatter, ex *Exchange) (string, error) {
	params := ex.Params
	if f.filter != nil {
		params = f.filter.Filter(params)
	}

	return inspect.Hash(params, f.maxParamLength)
}

// totalTime renders the elapsed seconds with six-decimal fixed precision,
// then strips trailing zero digits.  The decimal point is kept even when
// every fractional digit is stripped, so exactly one second renders as
// "1.".  Downstream log parsers depend on this shape.
func totalTime(_ *Formatter, ex *Exchange) (string, error) {
	seconds, ok := ex.elapsed()
	if !ok {
		return "", errors.New("no timing markers on exchange")
	}

	return strings.TrimRight(strconv.FormatFloat(seconds, 'f', 6, 64), "0"), nil
}

func responseStatus(_ *Formatter, ex *Exchange) (string, error) {
	r, err := response(ex)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(r.StatusCode), nil
}

func requestField(get func(r *Request) string) extractFunc {
	return func(_ *Formatter, ex *Exchange) (string, error) {
		r, err := request(ex)
		if err != nil {
			return "", err
		}
		return get(r), nil
	}
}

func request(ex *Exchange) (*Request, error) {
	if ex.Request == nil {
		return nil, errors.New("no request descriptor on exchange")
	}

	return ex.Request, nil
}

func response(ex *Exchange) (*Response, error) {
	if ex.Response == nil {
		return nil, errors.New("no response descriptor on exchange")
	}

	return ex.Response, nil
}

func (f *Formatter) inspectHeaders(h Headers) (string, error) {
	m := make(map[string]any, len(h))
	for k, v := range h {
		m[k] = v
	}

	return inspect.Summarize(m, f.maxParamLength)
}

// readBody rewinds the body to its start and reads it to the end.  A nil
// body reads as empty.
func readBody(body io.ReadSeeker) (string, error) {
	if body == nil {
		return "", nil
	}

	if _, err := body.Seek(0, io.SeekStart); err != nil {
		return "", errors.Wrap(err, "unable to rewind body")
	}

	b, err := io.ReadAll(body)
	if err != nil {
		return "", errors.Wrap(err, "unable to read body")
	}

	return string(b), nil
}
