/*
 * Decoding errors.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package model

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Reason classifies a decoding failure.
type Reason string

const (
	// ReasonMissing is used when a required field is absent.
	ReasonMissing Reason = "missing"
	// ReasonTypeMismatch is used when a value cannot be coerced to the field
	// type.
	ReasonTypeMismatch Reason = "type_mismatch"
	// ReasonNestedFailure is used when a nested record or sequence does not
	// have the expected shape.
	ReasonNestedFailure Reason = "nested_failure"
)

// DecodeError describes why a field could not be decoded. Path uses the
// internal field names, e.g. "history[2].status.name".
type DecodeError struct {
	Path   string
	Reason Reason
	Err    error
}

func (e *DecodeError) Error() string {
	path := e.Path
	if path == "" {
		path = "<root>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", path, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeErrors returns every DecodeError carried by err, in order.
func DecodeErrors(err error) []*DecodeError {
	if err == nil {
		return nil
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		var out []*DecodeError
		for _, e := range merr.Errors {
			out = append(out, DecodeErrors(e)...)
		}
		return out
	}
	var derr *DecodeError
	if errors.As(err, &derr) {
		return []*DecodeError{derr}
	}
	return nil
}

// formatErrors renders a list of decoding errors on a single line.
func formatErrors(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	msg := fmt.Sprintf("%d decoding errors:", len(errs))
	for i, err := range errs {
		if i > 0 {
			msg += ";"
		}
		msg += " " + err.Error()
	}
	return msg
}

// newError builds a DecodeError for the given path.
func newError(path string, reason Reason, err error) *DecodeError {
	return &DecodeError{Path: path, Reason: reason, Err: err}
}
