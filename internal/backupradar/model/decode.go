/*
 * Decoder - conversion of wire objects to typed records.
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
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"backupradar/internal/metrics"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
)

const (
	recStatus       = "status"
	recHistoryEntry = "history_entry"
	recResult       = "result"
	recResponsePage = "response_page"
)

// decoder collects the failures found while walking a record tree.
type decoder struct {
	errs []error
}

// fail records a failure.
func (d *decoder) fail(path string, reason Reason, err error) {
	d.errs = append(d.errs, newError(path, reason, err))
}

// err returns the collected failures, or nil.
func (d *decoder) err() error {
	if len(d.errs) == 0 {
		return nil
	}
	return &multierror.Error{Errors: d.errs, ErrorFormat: formatErrors}
}

// object checks that raw is a wire object.
func (d *decoder) object(path string, raw any) (fieldSet, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		d.fail(path, ReasonNestedFailure, mismatch("object", raw))
		return fieldSet{}, false
	}
	return newFieldSet(path, m), true
}

// required returns the value of a required field, recording it as missing
// when absent.
func (d *decoder) required(f fieldSet, name string) (any, bool) {
	v, ok := f.lookup(name)
	if !ok {
		d.fail(f.child(name), ReasonMissing, nil)
	}
	return v, ok
}

// scalar decodes a required field with the given coercion.
func scalar[T any](d *decoder, f fieldSet, name string, coerce func(any) (T, error)) T {
	var zero T
	v, ok := d.required(f, name)
	if !ok {
		return zero
	}
	out, err := coerce(v)
	if err != nil {
		d.fail(f.child(name), ReasonTypeMismatch, err)
		return zero
	}
	return out
}

// optional decodes a field that may be absent or null.
func optional[T any](d *decoder, f fieldSet, name string, coerce func(any) (T, error)) Optional[T] {
	v, ok := f.lookup(name)
	if !ok || v == nil {
		return None[T]()
	}
	out, err := coerce(v)
	if err != nil {
		d.fail(f.child(name), ReasonTypeMismatch, err)
		return None[T]()
	}
	return Some(out)
}

// record decodes a required nested record.
func record[T any](d *decoder, f fieldSet, name string, decode func(*decoder, string, any) T) T {
	var zero T
	v, ok := d.required(f, name)
	if !ok {
		return zero
	}
	return decode(d, f.child(name), v)
}

// sequence decodes a required array, decoding each element with decode.
// Order is preserved.
func sequence[T any](d *decoder, f fieldSet, name string, decode func(*decoder, string, any) T) []T {
	v, ok := d.required(f, name)
	if !ok {
		return nil
	}
	path := f.child(name)
	items, ok := sliceItems(v)
	if !ok {
		d.fail(path, ReasonNestedFailure, mismatch("array", v))
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = decode(d, indexPath(path, i), item)
	}
	return out
}

// sliceItems returns the elements of any Go slice, so that typed slices such
// as []string or []map[string]any decode like the []any of encoding/json.
func sliceItems(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// element adapts a scalar coercion to a sequence element decoder.
func element[T any](coerce func(any) (T, error)) func(*decoder, string, any) T {
	return func(d *decoder, path string, v any) T {
		out, err := coerce(v)
		if err != nil {
			d.fail(path, ReasonTypeMismatch, err)
		}
		return out
	}
}

func decodeStatus(d *decoder, path string, raw any) Status {
	f, ok := d.object(path, raw)
	if !ok {
		return Status{}
	}
	return Status{
		ID:   scalar(d, f, "id", toInt),
		Name: scalar(d, f, "name", toString),
	}
}

func decodeHistoryEntry(d *decoder, path string, raw any) HistoryEntry {
	f, ok := d.object(path, raw)
	if !ok {
		return HistoryEntry{}
	}
	return HistoryEntry{
		Status:                  record(d, f, "status", decodeStatus),
		LastResultDate:          scalar(d, f, "last_result_date", toString),
		IsScheduled:             scalar(d, f, "is_scheduled", toBool),
		DaysInStatus:            scalar(d, f, "days_in_status", toFloat),
		Date:                    scalar(d, f, "date", toString),
		CountFailure:            scalar(d, f, "count_failure", toInt),
		CountWarning:            scalar(d, f, "count_warning", toInt),
		CountSuccess:            scalar(d, f, "count_success", toInt),
		CountNoResult:           scalar(d, f, "count_no_result", toInt),
		DaysSinceLastResult:     scalar(d, f, "days_since_last_result", toFloat),
		DaysSinceLastGoodResult: scalar(d, f, "days_since_last_good_result", toFloat),
		ResultsCount:            scalar(d, f, "results_count", toInt),
	}
}

func decodeResult(d *decoder, path string, raw any) Result {
	f, ok := d.object(path, raw)
	if !ok {
		return Result{}
	}
	return Result{
		TicketingCompany:      scalar(d, f, "ticketing_company", toString),
		Status:                record(d, f, "status", decodeStatus),
		DaysInStatus:          scalar(d, f, "days_in_status", toFloat),
		IsVerified:            scalar(d, f, "is_verified", toBool),
		LastResult:            scalar(d, f, "last_result", toString),
		LastSuccess:           scalar(d, f, "last_success", toString),
		TicketCount:           scalar(d, f, "ticket_count", toInt),
		FailureThreshold:      scalar(d, f, "failure_threshold", toInt),
		TreatWarningAsSuccess: scalar(d, f, "treat_warning_as_success", toBool),
		Note:                  optional(d, f, "note", toString),
		DayStartHour:          scalar(d, f, "day_start_hour", toInt),
		Tags:                  sequence(d, f, "tags", element(toString)),
		Standalone:            scalar(d, f, "standalone", toBool),
		History:               sequence(d, f, "history", decodeHistoryEntry),
		BackupID:              scalar(d, f, "backup_id", toInt),
		CompanyName:           scalar(d, f, "company_name", toString),
		DeviceName:            scalar(d, f, "device_name", toString),
		DeviceType:            scalar(d, f, "device_type", toString),
		JobName:               scalar(d, f, "job_name", toString),
		MethodName:            scalar(d, f, "method_name", toString),
		BackupType:            record(d, f, "backup_type", decodeStatus),
	}
}

func decodeResponsePage(d *decoder, path string, raw any) ResponsePage {
	f, ok := d.object(path, raw)
	if !ok {
		return ResponsePage{}
	}
	return ResponsePage{
		Total:      scalar(d, f, "total", toInt),
		Page:       scalar(d, f, "page", toInt),
		PageSize:   scalar(d, f, "page_size", toInt),
		TotalPages: scalar(d, f, "total_pages", toInt),
		Results:    sequence(d, f, "results", decodeResult),
	}
}

// decodeRecord runs a record decoder on raw. Nothing is returned unless the
// whole tree decoded.
func decodeRecord[T any](name string, raw any, decode func(*decoder, string, any) T) (T, error) {
	m := metrics.GetOpenMetricsInstance()
	start := time.Now()
	d := &decoder{}
	out := decode(d, "", raw)
	m.AddDecodeDelayHist(name, time.Since(start).Microseconds())

	if err := d.err(); err != nil {
		for _, e := range d.errs {
			m.IncDecodeFailuresTotal(name, string(e.(*DecodeError).Reason))
		}
		log.Debugf("Failed to decode %s: %v", name, err)
		var zero T
		return zero, err
	}
	m.IncDecodedRecordsTotal(name)
	return out, nil
}

// DecodeStatus decodes a status object.
func DecodeStatus(raw map[string]any) (Status, error) {
	return decodeRecord(recStatus, raw, decodeStatus)
}

// DecodeHistoryEntry decodes a single history entry.
func DecodeHistoryEntry(raw map[string]any) (HistoryEntry, error) {
	return decodeRecord(recHistoryEntry, raw, decodeHistoryEntry)
}

// DecodeResult decodes a single result, including its history. Nested
// objects must be map[string]any; sequences may be any slice type.
func DecodeResult(raw map[string]any) (Result, error) {
	return decodeRecord(recResult, raw, decodeResult)
}

// DecodeResponsePage decodes a page of results.
func DecodeResponsePage(raw map[string]any) (ResponsePage, error) {
	return decodeRecord(recResponsePage, raw, decodeResponsePage)
}

// parseJSON reads a JSON document keeping numbers as json.Number.
func parseJSON(name string, data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		metrics.GetOpenMetricsInstance().IncDecodeFailuresTotal(name, string(ReasonNestedFailure))
		return nil, newError("", ReasonNestedFailure, fmt.Errorf("invalid JSON: %w", err))
	}
	return raw, nil
}

// ParseResult decodes a result from a JSON document.
func ParseResult(data []byte) (Result, error) {
	raw, err := parseJSON(recResult, data)
	if err != nil {
		return Result{}, err
	}
	return decodeRecord(recResult, raw, decodeResult)
}

// ParseResponsePage decodes a page of results from a JSON document.
func ParseResponsePage(data []byte) (ResponsePage, error) {
	raw, err := parseJSON(recResponsePage, data)
	if err != nil {
		return ResponsePage{}, err
	}
	return decodeRecord(recResponsePage, raw, decodeResponsePage)
}
