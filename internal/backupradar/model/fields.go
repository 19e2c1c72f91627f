/*
 * Fields - access to wire objects and coercion of their values.
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
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"backupradar/internal/backupradar/naming"
)

var errNull = errors.New("value is null")

// fieldSet is a wire object whose keys have been normalized to the internal
// field names.
type fieldSet struct {
	path   string
	values map[string]any
}

// newFieldSet normalizes the keys of raw. When two keys map to the same field
// the first one in lexical order is kept.
func newFieldSet(path string, raw map[string]any) fieldSet {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make(map[string]any, len(raw))
	for _, k := range keys {
		name := naming.ToSnake(k)
		if _, ok := values[name]; !ok {
			values[name] = raw[k]
		}
	}
	return fieldSet{path: path, values: values}
}

// child returns the path of a field of this object.
func (f fieldSet) child(name string) string {
	return childPath(f.path, name)
}

// lookup returns the value of a field and whether it was present.
func (f fieldSet) lookup(name string) (any, bool) {
	v, ok := f.values[name]
	return v, ok
}

// childPath joins a parent path and a field name.
func childPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

// indexPath returns the path of a sequence element.
func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}

// mismatch builds the detail of a type mismatch.
func mismatch(expected string, v any) error {
	if v == nil {
		return fmt.Errorf("expected %s: %w", expected, errNull)
	}
	return fmt.Errorf("expected %s, got %T", expected, v)
}

// goFloat returns the value of the Go numeric kinds accepted by every
// coercer: int, int32, int64, float32 and float64.
func goFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// toInt coerces a wire value to an integer. Floats must be integral and
// strings must contain a base 10 integer.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int64ToInt(n)
	case float32, float64:
		f, _ := goFloat(n)
		return floatToInt(f)
	case json.Number:
		i, err := n.Int64()
		if err == nil {
			return int64ToInt(i)
		}
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("expected integer: %w", err)
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("expected integer: %w", err)
		}
		return floatToInt(f)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("expected integer: %w", err)
		}
		return i, nil
	default:
		return 0, mismatch("integer", v)
	}
}

// int64ToInt converts i if it fits in an int.
func int64ToInt(i int64) (int, error) {
	if int64(int(i)) != i {
		return 0, fmt.Errorf("integer %d out of range", i)
	}
	return int(i), nil
}

// floatToInt converts f if it has no fractional part and fits in an int. The
// upper bound is exclusive because float64(math.MaxInt64) is 2^63.
func floatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("expected integer, got %v", f)
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("integer %v out of range", f)
	}
	return int64ToInt(int64(f))
}

// toFloat coerces a wire value to a float.
func toFloat(v any) (float64, error) {
	if f, ok := goFloat(v); ok {
		return f, nil
	}
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("expected number: %w", err)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("expected number: %w", err)
		}
		return f, nil
	default:
		return 0, mismatch("number", v)
	}
}

// toBool coerces a wire value to a boolean. Numbers must be 0 or 1.
func toBool(v any) (bool, error) {
	if f, ok := goFloat(v); ok {
		return numberToBool(f)
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case json.Number:
		f, err := b.Float64()
		if err != nil {
			return false, fmt.Errorf("expected boolean: %w", err)
		}
		return numberToBool(f)
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "t", "yes", "y", "on", "1":
			return true, nil
		case "false", "f", "no", "n", "off", "0":
			return false, nil
		}
		return false, fmt.Errorf("expected boolean, got %q", b)
	default:
		return false, mismatch("boolean", v)
	}
}

func numberToBool(f float64) (bool, error) {
	switch f {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("expected boolean, got %v", f)
}

// toString accepts only string values.
func toString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", mismatch("string", v)
	}
	return s, nil
}
