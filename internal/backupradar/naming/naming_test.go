/*
 * Naming - unit tests.
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
package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test_ToSnake tests ToSnake().
func Test_ToSnake(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		expected string
	}

	run := func(t *testing.T, tc testCase) {
		actual := ToSnake(tc.input)
		assert.Equal(t, tc.expected, actual)
	}

	testCases := []testCase{
		{name: "empty string", input: "", expected: ""},
		{name: "single word", input: "date", expected: "date"},
		{name: "two words", input: "countFailure", expected: "count_failure"},
		{name: "boolean prefix", input: "isScheduled", expected: "is_scheduled"},
		{name: "three words", input: "lastResultDate", expected: "last_result_date"},
		{
			name:     "many words",
			input:    "daysSinceLastGoodResult",
			expected: "days_since_last_good_result",
		},
		{name: "already snake case", input: "backup_id", expected: "backup_id"},
		{name: "leading uppercase", input: "Total", expected: "total"},
		{name: "pascal case", input: "PageSize", expected: "page_size"},
		{name: "acronym run", input: "backupIDValue", expected: "backup_idvalue"},
		{name: "trailing acronym", input: "policyIDs", expected: "policy_ids"},
		{name: "all uppercase", input: "ID", expected: "id"},
		{name: "digits do not split", input: "v2Name", expected: "v2name"},
		{name: "unicode letters", input: "éléEtat", expected: "élé_etat"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
}

// Test_ToSnake_idempotent tests that ToSnake() does not alter its own output.
func Test_ToSnake_idempotent(t *testing.T) {
	inputs := []string{
		"", "id", "lastResultDate", "treatWarningAsSuccess", "backupIDValue",
		"already_snake", "PageSize",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := ToSnake(input)
			assert.Equal(t, once, ToSnake(once))
		})
	}
}

// Test_ToCamel tests ToCamel().
func Test_ToCamel(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		expected string
	}

	run := func(t *testing.T, tc testCase) {
		actual := ToCamel(tc.input)
		assert.Equal(t, tc.expected, actual)
	}

	testCases := []testCase{
		{name: "empty string", input: "", expected: ""},
		{name: "single word", input: "page", expected: "page"},
		{
			name:     "multiple words",
			input:    "search_by_company_name",
			expected: "searchByCompanyName",
		},
		{name: "leading underscore", input: "_tags", expected: "tags"},
		{name: "trailing underscore", input: "tags_", expected: "tags"},
		{name: "doubled underscore", input: "exclude__tags", expected: "excludeTags"},
		{name: "already camel case", input: "policyIds", expected: "policyIds"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
}

// Test_roundTrip tests that snake_case names survive a trip to the wire form.
func Test_roundTrip(t *testing.T) {
	names := []string{
		"page", "size", "search_by_tooltip", "days_without_success",
		"exclude_device_types", "policy_ids", "filter_scheduled",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, name, ToSnake(ToCamel(name)))
		})
	}
}
