/*
 * BackupRadar payload tool - unit tests.
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
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `{
  "total": 1, "page": 1, "pageSize": 50, "totalPages": 1,
  "results": [{
    "ticketingCompany": "Alpha Corp",
    "status": {"id": 1, "name": "Success"},
    "daysInStatus": 3, "isVerified": true,
    "lastResult": "2024-11-02T17:09:47", "lastSuccess": "2024-11-02T17:09:47",
    "ticketCount": 0, "failureThreshold": 1, "treatWarningAsSuccess": false,
    "note": null, "dayStartHour": 6, "tags": ["prod"], "standalone": false,
    "history": [{
      "status": {"id": 1, "name": "Success"},
      "lastResultDate": "2024-11-02T17:09:47", "isScheduled": true,
      "daysInStatus": 3, "date": "2024-11-02",
      "countFailure": 0, "countWarning": 0, "countSuccess": 1, "countNoResult": 0,
      "daysSinceLastResult": 0.5, "daysSinceLastGoodResult": 0.5, "resultsCount": 1
    }],
    "backupId": 4242, "companyName": "Alpha Corp", "deviceName": "srv-01",
    "deviceType": "Server", "jobName": "Nightly", "methodName": "Veeam",
    "backupType": {"id": 3, "name": "Image"}
  }]
}`

// execute runs the root command with the given input and arguments.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func Test_decode_stdin(t *testing.T) {
	stdout, _, err := execute(t, testPage, "decode")
	require.NoError(t, err)
	assert.Contains(t, stdout, "BACKUP ID")
	assert.Contains(t, stdout, "4242")
	assert.Contains(t, stdout, "srv-01")
	assert.Contains(t, stdout, "page 1/1, 1 total")
}

func Test_decode_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.json")
	require.NoError(t, os.WriteFile(path, []byte(testPage), 0o600))

	stdout, _, err := execute(t, "", "decode", "--json", path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	assert.Equal(t, float64(1), decoded["total"])
	results := decoded["results"].([]any)
	require.Len(t, results, 1)
	assert.Equal(t, float64(4242), results[0].(map[string]any)["backupId"])
	assert.Nil(t, results[0].(map[string]any)["note"])
}

func Test_decode_missingFile(t *testing.T) {
	_, _, err := execute(t, "", "decode", filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read response")
}

func Test_decode_invalid(t *testing.T) {
	input := strings.Replace(testPage, `"backupId": 4242`, `"backupId": "abc"`, 1)

	_, stderr, err := execute(t, input, "decode")
	require.ErrorIs(t, err, errDecodeFailed)
	assert.Contains(t, stderr, "results[0].backup_id: type_mismatch")
}

func Test_decode_metrics(t *testing.T) {
	_, stderr, err := execute(t, testPage, "decode", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, stderr, "decoded_records_total")
}

func Test_query(t *testing.T) {
	t.Setenv("BACKUPRADAR_PAGE_SIZE", "20")
	t.Setenv("BACKUPRADAR_STATUSES", "Failure,Warning")

	stdout, _, err := execute(t, "", "query")
	require.NoError(t, err)
	assert.Equal(t, "page=1&size=20&statuses=Failure&statuses=Warning\n", stdout)

	stdout, _, err = execute(t, "", "query", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"page":1,"size":20,"statuses":["Failure","Warning"]}`, stdout)
}

func Test_invalidConfiguration(t *testing.T) {
	t.Setenv("BACKUPRADAR_PAGE_SIZE", "0")

	_, _, err := execute(t, "", "query")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
