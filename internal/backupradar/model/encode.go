/*
 * Encoder - conversion of query parameters to their wire form.
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
	"net/url"
	"strconv"

	"backupradar/internal/backupradar/naming"
)

// queryField is a query parameter paired with its internal name.
type queryField struct {
	name  string
	value any
}

// fields lists the parameters that carry a value, in declaration order.
func (q QueryParams) fields() []queryField {
	out := []queryField{
		{"page", q.Page},
		{"size", q.Size},
	}
	add := func(name string, v any, set bool) {
		if set {
			out = append(out, queryField{name, v})
		}
	}
	addString := func(name string, o Optional[string]) {
		v, ok := o.Get()
		add(name, v, ok)
	}
	addList := func(name string, o Optional[[]string]) {
		v, ok := o.Get()
		add(name, append([]string{}, v...), ok)
	}

	addString("search_by_company_name", q.SearchByCompanyName)
	addString("search_by_device_name", q.SearchByDeviceName)
	addString("search_by_job_name", q.SearchByJobName)
	addString("search_by_backup_method", q.SearchByBackupMethod)
	addString("search_by_tooltip", q.SearchByTooltip)
	addString("search_by_tag", q.SearchByTag)
	if v, ok := q.DaysWithoutSuccess.Get(); ok {
		add("days_without_success", v, true)
	}
	if v, ok := q.HistoryDays.Get(); ok {
		add("history_days", v, true)
	}
	if v, ok := q.FilterScheduled.Get(); ok {
		add("filter_scheduled", v, true)
	}
	addString("date", q.Date)
	addString("search_string", q.SearchString)
	addList("companies", q.Companies)
	addList("tags", q.Tags)
	addList("exclude_tags", q.ExcludeTags)
	addList("backup_methods", q.BackupMethods)
	addList("device_types", q.DeviceTypes)
	addList("exclude_device_types", q.ExcludeDeviceTypes)
	addList("statuses", q.Statuses)
	addList("policy_ids", q.PolicyIDs)
	addList("exclude_backup_methods", q.ExcludeBackupMethods)
	addList("policy_types", q.PolicyTypes)
	return out
}

// Encode returns the parameters as a key-value structure with camelCase keys.
// Unset parameters are omitted; page and size are always present.
func (q QueryParams) Encode() map[string]any {
	fields := q.fields()
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		out[naming.ToCamel(f.name)] = f.value
	}
	return out
}

// Values returns the parameters in query string form. List parameters are
// repeated once per element.
func (q QueryParams) Values() url.Values {
	values := url.Values{}
	for _, f := range q.fields() {
		key := naming.ToCamel(f.name)
		switch v := f.value.(type) {
		case string:
			values.Add(key, v)
		case int:
			values.Add(key, strconv.Itoa(v))
		case bool:
			values.Add(key, strconv.FormatBool(v))
		case []string:
			for _, s := range v {
				values.Add(key, s)
			}
		}
	}
	return values
}
