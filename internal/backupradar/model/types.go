/*
 * BackupRadar API types.
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

// Status represents a coded state, such as the outcome of a backup job or a
// backup method category. Name carries the status label (e.g. "Success").
type Status struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// HistoryEntry is the outcome of a backup on a given day.
type HistoryEntry struct {
	Status                  Status  `json:"status"`
	LastResultDate          string  `json:"lastResultDate"`
	IsScheduled             bool    `json:"isScheduled"`
	DaysInStatus            float64 `json:"daysInStatus"`
	Date                    string  `json:"date"`
	CountFailure            int     `json:"countFailure"`
	CountWarning            int     `json:"countWarning"`
	CountSuccess            int     `json:"countSuccess"`
	CountNoResult           int     `json:"countNoResult"`
	DaysSinceLastResult     float64 `json:"daysSinceLastResult"`
	DaysSinceLastGoodResult float64 `json:"daysSinceLastGoodResult"`
	ResultsCount            int     `json:"resultsCount"`
}

// Result represents a monitored backup with its current state and history.
type Result struct {
	TicketingCompany      string           `json:"ticketingCompany"`
	Status                Status           `json:"status"`
	DaysInStatus          float64          `json:"daysInStatus"`
	IsVerified            bool             `json:"isVerified"`
	LastResult            string           `json:"lastResult"`
	LastSuccess           string           `json:"lastSuccess"`
	TicketCount           int              `json:"ticketCount"`
	FailureThreshold      int              `json:"failureThreshold"`
	TreatWarningAsSuccess bool             `json:"treatWarningAsSuccess"`
	Note                  Optional[string] `json:"note"`
	DayStartHour          int              `json:"dayStartHour"`
	Tags                  []string         `json:"tags"`
	Standalone            bool             `json:"standalone"`
	History               []HistoryEntry   `json:"history"`
	BackupID              int              `json:"backupId"`
	CompanyName           string           `json:"companyName"`
	DeviceName            string           `json:"deviceName"`
	DeviceType            string           `json:"deviceType"`
	JobName               string           `json:"jobName"`
	MethodName            string           `json:"methodName"`
	BackupType            Status           `json:"backupType"`
}

// ResponsePage is a page of results returned by a list request.
type ResponsePage struct {
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
	Results    []Result `json:"results"`
}

// QueryParams contains the filters sent alongside a list request. Unset
// fields apply no filter.
type QueryParams struct {
	Page int
	Size int

	SearchByCompanyName  Optional[string]
	SearchByDeviceName   Optional[string]
	SearchByJobName      Optional[string]
	SearchByBackupMethod Optional[string]
	SearchByTooltip      Optional[string]
	SearchByTag          Optional[string]
	DaysWithoutSuccess   Optional[int]
	HistoryDays          Optional[int]
	FilterScheduled      Optional[bool]
	Date                 Optional[string]
	SearchString         Optional[string]

	Companies            Optional[[]string]
	Tags                 Optional[[]string]
	ExcludeTags          Optional[[]string]
	BackupMethods        Optional[[]string]
	DeviceTypes          Optional[[]string]
	ExcludeDeviceTypes   Optional[[]string]
	Statuses             Optional[[]string]
	PolicyIDs            Optional[[]string]
	ExcludeBackupMethods Optional[[]string]
	PolicyTypes          Optional[[]string]
}

// NewQueryParams returns query parameters for the given page with no filters.
func NewQueryParams(page, size int) QueryParams {
	return QueryParams{Page: page, Size: size}
}
