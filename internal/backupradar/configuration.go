/*
 * Configuration - query and logging configuration
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
package backupradar

import (
	"fmt"
	"strings"

	"backupradar/internal/backupradar/model"

	"github.com/caarlos0/env/v8"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
)

var validate = validator.New()

// Configuration contains the default query and the logging settings. Every
// query parameter can be set; unset ones apply no filter.
type Configuration struct {
	// Page requested by default
	Page int `env:"BACKUPRADAR_PAGE" envDefault:"1" validate:"gte=1"`
	// Results per page
	PageSize int `env:"BACKUPRADAR_PAGE_SIZE" envDefault:"50" validate:"gte=1,lte=1000"`

	// Free text searches on a single attribute
	SearchByCompanyName  *string `env:"BACKUPRADAR_SEARCH_BY_COMPANY_NAME"`
	SearchByDeviceName   *string `env:"BACKUPRADAR_SEARCH_BY_DEVICE_NAME"`
	SearchByJobName      *string `env:"BACKUPRADAR_SEARCH_BY_JOB_NAME"`
	SearchByBackupMethod *string `env:"BACKUPRADAR_SEARCH_BY_BACKUP_METHOD"`
	SearchByTooltip      *string `env:"BACKUPRADAR_SEARCH_BY_TOOLTIP"`
	SearchByTag          *string `env:"BACKUPRADAR_SEARCH_BY_TAG"`
	// Only return backups without a success for this many days
	DaysWithoutSuccess *int `env:"BACKUPRADAR_DAYS_WITHOUT_SUCCESS" validate:"omitempty,gte=0"`
	// Days of history returned with every result
	HistoryDays *int `env:"BACKUPRADAR_HISTORY_DAYS" validate:"omitempty,gte=0"`
	// Only return scheduled (true) or unscheduled (false) backups
	FilterScheduled *bool `env:"BACKUPRADAR_FILTER_SCHEDULED"`
	// Reference date of the results
	Date *string `env:"BACKUPRADAR_DATE"`
	// Free text search on every attribute
	SearchString *string `env:"BACKUPRADAR_SEARCH_STRING"`

	// Comma separated set filters
	Companies            []string `env:"BACKUPRADAR_COMPANIES" envSeparator:","`
	Tags                 []string `env:"BACKUPRADAR_TAGS" envSeparator:","`
	ExcludeTags          []string `env:"BACKUPRADAR_EXCLUDE_TAGS" envSeparator:","`
	BackupMethods        []string `env:"BACKUPRADAR_BACKUP_METHODS" envSeparator:","`
	DeviceTypes          []string `env:"BACKUPRADAR_DEVICE_TYPES" envSeparator:","`
	ExcludeDeviceTypes   []string `env:"BACKUPRADAR_EXCLUDE_DEVICE_TYPES" envSeparator:","`
	Statuses             []string `env:"BACKUPRADAR_STATUSES" envSeparator:","`
	PolicyIDs            []string `env:"BACKUPRADAR_POLICY_IDS" envSeparator:","`
	ExcludeBackupMethods []string `env:"BACKUPRADAR_EXCLUDE_BACKUP_METHODS" envSeparator:","`
	PolicyTypes          []string `env:"BACKUPRADAR_POLICY_TYPES" envSeparator:","`

	// Log level
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=panic fatal error warn warning info debug trace"`
	// Log format: text or json
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
}

// NewConfiguration creates a new configuration object from the environment.
func NewConfiguration() (*Configuration, error) {
	cfg := &Configuration{}

	// Populate with values from environment.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("cannot read configuration: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// QueryParams returns the query parameters described by the configuration.
// Settings that are not configured apply no filter.
func (c Configuration) QueryParams() model.QueryParams {
	q := model.NewQueryParams(c.Page, c.PageSize)
	q.SearchByCompanyName = param(c.SearchByCompanyName)
	q.SearchByDeviceName = param(c.SearchByDeviceName)
	q.SearchByJobName = param(c.SearchByJobName)
	q.SearchByBackupMethod = param(c.SearchByBackupMethod)
	q.SearchByTooltip = param(c.SearchByTooltip)
	q.SearchByTag = param(c.SearchByTag)
	q.DaysWithoutSuccess = param(c.DaysWithoutSuccess)
	q.HistoryDays = param(c.HistoryDays)
	q.FilterScheduled = param(c.FilterScheduled)
	q.Date = param(c.Date)
	q.SearchString = param(c.SearchString)
	q.Companies = listParam(c.Companies)
	q.Tags = listParam(c.Tags)
	q.ExcludeTags = listParam(c.ExcludeTags)
	q.BackupMethods = listParam(c.BackupMethods)
	q.DeviceTypes = listParam(c.DeviceTypes)
	q.ExcludeDeviceTypes = listParam(c.ExcludeDeviceTypes)
	q.Statuses = listParam(c.Statuses)
	q.PolicyIDs = listParam(c.PolicyIDs)
	q.ExcludeBackupMethods = listParam(c.ExcludeBackupMethods)
	q.PolicyTypes = listParam(c.PolicyTypes)
	return q
}

// param converts a configured single value to a parameter.
func param[T any](v *T) model.Optional[T] {
	if v == nil {
		return model.None[T]()
	}
	return model.Some(*v)
}

// listParam converts a configured list to a parameter, dropping blank items.
// An empty list is not set.
func listParam(items []string) model.Optional[[]string] {
	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return model.None[[]string]()
	}
	return model.Some(out)
}

// ConfigureLogging applies the logging settings to the standard logger.
func (c Configuration) ConfigureLogging() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	if c.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	log.Debugf("Log level set to %s", level.String())
	return nil
}
