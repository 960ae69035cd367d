package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/DeBrosOfficial/groundstation/pkg/errors"
)

// Validate performs validation of the entire config.
// It aggregates all errors so the caller can print every issue at once.
func (c *Config) Validate() []error {
	var errs []error
	errs = append(errs, c.validateStation()...)
	errs = append(errs, c.validateLogging()...)
	return errs
}

// ValidateAll folds Validate into a single error, or nil.
func (c *Config) ValidateAll() error {
	var result *multierror.Error
	for _, err := range c.Validate() {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

func (c *Config) validateStation() []error {
	var errs []error
	sc := c.Station

	// Duplicate ids are allowed: the publisher reports them.
	if len(sc.Messages) == 0 {
		errs = append(errs, errors.NewConfigError("station.messages",
			"must not be empty", "list at least one message to broadcast", sc.Messages))
	}

	return errs
}

func (c *Config) validateLogging() []error {
	var errs []error
	lc := c.Logging

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(lc.Level)] {
		errs = append(errs, errors.NewConfigError("logging.level",
			fmt.Sprintf("invalid value %q", lc.Level), "expected one of: debug, info, warn, error", lc.Level))
	}

	validFormats := map[string]bool{"console": true, "json": true}
	if !validFormats[lc.Format] {
		errs = append(errs, errors.NewConfigError("logging.format",
			fmt.Sprintf("invalid value %q", lc.Format), "expected one of: console, json", lc.Format))
	}

	return errs
}
