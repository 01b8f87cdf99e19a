package devlog

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyConfigString applies string key-value overrides to the root's current configuration.
// Each override should be in the format "key=value". All errors are reported together
// and nothing is applied if any override fails.
//
// Example:
//
//	root := devlog.NewRoot()
//	err := root.ApplyConfigString(
//	    "level=debug",
//	    "format=json",
//	    "console_target=stdout",
//	)
func (r *Root) ApplyConfigString(overrides ...string) error {
	cfg := r.getConfig().Clone()

	var errs []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return combineConfigErrors(errs)
	}

	return r.ApplyConfig(cfg)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var sb strings.Builder
	sb.WriteString("devlog: multiple configuration errors:")
	for i, err := range errs {
		errMsg := strings.TrimPrefix(err.Error(), "devlog: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	case "level", "console_level":
		lvl, err := ParseLevel(value)
		if err != nil {
			return fmtErrorf("invalid %s value '%s': %w", key, value, err)
		}
		if key == "level" {
			cfg.Level = lvl
		} else {
			cfg.ConsoleLevel = lvl
		}

	case "format":
		cfg.Format = value
	case "timestamp_format":
		cfg.TimestampFormat = value
	case "sanitization":
		cfg.Sanitization = value
	case "console_target":
		cfg.ConsoleTarget = value

	case "show_timestamp", "show_level", "show_name", "enable_console", "color", "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for %s '%s': %w", key, value, err)
		}
		switch key {
		case "show_timestamp":
			cfg.ShowTimestamp = boolVal
		case "show_level":
			cfg.ShowLevel = boolVal
		case "show_name":
			cfg.ShowName = boolVal
		case "enable_console":
			cfg.EnableConsole = boolVal
		case "color":
			cfg.Color = boolVal
		case "internal_errors_to_stderr":
			cfg.InternalErrorsToStderr = boolVal
		}

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}
