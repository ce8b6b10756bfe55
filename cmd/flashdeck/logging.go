// ABOUTME: Log level selection for the CLI.
// ABOUTME: Flag beats environment beats config; the result also drives deck logging.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/harper/flashdeck/internal/config"
	"github.com/harper/flashdeck/internal/deck"
)

const logLevelEnvKey = "FLASHDECK_LOG_LEVEL"

func configureLoggerForCLI(flagLevel, configLevel string) (string, error) {
	envLevel := os.Getenv(logLevelEnvKey)
	rawLevel, source := selectedLogLevel(flagLevel, envLevel, configLevel)
	if err := configureDefaultLogger(rawLevel); err != nil {
		if source == "flag" {
			return "", fmt.Errorf("invalid --log-level %q", flagLevel)
		}
		_ = configureDefaultLogger("")
		switch source {
		case "env":
			return fmt.Sprintf("warning: invalid %s=%q; defaulting to %s", logLevelEnvKey, envLevel, config.DefaultLogLevel), nil
		case "config":
			return fmt.Sprintf("warning: invalid log_level=%q; defaulting to %s", configLevel, config.DefaultLogLevel), nil
		default:
			return "", nil
		}
	}
	return "", nil
}

func selectedLogLevel(flagLevel, envLevel, configLevel string) (string, string) {
	if strings.TrimSpace(flagLevel) != "" {
		return flagLevel, "flag"
	}
	if strings.TrimSpace(envLevel) != "" {
		return envLevel, "env"
	}
	if strings.TrimSpace(configLevel) != "" {
		return configLevel, "config"
	}
	return "", "default"
}

func configureDefaultLogger(rawLevel string) error {
	level, err := parseLogLevel(rawLevel)
	if err != nil {
		return err
	}
	logger := newLogger(level)
	log.SetDefault(logger)
	deck.SetLogger(logger)
	return nil
}

func parseLogLevel(raw string) (log.Level, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		value = config.DefaultLogLevel
	}
	if value == "warning" {
		value = "warn"
	}

	level, err := log.ParseLevel(value)
	if err != nil {
		return log.WarnLevel, fmt.Errorf("invalid log level %q", raw)
	}
	return level, nil
}

func newLogger(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Prefix:          "flashdeck",
		ReportTimestamp: true,
	})
}
