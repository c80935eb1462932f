// Package config provides the settings loader for tasker.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"slices"

	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// ResolveDataDir returns $TASKER_HOME, or ~/.local/tasker when it is unset.
func ResolveDataDir() (string, error) {
	if dir := os.Getenv(domain.HomeEnvVar); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrHomeDirUnavailable.Error())
	}
	return domain.DataDirFor(home), nil
}

// Load reads config.yaml from dataDir on top of the default settings.
func (l *Loader) Load(dataDir string) (*domain.Settings, error) {
	settings := domain.DefaultSettings(dataDir)
	configPath := domain.ConfigPath(dataDir)

	var cfg Configfile
	if err := readAndUnmarshalYAML(configPath, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return nil, zerr.With(err, "path", configPath)
	}

	if err := l.apply(settings, &cfg); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return settings, nil
}

//nolint:cyclop // one branch per optional field
func (l *Loader) apply(settings *domain.Settings, cfg *Configfile) error {
	if cfg.Store != "" {
		backend := domain.StoreBackend(cfg.Store)
		if backend != domain.StoreBackendJSON && backend != domain.StoreBackendSQLite {
			return zerr.With(zerr.Wrap(domain.ErrUnknownStoreBackend, cfg.Store), "store", cfg.Store)
		}
		settings.Store = backend
	}

	if cfg.TaskBinary != "" {
		settings.TaskBinary = cfg.TaskBinary
	}

	if cfg.ReminderFilters != nil {
		if len(cfg.ReminderFilters) == 0 {
			l.Logger.Warn("reminder_filters is empty, using the default filters")
		} else {
			settings.ReminderFilters = slices.Clone(cfg.ReminderFilters)
		}
	}

	if cfg.DayStart != "" {
		start, err := domain.ParseTimeOfDay(cfg.DayStart)
		if err != nil {
			return zerr.With(err, "field", "day_start")
		}
		settings.DayStart = start
	}

	if cfg.DayEnd != "" {
		end, err := domain.ParseTimeOfDay(cfg.DayEnd)
		if err != nil {
			return zerr.With(err, "field", "day_end")
		}
		settings.DayEnd = end
	}

	if settings.DayStart >= settings.DayEnd {
		err := zerr.Wrap(domain.ErrInvalidDayBounds, "day_start must be before day_end")
		err = zerr.With(err, "day_start", settings.DayStart.String())
		return zerr.With(err, "day_end", settings.DayEnd.String())
	}

	if cfg.LatexIndent != nil {
		if *cfg.LatexIndent < 0 {
			err := zerr.Wrap(domain.ErrNegativeIndent, "latex_indent")
			return zerr.With(err, "latex_indent", *cfg.LatexIndent)
		}
		settings.LatexIndent = *cfg.LatexIndent
	}

	switch domain.LogFormat(cfg.LogFormat) {
	case "":
	case domain.LogFormatPretty, domain.LogFormatJSON:
		settings.LogFormat = domain.LogFormat(cfg.LogFormat)
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownLogFormat, cfg.LogFormat), "log_format", cfg.LogFormat)
	}

	return nil
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is derived from the data directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
