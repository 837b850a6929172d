package glog

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validatePrimaryConfig(cfg *PrimaryConfig) error {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if !cfg.Level.valid() {
		return fmt.Errorf("%s: %s", errMsgBadConfigLevel, cfg.Level)
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%s: %w", errMsgPrimaryInvalid, err)
	}

	return nil
}

func validateHandlerConfig(cfg *HandlerConfig) error {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if !cfg.Level.valid() {
		return fmt.Errorf("%s: %s", errMsgBadConfigLevel, cfg.Level)
	}
	if cfg.Writer != nil && cfg.FilePath != emptyString {
		return fmt.Errorf("%s: %q", errMsgAmbiguousOutput, cfg.FilePath)
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%s: %w", errMsgConfigInvalid, err)
	}

	return nil
}
