// Package config holds the validated command line configuration.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config is populated from flags and FEF_* environment variables.
type Config struct {
	// Common flags
	Parallel int  `label:"--parallel" validate:"min=1"`
	Quiet    bool `label:"--quiet"`
	Stats    bool `label:"--stats"`

	// Encode flags
	Output    string `label:"--output"`
	BlockSize int    `label:"--block-size" mapstructure:"block-size" validate:"min=0,max=65536"`

	// Decode flags
	Folder     string `label:"--folder"`
	NoPassword bool   `label:"--no-password" mapstructure:"no-password" validate:"exclusive=Password"`
	Rounding   string `label:"--rounding"    validate:"omitempty,oneof=clamp wrap strict"`

	// Shared between both commands
	Password string `label:"--password"`

	// Set by the command, not by flags
	Decode bool `mapstructure:"-"`

	// Positional arguments
	Files []string `label:"files" mapstructure:"-" validate:"min=1,dive,required"`
}

// Validate validates the configuration against the struct tags.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := registerExclusive(validate); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", describe(err))
	}

	switch {
	case c.Decode && len(c.Files) != 1:
		return fmt.Errorf("validating configuration: decode takes exactly one container, got %d", len(c.Files))
	case !c.Decode && c.BlockSize < 1:
		return errors.New("validating configuration: --block-size must be at least 1")
	case !c.Decode && c.Output == "":
		return errors.New("validating configuration: --output is required")
	}

	return nil
}

// describe turns validator errors into one readable line per field.
func describe(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	messages := make([]error, 0, len(errs))

	for _, fe := range errs {
		var msg string

		switch fe.Tag() {
		case "exclusive":
			msg = fmt.Sprintf("%s is mutually exclusive with %s", fe.Field(), label(fe.Param()))
		case "min":
			msg = fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
		default:
			msg = fmt.Sprintf("%s failed the %q check", fe.Field(), fe.Tag())
		}

		messages = append(messages, errors.New(msg))
	}

	return errors.Join(messages...)
}

// label returns the label tag of the named Config field.
func label(field string) string {
	f, ok := reflect.TypeOf(Config{}).FieldByName(field)
	if !ok {
		return field
	}

	return tagName(f)
}
