// Package validation checks configuration and command input.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Both report failures as an
// *errors.AppError with code INVALID_INPUT and a "fields" detail.
//
// # Struct Tag Validation
//
//	type TracingConfig struct {
//	    Endpoint   string  `yaml:"endpoint" validate:"required_if=Enabled true,omitempty,hostname_port"`
//	    SampleRate float64 `yaml:"sample_rate" validate:"gte=0,lte=1"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Custom(step != 0, "step", "must not be zero")
//	if appErr := v.Validate(); appErr != nil { ... }
package validation
