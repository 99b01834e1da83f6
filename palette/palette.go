// Package palette loads logger color schemes from TOML files.
//
//	prefix = "--> "
//
//	[colors]
//	info = "cyan"
//	error = "1;31"
//	prefix = "grey"
//
// Colors are color names known to logger.ColorByName or raw SGR parameter
// lists. Keys left out keep their default value.
package palette

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mordilloSan/go-sinklog/logger"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// File is the on-disk layout of a palette.
type File struct {
	Prefix *string `toml:"prefix"`
	Colors Colors  `toml:"colors"`
}

// Colors holds the color of each level plus the prefix and reset codes.
type Colors struct {
	Info    string `toml:"info" validate:"omitempty,color"`
	Warn    string `toml:"warn" validate:"omitempty,color"`
	Success string `toml:"success" validate:"omitempty,color"`
	Notify  string `toml:"notify" validate:"omitempty,color"`
	Error   string `toml:"error" validate:"omitempty,color"`
	Prefix  string `toml:"prefix" validate:"omitempty,color"`
	Reset   string `toml:"reset" validate:"omitempty,color"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("color", validateColor); err != nil {
		panic(err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateColor(fl validator.FieldLevel) bool {
	_, ok := logger.ColorByName(fl.Field().String())
	return ok
}

// Load reads the palette at path on fs.
func Load(fs afero.Fs, path string) (logger.OutputSettings, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return logger.OutputSettings{}, fmt.Errorf("failed to read palette file: %w", err)
	}
	s, err := Parse(content)
	if err != nil {
		return logger.OutputSettings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a palette and applies it over logger.DefaultSettings.
func Parse(content []byte) (logger.OutputSettings, error) {
	var f File
	if err := toml.Unmarshal(content, &f); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return logger.OutputSettings{}, fmt.Errorf("failed to parse palette at line %d, column %d: %w", row, col, err)
		}
		return logger.OutputSettings{}, fmt.Errorf("failed to parse palette: %w", err)
	}
	if err := validate.Struct(f); err != nil {
		return logger.OutputSettings{}, fmt.Errorf("invalid palette: %w", err)
	}
	return f.Settings(), nil
}

// Settings returns the defaults overridden by the values set in f.
func (f File) Settings() logger.OutputSettings {
	s := logger.DefaultSettings()
	if f.Prefix != nil {
		s.Prefix = *f.Prefix
	}
	set := func(dst *logger.Color, name string) {
		if c, ok := logger.ColorByName(name); ok {
			*dst = c
		}
	}
	set(&s.Info, f.Colors.Info)
	set(&s.Warn, f.Colors.Warn)
	set(&s.Success, f.Colors.Success)
	set(&s.Notify, f.Colors.Notify)
	set(&s.Error, f.Colors.Error)
	set(&s.PrefixColor, f.Colors.Prefix)
	set(&s.Reset, f.Colors.Reset)
	return s
}
