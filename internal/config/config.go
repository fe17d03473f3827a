// internal/config/config.go
//
// This package handles the optional teamalys3r configuration file.
// A run without any config file uses the defaults below, which reproduce the
// classic 1000x1000 diagram with a 400 unit layout circle.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is looked up in the working directory when no explicit
	// --config path is given.
	DefaultFilename = ".teamalys3r.yaml"

	defaultCanvasSize   = 1000
	defaultLayoutRadius = 400
	defaultNodeRadius   = 20
	defaultNodeFill     = "blue"
	defaultLabelFill    = "white"
	defaultEdgeStroke   = "black"
	defaultLogLevel     = "warn"
)

const defaultConfigYAML = `# teamalys3r configuration
version: 1

# Diagram geometry. center_x / center_y default to half the canvas when
# omitted; an explicit 0 is kept.
render:
  canvas_width: 1000
  canvas_height: 1000
  layout_radius: 400
  node_radius: 20
  node_fill: blue
  label_fill: white
  edge_stroke: black

# Diagnostics go to stderr; set file to also append them to a log file.
logging:
  level: warn
  # file: teamalys3r.log
`

// Render holds the visual parameters of the circular diagram.
type Render struct {
	CanvasWidth  float64 `yaml:"canvas_width" validate:"gt=0"`
	CanvasHeight float64 `yaml:"canvas_height" validate:"gt=0"`
	CenterX      float64 `yaml:"center_x"`
	CenterY      float64 `yaml:"center_y"`
	LayoutRadius float64 `yaml:"layout_radius" validate:"gt=0"`
	NodeRadius   float64 `yaml:"node_radius" validate:"gt=0"`
	NodeFill     string  `yaml:"node_fill" validate:"required"`
	LabelFill    string  `yaml:"label_fill" validate:"required"`
	EdgeStroke   string  `yaml:"edge_stroke" validate:"required"`
}

// Logging controls the diagnostic logger.
type Logging struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file,omitempty"`
}

// Config models .teamalys3r.yaml.
type Config struct {
	Version int     `yaml:"version" validate:"gte=1"`
	Render  Render  `yaml:"render"`
	Logging Logging `yaml:"logging"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report yaml keys instead of Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Default returns a fully populated configuration.
func Default() *Config {
	cfg := rawDefaults()
	cfg.applyDefaults()
	return cfg
}

// rawDefaults leaves the derived fields (the center) as NaN so that a file
// overriding the canvas size gets a matching center, while an explicit
// center_x: 0 survives.
func rawDefaults() *Config {
	return &Config{
		Version: 1,
		Render: Render{
			CanvasWidth:  defaultCanvasSize,
			CanvasHeight: defaultCanvasSize,
			CenterX:      math.NaN(),
			CenterY:      math.NaN(),
			LayoutRadius: defaultLayoutRadius,
			NodeRadius:   defaultNodeRadius,
			NodeFill:     defaultNodeFill,
			LabelFill:    defaultLabelFill,
			EdgeStroke:   defaultEdgeStroke,
		},
		Logging: Logging{Level: defaultLogLevel},
	}
}

// Load reads and validates the config file at path. Unlike Discover, a
// missing file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.Path = path
	cfg.Logging.File = resolvePath(filepath.Dir(path), cfg.Logging.File)
	return cfg, nil
}

// Discover loads DefaultFilename from dir, falling back to the defaults when
// the file does not exist.
func Discover(dir string) (*Config, error) {
	path := filepath.Join(dir, DefaultFilename)
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML config data on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := rawDefaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	cfg.applyDefaults()
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteDefault writes the commented default config to path unless a file
// already exists there. It reports whether a file was created.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return false, fmt.Errorf("config: write %s: %w", path, err)
	}
	return true, nil
}

// Validate checks the struct tags and the cross-field constraints.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if math.IsNaN(c.Render.CenterX) {
		c.Render.CenterX = c.Render.CanvasWidth / 2
	}
	if math.IsNaN(c.Render.CenterY) {
		c.Render.CenterY = c.Render.CanvasHeight / 2
	}
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalize() {
	c.Render.NodeFill = strings.TrimSpace(c.Render.NodeFill)
	c.Render.LabelFill = strings.TrimSpace(c.Render.LabelFill)
	c.Render.EdgeStroke = strings.TrimSpace(c.Render.EdgeStroke)
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.File = strings.TrimSpace(c.Logging.File)
}

func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, formatFieldError(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}
