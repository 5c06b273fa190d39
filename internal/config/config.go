package config

import (
	"errors"
	"fmt"
	"os"

	"wallcaster/internal/mathutil"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all application configuration values
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Camera    CameraConfig    `yaml:"camera"`
	Movement  MovementConfig  `yaml:"movement"`
	World     WorldConfig     `yaml:"world"`
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Threading ThreadingConfig `yaml:"threading"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type CameraConfig struct {
	FieldOfView float64 `yaml:"field_of_view"` // degrees
	StripWidth  float64 `yaml:"strip_width"`   // pixels per ray
}

type MovementConfig struct {
	MoveSpeed       float64 `yaml:"move_speed"`       // cells per tick
	RotationSpeed   float64 `yaml:"rotation_speed"`   // radians per tick
	CollisionRadius float64 `yaml:"collision_radius"` // cells
}

type WorldConfig struct {
	MapFile       string  `yaml:"map_file"`
	StartRotation float64 `yaml:"start_rotation"` // degrees
}

type GraphicsConfig struct {
	SkyColor      string  `yaml:"sky_color"`    // x/image/colornames name
	FloorColor    string  `yaml:"floor_color"`  // x/image/colornames name
	FogDistance   float64 `yaml:"fog_distance"` // cells until brightness_min is reached
	DarkFactor    float64 `yaml:"dark_factor"`  // multiplier for horizontal-scan hits
	BrightnessMin float64 `yaml:"brightness_min"`
	TextureDir    string  `yaml:"texture_dir"` // optional PNG overrides
	ShowHUD       bool    `yaml:"show_hud"`
}

type ThreadingConfig struct {
	ParallelCast bool `yaml:"parallel_cast"`
	PerfLog      bool `yaml:"perf_log"`
}

var GlobalConfig *Config

// Default returns the configuration used when a field is absent from the file.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 400,
			WindowTitle:  "wallcaster",
		},
		Camera: CameraConfig{
			FieldOfView: 60,
			StripWidth:  2,
		},
		Movement: MovementConfig{
			MoveSpeed:       0.06,
			RotationSpeed:   0.04,
			CollisionRadius: 0.2,
		},
		World: WorldConfig{
			MapFile: "assets/level1.map",
		},
		Graphics: GraphicsConfig{
			SkyColor:      "lightsteelblue",
			FloorColor:    "dimgray",
			FogDistance:   12,
			DarkFactor:    0.7,
			BrightnessMin: 0.25,
			TextureDir:    "assets/textures",
			ShowHUD:       true,
		},
	}
}

// LoadConfig loads the configuration from a yaml file on top of Default.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates yaml configuration bytes.
func ParseConfig(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Set global config for easy access
	GlobalConfig = config

	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate checks the values the projection depends on.
func (c *Config) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Camera.StripWidth <= 0 {
		return fmt.Errorf("%w: strip width %v must be positive", ErrInvalidConfig, c.Camera.StripWidth)
	}
	if c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180 {
		return fmt.Errorf("%w: field of view %v must be in (0, 180) degrees", ErrInvalidConfig, c.Camera.FieldOfView)
	}
	if c.Movement.CollisionRadius < 0 || c.Movement.CollisionRadius >= 0.5 {
		return fmt.Errorf("%w: collision radius %v must be in [0, 0.5)", ErrInvalidConfig, c.Movement.CollisionRadius)
	}
	// Rotation is renormalized every tick, which only holds while a single
	// step stays well inside one turn.
	if c.Movement.RotationSpeed < 0 || c.Movement.RotationSpeed >= mathutil.TwoPi {
		return fmt.Errorf("%w: rotation speed %v", ErrInvalidConfig, c.Movement.RotationSpeed)
	}
	if c.Graphics.FogDistance <= 0 {
		return fmt.Errorf("%w: fog distance %v must be positive", ErrInvalidConfig, c.Graphics.FogDistance)
	}
	if c.Graphics.DarkFactor <= 0 || c.Graphics.DarkFactor > 1 {
		return fmt.Errorf("%w: dark factor %v must be in (0, 1]", ErrInvalidConfig, c.Graphics.DarkFactor)
	}
	if c.Graphics.BrightnessMin < 0 || c.Graphics.BrightnessMin > 1 {
		return fmt.Errorf("%w: brightness min %v must be in [0, 1]", ErrInvalidConfig, c.Graphics.BrightnessMin)
	}
	if c.World.MapFile == "" {
		return fmt.Errorf("%w: world.map_file is required", ErrInvalidConfig)
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.MoveSpeed
}

func (c *Config) GetRotSpeed() float64 {
	return c.Movement.RotationSpeed
}

// GetCameraFOV returns the field of view in radians.
func (c *Config) GetCameraFOV() float64 {
	return mathutil.Radians(c.Camera.FieldOfView)
}

// GetStartRotation returns the initial facing in radians, normalized.
func (c *Config) GetStartRotation() float64 {
	return mathutil.NormalizeAngle(mathutil.Radians(c.World.StartRotation))
}
