// Package config holds the demo settings. Defaults reproduce the
// classic blend modes demo; an optional TOML file can override them.
//
// Example file:
//   title = "Blend modes"
//   background = "assets/space.png"
//   scale = 2
//   modes = ["none", "blend", "add", "mod"]
//
//   [strip]
//   x = 200
//   width = 289
//   height = 84
//   rows = 4
package config

import "io"
import "os"
import "fmt"

import "github.com/tinne26/blendemo"
import "github.com/tinne26/blendemo/core"

import "github.com/pelletier/go-toml/v2"

const (
	DefaultTitle      = "SDL2 Blend Modes"
	DefaultBackground = "space_background_asteroid.png"
	DefaultForeground = "beams.png"
	DefaultPollMillis = 100
	DefaultScale      = 1
)

type Strip struct {
	X      int `toml:"x"`
	Width  int `toml:"width"`
	Height int `toml:"height"`
	Rows   int `toml:"rows"`
}

type Config struct {
	Title      string   `toml:"title"`
	Background string   `toml:"background"`
	Foreground string   `toml:"foreground"`
	Width      int      `toml:"width"`
	Height     int      `toml:"height"`
	Scale      int      `toml:"scale"`
	PollMillis int      `toml:"poll_ms"`
	Modes      []string `toml:"modes"`
	Screenshot string   `toml:"screenshot"` // PNG path, empty to keep the window open
	Strip      Strip    `toml:"strip"`
}

// Returns the default configuration.
func Default() Config {
	layout := blendemo.DefaultLayout()
	return Config{
		Title: DefaultTitle,
		Background: DefaultBackground,
		Foreground: DefaultForeground,
		Width: layout.Width,
		Height: layout.Height,
		Scale: DefaultScale,
		PollMillis: DefaultPollMillis,
		Modes: defaultModeNames(),
		Strip: Strip{
			X: layout.StripX,
			Width: layout.StripWidth,
			Height: layout.StripHeight,
			Rows: layout.Rows,
		},
	}
}

// Loads a TOML configuration file. Keys missing from the file keep
// their default values, unknown keys are an error. The result is
// validated before returning.
func Load(filename string) (Config, error) {
	file, err := os.Open(filename)
	if err != nil { return Config{}, fmt.Errorf("failed to open config: %w", err) }
	config, err := Parse(file)
	closeErr := file.Close()
	if err != nil { return Config{}, fmt.Errorf("config %s: %w", filename, err) }
	if closeErr != nil { return Config{}, closeErr }
	return config, nil
}

// Same as [Load](), but reading the TOML data from the given reader.
func Parse(r io.Reader) (Config, error) {
	config := Default()
	config.Modes = nil
	err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&config)
	if err != nil { return Config{}, err }
	if config.Modes == nil {
		config.Modes = defaultModeNames()
	}
	err = config.Validate()
	if err != nil { return Config{}, err }
	return config, nil
}

// Returns an error if any setting is out of range.
func (self *Config) Validate() error {
	if self.Background == "" { return fmt.Errorf("missing background image") }
	if self.Foreground == "" { return fmt.Errorf("missing foreground image") }
	if self.Scale < 1 || self.Scale > 8 {
		return fmt.Errorf("scale must be in [1, 8] (got %d)", self.Scale)
	}
	if self.PollMillis < 1 || self.PollMillis > 1000 {
		return fmt.Errorf("poll_ms must be in [1, 1000] (got %d)", self.PollMillis)
	}
	err := self.Layout().Validate()
	if err != nil { return err }
	if len(self.Modes) == 0 || len(self.Modes) > self.Strip.Rows {
		return fmt.Errorf("expected between 1 and %d modes (got %d)", self.Strip.Rows, len(self.Modes))
	}
	_, err = self.BlendModes()
	return err
}

// Returns the scene layout described by the configuration.
func (self *Config) Layout() blendemo.Layout {
	return blendemo.Layout{
		Width: self.Width,
		Height: self.Height,
		StripX: self.Strip.X,
		StripWidth: self.Strip.Width,
		StripHeight: self.Strip.Height,
		Rows: self.Strip.Rows,
	}
}

// Parses the configured mode names.
func (self *Config) BlendModes() ([]core.BlendMode, error) {
	modes := make([]core.BlendMode, 0, len(self.Modes))
	for _, name := range self.Modes {
		mode, err := blendemo.ParseBlendMode(name)
		if err != nil { return nil, err }
		modes = append(modes, mode)
	}
	return modes, nil
}

// Returns the number of event polls per second.
func (self *Config) TPS() int {
	if self.PollMillis <= 0 { return 1 }
	return max(1000/self.PollMillis, 1)
}

func defaultModeNames() []string {
	modes := blendemo.DefaultModes()
	names := make([]string, len(modes))
	for i, mode := range modes {
		names[i] = blendemo.BlendModeName(mode)
	}
	return names
}
