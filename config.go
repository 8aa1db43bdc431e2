package ascent

import (
	"fmt"

	"github.com/spf13/viper"
)

// RunConfig is the YAML-serializable description of one simulation run:
// vehicle parameters, initial conditions, the steering variant, and the
// integration step, per SPEC_FULL.md §2.2. It generalizes the teacher's
// SPICE/Horizons `_smdconfig` (config.go) from an environment-variable
// -located TOML file to a single explicit YAML run file, since this
// simulator has no external ephemeris service to locate.
type RunConfig struct {
	Vehicle Vehicle           `mapstructure:"vehicle"`
	Initial InitialConditions `mapstructure:"initial"`
	Control Control           `mapstructure:"control"`
	DT      float64           `mapstructure:"dt"`
	Debug   bool              `mapstructure:"debug"`
}

// LoadRunConfig reads a YAML run file from path using viper, mirroring the
// teacher's viper.SetConfigName/AddConfigPath/ReadInConfig sequence
// (smdConfig in the old config.go) but pointed at an explicit file instead
// of an environment-variable-named directory.
func LoadRunConfig(path string) (RunConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return RunConfig{}, fmt.Errorf("ascent: reading run config %s: %w", path, err)
	}
	var cfg RunConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return RunConfig{}, fmt.Errorf("ascent: decoding run config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

// Validate enforces the RunConfig-level checks of SPEC_FULL.md §4: these
// are distinct from the per-step error kinds of spec.md §7, which only
// arise once a simulation is already running.
func (c RunConfig) Validate() error {
	if c.DT <= 0 {
		return fmt.Errorf("ascent: dt must be positive, got %f", c.DT)
	}
	if err := c.Vehicle.Validate(); err != nil {
		return err
	}
	if c.Control.PitchProgram != nil {
		if err := validateCurve("pitch program", c.Control.PitchProgram.Program); err != nil {
			return err
		}
	}
	set := 0
	if c.Initial.LaunchSite != nil {
		set++
	}
	if c.Initial.InFlight != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("ascent: %w: run config initial must set exactly one of launch_site or in_flight", ErrInvalidInitialType)
	}
	return nil
}
