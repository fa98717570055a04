/*
Package config provides environment-based defaults for the tidy tool.
Values here are raw user input: the semantic validation (format names,
space count bounds, line separator symbols) belongs to the argument
validator, which sees flag values and environment defaults the same
way.

Environment Variables:

	ROBOT_TIDY_FORMAT          Output format: txt|robot
	ROBOT_TIDY_USEPIPES        Use pipe cell separators
	ROBOT_TIDY_SPACECOUNT      Spaces between cells in plain text output
	ROBOT_TIDY_LINESEPARATOR   Line separator: native|windows|unix
	ROBOT_TIDY_NO_COLOR        Disable colored error output
	ROBOT_TIDY_VERBOSE         Verbosity level (number of 'v's)

Command line flags override environment values.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the environment-supplied defaults for one invocation.
type Config struct {
	// Format is the default output format ("" = inherit)
	Format string

	// UsePipes selects pipe cell separators by default
	UsePipes bool

	// SpaceCount is the default cell spacing ("" = writer default)
	SpaceCount string

	// LineSeparator is the default line separator symbol
	LineSeparator string

	// NoColor disables colored error output
	NoColor bool

	// Verbose sets the default verbosity level
	Verbose int
}

// Load reads the defaults from the environment.
func Load() Config {
	v := viper.New()

	v.SetDefault("format", "")
	v.SetDefault("usepipes", false)
	v.SetDefault("spacecount", "")
	v.SetDefault("lineseparator", "native")
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", 0)

	v.SetEnvPrefix("ROBOT_TIDY")
	v.AutomaticEnv()

	v.BindEnv("format")
	v.BindEnv("usepipes")
	v.BindEnv("spacecount")
	v.BindEnv("lineseparator")
	v.BindEnv("no_color")
	v.BindEnv("verbose")

	// Verbosity can be given as a string of 'v's, mirroring -vv on the
	// command line.
	if verboseStr := v.GetString("verbose"); strings.Count(verboseStr, "v") > 0 {
		v.Set("verbose", strings.Count(verboseStr, "v"))
	}

	return Config{
		Format:        v.GetString("format"),
		UsePipes:      v.GetBool("usepipes"),
		SpaceCount:    v.GetString("spacecount"),
		LineSeparator: v.GetString("lineseparator"),
		NoColor:       v.GetBool("no_color"),
		Verbose:       v.GetInt("verbose"),
	}
}

// String returns a string representation of the configuration.
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{Format: %s, UsePipes: %v, SpaceCount: %s, LineSeparator: %s, "+
			"NoColor: %v, Verbose: %d}",
		c.Format, c.UsePipes, c.SpaceCount, c.LineSeparator, c.NoColor, c.Verbose,
	)
}
