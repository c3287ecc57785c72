package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigWeights         = "weights"
	ConfigWeightsFile     = "weights-file"
	ConfigSeed            = "seed"
	ConfigSeedFile        = "seed-file"
	ConfigPace            = "pace"
	ConfigMaxPieces       = "max-pieces"
	ConfigNumGames        = "num-games"
	ConfigThreads         = "threads"
	ConfigDebug           = "debug"
	ConfigCPUProfile      = "cpu-profile"
	ConfigTunePopulation  = "tune-population"
	ConfigTuneIterations  = "tune-iterations"
	ConfigTuneGames       = "tune-games"
	ConfigTuneRho         = "tune-rho"
	ConfigTuneNoise       = "tune-noise"
	ConfigTuneOutput      = "tune-output"
	ConfigTuneInitialVari = "tune-initial-variance"
)

// DefaultWeights is the weight vector used when none is configured.
const DefaultWeights = "2.0,3.0,5.0,10.0"

const envPrefix = "blockbot"

type Config struct {
	*viper.Viper
}

// Load parses command-line args and environment variables. Environment
// variables are named BLOCKBOT_<KEY>, with dashes turned into underscores.
// Flags take precedence over the environment.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()

	fs := pflag.NewFlagSet("blockbot", pflag.ContinueOnError)
	fs.String(ConfigWeights, DefaultWeights, "comma-separated scoring weights: height, whitespace, neighbors, tetrises")
	fs.String(ConfigWeightsFile, "", "YAML file holding scoring weights; overrides --weights")
	fs.String(ConfigSeed, "", "base64 32-byte seed for the piece sequence; random if empty")
	fs.String(ConfigSeedFile, "", "file with one base64 seed per line, used for batch runs")
	fs.Duration(ConfigPace, 0, "delay between turns")
	fs.Int(ConfigMaxPieces, 0, "stop a game after this many pieces (0 = play until game over)")
	fs.Int(ConfigNumGames, 1, "number of games to play")
	fs.Int(ConfigThreads, 1, "number of games to play concurrently")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this path")
	fs.Int(ConfigTunePopulation, 50, "candidate weight vectors per tuning iteration")
	fs.Int(ConfigTuneIterations, 10, "number of tuning iterations")
	fs.Int(ConfigTuneGames, 4, "games played per candidate weight vector")
	fs.Float64(ConfigTuneRho, 0.1, "fraction of the population kept as elite")
	fs.Float64(ConfigTuneNoise, 0.03, "extra sampling noise, scaled by each mean")
	fs.Float64(ConfigTuneInitialVari, 4.0, "initial per-weight variance")
	fs.String(ConfigTuneOutput, "", "write tuning iterations as YAML to this path")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix(envPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return nil
}

// DefaultConfig returns a config with every flag at its default value.
func DefaultConfig() Config {
	c := Config{}
	err := c.Load(nil)
	if err != nil {
		panic(err)
	}
	return c
}

// SanitizedSettings returns the settings for display.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
