package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/blockbot/automatic"
	"github.com/domino14/blockbot/config"
	"github.com/domino14/blockbot/equity"
	"github.com/domino14/blockbot/tuner"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	start, err := equity.WeightsFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("bad weights")
	}
	settings := tuner.SettingsFromConfig(cfg)

	var seed [32]byte
	if s := cfg.GetString(config.ConfigSeed); s != "" {
		if seed, err = automatic.DecodeSeed(s); err != nil {
			log.Fatal().Err(err).Msg("bad seed")
		}
	} else {
		frand.Read(seed[:])
	}
	var gameSeeds [][32]byte
	if path := cfg.GetString(config.ConfigSeedFile); path != "" {
		if gameSeeds, err = automatic.LoadSeeds(path); err != nil {
			log.Fatal().Err(err).Msg("bad seed file")
		}
	} else {
		gameSeeds = automatic.GenerateSeeds(settings.Games)
	}
	log.Info().Str("seed", automatic.EncodeSeed(seed)).Int("games", len(gameSeeds)).
		Interface("settings", settings).Msg("tuning")

	ce, err := tuner.NewCrossEntropy(cfg, settings, start, seed, gameSeeds)
	if err != nil {
		log.Fatal().Err(err).Msg("bad settings")
	}
	if path := cfg.GetString(config.ConfigTuneOutput); path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create output")
		}
		defer f.Close()
		ce.SetOutput(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	means, err := ce.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("tuning stopped early")
	}
	best := ce.Best()
	fmt.Printf("best candidate: %v (%.1f pieces)\n", best.Weights, best.Pieces)
	if err := equity.WriteWeights(os.Stdout, means, "cross-entropy means"); err != nil {
		log.Fatal().Err(err).Msg("could not write weights")
	}
}
