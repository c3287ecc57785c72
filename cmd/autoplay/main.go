package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/blockbot/automatic"
	"github.com/domino14/blockbot/config"
	"github.com/domino14/blockbot/equity"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	if path := cfg.GetString(config.ConfigCPUProfile); path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	weights, err := equity.WeightsFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("bad weights")
	}
	seeds, err := automatic.SeedsFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("bad seeds")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	threads := cfg.GetInt(config.ConfigThreads)
	log.Info().Int("games", len(seeds)).Int("threads", threads).
		Str("weights", weights.String()).Msg("starting")

	var results []automatic.GameResult
	if len(seeds) == 1 {
		// One game streams its turns to stdout at the configured pace and
		// ends with the final board.
		logchan := make(chan string, 16)
		gamechan := make(chan string, 1)
		printed := make(chan struct{})
		go func() {
			fmt.Print(automatic.CSVHeader)
			for l := range logchan {
				fmt.Print(l)
			}
			close(printed)
		}()
		var res automatic.GameResult
		res, err = automatic.PlaySingleGame(ctx, cfg, weights, seeds[0], logchan, gamechan)
		close(logchan)
		<-printed
		if err == nil {
			fmt.Println(<-gamechan)
			results = []automatic.GameResult{res}
		}
	} else {
		out := fmt.Sprintf("/tmp/blockbot-autoplay-%d.csv", time.Now().Unix())
		results, err = automatic.StartCompVCompStaticGames(ctx, cfg, weights, seeds, threads, out)
		if err == nil {
			log.Info().Str("logfile", out).Msg("wrote turn log")
			analysis, aerr := automatic.AnalyzeLogFile(out)
			if aerr != nil {
				log.Fatal().Err(aerr).Msg("could not analyze turn log")
			}
			fmt.Println(analysis)
		}
	}
	if err != nil {
		log.Fatal().Err(err).Msg("autoplay failed")
	}
	for _, r := range results {
		log.Debug().Int("game", r.Index).Str("seed", automatic.EncodeSeed(r.Seed)).
			Int("pieces", r.Pieces).Int("lines", r.Lines).Uint64("hash", r.BoardHash).Msg("result")
	}
	fmt.Print(automatic.Summarize(results))
}
