package automatic

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/blockbot/config"
	"github.com/domino14/blockbot/equity"
)

var DefaultConfig = config.DefaultConfig()

func TestPlayGamesIndependentOfThreads(t *testing.T) {
	is := is.New(t)
	cfg := cappedConfig(t, "60")
	seeds := GenerateSeeds(6)

	serial, err := PlayGames(context.Background(), cfg, equity.DefaultWeights, seeds, 1, nil)
	is.NoErr(err)
	parallel, err := PlayGames(context.Background(), cfg, equity.DefaultWeights, seeds, 4, nil)
	is.NoErr(err)

	is.Equal(len(serial), len(seeds))
	for i := range seeds {
		is.Equal(serial[i].Index, i)
		is.Equal(serial[i].Seed, seeds[i])
		is.Equal(serial[i].Pieces, parallel[i].Pieces)
		is.Equal(serial[i].Lines, parallel[i].Lines)
		is.Equal(serial[i].BoardHash, parallel[i].BoardHash)
	}
}

func TestStartCompVCompStaticGames(t *testing.T) {
	is := is.New(t)
	cfg := cappedConfig(t, "20")
	out := filepath.Join(t.TempDir(), "games.csv")
	results, err := StartCompVCompStaticGames(context.Background(), cfg, equity.DefaultWeights,
		GenerateSeeds(3), 2, out)
	is.NoErr(err)
	is.Equal(len(results), 3)

	contents, err := os.ReadFile(out)
	is.NoErr(err)
	is.True(strings.HasPrefix(string(contents), CSVHeader))

	summary, err := AnalyzeLogFile(out)
	is.NoErr(err)
	is.True(strings.Contains(summary, "Games played: 3"))

	report := Summarize(results)
	is.True(strings.Contains(report, "Games played: 3"))
}

func TestAnalyzeLog(t *testing.T) {
	is := is.New(t)
	log := CSVHeader +
		"a,1,O,8,3,-4,13.000,0\n" +
		"a,2,I,0,3,4,20.000,1\n" +
		"b,1,O,8,3,-4,13.000,0\n"
	summary, err := analyzeLog(strings.NewReader(log))
	is.NoErr(err)
	is.True(strings.Contains(summary, "Games played: 2"))
	is.True(strings.Contains(summary, "O: 0.667"))
	is.True(strings.Contains(summary, "I: 0.333"))

	_, err = analyzeLog(strings.NewReader("a,x,O,8,3,-4,13.000,0\n"))
	is.True(err != nil)
}

func TestSummarizeEmpty(t *testing.T) {
	is := is.New(t)
	is.Equal(Summarize(nil), "No games played.\n")
}

func TestSeedsRoundTrip(t *testing.T) {
	is := is.New(t)
	seeds := GenerateSeeds(4)
	path := filepath.Join(t.TempDir(), "seeds.txt")
	is.NoErr(SaveSeeds(seeds, path))
	loaded, err := LoadSeeds(path)
	is.NoErr(err)
	is.Equal(loaded, seeds)

	s, err := DecodeSeed(EncodeSeed(seeds[0]))
	is.NoErr(err)
	is.Equal(s, seeds[0])

	_, err = DecodeSeed("dG9vc2hvcnQ")
	is.True(err != nil)
	_, err = DecodeSeed("!!!")
	is.True(err != nil)
}

func TestSeedsFromConfig(t *testing.T) {
	is := is.New(t)
	seeds := GenerateSeeds(1)
	cfg := &config.Config{}
	is.NoErr(cfg.Load([]string{"--seed=" + EncodeSeed(seeds[0])}))
	got, err := SeedsFromConfig(cfg)
	is.NoErr(err)
	is.Equal(got, seeds)

	cfg = &config.Config{}
	is.NoErr(cfg.Load([]string{"--num-games=3"}))
	got, err = SeedsFromConfig(cfg)
	is.NoErr(err)
	is.Equal(len(got), 3)
}

func TestPlaySingleGameSendsFinalBoard(t *testing.T) {
	is := is.New(t)
	cfg := cappedConfig(t, "30")
	seeds := GenerateSeeds(1)

	logchan := make(chan string, 64)
	gamechan := make(chan string, 1)
	res, err := PlaySingleGame(context.Background(), cfg, equity.DefaultWeights, seeds[0], logchan, gamechan)
	is.NoErr(err)
	close(logchan)

	board := <-gamechan
	is.True(strings.Contains(board, "Game "+res.GameID))
	is.True(strings.Contains(board, "Lines cleared"))

	turns := 0
	for range logchan {
		turns++
	}
	is.True(turns > 0)
	is.True(turns <= res.Pieces)

	batch, err := PlayGames(context.Background(), cfg, equity.DefaultWeights, seeds, 1, nil)
	is.NoErr(err)
	is.Equal(batch[0].Pieces, res.Pieces)
	is.Equal(batch[0].BoardHash, res.BoardHash)
}
