package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"syscall"
	"time"

	"blokus/config"
	"blokus/engine"
	"blokus/experiments"
	"blokus/gamemaster"
	"blokus/player"
	"blokus/tui"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("blokus stopped")
		fmt.Fprintf(os.Stderr, "blokus: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "blokus",
		Usage: "play Blokus in the terminal against humans or computers",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "YAML configuration file"},
			&cli.IntFlag{Name: "players", Aliases: []string{"n"}, Usage: "number of players (1-4)"},
			&cli.StringSliceFlag{Name: "controllers", Usage: "controller per seat: human or computer"},
			&cli.BoolFlag{Name: "headless", Usage: "play computer-only games without the terminal UI"},
			&cli.StringFlag{Name: "record-dir", Usage: "write CSV records of the game into this directory"},
			&cli.StringFlag{Name: "log-level", Usage: "trace, debug, info, warn or error"},
			&cli.StringFlag{Name: "log-file", Usage: "log destination while the terminal UI is running"},
			&cli.IntFlag{Name: "all-placed-bonus", Usage: "bonus for placing every piece"},
			&cli.IntFlag{Name: "monomino-last-bonus", Usage: "bonus for placing every piece, the monomino last"},
			&cli.DurationFlag{Name: "delay", Value: tui.DefaultDelay, Usage: "pause between computer moves in the terminal UI"},
		},
		Action: play,
		Commands: []*cli.Command{
			{
				Name:  "bench",
				Usage: "measure computer moves per second over parallel games",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "games", Value: 32},
					&cli.IntFlag{Name: "goroutines", Value: runtime.NumCPU()},
				},
				Action: bench,
			},
			{
				Name:  "experiment",
				Usage: "play computer-only games for every player count and record them",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "games", Value: experiments.NumGames},
				},
				Action: experiment,
			},
		},
	}
}

// load reads the configuration and applies the command line on top of it.
func load(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if cmd.IsSet("players") {
		cfg.Players = cmd.Int("players")
	}
	if cmd.IsSet("controllers") {
		cfg.Controllers = cmd.StringSlice("controllers")
	}
	if cmd.IsSet("record-dir") {
		cfg.RecordDir = cmd.String("record-dir")
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-file") {
		cfg.LogFile = cmd.String("log-file")
	}
	if cmd.IsSet("all-placed-bonus") {
		cfg.Scoring.AllPlacedBonus = cmd.Int("all-placed-bonus")
	}
	if cmd.IsSet("monomino-last-bonus") {
		cfg.Scoring.MonominoLastBonus = cmd.Int("monomino-last-bonus")
	}
	return cfg, nil
}

// setupLogging sends logs to stderr, or to the log file while the terminal UI owns the screen.
func setupLogging(cfg *config.Config, toFile bool) (io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(level)

	var (
		out    io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	if toFile {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: toFile, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	return closer, nil
}

func play(ctx context.Context, cmd *cli.Command) error {
	cfg, err := load(cmd)
	if err != nil {
		return err
	}
	headless := cmd.Bool("headless")
	if headless && len(cfg.Controllers) == 0 {
		for i := 0; i < cfg.Players; i++ {
			cfg.Controllers = append(cfg.Controllers, "computer")
		}
	}
	engineCfg, err := cfg.Engine()
	if err != nil {
		return err
	}
	if headless && slices.Contains(engineCfg.Controllers, player.HumanKind) {
		return fmt.Errorf("%w: headless games need a computer in every seat", engine.ErrInvalidConfig)
	}

	closer, err := setupLogging(cfg, !headless)
	if err != nil {
		return err
	}
	defer closer.Close()

	e, err := engine.New(engineCfg)
	if err != nil {
		return err
	}
	start := time.Now()
	if headless {
		_, err = e.Run(ctx)
	} else {
		err = tui.Run(ctx, gamemaster.NewGameMaster(e), cmd.Duration("delay"))
	}
	end := time.Now()
	if err != nil {
		return err
	}

	if headless {
		fmt.Print(e.Board())
	}
	printResult(e)

	if cfg.RecordDir != "" {
		recording := &experiments.Recording{}
		recording.Add(e, start, end)
		dir, err := recording.Write(cfg.RecordDir)
		if err != nil {
			return err
		}
		fmt.Printf("records written to %s\n", dir)
	}
	return nil
}

func printResult(e *engine.Engine) {
	result := e.Result()
	if e.Phase() != engine.GameOver {
		fmt.Println("game not finished, current scores:")
	}
	for _, s := range result.Scores {
		fmt.Printf("player %d (%s): %d points, %d cells, bonus %d, %d pieces\n", s.Player, s.Color, s.Score, s.Cells, s.Bonus, s.Placed)
	}
	if e.Phase() == engine.GameOver {
		fmt.Printf("winners: %v\n", result.Winners())
	}
}

func bench(ctx context.Context, cmd *cli.Command) error {
	cfg, err := load(cmd)
	if err != nil {
		return err
	}
	if _, err := setupLogging(cfg, false); err != nil {
		return err
	}

	result, err := experiments.RunThroughputExperiment(ctx, cmd.Int("goroutines"), cmd.Int("games"), cfg.Players, cfg.Scoring.Rules())
	if err != nil {
		return err
	}
	fmt.Printf("%d games, %d moves in %v on %d goroutines: %.1f moves/s\n",
		result.Games, result.Moves, result.Duration, result.Goroutines, result.MovesPerSecond())
	return nil
}

func experiment(ctx context.Context, cmd *cli.Command) error {
	cfg, err := load(cmd)
	if err != nil {
		return err
	}
	if _, err := setupLogging(cfg, false); err != nil {
		return err
	}
	dir := cfg.RecordDir
	if dir == "" {
		dir = "records"
	}

	out, err := experiments.RunPlayerCountExperiment(ctx, dir, cmd.Int("games"), cfg.Scoring.Rules())
	if err != nil {
		return err
	}
	fmt.Printf("records written to %s\n", out)
	return nil
}
