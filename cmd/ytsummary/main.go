package main

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/drewacevedo/ytsummary/internal/config"
	"github.com/drewacevedo/ytsummary/internal/logger"
	"github.com/drewacevedo/ytsummary/internal/pipeline"
	"github.com/drewacevedo/ytsummary/internal/store"
	"github.com/drewacevedo/ytsummary/internal/summarizer"
	"github.com/drewacevedo/ytsummary/internal/transcript"
	"github.com/drewacevedo/ytsummary/internal/youtube"
	"github.com/drewacevedo/ytsummary/pkg/executor"
)

func main() {
	app := &cli.App{
		Name:      "ytsummary",
		Usage:     "fetch recent videos from YouTube channels and summarize their transcripts",
		ArgsUsage: "<comma-or-space-separated channel handles or video ids>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "days",
				Aliases: []string{"d"},
				Value:   1,
				Usage:   "number of days to look back for videos",
			},
			&cli.BoolFlag{
				Name:    "video-ids",
				Aliases: []string{"v"},
				Usage:   "treat inputs as video ids instead of channel handles",
			},
			&cli.StringFlag{
				Name:    "prompt",
				Aliases: []string{"p"},
				Value:   "prompt.txt",
				Usage:   "path to the prompt template file",
			},
			&cli.StringFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Value:   "gemini-2.5-flash",
				Usage:   "model to use for summarization",
			},
			&cli.BoolFlag{
				Name:  "include-previous",
				Usage: "copy existing summaries from previous runs instead of regenerating them",
			},
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the YAML config file (optional)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "processed",
				Usage:   "directory holding the per-run output folders",
			},
			&cli.BoolFlag{
				Name:  "docx",
				Usage: "also export each generated summary as a .docx file",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	ctx := c.Context

	if c.NArg() == 0 {
		return fmt.Errorf("at least one channel handle or video id is required")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level)

	// .env is optional; a present environment always wins.
	_ = godotenv.Load()
	youtubeKey := os.Getenv("YOUTUBE_API_KEY")
	geminiKey := os.Getenv("GEMINI_API_KEY")
	if youtubeKey == "" || geminiKey == "" {
		return fmt.Errorf("YOUTUBE_API_KEY and GEMINI_API_KEY environment variables are required")
	}

	inputs := splitInputs(c.Args().Slice())
	days := c.Int("days")

	mode := youtube.ModeChannelHandles
	if c.Bool("video-ids") {
		mode = youtube.ModeExplicitIDs
	}

	cutoff := computeCutoff(time.Now().UTC(), days, mode)

	log.Info(ctx, "========================================")
	log.Info(ctx, "YouTube Video Summarizer")
	log.Info(ctx, "========================================")
	if mode == youtube.ModeChannelHandles {
		log.Info(ctx, "Fetching videos published in the last %d day(s)...", days)
	} else {
		log.Info(ctx, "Processing explicit video ids...")
	}

	api, err := youtube.NewAPI(ctx, youtubeKey)
	if err != nil {
		return err
	}
	resolver := youtube.NewResolver(api, log, youtube.Options{
		MaxPageSize:                cfg.YouTube.MaxPageSize,
		EnforceCutoffOnExplicitIDs: cfg.YouTube.EnforceCutoffOnExplicitIDs,
	})

	st := store.New(cfg.Paths.Output, log)
	runRoot, err := st.NewRunRoot()
	if err != nil {
		return err
	}
	log.Info(ctx, "Created run folder: %s", runRoot)

	videos := resolver.Resolve(ctx, inputs, mode, cutoff)
	log.Info(ctx, "Total videos to process: %d", len(videos))

	extractor := transcript.New(executor.New(), log, cfg.YouTube.Language)
	summ := summarizer.New(geminiKey, cfg.Summarizer.Model, cfg.Summarizer.PromptPath, log)

	pipe := pipeline.New(st, extractor, summ, resolver.ChannelHandle, log, pipeline.Options{
		RunRoot:         runRoot,
		IncludePrevious: c.Bool("include-previous"),
		WriteDocx:       c.Bool("docx"),
	})

	_, err = pipe.Run(ctx, videos)
	return err
}

// loadConfig reads the optional YAML config and applies CLI overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")

	cfg := config.Default()
	if _, err := os.Stat(path); err == nil {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	} else if c.IsSet("config") {
		return nil, fmt.Errorf("config file %s not found", path)
	}

	if c.IsSet("prompt") {
		cfg.Summarizer.PromptPath = c.String("prompt")
	}
	if c.IsSet("model") {
		cfg.Summarizer.Model = c.String("model")
	}
	if c.IsSet("output") {
		cfg.Paths.Output = c.String("output")
	}

	return cfg, nil
}

// computeCutoff derives the recency cutoff from the lookback window.
// Channel mode always filters against now minus the window, so a zero
// window admits essentially nothing new. Only explicit-id mode treats a
// non-positive window as "no cutoff": the caller named those videos
// directly.
func computeCutoff(now time.Time, days int, mode youtube.Mode) time.Time {
	if mode == youtube.ModeExplicitIDs && days <= 0 {
		return time.Time{}
	}
	return now.AddDate(0, 0, -days)
}

// splitInputs flattens args separated by commas or whitespace.
func splitInputs(args []string) []string {
	var inputs []string
	for _, arg := range args {
		parts := strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		inputs = append(inputs, parts...)
	}
	return inputs
}
