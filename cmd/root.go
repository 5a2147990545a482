package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/bookcover/internal/config"
	"github.com/lepinkainen/bookcover/internal/display"
	"github.com/lepinkainen/bookcover/internal/lookup"
	"github.com/lepinkainen/bookcover/internal/notify"
	"github.com/lepinkainen/bookcover/internal/openlibrary"
	"github.com/lepinkainen/bookcover/internal/tui"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"
)

var (
	newPresenter = func() lookup.Presenter { return display.Auto{} }
	selectRecord = tui.SelectRecord
)

// CLI represents the complete command structure for the bookcover application
type CLI struct {
	// Global flags
	Debug   bool   `help:"Enable debug logging"`
	EnvFile string `help:"Path to .env file holding PUSHOVER_USER and PUSHOVER_TOKEN" default:".env"`

	Search SearchCmd `cmd:"" help:"Search Open Library for books"`
	Cover  CoverCmd  `cmd:"" help:"Fetch and display the cover for an ISBN"`
	Find   FindCmd   `cmd:"" help:"Search for books and display the first available cover"`
	Notify NotifyCmd `cmd:"" help:"Send a Pushover notification"`
}

// SearchCmd represents the search command
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Limit int    `short:"n" help:"Maximum number of results (defaults to search.limit in config)"`
}

// CoverCmd represents the cover command
type CoverCmd struct {
	ISBN   string `arg:"" name:"isbn" help:"ISBN to fetch the cover for"`
	NoShow bool   `help:"Only check that a cover exists, do not display it"`
}

// FindCmd represents the find command
type FindCmd struct {
	Query       string `arg:"" optional:"" help:"Search query (defaults to search.query in config)"`
	Limit       int    `short:"n" help:"Maximum number of results (defaults to search.limit in config)"`
	All         bool   `help:"Try every candidate ISBN until a cover is found"`
	Interactive bool   `short:"i" help:"Pick the book interactively before fetching the cover"`
	Notify      bool   `help:"Send the outcome as a Pushover notification"`
}

// NotifyCmd represents the notify command
type NotifyCmd struct {
	Message string `arg:"" help:"Message to send"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging(slog.LevelInfo)
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("bookcover"),
		kong.Description("Look up books on Open Library and display their covers."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	config.SetDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("Config file not found, using defaults")
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}
}

func updateGlobalConfig(cli *CLI) {
	if cli.Debug {
		initLogging(slog.LevelDebug)
	}
	viper.Set("envfile", cli.EnvFile)
}

// Run methods for each command

func (s *SearchCmd) Run() error {
	records, err := newClient().Search(context.Background(), s.Query, searchLimit(s.Limit))
	if err != nil {
		return err
	}
	slog.Info("Search complete", "query", s.Query, "results", len(records))
	return nil
}

func (c *CoverCmd) Run() error {
	data, ok := newClient().FetchCover(context.Background(), c.ISBN)
	if !ok {
		slog.Info(lookup.NoImage.String(), "isbn", c.ISBN)
		return nil
	}
	if c.NoShow {
		slog.Info("Cover available", "isbn", c.ISBN, "bytes", len(data))
		return nil
	}
	return newPresenter().Render(data)
}

func (f *FindCmd) Run() error {
	query := f.Query
	if query == "" {
		query = viper.GetString("search.query")
	}
	if query == "" {
		return fmt.Errorf("search query is required (provide as argument or search.query in config)")
	}

	client := newClient()
	finder := &lookup.Finder{
		Books:     client,
		Covers:    client,
		Presenter: newPresenter(),
		Limit:     searchLimit(f.Limit),
		TryAll:    f.All,
	}
	if f.Interactive {
		finder.Select = interactiveSelect
	}

	ctx := context.Background()
	result, err := finder.Run(ctx, query)
	if err != nil {
		return err
	}

	if f.Notify {
		newNotifier().Notify(ctx, outcomeMessage(query, result))
	}
	return nil
}

func (n *NotifyCmd) Run() error {
	newNotifier().Notify(context.Background(), n.Message)
	return nil
}

func newClient() *openlibrary.Client {
	return openlibrary.NewClient(
		openlibrary.WithBaseURL(viper.GetString("openlibrary.baseurl")),
		openlibrary.WithCoversBaseURL(viper.GetString("covers.baseurl")),
	)
}

func newNotifier() *notify.Pushover {
	creds := config.Load(viper.GetString("envfile"))
	return notify.NewPushover(viper.GetString("pushover.url"), creds, nil)
}

func searchLimit(flag int) int {
	if flag > 0 {
		return flag
	}
	return viper.GetInt("search.limit")
}

func interactiveSelect(query string, records []openlibrary.Record) ([]openlibrary.Record, error) {
	result, err := selectRecord(query, records)
	if err != nil {
		return nil, err
	}

	switch result.Action {
	case tui.ActionSelected:
		return []openlibrary.Record{*result.Selection}, nil
	case tui.ActionStopped:
		return nil, fmt.Errorf("selection stopped by user")
	default:
		return nil, nil
	}
}

func outcomeMessage(query string, result lookup.Result) string {
	if result.Outcome == lookup.Shown {
		return fmt.Sprintf("Cover found for %q (ISBN %s)", query, result.ISBN)
	}
	return fmt.Sprintf("%s for %q", result.Outcome, query)
}

func initLogging(level slog.Level) {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: level,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
