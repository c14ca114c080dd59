package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/punter"
	"github.com/fwojciec/punter/etree"
	"github.com/fwojciec/punter/fs"
	"github.com/fwojciec/punter/goquery"
	"github.com/fwojciec/punter/htmltomarkdown"
	punterhttp "github.com/fwojciec/punter/http"
	"github.com/fwojciec/punter/scrape"
	puntersl "github.com/fwojciec/punter/slog"
	"github.com/fwojciec/punter/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("punter"),
		kong.Description("Fetch Prismata unit data from the wiki and export it"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	// A base that is not a URL is treated as a directory of saved pages.
	var fetcher punter.Fetcher
	if strings.HasPrefix(cli.BaseURL, "http") {
		fetcher = punterhttp.NewFetcher(cli.BaseURL, punterhttp.WithTimeout(timeout))
	} else {
		fetcher = fs.NewFetcher(cli.BaseURL)
	}
	fetcher = puntersl.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	var cache punter.SourceCache
	if cli.CacheDB != "" {
		db := sqlite.NewDB(cli.CacheDB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open cache database: %w", err)
		}
		defer db.Close()
		cache = puntersl.NewLoggingSourceCache(sqlite.NewSourceCache(db), logger)
	}

	var limiter punter.Limiter
	if cli.Rate > 0 {
		limiter = scrape.NewLimiter(cli.Rate)
	}

	deps.Service = &scrape.Scraper{
		Fetcher:   fetcher,
		Tables:    goquery.NewTableParser(),
		Units:     goquery.NewUnitParser(htmltomarkdown.NewConverter()),
		Limiter:   limiter,
		Cache:     cache,
		Store:     fs.NewSourceStore(cli.SavePath),
		UnitsPath: cli.UnitsPath,
		Logger:    logger,
	}

	out := cli.Out
	if out == "" {
		out = "units." + cli.Format
	}

	switch cli.Format {
	case "csv":
		deps.Writer = fs.NewCSVWriter(out)
	case "xml":
		deps.Writer = etree.NewXMLWriter(out)
	default:
		deps.Writer = fs.NewJSONWriter(out)
	}

	cmd := &FetchCmd{
		Include:     cli.Include,
		SaveSource:  cli.SaveSource,
		Concurrency: cli.Concurrency,
		Out:         out,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL     string        `default:"https://prismata.gamepedia.com" help:"Wiki base URL, or a directory of saved pages"`
	UnitsPath   string        `default:"/Unit" help:"Wiki path of the unit index page"`
	Include     []string      `short:"i" default:"all" help:"Unit names to include (\"all\" selects every unit)"`
	SaveSource  bool          `short:"s" help:"Archive raw page sources under the save path"`
	SavePath    string        `default:"files/wiki" help:"Directory for archived page sources"`
	CacheDB     string        `help:"SQLite database for caching fetched pages"`
	Format      string        `short:"f" enum:"json,csv,xml" default:"json" help:"Output format"`
	Out         string        `short:"o" help:"Output file (default: units.<format>)"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Rate        float64       `default:"1" help:"Maximum requests per second (0 disables throttling)"`
	Concurrency int           `short:"c" default:"1" help:"Concurrent detail page fetches"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
}
