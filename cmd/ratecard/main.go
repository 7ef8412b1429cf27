// Command ratecard prints the normalized BookMyForex rate card for a city,
// or the currency picker matches for a search query.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/SscSPs/forex_widget/internal/adapters/bookmyforex"
	"github.com/SscSPs/forex_widget/internal/core/domain"
	"github.com/SscSPs/forex_widget/internal/core/services"
	"github.com/SscSPs/forex_widget/internal/refdata"
	"github.com/SscSPs/forex_widget/internal/utils"
	"github.com/fatih/color"
	"github.com/spf13/pflag"
)

const defaultCity = "DEL"

type options struct {
	city    string
	query   string
	baseURL string
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := pflag.NewFlagSet("ratecard", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.city, "city", "c", defaultCity, "city code, e.g. DEL or MUM")
	fs.StringVarP(&opts.query, "query", "q", "", "search the currency picker instead of listing rates")
	fs.StringVar(&opts.baseURL, "base-url", bookmyforex.DefaultBaseURL, "forex provider base URL")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log provider calls to stderr")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "ratecard: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	catalog, err := refdata.Load()
	if err != nil {
		return fmt.Errorf("load reference data: %w", err)
	}

	client := bookmyforex.NewClient(bookmyforex.WithBaseURL(opts.baseURL))
	card, err := services.NewRateService(client, catalog, defaultCity).GetRateCard(ctx, opts.city)
	if err != nil {
		return err
	}

	if opts.query == "" {
		printRates(out, card)
		return nil
	}

	state := domain.PickerState{}
	state.SetOpen(true)
	state.Query = opts.query
	picker := services.BuildPicker(services.EnrichCurrencies(catalog.Currencies(), card.Rates), state.Query)
	if len(picker.Results) == 1 {
		state.Select(picker.Results[0].Code)
	}
	printMatches(out, picker.Results, state.Selected)
	return nil
}

func printRates(out io.Writer, card *domain.RateCard) {
	header := color.New(color.FgCyan, color.Bold)
	header.Fprintf(out, "Rates for %s (%s)\n", card.CityCode, card.LastUpdated.Format("2006-01-02 15:04 MST"))

	if len(card.Rates) == 0 {
		color.New(color.FgYellow).Fprintln(out, "no rates available")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tCARD\tNOTES\tNAME")
	code := color.New(color.FgGreen).SprintFunc()
	for _, r := range card.Rates {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", code(r.Currency), utils.FormatMoney(r.CardRate), utils.FormatMoney(r.NotesRate), r.Name)
	}
	_ = tw.Flush()
}

func printMatches(out io.Writer, matches []domain.PickerCurrency, selected string) {
	if len(matches) == 0 {
		color.New(color.FgYellow).Fprintln(out, "no matching currencies")
		return
	}

	highlight := color.New(color.FgGreen, color.Bold).SprintFunc()
	for _, m := range matches {
		line := fmt.Sprintf("%s  %s", m.Code, m.Name)
		if m.RightLabel != "" {
			line += " (" + m.RightLabel + ")"
		}
		if m.Code == selected {
			line = highlight(line)
		}
		fmt.Fprintln(out, line)
	}
}
