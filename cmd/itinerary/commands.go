package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/pkordes/itinerary-planner/internal/app"
	"github.com/pkordes/itinerary-planner/internal/config"
	"github.com/pkordes/itinerary-planner/internal/domain"
)

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "itinerary",
		Usage: "Inspect trips and history, undo changes and export itineraries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "driver",
				Usage: "store backend (memory, file, bolt, sqlite, postgres); overrides STORE_DRIVER",
			},
			&cli.StringFlag{
				Name:  "path",
				Usage: "store directory; overrides STORE_PATH",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print JSON instead of a table",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "trips",
				Usage:  "List trips",
				Action: withApp(listTrips),
			},
			{
				Name:   "history",
				Usage:  "List history entries, most recent first",
				Action: withApp(listHistory),
			},
			{
				Name:   "undo",
				Usage:  "Reverse the most recent change",
				Action: withApp(undo),
			},
			{
				Name:  "export",
				Usage: "Export every booked item as a flat table",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "csv", Usage: "write CSV instead of JSON"},
				},
				Action: withApp(export),
			},
			{
				Name:   "stats",
				Usage:  "Print dashboard totals",
				Action: withApp(stats),
			},
		},
	}
}

type appAction func(ctx context.Context, cmd *cli.Command, a *app.App, out io.Writer) error

// withApp opens the configured store around action.
func withApp(action appAction) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if d := cmd.String("driver"); d != "" {
			cfg.StoreDriver = d
		}
		if p := cmd.String("path"); p != "" {
			cfg.StorePath = p
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid options: %w", err)
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		a, err := app.New(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.Root().Writer
		if out == nil {
			out = os.Stdout
		}
		return action(ctx, cmd, a, out)
	}
}

func listTrips(ctx context.Context, cmd *cli.Command, a *app.App, out io.Writer) error {
	trips := a.Trips.List(ctx)
	if cmd.Bool("json") {
		return printJSON(out, trips)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESTINATION\tDATES\tFLIGHTS\tSTAYS\tACTIVITIES")
	for _, t := range trips {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s..%s\t%d\t%d\t%d\n",
			t.ID, t.Name, t.Destination, t.StartDate, t.EndDate,
			len(t.Flights), len(t.Accommodations), len(t.Activities))
	}
	return tw.Flush()
}

func listHistory(ctx context.Context, cmd *cli.Command, a *app.App, out io.Writer) error {
	entries := a.History.List(ctx)
	if cmd.Bool("json") {
		return printJSON(out, entries)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tACTION\tENTITY\tENTITY ID\tTRIP ID")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, time.UnixMilli(e.Timestamp).UTC().Format(time.DateTime),
			e.ActionType, e.EntityType, e.EntityID, e.TripID)
	}
	return tw.Flush()
}

func undo(ctx context.Context, _ *cli.Command, a *app.App, out io.Writer) error {
	entry, err := a.History.Undo(ctx)
	if errors.Is(err, domain.ErrNothingToUndo) {
		fmt.Fprintln(out, "nothing to undo")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "undid %s %s %s\n", entry.ActionType, entry.EntityType, entry.EntityID)
	return nil
}

func export(ctx context.Context, cmd *cli.Command, a *app.App, out io.Writer) error {
	rows := a.Export.Export(ctx)
	if !cmd.Bool("csv") {
		return printJSON(out, rows)
	}
	cw := csv.NewWriter(out)
	if err := cw.Write(domain.ExportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func stats(ctx context.Context, _ *cli.Command, a *app.App, out io.Writer) error {
	return printJSON(out, a.Stats.Stats(ctx))
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
