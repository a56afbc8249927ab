package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/corptravel/trip-search-client/internal/app"
	"github.com/corptravel/trip-search-client/internal/domain"
	"github.com/corptravel/trip-search-client/internal/usecase"
)

func newSearchCmd(flags *globalFlags) *cobra.Command {
	var slider float64

	cmd := &cobra.Command{
		Use:   "search <leg-id>",
		Short: "Search a leg and print the ranked options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			a, err := openApp(cmd, flags)
			if err != nil {
				return err
			}
			defer closeApp(a, &err)

			ctx := cmdContext(cmd)
			legID := args[0]

			a.Session.Search(ctx, legID)
			if msg := a.Session.State().Error; msg != "" {
				return errors.New(msg)
			}
			if cmd.Flags().Changed("slider") {
				a.Session.Rescore(ctx, legID, slider)
			}

			result, ok := a.Session.Result(legID)
			if !ok {
				return fmt.Errorf("no result for leg %s", legID)
			}
			printResult(cmd.OutOrStdout(), legID, a.Session.SliderPosition(), result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&slider, "slider", usecase.DefaultSliderPosition, "cost/convenience preference, 0 (cheapest) to 100")
	return cmd
}

func newIntelCmd(flags *globalFlags) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "intel <leg-id>",
		Short: "Print price intelligence for a leg around a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			day, err := time.Parse(time.DateOnly, date)
			if err != nil {
				return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", date)
			}

			a, err := openApp(cmd, flags)
			if err != nil {
				return err
			}
			defer closeApp(a, &err)

			legID := args[0]
			if err := a.Intel.LoadLeg(cmdContext(cmd), legID, date); err != nil {
				return err
			}
			printIntel(cmd.OutOrStdout(), a.Intel, legID, day)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "target date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newChatCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Build a trip conversationally",
		Long: "Reads one message per line. Commands: /create creates the trip once it is ready " +
			"and prefetches its legs, /reset starts over, /quit exits.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			a, err := openApp(cmd, flags)
			if err != nil {
				return err
			}
			defer closeApp(a, &err)

			return runChat(cmd, a)
		},
	}
}

func newTranscriptCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "transcript <trip-id>",
		Short: "Print the conversation a trip was created from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			a, err := openApp(cmd, flags)
			if err != nil {
				return err
			}
			defer closeApp(a, &err)

			turns, err := a.Builder.Transcript(cmdContext(cmd), args[0])
			if err != nil {
				return err
			}
			for _, t := range turns {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", t.Role, t.Content)
			}
			return nil
		},
	}
}

func runChat(cmd *cobra.Command, a *app.App) error {
	ctx := cmdContext(cmd)
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintln(out, "Describe your trip. /create, /reset or /quit.")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit":
			return nil
		case "/reset":
			if err := a.Builder.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "Started a new conversation.")
			continue
		case "/create":
			trip, err := a.Builder.CreateFromChat(ctx)
			if errors.Is(err, domain.ErrTripNotReady) {
				fmt.Fprintln(out, "The trip is not ready yet.")
				continue
			}
			if err != nil {
				fmt.Fprintf(out, "Could not create the trip: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "Created trip %s with %d legs.\n", trip.ID, len(trip.Legs))
			a.Prefetch.PrefetchAll(ctx, trip.LegIDs())
			a.Prefetch.Wait()
			for _, leg := range trip.Legs {
				printLegSummary(out, leg, a.Session)
			}
			continue
		}

		if err := a.Builder.SendMessage(ctx, line); err != nil {
			fmt.Fprintf(out, "Could not send: %v\n", err)
			continue
		}
		printLastReply(out, a.Builder.Snapshot())
	}
	return scanner.Err()
}

func printLastReply(w io.Writer, snap usecase.DialogueSnapshot) {
	if n := len(snap.Turns); n > 0 && snap.Turns[n-1].Role == domain.RoleAssistant {
		fmt.Fprintf(w, "assistant: %s\n", snap.Turns[n-1].Content)
	}
	if snap.State == usecase.StateReady {
		fmt.Fprintln(w, "Trip is ready. Type /create to book it.")
		return
	}
	if len(snap.QuickReplies) > 0 {
		fmt.Fprintf(w, "suggestions: %s\n", strings.Join(snap.QuickReplies, " | "))
	}
}

func printLegSummary(w io.Writer, leg domain.TripLeg, session *usecase.SearchSession) {
	route := fmt.Sprintf("%s %s -> %s %s", leg.ID, leg.OriginAirport, leg.DestinationAirport, leg.PreferredDate)
	result, ok := session.Result(leg.ID)
	if !ok || result.Recommendation == nil {
		fmt.Fprintf(w, "  %s: no result yet\n", route)
		return
	}
	rec := result.Recommendation
	fmt.Fprintf(w, "  %s: %s %.2f %s\n", route, rec.AirlineName, rec.Price, rec.Currency)
}

func printResult(w io.Writer, legID string, slider float64, result *domain.LegSearchResult) {
	fmt.Fprintf(w, "Leg %s (slider %.0f)\n", legID, slider)
	if rec := result.Recommendation; rec != nil {
		fmt.Fprintf(w, "Recommended: %s %s %.2f %s\n", rec.ID, rec.AirlineName, rec.Price, rec.Currency)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tAIRLINE\tROUTE\tDEPARTS\tSTOPS\tPRICE\tSCORE")
	for _, o := range result.AllOptions {
		fmt.Fprintf(tw, "%s\t%s\t%s-%s\t%s\t%d\t%.2f %s\t%.1f\n",
			o.ID, o.AirlineName, o.OriginAirport, o.DestinationAirport,
			o.DepartureTime.Format("2006-01-02 15:04"), o.Stops, o.Price, o.Currency, o.Score)
	}
	_ = tw.Flush()
}

func printIntel(w io.Writer, intel *usecase.PriceIntelCache, legID string, day time.Time) {
	date := day.Format(time.DateOnly)
	fmt.Fprintf(w, "Price intelligence for %s around %s\n", legID, date)

	if e, ok := intel.Calendar(legID, day.Year(), int(day.Month())); ok && e.HasValue {
		s := e.Value.MonthStats
		fmt.Fprintf(w, "calendar: cheapest %.2f on %s, %d days with flights\n", s.CheapestPrice, s.CheapestDate, s.DatesWithFlights)
	} else {
		fmt.Fprintln(w, "calendar: unavailable")
	}

	if e, ok := intel.Matrix(legID); ok && e.HasValue {
		fmt.Fprintf(w, "matrix: %d dates x %d airlines\n", len(e.Value.Dates), len(e.Value.Airlines))
	} else {
		fmt.Fprintln(w, "matrix: unavailable")
	}

	if e, ok := intel.Advisor(legID); ok && e.HasValue {
		fmt.Fprintf(w, "advisor: %s (%.0f%%) %s\n", e.Value.Recommendation, e.Value.Confidence*100, e.Value.Headline)
	} else {
		fmt.Fprintln(w, "advisor: unavailable")
	}

	if e, ok := intel.Trend(legID); ok && e.HasValue {
		fmt.Fprintf(w, "trend: %d points\n", len(e.Value.LegTrend))
	} else {
		fmt.Fprintln(w, "trend: unavailable")
	}

	if e, ok := intel.Context(legID, date); ok && e.HasValue && e.Value.Available {
		fmt.Fprintf(w, "context: %.2f is at the %.0fth percentile\n", e.Value.CurrentPrice, e.Value.Percentile)
	} else {
		fmt.Fprintln(w, "context: no historical data")
	}
}
