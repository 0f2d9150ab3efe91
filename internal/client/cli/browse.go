package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/tourplanner/internal/client/api"
	"github.com/dmitrijs2005/tourplanner/internal/client/models"
)

func (a *App) Tours(ctx context.Context, _ []string) error {
	err := a.store.FetchSavedTours(ctx)
	a.syncMode()
	if err != nil {
		return err
	}
	tours := a.store.State().SavedTours
	if len(tours) == 0 {
		fmt.Fprintln(a.out, "No saved tours")
		return nil
	}
	for _, t := range tours {
		fmt.Fprintf(a.out, "%-36s %s - %s  %s (%s)\n", t.ID, t.StartDate, t.EndDate, t.Title,
			strings.Join(t.Destinations.Names(), ", "))
	}
	return nil
}

func (a *App) Tour(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("tour <id>")
	}
	t, err := a.store.FetchTour(ctx, args[0])
	a.syncMode()
	if errors.Is(err, api.ErrNotFound) {
		return fmt.Errorf("tour %s not found", args[0])
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\n%s - %s, %d destinations: %s\n", t.Title, t.StartDate, t.EndDate,
		t.DestinationCount, strings.Join(t.Destinations.Names(), ", "))

	byDay := map[int][]models.TourItem{}
	for _, ti := range t.TourItems {
		byDay[ti.Day] = append(byDay[ti.Day], ti)
	}
	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Ints(days)
	for _, day := range days {
		items := byDay[day]
		sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
		fmt.Fprintf(a.out, "Day %d\n", day)
		for _, ti := range items {
			fmt.Fprintf(a.out, "  %d. [%s] %s (%s)\n", ti.Order+1, ti.Type, ti.Title, ti.City)
		}
	}
	return nil
}

func cityArg(args []string) string {
	return strings.Join(args, " ")
}

func (a *App) Monuments(ctx context.Context, args []string) error {
	list, err := a.catalogService.Monuments(ctx, cityArg(args))
	if err != nil {
		return err
	}
	for _, m := range list {
		line := fmt.Sprintf("%-24s %s (%s)", m.ID, m.Name, m.City)
		if m.OpeningTime != "" {
			line += fmt.Sprintf(" %s-%s", m.OpeningTime, m.ClosingTime)
		}
		if m.EntryFee > 0 {
			line += fmt.Sprintf(" %.0f MAD", m.EntryFee)
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

func (a *App) Restaurants(ctx context.Context, args []string) error {
	list, err := a.catalogService.Restaurants(ctx, cityArg(args))
	if err != nil {
		return err
	}
	for _, r := range list {
		fmt.Fprintf(a.out, "%-24s %s (%s) %s %s\n", r.ID, r.Name, r.City, r.Cuisine, r.PriceRange)
	}
	return nil
}

func (a *App) Exchanges(ctx context.Context, _ []string) error {
	list, err := a.catalogService.Exchanges(ctx)
	if err != nil {
		return err
	}
	for _, b := range list {
		fmt.Fprintf(a.out, "%-24s %s, %s (%s)\n", b.ID, b.Name, b.Address, b.City)
		currencies := make([]string, 0, len(b.Rates))
		for c := range b.Rates {
			currencies = append(currencies, c)
		}
		sort.Strings(currencies)
		for _, c := range currencies {
			fmt.Fprintf(a.out, "    %s %.2f\n", c, b.Rates[c])
		}
	}
	return nil
}

func (a *App) ESIMs(ctx context.Context, _ []string) error {
	list, err := a.catalogService.ESIMs(ctx)
	if err != nil {
		return err
	}
	for _, e := range list {
		data := fmt.Sprintf("%.0f GB", e.DataGB)
		if e.IsUnlimited {
			data = "unlimited"
		}
		fmt.Fprintf(a.out, "%-24s %s %s / %d days  %.0f MAD\n", e.ID, e.Provider, data, e.ValidDays, e.PriceMAD)
	}
	return nil
}

func (a *App) BuyESIM(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("buyesim <esim-id> <email>")
	}
	p, err := a.catalogService.BuyESIM(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Purchase %s: %s\n", p.ID, p.Status)
	if p.ActivationURL != "" {
		fmt.Fprintln(a.out, "Activation:", p.ActivationURL)
	}
	return nil
}
