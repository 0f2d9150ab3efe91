package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/tourplanner/internal/client/dates"
	"github.com/dmitrijs2005/tourplanner/internal/client/itinerary"
	"github.com/dmitrijs2005/tourplanner/internal/client/models"
	"github.com/dmitrijs2005/tourplanner/internal/common"
)

func usage(s string) error {
	return fmt.Errorf("usage: %s", s)
}

func parseDay(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q", s)
	}
	return day, nil
}

func (a *App) NewTour(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return usage(`newtour "<title>" <start YYYY/MM/DD> <end YYYY/MM/DD>`)
	}
	if err := a.store.StartDraft(args[0], args[1], args[2]); err != nil {
		return err
	}
	if err := a.builder.SelectDay(1); err != nil {
		return err
	}
	t := a.store.State().CurrentTour
	fmt.Fprintf(a.out, "Draft %q: %s - %s, %d days\n", t.Title, t.StartDate, t.EndDate, len(t.SelectedItemsByDay))
	return a.fetchItems(ctx, false)
}

func (a *App) fetchItems(ctx context.Context, force bool) error {
	var err error
	if force {
		err = a.store.RefreshAvailableItems(ctx)
	} else {
		err = a.store.FetchAvailableItems(ctx)
	}
	a.syncMode()
	if err != nil {
		return fmt.Errorf("loading bookmarks: %w (run 'bookmarks' to retry)", err)
	}
	n := len(a.store.State().AvailableItems)
	if a.Mode == ModeOffline {
		fmt.Fprintf(a.out, "%d bookmarked items available (from local cache)\n", n)
	} else {
		fmt.Fprintf(a.out, "%d bookmarked items available\n", n)
	}
	return nil
}

func (a *App) Title(_ context.Context, args []string) error {
	if len(args) == 0 {
		return usage(`title "<title>"`)
	}
	return a.store.SetTitle(strings.Join(args, " "))
}

// Bookmarks reloads the bookmarks of the draft's range and lists them.
func (a *App) Bookmarks(ctx context.Context, _ []string) error {
	if err := a.fetchItems(ctx, true); err != nil {
		return err
	}
	for _, it := range a.store.State().AvailableItems {
		fmt.Fprintln(a.out, "  "+formatItem(it))
	}
	return nil
}

func (a *App) Days(_ context.Context, _ []string) error {
	st := a.store.State()
	if st.CurrentTour == nil {
		return errNoDraft
	}
	selected := a.builder.SelectedDay()
	for day := 1; day <= st.Days(); day++ {
		date, _ := dates.DateOfDay(st.CurrentTour.StartDate, day)
		mark := " "
		if day == selected {
			mark = "*"
		}
		city := st.CurrentTour.Cities[day]
		if city == "" {
			city = "-"
		}
		fmt.Fprintf(a.out, "%s Day %d  %s  %-14s %-13s %d items\n", mark, day, date, city,
			a.builder.DayState(day), len(st.CurrentTour.SelectedItemsByDay[day]))
	}
	return nil
}

var errNoDraft = errors.New("no draft; start one with newtour")

func (a *App) Day(_ context.Context, args []string) error {
	if len(args) != 1 {
		return usage("day <n>")
	}
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	return a.builder.SelectDay(day)
}

func (a *App) City(_ context.Context, args []string) error {
	if len(args) == 0 {
		return usage("city <name>")
	}
	day := a.builder.SelectedDay()
	err := a.builder.RequestCityChange(day, strings.Join(args, " "))
	if errors.Is(err, itinerary.ErrCityChangeNeedsConfirmation) {
		fmt.Fprintf(a.out, "Day %d already has items. Type 'confirm' to clear them and change city, or 'cancel'.\n", day)
		return nil
	}
	return err
}

func (a *App) ConfirmCity(_ context.Context, _ []string) error {
	p, ok := a.builder.PendingCityChange()
	if err := a.builder.ConfirmCityChange(); err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(a.out, "Day %d cleared, city set to %s\n", p.Day, p.City)
	}
	return nil
}

func (a *App) CancelCity(_ context.Context, _ []string) error {
	a.builder.CancelCityChange()
	return nil
}

// Items lists what can be placed on the selected day, or on the given one.
func (a *App) Items(_ context.Context, args []string) error {
	day := a.builder.SelectedDay()
	if len(args) > 0 {
		d, err := parseDay(args[0])
		if err != nil {
			return err
		}
		day = d
	}
	items, err := a.builder.EligibleItems(day)
	if err != nil {
		return err
	}
	selected := a.store.State().CurrentTour.SelectedItemsByDay[day]
	if len(items) == 0 {
		fmt.Fprintf(a.out, "No items for day %d\n", day)
		return nil
	}
	for _, it := range items {
		mark := "[ ]"
		for _, id := range selected {
			if id == it.ID {
				mark = "[x]"
				break
			}
		}
		fmt.Fprintf(a.out, "%s %s\n", mark, formatItem(it))
	}
	return nil
}

func (a *App) Toggle(_ context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return usage("toggle <item-id> [day]")
	}
	day := a.builder.SelectedDay()
	if len(args) == 2 {
		d, err := parseDay(args[1])
		if err != nil {
			return err
		}
		day = d
	}
	selected, err := a.builder.ToggleItemSelection(args[0], day)
	if err != nil {
		return err
	}
	if selected {
		fmt.Fprintf(a.out, "Added %s to day %d\n", args[0], day)
	} else {
		fmt.Fprintf(a.out, "Removed %s from day %d\n", args[0], day)
	}
	if selected && len(a.store.State().CurrentTour.TourItems) > 0 {
		fmt.Fprintln(a.out, "Run organize again to place it on the timeline")
	}
	return nil
}

func (a *App) Organize(_ context.Context, _ []string) error {
	h, err := a.builder.ProceedToOrganize()
	var empty *itinerary.EmptyDaysError
	if errors.As(err, &empty) {
		fmt.Fprintf(a.out, "Warning: %v. Type 'continue' to organize anyway or 'fill' to go back.\n", empty)
		return nil
	}
	if err != nil {
		return err
	}
	return a.startOrganize(h)
}

func (a *App) ContinueEmpty(_ context.Context, _ []string) error {
	h, err := a.builder.ResolveEmptyDays(itinerary.Continue)
	if err != nil {
		return err
	}
	return a.startOrganize(h)
}

func (a *App) FillEmpty(_ context.Context, _ []string) error {
	if _, err := a.builder.ResolveEmptyDays(itinerary.StayAndFill); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Day %d selected\n", a.builder.SelectedDay())
	return nil
}

// Draft saves, restores or discards the local draft snapshot.
func (a *App) Draft(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("draft save|restore|discard")
	}
	switch args[0] {
	case "save":
		if err := a.tourService.SaveDraft(ctx, a.store.State().CurrentTour); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Draft saved locally")
	case "restore":
		d, err := a.tourService.LoadDraft(ctx)
		if errors.Is(err, common.ErrorNotFound) {
			return errors.New("no saved draft")
		}
		if err != nil {
			return err
		}
		if err := a.store.RestoreDraft(d); err != nil {
			return err
		}
		if err := a.builder.SelectDay(1); err != nil {
			return err
		}
		if len(d.TourItems) > 0 {
			if err := a.buildTimelines(); err != nil {
				return err
			}
		}
		fmt.Fprintf(a.out, "Draft %q restored\n", d.Title)
		return a.fetchItems(ctx, false)
	case "discard":
		if err := a.tourService.DiscardDraft(ctx); err != nil {
			return err
		}
		a.store.ResetDraft()
		fmt.Fprintln(a.out, "Draft discarded")
	default:
		return usage("draft save|restore|discard")
	}
	return nil
}

func formatItem(it models.TourSavedItem) string {
	s := fmt.Sprintf("%-12s %-15s %s", it.ID, "["+string(it.Type)+"]", it.Title)
	if it.City != "" {
		s += " (" + it.City + ")"
	}
	if it.Date != "" {
		s += " " + it.Date
	}
	return s
}
