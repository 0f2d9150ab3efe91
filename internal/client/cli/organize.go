package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/dmitrijs2005/tourplanner/internal/client/itinerary"
	"github.com/dmitrijs2005/tourplanner/internal/client/timeline"
	"github.com/dmitrijs2005/tourplanner/internal/client/tour"
)

// itemHeight is the row height the drag simulation works in.
const itemHeight = 1.0

var errNotOrganized = errors.New("the draft is not organized yet; run organize")

func (a *App) startOrganize(h *itinerary.Handoff) error {
	if err := a.buildTimelines(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Organized %d items across %d destinations: %v\n",
		len(h.TourItems), len(h.Destinations), h.Destinations.Names())
	return a.Order(context.Background(), nil)
}

// buildTimelines creates one timeline per day from the draft's selection.
// Committed moves are written back to the store.
func (a *App) buildTimelines() error {
	st := a.store.State()
	if st.CurrentTour == nil {
		return errNoDraft
	}
	clear(a.timelines)
	return a.syncTimelines(st)
}

// syncTimelines makes every day's timeline follow the store's selection.
func (a *App) syncTimelines(st tour.State) error {
	for day, ids := range st.CurrentTour.SelectedItemsByDay {
		tl, ok := a.timelines[day]
		switch {
		case len(ids) == 0:
			delete(a.timelines, day)
		case !ok:
			tl, err := timeline.New(ids, itemHeight, timeline.WithReorderHook(a.reorderHook(day)))
			if err != nil {
				return err
			}
			a.timelines[day] = tl
		case !tl.State().Dragging() && !slices.Equal(tl.Order(), ids):
			tl.SetOrder(ids)
		}
	}
	return nil
}

func (a *App) reorderHook(day int) timeline.ReorderFunc {
	return func(from, to int) {
		if err := a.store.MoveItem(day, from, to); err != nil {
			a.logger.Error(context.Background(), "failed to move item", "day", day, "from", from, "to", to, "error", err)
		}
	}
}

func (a *App) dayTimeline(day int) (*timeline.Timeline, error) {
	st := a.store.State()
	if st.CurrentTour == nil {
		return nil, errNoDraft
	}
	if len(st.CurrentTour.TourItems) == 0 {
		return nil, errNotOrganized
	}
	tl, ok := a.timelines[day]
	if !ok {
		return nil, fmt.Errorf("day %d has no items", day)
	}
	return tl, nil
}

// Order prints the organized timeline of one day, or of every day.
func (a *App) Order(_ context.Context, args []string) error {
	st := a.store.State()
	if st.CurrentTour == nil {
		return errNoDraft
	}
	if len(st.CurrentTour.TourItems) == 0 {
		return errNotOrganized
	}
	var days []int
	if len(args) > 0 {
		day, err := parseDay(args[0])
		if err != nil {
			return err
		}
		days = []int{day}
	} else {
		for day := range st.CurrentTour.SelectedItemsByDay {
			days = append(days, day)
		}
		sort.Ints(days)
	}
	for _, day := range days {
		a.printDay(st, day)
	}
	return nil
}

func (a *App) printDay(st tour.State, day int) {
	city := st.CurrentTour.Cities[day]
	if city == "" {
		city = "-"
	}
	fmt.Fprintf(a.out, "Day %d (%s)\n", day, city)
	ids := st.CurrentTour.SelectedItemsByDay[day]
	if len(ids) == 0 {
		fmt.Fprintln(a.out, "  no items")
		return
	}
	coords := make(map[string]string, len(ids))
	for _, ti := range st.CurrentTour.TourItems {
		if ti.Day == day {
			coords[ti.ItemID] = fmt.Sprintf("%.4f,%.4f", ti.Coordinate.Latitude, ti.Coordinate.Longitude)
		}
	}
	for i, id := range ids {
		title := id
		if it, ok := st.Item(id); ok {
			title = it.Title
		}
		fmt.Fprintf(a.out, "  %d. %-12s %s %s\n", i+1, id, title, coords[id])
	}
}

// Drag simulates a drag gesture of item to a 1-based position, feeding the
// timeline half an item height at a time.
func (a *App) Drag(_ context.Context, args []string) error {
	if len(args) != 3 {
		return usage("drag <day> <item-id> <position>")
	}
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	pos, err := parseDay(args[2])
	if err != nil {
		return err
	}
	tl, err := a.dayTimeline(day)
	if err != nil {
		return err
	}
	if err := tl.BeginDrag(args[1]); err != nil {
		return err
	}
	it, _ := tl.Item(args[1])
	n := len(tl.Order())
	if pos < 1 || pos > n {
		tl.Cancel()
		return fmt.Errorf("position must be between 1 and %d", n)
	}

	distance := float64(pos-1-it.OriginalIndex) * itemHeight
	step := math.Copysign(itemHeight/2, distance)
	for ty := step; math.Abs(ty) <= math.Abs(distance); ty += step {
		if idx, moved := tl.Move(ty); moved {
			a.logger.Debug(context.Background(), "drag reordered", "day", day, "item", args[1], "index", idx)
		}
	}
	final := tl.End()
	fmt.Fprintf(a.out, "%s is now at position %d\n", args[1], final+1)
	a.printDay(a.store.State(), day)
	return nil
}

// Move moves the item at 1-based position from to position to.
func (a *App) Move(_ context.Context, args []string) error {
	if len(args) != 3 {
		return usage("move <day> <from> <to>")
	}
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	from, err := parseDay(args[1])
	if err != nil {
		return err
	}
	to, err := parseDay(args[2])
	if err != nil {
		return err
	}
	if _, err := a.dayTimeline(day); err != nil {
		return err
	}
	if err := a.store.MoveItem(day, from-1, to-1); err != nil {
		return err
	}
	a.printDay(a.store.State(), day)
	return nil
}

// Save posts the organized draft and drops the local snapshot.
func (a *App) Save(ctx context.Context, _ []string) error {
	saved, err := a.store.SaveCurrentTour(ctx)
	a.syncMode()
	if err != nil {
		return err
	}
	if err := a.tourService.DiscardDraft(ctx); err != nil {
		a.logger.Warn(ctx, "failed to discard local draft", "error", err)
	}
	fmt.Fprintf(a.out, "Tour %q saved with id %s\n", saved.Title, saved.ID)
	return nil
}
