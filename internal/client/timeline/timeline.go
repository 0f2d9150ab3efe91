// Package timeline models the drag-to-reorder gesture of a day's item list
// independently of any rendering layer. The order changes only when the
// target index computed from the gesture changes; translation and offsets
// are presentational.
package timeline

import (
	"errors"
	"math"
	"slices"
)

var (
	ErrInvalidItemHeight = errors.New("item height must be positive")
	ErrUnknownItem       = errors.New("item is not in the timeline")
	ErrDragInProgress    = errors.New("another item is being dragged")
)

// NoIndex marks an unset DraggedToIndex.
const NoIndex = -1

// ItemDrag is the drag state of one item.
type ItemDrag struct {
	StartTranslation float64
	Active           bool
	OriginalIndex    int
}

// DragState is shared by every item of the list.
type DragState struct {
	DraggingItemID string
	DraggedToIndex int
	OffsetY        float64
}

// Dragging reports whether a gesture is in progress.
func (s DragState) Dragging() bool {
	return s.DraggingItemID != ""
}

// ReorderFunc observes committed moves.
type ReorderFunc func(from, to int)

type Option func(*Timeline)

// WithReorderHook registers fn to run after every committed move.
func WithReorderHook(fn ReorderFunc) Option {
	return func(t *Timeline) { t.onReorder = fn }
}

// Timeline is not safe for concurrent use; gestures are driven from a single
// goroutine.
type Timeline struct {
	order      []string
	itemHeight float64

	items  map[string]*ItemDrag
	shared DragState
	// layout is the order when the current gesture began; offsets of resting
	// items are computed against it.
	layout  []string
	current int

	onReorder ReorderFunc
}

func New(ids []string, itemHeight float64, opts ...Option) (*Timeline, error) {
	if itemHeight <= 0 || math.IsNaN(itemHeight) {
		return nil, ErrInvalidItemHeight
	}
	t := &Timeline{
		itemHeight: itemHeight,
		items:      make(map[string]*ItemDrag),
		shared:     DragState{DraggedToIndex: NoIndex},
	}
	for _, o := range opts {
		o(t)
	}
	t.SetOrder(ids)
	return t, nil
}

// SetOrder replaces the list. Any gesture in progress is cancelled.
func (t *Timeline) SetOrder(ids []string) {
	t.Cancel()
	t.order = append([]string(nil), ids...)
	t.items = make(map[string]*ItemDrag, len(ids))
	for i, id := range t.order {
		t.items[id] = &ItemDrag{OriginalIndex: i}
	}
}

// Order returns a copy of the committed order.
func (t *Timeline) Order() []string {
	return append([]string(nil), t.order...)
}

func (t *Timeline) State() DragState {
	return t.shared
}

// Item returns the drag state of id.
func (t *Timeline) Item(id string) (ItemDrag, bool) {
	it, ok := t.items[id]
	if !ok {
		return ItemDrag{}, false
	}
	return *it, true
}

func (t *Timeline) indexOf(id string) int {
	for i, v := range t.order {
		if v == id {
			return i
		}
	}
	return NoIndex
}

// BeginDrag starts a gesture on id.
func (t *Timeline) BeginDrag(id string) error {
	if t.shared.Dragging() {
		return ErrDragInProgress
	}
	idx := t.indexOf(id)
	if idx == NoIndex {
		return ErrUnknownItem
	}
	it := t.items[id]
	it.Active = true
	it.OriginalIndex = idx
	it.StartTranslation = 0

	t.layout = t.Order()
	t.current = idx
	t.shared = DragState{DraggingItemID: id, DraggedToIndex: idx}
	return nil
}

// Move feeds the gesture's total vertical translation since BeginDrag. It
// returns the target index and whether the order changed. Without an active
// gesture, or with fewer than two items, it does nothing.
func (t *Timeline) Move(translationY float64) (int, bool) {
	if !t.shared.Dragging() {
		return NoIndex, false
	}
	n := len(t.order)
	it := t.items[t.shared.DraggingItemID]
	orig := it.OriginalIndex

	ty := clamp(it.StartTranslation+translationY, -float64(orig)*t.itemHeight, float64(n-orig)*t.itemHeight)
	t.shared.OffsetY = ty
	if n < 2 {
		return t.shared.DraggedToIndex, false
	}

	target := int(math.Round(float64(orig) + ty/t.itemHeight))
	target = max(0, min(target, n-1))
	if target == t.shared.DraggedToIndex {
		return target, false
	}

	from := t.current
	t.order = Splice(t.order, from, target)
	t.current = target
	t.shared.DraggedToIndex = target
	if t.onReorder != nil {
		t.onReorder(from, target)
	}
	return target, true
}

// Offset is the presentational vertical offset of id. The dragged item
// follows the clamped translation; an item lying between the drag origin and
// the current target, in the layout the gesture started from, moves one item
// height against the drag direction.
func (t *Timeline) Offset(id string) float64 {
	s := t.shared
	if !s.Dragging() {
		return 0
	}
	if id == s.DraggingItemID {
		return s.OffsetY
	}
	pos := NoIndex
	for i, v := range t.layout {
		if v == id {
			pos = i
			break
		}
	}
	if pos == NoIndex {
		return 0
	}
	orig := t.items[s.DraggingItemID].OriginalIndex
	to := s.DraggedToIndex
	switch {
	case to > orig && pos > orig && pos <= to:
		return -t.itemHeight
	case to < orig && pos < orig && pos >= to:
		return t.itemHeight
	}
	return 0
}

// End finishes the gesture and returns the dragged item's final index. The
// order committed during Move is kept.
func (t *Timeline) End() int {
	idx := t.shared.DraggedToIndex
	t.reset()
	return idx
}

// Cancel aborts the gesture. Moves already committed are not rolled back.
func (t *Timeline) Cancel() {
	t.reset()
}

func (t *Timeline) reset() {
	if it, ok := t.items[t.shared.DraggingItemID]; ok {
		it.Active = false
		it.StartTranslation = 0
	}
	for i, id := range t.order {
		t.items[id].OriginalIndex = i
	}
	t.shared = DragState{DraggedToIndex: NoIndex}
	t.layout = nil
	t.current = 0
}

// Splice returns a copy of s with the element at from moved to position to,
// keeping the relative order of the others. s is not modified. Out of range
// indexes return an unchanged copy.
func Splice(s []string, from, to int) []string {
	out := slices.Clone(s)
	if from < 0 || from >= len(s) || to < 0 || to >= len(s) || from == to {
		return out
	}
	v := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, v)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
