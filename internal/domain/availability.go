package domain

import "sort"

// OperatingWindow is the open/close range of a facility resource for one day.
type OperatingWindow struct {
	Open  TimeOfDay
	Close TimeOfDay
}

// Normalized returns a copy with Close adjusted past midnight when the raw
// close time is numerically earlier than the open time (overnight window).
func (w OperatingWindow) Normalized() OperatingWindow {
	if w.Close < w.Open {
		w.Close += MinutesPerDay
	}
	return w
}

// BookedInterval is one reservation's start/end on a resource for one day.
type BookedInterval struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Normalized returns a copy with End adjusted past midnight when the raw
// end time is numerically earlier than the start time.
func (b BookedInterval) Normalized() BookedInterval {
	if b.End < b.Start {
		b.End += MinutesPerDay
	}
	return b
}

// FreeBlock is a maximal contiguous span within the operating window not
// covered by any booked interval. Start/End keep raw (possibly >= 1440)
// minute values; display rendering wraps them via TimeOfDay.Clock.
// DurationMinutes is always the raw End - Start, never wrapped.
type FreeBlock struct {
	Start           TimeOfDay
	End             TimeOfDay
	DurationMinutes int
}

// ComputeFreeBlocks reconciles a resource's operating window with the booked
// intervals for the day and returns the free contiguous blocks of at least
// minDuration minutes, in chronological order.
//
// A nil window means the resource has no known operating hours for the day
// and yields no free time. Overlapping and back-to-back bookings collapse
// into a single consumed span: the cursor only ever moves forward, so a
// booking fully nested in an already consumed span contributes no gap.
func ComputeFreeBlocks(window *OperatingWindow, bookings []BookedInterval, minDuration int) []FreeBlock {
	if window == nil {
		return []FreeBlock{}
	}

	w := window.Normalized()

	booked := make([]BookedInterval, len(bookings))
	for i, b := range bookings {
		booked[i] = b.Normalized()
	}
	sort.Slice(booked, func(i, j int) bool {
		if booked[i].Start != booked[j].Start {
			return booked[i].Start < booked[j].Start
		}
		return booked[i].End < booked[j].End
	})

	blocks := []FreeBlock{}
	cursor := w.Open

	for _, b := range booked {
		if b.Start > cursor {
			if gap := int(b.Start - cursor); gap >= minDuration {
				blocks = append(blocks, FreeBlock{
					Start:           cursor,
					End:             b.Start,
					DurationMinutes: gap,
				})
			}
		}
		if b.End > cursor {
			cursor = b.End
		}
	}

	if w.Close > cursor {
		if gap := int(w.Close - cursor); gap >= minDuration {
			blocks = append(blocks, FreeBlock{
				Start:           cursor,
				End:             w.Close,
				DurationMinutes: gap,
			})
		}
	}

	return blocks
}

// GridCell is one fixed-width cell of the booking platform's rental grid.
type GridCell struct {
	Open  TimeOfDay
	Close TimeOfDay
}

// GroupContiguousCells collapses adjacent rental-grid cells into contiguous
// blocks. Cells are sorted by open time; a cell whose open time equals the
// current block's end extends the block, anything else starts a new one.
func GroupContiguousCells(cells []GridCell) []FreeBlock {
	if len(cells) == 0 {
		return []FreeBlock{}
	}

	sorted := make([]GridCell, len(cells))
	copy(sorted, cells)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Open < sorted[j].Open
	})

	blocks := []FreeBlock{}
	current := FreeBlock{Start: sorted[0].Open, End: sorted[0].Close}

	for _, cell := range sorted[1:] {
		if cell.Open == current.End {
			current.End = cell.Close
			continue
		}
		current.DurationMinutes = int(current.End - current.Start)
		blocks = append(blocks, current)
		current = FreeBlock{Start: cell.Open, End: cell.Close}
	}

	current.DurationMinutes = int(current.End - current.Start)
	blocks = append(blocks, current)

	return blocks
}
