package service

import (
	"context"
	"fmt"
	"time"

	"calproxy/internal/entities"
	apperrors "calproxy/internal/errors"

	"go.uber.org/zap"
)

// Calendly refuses availability windows longer than 7 days, so the last
// queried day is at most 6 days after the first.
const maxWindowDays = 6

const (
	dateLayout          = "2006-01-02"
	windowStartSuffix   = "T09:00:00.000Z"
	windowEndSuffix     = "T23:59:59.999Z"
	slotFormattedLayout = "Monday, January 02 at 03:04 PM"
	slotTimeLayout      = "03:04 PM"
)

// Naive layouts are read in the server's local zone.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	dateLayout,
}

func parseISO(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid isoformat string: %q", s)
}

// Window is the resolved availability query range.
type Window struct {
	Start time.Time
	End   time.Time
}

// StartParam and EndParam are the bounds sent upstream. Only the date part
// of each bound is used; the times of day are fixed.
func (w Window) StartParam() string { return w.Start.Format(dateLayout) + windowStartSuffix }
func (w Window) EndParam() string   { return w.End.Format(dateLayout) + windowEndSuffix }

// ResolveWindow applies the defaults and the 7-day cap to the optional
// start_date and end_date query values. An end past the cap is clamped,
// never rejected.
func (s *SchedulingService) ResolveWindow(startDate, endDate string) (Window, error) {
	var w Window
	if startDate == "" {
		w.Start = s.now().AddDate(0, 0, 1)
	} else {
		t, err := parseISO(startDate)
		if err != nil {
			return Window{}, err
		}
		w.Start = t
	}

	maxEnd := w.Start.AddDate(0, 0, maxWindowDays)
	if endDate == "" {
		w.End = maxEnd
		return w, nil
	}
	t, err := parseISO(endDate)
	if err != nil {
		return Window{}, err
	}
	if t.After(maxEnd) {
		t = maxEnd
	}
	w.End = t
	return w, nil
}

// GetAvailability returns the event type's open slots in the window
// grouped by date, in the order Calendly listed them.
func (s *SchedulingService) GetAvailability(ctx context.Context, startDate, endDate string) (*entities.AvailabilityResponse, error) {
	w, err := s.ResolveWindow(startDate, endDate)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	s.log.Debug("querying availability",
		zap.String("start_time", w.StartParam()),
		zap.String("end_time", w.EndParam()))

	times, err := s.upstream.AvailableTimes(ctx, s.eventTypeURI, w.StartParam(), w.EndParam())
	if err != nil {
		return nil, s.upstreamError("availability", "Calendly API error", err)
	}

	grouped := entities.NewSlotsByDate()
	for _, at := range times {
		slot, err := toSlot(at.StartTime)
		if err != nil {
			return nil, apperrors.ErrInternal(err)
		}
		grouped.Add(slot)
	}

	return &entities.AvailabilityResponse{
		Success:        true,
		AvailableDates: grouped.Dates(),
		SlotsByDate:    grouped,
		TotalSlots:     grouped.Len(),
	}, nil
}

// toSlot formats an upstream start time in its own offset.
func toSlot(startTime string) (entities.Slot, error) {
	t, err := time.Parse(time.RFC3339Nano, startTime)
	if err != nil {
		return entities.Slot{}, fmt.Errorf("invalid isoformat string: %q", startTime)
	}
	return entities.Slot{
		StartTime:     startTime,
		FormattedTime: t.Format(slotFormattedLayout),
		Date:          t.Format(dateLayout),
		Time:          t.Format(slotTimeLayout),
	}, nil
}
