package service

import (
	"context"
	"encoding/json"

	"calproxy/internal/calendly"
	"calproxy/internal/entities"
	apperrors "calproxy/internal/errors"

	"go.uber.org/zap"
)

// requiredBookingFields are checked in this order; the first absent one is
// reported.
var requiredBookingFields = []string{"first_name", "last_name", "email", "start_time"}

const bookingCreatedMessage = "Booking created successfully"

// ValidateBooking checks that every required field is present. Values are
// not inspected: an empty string counts as present.
func ValidateBooking(req entities.BookingRequest) error {
	for _, f := range requiredBookingFields {
		if _, ok := req[f]; !ok {
			return apperrors.ErrValidation("Missing required field: " + f)
		}
	}
	return nil
}

// BuildScheduledEvent maps a validated booking onto the Calendly payload.
func BuildScheduledEvent(eventTypeURI string, req entities.BookingRequest) calendly.ScheduledEventRequest {
	out := calendly.ScheduledEventRequest{
		EventType: eventTypeURI,
		StartTime: req["start_time"],
		Invitee: calendly.Invitee{
			Name:  text(req["first_name"]) + " " + text(req["last_name"]),
			Email: req["email"],
		},
	}
	if phone, ok := req["phone"]; ok {
		out.Invitee.PhoneNumber = phone
	}
	return out
}

// text renders a raw JSON value for use inside the invitee name. Strings
// are unquoted, null is empty, anything else is used as written.
func text(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if string(raw) == "null" {
		return ""
	}
	return string(raw)
}

// CreateBooking validates req and submits it to Calendly.
func (s *SchedulingService) CreateBooking(ctx context.Context, req entities.BookingRequest) (*entities.BookingResponse, error) {
	if err := ValidateBooking(req); err != nil {
		return nil, err
	}

	payload := BuildScheduledEvent(s.eventTypeURI, req)
	event, err := s.upstream.CreateScheduledEvent(ctx, payload)
	if err != nil {
		return nil, s.upstreamError("book", "Calendly booking error", err)
	}

	s.log.Info("booking created", zap.String("uri", event.URI))
	return &entities.BookingResponse{
		Success:   true,
		BookingID: event.URI,
		Message:   bookingCreatedMessage,
	}, nil
}
