package calendly

import "encoding/json"

type User struct {
	URI       string `json:"uri"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Timezone  string `json:"timezone"`
	CreatedAt string `json:"created_at"`
}

// resourceEnvelope is how Calendly wraps a single object.
type resourceEnvelope struct {
	Resource json.RawMessage `json:"resource"`
}

// AvailableTime is one bookable start time for an event type.
type AvailableTime struct {
	Status            string `json:"status"`
	InviteesRemaining int    `json:"invitees_remaining"`
	StartTime         string `json:"start_time"`
	SchedulingURL     string `json:"scheduling_url"`
}

type availableTimesResponse struct {
	Collection []AvailableTime `json:"collection"`
}

// Invitee is the person being scheduled.
type Invitee struct {
	Name        string          `json:"name"`
	Email       json.RawMessage `json:"email"`
	PhoneNumber json.RawMessage `json:"phone_number,omitempty"` // only when supplied
}

// ScheduledEventRequest is the create-booking payload. StartTime and
// Invitee.Email are forwarded exactly as the caller sent them.
type ScheduledEventRequest struct {
	EventType string          `json:"event_type"`
	StartTime json.RawMessage `json:"start_time"`
	Invitee   Invitee         `json:"invitee"`
}

type ScheduledEvent struct {
	URI string `json:"uri"`
}
