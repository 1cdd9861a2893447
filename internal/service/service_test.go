package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"calproxy/internal/calendly"
	"calproxy/internal/config"
	"calproxy/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testEventType = "https://api.calendly.com/event_types/ET-1"
	testOwner     = "https://api.calendly.com/users/OWNER-1"
)

type fakeUpstream struct {
	times []calendly.AvailableTime
	event *calendly.ScheduledEvent
	user  *calendly.User
	err   error

	calls         int
	gotEventType  string
	gotStart      string
	gotEnd        string
	gotScheduling calendly.ScheduledEventRequest
}

func (f *fakeUpstream) AvailableTimes(_ context.Context, eventType, start, end string) ([]calendly.AvailableTime, error) {
	f.calls++
	f.gotEventType, f.gotStart, f.gotEnd = eventType, start, end
	return f.times, f.err
}

func (f *fakeUpstream) CreateScheduledEvent(_ context.Context, req calendly.ScheduledEventRequest) (*calendly.ScheduledEvent, error) {
	f.calls++
	f.gotScheduling = req
	return f.event, f.err
}

func (f *fakeUpstream) CurrentUser(context.Context) (*calendly.User, error) {
	f.calls++
	return f.user, f.err
}

func newTestService(up Upstream, now time.Time) *SchedulingService {
	svc := NewSchedulingService(up, config.Config{
		EventTypeURI: testEventType,
		OwnerURI:     testOwner,
	}, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}

func bookingRequest(t *testing.T, body string) entities.BookingRequest {
	t.Helper()
	var req entities.BookingRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}
