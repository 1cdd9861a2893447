package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"calproxy/internal/calendly"
	"calproxy/internal/config"
	apperrors "calproxy/internal/errors"

	"go.uber.org/zap"
)

// Upstream is the part of the Calendly API the proxy relays to.
type Upstream interface {
	AvailableTimes(ctx context.Context, eventType, start, end string) ([]calendly.AvailableTime, error)
	CreateScheduledEvent(ctx context.Context, req calendly.ScheduledEventRequest) (*calendly.ScheduledEvent, error)
	CurrentUser(ctx context.Context) (*calendly.User, error)
}

type SchedulingService struct {
	upstream     Upstream
	eventTypeURI string
	ownerURI     string
	log          *zap.Logger

	now func() time.Time
}

func NewSchedulingService(upstream Upstream, cfg config.Config, log *zap.Logger) *SchedulingService {
	return &SchedulingService{
		upstream:     upstream,
		eventTypeURI: cfg.EventTypeURI,
		ownerURI:     cfg.OwnerURI,
		log:          log,
		now:          time.Now,
	}
}

// upstreamError converts a client failure into the error kind the API
// layer reports. prefix names the operation in the upstream-rejection text.
func (s *SchedulingService) upstreamError(op, prefix string, err error) error {
	var se *calendly.StatusError
	if errors.As(err, &se) {
		s.log.Warn("upstream rejected request",
			zap.String("op", op),
			zap.Int("status", se.StatusCode),
			zap.String("body", se.Body))
		return apperrors.ErrUpstream(fmt.Sprintf("%s: %d", prefix, se.StatusCode), se.Body)
	}
	var te *calendly.TransportError
	if errors.As(err, &te) {
		s.log.Error("upstream unreachable", zap.String("op", op), zap.Error(err))
		return apperrors.ErrTransport(err)
	}
	s.log.Error("upstream response unusable", zap.String("op", op), zap.Error(err))
	return apperrors.ErrInternal(err)
}
