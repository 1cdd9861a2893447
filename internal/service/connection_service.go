package service

import (
	"context"

	"calproxy/internal/calendly"
	"calproxy/internal/entities"

	"go.uber.org/zap"
)

const connectionOKMessage = "Calendly API connection successful"

// CurrentUser asks Calendly who the configured token belongs to.
func (s *SchedulingService) CurrentUser(ctx context.Context) (*calendly.User, error) {
	u, err := s.upstream.CurrentUser(ctx)
	if err != nil {
		return nil, s.upstreamError("test", "API test failed", err)
	}
	if !s.OwnerMatches(u) {
		s.log.Warn("token owner differs from configured owner",
			zap.String("token_owner", u.URI),
			zap.String("configured_owner", s.ownerURI))
	}
	return u, nil
}

// OwnerMatches reports whether u is the configured scheduler owner. With no
// owner configured every user matches.
func (s *SchedulingService) OwnerMatches(u *calendly.User) bool {
	return s.ownerURI == "" || u.URI == s.ownerURI
}

// TestConnection verifies the stored credentials against Calendly.
func (s *SchedulingService) TestConnection(ctx context.Context) (*entities.ConnectionResponse, error) {
	u, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return &entities.ConnectionResponse{
		Success: true,
		Message: connectionOKMessage,
		User:    u.Name,
		Email:   u.Email,
	}, nil
}
