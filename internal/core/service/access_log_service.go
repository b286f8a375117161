package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
	"github.com/pjecz/hercules-api-key/internal/core/ports"
	"github.com/pjecz/hercules-api-key/pkg/logger"
)

type accessLogService struct {
	repo ports.AccessLogRepository
	log  zerolog.Logger
}

// NewAccessLogService returns an AccessLogService implementation.
func NewAccessLogService(repo ports.AccessLogRepository, log zerolog.Logger) ports.AccessLogService {
	return &accessLogService{repo: repo, log: logger.Component(log, "access_log")}
}

// Process persists one access event. Events without a user are dropped.
func (s *accessLogService) Process(ctx context.Context, event domain.AccessEvent) error {
	if event.UserID <= 0 {
		s.log.Debug().Str("path", event.Path).Msg("access event without user skipped")
		return nil
	}
	if event.At.IsZero() {
		return fmt.Errorf("process access event: missing timestamp")
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("process access event: %w", err)
	}

	s.log.Debug().
		Int64("user_id", event.UserID).
		Str("method", event.Method).
		Str("path", event.Path).
		Int("status", event.Status).
		Msg("access recorded")
	return nil
}
