package ports

import (
	"context"

	"github.com/pjecz/hercules-api-key/internal/core/domain"
)

// AccessLogRepository persists access events.
type AccessLogRepository interface {
	Insert(ctx context.Context, event *domain.AccessEvent) error
}

// AccessLogService stores one access event.
type AccessLogService interface {
	Process(ctx context.Context, event domain.AccessEvent) error
}

// AccessRecorder accepts events without blocking the request that produced
// them.
type AccessRecorder interface {
	Record(event domain.AccessEvent)
}
