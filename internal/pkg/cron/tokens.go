package cron

import (
	"context"
	"time"
)

type revoker interface {
	PurgeExpiredRevocations()
}

// RegisterTokenPurgeJob schedules periodic cleanup of the in-memory
// refresh token revocation list.
func RegisterTokenPurgeJob(s *Scheduler, jwtService revoker) {
	s.AddJob("revoked-token-purge", 1*time.Hour, func(ctx context.Context) error {
		jwtService.PurgeExpiredRevocations()
		return nil
	})
}
