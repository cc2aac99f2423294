package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Verve-Commerce/verve-storefront-backend/config"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/redis/go-redis/v9"
)

// ViewSessionService persists each visitor's view/overlay state in
// Redis. The transition rules themselves live on models.ViewSession;
// this service only loads and stores.
type ViewSessionService struct{}

var viewSessionService = &ViewSessionService{}

// GetViewSessionService returns the view session service
func GetViewSessionService() *ViewSessionService {
	return viewSessionService
}

const viewSessionTTL = 24 * time.Hour

func viewSessionKey(sessionID string) string {
	return "sess:view:" + sessionID
}

// Load returns the stored view session, or the initial state (store
// view, overlays closed) for a fresh visitor.
func (s *ViewSessionService) Load(ctx context.Context, sessionID string) (models.ViewSession, error) {
	raw, err := config.RedisClient.Get(ctx, viewSessionKey(sessionID)).Result()
	if err == redis.Nil {
		return models.NewViewSession(), nil
	}
	if err != nil {
		return models.ViewSession{}, fmt.Errorf("failed to load view session: %w", err)
	}

	var session models.ViewSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		// Corrupt entry: fall back to the initial state rather than
		// locking the visitor out.
		return models.NewViewSession(), nil
	}
	return session, nil
}

// Save stores the view session with a sliding TTL.
func (s *ViewSessionService) Save(ctx context.Context, sessionID string, session models.ViewSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal view session: %w", err)
	}
	if err := config.RedisClient.Set(ctx, viewSessionKey(sessionID), raw, viewSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save view session: %w", err)
	}
	return nil
}
