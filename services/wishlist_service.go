package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Verve-Commerce/verve-storefront-backend/config"
)

// WishlistService owns the wishlist slice: a Redis set of product ids
// per session.
type WishlistService struct{}

var wishlistService = &WishlistService{}

// GetWishlistService returns the wishlist service
func GetWishlistService() *WishlistService {
	return wishlistService
}

const wishlistTTL = 30 * 24 * time.Hour

func wishlistKey(sessionID string) string {
	return "sess:wish:" + sessionID
}

// IDs returns the wishlisted product ids, sorted for a stable payload.
func (s *WishlistService) IDs(ctx context.Context, sessionID string) ([]string, error) {
	ids, err := config.RedisClient.SMembers(ctx, wishlistKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read wishlist: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// Toggle adds the product id when absent and removes it when present.
// Returns whether the product is wishlisted after the call.
func (s *WishlistService) Toggle(ctx context.Context, sessionID, productID string) (bool, error) {
	key := wishlistKey(sessionID)

	member, err := config.RedisClient.SIsMember(ctx, key, productID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check wishlist: %w", err)
	}

	if member {
		if err := config.RedisClient.SRem(ctx, key, productID).Err(); err != nil {
			return false, fmt.Errorf("failed to remove wishlist item: %w", err)
		}
		return false, nil
	}

	if err := config.RedisClient.SAdd(ctx, key, productID).Err(); err != nil {
		return false, fmt.Errorf("failed to add wishlist item: %w", err)
	}
	config.RedisClient.Expire(ctx, key, wishlistTTL)
	return true, nil
}
