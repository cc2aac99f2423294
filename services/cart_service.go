package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Verve-Commerce/verve-storefront-backend/config"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
)

// CartService owns the visitor cart slice: a Redis hash per session
// mapping product id to quantity.
type CartService struct{}

var cartService = &CartService{}

// GetCartService returns the cart service
func GetCartService() *CartService {
	return cartService
}

const cartTTL = 7 * 24 * time.Hour

func cartKey(sessionID string) string {
	return "sess:cart:" + sessionID
}

// Items returns the cart lines, ordered by product id for a stable
// payload.
func (s *CartService) Items(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	entries, err := config.RedisClient.HGetAll(ctx, cartKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	items := make([]models.CartItem, 0, len(entries))
	for productID, rawQty := range entries {
		qty, err := strconv.Atoi(rawQty)
		if err != nil || qty <= 0 {
			continue
		}
		items = append(items, models.CartItem{ProductID: productID, Quantity: qty})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })
	return items, nil
}

// Count is the total quantity across all lines.
func (s *CartService) Count(ctx context.Context, sessionID string) (int, error) {
	items, err := s.Items(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count, nil
}

// Add increments a product's quantity.
func (s *CartService) Add(ctx context.Context, sessionID, productID string, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}
	key := cartKey(sessionID)
	if err := config.RedisClient.HIncrBy(ctx, key, productID, int64(quantity)).Err(); err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	config.RedisClient.Expire(ctx, key, cartTTL)
	return nil
}

// SetQuantity sets a line's quantity exactly; zero removes the line.
func (s *CartService) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) error {
	key := cartKey(sessionID)
	if quantity <= 0 {
		return s.Remove(ctx, sessionID, productID)
	}
	if err := config.RedisClient.HSet(ctx, key, productID, quantity).Err(); err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	config.RedisClient.Expire(ctx, key, cartTTL)
	return nil
}

// Remove drops a line from the cart.
func (s *CartService) Remove(ctx context.Context, sessionID, productID string) error {
	if err := config.RedisClient.HDel(ctx, cartKey(sessionID), productID).Err(); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// Clear empties the cart (checkout completion).
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := config.RedisClient.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
