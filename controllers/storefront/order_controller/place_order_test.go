package order_controller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Verve-Commerce/verve-storefront-backend/cache"
	"github.com/Verve-Commerce/verve-storefront-backend/config"
	"github.com/Verve-Commerce/verve-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redisStub answers the handful of commands the checkout path issues
// without a live server: the cart hash is served from memory and the
// cart clear can be flipped into a failure mode. Commands are
// short-circuited in the hook, so the client never dials.
type redisStub struct {
	cart    map[string]string
	failDel bool
}

func (s *redisStub) DialHook(next redis.DialHook) redis.DialHook { return next }

func (s *redisStub) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (s *redisStub) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		switch c := cmd.(type) {
		case *redis.MapStringStringCmd: // HGetAll (cart read)
			c.SetVal(s.cart)
			return nil
		case *redis.IntCmd: // Del (cart clear), HIncrBy
			if c.Name() == "del" && s.failDel {
				return errors.New("redis unavailable")
			}
			c.SetVal(1)
			return nil
		case *redis.StringCmd: // Get (view session): fresh visitor
			return redis.Nil
		case *redis.StatusCmd: // Set (view session save)
			c.SetVal("OK")
			return nil
		case *redis.BoolCmd: // Expire
			c.SetVal(true)
			return nil
		}
		return next(ctx, cmd)
	}
}

func checkoutContext(t *testing.T, stub *redisStub) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	client.AddHook(stub)
	config.RedisClient = client

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/store/orders", nil)
	c.Set("sessionID", "sess-checkout")
	return c, w
}

func seedCheckoutCatalog(t *testing.T) {
	t.Helper()
	cache.ResetCatalog()
	require.True(t, cache.BeginCatalogLoad())
	cache.CompleteCatalogLoad([]models.Product{
		{ID: "p1", Name: "Desk Lamp", Price: 5, Stock: 3},
	})
}

func TestPlaceOrderRecordsOrderAndConfirms(t *testing.T) {
	seedCheckoutCatalog(t)
	cache.ResetOrders()
	t.Cleanup(cache.ResetCatalog)
	t.Cleanup(cache.ResetOrders)

	c, w := checkoutContext(t, &redisStub{cart: map[string]string{"p1": "2"}})

	PlaceOrder(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "confirmation")

	orders := cache.AllOrders()
	require.Len(t, orders, 1)
	assert.InDelta(t, 10.0, orders[0].Subtotal, 0.001)
	assert.Equal(t, "sess-checkout", orders[0].SessionID)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	seedCheckoutCatalog(t)
	cache.ResetOrders()
	t.Cleanup(cache.ResetCatalog)
	t.Cleanup(cache.ResetOrders)

	c, w := checkoutContext(t, &redisStub{cart: map[string]string{}})

	PlaceOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, cache.AllOrders())
}

func TestPlaceOrderFailedCartClearRecordsNothing(t *testing.T) {
	seedCheckoutCatalog(t)
	cache.ResetOrders()
	t.Cleanup(cache.ResetCatalog)
	t.Cleanup(cache.ResetOrders)

	c, w := checkoutContext(t, &redisStub{cart: map[string]string{"p1": "2"}, failDel: true})

	PlaceOrder(c)

	// When the cart cannot be cleared no order may be recorded, so a
	// retried checkout cannot produce a duplicate.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, cache.AllOrders())
}
