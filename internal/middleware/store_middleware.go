package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/partyoria/eventhub/internal/storage"
)

func StoreMiddleware(store storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("store", store)
		c.Next()
	}
}

func GetStore(c *gin.Context) storage.Store {
	store, exists := c.Get("store")
	if !exists {
		return nil
	}
	return store.(storage.Store)
}
