// main.go

package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	port := env("PORT", "8080")
	routePrefix := env("ROUTE_PREFIX", "/make-server-1174071d")
	apiToken := os.Getenv("API_TOKEN")

	r := newRouter(openStore(), apiToken, routePrefix)
	r.Run(":" + port)
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openStore connects to Mongo, falling back to the in-memory store when it is
// unreachable so the server still comes up for local work.
func openStore() Store {
	uri := os.Getenv("MONGO_PUBLIC_URL")
	if uri == "" {
		uri = os.Getenv("MONGO_URL")
	}
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err == nil {
		err = client.Ping(ctx, nil)
	}
	if err != nil {
		log.Printf("warn: mongo unavailable, running with in-memory store: %v", err)
		return newMemoryStore()
	}
	log.Println("connected to MongoDB at:", uri)
	return newMongoStore(client.Database(env("MONGO_DB", "kanchan")))
}

func newRouter(store Store, apiToken, routePrefix string) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          600 * time.Second,
	}))

	srv := newServer(store)

	api := r.Group(routePrefix, bearerRequired(apiToken))
	api.GET("/health", srv.health)

	// public storefront
	api.GET("/products", srv.listProducts)
	api.GET("/products/:id", srv.getProduct)
	api.POST("/orders", srv.createOrder)
	api.POST("/seed", srv.seedData)

	// admin panel
	admin := api.Group("/admin")
	{
		admin.POST("/products", srv.createProduct)
		admin.PUT("/products/:id", srv.updateProduct)
		admin.DELETE("/products/:id", srv.deleteProduct)

		admin.GET("/orders", srv.listOrders)
		admin.PUT("/orders/:id", srv.updateOrder)
		admin.DELETE("/orders/:id", srv.deleteOrder)

		admin.GET("/stats", srv.getStats)
	}

	return r
}

// bearerRequired gates every route behind the shared token. The credential
// just has to be presented; it is only compared when API_TOKEN is configured.
func bearerRequired(apiToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") || len(header) <= 7 {
			c.AbortWithStatusJSON(401, gin.H{"success": false, "error": "missing bearer token"})
			return
		}
		if apiToken != "" && header[7:] != apiToken {
			c.AbortWithStatusJSON(401, gin.H{"success": false, "error": "invalid token"})
			return
		}
		c.Next()
	}
}
