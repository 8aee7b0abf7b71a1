package config

import (
	"fmt"
	"os"

	usecasecontract "github.com/henokg/lessonhub/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	ServerPort      string
	MongoUser       string
	MongoPass       string
	MongoHost       string
	MongoDBName     string
	StripeSecretKey string
	ClientBaseURL   string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		ServerPort:      getEnv("PORT", "5000"),
		MongoUser:       getEnv("MONGODB_USER", ""),
		MongoPass:       getEnv("MONGODB_PASS", ""),
		MongoHost:       getEnv("MONGODB_HOST", "cluster0.k6koi0k.mongodb.net"),
		MongoDBName:     getEnv("MONGODB_DB_NAME", "digital-life-session"),
		StripeSecretKey: getEnv("STRIPE_SECRET", ""),
		ClientBaseURL:   getEnv("CLIENT_BASE_URL", "http://localhost:5173"),
	}
}

// GetServerPort returns the HTTP listening port.
func (c *Config) GetServerPort() string {
	return c.ServerPort
}

// GetMongoURI composes the connection string from the credential components
// and the cluster host.
func (c *Config) GetMongoURI() string {
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?appName=Cluster0", c.MongoUser, c.MongoPass, c.MongoHost)
}

// GetMongoDBName returns the database name.
func (c *Config) GetMongoDBName() string {
	return c.MongoDBName
}

// GetStripeSecretKey returns the payment gateway secret key.
func (c *Config) GetStripeSecretKey() string {
	return c.StripeSecretKey
}

// GetClientBaseURL returns the frontend origin for checkout redirects.
func (c *Config) GetClientBaseURL() string {
	return c.ClientBaseURL
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
