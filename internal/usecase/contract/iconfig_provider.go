package contract

// IConfigProvider exposes the startup configuration of the process.
type IConfigProvider interface {
	GetServerPort() string
	// GetMongoURI returns the connection string composed from the two
	// credential components and the cluster host.
	GetMongoURI() string
	GetMongoDBName() string
	GetStripeSecretKey() string
	// GetClientBaseURL returns the frontend origin used to build the
	// checkout success and cancel redirect URLs.
	GetClientBaseURL() string
}
