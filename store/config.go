package store

// Config holds configuration for the Store.
type Config struct {
	// TableName is the name of the single table.
	// Default: "propman"
	TableName string

	// DefaultLimit is the page size used when a query does not set one.
	// Default: 20
	DefaultLimit int32

	// MaxLimit caps the page size of a query.
	// Default: 1000
	MaxLimit int32

	// ConsistentRead makes Get strongly consistent. Index queries are always
	// eventually consistent.
	ConsistentRead bool
}

// DefaultConfig returns the configuration used by the propman services.
func DefaultConfig() Config {
	return Config{
		TableName:      "propman",
		DefaultLimit:   20,
		MaxLimit:       1000,
		ConsistentRead: true,
	}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.TableName == "" {
		c.TableName = "propman"
	}
	if c.MaxLimit < 1 {
		c.MaxLimit = 1000
	}
	if c.DefaultLimit < 1 {
		c.DefaultLimit = 20
	}
	if c.DefaultLimit > c.MaxLimit {
		c.DefaultLimit = c.MaxLimit
	}
}
