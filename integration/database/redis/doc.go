// Package redis provides Redis client initialization and health checking for the
// storefront client's shared key-value persistence.
//
// This package wraps the go-redis client with URL validation, connection
// verification and exponential backoff retry for transient network issues.
//
//   - Connect: creates a client, retries the initial ping, returns a ready client
//   - Healthcheck: returns a ping-based health check function
//
// # Configuration
//
//	type Config struct {
//		ConnectionURL  string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
//		RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//		ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
//	}
//
// Both redis:// and rediss:// (TLS) URL schemes are accepted.
//
// # Usage
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	store := kvredis.New(client, kvredis.WithPrefix("storefront:"))
//
// # Errors
//
//   - ErrEmptyConnectionURL: no connection URL configured
//   - ErrFailedToParseRedisConnString: malformed URL or unsupported scheme
//   - ErrRedisNotReady: ping did not succeed within the retry budget
//   - ErrHealthcheckFailed: health check ping failed
package redis
