// Package redis connects to a Redis server and stores rget settings and
// named definitions in it.
//
// The package wraps the go-redis client and adds:
//
//   - Connect, which pings the server and retries according to Config.
//   - Storage, a sectioned key/value store compatible with store.Store:
//     every section is a hash under "<prefix>section:<name>" and the set
//     "<prefix>sections" indexes the section names.
//
// Config fields can be populated from environment variables through
// github.com/caarlos0/env (RGET_REDIS_URL, RGET_REDIS_PREFIX, ...).
//
// # Usage
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	st := redis.NewStorage(client, cfg.KeyPrefix)
//	defer st.Close()
//
//	defs := store.NewDefinitions(st)
//
// Unlike the file store, a fresh redis store has no Settings section; the
// engine then falls back to the default length bounds.
//
// # Errors
//
// Connection failures are reported as ErrRedisNotReady or
// ErrInvalidConnectionURL joined with the go-redis error, so both
// can be checked with errors.Is.
package redis
