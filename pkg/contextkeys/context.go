package contextkeys

// Custom key type so values set by our middleware cannot collide with
// values set by third-party packages.
type contextKey string

// DBContextKey is the key under which the per-request *gorm.DB handle
// (the shared pool, or an injected transaction in tests) is stored.
const DBContextKey = contextKey("db")
