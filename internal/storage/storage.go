package storage

import (
	"net/url"
	"strings"
)

// IsPostgresConnString reports whether the config value looks like a
// PostgreSQL connection string rather than a sqlite file path.
func IsPostgresConnString(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection URL carries
// a password. Credentials belong in the OS keyring, environment, or .pgpass,
// never in the connection string.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, set := u.User.Password()
	return set
}
