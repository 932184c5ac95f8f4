package database

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/deppfellow/course-apis/internal/config"
)

// DSN builds the postgres:// URL for cfg. The password is escaped so
// characters such as '@' or ':' cannot break the URL.
func DSN(cfg config.DatabaseConfig) string {
	hostPort := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.User,
		url.QueryEscape(cfg.Password),
		hostPort,
		cfg.Name,
		cfg.SSLMode,
	)
}
