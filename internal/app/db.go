package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/football-scouting/internal/config"
)

const (
	dbPingTimeout = 5 * time.Second
	// maxTraceQueryRunes caps the statement text stored on a span.
	maxTraceQueryRunes = 512

	preparedBinaryParam = "disable_prepared_binary_result"
)

// OpenDB connects to Postgres with query tracing. Long statements are
// collapsed and truncated before they reach span attributes.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := scoutingDSN(cfg.DBURL, cfg.DBDisablePreparedBinary)
	if dsn == "" {
		return nil, fmt.Errorf("DB_URL is required")
	}

	attrs := []attribute.KeyValue{attribute.String("db.system", "postgresql")}
	if name := databaseName(dsn); name != "" {
		attrs = append(attrs, attribute.String("db.name", name))
	}

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attrs...),
		otelsql.WithQueryFormatter(traceQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// scoutingDSN trims DB_URL and, for poolers that cannot return binary
// prepared results, asks the driver for text results unless the URL already
// says otherwise. Key/value DSNs are returned as given.
func scoutingDSN(raw string, disablePreparedBinary bool) string {
	dsn := strings.TrimSpace(raw)
	if dsn == "" || !disablePreparedBinary {
		return dsn
	}

	u, err := url.Parse(dsn)
	if err != nil || u.Scheme == "" {
		return dsn
	}
	q := u.Query()
	if q.Has(preparedBinaryParam) {
		return dsn
	}
	q.Set(preparedBinaryParam, "yes")
	u.RawQuery = q.Encode()
	return u.String()
}

// databaseName reads the database from a postgres:// URL or from the
// dbname key of a key/value DSN.
func databaseName(dsn string) string {
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" {
		if name := strings.Trim(u.Path, "/ "); name != "" {
			return name
		}
	}
	for _, field := range strings.Fields(dsn) {
		if name, ok := strings.CutPrefix(field, "dbname="); ok {
			if name = strings.Trim(name, `"'`); name != "" {
				return name
			}
		}
	}
	return ""
}

func traceQuery(query string) string {
	collapsed := strings.Join(strings.Fields(query), " ")
	if runes := []rune(collapsed); len(runes) > maxTraceQueryRunes {
		return string(runes[:maxTraceQueryRunes]) + "..."
	}
	return collapsed
}
