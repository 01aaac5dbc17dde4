package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"time"
	"tourdesk/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Connection splits list/detail reads from writes. Transactions always run on
// Write so a booking's capacity lock sees committed rows.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  Open(cfg, "read", cfg.DB.Postgres.Read),
		Write: Open(cfg, "write", cfg.DB.Postgres.Write),
	}
}

// DSN builds a lib/pq URL for endpoint. Credentials are escaped and the
// configured DB_POSTGRES_PREFIX is prepended to the database name.
func DSN(cfg *config.Config, endpoint config.PostgresEndpoint, params url.Values) string {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}

	if endpoint.SSLMode != "" {
		query.Set("sslmode", endpoint.SSLMode)
	}

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     "/" + cfg.DB.Postgres.Prefix + endpoint.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// Open connects with retry and exits the process when every attempt fails.
func Open(cfg *config.Config, name string, endpoint config.PostgresEndpoint) *sqlx.DB {
	pg := cfg.DB.Postgres
	dsn := DSN(cfg, endpoint, nil)
	attempts := max(pg.MaxRetry, 1)

	logger := log.With().
		Str("name", name).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", pg.Prefix+endpoint.Name).
		Logger()

	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)
			db.SetConnMaxLifetime(time.Duration(pg.ConnMaxLifetime) * time.Minute)

			logger.Info().Msg("Connected to database")

			return db
		}

		lastErr = err

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		if attempt < attempts {
			time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
		}
	}

	logger.Fatal().Err(lastErr).Int("attempts", attempts).Msg("Giving up connecting to database")

	return nil
}
