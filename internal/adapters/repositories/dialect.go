package repositories

// Dialect selects the SQL flavor of the connected database.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// DialectForDriver maps a database/sql driver name to its Dialect.
func DialectForDriver(driver string) Dialect {
	if driver == "pgx" {
		return Postgres
	}
	return SQLite
}

func (d Dialect) upsertStopQuery() string {
	if d == Postgres {
		return `
	INSERT INTO stops (stop_id, name, lat, lon, service_minutes)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (stop_id) DO UPDATE
	SET name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		service_minutes = EXCLUDED.service_minutes;
	`
	}

	return `
	INSERT OR REPLACE INTO stops (
		stop_id,
		name,
		lat,
		lon,
		service_minutes
	)
	VALUES (?, ?, ?, ?, ?);
	`
}

func (d Dialect) String() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite"
}
