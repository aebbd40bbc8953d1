package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/crickfan/fantasy_cricket/model"
	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrPlayerNotFound  error = errors.New("player not found")
	ErrTeamNotFound    error = errors.New("team not found")
	ErrContestNotFound error = errors.New("contest not found")
	ErrContestFull     error = errors.New("contest is full")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

const playerColumns = `id, name, country, team, role, credits,
	batting_avg, strike_rate, runs, wickets, economy, created, updated`

func (db *postgresDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players WHERE id=@id`, playerColumns)

	args := pgx.NamedArgs{
		"id": id,
	}
	row := db.pool.QueryRow(ctx, query, args)
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %s: %w", id, err)
	}
	return p, nil
}

// SavePlayer inserts the player or updates the catalog fields of an existing
// one. Credits are only written on insert: the upstream feed carries no
// credit values, so the stored number is authoritative once a player exists.
func (db *postgresDB) SavePlayer(ctx context.Context, p *model.Player) error {
	_, err := db.GetPlayer(ctx, p.ID)
	if err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			return db.insertPlayer(ctx, p)
		}
		return fmt.Errorf("error reading player at start of SavePlayer(): %w", err)
	}

	return db.updatePlayer(ctx, p)
}

func (db *postgresDB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players ORDER BY name`, playerColumns)

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}
	return collectPlayers(rows)
}

func (db *postgresDB) Search(ctx context.Context, q string, role model.Role, team string) ([]model.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players
		WHERE fts_player @@ websearch_to_tsquery(@q)
			AND team ILIKE @team
			AND role ILIKE @role`, playerColumns)

	teamAndRoleQuery := fmt.Sprintf(`SELECT %s FROM players
		WHERE team ILIKE @team AND role ILIKE @role`, playerColumns)

	teamQ := "%"
	if team != "" {
		teamQ = team
	}
	roleQ := "%"
	if role != model.ROLE_UNKNOWN {
		roleQ = string(role)
	}

	args := pgx.NamedArgs{
		"q":    q,
		"team": teamQ,
		"role": roleQ,
	}

	qq := query
	if q == "" {
		qq = teamAndRoleQuery
	}
	rows, err := db.pool.Query(ctx, qq, args)
	if err != nil {
		return nil, fmt.Errorf("error running search query: %w", err)
	}
	return collectPlayers(rows)
}

func (db *postgresDB) insertPlayer(ctx context.Context, p *model.Player) error {
	const query = `INSERT INTO players (
		id,
		name,
		country,
		team,
		role,
		credits,
		batting_avg,
		strike_rate,
		runs,
		wickets,
		economy,
		created
	) VALUES (
		@id,
		@name,
		@country,
		@team,
		@role,
		@credits,
		@battingAvg,
		@strikeRate,
		@runs,
		@wickets,
		@economy,
		@created
	)`

	args := namedArgsForPlayer(p)
	args["created"] = db.clock.Now().UTC()
	_, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error inserting player(%s): %w", p.ID, err)
	}
	return nil
}

func (db *postgresDB) updatePlayer(ctx context.Context, p *model.Player) error {
	const query = `UPDATE players
		SET name=@name,
			country=@country,
			team=@team,
			role=@role,
			batting_avg=@battingAvg,
			strike_rate=@strikeRate,
			runs=@runs,
			wickets=@wickets,
			economy=@economy,
			updated=@updated
		WHERE id=@id`

	args := namedArgsForPlayer(p)
	delete(args, "credits")
	args["updated"] = db.clock.Now().UTC()
	_, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error updating player (%s): %w", p.ID, err)
	}
	return nil
}

func namedArgsForPlayer(p *model.Player) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":         p.ID,
		"name":       p.Name,
		"country":    p.Country,
		"team":       p.Team,
		"role":       string(p.Role),
		"credits":    p.Credits,
		"battingAvg": p.Stats.BattingAvg,
		"strikeRate": p.Stats.StrikeRate,
		"runs":       p.Stats.Runs,
		"wickets":    p.Stats.Wickets,
		"economy":    p.Stats.Economy,
	}
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player
	var role string
	var country, team sql.NullString
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.Name,
		&country,
		&team,
		&role,
		&result.Credits,
		&result.Stats.BattingAvg,
		&result.Stats.StrikeRate,
		&result.Stats.Runs,
		&result.Stats.Wickets,
		&result.Stats.Economy,
		&created,
		&updated)

	if err != nil {
		return nil, err
	}

	result.Role = model.Role(role)
	result.Country = valueOrEmpty(country)
	result.Team = valueOrEmpty(team)
	result.Created = created.Time
	result.Updated = updated.Time

	return &result, nil
}

func collectPlayers(rows pgx.Rows) ([]model.Player, error) {
	defer rows.Close()

	results := make([]model.Player, 0, 8)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}
	return results, rows.Err()
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}
