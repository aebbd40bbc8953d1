package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/crickfan/fantasy_cricket/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// CreateTeam writes the team row and every membership row in one
// transaction, so a failure part way through leaves nothing behind.
func (db *postgresDB) CreateTeam(ctx context.Context, t *model.Team) error {
	const insertTeam = `INSERT INTO teams (
		name,
		match_id,
		captain_id,
		vice_captain_id,
		total_credits,
		created
	) VALUES (
		@name,
		@matchID,
		@captainID,
		@viceCaptainID,
		@totalCredits,
		@created
	) RETURNING id`

	const insertMember = `INSERT INTO team_players(team_id, player_id) VALUES (@teamID, @playerID)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{
		"name":          t.Name,
		"matchID":       t.MatchID,
		"captainID":     t.CaptainID,
		"viceCaptainID": t.ViceCaptainID,
		"totalCredits":  t.TotalCredits,
		"created":       db.clock.Now().UTC(),
	}
	var id int32
	if err := tx.QueryRow(ctx, insertTeam, args).Scan(&id); err != nil {
		return fmt.Errorf("error inserting team: %w", err)
	}

	for _, p := range t.Players {
		args := pgx.NamedArgs{
			"teamID":   id,
			"playerID": p.ID,
		}
		if _, err := tx.Exec(ctx, insertMember, args); err != nil {
			return fmt.Errorf("error inserting team player (%s): %w", p.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing team transaction: %w", err)
	}

	t.ID = id
	return nil
}

func (db *postgresDB) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	const query = `SELECT id, name, match_id, captain_id, vice_captain_id, total_credits, created
		FROM teams WHERE id=@id`

	args := pgx.NamedArgs{
		"id": id,
	}
	t, err := scanTeam(db.pool.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error scanning team %d: %w", id, err)
	}

	players, err := db.getTeamPlayers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading players for team %d: %w", id, err)
	}
	t.Players = players

	return t, nil
}

func (db *postgresDB) ListTeams(ctx context.Context) ([]model.Team, error) {
	const query = `SELECT id, name, match_id, captain_id, vice_captain_id, total_credits, created
		FROM teams ORDER BY created DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing teams: %w", err)
	}
	defer rows.Close()

	results := make([]model.Team, 0, 8)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *t)
	}
	return results, rows.Err()
}

func (db *postgresDB) getTeamPlayers(ctx context.Context, teamID int32) ([]model.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM players p
		JOIN team_players tp ON tp.player_id = p.id
		WHERE tp.team_id=@teamID
		ORDER BY p.name`, prefixedPlayerColumns("p"))

	args := pgx.NamedArgs{
		"teamID": teamID,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return collectPlayers(rows)
}

func prefixedPlayerColumns(alias string) string {
	return fmt.Sprintf(`%[1]s.id, %[1]s.name, %[1]s.country, %[1]s.team, %[1]s.role, %[1]s.credits,
		%[1]s.batting_avg, %[1]s.strike_rate, %[1]s.runs, %[1]s.wickets, %[1]s.economy,
		%[1]s.created, %[1]s.updated`, alias)
}

func scanTeam(row pgx.Row) (*model.Team, error) {
	var result model.Team
	var created pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.Name,
		&result.MatchID,
		&result.CaptainID,
		&result.ViceCaptainID,
		&result.TotalCredits,
		&created)
	if err != nil {
		return nil, err
	}
	result.Created = created.Time
	return &result, nil
}
