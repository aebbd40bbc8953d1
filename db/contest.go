package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/crickfan/fantasy_cricket/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const contestColumns = `c.id, c.name, c.match_id, c.entry_fee, c.prize_pool, c.max_entries, c.created,
	(SELECT count(*) FROM contest_entries e WHERE e.contest_id = c.id) AS entries`

func (db *postgresDB) ListContests(ctx context.Context) ([]model.Contest, error) {
	query := fmt.Sprintf(`SELECT %s FROM contests c ORDER BY c.created DESC`, contestColumns)

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing contests: %w", err)
	}
	defer rows.Close()

	results := make([]model.Contest, 0, 8)
	for rows.Next() {
		c, err := scanContest(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *c)
	}
	return results, rows.Err()
}

func (db *postgresDB) GetContest(ctx context.Context, id int32) (*model.Contest, error) {
	query := fmt.Sprintf(`SELECT %s FROM contests c WHERE c.id=@id`, contestColumns)

	args := pgx.NamedArgs{
		"id": id,
	}
	c, err := scanContest(db.pool.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContestNotFound
		}
		return nil, fmt.Errorf("error scanning contest %d: %w", id, err)
	}
	return c, nil
}

// AddContestEntry inserts the entry only while the contest still has room.
// The contest row is locked for the duration of the transaction so two
// racing entries cannot both squeeze into the last slot.
func (db *postgresDB) AddContestEntry(ctx context.Context, contestID, teamID int32) error {
	const lockContest = `SELECT max_entries FROM contests WHERE id=@contestID FOR UPDATE`
	const countEntries = `SELECT count(*) FROM contest_entries WHERE contest_id=@contestID`
	const insertEntry = `INSERT INTO contest_entries (contest_id, team_id, created)
		VALUES (@contestID, @teamID, @created)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{
		"contestID": contestID,
	}
	var maxEntries int
	if err := tx.QueryRow(ctx, lockContest, args).Scan(&maxEntries); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrContestNotFound
		}
		return fmt.Errorf("error locking contest %d: %w", contestID, err)
	}

	var entries int
	if err := tx.QueryRow(ctx, countEntries, args).Scan(&entries); err != nil {
		return fmt.Errorf("error counting contest entries: %w", err)
	}
	if entries >= maxEntries {
		return ErrContestFull
	}

	args = pgx.NamedArgs{
		"contestID": contestID,
		"teamID":    teamID,
		"created":   db.clock.Now().UTC(),
	}
	if _, err := tx.Exec(ctx, insertEntry, args); err != nil {
		return fmt.Errorf("error adding contest entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing contest entry transaction: %w", err)
	}
	return nil
}

func scanContest(row pgx.Row) (*model.Contest, error) {
	var result model.Contest
	var created pgtype.Timestamptz
	var entries int64
	err := row.Scan(
		&result.ID,
		&result.Name,
		&result.MatchID,
		&result.EntryFee,
		&result.PrizePool,
		&result.MaxEntries,
		&created,
		&entries)
	if err != nil {
		return nil, err
	}
	result.Created = created.Time
	result.Entries = int(entries)
	return &result, nil
}
