package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
)

const usersTable = "users"

var recordColumns = []string{
	"id",
	"names",
	"lastnames",
	"identification",
	"rol",
	"state",
	"phone",
	"email",
}

// RecordRepository stores the USER collection.
type RecordRepository struct {
	db *pgxpool.Pool
}

func NewRecordRepository(db *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) List(ctx context.Context) ([]entity.Record, error) {
	q, args, err := sq.Select(recordColumns...).
		From(usersTable).
		OrderBy("created_at", "id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var records []entity.Record

	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

func (r *RecordRepository) FindByEmail(ctx context.Context, email string) (entity.Record, error) {
	q, args, err := sq.Select(recordColumns...).
		From(usersTable).
		Where(sq.Expr("lower(email) = lower(?)", email)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.Record{}, fmt.Errorf("build query: %w", err)
	}

	record, err := scanRecord(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Record{}, entity.ErrNotFound
		}

		return entity.Record{}, err
	}

	return record, nil
}

// Add stores a new record and returns the assigned ID.
func (r *RecordRepository) Add(ctx context.Context, record entity.Record) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate id: %w", err)
	}

	now := time.Now()

	q, args, err := sq.Insert(usersTable).
		Columns(append(recordColumns, "created_at", "updated_at")...).
		Values(
			id,
			record.Names,
			record.Lastnames,
			record.Identification,
			record.Role,
			record.State,
			record.Phone,
			record.Email,
			now,
			now,
		).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.Exec(ctx, q, args...)
	if err != nil {
		return uuid.Nil, mapWriteErr(err)
	}

	return id, nil
}

// Set replaces every field of the record with the given ID.
func (r *RecordRepository) Set(ctx context.Context, id uuid.UUID, record entity.Record) error {
	q, args, err := sq.Update(usersTable).
		SetMap(map[string]any{
			"names":          record.Names,
			"lastnames":      record.Lastnames,
			"identification": record.Identification,
			"rol":            record.Role,
			"state":          record.State,
			"phone":          record.Phone,
			"email":          record.Email,
			"updated_at":     time.Now(),
		}).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return mapWriteErr(err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *RecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM users WHERE id = $1`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "email") {
		return entity.ErrEmailTaken
	}

	return err
}

func scanRecord(row pgx.Row) (entity.Record, error) {
	var (
		record entity.Record
		role   string
	)

	err := row.Scan(
		&record.ID,
		&record.Names,
		&record.Lastnames,
		&record.Identification,
		&role,
		&record.State,
		&record.Phone,
		&record.Email,
	)
	if err != nil {
		return entity.Record{}, err
	}

	record.Role = entity.Role(role)

	return record, nil
}
