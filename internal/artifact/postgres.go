package artifact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaiso/Conveyor/internal/domain"
)

// PostgresTracker — трекер артефактов поверх PostgreSQL.
//
// Схема:
//
//	CREATE TABLE artifacts (
//	    name       TEXT NOT NULL,
//	    version    INT  NOT NULL,
//	    uri        TEXT NOT NULL DEFAULT '',
//	    created_at TIMESTAMPTZ NOT NULL,
//	    PRIMARY KEY (name, version)
//	);
//	CREATE TABLE artifact_labels (
//	    name    TEXT NOT NULL,
//	    label   TEXT NOT NULL,
//	    version INT  NOT NULL,
//	    PRIMARY KEY (name, label)
//	);
type PostgresTracker struct {
	pool *pgxpool.Pool
}

// NewPostgresTracker создаёт трекер поверх пула соединений.
func NewPostgresTracker(pool *pgxpool.Pool) *PostgresTracker {
	return &PostgresTracker{pool: pool}
}

// Resolve возвращает handle по имени и квалификатору.
func (t *PostgresTracker) Resolve(ctx context.Context, name, qualifier string) (domain.ArtifactHandle, error) {
	if qualifier == "" {
		qualifier = domain.QualifierLatest
	}

	if qualifier == domain.QualifierLatest {
		query := `
			SELECT name, version, uri, created_at
			FROM artifacts
			WHERE name = $1
			ORDER BY version DESC
			LIMIT 1
		`
		return t.scanHandle(ctx, name, qualifier, t.pool.QueryRow(ctx, query, name))
	}

	if version, isToken, err := parseVersionToken(qualifier); isToken {
		if err != nil {
			return domain.ArtifactHandle{}, err
		}
		query := `
			SELECT name, version, uri, created_at
			FROM artifacts
			WHERE name = $1 AND version = $2
		`
		return t.scanHandle(ctx, name, qualifier, t.pool.QueryRow(ctx, query, name, version))
	}

	// Именованная метка разрешается через artifact_labels.
	query := `
		SELECT a.name, a.version, a.uri, a.created_at
		FROM artifacts a
		JOIN artifact_labels l ON l.name = a.name AND l.version = a.version
		WHERE a.name = $1 AND l.label = $2
	`
	return t.scanHandle(ctx, name, qualifier, t.pool.QueryRow(ctx, query, name, qualifier))
}

// Register регистрирует следующую версию артефакта.
func (t *PostgresTracker) Register(ctx context.Context, name, uri string) (domain.ArtifactHandle, error) {
	query := `
		INSERT INTO artifacts (name, version, uri, created_at)
		SELECT $1, COALESCE(MAX(version), 0) + 1, $2, $3
		FROM artifacts
		WHERE name = $1
		RETURNING version
	`
	createdAt := time.Now()

	var version int
	if err := t.pool.QueryRow(ctx, query, name, uri, createdAt).Scan(&version); err != nil {
		return domain.ArtifactHandle{}, fmt.Errorf("register artifact %s: %w", name, err)
	}

	return domain.ArtifactHandle{
		Name:      name,
		Version:   version,
		URI:       uri,
		CreatedAt: createdAt,
	}, nil
}

// Label назначает метку версии артефакта.
func (t *PostgresTracker) Label(ctx context.Context, name, label string, version int) error {
	query := `
		INSERT INTO artifact_labels (name, label, version)
		VALUES ($1, $2, $3)
		ON CONFLICT (name, label) DO UPDATE SET version = EXCLUDED.version
	`
	if _, err := t.pool.Exec(ctx, query, name, label, version); err != nil {
		return fmt.Errorf("label artifact %s:%s: %w", name, label, err)
	}
	return nil
}

// scanHandle сканирует одну строку результата в handle.
func (t *PostgresTracker) scanHandle(_ context.Context, name, qualifier string, row pgx.Row) (domain.ArtifactHandle, error) {
	var handle domain.ArtifactHandle
	err := row.Scan(&handle.Name, &handle.Version, &handle.URI, &handle.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ArtifactHandle{}, fmt.Errorf("%w: %s:%s", ErrArtifactNotFound, name, qualifier)
	}
	if err != nil {
		return domain.ArtifactHandle{}, fmt.Errorf("resolve artifact %s:%s: %w", name, qualifier, err)
	}
	return handle, nil
}
