package turso

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/emiliopalmerini/srsadmin/internal/domain"
	"github.com/emiliopalmerini/srsadmin/internal/util"
)

type ExperimentRepository struct {
	db *sql.DB
}

func NewExperimentRepository(db *sql.DB) *ExperimentRepository {
	return &ExperimentRepository{db: db}
}

func (r *ExperimentRepository) Create(ctx context.Context, reg *domain.Registration) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO experiments (id, experiment_name, experiment_token, db_name, db_user, db_passwd, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		reg.ID,
		reg.Name,
		reg.Token,
		reg.DBName,
		reg.DBUser,
		reg.DBPassword,
		reg.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to create experiment: %w", err)
	}
	return nil
}

// List returns every registration in insertion order. Reads are retried
// when a remote server dropped the connection's stream.
func (r *ExperimentRepository) List(ctx context.Context) ([]*domain.Registration, error) {
	return withRetry(ctx, streamRetries, func() ([]*domain.Registration, error) {
		return r.list(ctx)
	})
}

func (r *ExperimentRepository) list(ctx context.Context) ([]*domain.Registration, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, experiment_name, experiment_token, db_name, db_user, db_passwd, created_at
		FROM experiments
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiments: %w", err)
	}
	defer rows.Close()

	var out []*domain.Registration
	for rows.Next() {
		var reg domain.Registration
		var createdAt string
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.Token, &reg.DBName, &reg.DBUser, &reg.DBPassword, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan experiment: %w", err)
		}
		reg.CreatedAt = util.ParseTimeSQLite(createdAt)
		out = append(out, &reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate experiments: %w", err)
	}
	return out, nil
}
