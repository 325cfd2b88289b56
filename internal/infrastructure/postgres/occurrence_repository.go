package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Litigios-api/internal/domain"
	"github.com/jhoicas/Litigios-api/internal/domain/entity"
	"github.com/jhoicas/Litigios-api/internal/domain/repository"
)

var _ repository.OccurrenceRepository = (*OccurrenceRepo)(nil)

// OccurrenceRepo implementación de OccurrenceRepository sobre PostgreSQL.
type OccurrenceRepo struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewOccurrenceRepository construye el adaptador.
func NewOccurrenceRepository(pool *pgxpool.Pool) *OccurrenceRepo {
	return &OccurrenceRepo{pool: pool, tx: NewTxRunner(pool)}
}

const selectColumns = `
	id, title, description, product_code, product_name, store, reported_by, reported_by_name,
	status, created_at, updated_at, cd_comments, cd_decision_by, cd_decision_by_name, ai_analysis,
	claimed_value, details`

const insertSQL = `
	INSERT INTO occurrences (id, title, description, product_code, product_name, store, reported_by, reported_by_name,
		status, created_at, updated_at, cd_comments, cd_decision_by, cd_decision_by_name, ai_analysis, claimed_value, details)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

// Los campos de escritura única (store, reported_by, created_at) no se tocan al actualizar.
const upsertSQL = insertSQL + `
	ON CONFLICT (id) DO UPDATE SET
		title = EXCLUDED.title, description = EXCLUDED.description,
		product_code = EXCLUDED.product_code, product_name = EXCLUDED.product_name,
		reported_by_name = EXCLUDED.reported_by_name, status = EXCLUDED.status, updated_at = EXCLUDED.updated_at,
		cd_comments = EXCLUDED.cd_comments, cd_decision_by = EXCLUDED.cd_decision_by,
		cd_decision_by_name = EXCLUDED.cd_decision_by_name, ai_analysis = EXCLUDED.ai_analysis,
		claimed_value = EXCLUDED.claimed_value, details = EXCLUDED.details`

const resolveSQL = `
	UPDATE occurrences SET
		status = $2, updated_at = $3, cd_comments = $4, cd_decision_by = $5, cd_decision_by_name = $6,
		title = $7, description = $8, ai_analysis = $9, claimed_value = $10, details = $11
	WHERE id = $1 AND status IN ('OPEN', 'IN_ANALYSIS')`

// errAlreadySeeded la tabla ya tiene datos o otro proceso insertó primero.
var errAlreadySeeded = errors.New("colección ya sembrada")

// Seed inserta occs dentro de una transacción solo si la tabla está vacía.
func (r *OccurrenceRepo) Seed(ctx context.Context, occs []*entity.Occurrence) (bool, error) {
	err := r.tx.Run(ctx, func(q Querier) error {
		return seedRows(ctx, q, occs)
	})
	if errors.Is(err, errAlreadySeeded) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// seedRows corre dentro de la tx de Seed. Cualquier error distinto de nil hace rollback,
// incluido errAlreadySeeded: tras una clave duplicada PostgreSQL aborta la tx.
func seedRows(ctx context.Context, q Querier, occs []*entity.Occurrence) error {
	// Dos réplicas arrancando a la vez: solo una siembra.
	if _, err := q.Exec(ctx, `LOCK TABLE occurrences IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return fmt.Errorf("%w: lock occurrences: %v", domain.ErrStorage, err)
	}
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM occurrences)`).Scan(&exists); err != nil {
		return fmt.Errorf("%w: count occurrences: %v", domain.ErrStorage, err)
	}
	if exists {
		return errAlreadySeeded
	}
	for _, o := range occs {
		args, err := occurrenceArgs(o)
		if err != nil {
			return err
		}
		if _, err := q.Exec(ctx, insertSQL, args...); err != nil {
			if isUniqueViolation(err) {
				return errAlreadySeeded
			}
			return fmt.Errorf("%w: insert seed %s: %v", domain.ErrStorage, o.ID, err)
		}
	}
	return nil
}

// List devuelve todas las ocorrências en orden de inserción.
func (r *OccurrenceRepo) List(ctx context.Context) ([]*entity.Occurrence, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+selectColumns+` FROM occurrences ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("%w: list occurrences: %v", domain.ErrStorage, err)
	}
	defer rows.Close()

	out := make([]*entity.Occurrence, 0)
	for rows.Next() {
		o, err := scanOccurrence(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list occurrences: %v", domain.ErrStorage, err)
	}
	return out, nil
}

// GetByID (nil, nil) si no existe.
func (r *OccurrenceRepo) GetByID(ctx context.Context, id string) (*entity.Occurrence, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+selectColumns+` FROM occurrences WHERE id = $1`, id)
	o, err := scanOccurrence(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return o, nil
}

// Upsert INSERT ... ON CONFLICT (id) DO UPDATE.
func (r *OccurrenceRepo) Upsert(ctx context.Context, o *entity.Occurrence) error {
	args, err := occurrenceArgs(o)
	if err != nil {
		return err
	}
	if _, err := r.pool.Exec(ctx, upsertSQL, args...); err != nil {
		return fmt.Errorf("%w: upsert occurrence %s: %v", domain.ErrStorage, o.ID, err)
	}
	return nil
}

// ReplaceIfUnresolved UPDATE condicionado al estado guardado.
func (r *OccurrenceRepo) ReplaceIfUnresolved(ctx context.Context, o *entity.Occurrence) (bool, error) {
	details, err := marshalDetails(o)
	if err != nil {
		return false, err
	}
	cmd, err := r.pool.Exec(ctx, resolveSQL,
		o.ID, string(o.Status), o.UpdatedAt, o.CDComments, o.CDDecisionBy, o.CDDecisionByName,
		o.Title, o.Description, o.AIAnalysis, o.ClaimedValue, details,
	)
	if err != nil {
		return false, fmt.Errorf("%w: resolve occurrence %s: %v", domain.ErrStorage, o.ID, err)
	}
	return cmd.RowsAffected() == 1, nil
}

func marshalDetails(o *entity.Occurrence) ([]byte, error) {
	details, err := json.Marshal(o.OccurrenceDetails)
	if err != nil {
		return nil, fmt.Errorf("%w: serializar details %s: %v", domain.ErrStorage, o.ID, err)
	}
	return details, nil
}

func occurrenceArgs(o *entity.Occurrence) ([]any, error) {
	details, err := marshalDetails(o)
	if err != nil {
		return nil, err
	}
	return []any{
		o.ID, o.Title, o.Description, o.ProductCode, o.ProductName, string(o.Store), o.ReportedBy, o.ReportedByName,
		string(o.Status), o.CreatedAt, o.UpdatedAt, o.CDComments, o.CDDecisionBy, o.CDDecisionByName, o.AIAnalysis,
		o.ClaimedValue, details,
	}, nil
}

func scanOccurrence(row pgx.Row) (*entity.Occurrence, error) {
	var (
		o            entity.Occurrence
		store        string
		status       string
		claimedValue *decimal.Decimal
		details      []byte
	)
	err := row.Scan(
		&o.ID, &o.Title, &o.Description, &o.ProductCode, &o.ProductName, &store, &o.ReportedBy, &o.ReportedByName,
		&status, &o.CreatedAt, &o.UpdatedAt, &o.CDComments, &o.CDDecisionBy, &o.CDDecisionByName, &o.AIAnalysis,
		&claimedValue, &details,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: scan occurrence: %v", domain.ErrStorage, err)
	}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &o.OccurrenceDetails); err != nil {
			return nil, fmt.Errorf("%w: details corruptos en %s: %v", domain.ErrStorage, o.ID, err)
		}
	}
	o.Store = entity.Location(store)
	o.Status = entity.Status(status)
	o.ClaimedValue = claimedValue
	o.CreatedAt = o.CreatedAt.UTC()
	o.UpdatedAt = o.UpdatedAt.UTC()
	return &o, nil
}
