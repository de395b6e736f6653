package agent

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/Skllit/GreenSource-v2/internal/entities"
	"github.com/Skllit/GreenSource-v2/internal/repository"
	"github.com/Skllit/GreenSource-v2/internal/service/agent"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const agentColumns = `id, name, phone, email, vehicles, geo_codes, is_available,
		rating, delivered_count, active_order_count, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, agentModifyEntity entities.AgentModify) (int64, error) {
	agentModifyModel, err := FromDomainModify(&agentModifyEntity)
	if err != nil {
		return 0, fmt.Errorf("unexpected agent repository create error: %w", err)
	}

	query := `INSERT INTO delivery_agents (name, phone, email, vehicles, geo_codes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err = r.querier.QueryRow(
		ctx,
		query,
		agentModifyModel.Name,
		agentModifyModel.Phone,
		agentModifyModel.Email,
		agentModifyModel.Vehicles,
		agentModifyModel.GeoCodes,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, agent.ErrConflict
		}
		return 0, fmt.Errorf("unexpected agent repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, agentModifyEntity entities.AgentModify) (*entities.Agent, error) {
	agentModifyModel, err := FromDomainModify(&agentModifyEntity)
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository update error: %w", err)
	}

	builder := qb.
		Update("delivery_agents")

	// опциональные поля
	if agentModifyModel.Name != nil {
		builder = builder.Set("name", agentModifyModel.Name)
	}
	if agentModifyModel.Phone != nil {
		builder = builder.Set("phone", agentModifyModel.Phone)
	}
	if agentModifyModel.Email != nil {
		builder = builder.Set("email", agentModifyModel.Email)
	}
	if agentModifyModel.Vehicles != nil {
		builder = builder.Set("vehicles", agentModifyModel.Vehicles)
	}
	if agentModifyModel.GeoCodes != nil {
		builder = builder.Set("geo_codes", agentModifyModel.GeoCodes)
	}
	if agentModifyModel.IsAvailable != nil {
		builder = builder.Set("is_available", agentModifyModel.IsAvailable)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": agentModifyModel.ID}).
		Suffix("RETURNING " + agentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository update error: %w", err)
	}

	var agentModel AgentDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&agentModel.ID,
			&agentModel.Name,
			&agentModel.Phone,
			&agentModel.Email,
			&agentModel.Vehicles,
			&agentModel.GeoCodes,
			&agentModel.IsAvailable,
			&agentModel.Rating,
			&agentModel.DeliveredCount,
			&agentModel.ActiveOrderCount,
			&agentModel.CreatedAt,
			&agentModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, agent.ErrAgentNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, agent.ErrConflict
		}

		return nil, fmt.Errorf("unexpected agent repository update error: %w", err)
	}

	return ToDomain(&agentModel)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Agent, error) {
	query := `SELECT ` + agentColumns + `
		FROM delivery_agents
		WHERE id = $1`

	var agentModel AgentDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&agentModel.ID,
			&agentModel.Name,
			&agentModel.Phone,
			&agentModel.Email,
			&agentModel.Vehicles,
			&agentModel.GeoCodes,
			&agentModel.IsAvailable,
			&agentModel.Rating,
			&agentModel.DeliveredCount,
			&agentModel.ActiveOrderCount,
			&agentModel.CreatedAt,
			&agentModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, agent.ErrAgentNotFound
		}

		return nil, fmt.Errorf("unexpected agent repository getbyid error: %w", err)
	}

	return ToDomain(&agentModel)
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Agent, error) {
	query := `SELECT ` + agentColumns + `
	FROM delivery_agents
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository getall error: %w", err)
	}
	defer rows.Close()

	agentModels := make([]AgentDB, 0, 8)
	for rows.Next() {
		var agentModel AgentDB
		err := rows.Scan(
			&agentModel.ID,
			&agentModel.Name,
			&agentModel.Phone,
			&agentModel.Email,
			&agentModel.Vehicles,
			&agentModel.GeoCodes,
			&agentModel.IsAvailable,
			&agentModel.Rating,
			&agentModel.DeliveredCount,
			&agentModel.ActiveOrderCount,
			&agentModel.CreatedAt,
			&agentModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected agent repository getall error: %w", err)
		}
		agentModels = append(agentModels, agentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository getall error: %w", err)
	}

	return ToDomainList(agentModels)
}

// FindCandidates: доступные агенты, покрывающие гео-код выдачи и имеющие
// в автопарке хотя бы один транспорт с достаточной грузоподъемностью.
func (r *Repository) FindCandidates(ctx context.Context, geoCode string, weightKg float64) ([]entities.Agent, error) {
	query := `SELECT ` + agentColumns + `
	FROM delivery_agents
	WHERE is_available = TRUE
	  AND $1 = ANY(geo_codes)
	  AND EXISTS (
	      SELECT 1
	      FROM jsonb_array_elements(vehicles) AS v
	      WHERE (v->>'capacity_kg')::float8 >= $2
	  )
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query, geoCode, weightKg)
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository findcandidates error: %w", err)
	}
	defer rows.Close()

	agentModels := make([]AgentDB, 0, 8)
	for rows.Next() {
		var agentModel AgentDB
		err := rows.Scan(
			&agentModel.ID,
			&agentModel.Name,
			&agentModel.Phone,
			&agentModel.Email,
			&agentModel.Vehicles,
			&agentModel.GeoCodes,
			&agentModel.IsAvailable,
			&agentModel.Rating,
			&agentModel.DeliveredCount,
			&agentModel.ActiveOrderCount,
			&agentModel.CreatedAt,
			&agentModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected agent repository findcandidates error: %w", err)
		}
		agentModels = append(agentModels, agentModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected agent repository findcandidates error: %w", err)
	}

	return ToDomainList(agentModels)
}

func (r *Repository) Reserve(ctx context.Context, id int64) error {
	query := `
		UPDATE delivery_agents
		SET active_order_count = active_order_count + 1,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected agent repository reserve error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return agent.ErrAgentNotFound
	}

	return nil
}

// Release атомарно снимает активную доставку одним UPDATE.
// active_order_count ограничен нулем снизу; при wasDelivered оценка, если
// передана, подмешивается по старым значениям колонок до инкремента
// delivered_count.
func (r *Repository) Release(ctx context.Context, id int64, wasDelivered bool, rating *float64) error {
	query := `
		UPDATE delivery_agents
		SET active_order_count = GREATEST(active_order_count - 1, 0),
		    updated_at = NOW()
		WHERE id = $1
	`
	args := []interface{}{id}

	switch {
	case wasDelivered && rating != nil:
		query = `
		UPDATE delivery_agents
		SET active_order_count = GREATEST(active_order_count - 1, 0),
		    rating = (rating * delivered_count + $2) / (delivered_count + 1),
		    delivered_count = delivered_count + 1,
		    updated_at = NOW()
		WHERE id = $1
	`
		args = append(args, *rating)
	case wasDelivered:
		query = `
		UPDATE delivery_agents
		SET active_order_count = GREATEST(active_order_count - 1, 0),
		    delivered_count = delivered_count + 1,
		    updated_at = NOW()
		WHERE id = $1
	`
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected agent repository release error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return agent.ErrAgentNotFound
	}

	return nil
}

// FoldDeliveredRating подмешивает оценку, пришедшую после завершения
// доставки: delivered_count к этому моменту уже увеличен, поэтому
// средняя восстанавливается по n-1 прежним оценкам.
func (r *Repository) FoldDeliveredRating(ctx context.Context, id int64, rating float64) error {
	query := `
		UPDATE delivery_agents
		SET rating = (rating * GREATEST(delivered_count - 1, 0) + $2) / GREATEST(delivered_count, 1),
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id, rating)
	if err != nil {
		return fmt.Errorf("unexpected agent repository fold rating error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return agent.ErrAgentNotFound
	}

	return nil
}
