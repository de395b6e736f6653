//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agent_test
package agent

import (
	"context"

	"github.com/Skllit/GreenSource-v2/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, agentModifyEntity entities.AgentModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Agent, error)
	GetAll(ctx context.Context) ([]entities.Agent, error)
	Update(ctx context.Context, agentModifyEntity entities.AgentModify) (*entities.Agent, error)

	FindCandidates(ctx context.Context, geoCode string, weightKg float64) ([]entities.Agent, error)
	Reserve(ctx context.Context, id int64) error
	Release(ctx context.Context, id int64, wasDelivered bool, rating *float64) error
	FoldDeliveredRating(ctx context.Context, id int64, rating float64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
