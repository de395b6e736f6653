//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agent_get_test
package agent_get

import (
	"context"

	"github.com/Skllit/GreenSource-v2/internal/entities"
	"github.com/Skllit/GreenSource-v2/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetAgent(ctx context.Context, id int64) (*entities.Agent, error)
}
