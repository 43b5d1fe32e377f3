package usecase

import (
	"context"

	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/port"
)

type GetAgentsUseCase struct {
	api port.RealEstateAPIPort
}

func NewGetAgentsUseCase(api port.RealEstateAPIPort) *GetAgentsUseCase {
	return &GetAgentsUseCase{api: api}
}

// Execute не кэширует агентов: список должен обновляться сразу после добавления агента.
func (uc *GetAgentsUseCase) Execute(ctx context.Context) ([]domain.Agent, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "GetAgents"})

	agents, err := uc.api.FetchAgents(ctx)
	if err != nil {
		ucLogger.Error("Failed to fetch agents", err, nil)
		return []domain.Agent{}, err
	}
	return agents, nil
}
