package usecase

import (
	"context"

	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/forms"
	"real-estate-manager/internal/core/port"

	"github.com/google/uuid"
)

type CreateAgentUseCase struct {
	api port.RealEstateAPIPort
	formSubmitter
}

func NewCreateAgentUseCase(api port.RealEstateAPIPort, drafts port.DraftStorePort, events port.DomainEventsPort) *CreateAgentUseCase {
	return &CreateAgentUseCase{api: api, formSubmitter: formSubmitter{drafts: drafts, events: events}}
}

// Execute создает агента. Без аватара форма отклоняется до сетевого запроса.
func (uc *CreateAgentUseCase) Execute(ctx context.Context, sessionID uuid.UUID, form *forms.Form) (int, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "CreateAgent",
		"session_id": sessionID.String(),
	})
	ucLogger.Info("Use case started", nil)

	id, err := uc.submit(ctx, ucLogger, sessionID, domain.FormAgent, form, uc.api.CreateAgent, domain.EventAgentCreated)
	if err != nil {
		return 0, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"agent_id": id})
	return id, nil
}
