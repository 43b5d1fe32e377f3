package usecase

import (
	"context"

	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/port"

	"github.com/google/uuid"
)

type FilterCriteriaUseCase struct {
	store port.FilterCriteriaStorePort
}

func NewFilterCriteriaUseCase(store port.FilterCriteriaStorePort) *FilterCriteriaUseCase {
	return &FilterCriteriaUseCase{store: store}
}

func (uc *FilterCriteriaUseCase) logger(ctx context.Context, method string, sessionID uuid.UUID) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "FilterCriteria",
		"method":     method,
		"session_id": sessionID.String(),
	})
}

func (uc *FilterCriteriaUseCase) Get(ctx context.Context, sessionID uuid.UUID) (domain.FilterCriteria, error) {
	criteria, err := uc.store.Load(ctx, sessionID)
	if err != nil {
		uc.logger(ctx, "Get", sessionID).Error("Failed to load filter criteria", err, nil)
		return domain.FilterCriteria{}.Cleared(), err
	}
	return criteria, nil
}

// Replace проверяет и сохраняет критерии целиком.
func (uc *FilterCriteriaUseCase) Replace(ctx context.Context, sessionID uuid.UUID, criteria domain.FilterCriteria) (domain.FilterCriteria, error) {
	logger := uc.logger(ctx, "Replace", sessionID)

	criteria = criteria.Normalized()
	if err := criteria.Validate(); err != nil {
		logger.Warn("Rejected filter criteria", port.Fields{"error": err.Error()})
		return domain.FilterCriteria{}, err
	}
	if err := uc.store.Save(ctx, sessionID, criteria); err != nil {
		logger.Error("Failed to save filter criteria", err, nil)
		return domain.FilterCriteria{}, err
	}
	logger.Debug("Filter criteria saved", port.Fields{"active": criteria.HasActive()})
	return criteria, nil
}

// Update применяет изменение (снятие чипа, переключение региона) к сохраненным критериям.
func (uc *FilterCriteriaUseCase) Update(ctx context.Context, sessionID uuid.UUID, change func(domain.FilterCriteria) domain.FilterCriteria) (domain.FilterCriteria, error) {
	current, err := uc.Get(ctx, sessionID)
	if err != nil {
		return domain.FilterCriteria{}, err
	}
	return uc.Replace(ctx, sessionID, change(current))
}

// Clear - "очистить все". Пустые критерии тоже сохраняются, как и любое другое изменение.
func (uc *FilterCriteriaUseCase) Clear(ctx context.Context, sessionID uuid.UUID) (domain.FilterCriteria, error) {
	return uc.Replace(ctx, sessionID, domain.FilterCriteria{}.Cleared())
}
