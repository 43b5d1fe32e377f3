package session_storage

import (
	"context"
	"encoding/json"
	"fmt"

	"real-estate-manager/internal/constants"
	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/contracts"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/port"

	"github.com/google/uuid"
)

// FilterCriteriaStore хранит критерии фильтрации под ключом "filters".
type FilterCriteriaStore struct {
	storage port.BrowserStoragePort
}

func NewFilterCriteriaStore(storage port.BrowserStoragePort) *FilterCriteriaStore {
	return &FilterCriteriaStore{storage: storage}
}

// Load читает критерии сессии. Значение, не прошедшее проверку схемы,
// отбрасывается с предупреждением: вместо него возвращаются пустые критерии.
func (s *FilterCriteriaStore) Load(ctx context.Context, sessionID uuid.UUID) (domain.FilterCriteria, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "FilterCriteriaStore",
		"method":    "Load",
	})
	empty := domain.FilterCriteria{}.Cleared()

	raw, found, err := s.storage.GetItem(ctx, sessionID, constants.FilterCriteriaKey)
	if err != nil {
		return empty, fmt.Errorf("FilterCriteriaStore: failed to read criteria: %w", err)
	}
	if !found {
		return empty, nil
	}

	if err := contracts.ValidateStored(contracts.FilterCriteriaV1, []byte(raw)); err != nil {
		logger.Warn("Stored filter criteria have incompatible shape, ignoring", port.Fields{"error": err.Error()})
		return empty, nil
	}

	var dto filterCriteriaDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		logger.Warn("Failed to decode stored filter criteria, ignoring", port.Fields{"error": err.Error()})
		return empty, nil
	}
	return dto.toDomain(), nil
}

// Save сериализует критерии целиком.
func (s *FilterCriteriaStore) Save(ctx context.Context, sessionID uuid.UUID, criteria domain.FilterCriteria) error {
	data, err := json.Marshal(filterCriteriaToDTO(criteria))
	if err != nil {
		return fmt.Errorf("FilterCriteriaStore: failed to marshal criteria: %w", err)
	}
	if err := s.storage.SetItem(ctx, sessionID, constants.FilterCriteriaKey, string(data)); err != nil {
		return fmt.Errorf("FilterCriteriaStore: failed to save criteria: %w", err)
	}
	return nil
}

func (s *FilterCriteriaStore) Clear(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.storage.RemoveItem(ctx, sessionID, constants.FilterCriteriaKey); err != nil {
		return fmt.Errorf("FilterCriteriaStore: failed to clear criteria: %w", err)
	}
	return nil
}
