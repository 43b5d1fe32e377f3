package usecase

import (
	"context"

	"real-estate-manager/internal/contextkeys"
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/port"

	"github.com/google/uuid"
)

type ListListingsUseCase struct {
	api      port.RealEstateAPIPort
	criteria port.FilterCriteriaStorePort
}

func NewListListingsUseCase(api port.RealEstateAPIPort, criteria port.FilterCriteriaStorePort) *ListListingsUseCase {
	return &ListListingsUseCase{api: api, criteria: criteria}
}

// Execute загружает полный набор листингов и применяет сохраненные критерии сессии.
// Ошибки чтения не возвращаются: страница деградирует до пустого списка с Loaded=false.
func (uc *ListListingsUseCase) Execute(ctx context.Context, sessionID uuid.UUID) (*domain.ListingsView, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "ListListings",
		"session_id": sessionID.String(),
	})
	ucLogger.Info("Use case started", nil)

	criteria, err := uc.criteria.Load(ctx, sessionID)
	if err != nil {
		ucLogger.Error("Failed to load filter criteria, using none", err, nil)
		criteria = domain.FilterCriteria{}.Cleared()
	}

	collection := domain.NewListingCollection()
	collection.SetCriteria(criteria)

	listings, err := uc.api.FetchListings(ctx)
	if err != nil {
		ucLogger.Error("Failed to fetch listings, falling back to empty collection", err, nil)
	} else {
		collection.SetListings(listings)
	}

	view := &domain.ListingsView{
		Filtered: collection.Filtered(),
		Total:    len(collection.All()),
		Criteria: collection.Criteria(),
		Loaded:   collection.Loaded(),
	}
	ucLogger.Info("Use case finished", port.Fields{
		"total":    view.Total,
		"filtered": len(view.Filtered),
		"loaded":   view.Loaded,
	})
	return view, nil
}
