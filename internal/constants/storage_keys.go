package constants

import "real-estate-manager/internal/core/domain"

// Ключи хранилища браузерной сессии
const (
	ListingDraftKey        = "addListingForm"
	AgentDraftKey          = "addAgentForm"
	FilterCriteriaKey      = "filters"
	ListingImagePreviewKey = "listingImagePreview"
	AgentImagePreviewKey   = "agentImagePreview"
)

// DraftKey возвращает ключ черновика формы
func DraftKey(form domain.FormKind) string {
	if form == domain.FormAgent {
		return AgentDraftKey
	}
	return ListingDraftKey
}

// PreviewKey возвращает ключ превью изображения формы
func PreviewKey(form domain.FormKind) string {
	if form == domain.FormAgent {
		return AgentImagePreviewKey
	}
	return ListingImagePreviewKey
}
