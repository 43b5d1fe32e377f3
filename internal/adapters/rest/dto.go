package rest

import (
	"real-estate-manager/internal/core/domain"
	"real-estate-manager/internal/core/forms"
)

type RegionResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CityResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	RegionID int    `json:"region_id"`
}

type AgentResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
}

// ListingCardResponse - карточка листинга в списке и в карусели
type ListingCardResponse struct {
	ID         int     `json:"id"`
	Address    string  `json:"address"`
	ZipCode    string  `json:"zip_code"`
	City       string  `json:"city"`
	RegionID   int     `json:"region_id"`
	Price      float64 `json:"price"`
	PriceLabel string  `json:"price_label"`
	Area       float64 `json:"area"`
	AreaLabel  string  `json:"area_label"`
	Bedrooms   int     `json:"bedrooms"`
	IsRental   bool    `json:"is_rental"`
	DealLabel  string  `json:"deal_label"`
	Image      string  `json:"image"`
}

type ListingDetailsResponse struct {
	ListingCardResponse
	Description    string                `json:"description"`
	Agent          *AgentResponse        `json:"agent,omitempty"`
	CreatedAt      string                `json:"created_at"`
	PublishedLabel string                `json:"published_label"`
	Similar        []ListingCardResponse `json:"similar"`
}

// FilterCriteriaDTO - тот же JSON, что хранится в хранилище сессии
type FilterCriteriaDTO struct {
	SelectedRegions []int    `json:"selectedRegions"`
	MinPrice        *float64 `json:"minPrice"`
	MaxPrice        *float64 `json:"maxPrice"`
	MinArea         *float64 `json:"minArea"`
	MaxArea         *float64 `json:"maxArea"`
	BedroomCount    *int     `json:"bedroomCount"`
}

func (d FilterCriteriaDTO) toDomain() domain.FilterCriteria {
	return domain.FilterCriteria{
		RegionIDs: d.SelectedRegions,
		MinPrice:  d.MinPrice,
		MaxPrice:  d.MaxPrice,
		MinArea:   d.MinArea,
		MaxArea:   d.MaxArea,
		Bedrooms:  d.BedroomCount,
	}
}

func filterCriteriaToDTO(c domain.FilterCriteria) FilterCriteriaDTO {
	c = c.Clone()
	return FilterCriteriaDTO{
		SelectedRegions: c.RegionIDs,
		MinPrice:        c.MinPrice,
		MaxPrice:        c.MaxPrice,
		MinArea:         c.MinArea,
		MaxArea:         c.MaxArea,
		BedroomCount:    c.Bedrooms,
	}
}

// ChipResponse - активный фильтр; RemovePath - запрос DELETE, который его снимает
type ChipResponse struct {
	Kind       string `json:"kind"`
	Label      string `json:"label"`
	RegionID   int    `json:"region_id,omitempty"`
	RemovePath string `json:"remove_path"`
}

type FilterStateResponse struct {
	Criteria  FilterCriteriaDTO `json:"criteria"`
	Chips     []ChipResponse    `json:"chips"`
	HasActive bool              `json:"has_active"`
}

type ListingsPageResponse struct {
	Cards         []ListingCardResponse `json:"cards"`
	Total         int                   `json:"total"`
	FilteredCount int                   `json:"filtered_count"`
	Loaded        bool                  `json:"loaded"`
	FilterStateResponse
}

type CreatedResponse struct {
	ID int `json:"id"`
}

type AgentCreatedResponse struct {
	ID     int             `json:"id"`
	Agents []AgentResponse `json:"agents"`
}

type DeletedResponse struct {
	ID         int    `json:"id"`
	RedirectTo string `json:"redirect_to"`
}

type FieldErrorResponse struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationErrorResponse - тело ответа 422. Fields содержит состояние
// (untouched, valid, invalid) каждого поля формы для подсветки.
type ValidationErrorResponse struct {
	Error     string                        `json:"error"`
	Submitted bool                          `json:"submitted"`
	Fields    map[string]string             `json:"fields"`
	Errors    map[string]FieldErrorResponse `json:"errors"`
}

func newValidationErrorResponse(e *forms.ValidationError) ValidationErrorResponse {
	resp := ValidationErrorResponse{
		Error:     "Validation failed",
		Submitted: e.Submitted,
		Fields:    make(map[string]string, len(e.States)),
		Errors:    make(map[string]FieldErrorResponse, len(e.Fields)),
	}
	for name, state := range e.States {
		resp.Fields[name] = string(state)
	}
	for name, fe := range e.Fields {
		resp.Errors[name] = FieldErrorResponse{Rule: fe.Rule, Message: fe.Message}
	}
	return resp
}

type DraftRequest struct {
	Values map[string]string `json:"values"`
}

type DraftResponse struct {
	Form   string            `json:"form"`
	Values map[string]string `json:"values"`
}

type PreviewResponse struct {
	DataURL string `json:"data_url"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
