package session_storage

import "real-estate-manager/internal/core/domain"

// filterCriteriaDTO - форма, в которой критерии лежат в хранилище.
// Незаданная граница сериализуется как null, отсутствующий ключ читается как "не задано".
type filterCriteriaDTO struct {
	SelectedRegions []int    `json:"selectedRegions"`
	MinPrice        *float64 `json:"minPrice"`
	MaxPrice        *float64 `json:"maxPrice"`
	MinArea         *float64 `json:"minArea"`
	MaxArea         *float64 `json:"maxArea"`
	BedroomCount    *int     `json:"bedroomCount"`
}

func filterCriteriaToDTO(c domain.FilterCriteria) filterCriteriaDTO {
	c = c.Clone()
	return filterCriteriaDTO{
		SelectedRegions: c.RegionIDs,
		MinPrice:        c.MinPrice,
		MaxPrice:        c.MaxPrice,
		MinArea:         c.MinArea,
		MaxArea:         c.MaxArea,
		BedroomCount:    c.Bedrooms,
	}
}

func (d filterCriteriaDTO) toDomain() domain.FilterCriteria {
	return domain.FilterCriteria{
		RegionIDs: d.SelectedRegions,
		MinPrice:  d.MinPrice,
		MaxPrice:  d.MaxPrice,
		MinArea:   d.MinArea,
		MaxArea:   d.MaxArea,
		Bedrooms:  d.BedroomCount,
	}.Normalized()
}
