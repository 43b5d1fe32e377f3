package domain

import (
	"fmt"
	"slices"
)

// FilterCriteria - активные ограничения списка листингов.
// nil-граница означает "без ограничения".
type FilterCriteria struct {
	RegionIDs []int
	MinPrice  *float64
	MaxPrice  *float64
	MinArea   *float64
	MaxArea   *float64
	Bedrooms  *int
}

// Float и Int - хелперы для заполнения необязательных границ.
func Float(v float64) *float64 { return &v }
func Int(v int) *int           { return &v }

// Matches проверяет листинг по всем заданным границам одновременно.
func (c FilterCriteria) Matches(l Listing) bool {
	if len(c.RegionIDs) > 0 && !slices.Contains(c.RegionIDs, l.RegionID()) {
		return false
	}
	if c.MinPrice != nil && l.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && l.Price > *c.MaxPrice {
		return false
	}
	if c.MinArea != nil && l.Area < *c.MinArea {
		return false
	}
	if c.MaxArea != nil && l.Area > *c.MaxArea {
		return false
	}
	if c.Bedrooms != nil && l.Bedrooms != *c.Bedrooms {
		return false
	}
	return true
}

// Apply возвращает упорядоченную подпоследовательность подходящих листингов.
// Результат никогда не nil, пустой срез - валидный результат.
func (c FilterCriteria) Apply(listings []Listing) []Listing {
	result := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if c.Matches(l) {
			result = append(result, l)
		}
	}
	return result
}

// HasActive - задана ли хотя бы одна граница.
func (c FilterCriteria) HasActive() bool {
	return len(c.RegionIDs) > 0 ||
		c.MinPrice != nil || c.MaxPrice != nil ||
		c.MinArea != nil || c.MaxArea != nil ||
		c.Bedrooms != nil
}

// Clone делает глубокую копию, чтобы изменения не протекали между запросами.
func (c FilterCriteria) Clone() FilterCriteria {
	out := FilterCriteria{RegionIDs: slices.Clone(c.RegionIDs)}
	if out.RegionIDs == nil {
		out.RegionIDs = []int{}
	}
	out.MinPrice = cloneFloat(c.MinPrice)
	out.MaxPrice = cloneFloat(c.MaxPrice)
	out.MinArea = cloneFloat(c.MinArea)
	out.MaxArea = cloneFloat(c.MaxArea)
	if c.Bedrooms != nil {
		out.Bedrooms = Int(*c.Bedrooms)
	}
	return out
}

// Normalized убирает повторяющиеся регионы, сохраняя порядок выбора.
func (c FilterCriteria) Normalized() FilterCriteria {
	out := c.Clone()
	seen := make(map[int]struct{}, len(out.RegionIDs))
	regions := out.RegionIDs[:0]
	for _, id := range out.RegionIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		regions = append(regions, id)
	}
	out.RegionIDs = regions
	return out
}

// Cleared - "очистить все".
func (c FilterCriteria) Cleared() FilterCriteria {
	return FilterCriteria{RegionIDs: []int{}}
}

func (c FilterCriteria) WithoutRegion(regionID int) FilterCriteria {
	out := c.Clone()
	out.RegionIDs = slices.DeleteFunc(out.RegionIDs, func(id int) bool { return id == regionID })
	return out
}

// WithRegionToggled добавляет регион в выбор или убирает, если он уже выбран.
func (c FilterCriteria) WithRegionToggled(regionID int) FilterCriteria {
	if slices.Contains(c.RegionIDs, regionID) {
		return c.WithoutRegion(regionID)
	}
	out := c.Clone()
	out.RegionIDs = append(out.RegionIDs, regionID)
	return out
}

func (c FilterCriteria) WithoutPrice() FilterCriteria {
	out := c.Clone()
	out.MinPrice, out.MaxPrice = nil, nil
	return out
}

func (c FilterCriteria) WithoutArea() FilterCriteria {
	out := c.Clone()
	out.MinArea, out.MaxArea = nil, nil
	return out
}

func (c FilterCriteria) WithoutBedrooms() FilterCriteria {
	out := c.Clone()
	out.Bedrooms = nil
	return out
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return Float(*v)
}

// Validate отклоняет отрицательные границы и диапазоны, где минимум больше максимума.
func (c FilterCriteria) Validate() error {
	for _, b := range []*float64{c.MinPrice, c.MaxPrice, c.MinArea, c.MaxArea} {
		if b != nil && *b < 0 {
			return fmt.Errorf("%w: bounds must not be negative", ErrInvalidInput)
		}
	}
	if c.MinPrice != nil && c.MaxPrice != nil && *c.MinPrice > *c.MaxPrice {
		return fmt.Errorf("%w: min price is greater than max price", ErrInvalidInput)
	}
	if c.MinArea != nil && c.MaxArea != nil && *c.MinArea > *c.MaxArea {
		return fmt.Errorf("%w: min area is greater than max area", ErrInvalidInput)
	}
	if c.Bedrooms != nil && *c.Bedrooms < 0 {
		return fmt.Errorf("%w: bedroom count must not be negative", ErrInvalidInput)
	}
	for _, id := range c.RegionIDs {
		if id <= 0 {
			return fmt.Errorf("%w: region id must be positive", ErrInvalidInput)
		}
	}
	return nil
}
