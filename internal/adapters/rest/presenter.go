package rest

import (
	"fmt"
	"math"
	"strconv"

	"real-estate-manager/internal/core/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	dealRental = "ქირავდება"
	dealSale   = "იყიდება"
	currency   = "₾"
	areaUnit   = "მ²"
	unbounded  = "∞"
	dateLayout = "01/02/06"
)

// presenter собирает view model ответов.
// cases.Caser хранит состояние, поэтому создается на каждый вызов.
type presenter struct {
	numbers language.Tag
}

func newPresenter() *presenter {
	return &presenter{numbers: language.English}
}

// formatPrice: 150000 -> "150,000 ₾"
func (p *presenter) formatPrice(price float64) string {
	return message.NewPrinter(p.numbers).Sprintf("%d %s", int64(math.Round(price)), currency)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (p *presenter) card(l domain.Listing) ListingCardResponse {
	deal := dealSale
	if l.IsRental {
		deal = dealRental
	}
	return ListingCardResponse{
		ID:         l.ID,
		Address:    l.Address,
		ZipCode:    l.ZipCode,
		City:       l.City.Name,
		RegionID:   l.RegionID(),
		Price:      l.Price,
		PriceLabel: p.formatPrice(l.Price),
		Area:       l.Area,
		AreaLabel:  fmt.Sprintf("%s %s", formatNumber(l.Area), areaUnit),
		Bedrooms:   l.Bedrooms,
		IsRental:   l.IsRental,
		DealLabel:  deal,
		Image:      l.Image,
	}
}

func (p *presenter) cards(listings []domain.Listing) []ListingCardResponse {
	result := make([]ListingCardResponse, len(listings))
	for i, l := range listings {
		result[i] = p.card(l)
	}
	return result
}

func (p *presenter) agent(a domain.Agent) AgentResponse {
	return AgentResponse{
		ID:       a.ID,
		Name:     a.Name,
		Surname:  a.Surname,
		FullName: cases.Title(language.Und).String(a.FullName()),
		Email:    a.Email,
		Phone:    a.Phone,
		Avatar:   a.Avatar,
	}
}

func (p *presenter) agents(agents []domain.Agent) []AgentResponse {
	result := make([]AgentResponse, len(agents))
	for i, a := range agents {
		result[i] = p.agent(a)
	}
	return result
}

func (p *presenter) details(d *domain.ListingDetails) ListingDetailsResponse {
	resp := ListingDetailsResponse{
		ListingCardResponse: p.card(d.Listing),
		Description:         d.Listing.Description,
		Similar:             p.cards(d.Similar),
	}
	if d.Listing.Agent != nil {
		agent := p.agent(*d.Listing.Agent)
		resp.Agent = &agent
	}
	if !d.Listing.CreatedAt.IsZero() {
		created := d.Listing.CreatedAt.UTC()
		resp.CreatedAt = created.Format("2006-01-02T15:04:05Z07:00")
		resp.PublishedLabel = created.Format(dateLayout)
	}
	return resp
}

func boundLabel(v *float64, fallback string) string {
	if v == nil {
		return fallback
	}
	return formatNumber(*v)
}

// chips - активные фильтры в порядке: регионы, площадь, цена, спальни.
func (p *presenter) chips(c domain.FilterCriteria, regions []domain.Region) []ChipResponse {
	names := make(map[int]string, len(regions))
	for _, r := range regions {
		names[r.ID] = r.Name
	}

	chips := make([]ChipResponse, 0)
	for _, id := range c.RegionIDs {
		chips = append(chips, ChipResponse{
			Kind:       "region",
			Label:      names[id],
			RegionID:   id,
			RemovePath: fmt.Sprintf("%s/filters/regions/%d", apiPrefix, id),
		})
	}
	if c.MinArea != nil || c.MaxArea != nil {
		chips = append(chips, ChipResponse{
			Kind:       "area",
			Label:      fmt.Sprintf("%s %s - %s %s", boundLabel(c.MinArea, "0"), areaUnit, boundLabel(c.MaxArea, unbounded), areaUnit),
			RemovePath: apiPrefix + "/filters/area",
		})
	}
	if c.MinPrice != nil || c.MaxPrice != nil {
		chips = append(chips, ChipResponse{
			Kind:       "price",
			Label:      fmt.Sprintf("%s%s - %s%s", boundLabel(c.MinPrice, "0"), currency, boundLabel(c.MaxPrice, unbounded), currency),
			RemovePath: apiPrefix + "/filters/price",
		})
	}
	if c.Bedrooms != nil {
		chips = append(chips, ChipResponse{
			Kind:       "bedrooms",
			Label:      strconv.Itoa(*c.Bedrooms),
			RemovePath: apiPrefix + "/filters/bedrooms",
		})
	}
	return chips
}

func (p *presenter) filterState(c domain.FilterCriteria, regions []domain.Region) FilterStateResponse {
	return FilterStateResponse{
		Criteria:  filterCriteriaToDTO(c),
		Chips:     p.chips(c, regions),
		HasActive: c.HasActive(),
	}
}
