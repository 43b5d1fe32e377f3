package redberry_api

import (
	"real-estate-manager/internal/core/domain"
	"time"
)

// DTO удаленного API. Поля совпадают с JSON, который отдает api.real-estate-manager.

type regionResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type cityResponse struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	RegionID int             `json:"region_id"`
	Region   *regionResponse `json:"region,omitempty"`
}

type agentResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Avatar  string `json:"avatar"`
}

type listingResponse struct {
	ID          int            `json:"id"`
	Address     string         `json:"address"`
	ZipCode     string         `json:"zip_code"`
	Price       float64        `json:"price"`
	Area        float64        `json:"area"`
	Bedrooms    int            `json:"bedrooms"`
	IsRental    int            `json:"is_rental"`
	Image       string         `json:"image"`
	Description string         `json:"description"`
	CityID      int            `json:"city_id"`
	City        *cityResponse  `json:"city"`
	AgentID     *int           `json:"agent_id"`
	Agent       *agentResponse `json:"agent"`
	CreatedAt   string         `json:"created_at"`
}

type createdResponse struct {
	ID int `json:"id"`
}

func (r regionResponse) toDomain() domain.Region {
	return domain.Region{ID: r.ID, Name: r.Name}
}

func (c cityResponse) toDomain() domain.City {
	city := domain.City{ID: c.ID, Name: c.Name, RegionID: c.RegionID}
	if c.Region != nil {
		region := c.Region.toDomain()
		city.Region = &region
		if city.RegionID == 0 {
			city.RegionID = region.ID
		}
	}
	return city
}

func (a agentResponse) toDomain() domain.Agent {
	return domain.Agent{
		ID:      a.ID,
		Name:    a.Name,
		Surname: a.Surname,
		Email:   a.Email,
		Phone:   a.Phone,
		Avatar:  a.Avatar,
	}
}

func (l listingResponse) toDomain() domain.Listing {
	listing := domain.Listing{
		ID:          l.ID,
		IsRental:    l.IsRental == 1,
		Address:     l.Address,
		ZipCode:     l.ZipCode,
		CityID:      l.CityID,
		Price:       l.Price,
		Area:        l.Area,
		Bedrooms:    l.Bedrooms,
		Description: l.Description,
		Image:       l.Image,
		AgentID:     l.AgentID,
	}
	if l.City != nil {
		listing.City = l.City.toDomain()
		if listing.CityID == 0 {
			listing.CityID = listing.City.ID
		}
	} else {
		listing.City = domain.City{ID: l.CityID}
	}
	if l.Agent != nil {
		agent := l.Agent.toDomain()
		listing.Agent = &agent
		if listing.AgentID == nil {
			listing.AgentID = domain.Int(agent.ID)
		}
	}
	if l.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, l.CreatedAt); err == nil {
			listing.CreatedAt = t.UTC()
		}
	}
	return listing
}
