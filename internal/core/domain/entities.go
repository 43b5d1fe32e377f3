package domain

import "time"

// Region - справочник регионов удаленного API
type Region struct {
	ID   int
	Name string
}

// City - город, принадлежащий региону
type City struct {
	ID       int
	Name     string
	RegionID int
	Region   *Region
}

// Agent - агент, на которого может ссылаться листинг
type Agent struct {
	ID      int
	Name    string
	Surname string
	Email   string
	Phone   string
	Avatar  string
}

// FullName возвращает "Имя Фамилия".
func (a Agent) FullName() string {
	if a.Surname == "" {
		return a.Name
	}
	return a.Name + " " + a.Surname
}

// Listing - объект недвижимости в том виде, в каком его отдает удаленный API.
// Фильтрация никогда не изменяет листинг.
type Listing struct {
	ID          int
	IsRental    bool
	Address     string
	ZipCode     string
	CityID      int
	City        City
	Price       float64
	Area        float64
	Bedrooms    int
	Description string
	Image       string
	AgentID     *int
	Agent       *Agent
	CreatedAt   time.Time
}

// RegionID - регион листинга определяется через его город.
func (l Listing) RegionID() int {
	if l.City.RegionID != 0 {
		return l.City.RegionID
	}
	if l.City.Region != nil {
		return l.City.Region.ID
	}
	return 0
}
