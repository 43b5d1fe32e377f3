package domain

// ListingsView - состояние страницы списка листингов
type ListingsView struct {
	Filtered []Listing
	Total    int
	Criteria FilterCriteria
	// Loaded=false: полный набор получить не удалось, пустой список не означает "ничего не найдено"
	Loaded bool
}

// ListingDetails - листинг и карусель похожих по региону
type ListingDetails struct {
	Listing Listing
	Similar []Listing
}
