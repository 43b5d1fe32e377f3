package constants

const (
	DefaultRealEstateAPIURL = "https://api.real-estate-manager.redberryinternship.ge/api"

	SimilarListingsLimit = 8
	// Максимальный размер загружаемого изображения
	MaxUploadBytes = 1 << 20
)

const (
	// Сессия в памяти живет с момента последнего обращения
	MemorySessionTTLHours = 24
	MaxMemorySessions     = 10000
)
