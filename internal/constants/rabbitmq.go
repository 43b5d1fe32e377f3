package constants

const (
	ListingEventsExchangeType = "topic"
	PublishTimeoutSeconds     = 10
)
