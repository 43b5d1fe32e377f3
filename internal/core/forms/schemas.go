package forms

import (
	"real-estate-manager/internal/constants"
)

const (
	msgRequired    = "სავალდებულო"
	msgMinTwo      = "მინიმუმ ორი სიმბოლო"
	msgDigitsOnly  = "მხოლოდ რიცხვები"
	msgMinFive     = "მინიმუმ ხუთი სიტყვა"
	msgPickPhoto   = "ფოტო უნდა აირჩიოთ"
	msgPhotoSize   = "ფოტოს ზომა არ უნდა აღემატებოდეს 1MB-ს"
	msgPhotoType   = "ატვირთეთ მხოლოდ სურათი"
	msgRedberry    = "გამოიყენეთ @redberry.ge ფოსტა"
	msgPhoneFormat = "მხოლოდ რიცხვები, ფორმატი 5XXXXXXXX"
	msgDealType    = "აირჩიეთ გარიგების ტიპი"
)

// Теги validator для полей формы
const (
	digitsTag   = "number"
	dealTypeTag = "oneof=0 1"
	idTag       = "number,startsnotwith=0"
)

// Поля формы листинга
const (
	ListingIsRental    = "is_rental"
	ListingAddress     = "address"
	ListingZipCode     = "zip_code"
	ListingRegionID    = "region_id"
	ListingCityID      = "city_id"
	ListingPrice       = "price"
	ListingArea        = "area"
	ListingBedrooms    = "bedrooms"
	ListingDescription = "description"
	ListingImage       = "image"
	ListingAgentID     = "agent_id"
)

// Поля формы агента
const (
	AgentName    = "name"
	AgentSurname = "surname"
	AgentEmail   = "email"
	AgentPhone   = "phone"
	AgentAvatar  = "avatar"
)

// ImageRules - правила поля изображения: выбран один файл-картинка не больше 1MB.
func ImageRules() []Rule {
	return []Rule{
		FileRequired(msgPickPhoto),
		ImageFile(msgPhotoType),
		MaxFileSize(constants.MaxUploadBytes, msgPhotoSize),
	}
}

// PreviewFile - поле формы предпросмотра изображения
const PreviewFile = "file"

// NewPreviewForm - одна картинка для предпросмотра в форме formName.
func NewPreviewForm(formName string) *Form {
	return New(formName).RegisterFile(PreviewFile, ImageRules()...)
}

// NewListingForm - форма добавления листинга.
func NewListingForm() *Form {
	return New("listing").
		Register(ListingIsRental, Required(msgDealType), Pattern(dealTypeTag, msgDealType)).
		Register(ListingAddress, Required(msgRequired), MinLength(2, msgMinTwo)).
		Register(ListingZipCode, Required(msgRequired), Pattern(digitsTag, msgDigitsOnly)).
		Register(ListingRegionID, Required(msgRequired), Pattern(idTag, msgRequired)).
		Register(ListingCityID, Required(msgRequired), Pattern(idTag, msgRequired)).
		Register(ListingPrice, Required(msgRequired), Numeric(msgDigitsOnly)).
		Register(ListingArea, Required(msgRequired), Numeric(msgDigitsOnly)).
		Register(ListingBedrooms, Required(msgRequired), Pattern(digitsTag, msgDigitsOnly)).
		Register(ListingDescription, Required(msgRequired), MinWords(5, msgMinFive)).
		RegisterFile(ListingImage, ImageRules()...).
		Register(ListingAgentID, Pattern(idTag, msgDigitsOnly))
}

// NewAgentForm - форма добавления агента.
func NewAgentForm() *Form {
	return New("agent").
		Register(AgentName, Required(msgRequired), MinLength(2, msgMinTwo)).
		Register(AgentSurname, Required(msgRequired), MinLength(2, msgMinTwo)).
		Register(AgentEmail, Required(msgRequired), Contains("@redberry.ge", msgRedberry)).
		Register(AgentPhone, Required(msgRequired), Pattern(tagPhoneGE, msgPhoneFormat)).
		RegisterFile(AgentAvatar, ImageRules()...)
}
