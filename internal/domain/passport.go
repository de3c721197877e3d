package domain

// Passport is a product-line template: devices whose serial number falls in
// its range inherit its warranty duration.
type Passport struct {
	ID               int64  `json:"id" gorm:"primaryKey"`
	Name             string `json:"name"`
	Model            string `json:"model"`
	SerialPrefix     string `json:"serialPrefix"`
	FromSerialNumber int    `json:"fromSerialNumber"`
	ToSerialNumber   int    `json:"toSerialNumber"`
	WarrantyMonths   int    `json:"warrantyMonths"`
}

type PassportCreateRequest struct {
	Name             string `json:"name" validate:"required"`
	Model            string `json:"model" validate:"required"`
	SerialPrefix     string `json:"serialPrefix" validate:"required"`
	FromSerialNumber int    `json:"fromSerialNumber" validate:"gte=0"`
	ToSerialNumber   int    `json:"toSerialNumber" validate:"gte=0"`
	WarrantyMonths   int    `json:"warrantyMonths" validate:"gt=0"`
}

type PassportUpdateRequest struct {
	Name             string `json:"name" validate:"required"`
	Model            string `json:"model" validate:"required"`
	SerialPrefix     string `json:"serialPrefix" validate:"required"`
	FromSerialNumber int    `json:"fromSerialNumber" validate:"gte=0"`
	ToSerialNumber   int    `json:"toSerialNumber" validate:"gte=0"`
	WarrantyMonths   int    `json:"warrantyMonths" validate:"gt=0"`
}
