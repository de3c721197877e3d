package domain

import "time"

// Device is a physical unit identified by its serial number. The owning
// user is optional: a device may be registered anonymously and claimed
// later during user registration.
type Device struct {
	SerialNumber           string       `json:"serialNumber" gorm:"primaryKey"`
	PurchaseDate           Date         `json:"purchaseDate" gorm:"type:date"`
	WarrantyExpirationDate Date         `json:"warrantyExpirationDate" gorm:"type:date"`
	Comment                string       `json:"comment"`
	PassportID             int64        `json:"-"`
	Passport               *Passport    `json:"passport,omitempty" gorm:"foreignKey:PassportID"`
	UserID                 *string      `json:"-" gorm:"type:uuid"`
	Renovations            []Renovation `json:"renovations" gorm:"foreignKey:DeviceSerialNumber;constraint:OnDelete:CASCADE"`
	CreatedAt              time.Time    `json:"-"`
	UpdatedAt              time.Time    `json:"-"`
}

type DeviceCreateRequest struct {
	SerialNumber string `json:"serialNumber" validate:"required"`
	PurchaseDate Date   `json:"purchaseDate"`
	Comment      string `json:"comment"`
}

type DeviceUpdateRequest struct {
	PurchaseDate *Date   `json:"purchaseDate"`
	Comment      *string `json:"comment"`
}
