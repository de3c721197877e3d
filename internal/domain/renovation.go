package domain

// Renovation is an immutable repair event attached to a device.
type Renovation struct {
	ID                 int64  `json:"id" gorm:"primaryKey"`
	Description        string `json:"description"`
	RenovationDate     Date   `json:"renovationDate" gorm:"type:date"`
	DeviceSerialNumber string `json:"deviceSerialNumber"`
}

type RenovationCreateRequest struct {
	DeviceSerial string `json:"deviceSerial" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Date         Date   `json:"date"`
}
