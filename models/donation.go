package models

import "gorm.io/gorm"

type Donation struct {
	gorm.Model

	DonorName  string  `gorm:"size:255" json:"donorName"`
	DonorEmail string  `gorm:"size:150" json:"donorEmail"`
	Amount     float64 `json:"amount"`
	Currency   string  `gorm:"size:8;default:USD" json:"currency"`
	Message    string  `gorm:"type:text" json:"message"`

	PaymentMethodID *uint `gorm:"index;column:payment_method_id" json:"paymentMethodId,omitempty"`

	// Server-generated receipt reference handed back to the donor.
	ReceiptRef string `gorm:"column:receipt_ref;uniqueIndex;size:64" json:"receiptRef"`

	PaymentMethod PaymentMethod `gorm:"foreignKey:PaymentMethodID;references:ID" json:"paymentMethod,omitempty"`
}
