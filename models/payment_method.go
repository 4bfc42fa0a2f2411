package models

import "gorm.io/gorm"

type PaymentMethod struct {
	gorm.Model

	Name        string `gorm:"size:150;uniqueIndex" json:"name"`
	AccountName string `gorm:"column:account_name;size:255" json:"accountName"`
	AccountNo   string `gorm:"column:account_no;size:64" json:"accountNo"`
	Instruction string `gorm:"type:text" json:"instruction"`
	Active      bool   `gorm:"default:true" json:"active"`
}
