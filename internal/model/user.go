package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account and its business identity. The company fields
// are the issuer profile stamped into exported documents; all of them are
// optional and renderers fall back to bracketed placeholders.
type User struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	Name               string         `json:"name" gorm:"type:varchar(100)"`
	Email              string         `json:"email" gorm:"type:varchar(100);uniqueIndex"`
	Password           string         `json:"-" gorm:"type:varchar(255)"`
	Company            string         `json:"company" gorm:"type:varchar(255)"`
	TaxCode            string         `json:"tax_code" gorm:"type:varchar(50)"`
	Address            string         `json:"address" gorm:"type:text"`
	Phone              string         `json:"phone" gorm:"type:varchar(30)"`
	RepresentativeRole string         `json:"representative_role" gorm:"type:varchar(100)"`
	Logo               string         `json:"logo" gorm:"type:text"`
	Role               string         `json:"role" gorm:"type:varchar(20);default:user"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `json:"-" gorm:"index"`
}
