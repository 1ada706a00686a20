package entity

import "time"

// Phone is a contact number referenced by polyclinics
type Phone struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Number    string    `gorm:"type:varchar(15);uniqueIndex;not null" json:"number"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Phone) TableName() string {
	return "phones"
}

// Address is a street address referenced by polyclinics
type Address struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Value     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"value"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Address) TableName() string {
	return "addresses"
}
