package entity

import "time"

// User is a chat-platform identity. The primary key is assigned by the
// platform, never generated locally.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Username  string    `gorm:"type:varchar(50)" json:"username,omitempty"`
	FirstName string    `gorm:"type:varchar(50)" json:"first_name,omitempty"`
	LastName  string    `gorm:"type:varchar(50)" json:"last_name,omitempty"`
	Phone     string    `gorm:"type:varchar(15)" json:"phone,omitempty"`
	IsBot     bool      `gorm:"not null;default:false" json:"is_bot"`
	Deleted   bool      `gorm:"not null;default:false;index" json:"deleted"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
