package domain

import "time"

type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
}

// Adr is one generated decision record. A nil OriginalAdrID marks a root
// record; refinements point at the record they were derived from and carry
// the feedback text that produced them.
type Adr struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	Content       string    `gorm:"not null" json:"content"`
	Model         string    `gorm:"not null" json:"model"`
	Prompt        string    `gorm:"not null" json:"prompt"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	OriginalAdrID *int64    `gorm:"index" json:"originalAdrId"`
	Feedback      *string   `json:"feedback"`
}

func (Adr) TableName() string  { return "adrs" }
func (User) TableName() string { return "users" }

// IsRoot reports whether the record is an original ADR rather than a
// refinement of one.
func (a *Adr) IsRoot() bool { return a.OriginalAdrID == nil }
