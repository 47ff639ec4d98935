package models

import "time"

// Employee is a registered employee record. RollNumber is the unique business
// identifier, distinct from the numeric ID. PhotoFile holds only the generated
// filename of an uploaded photo; the on-disk path and public URL are derived
// at read time so rows stay valid if the upload directory moves.
type Employee struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Email      string    `gorm:"type:varchar(255);not null" json:"email"`
	Department string    `gorm:"type:varchar(255);not null" json:"department"`
	Role       string    `gorm:"type:varchar(255);not null" json:"role"`
	RollNumber string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"roll_number"`
	PhotoFile  *string   `gorm:"type:varchar(255)" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
