package models

// AdminKey is a shared secret validated on each check request. It is not tied
// to any user or session and is never included in responses.
type AdminKey struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	AdminPass string `gorm:"type:varchar(255);uniqueIndex;not null" json:"-"`
}
