package models

// User is a login account. Credentials are stored and compared in plaintext
// for parity with the system this replaces; see DESIGN.md for the recommended
// hardening (salted hashes, constant-time comparison).
type User struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	Username string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
}
