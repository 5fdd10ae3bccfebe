package models

import "gorm.io/gorm"

type Role string

const (
	RoleAdmin     Role = "admin"
	RolePimpinan  Role = "pimpinan"
	RoleTataUsaha Role = "tata_usaha"
	RolePegawai   Role = "pegawai"
)

type User struct {
	gorm.Model
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null"`
	FirstName    string `gorm:"type:varchar(100)"`
	LastName     string `gorm:"type:varchar(100)"`
	Email        string `gorm:"type:varchar(191);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         Role   `gorm:"type:varchar(30);not null;index"`
	Jabatan      string `gorm:"type:varchar(150)"`
	Atribut      string `gorm:"type:text"`
}

func (User) TableName() string {
	return "users"
}

// --- Helper Methods ---

func (u *User) IsPimpinan() bool  { return u.Role == RolePimpinan }
func (u *User) IsTataUsaha() bool { return u.Role == RoleTataUsaha }
func (u *User) IsPegawai() bool   { return u.Role == RolePegawai }
func (u *User) IsAdmin() bool     { return u.Role == RoleAdmin }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RolePimpinan, RoleTataUsaha, RolePegawai:
		return true
	default:
		return false
	}
}
