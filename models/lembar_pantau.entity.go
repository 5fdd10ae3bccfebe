package models

import (
	"time"

	"gorm.io/gorm"
)

// LembarPantau - Catatan paraf/tinjauan berjenjang atas sebuah surat keluar.
// TanggalInput adalah waktu pencatatan oleh sistem dan menjadi urutan tampil;
// TanggalParaf adalah tanggal paraf yang diisi pengguna. Keduanya disimpan.
type LembarPantau struct {
	gorm.Model
	SuratKeluarID uint `gorm:"not null;index"`

	Jabatan      string     `gorm:"type:varchar(150);not null"`
	Catatan      string     `gorm:"type:text"`
	TanggalParaf *time.Time `gorm:"type:date"`
	TanggalInput time.Time  `gorm:"not null;index"`
}

func (LembarPantau) TableName() string {
	return "lembar_pantau"
}
