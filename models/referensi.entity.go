package models

import "gorm.io/gorm"

// JenisSurat - Referensi jenis/tipe surat keluar (SK, ND, UND, dst).
// Kode dipakai sebagai komponen nomor surat.
type JenisSurat struct {
	gorm.Model
	Kode  string `gorm:"type:varchar(20);uniqueIndex;not null"`
	Nama  string `gorm:"type:varchar(150);not null"`
	Aktif bool   `gorm:"not null;default:true;index"`
}

func (JenisSurat) TableName() string {
	return "jenis_surat"
}

// KlasifikasiSurat - Referensi kode klasifikasi arsip (KU.001, HK.002, dst).
type KlasifikasiSurat struct {
	gorm.Model
	Kode  string `gorm:"type:varchar(30);uniqueIndex;not null"`
	Nama  string `gorm:"type:varchar(150);not null"`
	Aktif bool   `gorm:"not null;default:true;index"`
}

func (KlasifikasiSurat) TableName() string {
	return "klasifikasi_surat"
}

// Penandatangan - Referensi pejabat penandatangan surat keluar.
type Penandatangan struct {
	gorm.Model
	Kode    string `gorm:"type:varchar(30);uniqueIndex;not null"`
	Nama    string `gorm:"type:varchar(150);not null"`
	Jabatan string `gorm:"type:varchar(150)"`
	Aktif   bool   `gorm:"not null;default:true;index"`
}

func (Penandatangan) TableName() string {
	return "penandatangan"
}
