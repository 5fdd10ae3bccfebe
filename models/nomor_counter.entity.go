package models

import "time"

// NomorCounter - Baris penghitung nomor urut per (jenis, klasifikasi, tahun).
// Increment dilakukan lewat upsert atomik di dalam transaksi pembuatan surat,
// sehingga dua pembuatan surat bersamaan tidak pernah mendapat nomor yang sama.
type NomorCounter struct {
	JenisID       uint `gorm:"primaryKey;autoIncrement:false"`
	KlasifikasiID uint `gorm:"primaryKey;autoIncrement:false"`
	Tahun         int  `gorm:"primaryKey;autoIncrement:false"`
	NomorTerakhir int  `gorm:"not null"`
	UpdatedAt     time.Time
}

func (NomorCounter) TableName() string {
	return "nomor_counter"
}
