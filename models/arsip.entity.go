package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JenisArsip membedakan surat masuk dan surat keluar yang berbagi satu tabel
// arsip. Tag eksplisit, bukan nama tipe hasil refleksi.
type JenisArsip string

const (
	ArsipSuratMasuk  JenisArsip = "surat_masuk"
	ArsipSuratKeluar JenisArsip = "surat_keluar"
)

func (j JenisArsip) IsValid() bool {
	return j == ArsipSuratMasuk || j == ArsipSuratKeluar
}

// Arsip - Penanda sebuah surat sudah masuk arsip. Maksimal satu baris per
// (jenis, surat_id); unik di level database supaya arsip ganda tidak mungkin
// terjadi meski dua permintaan datang bersamaan. Hard delete (tanpa DeletedAt)
// agar buka-arsip benar-benar melepas kuncinya.
type Arsip struct {
	ID      string     `gorm:"type:varchar(36);primaryKey"`
	Jenis   JenisArsip `gorm:"type:varchar(20);not null;uniqueIndex:idx_arsip_surat"`
	SuratID uint       `gorm:"not null;uniqueIndex:idx_arsip_surat"`

	UnitKode   string `gorm:"type:varchar(50)"`
	Keterangan string `gorm:"type:text"`

	DiarsipkanOlehID uint  `gorm:"index"`
	DiarsipkanOleh   *User `gorm:"foreignKey:DiarsipkanOlehID"`
	DiarsipkanPada   time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Arsip) TableName() string {
	return "arsip"
}

func (a *Arsip) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
