package models

import (
	"time"

	"gorm.io/gorm"
)

type StatusSuratKeluar string

const (
	KeluarDraft      StatusSuratKeluar = "draft"
	KeluarTerkirim   StatusSuratKeluar = "terkirim"
	KeluarDiarsipkan StatusSuratKeluar = "diarsipkan"
)

type SuratKeluar struct {
	gorm.Model
	JenisID         uint              `gorm:"not null;index"`
	Jenis           *JenisSurat       `gorm:"foreignKey:JenisID"`
	KlasifikasiID   uint              `gorm:"not null;index"`
	Klasifikasi     *KlasifikasiSurat `gorm:"foreignKey:KlasifikasiID"`
	PenandatanganID uint              `gorm:"not null;index"`
	Penandatangan   *Penandatangan    `gorm:"foreignKey:PenandatanganID"`

	// NomorUrut adalah hasil alokasi counter; NomorSurat adalah bentuk
	// terformatnya (atau nomor lama yang dipasok manual saat migrasi).
	NomorUrut  int    `gorm:"not null;index"`
	NomorSurat string `gorm:"type:varchar(100);uniqueIndex;not null"`

	Perihal      string     `gorm:"type:varchar(255);index"`
	TujuanKepada string     `gorm:"type:varchar(200)"`
	Isi          string     `gorm:"type:longtext"`
	TanggalSurat *time.Time `gorm:"type:date"`
	TanggalCatat *time.Time `gorm:"type:date;index"`
	FilePath     string     `gorm:"type:varchar(255)"`

	Status StatusSuratKeluar `gorm:"type:varchar(20);default:'draft';not null;index"`

	DibuatOlehID uint  `gorm:"index"`
	DibuatOleh   *User `gorm:"foreignKey:DibuatOlehID"`

	// Penerima tembusan internal; diganti utuh lewat operasi sinkronisasi,
	// bukan ditambah satu-satu.
	Penerima []User `gorm:"many2many:surat_keluar_penerima"`

	LembarPantau []LembarPantau `gorm:"foreignKey:SuratKeluarID"`
}

func (SuratKeluar) TableName() string {
	return "surat_keluar"
}
