package models

import (
	"time"

	"gorm.io/gorm"
)

type StatusSuratMasuk string

const (
	MasukDiterima   StatusSuratMasuk = "diterima"
	MasukDibaca     StatusSuratMasuk = "dibaca"
	MasukDisposisi  StatusSuratMasuk = "disposisi"
	MasukDiarsipkan StatusSuratMasuk = "diarsipkan"
)

type SuratMasuk struct {
	gorm.Model
	NomorSurat    string     `gorm:"type:varchar(100);index"`
	AsalSurat     string     `gorm:"type:varchar(200);index"`
	Perihal       string     `gorm:"type:varchar(255);index"`
	Keterangan    string     `gorm:"type:text"`
	TanggalSurat  *time.Time `gorm:"type:date"`
	TanggalTerima *time.Time `gorm:"type:date;index"`
	FilePath      string     `gorm:"type:varchar(255)"`

	Status StatusSuratMasuk `gorm:"type:varchar(20);default:'diterima';not null;index"`

	// Tujuan surat (pegawai/bidang yang dituju)
	KepadaID *uint `gorm:"index"`
	Kepada   *User `gorm:"foreignKey:KepadaID"`

	// Jejak baca: siapa dan kapan surat pertama kali dibaca
	DibacaOlehID *uint `gorm:"index"`
	DibacaOleh   *User `gorm:"foreignKey:DibacaOlehID"`
	DibacaPada   *time.Time

	DicatatOlehID uint  `gorm:"index"` // Tata Usaha
	DicatatOleh   *User `gorm:"foreignKey:DicatatOlehID"`

	Disposisi []Disposisi `gorm:"foreignKey:SuratMasukID"`
}

func (SuratMasuk) TableName() string {
	return "surat_masuk"
}

func (s *SuratMasuk) SudahDibaca() bool {
	return s.DibacaPada != nil
}
