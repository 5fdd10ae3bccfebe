package models

import "gorm.io/gorm"

type StatusDisposisi string

const (
	DisposisiDikirim  StatusDisposisi = "dikirim"
	DisposisiDiterima StatusDisposisi = "diterima"
	DisposisiDitolak  StatusDisposisi = "ditolak"
)

// Disposisi - Satu baris per (surat masuk, pengirim, penerima). Satu surat
// boleh didisposisikan ke beberapa penerima sekaligus; tiap baris independen.
type Disposisi struct {
	gorm.Model
	SuratMasukID uint `gorm:"not null;uniqueIndex:idx_disposisi_unik"`
	DariID       uint `gorm:"not null;uniqueIndex:idx_disposisi_unik"`
	KepadaID     uint `gorm:"not null;uniqueIndex:idx_disposisi_unik;index"`

	Catatan string          `gorm:"type:text"`
	Status  StatusDisposisi `gorm:"type:varchar(20);default:'dikirim';not null;index"`

	Dari   *User `gorm:"foreignKey:DariID"`
	Kepada *User `gorm:"foreignKey:KepadaID"`
}

func (Disposisi) TableName() string {
	return "disposisi"
}

func (d *Disposisi) SudahDiputus() bool {
	return d.Status != DisposisiDikirim
}
