package letters

import (
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub000/models"
)

const dateLayout = "2006-01-02"

func isValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// ToModel - konversi request ke entity surat masuk
func (r *CreateSuratMasukRequest) ToModel(dicatatOlehID uint) *models.SuratMasuk {
	return &models.SuratMasuk{
		NomorSurat:    r.NomorSurat,
		AsalSurat:     r.AsalSurat,
		Perihal:       r.Perihal,
		TanggalSurat:  parseDate(r.TanggalSurat),
		TanggalTerima: parseDate(r.TanggalTerima),
		Keterangan:    r.Keterangan,
		KepadaID:      r.KepadaID,
		DicatatOlehID: dicatatOlehID,
	}
}

// ApplyUpdate - terapkan field yang dikirim saja
func (r *UpdateSuratMasukRequest) ApplyUpdate(m *models.SuratMasuk) {
	if r.NomorSurat != nil {
		m.NomorSurat = *r.NomorSurat
	}
	if r.AsalSurat != nil {
		m.AsalSurat = *r.AsalSurat
	}
	if r.Perihal != nil {
		m.Perihal = *r.Perihal
	}
	if r.TanggalSurat != nil {
		m.TanggalSurat = parseDate(*r.TanggalSurat)
	}
	if r.TanggalTerima != nil {
		m.TanggalTerima = parseDate(*r.TanggalTerima)
	}
	if r.Keterangan != nil {
		m.Keterangan = *r.Keterangan
	}
	if r.KepadaID != nil {
		m.KepadaID = r.KepadaID
	}
}
