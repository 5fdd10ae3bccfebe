package letters

import "github.com/Ahadan1/SIPAS-Public-sub000/models"

func (r *CreateSuratKeluarRequest) ToModel(dibuatOlehID uint) *models.SuratKeluar {
	return &models.SuratKeluar{
		JenisID:         r.JenisID,
		KlasifikasiID:   r.KlasifikasiID,
		PenandatanganID: r.PenandatanganID,
		NomorSurat:      r.NomorSurat,
		Perihal:         r.Perihal,
		TujuanKepada:    r.TujuanKepada,
		Isi:             r.Isi,
		TanggalSurat:    parseDate(r.TanggalSurat),
		TanggalCatat:    parseDate(r.TanggalCatat),
		DibuatOlehID:    dibuatOlehID,
	}
}

func (r *UpdateSuratKeluarRequest) ApplyUpdate(m *models.SuratKeluar) {
	if r.Perihal != nil {
		m.Perihal = *r.Perihal
	}
	if r.TujuanKepada != nil {
		m.TujuanKepada = *r.TujuanKepada
	}
	if r.Isi != nil {
		m.Isi = *r.Isi
	}
	if r.TanggalSurat != nil {
		m.TanggalSurat = parseDate(*r.TanggalSurat)
	}
}
