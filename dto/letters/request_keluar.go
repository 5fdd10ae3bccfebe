package letters

import "strings"

// CreateSuratKeluarRequest - Req pembuatan surat keluar; nomor_surat opsional
// (diisi manual hanya untuk migrasi surat lama, selain itu dialokasikan mesin)
type CreateSuratKeluarRequest struct {
	JenisID         uint   `json:"jenis_id" form:"jenis_id"`
	KlasifikasiID   uint   `json:"klasifikasi_id" form:"klasifikasi_id"`
	PenandatanganID uint   `json:"penandatangan_id" form:"penandatangan_id"`
	NomorSurat      string `json:"nomor_surat" form:"nomor_surat"`
	Perihal         string `json:"perihal" form:"perihal"`
	TujuanKepada    string `json:"tujuan_kepada" form:"tujuan_kepada"`
	Isi             string `json:"isi" form:"isi"`
	TanggalSurat    string `json:"tanggal_surat" form:"tanggal_surat"` // YYYY-MM-DD
	TanggalCatat    string `json:"tanggal_catat" form:"tanggal_catat"` // YYYY-MM-DD; kosong = tanggal sistem
	PenerimaIDs     []uint `json:"penerima_ids" form:"penerima_ids"`
}

type UpdateSuratKeluarRequest struct {
	Perihal      *string `json:"perihal" form:"perihal"`
	TujuanKepada *string `json:"tujuan_kepada" form:"tujuan_kepada"`
	Isi          *string `json:"isi" form:"isi"`
	TanggalSurat *string `json:"tanggal_surat" form:"tanggal_surat"`
}

// SyncPenerimaRequest - daftar penerima baru (mengganti seluruh daftar lama)
type SyncPenerimaRequest struct {
	PenerimaIDs []uint `json:"penerima_ids" form:"penerima_ids"`
}

func (r *CreateSuratKeluarRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.JenisID == 0 {
		errors["jenis_id"] = "jenis_id is required"
	}
	if r.KlasifikasiID == 0 {
		errors["klasifikasi_id"] = "klasifikasi_id is required"
	}
	if r.PenandatanganID == 0 {
		errors["penandatangan_id"] = "penandatangan_id is required"
	}
	if strings.TrimSpace(r.Perihal) == "" {
		errors["perihal"] = "perihal is required"
	}
	if r.TanggalSurat != "" && !isValidDate(r.TanggalSurat) {
		errors["tanggal_surat"] = "tanggal_surat must be YYYY-MM-DD"
	}
	if r.TanggalCatat != "" && !isValidDate(r.TanggalCatat) {
		errors["tanggal_catat"] = "tanggal_catat must be YYYY-MM-DD"
	}

	return errors
}

func (r *UpdateSuratKeluarRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.TanggalSurat != nil && *r.TanggalSurat != "" && !isValidDate(*r.TanggalSurat) {
		errors["tanggal_surat"] = "tanggal_surat must be YYYY-MM-DD"
	}
	return errors
}
