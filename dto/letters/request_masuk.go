package letters

import "strings"

// CreateSuratMasukRequest - Req pencatatan surat masuk oleh Tata Usaha
type CreateSuratMasukRequest struct {
	NomorSurat    string `json:"nomor_surat" form:"nomor_surat"`
	AsalSurat     string `json:"asal_surat" form:"asal_surat"`
	Perihal       string `json:"perihal" form:"perihal"`
	TanggalSurat  string `json:"tanggal_surat" form:"tanggal_surat"`   // YYYY-MM-DD
	TanggalTerima string `json:"tanggal_terima" form:"tanggal_terima"` // YYYY-MM-DD
	Keterangan    string `json:"keterangan" form:"keterangan"`
	KepadaID      *uint  `json:"kepada_id" form:"kepada_id"`

	// Note: FilePath di-handle handler
}

// UpdateSuratMasukRequest - Req untuk edit (hanya field yang relevan)
type UpdateSuratMasukRequest struct {
	NomorSurat    *string `json:"nomor_surat" form:"nomor_surat"`
	AsalSurat     *string `json:"asal_surat" form:"asal_surat"`
	Perihal       *string `json:"perihal" form:"perihal"`
	TanggalSurat  *string `json:"tanggal_surat" form:"tanggal_surat"`
	TanggalTerima *string `json:"tanggal_terima" form:"tanggal_terima"`
	Keterangan    *string `json:"keterangan" form:"keterangan"`
	KepadaID      *uint   `json:"kepada_id" form:"kepada_id"`
}

func (r *CreateSuratMasukRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.NomorSurat) == "" {
		errors["nomor_surat"] = "nomor_surat is required"
	}
	if strings.TrimSpace(r.AsalSurat) == "" {
		errors["asal_surat"] = "asal_surat is required"
	}
	if strings.TrimSpace(r.Perihal) == "" {
		errors["perihal"] = "perihal is required"
	}
	if r.TanggalSurat != "" && !isValidDate(r.TanggalSurat) {
		errors["tanggal_surat"] = "tanggal_surat must be YYYY-MM-DD"
	}
	if r.TanggalTerima != "" && !isValidDate(r.TanggalTerima) {
		errors["tanggal_terima"] = "tanggal_terima must be YYYY-MM-DD"
	}

	return errors
}

func (r *UpdateSuratMasukRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.TanggalSurat != nil && *r.TanggalSurat != "" && !isValidDate(*r.TanggalSurat) {
		errors["tanggal_surat"] = "tanggal_surat must be YYYY-MM-DD"
	}
	if r.TanggalTerima != nil && *r.TanggalTerima != "" && !isValidDate(*r.TanggalTerima) {
		errors["tanggal_terima"] = "tanggal_terima must be YYYY-MM-DD"
	}
	return errors
}
