package letters

import (
	"strings"

	"github.com/Ahadan1/SIPAS-Public-sub000/models"
)

// RouteDisposisiRequest - pengiriman disposisi ke satu atau beberapa penerima
type RouteDisposisiRequest struct {
	KepadaIDs []uint `json:"kepada_ids" form:"kepada_ids"`
	Catatan   string `json:"catatan" form:"catatan"`
}

func (r *RouteDisposisiRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if len(r.KepadaIDs) == 0 {
		errors["kepada_ids"] = "kepada_ids is required"
	}
	return errors
}

// DecideDisposisiRequest - putusan penerima atas disposisi yang diterimanya
type DecideDisposisiRequest struct {
	Status  string `json:"status" form:"status"`
	Catatan string `json:"catatan" form:"catatan"`
}

func (r *DecideDisposisiRequest) Validate() map[string]string {
	errors := make(map[string]string)
	switch models.StatusDisposisi(r.Status) {
	case models.DisposisiDiterima, models.DisposisiDitolak:
	default:
		errors["status"] = "status must be diterima or ditolak"
	}
	return errors
}

type CreateLembarPantauRequest struct {
	Jabatan      string `json:"jabatan" form:"jabatan"`
	Catatan      string `json:"catatan" form:"catatan"`
	TanggalParaf string `json:"tanggal_paraf" form:"tanggal_paraf"` // YYYY-MM-DD
}

func (r *CreateLembarPantauRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if strings.TrimSpace(r.Jabatan) == "" {
		errors["jabatan"] = "jabatan is required"
	}
	if r.TanggalParaf != "" && !isValidDate(r.TanggalParaf) {
		errors["tanggal_paraf"] = "tanggal_paraf must be YYYY-MM-DD"
	}
	return errors
}

func (r *CreateLembarPantauRequest) ToModel(suratKeluarID uint) *models.LembarPantau {
	return &models.LembarPantau{
		SuratKeluarID: suratKeluarID,
		Jabatan:       r.Jabatan,
		Catatan:       r.Catatan,
		TanggalParaf:  parseDate(r.TanggalParaf),
	}
}

type UpdateLembarPantauRequest struct {
	Jabatan      *string `json:"jabatan" form:"jabatan"`
	Catatan      *string `json:"catatan" form:"catatan"`
	TanggalParaf *string `json:"tanggal_paraf" form:"tanggal_paraf"`
}

func (r *UpdateLembarPantauRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.Jabatan != nil && strings.TrimSpace(*r.Jabatan) == "" {
		errors["jabatan"] = "jabatan cannot be empty"
	}
	if r.TanggalParaf != nil && *r.TanggalParaf != "" && !isValidDate(*r.TanggalParaf) {
		errors["tanggal_paraf"] = "tanggal_paraf must be YYYY-MM-DD"
	}
	return errors
}

func (r *UpdateLembarPantauRequest) ApplyUpdate(m *models.LembarPantau) {
	if r.Jabatan != nil {
		m.Jabatan = *r.Jabatan
	}
	if r.Catatan != nil {
		m.Catatan = *r.Catatan
	}
	if r.TanggalParaf != nil {
		m.TanggalParaf = parseDate(*r.TanggalParaf)
	}
}

// ArchiveRequest - permintaan arsip surat (jenis diambil dari path)
type ArchiveRequest struct {
	UnitKode   string `json:"unit_kode" form:"unit_kode"`
	Keterangan string `json:"keterangan" form:"keterangan"`
}
