package letters

import (
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub000/models"
)

type UserRingkas struct {
	ID       uint        `json:"id"`
	Username string      `json:"username"`
	Nama     string      `json:"nama"`
	Jabatan  string      `json:"jabatan"`
	Role     models.Role `json:"role"`
}

func newUserRingkas(u *models.User) *UserRingkas {
	if u == nil {
		return nil
	}
	nama := u.FirstName
	if u.LastName != "" {
		nama = nama + " " + u.LastName
	}
	return &UserRingkas{
		ID:       u.ID,
		Username: u.Username,
		Nama:     nama,
		Jabatan:  u.Jabatan,
		Role:     u.Role,
	}
}

type SuratMasukResponse struct {
	ID            uint                    `json:"id"`
	NomorSurat    string                  `json:"nomor_surat"`
	AsalSurat     string                  `json:"asal_surat"`
	Perihal       string                  `json:"perihal"`
	Keterangan    string                  `json:"keterangan"`
	TanggalSurat  *time.Time              `json:"tanggal_surat"`
	TanggalTerima *time.Time              `json:"tanggal_terima"`
	FilePath      string                  `json:"file_path"`
	Status        models.StatusSuratMasuk `json:"status"`
	Kepada        *UserRingkas            `json:"kepada"`
	DibacaOleh    *UserRingkas            `json:"dibaca_oleh"`
	DibacaPada    *time.Time              `json:"dibaca_pada"`
	DicatatOleh   *UserRingkas            `json:"dicatat_oleh"`
	Disposisi     []DisposisiResponse     `json:"disposisi,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

func NewSuratMasukResponse(s *models.SuratMasuk) SuratMasukResponse {
	if s == nil {
		return SuratMasukResponse{}
	}

	resp := SuratMasukResponse{
		ID:            s.ID,
		NomorSurat:    s.NomorSurat,
		AsalSurat:     s.AsalSurat,
		Perihal:       s.Perihal,
		Keterangan:    s.Keterangan,
		TanggalSurat:  s.TanggalSurat,
		TanggalTerima: s.TanggalTerima,
		FilePath:      s.FilePath,
		Status:        s.Status,
		Kepada:        newUserRingkas(s.Kepada),
		DibacaOleh:    newUserRingkas(s.DibacaOleh),
		DibacaPada:    s.DibacaPada,
		DicatatOleh:   newUserRingkas(s.DicatatOleh),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	for i := range s.Disposisi {
		resp.Disposisi = append(resp.Disposisi, NewDisposisiResponse(&s.Disposisi[i]))
	}
	return resp
}

type SuratKeluarResponse struct {
	ID            uint                     `json:"id"`
	NomorUrut     int                      `json:"nomor_urut"`
	NomorSurat    string                   `json:"nomor_surat"`
	Jenis         *models.JenisSurat       `json:"jenis"`
	Klasifikasi   *models.KlasifikasiSurat `json:"klasifikasi"`
	Penandatangan *models.Penandatangan    `json:"penandatangan"`
	Perihal       string                   `json:"perihal"`
	TujuanKepada  string                   `json:"tujuan_kepada"`
	Isi           string                   `json:"isi"`
	TanggalSurat  *time.Time               `json:"tanggal_surat"`
	TanggalCatat  *time.Time               `json:"tanggal_catat"`
	FilePath      string                   `json:"file_path"`
	Status        models.StatusSuratKeluar `json:"status"`
	DibuatOleh    *UserRingkas             `json:"dibuat_oleh"`
	Penerima      []UserRingkas            `json:"penerima,omitempty"`
	LembarPantau  []LembarPantauResponse   `json:"lembar_pantau,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

func NewSuratKeluarResponse(s *models.SuratKeluar) SuratKeluarResponse {
	if s == nil {
		return SuratKeluarResponse{}
	}

	resp := SuratKeluarResponse{
		ID:            s.ID,
		NomorUrut:     s.NomorUrut,
		NomorSurat:    s.NomorSurat,
		Jenis:         s.Jenis,
		Klasifikasi:   s.Klasifikasi,
		Penandatangan: s.Penandatangan,
		Perihal:       s.Perihal,
		TujuanKepada:  s.TujuanKepada,
		Isi:           s.Isi,
		TanggalSurat:  s.TanggalSurat,
		TanggalCatat:  s.TanggalCatat,
		FilePath:      s.FilePath,
		Status:        s.Status,
		DibuatOleh:    newUserRingkas(s.DibuatOleh),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	for i := range s.Penerima {
		if r := newUserRingkas(&s.Penerima[i]); r != nil {
			resp.Penerima = append(resp.Penerima, *r)
		}
	}
	for i := range s.LembarPantau {
		resp.LembarPantau = append(resp.LembarPantau, NewLembarPantauResponse(&s.LembarPantau[i]))
	}
	return resp
}

type DisposisiResponse struct {
	ID           uint                   `json:"id"`
	SuratMasukID uint                   `json:"surat_masuk_id"`
	Dari         *UserRingkas           `json:"dari"`
	Kepada       *UserRingkas           `json:"kepada"`
	Catatan      string                 `json:"catatan"`
	Status       models.StatusDisposisi `json:"status"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func NewDisposisiResponse(d *models.Disposisi) DisposisiResponse {
	if d == nil {
		return DisposisiResponse{}
	}
	return DisposisiResponse{
		ID:           d.ID,
		SuratMasukID: d.SuratMasukID,
		Dari:         newUserRingkas(d.Dari),
		Kepada:       newUserRingkas(d.Kepada),
		Catatan:      d.Catatan,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type LembarPantauResponse struct {
	ID            uint       `json:"id"`
	SuratKeluarID uint       `json:"surat_keluar_id"`
	Jabatan       string     `json:"jabatan"`
	Catatan       string     `json:"catatan"`
	TanggalParaf  *time.Time `json:"tanggal_paraf"`
	TanggalInput  time.Time  `json:"tanggal_input"`
}

func NewLembarPantauResponse(l *models.LembarPantau) LembarPantauResponse {
	if l == nil {
		return LembarPantauResponse{}
	}
	return LembarPantauResponse{
		ID:            l.ID,
		SuratKeluarID: l.SuratKeluarID,
		Jabatan:       l.Jabatan,
		Catatan:       l.Catatan,
		TanggalParaf:  l.TanggalParaf,
		TanggalInput:  l.TanggalInput,
	}
}

type ArsipResponse struct {
	ID             string            `json:"id"`
	Jenis          models.JenisArsip `json:"jenis"`
	SuratID        uint              `json:"surat_id"`
	UnitKode       string            `json:"unit_kode"`
	Keterangan     string            `json:"keterangan"`
	DiarsipkanOleh *UserRingkas      `json:"diarsipkan_oleh"`
	DiarsipkanPada time.Time         `json:"diarsipkan_pada"`
}

func NewArsipResponse(a *models.Arsip) ArsipResponse {
	if a == nil {
		return ArsipResponse{}
	}
	return ArsipResponse{
		ID:             a.ID,
		Jenis:          a.Jenis,
		SuratID:        a.SuratID,
		UnitKode:       a.UnitKode,
		Keterangan:     a.Keterangan,
		DiarsipkanOleh: newUserRingkas(a.DiarsipkanOleh),
		DiarsipkanPada: a.DiarsipkanPada,
	}
}
