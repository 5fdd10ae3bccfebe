package services

import (
	"github.com/Ahadan1/SIPAS-Public-sub000/models"

	"gorm.io/gorm"
)

// PermissionService - Cek izin berbasis peran SEBELUM engine dipanggil.
// Kebijakan sederhana: Tata Usaha mencatat dan mengarsip, Pimpinan
// mendisposisi, Pegawai memutus disposisi yang dialamatkan padanya.
type PermissionService struct {
	db *gorm.DB
}

func NewPermissionService(db *gorm.DB) *PermissionService {
	return &PermissionService{db: db}
}

// CanUserCatatSurat - Cek izin mencatat surat masuk / membuat surat keluar
func (ps *PermissionService) CanUserCatatSurat(user *models.User) (bool, error) {
	if user == nil {
		return false, ErrUnauthorized
	}
	return user.IsTataUsaha() || user.IsAdmin(), nil
}

// CanUserDisposisi - Cek apakah user boleh mendisposisi surat masuk
func (ps *PermissionService) CanUserDisposisi(user *models.User, surat *models.SuratMasuk) (bool, error) {
	if user == nil {
		return false, ErrUnauthorized
	}
	if surat == nil {
		return false, ErrNotFound
	}

	if !user.IsPimpinan() {
		return false, nil
	}

	// Surat yang sudah diarsipkan tidak bisa didisposisi lagi
	if surat.Status == models.MasukDiarsipkan {
		return false, nil
	}

	return true, nil
}

// CanUserPutusDisposisi - Hanya penerima yang dituju yang boleh memutus
func (ps *PermissionService) CanUserPutusDisposisi(user *models.User, entri *models.Disposisi) (bool, error) {
	if user == nil {
		return false, ErrUnauthorized
	}
	if entri == nil {
		return false, ErrNotFound
	}
	return entri.KepadaID == user.ID, nil
}

// CanUserArsip - Cek izin arsip/buka arsip
func (ps *PermissionService) CanUserArsip(user *models.User) (bool, error) {
	if user == nil {
		return false, ErrUnauthorized
	}
	return user.IsTataUsaha() || user.IsAdmin(), nil
}

// CanUserKelolaReferensi - Referensi penomoran diubah tata usaha atau admin
func (ps *PermissionService) CanUserKelolaReferensi(user *models.User) (bool, error) {
	if user == nil {
		return false, ErrUnauthorized
	}
	return user.IsTataUsaha() || user.IsAdmin(), nil
}

// CanUserLihatSuratMasuk - Pembatas tampilan detail surat masuk
func (ps *PermissionService) CanUserLihatSuratMasuk(user *models.User, surat *models.SuratMasuk) (bool, error) {
	if user == nil {
		return false, ErrUnauthorized
	}
	if surat == nil {
		return false, ErrNotFound
	}

	if user.IsAdmin() || user.IsPimpinan() || user.IsTataUsaha() {
		return true, nil
	}

	// Pegawai hanya melihat surat yang dialamatkan atau didisposisikan padanya
	if surat.KepadaID != nil && *surat.KepadaID == user.ID {
		return true, nil
	}
	var n int64
	if err := ps.db.Model(&models.Disposisi{}).
		Where("surat_masuk_id = ? AND kepada_id = ?", surat.ID, user.ID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
