package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub000/models"

	"gorm.io/gorm"
)

type LembarPantauService struct {
	db    *gorm.DB
	clock Clock
}

func NewLembarPantauService(db *gorm.DB, clock Clock) *LembarPantauService {
	if clock == nil {
		clock = SystemClock
	}
	return &LembarPantauService{db: db, clock: clock}
}

// Append mencatat satu baris lembar pantau. Tanggal input di-stempel sistem
// dan terpisah dari tanggal paraf yang diisi pengguna; keduanya disimpan.
func (s *LembarPantauService) Append(suratKeluarID uint, jabatan, catatan string, tanggalParaf *time.Time) (*models.LembarPantau, error) {
	var surat models.SuratKeluar
	if err := s.db.First(&surat, suratKeluarID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: surat keluar %d", ErrNotFound, suratKeluarID)
		}
		return nil, err
	}

	entri := models.LembarPantau{
		SuratKeluarID: suratKeluarID,
		Jabatan:       strings.TrimSpace(jabatan),
		Catatan:       strings.TrimSpace(catatan),
		TanggalParaf:  tanggalParaf,
		TanggalInput:  s.clock.Now(),
	}
	if err := s.db.Create(&entri).Error; err != nil {
		return nil, err
	}
	return &entri, nil
}

func (s *LembarPantauService) Update(id uint, jabatan, catatan *string, tanggalParaf *time.Time) (*models.LembarPantau, error) {
	var entri models.LembarPantau
	if err := s.db.First(&entri, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: lembar pantau %d", ErrNotFound, id)
		}
		return nil, err
	}

	if jabatan != nil {
		entri.Jabatan = strings.TrimSpace(*jabatan)
	}
	if catatan != nil {
		entri.Catatan = strings.TrimSpace(*catatan)
	}
	if tanggalParaf != nil {
		entri.TanggalParaf = tanggalParaf
	}
	if err := s.db.Save(&entri).Error; err != nil {
		return nil, err
	}
	return &entri, nil
}

func (s *LembarPantauService) Delete(id uint) error {
	res := s.db.Delete(&models.LembarPantau{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: lembar pantau %d", ErrNotFound, id)
	}
	return nil
}

// ListFor mengembalikan lembar pantau sebuah surat keluar berurut tanggal
// input menaik. Urutan ini kontrak, bukan detail implementasi: jejak tinjauan
// di UI menampilkan paraf paling awal lebih dulu.
func (s *LembarPantauService) ListFor(suratKeluarID uint) ([]models.LembarPantau, error) {
	var entri []models.LembarPantau
	err := s.db.Where("surat_keluar_id = ?", suratKeluarID).
		Order("tanggal_input ASC, id ASC").
		Find(&entri).Error
	if err != nil {
		return nil, err
	}
	return entri, nil
}
