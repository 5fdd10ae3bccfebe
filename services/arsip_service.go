package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Ahadan1/SIPAS-Public-sub000/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ArsipService memegang indeks arsip untuk kedua jenis surat. Indeks ini yang
// otoritatif; kolom status 'diarsipkan' pada surat hanya cermin untuk filter
// listing dan di-set/di-reset di transaksi yang sama.
type ArsipService struct {
	db    *gorm.DB
	clock Clock
}

func NewArsipService(db *gorm.DB, clock Clock) *ArsipService {
	if clock == nil {
		clock = SystemClock
	}
	return &ArsipService{db: db, clock: clock}
}

// Archive mengarsipkan satu surat. Idempoten: jika catatan untuk
// (jenis, surat) sudah ada, catatan lama dikembalikan apa adanya - aktor dan
// waktu arsip pertama tidak tertimpa. Keunikan ditegakkan lewat constraint
// unik plus insert do-nothing-on-conflict, jadi dua panggilan bersamaan pun
// menghasilkan tepat satu baris.
func (s *ArsipService) Archive(jenis models.JenisArsip, suratID uint, unitKode string, actorID uint) (*models.Arsip, error) {
	if !jenis.IsValid() {
		return nil, fmt.Errorf("%w: jenis arsip %q", ErrNotFound, jenis)
	}

	var out models.Arsip
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.pastikanSuratAda(tx, jenis, suratID); err != nil {
			return err
		}

		rec := models.Arsip{
			Jenis:            jenis,
			SuratID:          suratID,
			UnitKode:         strings.TrimSpace(unitKode),
			DiarsipkanOlehID: actorID,
			DiarsipkanPada:   s.clock.Now(),
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "jenis"}, {Name: "surat_id"}},
			DoNothing: true,
		}).Create(&rec).Error; err != nil {
			return err
		}

		if err := tx.Where("jenis = ? AND surat_id = ?", jenis, suratID).First(&out).Error; err != nil {
			return err
		}

		return s.cerminkanStatus(tx, jenis, suratID, true)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Unarchive menghapus catatan arsip bila ada dan melaporkan apakah ada yang
// terhapus. Membuka arsip yang tidak ada bukan error.
func (s *ArsipService) Unarchive(jenis models.JenisArsip, suratID uint) (bool, error) {
	if !jenis.IsValid() {
		return false, fmt.Errorf("%w: jenis arsip %q", ErrNotFound, jenis)
	}

	removed := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("jenis = ? AND surat_id = ?", jenis, suratID).Delete(&models.Arsip{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		return s.cerminkanStatus(tx, jenis, suratID, false)
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func (s *ArsipService) IsArchived(jenis models.JenisArsip, suratID uint) (bool, error) {
	var n int64
	err := s.db.Model(&models.Arsip{}).
		Where("jenis = ? AND surat_id = ?", jenis, suratID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *ArsipService) List(jenis models.JenisArsip) ([]models.Arsip, error) {
	var arsip []models.Arsip
	q := s.db.Preload("DiarsipkanOleh").Order("diarsipkan_pada DESC")
	if jenis != "" {
		q = q.Where("jenis = ?", jenis)
	}
	if err := q.Find(&arsip).Error; err != nil {
		return nil, err
	}
	return arsip, nil
}

func (s *ArsipService) pastikanSuratAda(tx *gorm.DB, jenis models.JenisArsip, suratID uint) error {
	var err error
	switch jenis {
	case models.ArsipSuratMasuk:
		err = tx.First(&models.SuratMasuk{}, suratID).Error
	case models.ArsipSuratKeluar:
		err = tx.First(&models.SuratKeluar{}, suratID).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s %d", ErrNotFound, jenis, suratID)
		}
		return err
	}
	return nil
}

// cerminkanStatus menyamakan kolom status surat dengan keadaan indeks arsip.
// Saat buka arsip, status surat masuk dihitung ulang dari jejaknya; surat
// keluar kembali ke terkirim.
func (s *ArsipService) cerminkanStatus(tx *gorm.DB, jenis models.JenisArsip, suratID uint, arsip bool) error {
	switch jenis {
	case models.ArsipSuratMasuk:
		if arsip {
			return tx.Model(&models.SuratMasuk{}).Where("id = ?", suratID).
				Update("status", models.MasukDiarsipkan).Error
		}
		status, err := s.statusMasukPulih(tx, suratID)
		if err != nil {
			return err
		}
		return tx.Model(&models.SuratMasuk{}).Where("id = ?", suratID).
			Update("status", status).Error
	case models.ArsipSuratKeluar:
		status := models.KeluarDiarsipkan
		if !arsip {
			status = models.KeluarTerkirim
		}
		return tx.Model(&models.SuratKeluar{}).Where("id = ?", suratID).
			Update("status", status).Error
	}
	return nil
}

func (s *ArsipService) statusMasukPulih(tx *gorm.DB, suratID uint) (models.StatusSuratMasuk, error) {
	var nDisposisi int64
	if err := tx.Model(&models.Disposisi{}).
		Where("surat_masuk_id = ?", suratID).Count(&nDisposisi).Error; err != nil {
		return "", err
	}
	if nDisposisi > 0 {
		return models.MasukDisposisi, nil
	}

	var surat models.SuratMasuk
	if err := tx.First(&surat, suratID).Error; err != nil {
		return "", err
	}
	if surat.SudahDibaca() {
		return models.MasukDibaca, nil
	}
	return models.MasukDiterima, nil
}
