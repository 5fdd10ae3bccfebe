package services

import (
	"errors"
	"fmt"

	"github.com/Ahadan1/SIPAS-Public-sub000/models"

	"gorm.io/gorm"
)

type SuratMasukService struct {
	db    *gorm.DB
	clock Clock
}

func NewSuratMasukService(db *gorm.DB, clock Clock) *SuratMasukService {
	if clock == nil {
		clock = SystemClock
	}
	return &SuratMasukService{db: db, clock: clock}
}

func (s *SuratMasukService) Create(surat *models.SuratMasuk) error {
	surat.Status = models.MasukDiterima
	surat.DibacaOlehID = nil
	surat.DibacaPada = nil
	return s.db.Create(surat).Error
}

func (s *SuratMasukService) GetByID(id uint) (*models.SuratMasuk, error) {
	var surat models.SuratMasuk
	err := s.db.Preload("Kepada").Preload("DibacaOleh").Preload("DicatatOleh").
		First(&surat, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: surat masuk %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &surat, nil
}

// Update mengubah metadata surat. Hanya kolom metadata yang ditulis;
// status dan jejak baca tidak pernah disentuh di sini, supaya transisi yang
// commit di sela baca-tulis (misalnya disposisi) tidak tertimpa.
func (s *SuratMasukService) Update(id uint, apply func(*models.SuratMasuk)) (*models.SuratMasuk, error) {
	surat, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	apply(surat)

	updates := map[string]interface{}{
		"nomor_surat":    surat.NomorSurat,
		"asal_surat":     surat.AsalSurat,
		"perihal":        surat.Perihal,
		"keterangan":     surat.Keterangan,
		"tanggal_surat":  surat.TanggalSurat,
		"tanggal_terima": surat.TanggalTerima,
		"kepada_id":      surat.KepadaID,
		"file_path":      surat.FilePath,
	}
	if err := s.db.Model(surat).Updates(updates).Error; err != nil {
		return nil, err
	}
	return surat, nil
}

// MarkRead menandai surat sudah dibaca. Idempoten: panggilan kedua tidak
// menimpa pembaca dan waktu baca yang pertama.
func (s *SuratMasukService) MarkRead(id uint, actorID uint) (*models.SuratMasuk, error) {
	surat, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if surat.SudahDibaca() {
		return surat, nil
	}
	if surat.Status != models.MasukDiterima {
		return nil, fmt.Errorf("%w: tandai baca dari status %s", ErrInvalidTransition, surat.Status)
	}

	// Update berpagar status: kalau ada transisi lain yang menang di sela
	// baca-tulis, baris tidak tersentuh dan kita baca ulang keadaan terkini.
	now := s.clock.Now()
	res := s.db.Model(&models.SuratMasuk{}).
		Where("id = ? AND status = ? AND dibaca_pada IS NULL", id, models.MasukDiterima).
		Updates(map[string]interface{}{
			"status":         models.MasukDibaca,
			"dibaca_oleh_id": actorID,
			"dibaca_pada":    now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		latest, err := s.GetByID(id)
		if err != nil {
			return nil, err
		}
		if latest.SudahDibaca() {
			return latest, nil
		}
		return nil, fmt.Errorf("%w: tandai baca dari status %s", ErrInvalidTransition, latest.Status)
	}

	surat.Status = models.MasukDibaca
	surat.DibacaOlehID = &actorID
	surat.DibacaPada = &now
	return surat, nil
}

// MarkUnread mengembalikan surat ke status diterima dan menghapus jejak baca.
// Sah dari status apa pun kecuali diarsipkan.
func (s *SuratMasukService) MarkUnread(id uint) (*models.SuratMasuk, error) {
	surat, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if surat.Status == models.MasukDiarsipkan {
		return nil, fmt.Errorf("%w: surat sudah diarsipkan", ErrInvalidTransition)
	}

	updates := map[string]interface{}{
		"status":         models.MasukDiterima,
		"dibaca_oleh_id": nil,
		"dibaca_pada":    nil,
	}
	res := s.db.Model(surat).
		Where("status <> ?", models.MasukDiarsipkan).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: surat sudah diarsipkan", ErrInvalidTransition)
	}
	surat.Status = models.MasukDiterima
	surat.DibacaOlehID = nil
	surat.DibacaOleh = nil
	surat.DibacaPada = nil
	return surat, nil
}

// Delete menghapus surat beserta seluruh disposisi dan catatan arsipnya
// dalam satu transaksi. Disposisi tidak boleh tertinggal yatim.
func (s *SuratMasukService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var surat models.SuratMasuk
		if err := tx.First(&surat, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: surat masuk %d", ErrNotFound, id)
			}
			return err
		}

		if err := tx.Where("surat_masuk_id = ?", id).Delete(&models.Disposisi{}).Error; err != nil {
			return err
		}
		if err := tx.Where("jenis = ? AND surat_id = ?", models.ArsipSuratMasuk, id).
			Delete(&models.Arsip{}).Error; err != nil {
			return err
		}
		return tx.Delete(&surat).Error
	})
}

func (s *SuratMasukService) List(status models.StatusSuratMasuk) ([]models.SuratMasuk, error) {
	var surat []models.SuratMasuk
	q := s.db.Preload("Kepada").Preload("DicatatOleh").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&surat).Error; err != nil {
		return nil, err
	}
	return surat, nil
}
