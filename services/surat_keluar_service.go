package services

import (
	"errors"
	"fmt"

	"github.com/Ahadan1/SIPAS-Public-sub000/models"

	"gorm.io/gorm"
)

// Batas pengulangan saat commit surat keluar gagal karena nomor ganda.
// Lebih dari ini berarti ada masalah kontensi yang tidak boleh ditutupi.
const maxCreateRetries = 3

type SuratKeluarService struct {
	db    *gorm.DB
	seq   *SequenceService
	clock Clock
}

func NewSuratKeluarService(db *gorm.DB, seq *SequenceService, clock Clock) *SuratKeluarService {
	if clock == nil {
		clock = SystemClock
	}
	return &SuratKeluarService{db: db, seq: seq, clock: clock}
}

// Create menyimpan surat keluar baru. Alokasi nomor dan insert berjalan dalam
// SATU transaksi; keduanya berhasil atau keduanya batal. Jika caller memasok
// nomor surat sendiri (nomor lama hasil migrasi), nomor itu yang disimpan
// tetapi counter tetap maju supaya alokasi berikutnya konsisten.
func (s *SuratKeluarService) Create(surat *models.SuratKeluar, penerimaIDs []uint) error {
	nomorManual := surat.NomorSurat

	// Tanggal catat wajib terisi sejak lahir; kalau caller tidak memasok,
	// pakai tanggal sistem.
	if surat.TanggalCatat == nil {
		catat := s.clock.Now()
		surat.TanggalCatat = &catat
	}

	var lastErr error
	for attempt := 0; attempt < maxCreateRetries; attempt++ {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			alloc, err := s.seq.Allocate(tx, surat.JenisID, surat.KlasifikasiID)
			if err != nil {
				return err
			}

			surat.NomorUrut = alloc.NomorUrut
			if nomorManual != "" {
				surat.NomorSurat = nomorManual
			} else {
				surat.NomorSurat = alloc.NomorSurat
			}
			if surat.Status == "" {
				surat.Status = models.KeluarDraft
			}

			var ttd models.Penandatangan
			if err := tx.Where("id = ? AND aktif = ?", surat.PenandatanganID, true).
				First(&ttd).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: penandatangan %d", ErrNotFound, surat.PenandatanganID)
				}
				return err
			}

			if len(penerimaIDs) > 0 {
				penerima, err := s.loadPenerima(tx, penerimaIDs)
				if err != nil {
					return err
				}
				surat.Penerima = penerima
			}

			if err := tx.Create(surat).Error; err != nil {
				if isDuplicateErr(err) {
					return fmt.Errorf("%w: nomor surat %s", ErrConflict, surat.NomorSurat)
				}
				return err
			}
			return nil
		})
		if err == nil {
			return nil
		}
		lastErr = err
		if !errors.Is(err, ErrConflict) {
			return err
		}
		surat.ID = 0
	}
	return lastErr
}

func (s *SuratKeluarService) loadPenerima(tx *gorm.DB, ids []uint) ([]models.User, error) {
	var penerima []models.User
	if err := tx.Where("id IN ?", ids).Find(&penerima).Error; err != nil {
		return nil, err
	}
	if len(penerima) != len(ids) {
		return nil, fmt.Errorf("%w: sebagian penerima tidak terdaftar", ErrNotFound)
	}
	return penerima, nil
}

func (s *SuratKeluarService) GetByID(id uint) (*models.SuratKeluar, error) {
	var surat models.SuratKeluar
	err := s.db.Preload("Jenis").Preload("Klasifikasi").Preload("Penandatangan").
		Preload("DibuatOleh").Preload("Penerima").
		First(&surat, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: surat keluar %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &surat, nil
}

func (s *SuratKeluarService) Update(id uint, apply func(*models.SuratKeluar)) (*models.SuratKeluar, error) {
	surat, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	apply(surat)
	if err := s.db.Save(surat).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, fmt.Errorf("%w: nomor surat %s", ErrConflict, surat.NomorSurat)
		}
		return nil, err
	}
	return surat, nil
}

// SyncPenerima mengganti seluruh daftar penerima dengan daftar baru.
// Penggantian utuh, bukan penambahan.
func (s *SuratKeluarService) SyncPenerima(id uint, penerimaIDs []uint) (*models.SuratKeluar, error) {
	surat, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		penerima, err := s.loadPenerima(tx, penerimaIDs)
		if err != nil {
			return err
		}
		return tx.Model(surat).Association("Penerima").Replace(penerima)
	})
	if err != nil {
		return nil, err
	}
	surat.Penerima = nil
	return s.GetByID(id)
}

// Kirim memindahkan surat dari draft ke terkirim.
func (s *SuratKeluarService) Kirim(id uint) (*models.SuratKeluar, error) {
	surat, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if surat.Status != models.KeluarDraft {
		return nil, fmt.Errorf("%w: kirim dari status %s", ErrInvalidTransition, surat.Status)
	}
	surat.Status = models.KeluarTerkirim
	if err := s.db.Model(surat).Update("status", models.KeluarTerkirim).Error; err != nil {
		return nil, err
	}
	return surat, nil
}

// SetArsip menandai surat keluar selesai/diarsipkan. Satu arah; memanggil
// ulang pada surat yang sudah diarsipkan bukan error.
func (s *SuratKeluarService) SetArsip(id uint) (*models.SuratKeluar, error) {
	surat, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if surat.Status == models.KeluarDiarsipkan {
		return surat, nil
	}
	surat.Status = models.KeluarDiarsipkan
	if err := s.db.Model(surat).Update("status", models.KeluarDiarsipkan).Error; err != nil {
		return nil, err
	}
	return surat, nil
}

func (s *SuratKeluarService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var surat models.SuratKeluar
		if err := tx.First(&surat, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: surat keluar %d", ErrNotFound, id)
			}
			return err
		}

		if err := tx.Where("surat_keluar_id = ?", id).Delete(&models.LembarPantau{}).Error; err != nil {
			return err
		}
		if err := tx.Where("jenis = ? AND surat_id = ?", models.ArsipSuratKeluar, id).
			Delete(&models.Arsip{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&surat).Association("Penerima").Clear(); err != nil {
			return err
		}
		return tx.Delete(&surat).Error
	})
}

func (s *SuratKeluarService) List(status models.StatusSuratKeluar) ([]models.SuratKeluar, error) {
	var surat []models.SuratKeluar
	q := s.db.Preload("Jenis").Preload("Klasifikasi").Preload("DibuatOleh").
		Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&surat).Error; err != nil {
		return nil, err
	}
	return surat, nil
}
