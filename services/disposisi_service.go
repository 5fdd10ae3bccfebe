package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Ahadan1/SIPAS-Public-sub000/models"

	"gorm.io/gorm"
)

type DisposisiService struct {
	db *gorm.DB
}

func NewDisposisiService(db *gorm.DB) *DisposisiService {
	return &DisposisiService{db: db}
}

// Route membuat satu entri disposisi (pengirim -> penerima) untuk surat masuk
// dan, sebagai efek samping, memindahkan status surat induk ke 'disposisi'
// kecuali sudah diarsipkan. Entri dan perubahan status satu transaksi:
// tidak boleh ada entri tanpa efek statusnya.
func (s *DisposisiService) Route(suratMasukID, dariID, kepadaID uint, catatan string) (*models.Disposisi, error) {
	var entri models.Disposisi

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var surat models.SuratMasuk
		if err := tx.First(&surat, suratMasukID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: surat masuk %d", ErrNotFound, suratMasukID)
			}
			return err
		}

		entri = models.Disposisi{
			SuratMasukID: suratMasukID,
			DariID:       dariID,
			KepadaID:     kepadaID,
			Catatan:      strings.TrimSpace(catatan),
			Status:       models.DisposisiDikirim,
		}
		if err := tx.Create(&entri).Error; err != nil {
			if isDuplicateErr(err) {
				return fmt.Errorf("%w: disposisi untuk penerima ini sudah ada", ErrConflict)
			}
			return err
		}

		if surat.Status != models.MasukDiarsipkan && surat.Status != models.MasukDisposisi {
			if err := tx.Model(&surat).Update("status", models.MasukDisposisi).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entri, nil
}

// Decide menyimpan keputusan penerima (diterima/ditolak). Hanya penerima yang
// dituju yang boleh memutus. Catatan kosong mempertahankan catatan lama,
// tidak pernah menghapusnya diam-diam. Entri lain pada surat yang sama tidak
// tersentuh.
func (s *DisposisiService) Decide(disposisiID, actorID uint, status models.StatusDisposisi, catatan string) (*models.Disposisi, error) {
	if status != models.DisposisiDiterima && status != models.DisposisiDitolak {
		return nil, fmt.Errorf("%w: keputusan %s tidak dikenal", ErrInvalidTransition, status)
	}

	var entri models.Disposisi
	if err := s.db.First(&entri, disposisiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: disposisi %d", ErrNotFound, disposisiID)
		}
		return nil, err
	}

	if entri.KepadaID != actorID {
		return nil, fmt.Errorf("%w: disposisi bukan untuk pengguna ini", ErrForbidden)
	}
	if entri.SudahDiputus() {
		return nil, fmt.Errorf("%w: disposisi sudah diputus (%s)", ErrInvalidTransition, entri.Status)
	}

	entri.Status = status
	if c := strings.TrimSpace(catatan); c != "" {
		entri.Catatan = c
	}
	if err := s.db.Save(&entri).Error; err != nil {
		return nil, err
	}
	return &entri, nil
}

func (s *DisposisiService) GetByID(id uint) (*models.Disposisi, error) {
	var entri models.Disposisi
	err := s.db.Preload("Dari").Preload("Kepada").First(&entri, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: disposisi %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &entri, nil
}

func (s *DisposisiService) ListForSurat(suratMasukID uint) ([]models.Disposisi, error) {
	var entri []models.Disposisi
	err := s.db.Preload("Dari").Preload("Kepada").
		Where("surat_masuk_id = ?", suratMasukID).
		Order("created_at ASC").
		Find(&entri).Error
	if err != nil {
		return nil, err
	}
	return entri, nil
}

func (s *DisposisiService) ListForPenerima(kepadaID uint) ([]models.Disposisi, error) {
	var entri []models.Disposisi
	err := s.db.Preload("Dari").
		Where("kepada_id = ?", kepadaID).
		Order("created_at DESC").
		Find(&entri).Error
	if err != nil {
		return nil, err
	}
	return entri, nil
}
