package services

import (
	"errors"
	"fmt"

	"github.com/Ahadan1/SIPAS-Public-sub000/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SequenceService mengalokasikan nomor urut surat keluar per kunci
// (jenis, klasifikasi, tahun). Counter di-reset tiap tahun (baris counter
// baru per tahun) dan berjalan rapat mulai dari 1.
type SequenceService struct {
	db    *gorm.DB
	clock Clock
}

func NewSequenceService(db *gorm.DB, clock Clock) *SequenceService {
	if clock == nil {
		clock = SystemClock
	}
	return &SequenceService{db: db, clock: clock}
}

type AllocationResult struct {
	NomorUrut  int
	NomorSurat string
	Tahun      int
}

// Allocate mengambil nomor urut berikutnya di dalam transaksi milik caller.
// Upsert counter dijalankan SEBELUM baca apa pun, sehingga statement pertama
// transaksi langsung mengunci baris counter; dua transaksi untuk kunci yang
// sama ter-serialisasi di situ. Rollback transaksi ikut membatalkan
// increment, jadi urutan tidak pernah berlubang.
func (s *SequenceService) Allocate(tx *gorm.DB, jenisID, klasifikasiID uint) (*AllocationResult, error) {
	tahun := s.clock.Now().Year()

	counter := models.NomorCounter{
		JenisID:       jenisID,
		KlasifikasiID: klasifikasiID,
		Tahun:         tahun,
		NomorTerakhir: 1,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "jenis_id"}, {Name: "klasifikasi_id"}, {Name: "tahun"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"nomor_terakhir": gorm.Expr("nomor_terakhir + 1"),
		}),
	}).Create(&counter).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocationFailed, err)
	}

	// Validasi referensi setelah lock counter dipegang.
	var jenis models.JenisSurat
	if err := tx.Where("id = ? AND aktif = ?", jenisID, true).First(&jenis).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: jenis surat %d", ErrNotFound, jenisID)
		}
		return nil, fmt.Errorf("%w: %v", ErrAllocationFailed, err)
	}
	var klasifikasi models.KlasifikasiSurat
	if err := tx.Where("id = ? AND aktif = ?", klasifikasiID, true).First(&klasifikasi).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: klasifikasi surat %d", ErrNotFound, klasifikasiID)
		}
		return nil, fmt.Errorf("%w: %v", ErrAllocationFailed, err)
	}

	// Create tidak mengembalikan nilai hasil increment saat conflict;
	// baca ulang baris counter di transaksi yang sama.
	if err := tx.Where("jenis_id = ? AND klasifikasi_id = ? AND tahun = ?",
		jenisID, klasifikasiID, tahun).First(&counter).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocationFailed, err)
	}

	return &AllocationResult{
		NomorUrut:  counter.NomorTerakhir,
		NomorSurat: FormatNomorSurat(counter.NomorTerakhir, jenis.Kode, klasifikasi.Kode, tahun),
		Tahun:      tahun,
	}, nil
}

// FormatNomorSurat merangkai nomor surat sesuai template instansi:
// <urut>/<kode jenis>/<kode klasifikasi>/<tahun>.
func FormatNomorSurat(nomorUrut int, kodeJenis, kodeKlasifikasi string, tahun int) string {
	return fmt.Sprintf("%d/%s/%s/%d", nomorUrut, kodeJenis, kodeKlasifikasi, tahun)
}
