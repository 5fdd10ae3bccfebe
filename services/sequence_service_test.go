package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/Ahadan1/SIPAS-Public-sub000/models"

	"gorm.io/gorm"
)

func allocate(t *testing.T, db *gorm.DB, seq *SequenceService, jenisID, klasifikasiID uint) *AllocationResult {
	t.Helper()
	var out *AllocationResult
	err := db.Transaction(func(tx *gorm.DB) error {
		res, err := seq.Allocate(tx, jenisID, klasifikasiID)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	return out
}

func TestAllocateSequenceStartsAtOne(t *testing.T) {
	db := newTestDB(t)
	jenis, klasifikasi, _ := seedRefs(t, db)
	seq := NewSequenceService(db, newFakeClock(2024))

	for want := 1; want <= 3; want++ {
		res := allocate(t, db, seq, jenis.ID, klasifikasi.ID)
		if res.NomorUrut != want {
			t.Fatalf("nomor urut = %d, want %d", res.NomorUrut, want)
		}
	}
}

func TestAllocateFormatsNomorSurat(t *testing.T) {
	db := newTestDB(t)
	jenis, klasifikasi, _ := seedRefs(t, db)
	seq := NewSequenceService(db, newFakeClock(2024))

	want := []string{"1/SK/KU.001/2024", "2/SK/KU.001/2024", "3/SK/KU.001/2024"}
	for _, w := range want {
		res := allocate(t, db, seq, jenis.ID, klasifikasi.ID)
		if res.NomorSurat != w {
			t.Fatalf("nomor surat = %q, want %q", res.NomorSurat, w)
		}
	}
}

func TestAllocateCountersIndependentPerKlasifikasi(t *testing.T) {
	db := newTestDB(t)
	jenis, klasifikasi, _ := seedRefs(t, db)
	lain := models.KlasifikasiSurat{Kode: "HK.002", Nama: "Hukum", Aktif: true}
	if err := db.Create(&lain).Error; err != nil {
		t.Fatalf("seed klasifikasi kedua: %v", err)
	}
	seq := NewSequenceService(db, newFakeClock(2024))

	allocate(t, db, seq, jenis.ID, klasifikasi.ID)
	allocate(t, db, seq, jenis.ID, klasifikasi.ID)
	allocate(t, db, seq, jenis.ID, klasifikasi.ID)

	res := allocate(t, db, seq, jenis.ID, lain.ID)
	if res.NomorUrut != 1 {
		t.Fatalf("klasifikasi lain harus mulai dari 1, dapat %d", res.NomorUrut)
	}
}

func TestAllocateResetsEachYear(t *testing.T) {
	db := newTestDB(t)
	jenis, klasifikasi, _ := seedRefs(t, db)
	clock := newFakeClock(2024)
	seq := NewSequenceService(db, clock)

	allocate(t, db, seq, jenis.ID, klasifikasi.ID)
	allocate(t, db, seq, jenis.ID, klasifikasi.ID)

	clock.now = clock.now.AddDate(1, 0, 0)
	res := allocate(t, db, seq, jenis.ID, klasifikasi.ID)
	if res.NomorUrut != 1 {
		t.Fatalf("tahun baru harus mulai dari 1, dapat %d", res.NomorUrut)
	}
	if res.NomorSurat != "1/SK/KU.001/2025" {
		t.Fatalf("nomor surat = %q", res.NomorSurat)
	}
}

func TestAllocateUnknownRefsNotFound(t *testing.T) {
	db := newTestDB(t)
	jenis, klasifikasi, _ := seedRefs(t, db)
	seq := NewSequenceService(db, newFakeClock(2024))

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := seq.Allocate(tx, 9999, klasifikasi.ID)
		return err
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("jenis tak dikenal: err = %v, want ErrNotFound", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		_, err := seq.Allocate(tx, jenis.ID, 9999)
		return err
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("klasifikasi tak dikenal: err = %v, want ErrNotFound", err)
	}
}

func TestAllocateInactiveRefNotFound(t *testing.T) {
	db := newTestDB(t)
	jenis, klasifikasi, _ := seedRefs(t, db)
	if err := db.Model(&jenis).Update("aktif", false).Error; err != nil {
		t.Fatalf("nonaktifkan jenis: %v", err)
	}
	seq := NewSequenceService(db, newFakeClock(2024))

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := seq.Allocate(tx, jenis.ID, klasifikasi.ID)
		return err
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("jenis nonaktif: err = %v, want ErrNotFound", err)
	}
}

func TestAllocateRollbackLeavesNoGap(t *testing.T) {
	db := newTestDB(t)
	jenis, klasifikasi, _ := seedRefs(t, db)
	seq := NewSequenceService(db, newFakeClock(2024))

	allocate(t, db, seq, jenis.ID, klasifikasi.ID)

	sengaja := errors.New("batal")
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := seq.Allocate(tx, jenis.ID, klasifikasi.ID); err != nil {
			return err
		}
		return sengaja
	})
	if !errors.Is(err, sengaja) {
		t.Fatalf("unexpected error: %v", err)
	}

	res := allocate(t, db, seq, jenis.ID, klasifikasi.ID)
	if res.NomorUrut != 2 {
		t.Fatalf("setelah rollback nomor berikutnya harus 2, dapat %d", res.NomorUrut)
	}
}

func TestAllocateConcurrentNoDuplicatesNoGaps(t *testing.T) {
	db := newFileTestDB(t)
	jenis, klasifikasi, _ := seedRefs(t, db)
	seq := NewSequenceService(db, newFakeClock(2024))

	const workers = 8
	const perWorker = 5

	results := make(chan int, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				err := db.Transaction(func(tx *gorm.DB) error {
					res, err := seq.Allocate(tx, jenis.ID, klasifikasi.ID)
					if err != nil {
						return err
					}
					results <- res.NomorUrut
					return nil
				})
				if err != nil {
					t.Errorf("allocate paralel: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int]bool)
	for n := range results {
		if seen[n] {
			t.Fatalf("nomor urut %d keluar dua kali", n)
		}
		seen[n] = true
	}
	if len(seen) != workers*perWorker {
		t.Fatalf("jumlah nomor = %d, want %d", len(seen), workers*perWorker)
	}
	for n := 1; n <= workers*perWorker; n++ {
		if !seen[n] {
			t.Fatalf("urutan berlubang: %d tidak pernah keluar", n)
		}
	}
}
