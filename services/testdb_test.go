package services

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub000/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func migrateAll(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.AutoMigrate(
		&models.User{},
		&models.JenisSurat{},
		&models.KlasifikasiSurat{},
		&models.Penandatangan{},
		&models.NomorCounter{},
		&models.SuratMasuk{},
		&models.SuratKeluar{},
		&models.Disposisi{},
		&models.LembarPantau{},
		&models.Arsip{},
	)
	if err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// :memory: per koneksi adalah database terpisah; paksa satu koneksi.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	migrateAll(t, db)
	return db
}

// newFileTestDB - Database file sementara dengan WAL untuk uji beban paralel;
// :memory: satu koneksi tidak bisa dipakai menguji alokasi bersamaan.
func newFileTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "sipas_test.db") +
		"?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite file: %v", err)
	}

	migrateAll(t, db)
	return db
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newFakeClock(year int) *fakeClock {
	return &fakeClock{now: time.Date(year, time.March, 10, 9, 0, 0, 0, time.UTC)}
}

func seedRefs(t *testing.T, db *gorm.DB) (jenis models.JenisSurat, klasifikasi models.KlasifikasiSurat, ttd models.Penandatangan) {
	t.Helper()

	jenis = models.JenisSurat{Kode: "SK", Nama: "Surat Keputusan", Aktif: true}
	if err := db.Create(&jenis).Error; err != nil {
		t.Fatalf("seed jenis: %v", err)
	}
	klasifikasi = models.KlasifikasiSurat{Kode: "KU.001", Nama: "Keuangan", Aktif: true}
	if err := db.Create(&klasifikasi).Error; err != nil {
		t.Fatalf("seed klasifikasi: %v", err)
	}
	ttd = models.Penandatangan{Kode: "KADIS", Nama: "Kepala Dinas", Jabatan: "Kepala Dinas", Aktif: true}
	if err := db.Create(&ttd).Error; err != nil {
		t.Fatalf("seed penandatangan: %v", err)
	}
	return jenis, klasifikasi, ttd
}

var seedUserSeq int

func seedUser(t *testing.T, db *gorm.DB, role models.Role) models.User {
	t.Helper()
	seedUserSeq++
	user := models.User{
		Username:     fmt.Sprintf("user%d", seedUserSeq),
		Email:        fmt.Sprintf("user%d@sipas.test", seedUserSeq),
		PasswordHash: "x",
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedSuratMasuk(t *testing.T, db *gorm.DB, dicatatOleh uint) models.SuratMasuk {
	t.Helper()
	surat := models.SuratMasuk{
		NomorSurat:    "005/EXT/2024",
		AsalSurat:     "Dinas Pendidikan",
		Perihal:       "Undangan rapat koordinasi",
		Status:        models.MasukDiterima,
		DicatatOlehID: dicatatOleh,
	}
	if err := db.Create(&surat).Error; err != nil {
		t.Fatalf("seed surat masuk: %v", err)
	}
	return surat
}
