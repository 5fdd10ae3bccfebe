package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub000/models"

	"gorm.io/gorm"
)

func newKeluarFixture(t *testing.T) (*SuratKeluarService, *fixtureKeluar) {
	t.Helper()
	db := newTestDB(t)
	jenis, klasifikasi, ttd := seedRefs(t, db)
	tu := seedUser(t, db, models.RoleTataUsaha)
	clock := newFakeClock(2024)
	svc := NewSuratKeluarService(db, NewSequenceService(db, clock), clock)
	return svc, &fixtureKeluar{
		db: db, jenis: jenis, klasifikasi: klasifikasi, ttd: ttd, tu: tu, clock: clock,
	}
}

type fixtureKeluar struct {
	db          *gorm.DB
	jenis       models.JenisSurat
	klasifikasi models.KlasifikasiSurat
	ttd         models.Penandatangan
	tu          models.User
	clock       *fakeClock
}

func (f *fixtureKeluar) surat(perihal string) *models.SuratKeluar {
	catat := f.clock.now
	return &models.SuratKeluar{
		JenisID:         f.jenis.ID,
		KlasifikasiID:   f.klasifikasi.ID,
		PenandatanganID: f.ttd.ID,
		Perihal:         perihal,
		TujuanKepada:    "Sekretariat Daerah",
		TanggalCatat:    &catat,
		DibuatOlehID:    f.tu.ID,
	}
}

func TestCreateSuratKeluarAllocatesNomor(t *testing.T) {
	svc, f := newKeluarFixture(t)

	first := f.surat("Permohonan anggaran")
	if err := svc.Create(first, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.NomorUrut != 1 || first.NomorSurat != "1/SK/KU.001/2024" {
		t.Fatalf("nomor = %d %q", first.NomorUrut, first.NomorSurat)
	}
	if first.Status != models.KeluarDraft {
		t.Fatalf("status awal = %s, want draft", first.Status)
	}

	second := f.surat("Undangan rapat")
	if err := svc.Create(second, nil); err != nil {
		t.Fatalf("Create kedua: %v", err)
	}
	if second.NomorUrut != 2 || second.NomorSurat != "2/SK/KU.001/2024" {
		t.Fatalf("nomor kedua = %d %q", second.NomorUrut, second.NomorSurat)
	}
}

func TestCreateSuratKeluarNomorManualTetapMajukanCounter(t *testing.T) {
	svc, f := newKeluarFixture(t)

	lama := f.surat("Surat migrasi")
	lama.NomorSurat = "017/LEGACY/2019"
	if err := svc.Create(lama, nil); err != nil {
		t.Fatalf("Create nomor manual: %v", err)
	}
	if lama.NomorSurat != "017/LEGACY/2019" {
		t.Fatalf("nomor manual tertimpa: %q", lama.NomorSurat)
	}
	if lama.NomorUrut != 1 {
		t.Fatalf("counter tidak maju: %d", lama.NomorUrut)
	}

	// Alokasi berikutnya melanjutkan counter, bukan mengulang 1.
	berikut := f.surat("Surat biasa")
	if err := svc.Create(berikut, nil); err != nil {
		t.Fatalf("Create berikutnya: %v", err)
	}
	if berikut.NomorUrut != 2 || berikut.NomorSurat != "2/SK/KU.001/2024" {
		t.Fatalf("nomor berikutnya = %d %q", berikut.NomorUrut, berikut.NomorSurat)
	}
}

func TestCreateSuratKeluarNomorManualGandaConflict(t *testing.T) {
	svc, f := newKeluarFixture(t)

	pertama := f.surat("Pertama")
	pertama.NomorSurat = "017/LEGACY/2019"
	if err := svc.Create(pertama, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}

	kedua := f.surat("Kedua")
	kedua.NomorSurat = "017/LEGACY/2019"
	err := svc.Create(kedua, nil)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}

	// Transaksi yang gagal tidak boleh meninggalkan baris setengah jadi
	// ataupun nomor urut yang terlanjur terpakai.
	var suratCount int64
	f.db.Model(&models.SuratKeluar{}).Count(&suratCount)
	if suratCount != 1 {
		t.Fatalf("jumlah surat = %d, want 1", suratCount)
	}
	var counter models.NomorCounter
	if err := f.db.First(&counter).Error; err != nil {
		t.Fatalf("baca counter: %v", err)
	}
	if counter.NomorTerakhir != 1 {
		t.Fatalf("counter ikut maju pada create gagal: %d", counter.NomorTerakhir)
	}
}

func TestCreateSuratKeluarJenisTakDikenal(t *testing.T) {
	svc, f := newKeluarFixture(t)

	surat := f.surat("Perihal")
	surat.JenisID = 9999
	if err := svc.Create(surat, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSyncPenerimaReplacesSet(t *testing.T) {
	db := newTestDB(t)
	jenis, klasifikasi, ttd := seedRefs(t, db)
	tu := seedUser(t, db, models.RoleTataUsaha)
	a := seedUser(t, db, models.RolePegawai)
	b := seedUser(t, db, models.RolePegawai)
	c := seedUser(t, db, models.RolePegawai)

	clock := newFakeClock(2024)
	svc := NewSuratKeluarService(db, NewSequenceService(db, clock), clock)

	catat := clock.now
	surat := &models.SuratKeluar{
		JenisID: jenis.ID, KlasifikasiID: klasifikasi.ID, PenandatanganID: ttd.ID,
		Perihal: "Nota dinas", TanggalCatat: &catat, DibuatOlehID: tu.ID,
	}
	if err := svc.Create(surat, []uint{a.ID, b.ID}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.SyncPenerima(surat.ID, []uint{c.ID})
	if err != nil {
		t.Fatalf("SyncPenerima: %v", err)
	}
	if len(got.Penerima) != 1 || got.Penerima[0].ID != c.ID {
		t.Fatalf("penerima tidak diganti utuh: %+v", got.Penerima)
	}
}

func TestSyncPenerimaUnknownUserNotFound(t *testing.T) {
	svc, f := newKeluarFixture(t)

	surat := f.surat("Nota dinas")
	if err := svc.Create(surat, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.SyncPenerima(surat.ID, []uint{777}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestKirimDanSetArsipSatuArah(t *testing.T) {
	svc, f := newKeluarFixture(t)

	surat := f.surat("Pengantar laporan")
	if err := svc.Create(surat, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Kirim(surat.ID)
	if err != nil {
		t.Fatalf("Kirim: %v", err)
	}
	if got.Status != models.KeluarTerkirim {
		t.Fatalf("status = %s", got.Status)
	}

	// Kirim dua kali tidak sah.
	if _, err := svc.Kirim(surat.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("kirim ulang: err = %v, want ErrInvalidTransition", err)
	}

	got, err = svc.SetArsip(surat.ID)
	if err != nil {
		t.Fatalf("SetArsip: %v", err)
	}
	if got.Status != models.KeluarDiarsipkan {
		t.Fatalf("status = %s", got.Status)
	}

	// SetArsip idempoten, dan tidak bisa dikirim lagi setelahnya.
	if _, err := svc.SetArsip(surat.ID); err != nil {
		t.Fatalf("SetArsip ulang: %v", err)
	}
	if _, err := svc.Kirim(surat.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("kirim setelah arsip: err = %v, want ErrInvalidTransition", err)
	}
}

func TestCreateSuratKeluarConcurrentUniqueNomor(t *testing.T) {
	db := newFileTestDB(t)
	jenis, klasifikasi, ttd := seedRefs(t, db)
	tu := seedUser(t, db, models.RoleTataUsaha)
	clock := newFakeClock(2024)
	svc := NewSuratKeluarService(db, NewSequenceService(db, clock), clock)

	const n = 10
	errCh := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			catat := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
			surat := &models.SuratKeluar{
				JenisID: jenis.ID, KlasifikasiID: klasifikasi.ID, PenandatanganID: ttd.ID,
				Perihal: "Paralel", TanggalCatat: &catat, DibuatOlehID: tu.ID,
			}
			errCh <- svc.Create(surat, nil)
		}()
	}
	for i := 0; i < n; i++ {
		if err := <-errCh; err != nil {
			t.Fatalf("Create paralel: %v", err)
		}
	}

	var suratCount int64
	db.Model(&models.SuratKeluar{}).Count(&suratCount)
	if suratCount != n {
		t.Fatalf("jumlah surat = %d, want %d", suratCount, n)
	}

	var nomor []int
	db.Model(&models.SuratKeluar{}).Order("nomor_urut").Pluck("nomor_urut", &nomor)
	for i, v := range nomor {
		if v != i+1 {
			t.Fatalf("urutan nomor %v: posisi %d berisi %d", nomor, i, v)
		}
	}
}

func TestCreateSuratKeluarMengisiTanggalCatat(t *testing.T) {
	svc, f := newKeluarFixture(t)

	tanpa := f.surat("Tanpa tanggal catat")
	tanpa.TanggalCatat = nil
	if err := svc.Create(tanpa, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tanpa.TanggalCatat == nil || !tanpa.TanggalCatat.Equal(f.clock.now) {
		t.Fatalf("TanggalCatat = %v, want %v", tanpa.TanggalCatat, f.clock.now)
	}

	var tersimpan models.SuratKeluar
	if err := f.db.First(&tersimpan, tanpa.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if tersimpan.TanggalCatat == nil {
		t.Fatalf("tanggal catat tidak tersimpan di database")
	}

	// Tanggal catat yang dipasok caller tidak ditimpa jam sistem
	manual := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	dipasok := f.surat("Dengan tanggal catat")
	dipasok.TanggalCatat = &manual
	if err := svc.Create(dipasok, nil); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !dipasok.TanggalCatat.Equal(manual) {
		t.Fatalf("TanggalCatat = %v, want %v", dipasok.TanggalCatat, manual)
	}
}
