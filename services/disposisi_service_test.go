package services

import (
	"errors"
	"testing"

	"github.com/Ahadan1/SIPAS-Public-sub000/models"
)

func TestRouteSetsParentStatus(t *testing.T) {
	db := newTestDB(t)
	tu := seedUser(t, db, models.RoleTataUsaha)
	pimpinan := seedUser(t, db, models.RolePimpinan)
	pegawai := seedUser(t, db, models.RolePegawai)
	surat := seedSuratMasuk(t, db, tu.ID)

	svc := NewDisposisiService(db)
	entri, err := svc.Route(surat.ID, pimpinan.ID, pegawai.ID, "mohon ditindaklanjuti")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}
	if entri.Status != models.DisposisiDikirim {
		t.Fatalf("status entri = %s", entri.Status)
	}

	var induk models.SuratMasuk
	if err := db.First(&induk, surat.ID).Error; err != nil {
		t.Fatalf("baca surat induk: %v", err)
	}
	if induk.Status != models.MasukDisposisi {
		t.Fatalf("status induk = %s, want disposisi", induk.Status)
	}
}

func TestRouteSecondEntryKeepsStatus(t *testing.T) {
	db := newTestDB(t)
	tu := seedUser(t, db, models.RoleTataUsaha)
	pimpinan := seedUser(t, db, models.RolePimpinan)
	a := seedUser(t, db, models.RolePegawai)
	b := seedUser(t, db, models.RolePegawai)
	surat := seedSuratMasuk(t, db, tu.ID)

	svc := NewDisposisiService(db)
	if _, err := svc.Route(surat.ID, pimpinan.ID, a.ID, "untuk arsip"); err != nil {
		t.Fatalf("Route pertama: %v", err)
	}
	if _, err := svc.Route(surat.ID, pimpinan.ID, b.ID, "untuk dijawab"); err != nil {
		t.Fatalf("Route kedua: %v", err)
	}

	var induk models.SuratMasuk
	db.First(&induk, surat.ID)
	if induk.Status != models.MasukDisposisi {
		t.Fatalf("status induk berubah: %s", induk.Status)
	}

	entri, err := svc.ListForSurat(surat.ID)
	if err != nil {
		t.Fatalf("ListForSurat: %v", err)
	}
	if len(entri) != 2 {
		t.Fatalf("jumlah entri = %d, want 2", len(entri))
	}
}

func TestRouteDuplicateTripleConflict(t *testing.T) {
	db := newTestDB(t)
	tu := seedUser(t, db, models.RoleTataUsaha)
	pimpinan := seedUser(t, db, models.RolePimpinan)
	pegawai := seedUser(t, db, models.RolePegawai)
	surat := seedSuratMasuk(t, db, tu.ID)

	svc := NewDisposisiService(db)
	if _, err := svc.Route(surat.ID, pimpinan.ID, pegawai.ID, "pertama"); err != nil {
		t.Fatalf("Route: %v", err)
	}
	if _, err := svc.Route(surat.ID, pimpinan.ID, pegawai.ID, "kedua"); !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestRouteUnknownSuratNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewDisposisiService(db)

	if _, err := svc.Route(123, 1, 2, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	var n int64
	db.Model(&models.Disposisi{}).Count(&n)
	if n != 0 {
		t.Fatalf("entri yatim tercipta: %d", n)
	}
}

func TestDecideOnlyAddressedRecipient(t *testing.T) {
	db := newTestDB(t)
	tu := seedUser(t, db, models.RoleTataUsaha)
	pimpinan := seedUser(t, db, models.RolePimpinan)
	pegawai := seedUser(t, db, models.RolePegawai)
	lain := seedUser(t, db, models.RolePegawai)
	surat := seedSuratMasuk(t, db, tu.ID)

	svc := NewDisposisiService(db)
	entri, err := svc.Route(surat.ID, pimpinan.ID, pegawai.ID, "periksa")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}

	if _, err := svc.Decide(entri.ID, lain.ID, models.DisposisiDiterima, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}

	got, err := svc.Decide(entri.ID, pegawai.ID, models.DisposisiDiterima, "")
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if got.Status != models.DisposisiDiterima {
		t.Fatalf("status = %s", got.Status)
	}
}

func TestDecideEmptyCatatanPreservesOld(t *testing.T) {
	db := newTestDB(t)
	tu := seedUser(t, db, models.RoleTataUsaha)
	pimpinan := seedUser(t, db, models.RolePimpinan)
	pegawai := seedUser(t, db, models.RolePegawai)
	surat := seedSuratMasuk(t, db, tu.ID)

	svc := NewDisposisiService(db)
	entri, _ := svc.Route(surat.ID, pimpinan.ID, pegawai.ID, "catatan awal")

	got, err := svc.Decide(entri.ID, pegawai.ID, models.DisposisiDitolak, "")
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if got.Catatan != "catatan awal" {
		t.Fatalf("catatan lama hilang: %q", got.Catatan)
	}
}

func TestDecideOverwritesCatatanWhenGiven(t *testing.T) {
	db := newTestDB(t)
	tu := seedUser(t, db, models.RoleTataUsaha)
	pimpinan := seedUser(t, db, models.RolePimpinan)
	pegawai := seedUser(t, db, models.RolePegawai)
	surat := seedSuratMasuk(t, db, tu.ID)

	svc := NewDisposisiService(db)
	entri, _ := svc.Route(surat.ID, pimpinan.ID, pegawai.ID, "catatan awal")

	got, err := svc.Decide(entri.ID, pegawai.ID, models.DisposisiDiterima, "sudah dikerjakan")
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if got.Catatan != "sudah dikerjakan" {
		t.Fatalf("catatan = %q", got.Catatan)
	}
}

func TestDecideTwiceInvalidTransition(t *testing.T) {
	db := newTestDB(t)
	tu := seedUser(t, db, models.RoleTataUsaha)
	pimpinan := seedUser(t, db, models.RolePimpinan)
	pegawai := seedUser(t, db, models.RolePegawai)
	surat := seedSuratMasuk(t, db, tu.ID)

	svc := NewDisposisiService(db)
	entri, _ := svc.Route(surat.ID, pimpinan.ID, pegawai.ID, "")
	if _, err := svc.Decide(entri.ID, pegawai.ID, models.DisposisiDiterima, ""); err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if _, err := svc.Decide(entri.ID, pegawai.ID, models.DisposisiDitolak, ""); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestDecideDoesNotTouchSiblings(t *testing.T) {
	db := newTestDB(t)
	tu := seedUser(t, db, models.RoleTataUsaha)
	pimpinan := seedUser(t, db, models.RolePimpinan)
	a := seedUser(t, db, models.RolePegawai)
	b := seedUser(t, db, models.RolePegawai)
	surat := seedSuratMasuk(t, db, tu.ID)

	svc := NewDisposisiService(db)
	entriA, _ := svc.Route(surat.ID, pimpinan.ID, a.ID, "")
	entriB, _ := svc.Route(surat.ID, pimpinan.ID, b.ID, "")

	if _, err := svc.Decide(entriA.ID, a.ID, models.DisposisiDitolak, ""); err != nil {
		t.Fatalf("Decide: %v", err)
	}

	sisa, err := svc.GetByID(entriB.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if sisa.Status != models.DisposisiDikirim {
		t.Fatalf("entri saudara ikut berubah: %s", sisa.Status)
	}

	var induk models.SuratMasuk
	db.First(&induk, surat.ID)
	if induk.Status != models.MasukDisposisi {
		t.Fatalf("status induk ikut berubah: %s", induk.Status)
	}
}
