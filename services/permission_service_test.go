package services

import (
	"errors"
	"testing"

	"github.com/Ahadan1/SIPAS-Public-sub000/models"
)

func TestCanUserPutusDisposisi(t *testing.T) {
	db := newTestDB(t)
	tu := seedUser(t, db, models.RoleTataUsaha)
	pimpinan := seedUser(t, db, models.RolePimpinan)
	penerima := seedUser(t, db, models.RolePegawai)
	lain := seedUser(t, db, models.RolePegawai)
	surat := seedSuratMasuk(t, db, tu.ID)

	entri, err := NewDisposisiService(db).Route(surat.ID, pimpinan.ID, penerima.ID, "segera")
	if err != nil {
		t.Fatalf("Route: %v", err)
	}

	ps := NewPermissionService(db)

	ok, err := ps.CanUserPutusDisposisi(&penerima, entri)
	if err != nil || !ok {
		t.Fatalf("penerima yang dituju: ok=%v err=%v", ok, err)
	}

	ok, err = ps.CanUserPutusDisposisi(&lain, entri)
	if err != nil {
		t.Fatalf("pegawai lain: %v", err)
	}
	if ok {
		t.Fatal("pegawai lain tidak boleh memutus disposisi orang")
	}

	if _, err := ps.CanUserPutusDisposisi(nil, entri); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("user nil: err = %v, want ErrUnauthorized", err)
	}
	if _, err := ps.CanUserPutusDisposisi(&penerima, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("entri nil: err = %v, want ErrNotFound", err)
	}
}

func TestCanUserKelolaReferensi(t *testing.T) {
	db := newTestDB(t)
	ps := NewPermissionService(db)

	cases := []struct {
		role models.Role
		want bool
	}{
		{models.RoleTataUsaha, true},
		{models.RoleAdmin, true},
		{models.RolePimpinan, false},
		{models.RolePegawai, false},
	}
	for _, tc := range cases {
		user := seedUser(t, db, tc.role)
		ok, err := ps.CanUserKelolaReferensi(&user)
		if err != nil {
			t.Fatalf("%s: %v", tc.role, err)
		}
		if ok != tc.want {
			t.Fatalf("%s: ok = %v, want %v", tc.role, ok, tc.want)
		}
	}

	if _, err := ps.CanUserKelolaReferensi(nil); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("user nil: err = %v, want ErrUnauthorized", err)
	}
}
