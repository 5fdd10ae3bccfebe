package letters

import "testing"

func TestCreateSuratMasukRequestValidate(t *testing.T) {
	req := CreateSuratMasukRequest{
		NomorSurat:   "005/EXT/2024",
		AsalSurat:    "Dinas Pendidikan",
		Perihal:      "Undangan rapat",
		TanggalSurat: "2024-03-01",
	}
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("expected valid request, got %v", errs)
	}

	empty := CreateSuratMasukRequest{TanggalSurat: "01-03-2024"}
	errs := empty.Validate()
	for _, field := range []string{"nomor_surat", "asal_surat", "perihal", "tanggal_surat"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestCreateSuratKeluarRequestValidate(t *testing.T) {
	req := CreateSuratKeluarRequest{
		JenisID:         1,
		KlasifikasiID:   2,
		PenandatanganID: 3,
		Perihal:         "Permohonan data",
	}
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("expected valid request, got %v", errs)
	}

	// Nomor surat boleh kosong (alokasi otomatis) maupun diisi manual
	req.NomorSurat = "12/SK/KU.001/2020"
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("manual nomor_surat should be allowed, got %v", errs)
	}

	req.TanggalCatat = "05-01-2024"
	if errs := req.Validate(); len(errs) == 0 {
		t.Fatalf("malformed tanggal_catat should be rejected")
	}

	req.TanggalCatat = "2024-01-05"
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("valid tanggal_catat rejected: %v", errs)
	}
	m := req.ToModel(3)
	if m.TanggalCatat == nil || m.TanggalCatat.Format("2006-01-02") != "2024-01-05" {
		t.Fatalf("tanggal_catat not mapped: %v", m.TanggalCatat)
	}

	missing := CreateSuratKeluarRequest{}
	errs := missing.Validate()
	for _, field := range []string{"jenis_id", "klasifikasi_id", "penandatangan_id", "perihal"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestDecideDisposisiRequestValidate(t *testing.T) {
	for _, status := range []string{"diterima", "ditolak"} {
		req := DecideDisposisiRequest{Status: status}
		if errs := req.Validate(); len(errs) != 0 {
			t.Errorf("status %s should be valid, got %v", status, errs)
		}
	}
	for _, status := range []string{"", "dikirim", "selesai"} {
		req := DecideDisposisiRequest{Status: status}
		if errs := req.Validate(); len(errs) == 0 {
			t.Errorf("status %q should be rejected", status)
		}
	}
}

func TestUpdateSuratMasukApplyUpdatePartial(t *testing.T) {
	perihal := "Perihal baru"
	tanggal := "2024-05-20"
	req := UpdateSuratMasukRequest{Perihal: &perihal, TanggalSurat: &tanggal}
	if errs := req.Validate(); len(errs) != 0 {
		t.Fatalf("expected valid request, got %v", errs)
	}

	create := CreateSuratMasukRequest{
		NomorSurat: "001/EXT/2024",
		AsalSurat:  "Kecamatan",
		Perihal:    "Perihal lama",
	}
	m := create.ToModel(7)
	req.ApplyUpdate(m)

	if m.Perihal != "Perihal baru" {
		t.Errorf("perihal not applied: %s", m.Perihal)
	}
	if m.AsalSurat != "Kecamatan" {
		t.Errorf("asal_surat should be untouched: %s", m.AsalSurat)
	}
	if m.TanggalSurat == nil || m.TanggalSurat.Format("2006-01-02") != "2024-05-20" {
		t.Errorf("tanggal_surat not applied: %v", m.TanggalSurat)
	}
	if m.DicatatOlehID != 7 {
		t.Errorf("dicatat_oleh_id = %d", m.DicatatOlehID)
	}
}
