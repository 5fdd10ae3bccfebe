package events

// SuratEventType mendefinisikan jenis event terkait siklus hidup surat
type SuratEventType string

const (
	// SuratMasukDicatat dipublikasikan saat Tata Usaha mencatat surat masuk baru
	SuratMasukDicatat SuratEventType = "SuratMasukDicatat"

	// SuratKeluarDibuat dipublikasikan saat surat keluar berhasil dibuat
	// dan mendapat nomor
	SuratKeluarDibuat SuratEventType = "SuratKeluarDibuat"

	// StatusBerubah dipublikasikan saat status surat berubah
	// (misalnya dari diterima ke dibaca, atau draft ke terkirim)
	StatusBerubah SuratEventType = "StatusBerubah"

	// DisposisiDibuat dipublikasikan saat pimpinan mendisposisikan surat
	DisposisiDibuat SuratEventType = "DisposisiDibuat"
)

// SuratEvent adalah payload event surat. Cukup berisi ID dan string status
// supaya bus tidak memegang referensi ke entity yang mungkin berubah.
type SuratEvent struct {
	Type       SuratEventType
	SuratID    uint
	NomorSurat string
	Perihal    string
	Status     string
	OldStatus  string // hanya relevan untuk StatusBerubah

	// KepadaID diisi untuk DisposisiDibuat (penerima disposisi) atau
	// SuratMasukDicatat (tujuan surat, bila ada)
	KepadaID uint
}

// SuratEventBus adalah channel untuk menangani event surat.
// Channel ini di-buffer untuk mencegah blocking pada handler API
// saat mempublikasikan event.
var SuratEventBus = make(chan SuratEvent, 100)

// Publish mengirim event secara non-blocking; event dibuang bila buffer penuh
func Publish(ev SuratEvent) {
	select {
	case SuratEventBus <- ev:
	default:
	}
}
