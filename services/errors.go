package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrUnauthorized = errors.New("unauthorized: user not authenticated")
	ErrForbidden    = errors.New("forbidden: insufficient permissions")
	ErrNotFound     = errors.New("resource not found")

	// ErrConflict: pelanggaran unik di level database, mis. nomor surat
	// ganda saat commit atau arsip ganda.
	ErrConflict = errors.New("conflict: duplicate record")

	// ErrInvalidTransition: operasi tidak sah untuk status saat ini,
	// mis. memutus disposisi yang sudah diputus.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAllocationFailed: alokasi nomor urut gagal diselesaikan di dalam
	// transaksi. Tidak ada fallback nomor acak; pembuatan surat dibatalkan.
	ErrAllocationFailed = errors.New("sequence allocation failed")
)

func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") || // mysql
		strings.Contains(msg, "unique constraint") // sqlite
}
