package main

import (
	"log"

	"github.com/Ahadan1/SIPAS-Public-sub000/config"
	"github.com/Ahadan1/SIPAS-Public-sub000/models"
)

func main() {
	db := config.ConnectDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.PasswordResetToken{},
		&models.JenisSurat{},
		&models.KlasifikasiSurat{},
		&models.Penandatangan{},
		&models.NomorCounter{},
		&models.SuratMasuk{},
		&models.SuratKeluar{},
		&models.Disposisi{},
		&models.LembarPantau{},
		&models.Arsip{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("✅ Migration completed")
}
