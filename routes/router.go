package routes

import (
	"github.com/Ahadan1/SIPAS-Public-sub000/handlers"
	"github.com/Ahadan1/SIPAS-Public-sub000/middleware"
	"github.com/Ahadan1/SIPAS-Public-sub000/models"

	"github.com/gofiber/fiber/v2"
)

func Register(app *fiber.App) {
	api := app.Group("/api")

	// Auth
	api.Post("/auth/login", handlers.Login)
	api.Post("/auth/refresh", handlers.RefreshToken)
	api.Post("/auth/logout", handlers.Logout)
	api.Post("/auth/forgot-password", handlers.RequestPasswordReset)
	api.Post("/auth/reset-password", handlers.SubmitPasswordReset)

	// Profil & pengaturan akun
	me := api.Group("/me", middleware.RequireAuth())
	me.Get("/", handlers.GetProfile)
	me.Put("/", handlers.UpdateProfile)
	me.Put("/password", handlers.ChangePassword)

	// File upload (lampiran surat)
	api.Post("/files", middleware.RequireAuth(), middleware.RequireTataUsaha(), handlers.UploadFileHandler)

	// Surat Masuk
	masuk := api.Group("/surat-masuk", middleware.RequireAuth())
	masuk.Post("/", middleware.RequireTataUsaha(), handlers.CreateSuratMasuk)
	masuk.Get("/", handlers.ListSuratMasuk)
	masuk.Get("/:id", handlers.GetSuratMasuk)
	masuk.Put("/:id", middleware.RequireTataUsaha(), handlers.UpdateSuratMasuk)
	masuk.Delete("/:id", middleware.RequireTataUsaha(), handlers.DeleteSuratMasuk)
	masuk.Post("/:id/read", handlers.MarkSuratMasukRead)
	masuk.Post("/:id/unread", handlers.MarkSuratMasukUnread)

	// Disposisi atas surat masuk
	masuk.Post("/:id/disposisi", middleware.RequirePimpinan(), handlers.RouteDisposisi)
	masuk.Get("/:id/disposisi", handlers.ListDisposisiForSurat)

	disposisi := api.Group("/disposisi", middleware.RequireAuth())
	disposisi.Get("/saya", handlers.ListDisposisiSaya)
	disposisi.Post("/:id/putusan", handlers.DecideDisposisi)

	// Surat Keluar
	keluar := api.Group("/surat-keluar", middleware.RequireAuth())
	keluar.Post("/", middleware.RequireTataUsaha(), handlers.CreateSuratKeluar)
	keluar.Get("/", handlers.ListSuratKeluar)
	keluar.Get("/:id", handlers.GetSuratKeluar)
	keluar.Put("/:id", middleware.RequireTataUsaha(), handlers.UpdateSuratKeluar)
	keluar.Delete("/:id", middleware.RequireTataUsaha(), handlers.DeleteSuratKeluar)
	keluar.Put("/:id/penerima", middleware.RequireTataUsaha(), handlers.SyncSuratKeluarPenerima)
	keluar.Post("/:id/kirim", middleware.RequireTataUsaha(), handlers.KirimSuratKeluar)

	// Lembar pantau surat keluar
	keluar.Post("/:id/lembar-pantau", middleware.RequireTataUsaha(), handlers.AppendLembarPantau)
	keluar.Get("/:id/lembar-pantau", handlers.ListLembarPantau)

	pantau := api.Group("/lembar-pantau", middleware.RequireAuth(), middleware.RequireTataUsaha())
	pantau.Put("/:id", handlers.UpdateLembarPantau)
	pantau.Delete("/:id", handlers.DeleteLembarPantau)

	// Arsip
	arsip := api.Group("/arsip", middleware.RequireAuth())
	arsip.Get("/", handlers.ListArsip) // ?jenis=surat_masuk|surat_keluar
	arsipTulis := middleware.AuthorizeRoles(models.RoleTataUsaha, models.RolePimpinan, models.RoleAdmin)
	arsip.Post("/:jenis/:id", arsipTulis, handlers.ArchiveSurat)
	arsip.Delete("/:jenis/:id", arsipTulis, handlers.UnarchiveSurat)

	// Referensi penomoran
	ref := api.Group("/referensi", middleware.RequireAuth())
	ref.Get("/jenis-surat", handlers.ListJenisSurat)
	ref.Get("/klasifikasi", handlers.ListKlasifikasiSurat)
	ref.Get("/penandatangan", handlers.ListPenandatangan)

	refAdmin := ref.Group("/", middleware.RequireTataUsaha())
	refAdmin.Post("/jenis-surat", handlers.CreateJenisSurat)
	refAdmin.Put("/jenis-surat/:id", handlers.UpdateJenisSurat)
	refAdmin.Post("/klasifikasi", handlers.CreateKlasifikasiSurat)
	refAdmin.Put("/klasifikasi/:id", handlers.UpdateKlasifikasiSurat)
	refAdmin.Post("/penandatangan", handlers.CreatePenandatangan)
	refAdmin.Put("/penandatangan/:id", handlers.UpdatePenandatangan)

	// ----- ADMIN USERS CRUD -----
	admin := api.Group("/admin", middleware.RequireAuth(), middleware.RequireAdmin())
	admin.Post("/users", handlers.AdminCreateUser)
	admin.Get("/users", handlers.AdminListUsers) // ?page=&limit=&role=&q=
	admin.Get("/users/:id", handlers.AdminGetUserByID)
	admin.Put("/users/:id", handlers.AdminUpdateUser)
	admin.Delete("/users/:id", handlers.AdminDeleteUser)
}
