package handlers

import (
	"errors"
	"strings"

	"github.com/Ahadan1/SIPAS-Public-sub000/config"
	"github.com/Ahadan1/SIPAS-Public-sub000/middleware"
	"github.com/Ahadan1/SIPAS-Public-sub000/models"
	"github.com/Ahadan1/SIPAS-Public-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Referensi penomoran (jenis surat, klasifikasi, penandatangan) dikelola
// admin/tata usaha lewat CRUD sederhana. Penonaktifan memakai flag aktif,
// bukan hapus, supaya nomor surat lama tetap bisa ditelusuri.

type ReferensiRequest struct {
	Kode    string `json:"kode" form:"kode"`
	Nama    string `json:"nama" form:"nama"`
	Jabatan string `json:"jabatan" form:"jabatan"` // hanya untuk penandatangan
	Aktif   *bool  `json:"aktif" form:"aktif"`
}

func (r *ReferensiRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(r.Kode) == "" {
		errs["kode"] = "kode is required"
	}
	if strings.TrimSpace(r.Nama) == "" {
		errs["nama"] = "nama is required"
	}
	return errs
}

func (r *ReferensiRequest) aktif() bool {
	if r.Aktif == nil {
		return true
	}
	return *r.Aktif
}

func cekKelolaReferensi(c *fiber.Ctx) (bool, error) {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return false, utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}
	if ok, err := permissionSvc().CanUserKelolaReferensi(user); err != nil || !ok {
		return false, utils.ErrorResponse(c, fiber.StatusForbidden, "you cannot manage referensi", nil)
	}
	return true, nil
}

func createReferensi(c *fiber.Ctx, build func(ReferensiRequest) interface{}) error {
	if ok, resp := cekKelolaReferensi(c); !ok {
		return resp
	}

	var req ReferensiRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	entity := build(req)
	if err := config.DB.Create(entity).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "kode already exists", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to create referensi", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "referensi created", entity)
}

func CreateJenisSurat(c *fiber.Ctx) error {
	return createReferensi(c, func(req ReferensiRequest) interface{} {
		return &models.JenisSurat{Kode: strings.TrimSpace(req.Kode), Nama: strings.TrimSpace(req.Nama), Aktif: req.aktif()}
	})
}

func CreateKlasifikasiSurat(c *fiber.Ctx) error {
	return createReferensi(c, func(req ReferensiRequest) interface{} {
		return &models.KlasifikasiSurat{Kode: strings.TrimSpace(req.Kode), Nama: strings.TrimSpace(req.Nama), Aktif: req.aktif()}
	})
}

func CreatePenandatangan(c *fiber.Ctx) error {
	return createReferensi(c, func(req ReferensiRequest) interface{} {
		return &models.Penandatangan{
			Kode:    strings.TrimSpace(req.Kode),
			Nama:    strings.TrimSpace(req.Nama),
			Jabatan: strings.TrimSpace(req.Jabatan),
			Aktif:   req.aktif(),
		}
	})
}

func listReferensi(c *fiber.Ctx, dest interface{}) error {
	q := config.DB.Order("kode ASC")
	if c.Query("aktif") == "true" {
		q = q.Where("aktif = ?", true)
	}
	if err := q.Find(dest).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve referensi", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "referensi retrieved", dest)
}

func ListJenisSurat(c *fiber.Ctx) error {
	var list []models.JenisSurat
	return listReferensi(c, &list)
}

func ListKlasifikasiSurat(c *fiber.Ctx) error {
	var list []models.KlasifikasiSurat
	return listReferensi(c, &list)
}

func ListPenandatangan(c *fiber.Ctx) error {
	var list []models.Penandatangan
	return listReferensi(c, &list)
}

func updateReferensi(c *fiber.Ctx, entity interface{}, apply func(ReferensiRequest)) error {
	if ok, resp := cekKelolaReferensi(c); !ok {
		return resp
	}

	id := c.Params("id")
	if err := config.DB.First(entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "referensi not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to retrieve referensi", err.Error())
	}

	var req ReferensiRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	apply(req)
	if err := config.DB.Save(entity).Error; err != nil {
		if utils.IsDuplicateError(err) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "kode already exists", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update referensi", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "referensi updated", entity)
}

func UpdateJenisSurat(c *fiber.Ctx) error {
	var entity models.JenisSurat
	return updateReferensi(c, &entity, func(req ReferensiRequest) {
		if strings.TrimSpace(req.Kode) != "" {
			entity.Kode = strings.TrimSpace(req.Kode)
		}
		if strings.TrimSpace(req.Nama) != "" {
			entity.Nama = strings.TrimSpace(req.Nama)
		}
		if req.Aktif != nil {
			entity.Aktif = *req.Aktif
		}
	})
}

func UpdateKlasifikasiSurat(c *fiber.Ctx) error {
	var entity models.KlasifikasiSurat
	return updateReferensi(c, &entity, func(req ReferensiRequest) {
		if strings.TrimSpace(req.Kode) != "" {
			entity.Kode = strings.TrimSpace(req.Kode)
		}
		if strings.TrimSpace(req.Nama) != "" {
			entity.Nama = strings.TrimSpace(req.Nama)
		}
		if req.Aktif != nil {
			entity.Aktif = *req.Aktif
		}
	})
}

func UpdatePenandatangan(c *fiber.Ctx) error {
	var entity models.Penandatangan
	return updateReferensi(c, &entity, func(req ReferensiRequest) {
		if strings.TrimSpace(req.Kode) != "" {
			entity.Kode = strings.TrimSpace(req.Kode)
		}
		if strings.TrimSpace(req.Nama) != "" {
			entity.Nama = strings.TrimSpace(req.Nama)
		}
		if strings.TrimSpace(req.Jabatan) != "" {
			entity.Jabatan = strings.TrimSpace(req.Jabatan)
		}
		if req.Aktif != nil {
			entity.Aktif = *req.Aktif
		}
	})
}
