package handlers

import (
	letterdto "github.com/Ahadan1/SIPAS-Public-sub000/dto/letters"
	"github.com/Ahadan1/SIPAS-Public-sub000/middleware"
	"github.com/Ahadan1/SIPAS-Public-sub000/models"
	"github.com/Ahadan1/SIPAS-Public-sub000/utils"
	"github.com/Ahadan1/SIPAS-Public-sub000/utils/events"

	"github.com/gofiber/fiber/v2"
)

// CreateSuratKeluar - Pembuatan surat keluar; nomor dialokasikan atomik
// kecuali pemohon memasok nomor lama secara manual
func CreateSuratKeluar(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	if ok, err := permissionSvc().CanUserCatatSurat(user); err != nil || !ok {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "only tata usaha can create outgoing letters", nil)
	}

	var req letterdto.CreateSuratKeluarRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	surat := req.ToModel(user.ID)
	surat.FilePath = c.FormValue("file_path")

	if err := suratKeluarSvc().Create(surat, req.PenerimaIDs); err != nil {
		return serviceError(c, err)
	}

	events.Publish(events.SuratEvent{
		Type:       events.SuratKeluarDibuat,
		SuratID:    surat.ID,
		NomorSurat: surat.NomorSurat,
		Perihal:    surat.Perihal,
		Status:     string(surat.Status),
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, "surat keluar created", letterdto.NewSuratKeluarResponse(surat))
}

func GetSuratKeluar(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	surat, err := suratKeluarSvc().GetByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "surat keluar retrieved", letterdto.NewSuratKeluarResponse(surat))
}

func ListSuratKeluar(c *fiber.Ctx) error {
	status := models.StatusSuratKeluar(c.Query("status", ""))

	list, err := suratKeluarSvc().List(status)
	if err != nil {
		return serviceError(c, err)
	}

	responses := make([]letterdto.SuratKeluarResponse, 0, len(list))
	for i := range list {
		responses = append(responses, letterdto.NewSuratKeluarResponse(&list[i]))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "surat keluar retrieved", responses)
}

func UpdateSuratKeluar(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	var req letterdto.UpdateSuratKeluarRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	surat, err := suratKeluarSvc().Update(id, req.ApplyUpdate)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "surat keluar updated", letterdto.NewSuratKeluarResponse(surat))
}

// SyncSuratKeluarPenerima - Ganti seluruh daftar penerima tembusan
func SyncSuratKeluarPenerima(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	var req letterdto.SyncPenerimaRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	surat, err := suratKeluarSvc().SyncPenerima(id, req.PenerimaIDs)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "penerima updated", letterdto.NewSuratKeluarResponse(surat))
}

func KirimSuratKeluar(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	surat, err := suratKeluarSvc().Kirim(id)
	if err != nil {
		return serviceError(c, err)
	}

	events.Publish(events.SuratEvent{
		Type:       events.StatusBerubah,
		SuratID:    surat.ID,
		NomorSurat: surat.NomorSurat,
		Status:     string(surat.Status),
		OldStatus:  string(models.KeluarDraft),
	})

	return utils.SuccessResponse(c, fiber.StatusOK, "surat keluar sent", letterdto.NewSuratKeluarResponse(surat))
}

func DeleteSuratKeluar(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	if err := suratKeluarSvc().Delete(id); err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "surat keluar deleted", nil)
}
