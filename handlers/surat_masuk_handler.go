package handlers

import (
	"strconv"

	letterdto "github.com/Ahadan1/SIPAS-Public-sub000/dto/letters"
	"github.com/Ahadan1/SIPAS-Public-sub000/middleware"
	"github.com/Ahadan1/SIPAS-Public-sub000/models"
	"github.com/Ahadan1/SIPAS-Public-sub000/utils"
	"github.com/Ahadan1/SIPAS-Public-sub000/utils/events"

	"github.com/gofiber/fiber/v2"
)

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// CreateSuratMasuk - Pencatatan surat masuk oleh Tata Usaha
func CreateSuratMasuk(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	// 1. Cek wewenang pencatatan
	if ok, err := permissionSvc().CanUserCatatSurat(user); err != nil || !ok {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "only tata usaha can record incoming letters", nil)
	}

	// 2. Parse + validasi request
	var req letterdto.CreateSuratMasukRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	surat := req.ToModel(user.ID)

	// 3. File lampiran opsional, path hasil upload terpisah
	surat.FilePath = c.FormValue("file_path")

	// 4. Simpan
	if err := suratMasukSvc().Create(surat); err != nil {
		return serviceError(c, err)
	}

	// 5. Publikasikan event untuk notifier
	ev := events.SuratEvent{
		Type:       events.SuratMasukDicatat,
		SuratID:    surat.ID,
		NomorSurat: surat.NomorSurat,
		Perihal:    surat.Perihal,
		Status:     string(surat.Status),
	}
	if surat.KepadaID != nil {
		ev.KepadaID = *surat.KepadaID
	}
	events.Publish(ev)

	return utils.SuccessResponse(c, fiber.StatusCreated, "surat masuk recorded", letterdto.NewSuratMasukResponse(surat))
}

func GetSuratMasuk(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	id, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	surat, err := suratMasukSvc().GetByID(id)
	if err != nil {
		return serviceError(c, err)
	}

	if ok, err := permissionSvc().CanUserLihatSuratMasuk(user, surat); err != nil || !ok {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "you cannot view this letter", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "surat masuk retrieved", letterdto.NewSuratMasukResponse(surat))
}

func ListSuratMasuk(c *fiber.Ctx) error {
	status := models.StatusSuratMasuk(c.Query("status", ""))

	list, err := suratMasukSvc().List(status)
	if err != nil {
		return serviceError(c, err)
	}

	responses := make([]letterdto.SuratMasukResponse, 0, len(list))
	for i := range list {
		responses = append(responses, letterdto.NewSuratMasukResponse(&list[i]))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "surat masuk retrieved", responses)
}

func UpdateSuratMasuk(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	var req letterdto.UpdateSuratMasukRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	surat, err := suratMasukSvc().Update(id, req.ApplyUpdate)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "surat masuk updated", letterdto.NewSuratMasukResponse(surat))
}

// MarkSuratMasukRead - Jejak baca pertama; idempotent untuk pembacaan ulang
func MarkSuratMasukRead(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	id, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	surat, err := suratMasukSvc().MarkRead(id, user.ID)
	if err != nil {
		return serviceError(c, err)
	}

	events.Publish(events.SuratEvent{
		Type:       events.StatusBerubah,
		SuratID:    surat.ID,
		NomorSurat: surat.NomorSurat,
		Status:     string(surat.Status),
		OldStatus:  string(models.MasukDiterima),
	})

	return utils.SuccessResponse(c, fiber.StatusOK, "surat masuk marked as read", letterdto.NewSuratMasukResponse(surat))
}

func MarkSuratMasukUnread(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	surat, err := suratMasukSvc().MarkUnread(id)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "surat masuk marked as unread", letterdto.NewSuratMasukResponse(surat))
}

func DeleteSuratMasuk(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	if err := suratMasukSvc().Delete(id); err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "surat masuk deleted", nil)
}
