package handlers

import (
	letterdto "github.com/Ahadan1/SIPAS-Public-sub000/dto/letters"
	"github.com/Ahadan1/SIPAS-Public-sub000/middleware"
	"github.com/Ahadan1/SIPAS-Public-sub000/models"
	"github.com/Ahadan1/SIPAS-Public-sub000/utils"
	"github.com/Ahadan1/SIPAS-Public-sub000/utils/events"

	"github.com/gofiber/fiber/v2"
)

func arsipJenisFromPath(c *fiber.Ctx) (models.JenisArsip, bool) {
	jenis := models.JenisArsip(c.Params("jenis"))
	return jenis, jenis.IsValid()
}

// ArchiveSurat - Masukkan surat ke indeks arsip; idempotent bila sudah ada
func ArchiveSurat(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}
	if ok, err := permissionSvc().CanUserArsip(user); err != nil || !ok {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "you cannot archive letters", nil)
	}

	jenis, ok := arsipJenisFromPath(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "jenis must be surat_masuk or surat_keluar", nil)
	}

	suratID, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	var req letterdto.ArchiveRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	arsip, err := arsipSvc().Archive(jenis, suratID, req.UnitKode, user.ID)
	if err != nil {
		return serviceError(c, err)
	}

	events.Publish(events.SuratEvent{
		Type:    events.StatusBerubah,
		SuratID: suratID,
		Status:  statusArsipFor(jenis),
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, "surat archived", letterdto.NewArsipResponse(arsip))
}

func statusArsipFor(jenis models.JenisArsip) string {
	if jenis == models.ArsipSuratMasuk {
		return string(models.MasukDiarsipkan)
	}
	return string(models.KeluarDiarsipkan)
}

// UnarchiveSurat - Lepas surat dari arsip dan pulihkan status sebelumnya
func UnarchiveSurat(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}
	if ok, err := permissionSvc().CanUserArsip(user); err != nil || !ok {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "you cannot unarchive letters", nil)
	}

	jenis, ok := arsipJenisFromPath(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "jenis must be surat_masuk or surat_keluar", nil)
	}

	suratID, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	existed, err := arsipSvc().Unarchive(jenis, suratID)
	if err != nil {
		return serviceError(c, err)
	}
	if !existed {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "surat is not archived", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "surat unarchived", nil)
}

func ListArsip(c *fiber.Ctx) error {
	jenis := models.JenisArsip(c.Query("jenis", ""))
	if jenis != "" && !jenis.IsValid() {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "jenis must be surat_masuk or surat_keluar", nil)
	}

	list, err := arsipSvc().List(jenis)
	if err != nil {
		return serviceError(c, err)
	}

	responses := make([]letterdto.ArsipResponse, 0, len(list))
	for i := range list {
		responses = append(responses, letterdto.NewArsipResponse(&list[i]))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "arsip retrieved", responses)
}
