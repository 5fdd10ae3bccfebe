package handlers

import (
	letterdto "github.com/Ahadan1/SIPAS-Public-sub000/dto/letters"
	"github.com/Ahadan1/SIPAS-Public-sub000/middleware"
	"github.com/Ahadan1/SIPAS-Public-sub000/models"
	"github.com/Ahadan1/SIPAS-Public-sub000/utils"
	"github.com/Ahadan1/SIPAS-Public-sub000/utils/events"

	"github.com/gofiber/fiber/v2"
)

// RouteDisposisi - Pimpinan mendisposisikan surat masuk ke satu atau lebih
// penerima sekaligus; tiap penerima mendapat entri independen
func RouteDisposisi(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	suratID, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	var req letterdto.RouteDisposisiRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	surat, err := suratMasukSvc().GetByID(suratID)
	if err != nil {
		return serviceError(c, err)
	}
	if ok, err := permissionSvc().CanUserDisposisi(user, surat); err != nil || !ok {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "only pimpinan can route dispositions", nil)
	}

	svc := disposisiSvc()
	created := make([]letterdto.DisposisiResponse, 0, len(req.KepadaIDs))
	for _, kepadaID := range req.KepadaIDs {
		entri, err := svc.Route(suratID, user.ID, kepadaID, req.Catatan)
		if err != nil {
			return serviceError(c, err)
		}
		created = append(created, letterdto.NewDisposisiResponse(entri))

		events.Publish(events.SuratEvent{
			Type:       events.DisposisiDibuat,
			SuratID:    suratID,
			NomorSurat: surat.NomorSurat,
			Perihal:    surat.Perihal,
			Status:     string(models.MasukDisposisi),
			KepadaID:   kepadaID,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "disposisi routed", created)
}

// DecideDisposisi - Penerima menerima atau menolak disposisi yang ditujukan
// kepadanya
func DecideDisposisi(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	id, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	var req letterdto.DecideDisposisiRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	svc := disposisiSvc()
	entri, err := svc.GetByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	if ok, err := permissionSvc().CanUserPutusDisposisi(user, entri); err != nil || !ok {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "only the addressed recipient can decide", nil)
	}

	entri, err = svc.Decide(id, user.ID, models.StatusDisposisi(req.Status), req.Catatan)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "disposisi decided", letterdto.NewDisposisiResponse(entri))
}

func ListDisposisiForSurat(c *fiber.Ctx) error {
	suratID, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	list, err := disposisiSvc().ListForSurat(suratID)
	if err != nil {
		return serviceError(c, err)
	}

	responses := make([]letterdto.DisposisiResponse, 0, len(list))
	for i := range list {
		responses = append(responses, letterdto.NewDisposisiResponse(&list[i]))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "disposisi retrieved", responses)
}

// ListDisposisiSaya - Kotak masuk disposisi milik user yang sedang login
func ListDisposisiSaya(c *fiber.Ctx) error {
	user, err := middleware.GetUserFromContext(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	list, err := disposisiSvc().ListForPenerima(user.ID)
	if err != nil {
		return serviceError(c, err)
	}

	responses := make([]letterdto.DisposisiResponse, 0, len(list))
	for i := range list {
		responses = append(responses, letterdto.NewDisposisiResponse(&list[i]))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "disposisi retrieved", responses)
}
