package handlers

import (
	"time"

	letterdto "github.com/Ahadan1/SIPAS-Public-sub000/dto/letters"
	"github.com/Ahadan1/SIPAS-Public-sub000/utils"

	"github.com/gofiber/fiber/v2"
)

// AppendLembarPantau - Tambah baris pantau pada surat keluar
func AppendLembarPantau(c *fiber.Ctx) error {
	suratID, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	var req letterdto.CreateLembarPantauRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	var paraf *time.Time
	if req.TanggalParaf != "" {
		if t, err := time.Parse("2006-01-02", req.TanggalParaf); err == nil {
			paraf = &t
		}
	}

	baris, err := lembarPantauSvc().Append(suratID, req.Jabatan, req.Catatan, paraf)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, "lembar pantau appended", letterdto.NewLembarPantauResponse(baris))
}

func ListLembarPantau(c *fiber.Ctx) error {
	suratID, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	list, err := lembarPantauSvc().ListFor(suratID)
	if err != nil {
		return serviceError(c, err)
	}

	responses := make([]letterdto.LembarPantauResponse, 0, len(list))
	for i := range list {
		responses = append(responses, letterdto.NewLembarPantauResponse(&list[i]))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "lembar pantau retrieved", responses)
}

func UpdateLembarPantau(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	var req letterdto.UpdateLembarPantauRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	var paraf *time.Time
	if req.TanggalParaf != nil && *req.TanggalParaf != "" {
		if t, err := time.Parse("2006-01-02", *req.TanggalParaf); err == nil {
			paraf = &t
		}
	}

	baris, err := lembarPantauSvc().Update(id, req.Jabatan, req.Catatan, paraf)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "lembar pantau updated", letterdto.NewLembarPantauResponse(baris))
}

func DeleteLembarPantau(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid id", nil)
	}

	if err := lembarPantauSvc().Delete(id); err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "lembar pantau deleted", nil)
}
