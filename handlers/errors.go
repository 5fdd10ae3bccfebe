package handlers

import (
	"errors"

	"github.com/Ahadan1/SIPAS-Public-sub000/config"
	"github.com/Ahadan1/SIPAS-Public-sub000/services"
	"github.com/Ahadan1/SIPAS-Public-sub000/utils"

	"github.com/gofiber/fiber/v2"
)

// serviceError menerjemahkan error sentinel dari lapisan service menjadi
// response HTTP yang seragam.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "resource not found", nil)
	case errors.Is(err, services.ErrConflict):
		return utils.ErrorResponse(c, fiber.StatusConflict, "resource conflict", err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "invalid status transition", err.Error())
	case errors.Is(err, services.ErrForbidden):
		return utils.ErrorResponse(c, fiber.StatusForbidden, "forbidden", nil)
	case errors.Is(err, services.ErrUnauthorized):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	case errors.Is(err, services.ErrAllocationFailed):
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "failed to allocate letter number", nil)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "internal error", err.Error())
	}
}

// Konstruktor service memakai koneksi global; handler tidak menyimpan state.
func sequenceSvc() *services.SequenceService {
	return services.NewSequenceService(config.DB, services.SystemClock)
}

func suratMasukSvc() *services.SuratMasukService {
	return services.NewSuratMasukService(config.DB, services.SystemClock)
}

func suratKeluarSvc() *services.SuratKeluarService {
	return services.NewSuratKeluarService(config.DB, sequenceSvc(), services.SystemClock)
}

func disposisiSvc() *services.DisposisiService {
	return services.NewDisposisiService(config.DB)
}

func lembarPantauSvc() *services.LembarPantauService {
	return services.NewLembarPantauService(config.DB, services.SystemClock)
}

func arsipSvc() *services.ArsipService {
	return services.NewArsipService(config.DB, services.SystemClock)
}

func permissionSvc() *services.PermissionService {
	return services.NewPermissionService(config.DB)
}
