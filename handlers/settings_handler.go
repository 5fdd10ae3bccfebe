package handlers

import (
	"errors"
	"strings"

	"github.com/Ahadan1/SIPAS-Public-sub000/config"
	userdto "github.com/Ahadan1/SIPAS-Public-sub000/dto/users"
	"github.com/Ahadan1/SIPAS-Public-sub000/middleware"
	"github.com/Ahadan1/SIPAS-Public-sub000/models"
	"github.com/Ahadan1/SIPAS-Public-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func currentUser(c *fiber.Ctx) (*models.User, error) {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return nil, fiber.ErrUnauthorized
	}
	var user models.User
	if err := config.DB.First(&user, claims.UserID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "user not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "profile retrieved", userdto.NewAdminUserResponse(*user))
}

func UpdateProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	var req userdto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)
	user.Jabatan = strings.TrimSpace(req.Jabatan)
	user.Atribut = req.Atribut

	if err := config.DB.Save(user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to update profile", err.Error())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "profile updated", userdto.NewAdminUserResponse(*user))
}

func ChangePassword(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized", nil)
	}

	var req userdto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "validation error", validationErrors)
	}

	if !utils.CheckPassword(user.PasswordHash, req.OldPassword) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "old password is incorrect", nil)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to hash password", nil)
	}

	if err := config.DB.Model(user).Update("password_hash", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to change password", nil)
	}

	// Sesi refresh lama dicabut supaya perangkat lain login ulang
	config.DB.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{})

	return utils.SuccessResponse(c, fiber.StatusOK, "password changed", nil)
}
