package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/Ahadan1/SIPAS-Public-sub000/config"
	"github.com/Ahadan1/SIPAS-Public-sub000/dto"
	"github.com/Ahadan1/SIPAS-Public-sub000/models"
	"github.com/Ahadan1/SIPAS-Public-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newUserSummary(user models.User) dto.UserSummary {
	return dto.UserSummary{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		Jabatan:   user.Jabatan,
		Atribut:   user.Atribut,
	}
}

func Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "email and password are required", nil)
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid credentials", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to look up user", err.Error())
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid credentials", nil)
	}

	accessToken, claims, err := utils.GenerateAccessToken(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to generate token", nil)
	}

	refreshToken, refreshClaims, err := utils.GenerateRefreshToken(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to generate refresh token", nil)
	}

	stored := models.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: refreshClaims.ExpiresAt.Time,
	}
	if err := config.DB.Create(&stored).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to persist refresh token", nil)
	}

	resp := dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    claims.ExpiresAt.Time,
		User:         newUserSummary(user),
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "login successful", resp)
}

func RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	claims, err := utils.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "invalid or expired refresh token", nil)
	}

	// Token harus masih tercatat (belum dicabut lewat logout)
	var stored models.RefreshToken
	if err := config.DB.Where("token = ?", req.RefreshToken).First(&stored).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "refresh token revoked", nil)
	}
	if time.Now().After(stored.ExpiresAt) {
		config.DB.Delete(&stored)
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "refresh token expired", nil)
	}

	var user models.User
	if err := config.DB.First(&user, claims.UserID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "user no longer exists", nil)
	}

	accessToken, accessClaims, err := utils.GenerateAccessToken(user)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to generate token", nil)
	}

	resp := dto.RefreshTokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   accessClaims.ExpiresAt.Time,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "token refreshed", resp)
}

func Logout(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	config.DB.Where("token = ?", req.RefreshToken).Delete(&models.RefreshToken{})
	return utils.SuccessResponse(c, fiber.StatusOK, "logged out", nil)
}

// SubmitPasswordReset menukar token reset (dari email) dengan password baru
func SubmitPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetSubmission
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body", err.Error())
	}

	if req.Token == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "token is required", nil)
	}
	if len(req.Password) < 8 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "password must be at least 8 characters", nil)
	}
	if req.Password != req.ConfirmPassword {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "password confirmation does not match", nil)
	}

	tokenHash := hashResetToken(req.Token)

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var reset models.PasswordResetToken
		if err := tx.Where("token_hash = ?", tokenHash).First(&reset).Error; err != nil {
			return err
		}

		if err := reset.Consume(tx, time.Now()); err != nil {
			return err
		}

		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).Where("id = ?", reset.UserID).
			Update("password_hash", hash).Error; err != nil {
			return err
		}

		// Cabut seluruh sesi lama setelah ganti password
		return tx.Where("user_id = ?", reset.UserID).Delete(&models.RefreshToken{}).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound),
			errors.Is(err, models.ErrPasswordResetTokenUsed),
			errors.Is(err, models.ErrPasswordResetTokenExpired):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid or expired reset token", nil)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "failed to reset password", nil)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "password has been reset", nil)
}
