package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/isp-cobros/internal/application/dto"
	"github.com/jhoicas/isp-cobros/internal/domain/entity"
)

// ispLookup es el contrato mínimo que necesita el middleware para verificar el ISP.
// Lo implementa postgres.ISPRepository.
type ispLookup interface {
	GetByID(ctx context.Context, id string) (*entity.ISP, error)
}

// RequireActiveISP verifica que el ISP del token exista y no esté suspendido.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalISPID).
//
// Comportamiento:
//   - 403 Forbidden → ISP inexistente o suspendido.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
//   - Si no hay isp_id en el contexto, responde 401.
func RequireActiveISP(isps ispLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ispID := GetISPID(c)
		if ispID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "isp_id no encontrado en el token",
			})
		}

		isp, err := isps.GetByID(c.Context(), ispID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ISP_CHECK_FAILED",
				Message: "no se pudo verificar el ISP, intente más tarde",
			})
		}
		if isp == nil || !isp.IsActive() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "ISP_SUSPENDED",
				Message: "el ISP no está activo",
			})
		}
		return c.Next()
	}
}
