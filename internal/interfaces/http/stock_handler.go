package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/davidmr/almacen-api/internal/application/dto"
	"github.com/davidmr/almacen-api/internal/application/inventory"
	"github.com/davidmr/almacen-api/pkg/logger"
)

// StockHandler maneja las peticiones HTTP de inventario: movimientos,
// listado de saldos e historial (protegido).
type StockHandler struct {
	movements *inventory.RegisterMovementUseCase
	queries   *inventory.StockQueryUseCase
	log       *logger.Logger
}

// NewStockHandler construye el handler.
func NewStockHandler(movements *inventory.RegisterMovementUseCase, queries *inventory.StockQueryUseCase, log *logger.Logger) *StockHandler {
	return &StockHandler{movements: movements, queries: queries, log: log}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock (entrada o salida)
// @Description  Aplica el saldo y agrega el movimiento al historial en una sola
//               transacción. En salidas, si el saldo resultante queda por debajo
//               del stock mínimo del producto, la respuesta incluye la alerta.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, direction (Inward|Outward), quantity, date opcional"
// @Success      200   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		// Cubre también quantity no entero en el JSON
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cuerpo inválido"})
	}

	var movedAt time.Time
	if in.Date != nil {
		movedAt = *in.Date
	}
	result, err := h.movements.RegisterMovement(c.Context(), inventory.MovementInput{
		ProductID: in.ProductID,
		UserID:    userID,
		Direction: in.Direction,
		Quantity:  in.Quantity,
		MovedAt:   movedAt,
	})
	if err != nil {
		h.log.Warn().Err(err).
			Str("product_id", in.ProductID).
			Str("direction", in.Direction).
			Int64("quantity", in.Quantity).
			Msg("movimiento rechazado")
		return respondError(c, err)
	}

	h.log.Info().
		Str("product_id", in.ProductID).
		Str("direction", in.Direction).
		Int64("quantity", in.Quantity).
		Int64("new_balance", result.NewBalance).
		Bool("low_stock_alert", result.LowStockAlert).
		Msg("movimiento registrado")

	return c.JSON(dto.MovementResponse{
		Success:       true,
		NewBalance:    result.NewBalance,
		LowStockAlert: result.LowStockAlert,
	})
}

// ListLevels godoc
// @Summary      Listar inventario (producto + saldo, orden alfabético)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockLevelResponse
// @Router       /api/stock [get]
func (h *StockHandler) ListLevels(c *fiber.Ctx) error {
	items, err := h.queries.ListLevels(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// ListMovements godoc
// @Summary      Historial de movimientos de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  true  "ID del producto"
// @Success      200  {object}  dto.MovementHistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.queries.ListMovements(c.Context(), c.Query("product_id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
