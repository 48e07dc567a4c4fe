package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/davidmr/almacen-api/internal/domain"
	"github.com/davidmr/almacen-api/internal/domain/entity"
	"github.com/davidmr/almacen-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock (entrada/salida) de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// Es el único componente que muta el saldo de un producto.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para registrar un movimiento.
// MovedAt en cero usa la hora de procesamiento.
type MovementInput struct {
	ProductID string
	UserID    string
	Direction string // entity.MovementInward | entity.MovementOutward
	Quantity  int64
	MovedAt   time.Time
}

// MovementResult resultado de un movimiento registrado.
type MovementResult struct {
	NewBalance    int64
	LowStockAlert bool
}

// RegisterMovement valida la entrada, inicia la transacción, bloquea la fila del
// producto, aplica el saldo, inserta el movimiento en el historial y calcula la
// alerta de stock mínimo. Commit o Rollback completos: ningún efecto parcial.
//
// La alerta solo se evalúa en salidas: una entrada nunca la dispara, aunque el
// saldo resultante siga por debajo del mínimo.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	// Validaciones previas, antes de tocar el ledger
	if input.ProductID == "" || input.UserID == "" || input.Direction == "" || input.Quantity == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidDirection(input.Direction) {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	movedAt := input.MovedAt
	if movedAt.IsZero() {
		movedAt = now
	}

	var result MovementResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		// Bloquea la fila del producto; serializa movimientos concurrentes
		// sobre el mismo producto sin afectar a los demás.
		stock, err := stockRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}

		newBalance := stock.Balance
		if input.Direction == entity.MovementInward {
			newBalance += input.Quantity
		} else {
			newBalance -= input.Quantity
			if newBalance < 0 {
				return &domain.InsufficientStockError{
					ProductID: input.ProductID,
					Available: stock.Balance,
					Requested: input.Quantity,
				}
			}
		}

		stock.Balance = newBalance
		stock.UpdatedAt = now
		if err := stockRepo.Upsert(stock); err != nil {
			return err
		}

		mov := &entity.Movement{
			ID:        uuid.New().String(),
			ProductID: input.ProductID,
			UserID:    input.UserID,
			Direction: input.Direction,
			Quantity:  input.Quantity,
			MovedAt:   movedAt,
			CreatedAt: now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		result = MovementResult{
			NewBalance:    newBalance,
			LowStockAlert: input.Direction == entity.MovementOutward && newBalance < stock.MinimumStock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
