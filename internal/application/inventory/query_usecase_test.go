package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidmr/almacen-api/internal/application/dto"
	"github.com/davidmr/almacen-api/internal/application/inventory"
	"github.com/davidmr/almacen-api/internal/domain"
)

func newQueryUseCase(store *fakeStore) *inventory.StockQueryUseCase {
	tx := &fakeTx{store: store, stock: make(map[string]int64)}
	return inventory.NewStockQueryUseCase(&txStockRepo{tx}, &txMovementRepo{tx})
}

// El listado sale ordenado por nombre y marca la condición de stock bajo.
func TestListLevels_OrdenAlfabeticoYStockBajo(t *testing.T) {
	store := newFakeStore()
	store.addProduct("p1", "Zuncho", 5, 2)   // bajo mínimo
	store.addProduct("p2", "Alambre", 1, 9)  // sobre mínimo
	store.addProduct("p3", "Martillo", 3, 3) // en el mínimo exacto: no es bajo

	uc := newQueryUseCase(store)
	items, err := uc.ListLevels(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Alambre", items[0].Name)
	assert.Equal(t, "Martillo", items[1].Name)
	assert.Equal(t, "Zuncho", items[2].Name)

	assert.False(t, items[0].LowStock)
	assert.False(t, items[1].LowStock, "saldo igual al mínimo no es stock bajo")
	assert.True(t, items[2].LowStock)
	assert.Equal(t, int64(2), items[2].Balance)
}

// El historial exige producto.
func TestListMovements_ProductoObligatorio(t *testing.T) {
	uc := newQueryUseCase(newFakeStore())
	_, err := uc.ListMovements(context.Background(), "", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
