//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"hotelier/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLines(t *testing.T) []catalog.ContractLine {
	t.Helper()
	a, err := catalog.NewContractLine(uuid.New(), 2, 3000)
	require.NoError(t, err)
	b, err := catalog.NewContractLine(uuid.New(), 1, 12000)
	require.NoError(t, err)
	return []catalog.ContractLine{a, b}
}

func TestNewContract(t *testing.T) {
	serviceDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		actual, err := catalog.NewContract(uuid.New(), serviceDate, newLines(t))
		require.NoError(t, err)

		assert.Equal(t, catalog.ContractPending, actual.Status())
		assert.Equal(t, int64(18000), actual.TotalCents())
		assert.Len(t, actual.Lines(), 2)
	})

	t.Run("requires at least one line", func(t *testing.T) {
		_, err := catalog.NewContract(uuid.New(), serviceDate, nil)
		require.ErrorIs(t, err, catalog.ErrEmptyContract)
	})

	t.Run("line validation", func(t *testing.T) {
		_, err := catalog.NewContractLine(uuid.New(), 0, 3000)
		require.ErrorIs(t, err, catalog.ErrInvalidQuantity)

		_, err = catalog.NewContractLine(uuid.New(), 1, -1)
		require.ErrorIs(t, err, catalog.ErrInvalidPrice)
	})
}

func TestContractTransitions(t *testing.T) {
	serviceDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("happy path to completed", func(t *testing.T) {
		c, err := catalog.NewContract(uuid.New(), serviceDate, newLines(t))
		require.NoError(t, err)

		require.NoError(t, c.Transition(catalog.ContractConfirmed))
		require.NoError(t, c.Transition(catalog.ContractCompleted))
		assert.Equal(t, catalog.ContractCompleted, c.Status())
	})

	t.Run("cancellable until completed", func(t *testing.T) {
		c, err := catalog.NewContract(uuid.New(), serviceDate, newLines(t))
		require.NoError(t, err)

		require.NoError(t, c.Transition(catalog.ContractCancelled))
		require.ErrorIs(t, c.Transition(catalog.ContractConfirmed), catalog.ErrInvalidContractTransition)
	})

	t.Run("pending cannot complete directly", func(t *testing.T) {
		c, err := catalog.NewContract(uuid.New(), serviceDate, newLines(t))
		require.NoError(t, err)

		require.ErrorIs(t, c.Transition(catalog.ContractCompleted), catalog.ErrInvalidContractTransition)
	})
}

func TestNewService(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := catalog.NewService("Airport transfer", "transport", 4500)
		require.NoError(t, err)

		assert.Equal(t, "Airport transfer", actual.Name())
		assert.Equal(t, "transport", actual.Category())
		assert.True(t, actual.IsActive())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := catalog.NewService("  ", "transport", 4500)
		require.ErrorIs(t, err, catalog.ErrInvalidServiceName)

		_, err = catalog.NewService("Spa", "wellness", -1)
		require.ErrorIs(t, err, catalog.ErrInvalidPrice)
	})
}
