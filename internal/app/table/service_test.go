package table

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuriloBarros304/web-menu/internal/adapter/logger"
	"github.com/MuriloBarros304/web-menu/internal/domain"
	"github.com/MuriloBarros304/web-menu/internal/interfaces"
)

var (
	customer = domain.Caller{Authenticated: true, UserID: 1, Role: domain.RoleCustomer}
	staff    = domain.Caller{Authenticated: true, UserID: 2, Role: domain.RoleStaff}
	admin    = domain.Caller{Authenticated: true, UserID: 3, Role: domain.RoleAdmin}
)

type memTableRepo struct {
	tables map[int]*domain.Table
}

func newMemTableRepo() *memTableRepo {
	return &memTableRepo{tables: map[int]*domain.Table{}}
}

func (m *memTableRepo) Create(_ context.Context, table *domain.Table) error {
	table.ID = len(m.tables) + 1
	copied := *table
	m.tables[table.ID] = &copied
	return nil
}

func (m *memTableRepo) FindByID(_ context.Context, id int) (*domain.Table, error) {
	table, ok := m.tables[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *table
	return &copied, nil
}

func (m *memTableRepo) List(_ context.Context) ([]*domain.Table, error) {
	var tables []*domain.Table
	for _, table := range m.tables {
		copied := *table
		tables = append(tables, &copied)
	}
	return tables, nil
}

func (m *memTableRepo) Update(_ context.Context, table *domain.Table) error {
	if _, ok := m.tables[table.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *table
	m.tables[table.ID] = &copied
	return nil
}

func (m *memTableRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.tables[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.tables, id)
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestTableOperationsAreAdminOnly(t *testing.T) {
	service := NewService(newMemTableRepo(), logger.Nop())
	cmd := interfaces.SaveTableCommand{Number: 1}

	for _, caller := range []domain.Caller{domain.Anonymous, customer, staff} {
		_, err := service.CreateTable(context.Background(), caller, cmd)
		assert.ErrorIs(t, err, domain.ErrForbidden)

		_, err = service.ListTables(context.Background(), caller)
		assert.ErrorIs(t, err, domain.ErrForbidden)

		_, err = service.GetTable(context.Background(), caller, 1)
		assert.ErrorIs(t, err, domain.ErrForbidden)

		_, err = service.UpdateTable(context.Background(), caller, 1, cmd)
		assert.ErrorIs(t, err, domain.ErrForbidden)

		err = service.DeleteTable(context.Background(), caller, 1)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	}
}

func TestCreateTable(t *testing.T) {
	repo := newMemTableRepo()
	service := NewService(repo, logger.Nop())

	table, err := service.CreateTable(context.Background(), admin, interfaces.SaveTableCommand{
		Number:         1,
		Capacity:       intPtr(4),
		ValidationCode: strPtr("SEGREDO"),
	})
	require.NoError(t, err)
	assert.True(t, table.IsAvailable)
	require.NotNil(t, table.ValidationCode)
	assert.Equal(t, "SEGREDO", *table.ValidationCode)
}

func TestCreateTableValidation(t *testing.T) {
	service := NewService(newMemTableRepo(), logger.Nop())

	tests := []struct {
		name string
		cmd  interfaces.SaveTableCommand
	}{
		{name: "zero number", cmd: interfaces.SaveTableCommand{Number: 0}},
		{name: "negative capacity", cmd: interfaces.SaveTableCommand{Number: 1, Capacity: intPtr(-2)}},
		{name: "code too long", cmd: interfaces.SaveTableCommand{Number: 1, ValidationCode: strPtr("TOO-LONG-SECRET")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateTable(context.Background(), admin, tt.cmd)
			assert.True(t, domain.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestUpdateTableRotatesCode(t *testing.T) {
	repo := newMemTableRepo()
	service := NewService(repo, logger.Nop())

	table, err := service.CreateTable(context.Background(), admin, interfaces.SaveTableCommand{
		Number:         1,
		ValidationCode: strPtr("OLD"),
	})
	require.NoError(t, err)

	updated, err := service.UpdateTable(context.Background(), admin, table.ID, interfaces.SaveTableCommand{
		Number:         1,
		ValidationCode: strPtr("NEW"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ValidationCode)
	assert.Equal(t, "NEW", *updated.ValidationCode)

	// An empty code clears the check entirely.
	updated, err = service.UpdateTable(context.Background(), admin, table.ID, interfaces.SaveTableCommand{
		Number:         1,
		ValidationCode: strPtr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.ValidationCode)
}

func TestUpdateTableAvailability(t *testing.T) {
	repo := newMemTableRepo()
	service := NewService(repo, logger.Nop())

	table, err := service.CreateTable(context.Background(), admin, interfaces.SaveTableCommand{Number: 2})
	require.NoError(t, err)
	assert.True(t, table.IsAvailable)

	updated, err := service.UpdateTable(context.Background(), admin, table.ID, interfaces.SaveTableCommand{
		Number:      2,
		IsAvailable: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)
}

func TestDeleteTable(t *testing.T) {
	repo := newMemTableRepo()
	service := NewService(repo, logger.Nop())

	table, err := service.CreateTable(context.Background(), admin, interfaces.SaveTableCommand{Number: 3})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTable(context.Background(), admin, table.ID))
	assert.ErrorIs(t, service.DeleteTable(context.Background(), admin, table.ID), domain.ErrNotFound)
}
