package table

import (
	"context"
	"fmt"

	"github.com/MuriloBarros304/web-menu/internal/adapter/logger"
	"github.com/MuriloBarros304/web-menu/internal/domain"
	"github.com/MuriloBarros304/web-menu/internal/interfaces"
)

const maxValidationCodeLen = 10

// Service manages restaurant tables and their validation codes. Every
// operation is admin-only.
type Service struct {
	tables interfaces.TableRepository
	logger logger.Logger
}

func NewService(tables interfaces.TableRepository, logger logger.Logger) *Service {
	return &Service{tables: tables, logger: logger}
}

func (s *Service) ListTables(ctx context.Context, caller domain.Caller) ([]*domain.Table, error) {
	if !caller.Admin() {
		return nil, fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	return s.tables.List(ctx)
}

func (s *Service) GetTable(ctx context.Context, caller domain.Caller, id int) (*domain.Table, error) {
	if !caller.Admin() {
		return nil, fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	return s.tables.FindByID(ctx, id)
}

func (s *Service) CreateTable(ctx context.Context, caller domain.Caller, cmd interfaces.SaveTableCommand) (*domain.Table, error) {
	if !caller.Admin() {
		return nil, fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	table := &domain.Table{
		Number:         cmd.Number,
		Capacity:       cmd.Capacity,
		IsAvailable:    true,
		ValidationCode: normalizeCode(cmd.ValidationCode),
	}
	if cmd.IsAvailable != nil {
		table.IsAvailable = *cmd.IsAvailable
	}
	if err := validateTable(table); err != nil {
		return nil, err
	}
	if err := s.tables.Create(ctx, table); err != nil {
		return nil, err
	}
	s.logger.Debug("table_created", "Table created", "", map[string]any{"table_id": table.ID, "number": table.Number})
	return table, nil
}

// UpdateTable covers availability toggling and validation code
// rotation: the code in the command replaces the stored one, and an
// absent or empty code clears the check for the table.
func (s *Service) UpdateTable(ctx context.Context, caller domain.Caller, id int, cmd interfaces.SaveTableCommand) (*domain.Table, error) {
	if !caller.Admin() {
		return nil, fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	table, err := s.tables.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	table.Number = cmd.Number
	table.Capacity = cmd.Capacity
	table.ValidationCode = normalizeCode(cmd.ValidationCode)
	if cmd.IsAvailable != nil {
		table.IsAvailable = *cmd.IsAvailable
	}
	if err := validateTable(table); err != nil {
		return nil, err
	}
	if err := s.tables.Update(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *Service) DeleteTable(ctx context.Context, caller domain.Caller, id int) error {
	if !caller.Admin() {
		return fmt.Errorf("%w: admin role required", domain.ErrForbidden)
	}
	if _, err := s.tables.FindByID(ctx, id); err != nil {
		return err
	}
	return s.tables.Delete(ctx, id)
}

func validateTable(table *domain.Table) error {
	if table.Number < 1 {
		return domain.Validationf("table number must be positive")
	}
	if table.Capacity != nil && *table.Capacity < 1 {
		return domain.Validationf("table capacity must be positive")
	}
	if table.ValidationCode != nil && len(*table.ValidationCode) > maxValidationCodeLen {
		return domain.Validationf("validation code must be at most %d characters", maxValidationCodeLen)
	}
	return nil
}

// normalizeCode stores empty codes as nil so the unique constraint only
// applies to tables that actually have one.
func normalizeCode(code *string) *string {
	if code == nil || *code == "" {
		return nil
	}
	return code
}
