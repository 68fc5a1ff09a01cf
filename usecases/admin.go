package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"realty-server/entities"
	"realty-server/repositories"

	"github.com/xuri/excelize/v2"
)

// Flusher writes buffered activity entries through to storage.
type Flusher interface {
	Flush(ctx context.Context) error
}

type UserUpdate struct {
	Role    *entities.Role    `json:"role,omitempty"`
	Profile *entities.Profile `json:"profile,omitempty"`
}

type AdminUseCase struct {
	users    repositories.UserRepository
	leads    repositories.LeadRepository
	activity repositories.ActivityRepository
	pending  Flusher
	logger   *slog.Logger
}

func NewAdminUseCase(users repositories.UserRepository, leads repositories.LeadRepository, activity repositories.ActivityRepository, pending Flusher) *AdminUseCase {
	return &AdminUseCase{
		users:    users,
		leads:    leads,
		activity: activity,
		pending:  pending,
		logger:   slog.Default().With("module", "admin"),
	}
}

func requireAdmin(s *Session) error {
	if s == nil {
		return ErrUnauthorized
	}
	if !s.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

func (uc *AdminUseCase) ListUsers(ctx context.Context, s *Session) ([]entities.User, error) {
	if err := requireAdmin(s); err != nil {
		return nil, err
	}
	return uc.users.GetAll(ctx)
}

func (uc *AdminUseCase) GetUser(ctx context.Context, s *Session, id string) (*entities.User, error) {
	if err := requireAdmin(s); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

// UpdateUser changes a user's role and/or profile. Admins cannot drop
// their own admin role.
func (uc *AdminUseCase) UpdateUser(ctx context.Context, s *Session, id string, upd UserUpdate) (*entities.User, error) {
	user, err := uc.GetUser(ctx, s, id)
	if err != nil {
		return nil, err
	}
	if upd.Role != nil {
		if !upd.Role.IsStored() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRole, *upd.Role)
		}
		if user.ID == s.UserID && *upd.Role != entities.RoleAdmin {
			return nil, fmt.Errorf("%w: cannot remove own admin role", ErrInvalidInput)
		}
		if err := uc.users.UpdateRole(ctx, user.ID, *upd.Role); err != nil {
			return nil, err
		}
	}
	if upd.Profile != nil {
		if err := uc.users.UpdateProfile(ctx, user.ID, *upd.Profile); err != nil {
			return nil, err
		}
	}
	if user, err = uc.GetUser(ctx, s, id); err != nil {
		return nil, err
	}
	uc.logger.InfoContext(ctx, "user updated by admin", "user_id", user.ID, "admin_id", s.UserID, "role", user.Role)
	return user, nil
}

func (uc *AdminUseCase) ListLeads(ctx context.Context, s *Session) ([]entities.DemoLead, error) {
	if err := requireAdmin(s); err != nil {
		return nil, err
	}
	return uc.leads.GetAll(ctx)
}

// ListActivity flushes buffered entries first so the listing is current.
func (uc *AdminUseCase) ListActivity(ctx context.Context, s *Session, limit int) ([]entities.ActivityLog, error) {
	if err := requireAdmin(s); err != nil {
		return nil, err
	}
	if uc.pending != nil {
		if err := uc.pending.Flush(ctx); err != nil {
			uc.logger.WarnContext(ctx, "flush activity before listing", "error", err)
		}
	}
	return uc.activity.GetRecent(ctx, limit)
}

// ExportWorkbook renders users and demo leads as an XLSX workbook.
func (uc *AdminUseCase) ExportWorkbook(ctx context.Context, s *Session) ([]byte, error) {
	users, err := uc.ListUsers(ctx, s)
	if err != nil {
		return nil, err
	}
	leads, err := uc.leads.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Users"); err != nil {
		return nil, err
	}
	userRows := [][]interface{}{{"ID", "Email", "Role", "Full name", "Phone", "Job", "Location", "Created", "Last login"}}
	for _, u := range users {
		lastLogin := ""
		if u.LastLoginAt != nil {
			lastLogin = u.LastLoginAt.UTC().Format(time.RFC3339)
		}
		userRows = append(userRows, []interface{}{
			u.ID, u.Email, string(u.Role), u.FullName, u.PhoneNumber, u.Job, u.Location,
			u.CreatedAt.UTC().Format(time.RFC3339), lastLogin,
		})
	}
	if err := writeRows(f, "Users", userRows); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet("Leads"); err != nil {
		return nil, err
	}
	leadRows := [][]interface{}{{"ID", "Phone", "Role", "Timestamp"}}
	for _, l := range leads {
		leadRows = append(leadRows, []interface{}{l.ID, l.PhoneNumber, string(l.Role), l.Timestamp.UTC().Format(time.RFC3339)})
	}
	if err := writeRows(f, "Leads", leadRows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
