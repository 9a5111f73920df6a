package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"lawfirm-cms/internal/domains/cms/model"
	"lawfirm-cms/internal/infrastructure/sheets"
	"lawfirm-cms/pkg/jwt"
)

// WriterProvider exposes the write side of the content source, if it has one.
// *sheets.Client implements it.
type WriterProvider interface {
	Writer() (sheets.Writer, bool)
}

// AdminService authenticates the single admin account and forwards content
// edits to the source.
type AdminService interface {
	// Login returns a signed access token.
	Login(ctx context.Context, username, password string) (string, error)
	Create(ctx context.Context, sheet string, data map[string]any) (sheets.Row, error)
	Update(ctx context.Context, sheet, id string, data map[string]any) (sheets.Row, error)
	Delete(ctx context.Context, sheet, id string) error
}

// AdminCredentials is the configured admin account. An empty PasswordHash
// disables login.
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

type adminService struct {
	writers    WriterProvider
	jwtManager *jwt.Manager
	creds      AdminCredentials
	log        zerolog.Logger
}

func NewAdminService(writers WriterProvider, jwtManager *jwt.Manager, creds AdminCredentials, log zerolog.Logger) AdminService {
	return &adminService{
		writers:    writers,
		jwtManager: jwtManager,
		creds:      creds,
		log:        log,
	}
}

func (s *adminService) Login(ctx context.Context, username, password string) (string, error) {
	if s.creds.PasswordHash == "" {
		s.log.Warn().Msg("admin login attempted but ADMIN_PASSWORD_HASH is not set")
		return "", model.ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1
	// Always run bcrypt so a wrong username costs the same as a wrong password.
	passErr := bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(password))
	if !userOK || passErr != nil {
		s.log.Info().Str("username", username).Msg("admin login failed")
		return "", model.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessToken(username, jwt.RoleAdmin)
	if err != nil {
		return "", &model.CMSError{Code: "TOKEN_FAILED", Message: "Failed to issue token", Err: err}
	}
	return token, nil
}

func (s *adminService) Create(ctx context.Context, sheet string, data map[string]any) (sheets.Row, error) {
	w, err := s.writer(sheet)
	if err != nil {
		return nil, err
	}
	row, err := w.Append(ctx, sheet, data)
	if err != nil {
		return nil, s.writeFailed("create", sheet, "", err)
	}
	s.log.Info().Str("sheet", sheet).Str("id", row.Get("id")).Msg("content row created")
	return row, nil
}

func (s *adminService) Update(ctx context.Context, sheet, id string, data map[string]any) (sheets.Row, error) {
	w, err := s.writer(sheet)
	if err != nil {
		return nil, err
	}
	row, err := w.Update(ctx, sheet, id, data)
	if err != nil {
		return nil, s.writeFailed("update", sheet, id, err)
	}
	s.log.Info().Str("sheet", sheet).Str("id", id).Msg("content row updated")
	return row, nil
}

func (s *adminService) Delete(ctx context.Context, sheet, id string) error {
	w, err := s.writer(sheet)
	if err != nil {
		return err
	}
	if err := w.Delete(ctx, sheet, id); err != nil {
		return s.writeFailed("delete", sheet, id, err)
	}
	s.log.Info().Str("sheet", sheet).Str("id", id).Msg("content row deleted")
	return nil
}

func (s *adminService) writer(sheet string) (sheets.Writer, error) {
	if !sheets.IsKnownTable(strings.TrimSpace(sheet)) {
		return nil, model.ErrUnknownSheet
	}
	w, ok := s.writers.Writer()
	if !ok {
		return nil, model.ErrWriteUnsupported
	}
	return w, nil
}

func (s *adminService) writeFailed(action, sheet, id string, err error) error {
	if errors.Is(err, sheets.ErrNotConfigured) {
		return model.ErrWriteUnsupported
	}
	s.log.Error().Err(err).Str("sheet", sheet).Str("id", id).Str("action", action).Msg("content write failed")
	return model.NewWriteError(action, err)
}
