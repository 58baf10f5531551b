package repository

import (
	"errors"

	apperrors "admin-console-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

var uniqueConstraints = map[string]error{
	"uq_users_username": apperrors.ErrUsernameExists,
	"uq_users_email":    apperrors.ErrEmailExists,
	"uq_groups_name":    apperrors.ErrGroupNameExists,
}

var foreignKeyConstraints = map[string]error{
	"fk_user_groups_user":     apperrors.ErrUserNotFound,
	"fk_user_groups_group":    apperrors.ErrGroupNotFound,
	"fk_group_events_group":   apperrors.ErrGroupNotFound,
	"fk_group_events_event":   apperrors.ErrEventNotFound,
	"fk_event_surveys_event":  apperrors.ErrEventNotFound,
	"fk_event_surveys_survey": apperrors.ErrSurveyNotFound,
}

// translateError maps constraint violations to typed application errors and
// passes every other error through untouched.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolation:
		if mapped, ok := uniqueConstraints[pgErr.ConstraintName]; ok {
			return mapped
		}
		return apperrors.NewAlreadyExistsError("Record")
	case foreignKeyViolation:
		if mapped, ok := foreignKeyConstraints[pgErr.ConstraintName]; ok {
			return mapped
		}
	}
	return err
}
