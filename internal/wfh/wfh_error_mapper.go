package wfh

import (
	"errors"
	"strings"

	wfherrors "go-leave/internal/wfh/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return wfherrors.ErrWFHNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_wfh_request_number" {
		return wfherrors.ErrNumberTaken
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_wfh_request_number") {
		return wfherrors.ErrNumberTaken
	}

	return err
}
