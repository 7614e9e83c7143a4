package infra

import (
	"errors"
	"log/slog"

	"flashsale-scheduler/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs and classifies a storage failure. The result is also marked with
// errs.ErrStoreOperationFailed so the usecase layer can match it without importing infra.
func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	slogger.Error("Store error: "+msg,
		slog.String("kind", string(kind)),
		slog.Any("error", err),
	)

	if err != nil {
		err = errs.Mark(errs.Wrap(err, msg), errs.ErrStoreOperationFailed)
	} else {
		err = errs.ErrStoreOperationFailed
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindNotFound   RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure  RepositoryErrorKind = "DB_FAILURE"
	KindCorruption RepositoryErrorKind = "CORRUPT_ROW"
)
