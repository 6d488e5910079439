package service

import (
	"errors"

	"github.com/fsdevblog/groph-bank/internal/domain"
)

// notFoundAs заменяет ошибку репозитория domain.ErrRecordNotFound на доменную ошибку target.
func notFoundAs(err error, target error) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return target
	}
	return err
}
