package service_test

import (
	"context"

	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	dbMocks "go-gin-event-booking/internal/database/mocks"
)

// passThroughTx makes the tx manager mock run the callback with a nil transaction.
func passThroughTx(txManager *dbMocks.MockTxManager) *dbMocks.MockTxManager_WithTx_Call {
	return txManager.EXPECT().WithTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(pgx.Tx) error) error {
			return fn(nil)
		})
}

func validationFields(err error) []string {
	verr, ok := err.(*apperrors.ValidationError)
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	return fields
}

func strPtr(s string) *string {
	return &s
}
