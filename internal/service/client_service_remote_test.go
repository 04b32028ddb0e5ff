package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-intern-verify/internal/adapter"
	"github.com/MKhiriev/go-intern-verify/internal/logger"
	"github.com/MKhiriev/go-intern-verify/internal/mock"
	"github.com/MKhiriev/go-intern-verify/models"
)

func TestRemoteVerifier_PassesBackendOutcomes(t *testing.T) {
	outcomes := []models.Outcome{
		models.VerifiedOutcome("VOC-123"),
		models.PendingOutcome("VOC-456"),
		models.NotFoundOutcome("XYZ-999"),
	}

	for _, want := range outcomes {
		t.Run(string(want.Status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockAdapter := mock.NewMockServerAdapter(ctrl)
			mockAdapter.EXPECT().Verify(gomock.Any(), "VOC-123").Return(want, nil)

			got, err := NewRemoteVerifier(mockAdapter, logger.Nop()).Verify(context.Background(), "VOC-123")

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestRemoteVerifier_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockAdapter.EXPECT().Verify(gomock.Any(), "VOC-123").Return(models.Outcome{}, adapter.ErrInternalServerError)

	_, err := NewRemoteVerifier(mockAdapter, logger.Nop()).Verify(context.Background(), "VOC-123")

	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

func TestRemoteVerifier_RejectsUnexpectedStatus(t *testing.T) {
	tests := []models.Outcome{
		models.NetworkErrorOutcome(),
		{Status: "revoked", Title: "Revoked", Message: "gone"},
		{},
	}

	for _, outcome := range tests {
		ctrl := gomock.NewController(t)
		mockAdapter := mock.NewMockServerAdapter(ctrl)
		mockAdapter.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(outcome, nil)

		_, err := NewRemoteVerifier(mockAdapter, logger.Nop()).Verify(context.Background(), "VOC-123")

		assert.ErrorIs(t, err, ErrUnexpectedOutcome, "status %q", outcome.Status)
	}
}
