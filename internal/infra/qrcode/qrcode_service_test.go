package qrcode

import (
	"testing"

	"fitplan/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQRConfig(level string, size int) *config.QRCodeConfig {
	return &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
		WorkoutURLFormat:     "https://fitplan.app/workouts/%s?src=qr",
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewQRCodeService(newTestQRConfig(tt.errorCorrectionLevel, 256))
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

func TestNewQRCodeService_RejectsBadFormat(t *testing.T) {
	for _, format := range []string{"https://fitplan.app/workouts", "https://x/%s/%s"} {
		cfg := newTestQRConfig("M", 256)
		cfg.WorkoutURLFormat = format

		_, err := NewQRCodeService(cfg)
		assert.Error(t, err, format)
	}
}

func TestQRCodeService_GenerateWorkoutQR(t *testing.T) {
	svc, err := NewQRCodeService(newTestQRConfig("M", 256))
	require.NoError(t, err)

	qrBytes, err := svc.GenerateWorkoutQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateWorkoutQR_NilID(t *testing.T) {
	svc, err := NewQRCodeService(newTestQRConfig("M", 256))
	require.NoError(t, err)

	_, err = svc.GenerateWorkoutQR(uuid.Nil)
	assert.Error(t, err)
}

func TestQRCodeService_ShareURL(t *testing.T) {
	svc, err := NewQRCodeService(newTestQRConfig("H", 128))
	require.NoError(t, err)

	workoutID := uuid.MustParse("0b7e6c1e-5f0e-4d55-9d1c-4a9d0c0f2a11")

	assert.Equal(t,
		"https://fitplan.app/workouts/0b7e6c1e-5f0e-4d55-9d1c-4a9d0c0f2a11?src=qr",
		svc.(*qrcodeService).shareURL(workoutID),
	)
}
