// Package qrcode renders workout share links as QR images.
package qrcode

import (
	"fmt"
	"strings"

	"fitplan/config"
	"fitplan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const workoutIDVerb = "%s"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	urlPrefix            string
	urlSuffix            string
}

// NewQRCodeService creates a new QR code service instance.
// WorkoutURLFormat must contain exactly one %s.
func NewQRCodeService(cfg *config.QRCodeConfig) (service.QRCodeService, error) {
	if strings.Count(cfg.WorkoutURLFormat, workoutIDVerb) != 1 {
		return nil, errors.Errorf("workout url format %q must contain exactly one %s", cfg.WorkoutURLFormat, workoutIDVerb)
	}

	prefix, suffix, _ := strings.Cut(cfg.WorkoutURLFormat, workoutIDVerb)

	return &qrcodeService{
		size:                 cfg.Size,
		errorCorrectionLevel: recoveryLevel(cfg.ErrorCorrectionLevel),
		urlPrefix:            prefix,
		urlSuffix:            suffix,
	}, nil
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

func (s *qrcodeService) shareURL(workoutID uuid.UUID) string {
	return s.urlPrefix + workoutID.String() + s.urlSuffix
}

// GenerateWorkoutQR renders the workout share URL as a PNG.
func (s *qrcodeService) GenerateWorkoutQR(workoutID uuid.UUID) ([]byte, error) {
	if workoutID == uuid.Nil {
		return nil, errors.New("workout ID is required")
	}

	qrCode, err := qrcode.New(s.shareURL(workoutID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
