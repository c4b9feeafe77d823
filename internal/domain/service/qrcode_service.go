package service

import "github.com/google/uuid"

// QRCodeService renders workout share codes.
type QRCodeService interface {
	// GenerateWorkoutQR returns a PNG encoding the workout share link.
	GenerateWorkoutQR(workoutID uuid.UUID) ([]byte, error)
}
