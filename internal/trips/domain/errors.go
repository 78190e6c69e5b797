package domain

import "errors"

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrPlaceNotFound    = errors.New("place not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrPlaceLimit       = errors.New("project place limit reached")
	ErrDuplicateArtwork = errors.New("artwork already in project")
	ErrInvalidArtwork   = errors.New("artwork could not be validated")
	ErrVisitedPlaces    = errors.New("project has visited places")
)
