package util

import "errors"

var (
	ErrUnknownCourse         = errors.New("curso desconhecido")
	ErrRatingOutOfRange      = errors.New("rating must be between 1 and 5")
	ErrInvalidRecommendation = errors.New("recommendation must be one of Sim, Não, Talvez")
)
