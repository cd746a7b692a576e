package domain

import "errors"

var (
	ErrRankingDateMismatch     = errors.New("ranking entry date does not match target date")
	ErrRankingPositionGap      = errors.New("ranking positions must be contiguous from 1")
	ErrRankingDuplicatePackage = errors.New("ranking repeats a package")
	ErrInvalidDate             = errors.New("invalid date")
	ErrUnknownTask             = errors.New("unknown task")
)
