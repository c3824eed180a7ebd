package domain

import "errors"

var (
	ErrInvalidSpread     = errors.New("spread card count must be at least 1 and no larger than the deck")
	ErrUnknownPosition   = errors.New("position does not exist in this draw")
	ErrSpreadNotAllowed  = errors.New("subscription tier does not permit this spread")
	ErrReadingNotFound   = errors.New("reading not found")
	ErrReadingIncomplete = errors.New("reading has unrevealed positions")
	ErrNarrativeExists   = errors.New("reading already has a narrative")
	ErrUpstreamLLM       = errors.New("upstream LLM failure")
)
