package domain

import "errors"

var (
	ErrNetwork         = errors.New("catalog request failed")
	ErrDecode          = errors.New("catalog response could not be decoded")
	ErrNoImage         = errors.New("record has no usable image")
	ErrPoolTooSmall    = errors.New("k exceeds pool size")
	ErrCardNotFound    = errors.New("card not found")
	ErrShuffleDisabled = errors.New("shuffle effect is disabled")
	ErrStageCleared    = errors.New("stage was cleared while the card was loading")
)
