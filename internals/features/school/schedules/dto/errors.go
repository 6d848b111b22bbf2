package dto

import "errors"

var ErrInvalidSlotTime = errors.New("jam slot tidak valid: format HH:mm dan start < end")
