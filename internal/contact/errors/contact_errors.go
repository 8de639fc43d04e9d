package contacterrors

import (
	"net/http"

	"visionmines/internal/shared/apperror"
)

var ErrViewNotFound = apperror.New(
	apperror.CodeNotFound,
	"Contact view not found or expired",
	http.StatusNotFound,
)
