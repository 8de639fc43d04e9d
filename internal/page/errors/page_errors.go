package pageerrors

import (
	"net/http"

	"visionmines/internal/shared/apperror"
)

var ErrPageNotFound = apperror.New(
	apperror.CodeNotFound,
	"Page not found",
	http.StatusNotFound,
)
