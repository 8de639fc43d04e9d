package rostererrors

import (
	"net/http"

	"visionmines/internal/shared/apperror"
)

var (
	ErrViewNotFound = apperror.New(
		apperror.CodeNotFound,
		"Dashboard view not found or expired",
		http.StatusNotFound,
	)
	ErrUnknownTeamLead = apperror.New(
		apperror.CodeInvalidInput,
		"Selected team lead is not part of this roster",
		http.StatusBadRequest,
	)
	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to export roster",
		http.StatusInternalServerError,
	)
)
