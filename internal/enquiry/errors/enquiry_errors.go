package enquiryerrors

import (
	"net/http"

	"visionmines/internal/shared/apperror"
)

var (
	ErrViewNotFound = apperror.New(
		apperror.CodeNotFound,
		"Enquiry view not found or expired",
		http.StatusNotFound,
	)
	ErrEnquiryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Enquiry not found",
		http.StatusNotFound,
	)
	ErrNoLineItems = apperror.New(
		apperror.CodeInvalidInput,
		"Add at least one PPE item before submitting",
		http.StatusBadRequest,
	)
	ErrNoValidLineItems = apperror.New(
		apperror.CodeInvalidInput,
		"At least one PPE item needs a name and a quantity above zero",
		http.StatusBadRequest,
	)
	ErrLineItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"PPE item not found",
		http.StatusNotFound,
	)
	ErrDocumentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Document not found",
		http.StatusNotFound,
	)
	ErrUnsupportedDocument = apperror.New(
		apperror.CodeInvalidInput,
		"Only PDF, DOC, DOCX, JPG, JPEG and PNG files are accepted",
		http.StatusBadRequest,
	)
	ErrNoDocuments = apperror.New(
		apperror.CodeInvalidInput,
		"No files were uploaded",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Only pending enquiries can be approved or rejected",
		http.StatusBadRequest,
	)
)
