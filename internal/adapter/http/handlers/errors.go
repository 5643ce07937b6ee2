package handlers

import (
	"errors"
	"net/http"
	"strings"

	"assignment_ledger/internal/domain/entities"
	"assignment_ledger/internal/domain/ledger"
	"assignment_ledger/internal/usecase"
	"assignment_ledger/pkg"

	"github.com/gin-gonic/gin"
)

// ActorHeader identifies who performed a mutation. It is recorded in history
// as-is; no authentication happens here.
const ActorHeader = "X-Actor-ID"

const defaultActor = "system"

var (
	errInvalidRequest           = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidAssignmentPayload = pkg.NewDomainErrorSimple("INVALID_ASSIGNMENT_INPUT", "Invalid assignment payload", http.StatusBadRequest)
)

func actorFrom(c *gin.Context) string {
	if actor := strings.TrimSpace(c.GetHeader(ActorHeader)); actor != "" {
		return actor
	}
	return defaultActor
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapAssignmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssignmentID),
		errors.Is(err, usecase.ErrInvalidBeneficiaryID),
		errors.Is(err, usecase.ErrInvalidAssignmentKind),
		errors.Is(err, usecase.ErrInvalidSelectionMode),
		errors.Is(err, entities.ErrUnknownKind),
		errors.Is(err, entities.ErrTrackingRequired),
		errors.Is(err, entities.ErrTrackingNotAllowed):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingSelection):
		return pkg.NewDomainErrorSimple("MISSING_SELECTION", "At least one benefit item must be selected", http.StatusBadRequest)
	case errors.Is(err, ledger.ErrInvalidValidity), errors.Is(err, ledger.ErrInvalidTermApplicability):
		return pkg.NewDomainError("INVALID_TIME_SETTINGS", "Invalid validity or term applicability", err, http.StatusBadRequest)
	case errors.Is(err, ledger.ErrInvalidDisableEffect):
		return pkg.NewDomainErrorSimple("INVALID_DISABLE_EFFECT", "Invalid disable effect", http.StatusBadRequest)
	case errors.Is(err, ledger.ErrNoCurrentTerm):
		return pkg.NewDomainErrorSimple("NO_CURRENT_TERM", "No current term is configured; cannot disable", http.StatusBadRequest)
	case errors.Is(err, ledger.ErrInvalidDiscount):
		return pkg.NewDomainErrorSimple("INVALID_DISCOUNT", "Invalid discount", http.StatusBadRequest)
	case errors.Is(err, ledger.ErrMissingTargetingField):
		return pkg.NewDomainErrorSimple("MISSING_TARGETING_FIELD", "Beneficiary profile is missing a targeted field", http.StatusBadRequest)
	case errors.Is(err, ledger.ErrItemNotTargeted):
		return pkg.NewDomainErrorSimple("ITEM_NOT_TARGETED", "Catalog item does not target this beneficiary", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogKindMismatch):
		return pkg.NewDomainErrorSimple("CATALOG_KIND_MISMATCH", "Catalog item kind does not match assignment kind", http.StatusBadRequest)
	case errors.Is(err, ledger.ErrNotTracked):
		return pkg.NewDomainErrorSimple("ASSIGNMENT_NOT_TRACKED", "Assignment does not track quantities", http.StatusBadRequest)
	case errors.Is(err, ledger.ErrAssignmentDisabled):
		return pkg.NewDomainErrorSimple("ASSIGNMENT_DISABLED", "Assignment is disabled", http.StatusBadRequest)
	case errors.Is(err, ledger.ErrInvalidChannel):
		return pkg.NewDomainErrorSimple("INVALID_CHANNEL", "Invalid reception channel", http.StatusBadRequest)
	case errors.Is(err, ledger.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantity must be positive", http.StatusBadRequest)
	case errors.Is(err, ledger.ErrOverDelivery):
		return pkg.NewDomainErrorSimple("OVER_DELIVERY", "Quantity exceeds remaining requirement", http.StatusBadRequest)
	case errors.Is(err, ledger.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Payment amount must be positive", http.StatusBadRequest)
	case errors.Is(err, ledger.ErrOverpayment):
		return pkg.NewDomainErrorSimple("OVERPAYMENT", "Payment amount exceeds balance", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssignmentNotFound):
		return pkg.NewDomainErrorSimple("ASSIGNMENT_NOT_FOUND", "Assignment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssignmentHasActivity):
		return pkg.NewDomainErrorSimple("ASSIGNMENT_HAS_ACTIVITY", "Assignment has payments or receptions; disable it instead", http.StatusConflict)
	case errors.Is(err, usecase.ErrAssignmentVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Assignment was modified concurrently; retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrCalendarNotConfigured):
		return pkg.NewDomainError("CALENDAR_NOT_CONFIGURED", "Academic calendar is not configured", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapLedgerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNothingToCollect):
		return pkg.NewDomainErrorSimple("NOTHING_TO_COLLECT", "Assignment has no outstanding balance", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentReceiptNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReceiptNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved by the provider", http.StatusConflict)
	default:
		return mapAssignmentError(err)
	}
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCatalogItemID), errors.Is(err, usecase.ErrInvalidCatalogItem):
		return pkg.NewDomainError("INVALID_CATALOG_ITEM", "Invalid catalog item", err, http.StatusBadRequest)
	default:
		return mapAssignmentError(err)
	}
}

func mapCalendarError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCalendarEntry), errors.Is(err, usecase.ErrInvalidCalendarDates):
		return pkg.NewDomainError("INVALID_CALENDAR_ENTRY", "Invalid calendar entry", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAcademicYearNotFound):
		return pkg.NewDomainErrorSimple("ACADEMIC_YEAR_NOT_FOUND", "Academic year not found", http.StatusNotFound)
	default:
		return mapAssignmentError(err)
	}
}
