package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/edgarceron/toptal-project/internal/domain"
	"github.com/edgarceron/toptal-project/internal/repository"
	"github.com/edgarceron/toptal-project/internal/service"
	"github.com/edgarceron/toptal-project/internal/transport/http/middleware"
	"github.com/edgarceron/toptal-project/pkg/validator"
)

type ApartmentHandler struct {
	apartmentService *service.ApartmentService
}

func NewApartmentHandler(apartmentService *service.ApartmentService) *ApartmentHandler {
	return &ApartmentHandler{apartmentService: apartmentService}
}

func (h *ApartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var input service.CreateApartmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateApartment(input.Title, input.Description, input.Location, input.Price, input.Bedrooms, input.DateAdded, input.Image); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	apartment, err := h.apartmentService.Create(r.Context(), input, user.Username)
	if err != nil {
		log.Printf("ERROR create apartment: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, apartment)
}

func (h *ApartmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	apartment, err := h.apartmentService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeApartmentError(w, "get apartment", err)
		return
	}
	writeJSON(w, http.StatusOK, apartment)
}

// Image streams the blob referenced by the apartment record.
func (h *ApartmentHandler) Image(w http.ResponseWriter, r *http.Request) {
	data, err := h.apartmentService.GetImage(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeApartmentError(w, "get apartment image", err)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(data)
}

func (h *ApartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var input service.UpdateApartmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateApartmentPatch(input.Title, input.Description, input.Location, input.Price, input.Bedrooms); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	apartment, err := h.apartmentService.Update(r.Context(), r.PathValue("id"), user.Username, input)
	if err != nil {
		h.writeApartmentError(w, "update apartment", err)
		return
	}

	writeJSON(w, http.StatusOK, apartment)
}

func (h *ApartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	if err := h.apartmentService.Delete(r.Context(), r.PathValue("id"), user.Username); err != nil {
		h.writeApartmentError(w, "delete apartment", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListMine returns one page of the caller's own listings.
func (h *ApartmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	page, err := strconv.ParseInt(r.PathValue("page"), 10, 64)
	if err != nil || page < 1 {
		writeError(w, http.StatusBadRequest, "INVALID_PAGE", "Page must be a positive integer")
		return
	}

	apartments, err := h.apartmentService.ListByRealtor(r.Context(), user.Username, page)
	if err != nil {
		log.Printf("ERROR list apartments: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if apartments == nil {
		apartments = []domain.Apartment{}
	}
	writeJSON(w, http.StatusOK, apartments)
}

func (h *ApartmentHandler) Search(w http.ResponseWriter, r *http.Request) {
	var query service.GeoSearchInput
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateGeoSearch(query.Radius, query.Unit, query.Lat, query.Lon, query.Page); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	apartments, err := h.apartmentService.SearchByRadius(r.Context(), query)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedUnit) {
			writeError(w, http.StatusBadRequest, "UNSUPPORTED_UNIT", "Radius unit must be km or mi")
			return
		}
		log.Printf("ERROR search apartments: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if apartments == nil {
		apartments = []domain.Apartment{}
	}
	writeJSON(w, http.StatusOK, apartments)
}

func (h *ApartmentHandler) writeApartmentError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid apartment ID")
	case errors.Is(err, service.ErrApartmentNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Apartment not found")
	case errors.Is(err, service.ErrNotOwner):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "You do not own this apartment")
	default:
		log.Printf("ERROR %s: %v", op, err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
