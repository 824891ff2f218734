package babies

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"baby-tracker/internal/contract"
	"baby-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	ep := contract.Babies
	r.MethodFunc(ep.List.Method, ep.List.Path, listBabiesHandler(svc))
	r.MethodFunc(ep.Get.Method, ep.Get.Path, getBabyHandler(svc))
	r.MethodFunc(ep.Create.Method, ep.Create.Path, createBabyHandler(svc))
	r.MethodFunc(ep.Update.Method, ep.Update.Path, updateBabyHandler(svc))
	r.MethodFunc(ep.Delete.Method, ep.Delete.Path, deleteBabyHandler(svc))
}

// createBabyRequest es el cuerpo para crear un perfil. Los campos generados
// por el servidor (id, createdAt) no se aceptan del cliente.
type createBabyRequest struct {
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birthDate"` // RFC3339, opcional
}

// updateBabyRequest es un PUT parcial: punteros nil = no tocar.
// Para birthDate distinguimos null de ausente decodificando el raw primero.
type updateBabyRequest struct {
	Name   *string `json:"name"`
	Gender *string `json:"gender"`
}

func listBabiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		items, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		writeJSON(w, http.StatusOK, items)
	}
}

func getBabyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, ok := parseID(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "Baby not found")
			return
		}

		b, err := svc.AssertOwner(r.Context(), id, claims.UserID)
		if err != nil {
			writeOwnershipError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, b)
	}
}

func createBabyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req createBabyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := time.Parse(time.RFC3339, req.BirthDate)
			if err != nil {
				writeValidation(w, contract.Invalid("birthDate", "birthDate must be RFC3339"))
				return
			}
			bd = &t
		}

		b, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:      req.Name,
			Gender:    req.Gender,
			BirthDate: bd,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, b)
	}
}

func updateBabyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, ok := parseID(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "Baby not found")
			return
		}

		if _, err := svc.AssertOwner(r.Context(), id, claims.UserID); err != nil {
			writeOwnershipError(w, err)
			return
		}

		// Decodificamos a raw primero para detectar birthDate: null vs ausente.
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		var req updateBabyRequest
		{
			b, _ := json.Marshal(raw)
			if err := json.Unmarshal(b, &req); err != nil {
				writeError(w, http.StatusBadRequest, "invalid json")
				return
			}
		}

		bd := OptionalTime{}
		if v, exists := raw["birthDate"]; exists {
			bd.Present = true
			if string(v) != "null" {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					writeValidation(w, contract.Invalid("birthDate", "birthDate must be RFC3339 or null"))
					return
				}
				t, err := time.Parse(time.RFC3339, s)
				if err != nil {
					writeValidation(w, contract.Invalid("birthDate", "birthDate must be RFC3339 or null"))
					return
				}
				bd.Value = &t
			}
		}

		updated, err := svc.Update(r.Context(), id, UpdateInput{
			Name:      req.Name,
			Gender:    req.Gender,
			BirthDate: bd,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func deleteBabyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, ok := parseID(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "Baby not found")
			return
		}

		if _, err := svc.AssertOwner(r.Context(), id, claims.UserID); err != nil {
			writeOwnershipError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeOwnershipError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "Baby not found")
	case errors.Is(err, ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	default:
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	var ve *contract.ValidationError
	switch {
	case errors.As(err, &ve):
		writeValidation(w, ve)
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "Baby not found")
	default:
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func writeValidation(w http.ResponseWriter, ve *contract.ValidationError) {
	writeJSON(w, http.StatusBadRequest, contract.ErrorBody{Message: ve.Message, Field: ve.Field})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, contract.ErrorBody{Message: msg})
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (babies/logs) para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
