package logs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"baby-tracker/internal/contract"
	"baby-tracker/internal/domain/babies"
	"baby-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, babiesSvc *babies.Service) {
	register := func(ep contract.LogEndpoints, list, create, del http.HandlerFunc) {
		r.MethodFunc(ep.List.Method, ep.List.Path, list)
		r.MethodFunc(ep.Create.Method, ep.Create.Path, create)
		r.MethodFunc(ep.Delete.Method, ep.Delete.Path, del)
	}

	register(contract.Feedings,
		listFeedingsHandler(svc, babiesSvc),
		createFeedingHandler(svc, babiesSvc),
		deleteLogHandler(svc.DeleteFeeding))
	register(contract.SleepLogs,
		listSleepLogsHandler(svc, babiesSvc),
		createSleepLogHandler(svc, babiesSvc),
		deleteLogHandler(svc.DeleteSleepLog))
	register(contract.DiaperLogs,
		listDiaperLogsHandler(svc, babiesSvc),
		createDiaperLogHandler(svc, babiesSvc),
		deleteLogHandler(svc.DeleteDiaperLog))
	register(contract.GrowthLogs,
		listGrowthLogsHandler(svc, babiesSvc),
		createGrowthLogHandler(svc, babiesSvc),
		deleteLogHandler(svc.DeleteGrowthLog))
	register(contract.Memories,
		listMemoriesHandler(svc, babiesSvc),
		createMemoryHandler(svc, babiesSvc),
		deleteLogHandler(svc.DeleteMemory))
}

type createFeedingRequest struct {
	Type     string `json:"type" enums:"breast,bottle,formula,solids"`
	Amount   *int   `json:"amount"`
	Duration *int   `json:"duration"`
	Side     string `json:"side" enums:"left,right,both"`
	Time     string `json:"time"` // RFC3339, opcional (default: ahora)
}

// createSleepLogRequest no tiene campo duration a propósito:
// la duración siempre la calcula el servidor.
type createSleepLogRequest struct {
	StartTime string `json:"startTime"` // RFC3339
	EndTime   string `json:"endTime"`   // RFC3339, opcional (sesión abierta)
}

type createDiaperLogRequest struct {
	Type  string `json:"type" enums:"wet,dirty,both"`
	Time  string `json:"time"`
	Notes string `json:"notes"`
}

type createGrowthLogRequest struct {
	Height            *float64 `json:"height"`
	Weight            *float64 `json:"weight"`
	HeadCircumference *float64 `json:"headCircumference"`
	Date              string   `json:"date"`
}

type createMemoryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Emoji       string `json:"emoji"`
}

// --- Feedings ---

// listFeedingsHandler godoc
// @Summary Listar tomas de un bebé
// @Description Devuelve las tomas del bebé, de la más reciente a la más antigua. Solo el dueño del perfil puede verlas.
// @Tags logs
// @Produce json
// @Param babyID path int true "ID del bebé"
// @Success 200 {array} Feeding
// @Failure 401 {object} contract.ErrorBody
// @Failure 403 {object} contract.ErrorBody
// @Failure 404 {object} contract.ErrorBody
// @Router /api/babies/{babyID}/feedings [get]
func listFeedingsHandler(svc *Service, babiesSvc *babies.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		babyID, ok := authorizeBaby(w, r, babiesSvc)
		if !ok {
			return
		}
		items, err := svc.ListFeedings(r.Context(), babyID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// createFeedingHandler godoc
// @Summary Registrar una toma
// @Description Crea una toma para el bebé indicado. time en RFC3339; si falta se usa la hora actual.
// @Tags logs
// @Accept json
// @Produce json
// @Param babyID path int true "ID del bebé"
// @Param payload body createFeedingRequest true "Datos de la toma"
// @Success 201 {object} Feeding
// @Failure 400 {object} contract.ErrorBody
// @Failure 401 {object} contract.ErrorBody
// @Failure 403 {object} contract.ErrorBody
// @Failure 404 {object} contract.ErrorBody
// @Router /api/babies/{babyID}/feedings [post]
func createFeedingHandler(svc *Service, babiesSvc *babies.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		babyID, ok := authorizeBaby(w, r, babiesSvc)
		if !ok {
			return
		}

		var req createFeedingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		t, verr := parseOptTime("time", req.Time)
		if verr != nil {
			writeValidation(w, verr)
			return
		}

		f, err := svc.CreateFeeding(r.Context(), babyID, FeedingInput{
			Type:     req.Type,
			Amount:   req.Amount,
			Duration: req.Duration,
			Side:     req.Side,
			Time:     t,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, f)
	}
}

// --- Sleep logs ---

func listSleepLogsHandler(svc *Service, babiesSvc *babies.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		babyID, ok := authorizeBaby(w, r, babiesSvc)
		if !ok {
			return
		}
		items, err := svc.ListSleepLogs(r.Context(), babyID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// createSleepLogHandler godoc
// @Summary Registrar una sesión de sueño
// @Description Crea una sesión de sueño. duration la deriva el servidor de startTime/endTime (minutos, redondeado); sin endTime la sesión queda abierta y duration es null.
// @Tags logs
// @Accept json
// @Produce json
// @Param babyID path int true "ID del bebé"
// @Param payload body createSleepLogRequest true "startTime requerido, endTime opcional, ambos RFC3339"
// @Success 201 {object} SleepLog
// @Failure 400 {object} contract.ErrorBody
// @Failure 401 {object} contract.ErrorBody
// @Failure 403 {object} contract.ErrorBody
// @Failure 404 {object} contract.ErrorBody
// @Router /api/babies/{babyID}/sleep-logs [post]
func createSleepLogHandler(svc *Service, babiesSvc *babies.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		babyID, ok := authorizeBaby(w, r, babiesSvc)
		if !ok {
			return
		}

		var req createSleepLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if strings.TrimSpace(req.StartTime) == "" {
			writeValidation(w, contract.Required("startTime"))
			return
		}
		start, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			writeValidation(w, contract.Invalid("startTime", "startTime must be RFC3339"))
			return
		}
		end, verr := parseOptTime("endTime", req.EndTime)
		if verr != nil {
			writeValidation(w, verr)
			return
		}

		sl, err := svc.CreateSleepLog(r.Context(), babyID, SleepInput{
			StartTime: start,
			EndTime:   end,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, sl)
	}
}

// --- Diaper logs ---

func listDiaperLogsHandler(svc *Service, babiesSvc *babies.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		babyID, ok := authorizeBaby(w, r, babiesSvc)
		if !ok {
			return
		}
		items, err := svc.ListDiaperLogs(r.Context(), babyID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func createDiaperLogHandler(svc *Service, babiesSvc *babies.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		babyID, ok := authorizeBaby(w, r, babiesSvc)
		if !ok {
			return
		}

		var req createDiaperLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		t, verr := parseOptTime("time", req.Time)
		if verr != nil {
			writeValidation(w, verr)
			return
		}

		d, err := svc.CreateDiaperLog(r.Context(), babyID, DiaperInput{
			Type:  req.Type,
			Time:  t,
			Notes: req.Notes,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, d)
	}
}

// --- Growth logs ---

func listGrowthLogsHandler(svc *Service, babiesSvc *babies.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		babyID, ok := authorizeBaby(w, r, babiesSvc)
		if !ok {
			return
		}
		items, err := svc.ListGrowthLogs(r.Context(), babyID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func createGrowthLogHandler(svc *Service, babiesSvc *babies.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		babyID, ok := authorizeBaby(w, r, babiesSvc)
		if !ok {
			return
		}

		var req createGrowthLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		d, verr := parseOptTime("date", req.Date)
		if verr != nil {
			writeValidation(w, verr)
			return
		}

		g, err := svc.CreateGrowthLog(r.Context(), babyID, GrowthInput{
			Height:            req.Height,
			Weight:            req.Weight,
			HeadCircumference: req.HeadCircumference,
			Date:              d,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, g)
	}
}

// --- Memories ---

func listMemoriesHandler(svc *Service, babiesSvc *babies.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		babyID, ok := authorizeBaby(w, r, babiesSvc)
		if !ok {
			return
		}
		items, err := svc.ListMemories(r.Context(), babyID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func createMemoryHandler(svc *Service, babiesSvc *babies.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		babyID, ok := authorizeBaby(w, r, babiesSvc)
		if !ok {
			return
		}

		var req createMemoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		d, verr := parseOptTime("date", req.Date)
		if verr != nil {
			writeValidation(w, verr)
			return
		}

		m, err := svc.CreateMemory(r.Context(), babyID, MemoryInput{
			Title:       req.Title,
			Description: req.Description,
			Date:        d,
			Emoji:       req.Emoji,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, m)
	}
}

// deleteLogHandler sirve para los cinco tipos: requiere sesión y borra por id.
// Borrar un id inexistente igual devuelve 204 (delete idempotente).
func deleteLogHandler(del func(ctx context.Context, id int64) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			// id malformado = fila inexistente, mismo resultado
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if err := del(r.Context(), id); err != nil {
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// authorizeBaby es el paso común de TODAS las rutas anidadas: sesión presente,
// babyID numérico, perfil existente y dueño correcto. Escribe la respuesta de
// error y devuelve ok=false si algo falla.
func authorizeBaby(w http.ResponseWriter, r *http.Request, babiesSvc *babies.Service) (int64, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return 0, false
	}

	babyID, err := strconv.ParseInt(chi.URLParam(r, "babyID"), 10, 64)
	if err != nil || babyID <= 0 {
		writeError(w, http.StatusNotFound, "Baby not found")
		return 0, false
	}

	if _, err := babiesSvc.AssertOwner(r.Context(), babyID, claims.UserID); err != nil {
		switch {
		case errors.Is(err, babies.ErrNotFound):
			writeError(w, http.StatusNotFound, "Baby not found")
		case errors.Is(err, babies.ErrForbidden):
			writeError(w, http.StatusForbidden, "Forbidden")
		default:
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return 0, false
	}

	return babyID, true
}

// parseOptTime parsea un timestamp RFC3339 opcional ("" => nil).
func parseOptTime(field, s string) (*time.Time, *contract.ValidationError) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, contract.Invalid(field, field+" must be RFC3339")
	}
	return &t, nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	var ve *contract.ValidationError
	if errors.As(err, &ve) {
		writeValidation(w, ve)
		return
	}
	writeError(w, http.StatusInternalServerError, "Internal Server Error")
}

func writeValidation(w http.ResponseWriter, ve *contract.ValidationError) {
	writeJSON(w, http.StatusBadRequest, contract.ErrorBody{Message: ve.Message, Field: ve.Field})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, contract.ErrorBody{Message: msg})
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (babies/logs), igual que en el resto del código: todavía no amerita helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
