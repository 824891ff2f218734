// Package contract define la tabla de rutas compartida entre el servidor y el
// cliente API. Es la única fuente de verdad de método + path + status de éxito
// por operación: el router registra handlers desde aquí y el cliente construye
// URLs desde aquí, así nunca se desincronizan.
package contract

import (
	"fmt"
	"net/http"
	"strings"
)

// Endpoint es una entrada del contrato: método HTTP, path template con
// placeholders estilo chi ({id}, {babyID}) y status de éxito esperado.
type Endpoint struct {
	Method  string
	Path    string
	Success int
}

// LogEndpoints agrupa las tres operaciones que tiene cada tipo de log
// (sin update: los logs son append/delete-only).
type LogEndpoints struct {
	List   Endpoint
	Create Endpoint
	Delete Endpoint
}

type BabyEndpoints struct {
	List   Endpoint
	Get    Endpoint
	Create Endpoint
	Update Endpoint
	Delete Endpoint
}

var (
	Babies = BabyEndpoints{
		List:   Endpoint{Method: http.MethodGet, Path: "/api/babies", Success: http.StatusOK},
		Get:    Endpoint{Method: http.MethodGet, Path: "/api/babies/{id}", Success: http.StatusOK},
		Create: Endpoint{Method: http.MethodPost, Path: "/api/babies", Success: http.StatusCreated},
		Update: Endpoint{Method: http.MethodPut, Path: "/api/babies/{id}", Success: http.StatusOK},
		Delete: Endpoint{Method: http.MethodDelete, Path: "/api/babies/{id}", Success: http.StatusNoContent},
	}

	Feedings   = logEndpoints("feedings")
	SleepLogs  = logEndpoints("sleep-logs")
	DiaperLogs = logEndpoints("diaper-logs")
	GrowthLogs = logEndpoints("growth-logs")
	Memories   = logEndpoints("memories")
)

// logEndpoints arma el trío list/create/delete con el patrón común:
// anidado bajo el baby para list/create, top-level por id para delete.
func logEndpoints(segment string) LogEndpoints {
	return LogEndpoints{
		List:   Endpoint{Method: http.MethodGet, Path: "/api/babies/{babyID}/" + segment, Success: http.StatusOK},
		Create: Endpoint{Method: http.MethodPost, Path: "/api/babies/{babyID}/" + segment, Success: http.StatusCreated},
		Delete: Endpoint{Method: http.MethodDelete, Path: "/api/" + segment + "/{id}", Success: http.StatusNoContent},
	}
}

// BuildURL reemplaza los placeholders con valores concretos.
// Placeholders sin valor quedan intactos (el cliente lo detecta como URL inválida
// al hacer el request, no fallamos silenciosamente aquí).
func BuildURL(path string, params map[string]any) string {
	url := path
	for k, v := range params {
		url = strings.ReplaceAll(url, "{"+k+"}", fmt.Sprintf("%v", v))
	}
	return url
}
