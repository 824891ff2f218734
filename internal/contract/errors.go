package contract

// ErrorBody es el cuerpo JSON de toda respuesta de error de la API.
// Field solo viene en errores de validación (400).
type ErrorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ValidationError describe la primera restricción violada del cuerpo de un
// request: campo requerido ausente, tipo incorrecto o valor fuera del enum.
// Los handlers la traducen 1:1 a un 400 con ErrorBody.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func Required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}
