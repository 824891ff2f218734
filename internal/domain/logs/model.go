// Package logs implementa los cinco tipos de registro que cuelgan de un perfil:
// tomas, sueño, pañales, crecimiento y recuerdos. Todos son append/delete-only
// (sin update) y se listan del más reciente al más antiguo.
package logs

import "time"

// Feeding es una toma registrada. Amount en ml, Duration en minutos.
type Feeding struct {
	ID       int64       `json:"id"`
	BabyID   int64       `json:"babyId"`
	Type     FeedingType `json:"type"`
	Amount   *int        `json:"amount,omitempty"`
	Duration *int        `json:"duration,omitempty"`
	Side     Side        `json:"side,omitempty"`
	Time     time.Time   `json:"time"`
}

// SleepLog es una sesión de sueño. EndTime puede quedar abierto; Duration
// (minutos) SIEMPRE la deriva el servidor de start/end, nunca el cliente.
type SleepLog struct {
	ID        int64      `json:"id"`
	BabyID    int64      `json:"babyId"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Duration  *int       `json:"duration,omitempty"`
}

type DiaperLog struct {
	ID     int64      `json:"id"`
	BabyID int64      `json:"babyId"`
	Type   DiaperType `json:"type"`
	Time   time.Time  `json:"time"`
	Notes  string     `json:"notes,omitempty"`
}

// GrowthLog guarda medidas puntuales: Height/HeadCircumference en cm,
// Weight en kg. Todas opcionales; en el wire van como float64.
type GrowthLog struct {
	ID                int64     `json:"id"`
	BabyID            int64     `json:"babyId"`
	Height            *float64  `json:"height,omitempty"`
	Weight            *float64  `json:"weight,omitempty"`
	HeadCircumference *float64  `json:"headCircumference,omitempty"`
	Date              time.Time `json:"date"`
}

type Memory struct {
	ID          int64     `json:"id"`
	BabyID      int64     `json:"babyId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Emoji       string    `json:"emoji,omitempty"`
}
