package domain

import "time"

// AccessEvent records one authenticated API call.
type AccessEvent struct {
	UserID     int64     `json:"usuario_id" bson:"usuario_id"`
	Email      string    `json:"usuario_email" bson:"usuario_email"`
	Method     string    `json:"metodo" bson:"metodo"`
	Path       string    `json:"ruta" bson:"ruta"`
	Status     int       `json:"estado_http" bson:"estado_http"`
	RemoteIP   string    `json:"ip" bson:"ip"`
	DurationMS int64     `json:"duracion_ms" bson:"duracion_ms"`
	At         time.Time `json:"creado" bson:"creado"`
}
