package models

import "time"

type Review struct {
	ID        int       `json:"id"`
	ProductID int       `json:"producto_id"`
	UserName  string    `json:"usuario,omitempty"`
	Rating    int       `json:"calificacion"`
	Comment   string    `json:"comentario,omitempty"`
	CreatedAt time.Time `json:"fecha,omitempty"`
}

type ReviewRequest struct {
	Rating  int    `json:"calificacion" binding:"required,min=1,max=5" example:"4"`
	Comment string `json:"comentario"`
}
