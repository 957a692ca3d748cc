package models

type Pregunta struct {
	PreguntaID  int64  `gorm:"column:pregunta_id;primaryKey;autoIncrement" json:"pregunta_id"`
	Enunciado   string `gorm:"type:text;not null" json:"enunciado"`
	Numero      int    `gorm:"not null" json:"numero"`
	Explicacion string `gorm:"type:text" json:"explicacion,omitempty"`
	UnidadID    int64  `gorm:"column:unidad_id;not null" json:"unidad_id"`

	Opciones []Opcion `gorm:"foreignKey:PreguntaID;constraint:OnDelete:CASCADE" json:"opciones,omitempty"`
}

func (Pregunta) TableName() string {
	return "pregunta"
}
