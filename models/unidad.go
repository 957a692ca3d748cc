package models

type Unidad struct {
	UnidadID            int64  `gorm:"column:unidad_id;primaryKey;autoIncrement" json:"unidad_id"`
	NumeroUnidad        int    `gorm:"column:numero_unidad;not null" json:"numero_unidad"`
	Descripcion         string `gorm:"type:text;not null" json:"descripcion"`
	NumPreguntas        int    `gorm:"column:num_preguntas;not null;default:0" json:"num_preguntas"`
	ProgramaAnaliticoID int64  `gorm:"column:programa_analitico_id;not null" json:"programa_analitico_id"`

	Preguntas []Pregunta `gorm:"foreignKey:UnidadID;constraint:OnDelete:CASCADE" json:"preguntas,omitempty"`
}

func (Unidad) TableName() string {
	return "unidad"
}
