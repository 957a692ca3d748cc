package models

type Carrera struct {
	CarreraID   int64  `gorm:"column:carrera_id;primaryKey;autoIncrement" json:"carrera_id"`
	Descripcion string `gorm:"type:text;not null" json:"descripcion"`

	Asignaturas []Asignatura `gorm:"foreignKey:CarreraID;constraint:OnDelete:CASCADE" json:"asignaturas,omitempty"`
}

func (Carrera) TableName() string {
	return "carrera"
}
