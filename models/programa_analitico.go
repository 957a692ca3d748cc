package models

// ProgramaAnalitico representa una versión del programa de una asignatura.
// La columna de la clave primaria conserva el nombre histórico
// linea_educativa_id que usa la base de datos.
type ProgramaAnalitico struct {
	LineaEducativaID int64  `gorm:"column:linea_educativa_id;primaryKey;autoIncrement" json:"linea_educativa_id"`
	Titulo           string `gorm:"size:255;not null" json:"titulo"`
	Contexto         string `gorm:"type:text" json:"contexto"`
	AsignaturaID     int64  `gorm:"column:asignatura_id;not null" json:"asignatura_id"`

	Unidades []Unidad `gorm:"foreignKey:ProgramaAnaliticoID;constraint:OnDelete:CASCADE" json:"unidades,omitempty"`
}

func (ProgramaAnalitico) TableName() string {
	return "programaanalitico"
}
