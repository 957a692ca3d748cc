package models

type Asignatura struct {
	AsignaturaID int64  `gorm:"column:asignatura_id;primaryKey;autoIncrement" json:"asignatura_id"`
	Descripcion  string `gorm:"type:text;not null" json:"descripcion"`
	CarreraID    *int64 `gorm:"column:carrera_id" json:"carrera_id"` // puede ser null

	Partidas  []Partida           `gorm:"foreignKey:AsignaturaID;constraint:OnDelete:CASCADE" json:"partidas,omitempty"`
	Programas []ProgramaAnalitico `gorm:"foreignKey:AsignaturaID;constraint:OnDelete:CASCADE" json:"programas,omitempty"`
}

func (Asignatura) TableName() string {
	return "asignatura"
}
