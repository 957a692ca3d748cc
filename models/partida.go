package models

type Partida struct {
	PartidaID    int64  `gorm:"column:partida_id;primaryKey;autoIncrement" json:"partida_id"`
	Descripcion  string `gorm:"type:text;not null" json:"descripcion"`
	Slug         string `gorm:"size:255;index" json:"slug"`
	AsignaturaID int64  `gorm:"column:asignatura_id;not null" json:"asignatura_id"`
}

func (Partida) TableName() string {
	return "partida"
}
