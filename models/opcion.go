package models

type Opcion struct {
	OpcionID   int64  `gorm:"column:opcion_id;primaryKey;autoIncrement" json:"opcion_id"`
	Opcion     string `gorm:"type:text;not null" json:"opcion"`
	EsCorrecta bool   `gorm:"column:es_correcta;not null;default:false" json:"es_correcta"`
	MediaURL   string `gorm:"column:media_url;type:text" json:"media_url,omitempty"`
	PreguntaID int64  `gorm:"column:pregunta_id;not null" json:"pregunta_id"`
}

func (Opcion) TableName() string {
	return "opcion"
}
