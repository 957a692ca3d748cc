// Package gormstore implementa el contrato de store con GORM directamente
// sobre PostgreSQL (Supabase es Postgres, así que sirve para despliegues con
// acceso directo a la base). También es el backend de los tests del motor,
// usando el driver sqlite en memoria.
package gormstore

import (
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/genexamen/genexamen-backend/models"
	"github.com/genexamen/genexamen-backend/store"
)

// Open conecta a PostgreSQL con pooling y migra el esquema.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate crea/actualiza las siete tablas del modelo.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Carrera{},
		&models.Asignatura{},
		&models.Partida{},
		&models.ProgramaAnalitico{},
		&models.Unidad{},
		&models.Pregunta{},
		&models.Opcion{},
	)
}

// New construye el Store completo sobre una conexión GORM.
func New(db *gorm.DB) *store.Store {
	return &store.Store{
		Carreras:    &carreraRepo{db},
		Asignaturas: &asignaturaRepo{db},
		Partidas:    &partidaRepo{db},
		Programas:   &programaRepo{db},
		Unidades:    &unidadRepo{db},
		Preguntas:   &preguntaRepo{db},
		Opciones:    &opcionRepo{db},
	}
}

// traducir convierte errores de GORM a la taxonomía del paquete store.
func traducir(op, tabla string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return &store.StoreError{Op: op, Tabla: tabla, Err: err}
}

func paginar(q *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	return q
}
