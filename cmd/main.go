package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/genexamen/genexamen-backend/config"
	"github.com/genexamen/genexamen-backend/routes"
	"github.com/genexamen/genexamen-backend/services"
	"github.com/genexamen/genexamen-backend/store"
	"github.com/genexamen/genexamen-backend/store/gormstore"
	"github.com/genexamen/genexamen-backend/store/supabasestore"
	"github.com/genexamen/genexamen-backend/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró archivo .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuración inválida: ", err)
	}

	var (
		st   *store.Store
		ping func(ctx context.Context) error
	)

	switch cfg.Backend {
	case config.BackendPostgres:
		db, err := gormstore.Open(cfg.DB.DSN())
		if err != nil {
			log.Fatal("No se pudo conectar a la base de datos: ", err)
		}
		st = gormstore.New(db)
		ping = func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
		log.Println("Backend de datos: postgres")
	default:
		client, err := supabasestore.NewClient(cfg.Store.URL, cfg.Store.Key(), supabasestore.DefaultRetryPolicy())
		if err != nil {
			log.Fatal("No se pudo crear el cliente REST: ", err)
		}
		st = supabasestore.New(client)
		ping = client.Ping
		log.Println("Backend de datos: rest")
	}

	svcs := services.New(st)
	media := utils.NewMediaStorage(cfg.Store.URL, cfg.Store.Key())

	r := gin.Default()

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r, st, svcs, media, ping)

	log.Println("Server running at Port:" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("El servidor terminó con error: ", err)
	}
}
