package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/takab/inventario-golang/internal/database"
	"github.com/takab/inventario-golang/internal/handlers"
	"github.com/takab/inventario-golang/internal/repository"
	"github.com/takab/inventario-golang/internal/routes"
)

func main() {
	// Load environment variables from the .env file.
	if err := godotenv.Load(); err != nil {
		log.Println("Advertencia: no se encontró archivo .env, usando variables de entorno")
	}

	// Connect to the database.
	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("No se pudo conectar a la base de datos: %v", err)
	}
	defer db.Close()
	log.Println("Conexión a la base de datos establecida")

	// Apply the schema.
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Error al aplicar el esquema: %v", err)
	}

	h := &handlers.Handlers{
		Users:    &repository.UserRepository{DB: db},
		Products: &repository.ProductRepository{DB: db},
		Catalog:  &repository.CatalogRepository{DB: db},
		Requests: &repository.RequestRepository{DB: db},
		Stats:    &repository.DashboardRepository{DB: db},
	}

	router := routes.SetupRouter(h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Servidor escuchando en el puerto %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("El servidor no pudo iniciar: %v", err)
	}
}
