package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"ministrysms/config"
	"ministrysms/controllers"
	"ministrysms/db"
	"ministrysms/router"
	"ministrysms/tools"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Get(getenv("CONFIG_PATH", "config.json"))

	tools.InitLogger(getenv("APP_ENV", "development"))
	defer tools.SyncLogger()

	db.SetConfigurations(cfg)
	controllers.SetConfiguration(cfg)

	database, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	if getenv("APP_ENV", "development") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(db.SetDBtoContext(database))
	router.Initialize(r)

	srv := &http.Server{
		Addr:              ":" + cfg.ApiPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Ministry SMS API listening on :%s", cfg.ApiPort)
	log.Fatal(srv.ListenAndServe())
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
