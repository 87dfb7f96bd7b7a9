package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"lg/macromate-go-api/internal/mealplan"
)

func main() {
	log.SetPrefix("lg/macromate-go-api: ")
	log.SetFlags(log.LstdFlags)

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env: %v", err)
	}

	cfg := loadServerConfig()
	llmCfg := mealplan.LoadConfig()

	gen, err := mealplan.NewGenerator(llmCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid meal plan provider: %v\n", err)
		os.Exit(1)
	}
	if !gen.IsAvailable() {
		log.Printf("No %s API key set; /api/meal-plan will return 503", gen.Name())
	}

	h := &Handler{
		mealPlans:    mealplan.NewService(gen, llmCfg.Timeout()),
		apiTokenHash: []byte(cfg.APITokenHash),
	}

	log.Printf("Listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, newServerHandler(h, cfg.AllowedOrigins)); err != nil {
		log.Fatal(err)
	}
}
