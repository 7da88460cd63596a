package main

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
)

func main() {
	cfg := loadConfig()

	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		log.Fatal("❌ Cannot resolve serve directory:", err)
	}

	r := newRouter(cfg)

	fmt.Printf("✅ DHA Document Generator Server running at http://localhost:%d\n", cfg.Port)
	fmt.Printf("📄 Navigate to http://localhost:%d in your browser\n", cfg.Port)
	fmt.Println("📁 Serving files from:", dir)

	log.Fatal(http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", cfg.Port), r))
}
