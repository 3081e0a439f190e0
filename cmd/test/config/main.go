package main

import (
	"fmt"
	"log"
	"os"

	"glassdoor-scraper/internal/config"
)

func main() {
	path := config.DefaultPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	fmt.Println("🔧 Testing config loading...")
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Headless: %t\n", cfg.Headless)
	fmt.Printf("   Page delay: %v\n", cfg.PageDelay())
	fmt.Printf("   Nav timeout: %v\n", cfg.NavTimeout())
	fmt.Printf("   Output dir: %s\n", cfg.OutputDir)
	fmt.Printf("   Cookies file: %s\n", cfg.CookiesFile)
	fmt.Printf("   Cache path: %s\n", cfg.CachePath)
	fmt.Printf("   Telegram summary: %t\n", cfg.NotifyEnabled())
	fmt.Printf("   Selectors:\n")
	fmt.Printf("     links:    %s\n", cfg.Selectors.Links)
	fmt.Printf("     company:  %s\n", cfg.Selectors.Company)
	fmt.Printf("     role:     %s\n", cfg.Selectors.Role)
	fmt.Printf("     location: %s\n", cfg.Selectors.Location)
	fmt.Printf("     salary:   %s\n", cfg.Selectors.Salary)
}
