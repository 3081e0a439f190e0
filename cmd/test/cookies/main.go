package main

import (
	"fmt"
	"log"
	"os"

	"glassdoor-scraper/internal/browser"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: cookies <cookies.json>")
	}

	fmt.Println("🍪 Testing cookie loading...")

	cookies, err := browser.LoadCookies(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to load cookies: %v", err)
	}

	fmt.Printf("✅ Loaded %d cookies\n", len(cookies))

	for _, c := range cookies {
		domain := ""
		if c.Domain != nil {
			domain = *c.Domain
		}
		secure := c.Secure != nil && *c.Secure
		fmt.Printf("   %s (domain: %s, secure: %t)\n", c.Name, domain, secure)
	}
}
