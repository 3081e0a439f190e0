package utils

import (
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// RandomDelay pauses execution for a random time between min and max (milliseconds)
func RandomDelay(min, max int) {
	time.Sleep(randomDuration(min, max))
}

func randomDuration(min, max int) time.Duration {
	if min >= max {
		return time.Duration(min) * time.Millisecond
	}
	return time.Duration(rand.Intn(max-min)+min) * time.Millisecond
}

// SmoothScroll scrolls like a reader and ends at the bottom to trigger lazy loading
func SmoothScroll(page playwright.Page) error {
	// Scroll down a bit
	if err := page.Mouse().Wheel(0, 500); err != nil {
		return err
	}
	RandomDelay(500, 1000)

	// Scroll up a tiny bit (human-like correction)
	if err := page.Mouse().Wheel(0, -200); err != nil {
		return err
	}
	RandomDelay(500, 800)

	_, err := page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
	return err
}
