//go:build ignore

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Ручная проверка работающего сервиса: поиск, featured, геокодирование.
// Запуск: go run scripts/smoke_search.go -addr http://localhost:3001
func main() {
	addr := flag.String("addr", "http://localhost:3001", "base URL of a running instance")
	lat := flag.Float64("lat", 40.7128, "latitude")
	lon := flag.Float64("lon", -74.0060, "longitude")
	query := flag.String("q", "restaurants", "search category or free text")
	flag.Parse()

	client := &http.Client{Timeout: 60 * time.Second}

	endpoints := []string{
		fmt.Sprintf("%s/health", *addr),
		fmt.Sprintf("%s/api/places/search?lat=%f&lon=%f&q=%s&limit=3", *addr, *lat, *lon, url.QueryEscape(*query)),
		fmt.Sprintf("%s/api/places/featured?lat=%f&lon=%f", *addr, *lat, *lon),
		fmt.Sprintf("%s/api/places/categories", *addr),
		fmt.Sprintf("%s/api/places/geocode?location=%s", *addr, url.QueryEscape("New York")),
		fmt.Sprintf("%s/api/places/reverse-geocode?lat=%f&lon=%f", *addr, *lat, *lon),
	}

	for _, endpoint := range endpoints {
		fmt.Printf("\n==> GET %s\n", endpoint)

		resp, err := client.Get(endpoint)
		if err != nil {
			log.Fatalf("Request failed: %v", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			log.Fatalf("Failed to read response: %v", err)
		}

		fmt.Printf("    Status: %s\n", resp.Status)

		var pretty map[string]interface{}
		if err := json.Unmarshal(body, &pretty); err != nil {
			fmt.Printf("%s\n", body)
			continue
		}
		out, _ := json.MarshalIndent(pretty, "", "  ")
		fmt.Printf("%s\n", out)
	}

	fmt.Println("\n✅ Smoke run finished")
}
