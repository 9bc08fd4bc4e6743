package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go-ideas/internal/config"
	"go-ideas/internal/history"
	"go-ideas/internal/holidays"
	"go-ideas/internal/ideas"
	"go-ideas/internal/llm"
)

const lastResponseFile = "last_response.txt"

func main() {
	var industry, date, country, configPath string
	flag.StringVar(&industry, "i", "", "industry, e.g. Bakery")
	flag.StringVar(&industry, "industry", "", "industry, e.g. Bakery")
	flag.StringVar(&date, "d", "", "date (YYYY-MM-DD or YYYY)")
	flag.StringVar(&date, "date", "", "date (YYYY-MM-DD or YYYY)")
	flag.StringVar(&country, "c", "", "country code, e.g. PL")
	flag.StringVar(&country, "country", "", "country code, e.g. PL")
	flag.StringVar(&configPath, "config", "config.json", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)
	if industry == "" {
		industry = promptLine(reader, "Industry: ")
	}
	if date == "" {
		date = promptLine(reader, "Date (YYYY-MM-DD or YYYY): ")
	}
	if country == "" {
		country = cfg.Holidays.DefaultCountry
	}

	if industry == "" || date == "" {
		fmt.Println("Industry and date are required.")
		os.Exit(1)
	}

	keyPresent := "NO"
	if cfg.Anthropic.APIKey != "" {
		keyPresent = "YES"
	}
	fmt.Println("=== DIAGNOSTICS ===")
	fmt.Printf("ANTHROPIC_API_KEY: %s\n", keyPresent)
	fmt.Printf("ANTHROPIC_BASE_URL: %s\n", cfg.Anthropic.BaseURL)
	fmt.Printf("ALLOW_MOCKS: %v\n", cfg.AllowMocks)
	fmt.Println("===================")

	store, err := history.Init(cfg.Storage.DSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "History init error: %v\n", err)
		os.Exit(1)
	}

	holidaySource := holidays.NewClient(cfg.Holidays.BaseURL, cfg.Holidays.Timeout())
	svc := ideas.NewService(llm.New(cfg.Anthropic), holidaySource, store, cfg.AllowMocks)

	result, err := svc.Generate(context.Background(), industry, date, country)
	if err != nil {
		fmt.Printf("An error occurred: %v\n", err)
		writeLastResponse(fmt.Sprintf("ERROR:\n%v\n", err))
		os.Exit(1)
	}

	pretty, err := prettyJSON(result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to render result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(pretty)
	writeLastResponse(pretty)
}

func promptLine(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// prettyJSON indents with two spaces and keeps non-ASCII characters as-is.
func prettyJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func writeLastResponse(content string) {
	if err := os.WriteFile(lastResponseFile, []byte(content), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", lastResponseFile, err)
	}
}
