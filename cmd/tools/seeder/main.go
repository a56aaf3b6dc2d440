package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping DB: %v", err)
	}

	seedProducts(db)
	seedMarketPrices(db)
	seedKnowledge(db)

	log.Println("Seeding completed successfully!")
}

func seedProducts(db *sql.DB) {
	products := []struct {
		Metal       string
		Name        string
		Weight      float64
		Purity      string
		Price       int64
		Description string
		Condition   string
		Stock       string
	}{
		{"Gold", "Antam Gold Bar 1g", 1, "99.99%", 2360000, "Certified Antam fine gold bar, sealed with certificate.", "New", `{"Jakarta": 12, "Surabaya": 4}`},
		{"Gold", "Antam Gold Bar 5g", 5, "99.99%", 11650000, "Certified Antam fine gold bar, sealed with certificate.", "New", `{"Jakarta": 6}`},
		{"Gold", "UBS Gold Bar 10g", 10, "99.99%", 23100000, "UBS gold bar with Kinebar hologram certificate.", "New", `{"Jakarta": 3, "Bandung": 2}`},
		{"Gold", "Gold Maple Leaf 1oz", 31.1, "99.99%", 73500000, "Royal Canadian Mint Maple Leaf bullion coin.", "Second", `{"Jakarta": 1}`},
		{"Silver", "Silver Bar 100g", 100, "99.9%", 3200000, "Fine silver cast bar with assay card.", "New", `{"Jakarta": 20, "Surabaya": 10}`},
		{"Silver", "Silver Bar 250g", 250, "99.9%", 7800000, "Fine silver cast bar with assay card.", "New", `{"Jakarta": 8}`},
		{"Silver", "American Silver Eagle 1oz", 31.1, "99.9%", 1150000, "US Mint Silver Eagle bullion coin.", "Second", `{"Jakarta": 15}`},
	}

	fmt.Println("Seeding Products...")
	for _, p := range products {
		_, err := db.Exec(`
			INSERT INTO products (metal, name, weight, purity, price, description, condition, warehouse_stock)
			SELECT $1, $2, $3, $4, $5, $6, $7, $8::jsonb
			WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $2)`,
			p.Metal, p.Name, p.Weight, p.Purity, p.Price, p.Description, p.Condition, p.Stock)
		if err != nil {
			log.Fatalf("Failed to seed product %s: %v", p.Name, err)
		}
	}
}

func seedMarketPrices(db *sql.DB) {
	fmt.Println("Seeding Market Prices...")
	var id string
	err := db.QueryRow(`SELECT id FROM market_prices LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		err = db.QueryRow(`
			INSERT INTO market_prices (gold_price, silver_price)
			VALUES (2360000, 32000)
			RETURNING id`).Scan(&id)
	}
	if err != nil {
		log.Fatalf("Failed to seed market prices: %v", err)
	}
	// Operators pin the API to this row.
	log.Printf("Set MARKET_PRICE_ID=%s", id)
}

func seedKnowledge(db *sql.DB) {
	articles := []struct {
		Title   string
		Content string
	}{
		{"How gold purity is graded", "Fine gold is graded in karats or fineness; 99.99% fineness equals 24 karat."},
		{"Storing silver bars safely", "Keep silver in airtight capsules away from sulphur sources to avoid tarnish."},
		{"Reading an assay certificate", "An assay certificate records the bar's weight, fineness and serial number."},
	}

	fmt.Println("Seeding Knowledge Articles...")
	for _, a := range articles {
		_, err := db.Exec(`
			INSERT INTO knowledge (title, content)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM knowledge WHERE title = $1)`,
			a.Title, a.Content)
		if err != nil {
			log.Fatalf("Failed to seed knowledge article %s: %v", a.Title, err)
		}
	}
}
