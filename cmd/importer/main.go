package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"restaurant-finder-api/internal/config"
	"restaurant-finder-api/internal/repository"

	"github.com/jackc/pgx/v5"
)

// AddressRecord is one row of the address CSV: address,lat,lng
type AddressRecord struct {
	Address string
	Lat     float64
	Lng     float64
}

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	configDir := flag.String("config", "configs", "Directory containing app.env")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	f, err := os.Open(*file)
	if err != nil {
		fmt.Printf("Error opening CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	records, err := parseCSV(f)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d records\n", len(records))

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.DBSource == "" {
		fmt.Println("Error: DB_SOURCE is not set")
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, repository.Schema); err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	n, err := insertRecords(ctx, conn, records)
	if err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d records\n", n)
}

func parseCSV(r io.Reader) ([]AddressRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []AddressRecord
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 3 {
			return nil, fmt.Errorf("line %d: invalid record length: %d, expected at least 3 columns", line, len(record))
		}

		address := strings.TrimSpace(record[0])
		if address == "" {
			return nil, fmt.Errorf("line %d: empty address", line)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil || lat < -90 || lat > 90 {
			return nil, fmt.Errorf("line %d: invalid latitude: %s", line, record[1])
		}

		lng, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil || lng < -180 || lng > 180 {
			return nil, fmt.Errorf("line %d: invalid longitude: %s", line, record[2])
		}

		records = append(records, AddressRecord{Address: address, Lat: lat, Lng: lng})
	}

	return records, nil
}

func insertRecords(ctx context.Context, conn *pgx.Conn, records []AddressRecord) (int64, error) {
	// Use CopyFrom for bulk insert
	return conn.CopyFrom(
		ctx,
		pgx.Identifier{"addresses"},
		[]string{"address", "geom"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			r := records[i]
			geom := fmt.Sprintf("SRID=4326;POINT(%f %f)", r.Lng, r.Lat) // PostGIS format: lon lat
			return []interface{}{r.Address, geom}, nil
		}),
	)
}
