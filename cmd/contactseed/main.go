package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"contacthub/contact"
	"contacthub/pkg/config"
	"contacthub/postgres"

	_ "github.com/lib/pq"
)

func main() {
	var (
		csvPath string
		limit   int
	)

	flag.StringVar(&csvPath, "csv", "contacts.csv", "Path to the contacts CSV file")
	flag.IntVar(&limit, "limit", 0, "Limit number of rows to import (0 = all)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     fmt.Sprintf("%d", cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		slog.Error("cannot open postgres connection", "error", err)
		os.Exit(1)
	}

	repo := postgres.NewContactRepository(db)

	imported, skipped, err := importContacts(context.Background(), repo, csvPath, limit)
	if err != nil {
		slog.Error("import failed", "error", err)
		os.Exit(1)
	}

	slog.Info("import completed", "imported", imported, "skipped", skipped)
}

// importContacts reads rows from csvPath and stores each one through the
// repository. Rows that fail domain validation are counted and skipped, so a
// single bad line never aborts the run.
func importContacts(ctx context.Context, repo contact.Repository, csvPath string, limit int) (int, int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	columns, err := parseContactCSVHeader(reader)
	if err != nil {
		return 0, 0, err
	}

	imported, skipped := 0, 0
	for limit <= 0 || imported < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, skipped, err
		}

		fields, err := parseContactRecord(record, columns)
		if err != nil {
			slog.Warn("skipping row", "error", err)
			skipped++
			continue
		}

		if _, err := repo.CreateContact(ctx, fields); err != nil {
			return imported, skipped, err
		}
		imported++
	}

	return imported, skipped, nil
}

// contactColumns maps the CSV header to field positions. Name and email are
// required; everything else is optional.
type contactColumns struct {
	name, email, phone, company, category, avatar, favorite int
}

func parseContactCSVHeader(reader *csv.Reader) (contactColumns, error) {
	header, err := reader.Read()
	if err != nil {
		return contactColumns{}, err
	}

	cols := contactColumns{name: -1, email: -1, phone: -1, company: -1, category: -1, avatar: -1, favorite: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "name":
			cols.name = i
		case "email":
			cols.email = i
		case "phone":
			cols.phone = i
		case "company":
			cols.company = i
		case "category":
			cols.category = i
		case "avatar":
			cols.avatar = i
		case "favorite", "is_favorite":
			cols.favorite = i
		}
	}
	if cols.name == -1 || cols.email == -1 {
		return contactColumns{}, errors.New("missing required name/email columns in csv header")
	}

	return cols, nil
}

func parseContactRecord(record []string, cols contactColumns) (contact.Fields, error) {
	category, err := contact.ParseCategory(field(record, cols.category))
	if err != nil {
		return contact.Fields{}, err
	}

	favorite := false
	if raw := field(record, cols.favorite); raw != "" {
		favorite, err = strconv.ParseBool(raw)
		if err != nil {
			return contact.Fields{}, fmt.Errorf("invalid favorite value %q", raw)
		}
	}

	fields := contact.Fields{
		Name:       field(record, cols.name),
		Email:      field(record, cols.email),
		Phone:      field(record, cols.phone),
		Company:    field(record, cols.company),
		Category:   category,
		Avatar:     field(record, cols.avatar),
		IsFavorite: favorite,
	}.Sanitized()

	if err := fields.Validate(); err != nil {
		return contact.Fields{}, err
	}

	return fields, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
