package repo

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rogerio-castellano/inventory-cli/internal/models"
	"github.com/shopspring/decimal"
)

const (
	// MaxQuantity bounds a single product's stock so totals stay in range.
	MaxQuantity = 1_000_000_000
	// MaxPrice is the exclusive upper bound for a unit price.
	MaxPrice = 1e15
)

// Backing file layout: one "name,quantity,price" record per line, no header.
const fieldsPerRecord = 3

var maxPrice = decimal.NewFromFloat(MaxPrice)

// encodeProducts writes products in sequence order as "%s,%d,%.2f" lines.
// Names are written verbatim unless they hold a comma, in which case the name
// is CSV quoted. Line breaks cannot be represented.
func encodeProducts(w io.Writer, products []models.Product) error {
	bw := bufio.NewWriter(w)
	for _, p := range products {
		if strings.ContainsAny(p.Name, "\r\n") {
			return fmt.Errorf("product name %q contains a line break", p.Name)
		}
		if strings.Contains(p.Name, ",") {
			cw := csv.NewWriter(bw)
			if err := cw.Write([]string{p.Name, strconv.Itoa(p.Quantity), formatPrice(p.Price)}); err != nil {
				return err
			}
			cw.Flush()
			if err := cw.Error(); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s,%d,%s\n", p.Name, p.Quantity, formatPrice(p.Price)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// decodeProducts reads every record of r. It stops at the first malformed
// record and returns an error wrapping ErrMalformedRecord with its line number.
// Names longer than maxNameLength runes are malformed; zero disables the check.
func decodeProducts(r io.Reader, maxNameLength int) ([]models.Product, error) {
	sc := bufio.NewScanner(r)
	products := []models.Product{}
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if text == "" {
			continue
		}
		p, err := decodeRecord(splitRecord(text), maxNameLength)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, line, err)
		}
		products = append(products, p)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, line+1, err)
		}
		return nil, err
	}
	return products, nil
}

// splitRecord separates a line into its fields. A quoted name is only
// recognised when it holds a comma, which plain names never do; every other
// line splits on its last two commas so quotes in plain names are kept.
func splitRecord(text string) []string {
	if strings.HasPrefix(text, `"`) {
		cr := csv.NewReader(strings.NewReader(text))
		cr.FieldsPerRecord = fieldsPerRecord
		if record, err := cr.Read(); err == nil && strings.Contains(record[0], ",") {
			return record
		}
	}

	last := strings.LastIndex(text, ",")
	if last < 0 {
		return []string{text}
	}
	mid := strings.LastIndex(text[:last], ",")
	if mid < 0 {
		return []string{text[:last], text[last+1:]}
	}
	return []string{text[:mid], text[mid+1 : last], text[last+1:]}
}

func decodeRecord(record []string, maxNameLength int) (models.Product, error) {
	if len(record) != fieldsPerRecord {
		return models.Product{}, fmt.Errorf("expected %d fields, got %d", fieldsPerRecord, len(record))
	}

	name := record[0]
	if strings.TrimSpace(name) == "" {
		return models.Product{}, errors.New("missing name")
	}
	if maxNameLength > 0 && utf8.RuneCountInString(name) > maxNameLength {
		return models.Product{}, fmt.Errorf("name longer than %d characters", maxNameLength)
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid quantity %q", record[1])
	}
	if quantity < 0 || quantity > MaxQuantity {
		return models.Product{}, fmt.Errorf("quantity %d out of range", quantity)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(record[2]))
	if err != nil {
		return models.Product{}, fmt.Errorf("invalid price %q", record[2])
	}
	if price.IsNegative() || !price.LessThan(maxPrice) {
		return models.Product{}, fmt.Errorf("price %s out of range", record[2])
	}

	return models.Product{Name: name, Quantity: quantity, Price: price.InexactFloat64()}, nil
}

func formatPrice(price float64) string {
	return decimal.NewFromFloat(price).StringFixed(2)
}

// roundPrice keeps an in-memory price equal to what the backing file will hold.
func roundPrice(price float64) float64 {
	return decimal.NewFromFloat(price).Round(2).InexactFloat64()
}
