package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/drivelane/drivelane-backend/internal/models"
)

// RawRow is one spreadsheet row keyed by the header cell text, before any
// type coercion.
type RawRow map[string]string

// Ordered candidate key spellings per target field. The first present,
// non-empty value wins, mirroring how exported sheets vary header casing.
var (
	productNameKeys  = []string{"productName", "Product Name", "productname"}
	brandKeys        = []string{"brand", "Brand"}
	modelKeys        = []string{"model", "Model"}
	yearKeys         = []string{"year", "Year"}
	priceKeys        = []string{"price", "Price"}
	colorKeys        = []string{"color", "Color"}
	fuelTypeKeys     = []string{"fuelType", "Fuel Type", "FuelType", "fueltype"}
	transmissionKeys = []string{"transmission", "Transmission"}
	mileageKeys      = []string{"mileage", "Mileage"}
)

func pickValue(row RawRow, keys []string) string {
	for _, k := range keys {
		if v, ok := row[k]; ok && v != "" {
			return v
		}
	}
	return ""
}

func pickString(row RawRow, keys []string) string {
	return strings.TrimSpace(pickValue(row, keys))
}

// pickInt coerces the first matching value to an integer. Absent and
// unparseable values both coerce to 0; validation decides what 0 means.
func pickInt(row RawRow, keys []string) int {
	s := strings.TrimSpace(pickValue(row, keys))
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// Numeric cells can surface as "2020.0" depending on formatting.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// pickFloat coerces the first matching value to a float, falling back to 0
// the same way pickInt does.
func pickFloat(row RawRow, keys []string) float64 {
	s := strings.TrimSpace(pickValue(row, keys))
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return 0
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// NormalizeRow maps one raw row into a candidate vehicle or a rejection
// reason. The input row is never mutated. Validation short-circuits at the
// first failing check so each rejection carries exactly one message.
func NormalizeRow(row RawRow) (*models.Vehicle, error) {
	vehicle := models.Vehicle{
		ProductName:  pickString(row, productNameKeys),
		Brand:        pickString(row, brandKeys),
		Model:        pickString(row, modelKeys),
		Year:         pickInt(row, yearKeys),
		Price:        pickFloat(row, priceKeys),
		Color:        pickString(row, colorKeys),
		FuelType:     pickString(row, fuelTypeKeys),
		Transmission: pickString(row, transmissionKeys),
		Mileage:      pickFloat(row, mileageKeys),
	}

	if vehicle.ProductName == "" || vehicle.Brand == "" || vehicle.Model == "" {
		return nil, fmt.Errorf("Missing required fields (productName, brand, model)")
	}
	if vehicle.Year < 1900 || vehicle.Year > time.Now().Year()+1 {
		return nil, fmt.Errorf("Invalid year: %d", vehicle.Year)
	}
	if vehicle.Price < 0 {
		return nil, fmt.Errorf("Invalid price: %s", formatNumber(vehicle.Price))
	}
	if vehicle.Mileage < 0 {
		return nil, fmt.Errorf("Invalid mileage: %s", formatNumber(vehicle.Mileage))
	}
	if !models.IsValidFuelType(vehicle.FuelType) {
		return nil, fmt.Errorf("Invalid fuel type: %s", vehicle.FuelType)
	}
	if !models.IsValidTransmission(vehicle.Transmission) {
		return nil, fmt.Errorf("Invalid transmission: %s", vehicle.Transmission)
	}

	return &vehicle, nil
}
