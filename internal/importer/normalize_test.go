package importer

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRow() RawRow {
	return RawRow{
		"productName":  "City Runner",
		"brand":        "Toyota",
		"model":        "Corolla",
		"year":         "2020",
		"price":        "15000.50",
		"color":        "Blue",
		"fuelType":     "Petrol",
		"transmission": "Manual",
		"mileage":      "42000",
	}
}

func TestNormalizeRow_Valid(t *testing.T) {
	vehicle, err := NormalizeRow(validRow())
	require.NoError(t, err)
	assert.Equal(t, "City Runner", vehicle.ProductName)
	assert.Equal(t, "Toyota", vehicle.Brand)
	assert.Equal(t, "Corolla", vehicle.Model)
	assert.Equal(t, 2020, vehicle.Year)
	assert.Equal(t, 15000.50, vehicle.Price)
	assert.Equal(t, "Petrol", vehicle.FuelType)
	assert.Equal(t, "Manual", vehicle.Transmission)
	assert.Equal(t, 42000.0, vehicle.Mileage)
}

func TestNormalizeRow_AlternateKeySpellings(t *testing.T) {
	row := RawRow{
		"Product Name": "City Runner",
		"Brand":        "Toyota",
		"Model":        "Corolla",
		"Year":         "2020",
		"Price":        "15000",
		"Color":        "Blue",
		"fueltype":     "Diesel",
		"Transmission": "Automatic",
		"Mileage":      "100",
	}
	vehicle, err := NormalizeRow(row)
	require.NoError(t, err)
	assert.Equal(t, "City Runner", vehicle.ProductName)
	assert.Equal(t, "Diesel", vehicle.FuelType)
	assert.Equal(t, "Automatic", vehicle.Transmission)
}

func TestNormalizeRow_FirstSpellingWins(t *testing.T) {
	row := validRow()
	row["Fuel Type"] = "Diesel" // lower-priority than fuelType
	vehicle, err := NormalizeRow(row)
	require.NoError(t, err)
	assert.Equal(t, "Petrol", vehicle.FuelType)
}

func TestNormalizeRow_TrimsStrings(t *testing.T) {
	row := validRow()
	row["productName"] = "  City Runner  "
	row["fuelType"] = " Petrol "
	vehicle, err := NormalizeRow(row)
	require.NoError(t, err)
	assert.Equal(t, "City Runner", vehicle.ProductName)
	assert.Equal(t, "Petrol", vehicle.FuelType)
}

func TestNormalizeRow_MissingRequiredFields(t *testing.T) {
	for _, field := range []string{"productName", "brand", "model"} {
		row := validRow()
		delete(row, field)
		_, err := NormalizeRow(row)
		require.Error(t, err, field)
		assert.Equal(t, "Missing required fields (productName, brand, model)", err.Error())
	}
}

func TestNormalizeRow_WhitespaceOnlyRequiredField(t *testing.T) {
	row := validRow()
	row["brand"] = "   "
	_, err := NormalizeRow(row)
	require.Error(t, err)
	assert.Equal(t, "Missing required fields (productName, brand, model)", err.Error())
}

func TestNormalizeRow_YearBoundaries(t *testing.T) {
	maxYear := time.Now().Year() + 1

	for _, year := range []int{1900, maxYear} {
		row := validRow()
		row["year"] = strconv.Itoa(year)
		_, err := NormalizeRow(row)
		assert.NoError(t, err, "year %d should be accepted", year)
	}

	for _, year := range []int{1899, maxYear + 1} {
		row := validRow()
		row["year"] = strconv.Itoa(year)
		_, err := NormalizeRow(row)
		require.Error(t, err, "year %d should be rejected", year)
		assert.Equal(t, fmt.Sprintf("Invalid year: %d", year), err.Error())
	}
}

func TestNormalizeRow_MissingYearCoercesToZeroAndFails(t *testing.T) {
	row := validRow()
	delete(row, "year")
	_, err := NormalizeRow(row)
	require.Error(t, err)
	assert.Equal(t, "Invalid year: 0", err.Error())
}

func TestNormalizeRow_MissingPriceIsZeroAndValid(t *testing.T) {
	row := validRow()
	delete(row, "price")
	vehicle, err := NormalizeRow(row)
	require.NoError(t, err)
	assert.Equal(t, 0.0, vehicle.Price)
}

func TestNormalizeRow_UnparseablePriceIsZeroAndValid(t *testing.T) {
	row := validRow()
	row["price"] = "N/A"
	vehicle, err := NormalizeRow(row)
	require.NoError(t, err)
	assert.Equal(t, 0.0, vehicle.Price)
}

func TestNormalizeRow_NegativePrice(t *testing.T) {
	row := validRow()
	row["price"] = "-5"
	_, err := NormalizeRow(row)
	require.Error(t, err)
	assert.Equal(t, "Invalid price: -5", err.Error())
}

func TestNormalizeRow_NegativeMileage(t *testing.T) {
	row := validRow()
	row["mileage"] = "-12.5"
	_, err := NormalizeRow(row)
	require.Error(t, err)
	assert.Equal(t, "Invalid mileage: -12.5", err.Error())
}

func TestNormalizeRow_InvalidFuelType(t *testing.T) {
	row := validRow()
	row["fuelType"] = "Gasoline"
	_, err := NormalizeRow(row)
	require.Error(t, err)
	assert.Equal(t, "Invalid fuel type: Gasoline", err.Error())
}

func TestNormalizeRow_FuelTypeCaseSensitive(t *testing.T) {
	row := validRow()
	row["fuelType"] = "petrol"
	_, err := NormalizeRow(row)
	require.Error(t, err)
	assert.Equal(t, "Invalid fuel type: petrol", err.Error())
}

func TestNormalizeRow_InvalidTransmission(t *testing.T) {
	row := validRow()
	row["transmission"] = "CVT"
	_, err := NormalizeRow(row)
	require.Error(t, err)
	assert.Equal(t, "Invalid transmission: CVT", err.Error())
}

func TestNormalizeRow_DoesNotMutateInput(t *testing.T) {
	row := validRow()
	row["productName"] = "  padded  "
	before := make(RawRow, len(row))
	for k, v := range row {
		before[k] = v
	}

	_, err := NormalizeRow(row)
	require.NoError(t, err)
	assert.Equal(t, before, row)
}

func TestNormalizeRow_FractionalYearCell(t *testing.T) {
	row := validRow()
	row["year"] = "2020.0"
	vehicle, err := NormalizeRow(row)
	require.NoError(t, err)
	assert.Equal(t, 2020, vehicle.Year)
}
