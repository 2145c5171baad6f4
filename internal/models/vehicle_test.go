package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validVehicle() Vehicle {
	return Vehicle{
		ProductName:  "City Runner",
		Brand:        "Toyota",
		Model:        "Corolla",
		Year:         2020,
		Price:        15000,
		Color:        "Blue",
		FuelType:     FuelPetrol,
		Transmission: TransmissionManual,
		Mileage:      42000,
	}
}

func TestVehicleValidate_Valid(t *testing.T) {
	v := validVehicle()
	assert.Empty(t, v.Validate())
}

func TestVehicleValidate_YearBounds(t *testing.T) {
	v := validVehicle()
	v.Year = 1900
	assert.Empty(t, v.Validate())

	v.Year = time.Now().Year() + 1
	assert.Empty(t, v.Validate())

	v.Year = 1899
	assert.Contains(t, v.Validate(), "Year must be between 1900 and current year + 1")

	v.Year = time.Now().Year() + 2
	assert.Contains(t, v.Validate(), "Year must be between 1900 and current year + 1")
}

func TestVehicleValidate_Negatives(t *testing.T) {
	v := validVehicle()
	v.Price = -1
	v.Mileage = -1
	errs := v.Validate()
	assert.Contains(t, errs, "Price cannot be negative")
	assert.Contains(t, errs, "Mileage cannot be negative")
}

func TestVehicleValidate_Enums(t *testing.T) {
	v := validVehicle()
	v.FuelType = "Gasoline"
	v.Transmission = "CVT"
	errs := v.Validate()
	assert.Len(t, errs, 2)
}

func TestVehicleNormalize_Trims(t *testing.T) {
	v := validVehicle()
	v.ProductName = "  City Runner "
	v.FuelType = " Petrol "
	v.Normalize()
	assert.Equal(t, "City Runner", v.ProductName)
	assert.Equal(t, FuelPetrol, v.FuelType)
}

func TestIsValidFuelType(t *testing.T) {
	for _, fuel := range []string{FuelPetrol, FuelDiesel, FuelElectric, FuelHybrid, FuelCNG, FuelLPG} {
		assert.True(t, IsValidFuelType(fuel), fuel)
	}
	assert.False(t, IsValidFuelType("petrol"))
	assert.False(t, IsValidFuelType(""))
}
