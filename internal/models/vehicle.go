package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fuel type values accepted for a vehicle.
const (
	FuelPetrol   = "Petrol"
	FuelDiesel   = "Diesel"
	FuelElectric = "Electric"
	FuelHybrid   = "Hybrid"
	FuelCNG      = "CNG"
	FuelLPG      = "LPG"
)

// Transmission values accepted for a vehicle.
const (
	TransmissionManual        = "Manual"
	TransmissionAutomatic     = "Automatic"
	TransmissionSemiAutomatic = "Semi-Automatic"
)

const minVehicleYear = 1900

// Vehicle represents one catalog vehicle. Vehicles are created directly via
// the API or in bulk through the spreadsheet import.
type Vehicle struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductName  string             `bson:"product_name" json:"productName"`
	Brand        string             `bson:"brand" json:"brand"`
	Model        string             `bson:"model" json:"model"`
	Year         int                `bson:"year" json:"year"`
	Price        float64            `bson:"price" json:"price"`
	Color        string             `bson:"color" json:"color"`
	FuelType     string             `bson:"fuel_type" json:"fuelType"`
	Transmission string             `bson:"transmission" json:"transmission"`
	Mileage      float64            `bson:"mileage" json:"mileage"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// IsValidFuelType checks if a fuel type is one of the accepted values.
func IsValidFuelType(v string) bool {
	switch v {
	case FuelPetrol, FuelDiesel, FuelElectric, FuelHybrid, FuelCNG, FuelLPG:
		return true
	default:
		return false
	}
}

// IsValidTransmission checks if a transmission is one of the accepted values.
func IsValidTransmission(v string) bool {
	switch v {
	case TransmissionManual, TransmissionAutomatic, TransmissionSemiAutomatic:
		return true
	default:
		return false
	}
}

// MaxVehicleYear returns the upper bound of the accepted model-year range.
func MaxVehicleYear() int {
	return time.Now().Year() + 1
}

// Normalize trims the free-text fields in place.
func (v *Vehicle) Normalize() {
	v.ProductName = strings.TrimSpace(v.ProductName)
	v.Brand = strings.TrimSpace(v.Brand)
	v.Model = strings.TrimSpace(v.Model)
	v.Color = strings.TrimSpace(v.Color)
	v.FuelType = strings.TrimSpace(v.FuelType)
	v.Transmission = strings.TrimSpace(v.Transmission)
}

// Validate returns per-field messages for every constraint the vehicle
// violates. An empty slice means the vehicle is valid.
func (v *Vehicle) Validate() []string {
	var errs []string
	if v.ProductName == "" {
		errs = append(errs, "productName is required")
	}
	if v.Brand == "" {
		errs = append(errs, "brand is required")
	}
	if v.Model == "" {
		errs = append(errs, "model is required")
	}
	if v.Year < minVehicleYear || v.Year > MaxVehicleYear() {
		errs = append(errs, "Year must be between 1900 and current year + 1")
	}
	if v.Price < 0 {
		errs = append(errs, "Price cannot be negative")
	}
	if v.Color == "" {
		errs = append(errs, "color is required")
	}
	if !IsValidFuelType(v.FuelType) {
		errs = append(errs, fmt.Sprintf("fuelType must be one of: %s, %s, %s, %s, %s, %s",
			FuelPetrol, FuelDiesel, FuelElectric, FuelHybrid, FuelCNG, FuelLPG))
	}
	if !IsValidTransmission(v.Transmission) {
		errs = append(errs, fmt.Sprintf("transmission must be one of: %s, %s, %s",
			TransmissionManual, TransmissionAutomatic, TransmissionSemiAutomatic))
	}
	if v.Mileage < 0 {
		errs = append(errs, "Mileage cannot be negative")
	}
	return errs
}
