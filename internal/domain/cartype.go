package domain

import "fmt"

type CarType string

const (
	CarTypeCar         CarType = "CAR"
	CarTypeSUV         CarType = "SUV"
	CarTypeTruck       CarType = "TRUCK"
	CarTypeSportsCar   CarType = "SPORTS_CAR"
	CarTypeElectricCar CarType = "ELECTRIC_CAR"
)

// CarTypeInfo carries the catalog data for one car type.
type CarTypeInfo struct {
	Type        CarType `json:"type"`
	DailyRate   Money   `json:"daily_rate"`
	DisplayName string  `json:"display_name"`
}

// carTypeCatalog is the fixed rate table. Rates are per day in the default
// currency.
var carTypeCatalog = map[CarType]CarTypeInfo{
	CarTypeCar:         {Type: CarTypeCar, DailyRate: Money{Amount: 1000, Currency: DefaultCurrency}, DisplayName: "Sedan"},
	CarTypeSUV:         {Type: CarTypeSUV, DailyRate: Money{Amount: 1500, Currency: DefaultCurrency}, DisplayName: "SUV"},
	CarTypeTruck:       {Type: CarTypeTruck, DailyRate: Money{Amount: 2000, Currency: DefaultCurrency}, DisplayName: "Truck"},
	CarTypeSportsCar:   {Type: CarTypeSportsCar, DailyRate: Money{Amount: 3000, Currency: DefaultCurrency}, DisplayName: "Sports Car"},
	CarTypeElectricCar: {Type: CarTypeElectricCar, DailyRate: Money{Amount: 2800, Currency: DefaultCurrency}, DisplayName: "Electric Car"},
}

// CarTypeInfoFor looks up catalog data for a car type. The enum is closed, so
// an unknown type only happens when a variant is added without updating the
// catalog; it is still surfaced as a validation error rather than a panic.
func CarTypeInfoFor(t CarType) (CarTypeInfo, error) {
	info, ok := carTypeCatalog[t]
	if !ok {
		return CarTypeInfo{}, fmt.Errorf("%w: unknown car type %q", ErrValidation, t)
	}
	return info, nil
}

// ParseCarType converts an external string into a CarType.
func ParseCarType(s string) (CarType, error) {
	t := CarType(s)
	if _, ok := carTypeCatalog[t]; !ok {
		return "", fmt.Errorf("%w: unknown car type %q", ErrValidation, s)
	}
	return t, nil
}

// CarTypes returns the full catalog, one entry per known type.
func CarTypes() []CarTypeInfo {
	infos := make([]CarTypeInfo, 0, len(carTypeCatalog))
	for _, t := range []CarType{CarTypeCar, CarTypeSUV, CarTypeTruck, CarTypeSportsCar, CarTypeElectricCar} {
		infos = append(infos, carTypeCatalog[t])
	}
	return infos
}
