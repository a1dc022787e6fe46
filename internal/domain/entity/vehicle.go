package entity

import "time"

// Vehicle representa un vehículo del inventario. De solo lectura en esta
// aplicación: lo referencian reparaciones, propuestas y ventas.
type Vehicle struct {
	ID           int64
	Plate        string
	Brand        string
	Model        string
	Year         int
	Color        string
	Mileage      int
	Notes        string
	Fuel         string
	Transmission string
	Doors        int
	EntryDate    time.Time
	CategoryID   int64
}

// VehicleSummary fila del listado de vehículos del módulo de ventas.
type VehicleSummary struct {
	ID        int64
	Plate     string
	Brand     string
	Model     string
	Year      int
	Color     string
	EntryDate time.Time
}

// VehicleDetail detalle completo de un vehículo, con el nombre de la categoría.
type VehicleDetail struct {
	ID           int64
	Plate        string
	Brand        string
	Model        string
	Year         int
	Color        string
	Mileage      int
	Notes        string
	Fuel         string
	Transmission string
	Doors        int
	EntryDate    time.Time
	CategoryName string
}
