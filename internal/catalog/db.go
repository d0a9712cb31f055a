package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// LoadDB reads the reference catalog from a migrated sqlite database.
// Rows are returned in insertion order so entry 0 stays the fallback record.
func LoadDB(ctx context.Context, db *sql.DB) (*Catalog, error) {
	materials, err := listMaterials(ctx, db)
	if err != nil {
		return nil, err
	}
	machines, err := listMachines(ctx, db)
	if err != nil {
		return nil, err
	}
	regions, err := listRegions(ctx, db)
	if err != nil {
		return nil, err
	}

	c := &Catalog{Materials: materials, Machines: machines, Regions: regions}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func listMaterials(ctx context.Context, db *sql.DB) ([]Material, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, density, price_per_kg, thermal_diffusivity, melt_temp, mold_temp, eject_temp
		FROM materials
		ORDER BY position, rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("query materials: %w", err)
	}
	defer rows.Close()

	materials := make([]Material, 0)
	for rows.Next() {
		var m Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Density, &m.PricePerKg, &m.ThermalDiffusivity, &m.MeltTemp, &m.MoldTemp, &m.EjectTemp); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		materials = append(materials, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate materials: %w", err)
	}

	return materials, nil
}

func listMachines(ctx context.Context, db *sql.DB) ([]Machine, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT
			id, name, manufacturer, model, tonnage, hourly_rate, clamping_force,
			tie_bar_horizontal, tie_bar_vertical, opening_width, melting_volume
		FROM machines
		ORDER BY position, rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("query machines: %w", err)
	}
	defer rows.Close()

	machines := make([]Machine, 0)
	for rows.Next() {
		var m Machine
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Manufacturer, &m.Model, &m.Tonnage, &m.HourlyRate, &m.ClampingForce,
			&m.TieBarHorizontal, &m.TieBarVertical, &m.OpeningWidth, &m.MeltingVolume,
		); err != nil {
			return nil, fmt.Errorf("scan machine: %w", err)
		}
		machines = append(machines, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate machines: %w", err)
	}

	return machines, nil
}

func listRegions(ctx context.Context, db *sql.DB) ([]Region, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, multiplier
		FROM regions
		ORDER BY position, rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("query regions: %w", err)
	}
	defer rows.Close()

	regions := make([]Region, 0)
	for rows.Next() {
		var r Region
		if err := rows.Scan(&r.ID, &r.Name, &r.Multiplier); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		regions = append(regions, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate regions: %w", err)
	}

	return regions, nil
}
