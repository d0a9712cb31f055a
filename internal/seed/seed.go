package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Simplici0/moldcost/internal/catalog"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Skipped int
}

// Run writes the reference catalog into a migrated database in an idempotent
// way. Records whose id already exists are left untouched.
func Run(ctx context.Context, db *sql.DB, c *catalog.Catalog) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	for i, m := range c.Materials {
		if err := ensureMaterial(ctx, tx, i, m, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}
	for i, m := range c.Machines {
		if err := ensureMachine(ctx, tx, i, m, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}
	for i, r := range c.Regions {
		if err := ensureRegion(ctx, tx, i, r, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func exists(ctx context.Context, tx *sql.Tx, table, id string) (bool, error) {
	var found bool
	query := `SELECT EXISTS(SELECT 1 FROM ` + table + ` WHERE id = ? LIMIT 1)`
	if err := tx.QueryRowContext(ctx, query, id).Scan(&found); err != nil {
		return false, fmt.Errorf("check %s %q existence: %w", table, id, err)
	}
	return found, nil
}

func ensureMaterial(ctx context.Context, tx *sql.Tx, position int, m catalog.Material, stats *Stats) error {
	found, err := exists(ctx, tx, "materials", m.ID)
	if err != nil {
		return err
	}
	if found {
		stats.Skipped++
		return nil
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO materials (id, position, name, density, price_per_kg, thermal_diffusivity, melt_temp, mold_temp, eject_temp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, position, m.Name, m.Density, m.PricePerKg, m.ThermalDiffusivity, m.MeltTemp, m.MoldTemp, m.EjectTemp); err != nil {
		return fmt.Errorf("insert material %q: %w", m.ID, err)
	}
	stats.Inserts++
	return nil
}

func ensureMachine(ctx context.Context, tx *sql.Tx, position int, m catalog.Machine, stats *Stats) error {
	found, err := exists(ctx, tx, "machines", m.ID)
	if err != nil {
		return err
	}
	if found {
		stats.Skipped++
		return nil
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO machines (
			id, position, name, manufacturer, model, tonnage, hourly_rate, clamping_force,
			tie_bar_horizontal, tie_bar_vertical, opening_width, melting_volume
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		m.ID, position, m.Name, m.Manufacturer, m.Model, m.Tonnage, m.HourlyRate, m.ClampingForce,
		m.TieBarHorizontal, m.TieBarVertical, m.OpeningWidth, m.MeltingVolume,
	); err != nil {
		return fmt.Errorf("insert machine %q: %w", m.ID, err)
	}
	stats.Inserts++
	return nil
}

func ensureRegion(ctx context.Context, tx *sql.Tx, position int, r catalog.Region, stats *Stats) error {
	found, err := exists(ctx, tx, "regions", r.ID)
	if err != nil {
		return err
	}
	if found {
		stats.Skipped++
		return nil
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO regions (id, position, name, multiplier)
		VALUES (?, ?, ?, ?)
	`, r.ID, position, r.Name, r.Multiplier); err != nil {
		return fmt.Errorf("insert region %q: %w", r.ID, err)
	}
	stats.Inserts++
	return nil
}
