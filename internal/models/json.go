package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Helpers shared by the struct-valued JSON columns (the questionnaire and
// the per-day slot list). datatypes.JSON does the driver-specific byte
// handling; these wrap it with typed marshal/unmarshal.

func jsonColumnValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b).Value()
}

func jsonColumnScan(src, dst interface{}) error {
	var raw datatypes.JSON
	if err := raw.Scan(src); err != nil {
		return fmt.Errorf("json column scan: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// jsonColumnType maps the column to the correct data type per driver.
// MSSQL has no native json type.
func jsonColumnType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}
