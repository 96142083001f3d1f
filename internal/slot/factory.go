package slot

import (
	"fmt"
	"os"
)

// Open selects a slot adapter using environment variables. Defaults to
// sqlite when unset.
//
//	TINTSHOP_STORAGE_DRIVER: memory|sqlite|bolt (default sqlite)
//	TINTSHOP_SQLITE_PATH: path to sqlite file (default ./tintshop.db)
//	TINTSHOP_BOLT_PATH: path to bbolt file (default ./tintshop.bolt)
func Open() (Adapter, error) {
	driver := os.Getenv("TINTSHOP_STORAGE_DRIVER")
	if driver == "" {
		driver = string(DriverSQLite)
	}
	switch Driver(driver) {
	case DriverMemory:
		return NewMemory(), nil
	case DriverSQLite:
		return OpenSQLite(os.Getenv("TINTSHOP_SQLITE_PATH"))
	case DriverBolt:
		return OpenBolt(os.Getenv("TINTSHOP_BOLT_PATH"))
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}
