package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// ReservationTTL bounds how long an unconfirmed number reservation is
	// held before the sweep job releases it. Zero disables the sweep.
	ReservationTTL time.Duration

	// StockAvailable is the fixed answer of the stand-in stock checker.
	StockAvailable bool
}
