package db

import (
	"context"
	"testing"

	"github.com/finance-tracker/reports-api/config"
)

func TestConnect_SQLiteInMemory(t *testing.T) {
	database, err := Connect(&config.DatabaseConfig{Driver: config.DriverSQLite, URL: ":memory:"})
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	defer database.Close()

	if err := database.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}

	type probe struct {
		ID   uint
		Name string
	}
	if err := database.AutoMigrate(&probe{}); err != nil {
		t.Fatalf("AutoMigrate() error = %v", err)
	}
	if err := database.DB().Create(&probe{Name: "ok"}).Error; err != nil {
		t.Errorf("insert error = %v", err)
	}
}

func TestConnect_UnknownDriver(t *testing.T) {
	if _, err := Connect(&config.DatabaseConfig{Driver: "oracle"}); err == nil {
		t.Fatal("expected an error for an unsupported driver")
	}
}
