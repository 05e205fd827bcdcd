package main

import (
	"fmt"
	"net/http"
	"os"

	"shiporders/cmd"
	httpin "shiporders/internal/adapters/in/http"
	"shiporders/internal/adapters/out/postgres/orderrepo"
	"shiporders/internal/adapters/out/postgres/shipmentrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	root := cmd.NewCompositionRoot(configs, gormDB)
	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError maps driver duplicate-key failures onto
	// gorm.ErrDuplicatedKey so the repositories can classify them.
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &shipmentrepo.ShipmentDTO{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	// Uniqueness holds among non-deleted rows only, so a number or tracking
	// code can be reused after a soft delete. AutoMigrate tags cannot express
	// partial indexes.
	partialIndexes := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_number_active ON orders (number) WHERE NOT deleted",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_shipments_tracking_code_active ON shipments (tracking_code) WHERE NOT deleted",
	}
	for _, ddl := range partialIndexes {
		if err = gormDB.Exec(ddl).Error; err != nil {
			log.Fatalf("Error creating index: %v", err)
		}
	}
}

func startWebServer(root cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderCommandHandler(),
		root.CreateDeleteOrderCommandHandler(),
		root.CreateCreateShipmentCommandHandler(),
		root.CreateUpdateShipmentCommandHandler(),
		root.CreateDeleteShipmentCommandHandler(),
		root.CreateDetachShipmentCommandHandler(),
		root.CreateUpdateOrderShipmentCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetOrdersQueryHandler(),
		root.CreateGetShipmentQueryHandler(),
		root.CreateGetShipmentsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
