package database

import (
	"fmt"
	"log"

	"expensetracker/config"
	"expensetracker/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the database connection and runs migrations.
func Init(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "", "sqlite":
		path := cfg.Database.Path
		if path == "" {
			path = "expensetracker.db"
		}
		dialector = sqlite.Open(path)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
			cfg.Database.Username,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.DBName,
			cfg.Database.Charset,
		)
		dialector = mysql.Open(dsn)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	// Connection pool settings only apply to the networked driver.
	if cfg.Database.Driver == "mysql" {
		sqlDB, err := DB.DB()
		if err != nil {
			return err
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Expense{},
		&models.ExpenseCategory{},
	); err != nil {
		return err
	}

	seedCategories()

	log.Println("database initialized")
	return nil
}

// seedCategories inserts the default category labels when the table is
// empty. Colors match the dashboard badge palette.
func seedCategories() {
	var count int64
	DB.Model(&models.ExpenseCategory{}).Count(&count)
	if count > 0 {
		return
	}

	colorMap := map[string]string{
		models.CategoryFood:          "#f97316",
		models.CategoryTransport:     "#3b82f6",
		models.CategoryShopping:      "#a855f7",
		models.CategoryEntertainment: "#ec4899",
		models.CategoryBills:         "#ef4444",
		models.CategoryHealthcare:    "#10b981",
		models.CategoryTravel:        "#6366f1",
		models.CategoryEducation:     "#eab308",
		models.CategoryOther:         "#64748b",
	}

	var cats []models.ExpenseCategory
	for i, name := range models.DefaultCategories() {
		color := colorMap[name]
		if color == "" {
			color = "#64748b"
		}
		cats = append(cats, models.ExpenseCategory{
			Name:  name,
			Sort:  (i + 1) * 10,
			Color: color,
		})
	}
	if len(cats) > 0 {
		_ = DB.Create(&cats).Error
	}
}

// GetDB returns the database handle.
func GetDB() *gorm.DB {
	return DB
}
