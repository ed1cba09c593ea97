package mysql

import (
	"fmt"
	"time"

	"momovender/src/pkg/log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

type DBInterface interface {
	GetDB() (*sqlx.DB, error)
}

type Database struct {
	db *sqlx.DB
}

// InitConnection opens the pool and pings it once.
func InitConnection(v *viper.Viper, logger log.Log) (DBInterface, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=Local",
		v.GetString("database.username"),
		v.GetString("database.password"),
		v.GetString("database.host"),
		v.GetInt("database.port"),
		v.GetString("database.name"),
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		logger.Error("mysql", fmt.Sprintf("failed to connect: %v", err), "InitConnection", "")
		return nil, err
	}

	db.SetMaxOpenConns(v.GetInt("database.pool.max_open"))
	db.SetMaxIdleConns(v.GetInt("database.pool.max_idle"))
	db.SetConnMaxLifetime(time.Duration(v.GetInt("database.pool.max_lifetime_minute")) * time.Minute)

	return &Database{db: db}, nil
}

func (d *Database) GetDB() (*sqlx.DB, error) {
	if d.db == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}
	return d.db, nil
}
