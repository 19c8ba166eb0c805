package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/data4life/data4life-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("data4life")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS data4life`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO data4life").Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Citizen{},
		&schema.PushDeviceToken{},
		&schema.Disease{},
		&schema.DiseaseInfectionStatus{},
	).Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
