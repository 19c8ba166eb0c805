package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/data4life/data4life-api/background"
	"github.com/data4life/data4life-api/external/fcm"
	"github.com/data4life/data4life-api/hotspot"
	"github.com/data4life/data4life-api/store"
	"github.com/data4life/data4life-api/utils"
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func initSentry() {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("data4life")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)
	initLog()
	initSentry()

	ormDB, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panic(err)
	}

	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
	coreStore := store.NewData4LifeStore(ormDB, mongoStore)

	utils.InitI18NBundle()

	fcmClient := fcm.NewClient(
		viper.GetString("fcm.server_key"),
		viper.GetString("fcm.endpoint"),
		&http.Client{Timeout: 10 * time.Second})

	evaluator := hotspot.NewEvaluator(
		mongoStore,
		viper.GetFloat64("hotspot.proximity_in_metres"),
		time.Duration(viper.GetInt64("hotspot.historic_location_expiry_in_seconds"))*time.Second)

	dispatcher := hotspot.NewDispatcher(
		mongoStore,
		coreStore,
		hotspot.NewFCMNotificationCenter(fcmClient),
		time.Duration(viper.GetInt64("hotspot.delay_between_notifications_in_seconds"))*time.Second,
		viper.GetString("i18n.default_language"))

	pipeline := hotspot.NewPipeline(evaluator, dispatcher)

	var conf = &machineryconf.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "data4life_background",
		ResultBackend: viper.GetString("redis.conn"),
	}
	machineryServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	manager := background.New(pipeline, dispatcher, machineryServer)
	if err := manager.RegisterTasks(); err != nil {
		log.Panic(err)
	}

	log.WithField("prefix", "init").Info("Starting hotspot worker")
	log.Fatal(manager.Run())
}
