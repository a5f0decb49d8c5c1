package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	pkg "github.com/glimmersocial/glimmer/pkg/internal"
	"github.com/glimmersocial/glimmer/pkg/internal/cache"
	"github.com/glimmersocial/glimmer/pkg/internal/database"
	"github.com/glimmersocial/glimmer/pkg/internal/http"
	"github.com/glimmersocial/glimmer/pkg/internal/services"
	"github.com/glimmersocial/glimmer/pkg/internal/ws"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString("  ____ _ _\n / ___| (_)_ __ ___  _ __ ___   ___ _ __\n| |  _| | | '_ ` _ \\| '_ ` _ \\ / _ \\ '__|\n| |_| | | | | | | | | | | | | |  __/ |\n \\____|_|_|_| |_| |_|_| |_| |_|\\___|_|"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Glimmer"), pkg.AppVersion)
	fmt.Printf("The reference backend of the Glimmer social network\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Prepare local cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when setting up local cache.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Ensure the upload pool exists
	if err := os.MkdirAll(viper.GetString("uploads.path"), 0755); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when preparing uploads directory.")
	}

	// Realtime fan-out
	go ws.H.Run()

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", services.DoAutoDatabaseCleanup)
	quartz.Start()

	// Server
	go http.NewServer().Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
}
