package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	pkg "github.com/glimmersocial/glimmer/pkg/internal"
	"github.com/glimmersocial/glimmer/pkg/internal/gateway"
	"github.com/glimmersocial/glimmer/pkg/internal/media"
	"github.com/glimmersocial/glimmer/pkg/internal/tui"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Glimmer"), pkg.AppVersion)

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := os.OpenFile("glimmer.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Panic().Err(err).Msg("An error occurred when opening log file.")
	}
	defer logFile.Close()
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: logFile, NoColor: true})

	// Stable anonymous identity for this device
	deviceID := viper.GetString("client.device_id")
	if len(deviceID) == 0 {
		deviceID = uuid.New().String()
		viper.Set("client.device_id", deviceID)
		if err := viper.WriteConfig(); err != nil {
			log.Warn().Err(err).Msg("An error occurred when persisting device id, sessions will not survive restarts...")
		}
	}

	gw := gateway.NewClient(viper.GetString("client.endpoint"))
	uploader := media.NewUploader(
		viper.GetString("client.upload_endpoint"),
		viper.GetString("client.upload_preset"),
	)

	program := tea.NewProgram(tui.New(gw, uploader, deviceID), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running the app.")
	}
}
