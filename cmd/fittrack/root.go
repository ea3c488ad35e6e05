package fittrack

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var dbPath string

var logger = newLogger()

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "fittrack tracks meals, workouts, water, and weight from your terminal",
	Long:  "fittrack is a local-first fitness and nutrition tracking CLI with calorie and macro targets, daily logs, streaks, and achievements.",
}

func Execute() {
	// .env is optional; it can carry FITTRACK_SPOONACULAR_KEY.
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoder := zapcore.NewConsoleEncoder(encoderCfg)
	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zap.WarnLevel)
	return zap.New(core)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
