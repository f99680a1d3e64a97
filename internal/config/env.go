package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/pagebuilder/internal/logfields"
)

var errNoEnvFile = errors.New("no .env file found")

// loadEnvFile loads environment variables from the first .env/.env.local file
// found in dir. Existing process environment variables are not overwritten.
func loadEnvFile(dir string) error {
	for _, name := range []string{".env", ".env.local"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return err
		}
		slog.Debug("Loaded environment variables", logfields.Path(p))
		return nil
	}
	return errNoEnvFile
}
