package logging

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs the global diagnostic logger on stderr. Progress output
// for users is printed separately; this logger only carries warnings, and
// debug events when verbose is set. It returns the run id attached to every event.
func InitLogger(verbose bool) string {
	return initLogger(os.Stderr, verbose)
}

func initLogger(w io.Writer, verbose bool) string {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	runID := uuid.NewString()
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)}
	log.Logger = zerolog.New(out).Level(level).With().Timestamp().Str("run_id", runID).Logger()
	return runID
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
