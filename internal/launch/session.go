// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package launch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/pdiddy/sxarconv/internal/sxar"
	"github.com/pdiddy/sxarconv/pkg/types"
)

// ErrNoInput reports that the launcher was started without an input path.
var ErrNoInput = errors.New("no input file supplied")

// Engine converts the ZIP at inputPath with the built-in converter,
// printing progress to w.
type Engine func(inputPath string, w io.Writer) (types.ConversionRecord, error)

// Session drives one drag-and-drop conversion: status lines, converter
// selection, and the pause gestures around the outcome.
type Session struct {
	Launcher *Launcher
	Engine   Engine
	Config   types.LauncherConfig

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// sleep is a seam for tests; nil means time.Sleep.
	sleep func(time.Duration)
}

// Run executes the launcher flow for inputPath. An empty inputPath prints
// the drag-and-drop usage message, awaits acknowledgment, and returns
// ErrNoInput. Otherwise the input is converted, the outcome is announced,
// and the matching gesture (delay on success, prompt on failure) is played.
// The returned record describes the conversion even when it failed.
func (s *Session) Run(inputPath string) (types.ConversionRecord, error) {
	if inputPath == "" {
		fmt.Fprintln(s.Out, "Drag and drop a ZIP file onto sxarconv to convert it to SXAR.")
		fmt.Fprintln(s.Out, "Usage: sxarconv <input.zip>")
		s.awaitAck()
		return types.ConversionRecord{}, ErrNoInput
	}

	fmt.Fprintf(s.Out, "Converting: %s\n", filepath.Base(inputPath))

	rec, err := s.convert(inputPath)
	if err != nil {
		fmt.Fprintln(s.Out, "Conversion failed!")
		s.awaitAck()
		return rec, err
	}

	fmt.Fprintln(s.Out, "Conversion successful!")
	s.delay(s.Config.SuccessDelay)
	return rec, nil
}

// convert runs the external converter when one can be resolved, otherwise
// the built-in engine.
func (s *Session) convert(inputPath string) (types.ConversionRecord, error) {
	converter, resolveErr := s.Launcher.Resolve(s.Config.ConverterCmd)
	if resolveErr != nil {
		return s.Engine(inputPath, s.Out)
	}

	rec := types.ConversionRecord{
		InputPath:  inputPath,
		OutputPath: sxar.OutputPath(inputPath),
		Status:     types.ConversionFailed,
		Engine:     s.Config.ConverterCmd,
		CreatedAt:  time.Now().UTC(),
	}

	res, err := s.Launcher.Run(converter, inputPath, s.Out, s.ErrOut)
	if err != nil {
		return rec, err
	}
	if res.ExitCode != 0 {
		return rec, fmt.Errorf("converter %s exited with status %d", s.Config.ConverterCmd, res.ExitCode)
	}

	rec.Status = types.ConversionDone
	rec.CreatedAt = time.Now().UTC()
	return rec, nil
}

// awaitAck blocks until the user presses Enter, so the console window stays
// open long enough to read the message. Suppressed by NoPause.
func (s *Session) awaitAck() {
	if s.Config.NoPause {
		return
	}
	fmt.Fprint(s.Out, "\nPress Enter to exit...")
	br := bufio.NewReader(s.In)
	_, _ = br.ReadString('\n')
	fmt.Fprintln(s.Out)
}

// delay keeps the window open briefly after a success. Suppressed by NoPause.
func (s *Session) delay(d time.Duration) {
	if s.Config.NoPause || d <= 0 {
		return
	}
	sleep := s.sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	sleep(d)
}
